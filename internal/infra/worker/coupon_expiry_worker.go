package worker

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// CouponDeactivator is the part of the coupon repository the sweeper uses.
type CouponDeactivator interface {
	DeactivateExpired(ctx context.Context) (int64, error)
}

// SessionSweeper drops expired in-memory sessions. Redis expires keys itself.
type SessionSweeper interface {
	Sweep() int
}

// CouponExpiryWorker switches off expired coupons once at start-up and then
// on every tick. It also sweeps the in-memory session store when one is set.
type CouponExpiryWorker struct {
	coupons      CouponDeactivator
	sessions     SessionSweeper
	tickInterval time.Duration
}

func NewCouponExpiryWorker(coupons CouponDeactivator, sessions SessionSweeper, interval time.Duration) *CouponExpiryWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CouponExpiryWorker{
		coupons:      coupons,
		sessions:     sessions,
		tickInterval: interval,
	}
}

func (w *CouponExpiryWorker) Start(ctx context.Context) {
	log.WithField("interval", w.tickInterval).Info("🕒 coupon expiry worker started")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Info("⚠️ coupon expiry worker stopped")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

func (w *CouponExpiryWorker) RunOnce(ctx context.Context) {
	n, err := w.coupons.DeactivateExpired(ctx)
	if err != nil {
		log.WithError(err).Error("❌ failed to deactivate expired coupons")
	} else if n > 0 {
		log.WithField("count", n).Info("✅ expired coupons deactivated")
	}

	if w.sessions != nil {
		if removed := w.sessions.Sweep(); removed > 0 {
			log.WithField("count", removed).Debug("expired sessions removed")
		}
	}
}
