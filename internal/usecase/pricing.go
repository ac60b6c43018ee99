package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xavierca1/corporate-ask/internal/entity"
)

const (
	BaseFee    = 3000
	PerYearFee = 100
)

var ErrNegativeExperience = errors.New("experience must not be negative")

// Quote is the price shown to the customer after the details step.
type Quote struct {
	Experience int            `json:"experience"`
	Base       int            `json:"base"`
	Discount   int            `json:"discount"`
	Final      int            `json:"final"`
	Coupon     *entity.Coupon `json:"coupon,omitempty"`
}

func BasePrice(years int) (int, error) {
	if years < 0 {
		return 0, ErrNegativeExperience
	}
	return BaseFee + PerYearFee*years, nil
}

// NewQuote prices years of experience, optionally minus a flat coupon
// discount. The final price never goes below zero.
func NewQuote(years int, coupon *entity.Coupon, now time.Time) (*Quote, error) {
	base, err := BasePrice(years)
	if err != nil {
		return nil, err
	}

	q := &Quote{Experience: years, Base: base, Final: base}
	if coupon == nil {
		return q, nil
	}

	if err := coupon.CheckRedeemable(now); err != nil {
		return nil, err
	}

	q.Final = max(0, base-coupon.DiscountAmount)
	q.Discount = base - q.Final
	q.Coupon = coupon
	return q, nil
}

func (q *Quote) CouponCode() string {
	if q.Coupon == nil {
		return ""
	}
	return q.Coupon.Code
}

func (q *Quote) Breakdown() string {
	return fmt.Sprintf("%d + (%d × %d Years)", BaseFee, PerYearFee, q.Experience)
}

// Quoter looks coupons up before pricing.
type Quoter struct {
	Coupons entity.CouponRepositoryInterface
	Now     func() time.Time
}

func NewQuoter(coupons entity.CouponRepositoryInterface) *Quoter {
	return &Quoter{Coupons: coupons, Now: time.Now}
}

func (q *Quoter) Quote(ctx context.Context, years int, couponCode string) (*Quote, error) {
	var coupon *entity.Coupon

	if code := entity.NormalizeCouponCode(couponCode); code != "" {
		c, err := q.Coupons.FindByCode(ctx, code)
		if err != nil {
			return nil, couponError(err)
		}
		coupon = c
	}

	quote, err := NewQuote(years, coupon, q.Now())
	if err != nil {
		if errors.Is(err, ErrNegativeExperience) {
			return nil, validationError([]ValidationError{{"experience", MsgInvalidExperience}})
		}
		return nil, couponError(err)
	}
	return quote, nil
}

// couponError turns coupon sentinels into customer-facing errors.
func couponError(err error) error {
	switch {
	case errors.Is(err, entity.ErrCouponNotFound):
		return &DomainError{Code: CodeCouponNotFound, Message: MsgCouponNotFound, Err: err}
	case errors.Is(err, entity.ErrCouponExpired):
		return &DomainError{Code: CodeCouponExpired, Message: MsgCouponExpired, Err: err}
	case errors.Is(err, entity.ErrCouponExhausted):
		return &DomainError{Code: CodeCouponExhausted, Message: MsgCouponExhausted, Err: err}
	case errors.Is(err, entity.ErrCouponInactive):
		return &DomainError{Code: CodeCouponInactive, Message: MsgCouponInactive, Err: err}
	}
	return databaseError("coupon lookup failed", err)
}
