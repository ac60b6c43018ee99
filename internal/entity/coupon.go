package entity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Coupon is a flat discount code with an expiry and a usage cap.
type Coupon struct {
	ID             string    `json:"id"`
	Code           string    `json:"code"`
	DiscountAmount int       `json:"discount_amount"`
	UsageCount     int       `json:"usage_count"`
	UsageLimit     int       `json:"usage_limit"`
	ExpiryDate     time.Time `json:"expiry_date"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// NormalizeCouponCode trims and upper-cases a code as typed by a customer.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func NewCoupon(code string, discountAmount, usageLimit int, expiryDate time.Time) (*Coupon, error) {
	c := &Coupon{
		ID:             uuid.New().String(),
		Code:           NormalizeCouponCode(code),
		DiscountAmount: discountAmount,
		UsageLimit:     usageLimit,
		ExpiryDate:     expiryDate,
		IsActive:       true,
		CreatedAt:      time.Now(),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Coupon) Validate() error {
	if c.Code == "" {
		return errors.New("code is required")
	}
	if c.DiscountAmount <= 0 {
		return errors.New("discount amount must be positive")
	}
	if c.UsageLimit <= 0 {
		return errors.New("usage limit must be positive")
	}
	if c.ExpiryDate.IsZero() {
		return errors.New("expiry date is required")
	}
	return nil
}

// CheckRedeemable reports why the coupon cannot be used at now, or nil.
func (c *Coupon) CheckRedeemable(now time.Time) error {
	if !c.IsActive {
		return ErrCouponInactive
	}
	if c.ExpiryDate.Before(now) {
		return ErrCouponExpired
	}
	if c.UsageCount >= c.UsageLimit {
		return ErrCouponExhausted
	}
	return nil
}

type CouponUpdate struct {
	IsActive       *bool      `json:"is_active,omitempty"`
	UsageLimit     *int       `json:"usage_limit,omitempty"`
	DiscountAmount *int       `json:"discount_amount,omitempty"`
	ExpiryDate     *time.Time `json:"expiry_date,omitempty"`
}

func (u CouponUpdate) Validate() error {
	if u.IsActive == nil && u.UsageLimit == nil && u.DiscountAmount == nil && u.ExpiryDate == nil {
		return ErrEmptyUpdate
	}
	if u.UsageLimit != nil && *u.UsageLimit <= 0 {
		return errors.New("usage limit must be positive")
	}
	if u.DiscountAmount != nil && *u.DiscountAmount <= 0 {
		return errors.New("discount amount must be positive")
	}
	return nil
}

func (c *Coupon) RecordID() string   { return c.ID }
func (c *Coupon) Created() time.Time { return c.CreatedAt }

func (c *Coupon) Fields() []Field {
	return []Field{
		{"id", c.ID},
		{"code", c.Code},
		{"discount_amount", c.DiscountAmount},
		{"usage_count", c.UsageCount},
		{"usage_limit", c.UsageLimit},
		{"expiry_date", c.ExpiryDate},
		{"is_active", c.IsActive},
		{"created_at", c.CreatedAt},
	}
}

type CouponRepositoryInterface interface {
	Create(ctx context.Context, c *Coupon) error
	FindByCode(ctx context.Context, code string) (*Coupon, error)
	List(ctx context.Context) ([]*Coupon, error)
	Update(ctx context.Context, id string, u CouponUpdate) (*Coupon, error)
	// Redeem atomically increments usage_count when the coupon is still usable.
	Redeem(ctx context.Context, id string) (*Coupon, error)
	// DeactivateExpired switches off every active coupon past its expiry date.
	DeactivateExpired(ctx context.Context) (int64, error)
}
