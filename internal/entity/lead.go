package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Lead is a prospect who asked for a price but has not paid yet.
type Lead struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Experience int       `json:"experience"`
	Price      int       `json:"price"`
	CouponCode string    `json:"coupon_code,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewLead(name, phone string, experience, price int, couponCode string) (*Lead, error) {
	lead := &Lead{
		ID:         uuid.New().String(),
		Name:       name,
		Phone:      phone,
		Experience: experience,
		Price:      price,
		CouponCode: couponCode,
		CreatedAt:  time.Now(),
	}
	if err := lead.Validate(); err != nil {
		return nil, err
	}
	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if l.Phone == "" {
		return errors.New("phone is required")
	}
	if l.Experience < 0 {
		return errors.New("experience must not be negative")
	}
	return nil
}

func (l *Lead) RecordID() string   { return l.ID }
func (l *Lead) Created() time.Time { return l.CreatedAt }

func (l *Lead) Fields() []Field {
	return []Field{
		{"id", l.ID},
		{"name", l.Name},
		{"phone", l.Phone},
		{"experience", l.Experience},
		{"price", l.Price},
		{"coupon_code", optional(l.CouponCode)},
		{"created_at", l.CreatedAt},
	}
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	List(ctx context.Context) ([]*Lead, error)
	Delete(ctx context.Context, id string) error
}
