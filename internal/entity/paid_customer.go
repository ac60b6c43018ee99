package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// WorkStatus is the fulfilment stage of a paid order.
type WorkStatus string

const (
	WorkPending        WorkStatus = "Pending"
	WorkMeetingDone    WorkStatus = "Meeting Done"
	WorkConversionDone WorkStatus = "Conversion Done"
	WorkDeliveryDone   WorkStatus = "Delivery Done"
)

var WorkStatuses = []WorkStatus{WorkPending, WorkMeetingDone, WorkConversionDone, WorkDeliveryDone}

func ParseWorkStatus(s string) (WorkStatus, error) {
	for _, ws := range WorkStatuses {
		if string(ws) == s {
			return ws, nil
		}
	}
	return "", ErrInvalidWorkStatus
}

type PaidCustomer struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Phone           string     `json:"phone"`
	Experience      int        `json:"experience"`
	Price           int        `json:"price"`
	SenderNumber    string     `json:"sender_number"`
	TransID         string     `json:"trans_id"`
	PaymentVerified bool       `json:"payment_verified"`
	WorkStatus      WorkStatus `json:"work_status"`
	CouponCode      string     `json:"coupon_code,omitempty"`
	Discount        int        `json:"discount"`
	CreatedAt       time.Time  `json:"created_at"`
}

func NewPaidCustomer(name, phone string, experience, price int, senderNumber, transID string) (*PaidCustomer, error) {
	c := &PaidCustomer{
		ID:           uuid.New().String(),
		Name:         name,
		Phone:        phone,
		Experience:   experience,
		Price:        price,
		SenderNumber: senderNumber,
		TransID:      transID,
		WorkStatus:   WorkPending,
		CreatedAt:    time.Now(),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *PaidCustomer) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Phone == "" {
		return errors.New("phone is required")
	}
	if c.SenderNumber == "" {
		return errors.New("sender number is required")
	}
	if c.TransID == "" {
		return errors.New("transaction id is required")
	}
	if c.Price < 0 {
		return errors.New("price must not be negative")
	}
	return nil
}

// PaidCustomerUpdate lists the columns an admin may edit inline.
type PaidCustomerUpdate struct {
	PaymentVerified *bool       `json:"payment_verified,omitempty"`
	WorkStatus      *WorkStatus `json:"work_status,omitempty"`
}

func (u PaidCustomerUpdate) Validate() error {
	if u.PaymentVerified == nil && u.WorkStatus == nil {
		return ErrEmptyUpdate
	}
	if u.WorkStatus != nil {
		if _, err := ParseWorkStatus(string(*u.WorkStatus)); err != nil {
			return err
		}
	}
	return nil
}

func (c *PaidCustomer) RecordID() string   { return c.ID }
func (c *PaidCustomer) Created() time.Time { return c.CreatedAt }

func (c *PaidCustomer) Fields() []Field {
	return []Field{
		{"id", c.ID},
		{"name", c.Name},
		{"phone", c.Phone},
		{"experience", c.Experience},
		{"price", c.Price},
		{"sender_number", c.SenderNumber},
		{"trans_id", c.TransID},
		{"payment_verified", c.PaymentVerified},
		{"work_status", string(c.WorkStatus)},
		{"coupon_code", optional(c.CouponCode)},
		{"discount", c.Discount},
		{"created_at", c.CreatedAt},
	}
}

type PaidCustomerRepositoryInterface interface {
	Create(ctx context.Context, c *PaidCustomer) error
	List(ctx context.Context) ([]*PaidCustomer, error)
	Update(ctx context.Context, id string, u PaidCustomerUpdate) (*PaidCustomer, error)
	Delete(ctx context.Context, id string) error
}
