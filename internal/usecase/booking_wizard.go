package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type BookingStep string

const (
	StepDetails     BookingStep = "details"
	StepPriced      BookingStep = "priced"
	StepPaymentInfo BookingStep = "payment_info"
	StepConfirmed   BookingStep = "confirmed"
)

var (
	ErrInvalidTransition = errors.New("invalid booking step transition")
	ErrBookingNotFound   = errors.New("booking not found")
)

type BookingDetails struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Experience int    `json:"experience"`
}

type PaymentDetails struct {
	SenderNumber string `json:"sender_number"`
	TransID      string `json:"trans_id"`
}

// BookingWizard is the four-step booking dialog:
// details -> priced -> payment_info -> confirmed. It only moves one step
// forward or back at a time.
type BookingWizard struct {
	ID         string          `json:"id"`
	Step       BookingStep     `json:"step"`
	Details    *BookingDetails `json:"details,omitempty"`
	Quote      *Quote          `json:"quote,omitempty"`
	LeadID     string          `json:"lead_id,omitempty"`
	Payment    *PaymentDetails `json:"payment,omitempty"`
	CustomerID string          `json:"customer_id,omitempty"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func NewBookingWizard() *BookingWizard {
	return &BookingWizard{
		ID:        uuid.New().String(),
		Step:      StepDetails,
		UpdatedAt: time.Now(),
	}
}

func (w *BookingWizard) Priced(details BookingDetails, quote *Quote, leadID string) error {
	if w.Step != StepDetails {
		return ErrInvalidTransition
	}
	w.Details = &details
	w.Quote = quote
	w.LeadID = leadID
	w.Step = StepPriced
	w.touch()
	return nil
}

func (w *BookingWizard) ProceedToPayment() error {
	if w.Step != StepPriced {
		return ErrInvalidTransition
	}
	w.Step = StepPaymentInfo
	w.touch()
	return nil
}

func (w *BookingWizard) Back() error {
	switch w.Step {
	case StepPriced:
		w.Step = StepDetails
	case StepPaymentInfo:
		w.Step = StepPriced
	default:
		return ErrInvalidTransition
	}
	w.touch()
	return nil
}

func (w *BookingWizard) Confirmed(payment PaymentDetails, customerID string) error {
	if w.Step != StepPaymentInfo {
		return ErrInvalidTransition
	}
	w.Payment = &payment
	w.CustomerID = customerID
	w.Step = StepConfirmed
	w.touch()
	return nil
}

// Reset clears everything the customer typed, like closing the dialog.
func (w *BookingWizard) Reset() {
	w.Step = StepDetails
	w.Details = nil
	w.Quote = nil
	w.LeadID = ""
	w.Payment = nil
	w.CustomerID = ""
	w.touch()
}

func (w *BookingWizard) touch() {
	w.UpdatedAt = time.Now()
}
