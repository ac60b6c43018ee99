package usecase

import (
	"context"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/xavierca1/corporate-ask/internal/entity"
	"github.com/xavierca1/corporate-ask/internal/infra/queue"
)

const ConfirmationMessage = "Our Client Team will reach out to you soon."

type BookingUseCase struct {
	Wizards       WizardStore
	Leads         entity.LeadRepositoryInterface
	Customers     entity.PaidCustomerRepositoryInterface
	Coupons       entity.CouponRepositoryInterface
	Quoter        *Quoter
	Queue         QueueProducerInterface
	PaymentNumber string
}

func NewBookingUseCase(
	wizards WizardStore,
	leads entity.LeadRepositoryInterface,
	customers entity.PaidCustomerRepositoryInterface,
	coupons entity.CouponRepositoryInterface,
	queue QueueProducerInterface,
	paymentNumber string,
) *BookingUseCase {
	return &BookingUseCase{
		Wizards:       wizards,
		Leads:         leads,
		Customers:     customers,
		Coupons:       coupons,
		Quoter:        NewQuoter(coupons),
		Queue:         queue,
		PaymentNumber: paymentNumber,
	}
}

type QuoteView struct {
	Base       int    `json:"base"`
	Discount   int    `json:"discount"`
	Final      int    `json:"final"`
	CouponCode string `json:"coupon_code,omitempty"`
	Breakdown  string `json:"breakdown"`
}

// BookingView is what the dialog renders for the current step.
type BookingView struct {
	BookingID     string          `json:"booking_id"`
	Step          BookingStep     `json:"step"`
	Details       *BookingDetails `json:"details,omitempty"`
	Quote         *QuoteView      `json:"quote,omitempty"`
	PaymentNumber string          `json:"payment_number,omitempty"`
	CustomerID    string          `json:"customer_id,omitempty"`
	Message       string          `json:"message,omitempty"`
}

func (uc *BookingUseCase) view(w *BookingWizard) *BookingView {
	v := &BookingView{
		BookingID: w.ID,
		Step:      w.Step,
		Details:   w.Details,
	}
	if w.Quote != nil {
		v.Quote = quoteView(w.Quote)
	}
	if w.Step == StepPaymentInfo {
		v.PaymentNumber = uc.PaymentNumber
	}
	if w.Step == StepConfirmed {
		v.CustomerID = w.CustomerID
		v.Message = ConfirmationMessage
	}
	return v
}

func (uc *BookingUseCase) Start(ctx context.Context) (*BookingView, error) {
	w := NewBookingWizard()
	if err := uc.save(ctx, w); err != nil {
		return nil, err
	}
	return uc.view(w), nil
}

func (uc *BookingUseCase) Get(ctx context.Context, id string) (*BookingView, error) {
	w, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.view(w), nil
}

// SubmitDetails validates step one, prices the booking and records the lead.
// A failed lead insert is logged and ignored so the customer still sees a price.
func (uc *BookingUseCase) SubmitDetails(ctx context.Context, id string, input BookingDetailsInput) (*BookingView, error) {
	w, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if w.Step != StepDetails {
		return nil, transitionError()
	}

	if errs := ValidateBookingDetails(input); len(errs) > 0 {
		return nil, validationError(errs)
	}

	details := BookingDetails{
		Name:       strings.TrimSpace(input.Name),
		Phone:      NormalizePhone(input.Phone),
		Experience: *input.Experience,
	}

	quote, err := uc.Quoter.Quote(ctx, details.Experience, input.CouponCode)
	if err != nil {
		return nil, err
	}

	// Re-submitting after Back replaces the lead recorded for the earlier details.
	if w.LeadID != "" {
		if err := uc.Leads.Delete(ctx, w.LeadID); err != nil {
			log.WithError(err).WithField("lead_id", w.LeadID).Warn("⚠️ previous lead not removed")
		}
		w.LeadID = ""
	}

	var leadID string
	lead, err := entity.NewLead(details.Name, details.Phone, details.Experience, quote.Final, quote.CouponCode())
	if err == nil {
		err = uc.Leads.Create(ctx, lead)
	}
	if err != nil {
		log.WithError(err).WithField("booking_id", w.ID).Warn("⚠️ could not save lead, continuing")
	} else {
		leadID = lead.ID
	}

	if err := w.Priced(details, quote, leadID); err != nil {
		return nil, transitionError()
	}
	if err := uc.save(ctx, w); err != nil {
		return nil, err
	}
	return uc.view(w), nil
}

func (uc *BookingUseCase) ProceedToPayment(ctx context.Context, id string) (*BookingView, error) {
	return uc.step(ctx, id, (*BookingWizard).ProceedToPayment)
}

func (uc *BookingUseCase) Back(ctx context.Context, id string) (*BookingView, error) {
	return uc.step(ctx, id, (*BookingWizard).Back)
}

// SubmitPayment stores the paid customer and redeems the coupon as one unit:
// if the coupon can no longer be redeemed the customer row is removed again.
// Deleting the lead and notifying the team are best effort.
func (uc *BookingUseCase) SubmitPayment(ctx context.Context, id string, input PaymentInput) (*BookingView, error) {
	w, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if w.Step != StepPaymentInfo {
		return nil, transitionError()
	}

	if errs := ValidatePaymentDetails(input); len(errs) > 0 {
		return nil, validationError(errs)
	}

	payment := PaymentDetails{
		SenderNumber: NormalizePhone(input.SenderNumber),
		TransID:      strings.TrimSpace(input.TransID),
	}

	customer, err := entity.NewPaidCustomer(
		w.Details.Name, w.Details.Phone, w.Details.Experience,
		w.Quote.Final, payment.SenderNumber, payment.TransID,
	)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error(), Err: err}
	}
	customer.CouponCode = w.Quote.CouponCode()
	customer.Discount = w.Quote.Discount

	txn := NewTransaction()
	txn.Step("create_paid_customer",
		func(ctx context.Context) error { return uc.Customers.Create(ctx, customer) },
		func(ctx context.Context) error { return uc.Customers.Delete(ctx, customer.ID) },
	)
	if coupon := w.Quote.Coupon; coupon != nil {
		txn.Step("redeem_coupon", func(ctx context.Context) error {
			_, err := uc.Coupons.Redeem(ctx, coupon.ID)
			return err
		}, nil)
	}

	if err := txn.Execute(ctx); err != nil {
		if isCouponRejection(err) {
			return nil, couponError(err)
		}
		log.WithError(err).WithField("booking_id", w.ID).Error("❌ failed to save payment")
		return nil, &TechnicalError{Code: CodePaymentSaveFailed, Message: MsgPaymentSaveFailed, Err: err}
	}

	if w.LeadID != "" {
		if err := uc.Leads.Delete(ctx, w.LeadID); err != nil {
			log.WithError(err).WithField("lead_id", w.LeadID).Warn("⚠️ lead converted but not removed")
		}
	}

	uc.publish(ctx, customer)

	if err := w.Confirmed(payment, customer.ID); err != nil {
		return nil, transitionError()
	}
	if err := uc.save(ctx, w); err != nil {
		// The payment is stored; only the dialog state was lost.
		log.WithError(err).WithField("booking_id", w.ID).Warn("⚠️ could not persist confirmed wizard")
	}

	log.WithFields(log.Fields{
		"customer_id": customer.ID,
		"price":       customer.Price,
		"coupon":      customer.CouponCode,
	}).Info("✅ booking confirmed")

	return uc.view(w), nil
}

// Close discards the wizard, like closing the dialog.
func (uc *BookingUseCase) Close(ctx context.Context, id string) error {
	if err := uc.Wizards.DeleteWizard(ctx, id); err != nil {
		return &TechnicalError{Code: CodeSessionStore, Message: "could not close booking", Err: err}
	}
	return nil
}

func (uc *BookingUseCase) publish(ctx context.Context, c *entity.PaidCustomer) {
	if uc.Queue == nil {
		return
	}
	payload := queue.PaymentSubmittedPayload{
		CustomerID:   c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		Experience:   c.Experience,
		Price:        c.Price,
		Discount:     c.Discount,
		CouponCode:   c.CouponCode,
		SenderNumber: c.SenderNumber,
		TransID:      c.TransID,
		SubmittedAt:  c.CreatedAt,
	}
	if err := uc.Queue.PublishPaymentSubmitted(ctx, payload); err != nil {
		log.WithError(err).WithField("customer_id", c.ID).Warn("⚠️ payment saved but notification not queued")
	}
}

func (uc *BookingUseCase) step(ctx context.Context, id string, move func(*BookingWizard) error) (*BookingView, error) {
	w, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := move(w); err != nil {
		return nil, transitionError()
	}
	if err := uc.save(ctx, w); err != nil {
		return nil, err
	}
	return uc.view(w), nil
}

func (uc *BookingUseCase) load(ctx context.Context, id string) (*BookingWizard, error) {
	w, err := uc.Wizards.LoadWizard(ctx, id)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return nil, &DomainError{Code: CodeBookingNotFound, Message: "booking not found or expired", Err: err}
		}
		return nil, &TechnicalError{Code: CodeSessionStore, Message: "could not load booking", Err: err}
	}
	return w, nil
}

func (uc *BookingUseCase) save(ctx context.Context, w *BookingWizard) error {
	if err := uc.Wizards.SaveWizard(ctx, w); err != nil {
		return &TechnicalError{Code: CodeSessionStore, Message: "could not save booking", Err: err}
	}
	return nil
}

func transitionError() *DomainError {
	return &DomainError{Code: CodeInvalidTransition, Message: "this step is not available right now", Err: ErrInvalidTransition}
}

func isCouponRejection(err error) bool {
	return errors.Is(err, entity.ErrCouponExhausted) ||
		errors.Is(err, entity.ErrCouponExpired) ||
		errors.Is(err, entity.ErrCouponInactive) ||
		errors.Is(err, entity.ErrCouponNotFound)
}

// PreviewCoupon prices a coupon against an experience level without
// touching any wizard.
func (uc *BookingUseCase) PreviewCoupon(ctx context.Context, input CouponPreviewInput) (*QuoteView, error) {
	if input.Experience == nil || *input.Experience < 0 {
		return nil, validationError([]ValidationError{{"experience", MsgInvalidExperience}})
	}
	if entity.NormalizeCouponCode(input.Code) == "" {
		return nil, validationError([]ValidationError{{"code", MsgCouponNotFound}})
	}

	q, err := uc.Quoter.Quote(ctx, *input.Experience, input.Code)
	if err != nil {
		return nil, err
	}
	return quoteView(q), nil
}

func quoteView(q *Quote) *QuoteView {
	return &QuoteView{
		Base:       q.Base,
		Discount:   q.Discount,
		Final:      q.Final,
		CouponCode: q.CouponCode(),
		Breakdown:  q.Breakdown(),
	}
}
