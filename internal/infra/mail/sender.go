package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/corporate-ask/internal/infra/queue"
)

//go:embed templates/*.html
var templateFS embed.FS

var paymentTemplate = template.Must(template.ParseFS(templateFS, "templates/payment_submitted.html"))

// NewEmailSender sends from `from` to the operations inbox `to` over SMTP.
func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		From:   from,
		To:     to,
		Dialer: gomail.NewDialer(host, port, user, password),
	}
}

func (s *EmailSender) NotifyPaymentSubmitted(ctx context.Context, p queue.PaymentSubmittedPayload) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m, err := s.paymentMessage(p)
	if err != nil {
		return err
	}

	if err := s.Dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send SMTP email: %w", err)
	}
	return nil
}

func (s *EmailSender) paymentMessage(p queue.PaymentSubmittedPayload) (*gomail.Message, error) {
	data := PaymentEmailData{
		CustomerID:   p.CustomerID,
		Name:         p.Name,
		Phone:        p.Phone,
		Experience:   p.Experience,
		Price:        p.Price,
		Discount:     p.Discount,
		CouponCode:   p.CouponCode,
		SenderNumber: p.SenderNumber,
		TransID:      p.TransID,
		SubmittedAt:  p.SubmittedAt.Format("02 Jan 2006 15:04"),
	}

	var body bytes.Buffer
	if err := paymentTemplate.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("New payment: %s (৳%d, TrxID %s)", p.Name, p.Price, p.TransID))
	m.SetBody("text/html", body.String())
	return m, nil
}
