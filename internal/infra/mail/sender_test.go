package mail

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/xavierca1/corporate-ask/internal/infra/queue"
)

type recordingDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *recordingDialer) DialAndSend(m ...*gomail.Message) error {
	d.sent = append(d.sent, m...)
	return d.err
}

func payload() queue.PaymentSubmittedPayload {
	return queue.PaymentSubmittedPayload{
		CustomerID:   "cust-1",
		Name:         "Rahim <b>Uddin</b>",
		Phone:        "01712345678",
		Experience:   5,
		Price:        3000,
		Discount:     500,
		CouponCode:   "SAVE500",
		SenderNumber: "01812345678",
		TransID:      "8J7D6G5H",
		SubmittedAt:  time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestNotifyPaymentSubmitted(t *testing.T) {
	dialer := &recordingDialer{}
	s := &EmailSender{From: "noreply@corporateask.com", To: "ops@corporateask.com", Dialer: dialer}

	require.NoError(t, s.NotifyPaymentSubmitted(context.Background(), payload()))
	require.Len(t, dialer.sent, 1)

	m := dialer.sent[0]
	assert.Equal(t, []string{"ops@corporateask.com"}, m.GetHeader("To"))
	assert.Contains(t, m.GetHeader("Subject")[0], "8J7D6G5H")

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "SAVE500")
	assert.NotContains(t, buf.String(), "<b>Uddin</b>")
}

func TestNotifyPaymentSubmittedSMTPError(t *testing.T) {
	smtpErr := errors.New("connection refused")
	s := &EmailSender{From: "a@b.c", To: "ops@b.c", Dialer: &recordingDialer{err: smtpErr}}

	err := s.NotifyPaymentSubmitted(context.Background(), payload())
	assert.ErrorIs(t, err, smtpErr)
}
