package mail

import "gopkg.in/gomail.v2"

type PaymentEmailData struct {
	CustomerID   string
	Name         string
	Phone        string
	Experience   int
	Price        int
	Discount     int
	CouponCode   string
	SenderNumber string
	TransID      string
	SubmittedAt  string
}

// Dialer is satisfied by *gomail.Dialer.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailSender struct {
	From   string
	To     string
	Dialer Dialer
}
