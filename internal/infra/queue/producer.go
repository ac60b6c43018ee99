package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// PaymentSubmittedPayload is published once a paid customer row is saved.
type PaymentSubmittedPayload struct {
	CustomerID   string    `json:"customer_id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Experience   int       `json:"experience"`
	Price        int       `json:"price"`
	Discount     int       `json:"discount"`
	CouponCode   string    `json:"coupon_code,omitempty"`
	SenderNumber string    `json:"sender_number"`
	TransID      string    `json:"trans_id"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// Publisher is the part of *amqp.Channel the producer needs.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitMQProducer struct {
	Ch Publisher
}

func NewProducer(ch Publisher) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

func (p *RabbitMQProducer) PublishPaymentSubmitted(ctx context.Context, payload PaymentSubmittedPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			MessageId:    payload.CustomerID,
			Timestamp:    payload.SubmittedAt,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to RabbitMQ: %w", err)
	}
	return nil
}
