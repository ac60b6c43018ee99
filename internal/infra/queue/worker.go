package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

// Notifier tells the operations team about a submitted payment.
type Notifier interface {
	NotifyPaymentSubmitted(ctx context.Context, payload PaymentSubmittedPayload) error
}

type Worker struct {
	Channel  *amqp.Channel
	Notifier Notifier
}

func NewWorker(ch *amqp.Channel, notifier Notifier) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
	}
}

// Start consumes queueName until ctx is cancelled or the channel closes.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	log.WithField("queue", queueName).Info("[*] worker waiting for payments")

	for {
		select {
		case <-ctx.Done():
			log.Info("🛑 payment worker stopped")
			return nil
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("consumer channel closed")
			}
			w.handle(ctx, d)
		}
	}
}

func (w *Worker) handle(ctx context.Context, d amqp.Delivery) {
	if err := w.processMessage(ctx, d.Body); err != nil {
		log.WithError(err).Error("❌ [WORKER] payment notification failed")
		// No requeue: the dead-letter queue keeps it for inspection.
		d.Nack(false, false)
		return
	}
	d.Ack(false)
}

func (w *Worker) processMessage(ctx context.Context, body []byte) error {
	var payload PaymentSubmittedPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}

	log.WithFields(log.Fields{
		"customer_id": payload.CustomerID,
		"trans_id":    payload.TransID,
	}).Info("📥 [WORKER] payment received")

	if err := w.Notifier.NotifyPaymentSubmitted(ctx, payload); err != nil {
		return fmt.Errorf("notify customer %s: %w", payload.CustomerID, err)
	}

	log.WithField("customer_id", payload.CustomerID).Info("✅ [WORKER] operations team notified")
	return nil
}
