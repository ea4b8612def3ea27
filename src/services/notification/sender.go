package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"go-storefront/src/infrastructure/log"
	"go-storefront/src/infrastructure/rabbitmq"
)

// logSender writes the would-be email through the structured logger.
// This is the reference delivery behavior of the simulation.
type logSender struct {
	logger log.Logger
}

func NewLogSender(logger log.Logger) Sender {
	return &logSender{logger: logger}
}

func (s *logSender) Send(ctx context.Context, recipient, subject, body string) error {
	preview := body
	if len(preview) > 100 {
		preview = preview[:100] + "..."
	}
	s.logger.InfoWithExtra(ctx, "Email would be sent with the following details", map[string]any{
		"To":      recipient,
		"Subject": subject,
		"Content": preview,
	})
	return nil
}

// amqpSender hands the rendered message to RabbitMQ for an external mailer to
// deliver, decoupling delivery latency and failures from the checkout path.
type amqpSender struct {
	publisher *rabbitmq.Service
	topic     string
}

type emailMessage struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

func NewAMQPSender(publisher *rabbitmq.Service, topic string) Sender {
	return &amqpSender{publisher: publisher, topic: topic}
}

func (s *amqpSender) Send(ctx context.Context, recipient, subject, body string) error {
	message, err := json.Marshal(emailMessage{
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email message: %w", err)
	}

	publish := func() error { return s.publisher.Publish(s.topic, message) }
	if err := publishWithContext(ctx, publish); err != nil {
		return fmt.Errorf("failed to publish email message: %w", err)
	}
	return nil
}

// publishWithContext runs publish on its own goroutine so a hung broker
// cannot hold the dispatch past its timeout. The publish goroutine may
// still finish in the background; its result is then discarded.
func publishWithContext(ctx context.Context, publish func() error) error {
	done := make(chan error, 1)
	go func() {
		done <- publish()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
