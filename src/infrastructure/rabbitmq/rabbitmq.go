package rabbitmq

import (
	"fmt"

	"github.com/streadway/amqp"
)

// Service publishes storefront messages to a topic exchange. The notification
// queue is declared with a dead-letter exchange so undeliverable messages are
// parked instead of dropped.
type Service struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewService(host, exchange, queueName string) (*Service, error) {
	conn, err := amqp.Dial(host)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare an exchange: %w", err)
	}

	// dead-letter exchange
	dlxName := exchange + ".dlx"
	err = ch.ExchangeDeclare(
		dlxName,
		"fanout",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare a dead-letter exchange: %w", err)
	}

	dlqName := queueName + ".dlq"
	_, err = ch.QueueDeclare(
		dlqName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare a dead-letter queue: %w", err)
	}

	err = ch.QueueBind(
		dlqName,
		"",
		dlxName,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to bind dead-letter queue: %w", err)
	}

	// Main notification queue with dead-lettering enabled
	args := amqp.Table{
		"x-dead-letter-exchange": dlxName,
	}
	_, err = ch.QueueDeclare(
		queueName,
		true,
		false,
		false,
		false,
		args,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare a queue: %w", err)
	}

	err = ch.QueueBind(
		queueName,
		queueName, // routing key (same as queue name)
		exchange,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to bind queue %s: %w", queueName, err)
	}

	return &Service{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
	}, nil
}

// Publish sends a persistent message to a topic on the exchange.
// Returns an error if the connection is closed or publishing fails.
func (s *Service) Publish(topic string, body []byte) error {
	if topic == "" {
		return fmt.Errorf("topic cannot be empty")
	}
	if body == nil {
		return fmt.Errorf("message body cannot be nil")
	}

	if s.conn.IsClosed() {
		return fmt.Errorf("connection to RabbitMQ is closed")
	}
	if s.channel == nil {
		return fmt.Errorf("channel is not initialized")
	}

	err := s.channel.Publish(
		s.exchange, // exchange
		topic,      // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message to topic '%s': %w", topic, err)
	}

	return nil
}

// Close closes the connection to RabbitMQ.
func (s *Service) Close() {
	s.channel.Close()
	s.conn.Close()
}

// IsHealthy checks if the RabbitMQ connection is healthy
func (s *Service) IsHealthy() bool {
	return !s.conn.IsClosed() && s.channel != nil
}
