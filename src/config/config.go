package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	NotifyTransportLog  = "log"
	NotifyTransportAMQP = "amqp"
)

type Config struct {
	HTTPPort          string
	NotifyTransport   string
	NotifyTimeout     time.Duration
	RabbitMQHostName  string
	RabbitMQExchange  string
	RabbitMQQueueName string
	SimulatorSeed     int64
}

func LoadConfig() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables only")
	}

	config := &Config{
		HTTPPort:          os.Getenv("HTTP_PORT"),
		NotifyTransport:   os.Getenv("NOTIFY_TRANSPORT"),
		RabbitMQHostName:  os.Getenv("RABBITMQ_HOSTNAME"),
		RabbitMQExchange:  os.Getenv("RABBITMQ_EXCHANGE"),
		RabbitMQQueueName: os.Getenv("RABBITMQ_QUEUENAME"),
	}

	// Set default values if environment variables are not set
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}
	if config.NotifyTransport == "" {
		config.NotifyTransport = NotifyTransportLog
	}
	if config.NotifyTransport != NotifyTransportLog && config.NotifyTransport != NotifyTransportAMQP {
		log.Printf("Warning: unknown NOTIFY_TRANSPORT %q, using %q", config.NotifyTransport, NotifyTransportLog)
		config.NotifyTransport = NotifyTransportLog
	}
	if config.RabbitMQExchange == "" {
		config.RabbitMQExchange = "storefront_events"
	}
	if config.RabbitMQQueueName == "" {
		config.RabbitMQQueueName = "notification.requested"
	}

	timeoutSeconds, err := strconv.Atoi(os.Getenv("NOTIFY_TIMEOUT_SECONDS"))
	if err != nil || timeoutSeconds <= 0 {
		timeoutSeconds = 5
	}
	config.NotifyTimeout = time.Duration(timeoutSeconds) * time.Second

	// Seed 0 means seed from the wall clock at startup
	seed, err := strconv.ParseInt(os.Getenv("SIMULATOR_SEED"), 10, 64)
	if err != nil {
		seed = 0
	}
	config.SimulatorSeed = seed

	return config, nil
}
