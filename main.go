package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-storefront/src/config"
	"go-storefront/src/controllers"
	"go-storefront/src/infrastructure/log"
	"go-storefront/src/infrastructure/rabbitmq"
	"go-storefront/src/services/catalog"
	"go-storefront/src/services/notification"
	"go-storefront/src/services/order/domain"

	_ "go-storefront/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title Storefront Simulation API
// @version 1.0
// @description Demo storefront: catalog browsing, checkout and simulated payment outcomes.
func main() {
	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := log.NewLogger()

	var configs, err = config.LoadConfig()
	if err != nil {
		logger.Fatal(ctx, "Failed to load configuration", err)
	}
	logger.Info(ctx, "Configuration loaded successfully")

	// Initialize the in-memory catalog and seed the demo products
	catalogStore := catalog.NewStore()
	if err := seedCatalog(ctx, catalogStore, logger); err != nil {
		logger.Fatal(ctx, "Failed to seed catalog", err)
	}

	seed := configs.SimulatorSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	simulator := domain.NewTransactionSimulator(rand.New(rand.NewSource(seed)))
	ledger := domain.NewOrderLedger(rand.New(rand.NewSource(seed + 1)))

	// Notification delivery: log transport by default, RabbitMQ when configured.
	// A broken broker must not take the storefront down, so fall back to log.
	sender := notification.NewLogSender(logger)
	if configs.NotifyTransport == config.NotifyTransportAMQP {
		rabbitmqService, err := rabbitmq.NewService(configs.RabbitMQHostName, configs.RabbitMQExchange, configs.RabbitMQQueueName)
		if err != nil {
			logger.Exception(ctx, "Failed to create RabbitMQ service, falling back to log transport", err)
		} else if !rabbitmqService.IsHealthy() {
			logger.Warn(ctx, "RabbitMQ connection is not healthy, falling back to log transport")
			rabbitmqService.Close()
		} else {
			defer rabbitmqService.Close()
			sender = notification.NewAMQPSender(rabbitmqService, configs.RabbitMQQueueName)
			logger.Info(ctx, "RabbitMQ connection successful, using amqp notification transport")
		}
	}

	notificationService := notification.NewNotificationService(logger, sender)
	orderService := domain.NewOrderService(logger, catalogStore, ledger, simulator, notificationService, configs.NotifyTimeout)

	// Create controllers
	catalogController := controllers.NewCatalogController(catalogStore)
	orderController := controllers.NewOrderController(orderService, catalogStore)

	app := fiber.New(fiber.Config{
		ServerHeader: "Storefront-Service",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			logger.Exception(c.Context(), "HTTP request error", err)
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Add middleware
	app.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowOriginsFunc: func(_ string) bool { return true },
	}))
	app.Use(recover.New())
	app.Use(controllers.RequestLogger(logger))

	// Add routes
	app.Get("/api/swagger/*", fiberSwagger.WrapHandler)
	app.Get("/api/healthCheck", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"orders":    ledger.Count(),
			"timestamp": time.Now().UTC(),
		})
	})

	catalogController.Route(app)
	orderController.Route(app)

	// Set up graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	serverShutdown := make(chan error, 1)
	go func() {
		logger.Info(ctx, "Starting server on port "+configs.HTTPPort)
		if err := app.Listen(":" + configs.HTTPPort); err != nil {
			serverShutdown <- err
		}
	}()

	// Wait for shutdown signal or server error
	select {
	case <-c:
		logger.Info(ctx, "Shutdown signal received, shutting down gracefully...")
	case err := <-serverShutdown:
		logger.Exception(ctx, "Server error occurred", err)
	}

	// Cancel context to stop background processes
	cancel()

	// Shutdown server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Exception(ctx, "Server shutdown error", err)
	}

	logger.Info(ctx, "Server shutdown complete")
}

// seedCatalog loads the demo products into the catalog store
func seedCatalog(ctx context.Context, store catalog.Store, logger log.Logger) error {
	for _, product := range catalog.DefaultProducts() {
		if err := store.SeedProduct(ctx, product); err != nil {
			logger.Exception(ctx, "Failed to seed product: "+product.Name, err)
			return err
		}
	}

	logger.Info(ctx, "Catalog seeded successfully")
	return nil
}
