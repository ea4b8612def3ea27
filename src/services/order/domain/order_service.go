package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-storefront/src/infrastructure/log"
	"go-storefront/src/services/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Notifier delivers an order outcome message to the customer.
// Delivery failures are the caller's problem to log, never to roll back.
type Notifier interface {
	Notify(ctx context.Context, order Order, itemName string) error
}

type CreateOrderInput struct {
	Customer  Customer
	Payment   PaymentInfo
	VariantID string
	Quantity  int
	Subtotal  decimal.Decimal
	Total     decimal.Decimal
}

type OrderService interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error)
	GetOrderByID(ctx context.Context, orderID string) (*Order, error)
}

type orderService struct {
	logger        log.Logger
	catalogStore  catalog.Store
	ledger        OrderLedger
	simulator     TransactionSimulator
	notifier      Notifier
	notifyTimeout time.Duration
}

func NewOrderService(
	logger log.Logger,
	catalogStore catalog.Store,
	ledger OrderLedger,
	simulator TransactionSimulator,
	notifier Notifier,
	notifyTimeout time.Duration,
) OrderService {
	return &orderService{
		logger:        logger,
		catalogStore:  catalogStore,
		ledger:        ledger,
		simulator:     simulator,
		notifier:      notifier,
		notifyTimeout: notifyTimeout,
	}
}

// CreateOrder runs the checkout workflow: resolve the variant, decrement its
// inventory, simulate the payment outcome, persist the order in the ledger and
// dispatch the customer notification in the background. The inventory decrement
// is atomic with a floor check, so a failure leaves nothing mutated.
func (s *orderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*Order, error) {
	if input.Quantity < 1 {
		return nil, errors.New("order quantity must be at least 1")
	}

	variant, err := s.catalogStore.GetVariantByID(ctx, input.VariantID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve variant %s: %w", input.VariantID, err)
	}
	if variant == nil {
		return nil, catalog.ErrVariantNotFound
	}

	if err := s.catalogStore.DecrementInventory(ctx, input.VariantID, input.Quantity); err != nil {
		return nil, err
	}

	order := Order{
		ID:               uuid.NewString(),
		OrderNumber:      s.ledger.NewOrderNumber(),
		Customer:         input.Customer,
		PaymentInfo:      input.Payment,
		ProductVariantID: input.VariantID,
		Quantity:         input.Quantity,
		Subtotal:         input.Subtotal,
		Total:            input.Total,
		Status:           s.simulator.Simulate(),
		CreatedAt:        time.Now().Local(),
	}

	s.ledger.Insert(ctx, order)

	s.logger.InfoWithExtra(ctx, "Order created", map[string]any{
		"OrderID":     order.ID,
		"OrderNumber": order.OrderNumber,
		"VariantID":   order.ProductVariantID,
		"Quantity":    order.Quantity,
		"Status":      order.Status,
	})

	// Fire-and-forget: notification latency or failure must never delay or
	// invalidate the order already visible in the ledger.
	go s.dispatchNotification(order, variant.Name)

	return &order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (*Order, error) {
	return s.ledger.GetByID(ctx, orderID), nil
}

func (s *orderService) dispatchNotification(order Order, itemName string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
	defer cancel()

	if err := s.notifier.Notify(ctx, order, itemName); err != nil {
		s.logger.WarnWithExtra(ctx, "Notification dispatch failed, order remains valid", map[string]any{
			"OrderID":   order.ID,
			"Exception": err.Error(),
		})
	}
}
