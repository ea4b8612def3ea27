package domain

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
)

// OrderLedger is the append-only in-memory collection of created orders.
// Records are write-once: no update or delete operations exist.
type OrderLedger interface {
	Insert(ctx context.Context, order Order)
	GetByID(ctx context.Context, orderID string) *Order
	NewOrderNumber() string
	Count() int
}

type orderLedger struct {
	mu     sync.RWMutex
	orders []Order
	rng    *rand.Rand
}

func NewOrderLedger(rng *rand.Rand) OrderLedger {
	return &orderLedger{rng: rng}
}

func (l *orderLedger) Insert(_ context.Context, order Order) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders = append(l.orders, order)
}

func (l *orderLedger) GetByID(_ context.Context, orderID string) *Order {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, order := range l.orders {
		if order.ID == orderID {
			found := order
			return &found
		}
	}
	return nil // Order not found
}

// NewOrderNumber generates a human-facing order number in the form ORD-xxxxxx.
func (l *orderLedger) NewOrderNumber() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fmt.Sprintf("ORD-%d", 100000+l.rng.Intn(900000))
}

func (l *orderLedger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.orders)
}
