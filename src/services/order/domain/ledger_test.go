package domain

import (
	"context"
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger() OrderLedger {
	return NewOrderLedger(rand.New(rand.NewSource(42)))
}

func testOrder(id string) Order {
	return Order{
		ID:          id,
		OrderNumber: "ORD-123456",
		Customer: Customer{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "5551234567",
			Address:  "1 Main Street",
			City:     "Springfield",
			State:    "IL",
			ZipCode:  "62704",
		},
		ProductVariantID: "var_001",
		Quantity:         2,
		Subtotal:         decimal.RequireFromString("399.98"),
		Total:            decimal.RequireFromString("399.98"),
		Status:           StatusApproved,
		CreatedAt:        time.Now(),
	}
}

func TestOrderLedger_InsertAndGet(t *testing.T) {
	ledger := newTestLedger()
	ctx := context.Background()

	ledger.Insert(ctx, testOrder("order-1"))
	ledger.Insert(ctx, testOrder("order-2"))

	found := ledger.GetByID(ctx, "order-1")
	require.NotNil(t, found)
	assert.Equal(t, "order-1", found.ID)
	assert.Equal(t, 2, ledger.Count())
}

func TestOrderLedger_GetUnknownIDReturnsNil(t *testing.T) {
	ledger := newTestLedger()

	assert.Nil(t, ledger.GetByID(context.Background(), "no-such-order"))
}

func TestOrderLedger_ReturnsCopies(t *testing.T) {
	ledger := newTestLedger()
	ctx := context.Background()
	ledger.Insert(ctx, testOrder("order-1"))

	first := ledger.GetByID(ctx, "order-1")
	require.NotNil(t, first)
	first.Status = StatusError
	first.Quantity = 99

	second := ledger.GetByID(ctx, "order-1")
	require.NotNil(t, second)
	assert.Equal(t, StatusApproved, second.Status)
	assert.Equal(t, 2, second.Quantity)
}

func TestOrderLedger_NewOrderNumberFormat(t *testing.T) {
	ledger := newTestLedger()
	format := regexp.MustCompile(`^ORD-\d{6}$`)

	for i := 0; i < 50; i++ {
		assert.Regexp(t, format, ledger.NewOrderNumber())
	}
}
