package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-storefront/src/infrastructure/log"
	"go-storefront/src/services/order/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	recipient string
	subject   string
	body      string
	sendCount int
	err       error
}

func (s *fakeSender) Send(_ context.Context, recipient, subject, body string) error {
	s.recipient = recipient
	s.subject = subject
	s.body = body
	s.sendCount++
	return s.err
}

func sampleOrder(status domain.TransactionStatus) domain.Order {
	return domain.Order{
		ID:          "order-1",
		OrderNumber: "ORD-482913",
		Customer: domain.Customer{
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
		Status:           status,
		CreatedAt:        time.Date(2026, time.August, 30, 10, 30, 0, 0, time.UTC),
	}
}

func TestNotify_ApprovedTemplate(t *testing.T) {
	sender := &fakeSender{}
	service := NewNotificationService(log.NewLogger(), sender)

	err := service.Notify(context.Background(), sampleOrder(domain.StatusApproved), "Black - Standard")
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", sender.recipient)
	assert.Equal(t, "Order Confirmation: ORD-482913", sender.subject)
	assert.Contains(t, sender.body, "ORD-482913")
	assert.Contains(t, sender.body, "Item: Black - Standard")
	assert.Contains(t, sender.body, "Quantity: 2")
	assert.Contains(t, sender.body, "Price: $199.99", "unit price is subtotal / quantity")
	assert.Contains(t, sender.body, "Subtotal: $399.98")
	assert.Contains(t, sender.body, "Total: $399.98")
	assert.Contains(t, sender.body, "Springfield, IL 62704")
}

func TestNotify_DeclinedTemplate(t *testing.T) {
	sender := &fakeSender{}
	service := NewNotificationService(log.NewLogger(), sender)

	err := service.Notify(context.Background(), sampleOrder(domain.StatusDeclined), "Black - Standard")
	require.NoError(t, err)

	assert.Equal(t, "Transaction Declined: ORD-482913", sender.subject)
	assert.Contains(t, sender.body, "Status: Declined")
	assert.Contains(t, sender.body, "Insufficient funds")
}

func TestNotify_ErrorTemplate(t *testing.T) {
	sender := &fakeSender{}
	service := NewNotificationService(log.NewLogger(), sender)

	err := service.Notify(context.Background(), sampleOrder(domain.StatusError), "Black - Standard")
	require.NoError(t, err)

	assert.Equal(t, "Transaction Error: ORD-482913", sender.subject)
	assert.Contains(t, sender.body, "Status: Processing Error")
	assert.Contains(t, sender.body, "no charges have been made")
}

func TestNotify_SenderFailureIsReturned(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp unavailable")}
	service := NewNotificationService(log.NewLogger(), sender)

	err := service.Notify(context.Background(), sampleOrder(domain.StatusApproved), "Black - Standard")
	assert.Error(t, err)
	assert.Equal(t, 1, sender.sendCount)
}

func TestNotify_UnknownStatusSendsNothing(t *testing.T) {
	sender := &fakeSender{}
	service := NewNotificationService(log.NewLogger(), sender)

	err := service.Notify(context.Background(), sampleOrder("pending"), "Black - Standard")
	assert.NoError(t, err)
	assert.Equal(t, 0, sender.sendCount)
}

func TestLogSender_NeverFails(t *testing.T) {
	sender := NewLogSender(log.NewLogger())

	err := sender.Send(context.Background(), "jane@example.com", "Order Confirmation: ORD-482913", "body")
	assert.NoError(t, err)
}
