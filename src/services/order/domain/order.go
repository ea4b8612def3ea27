package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	StatusApproved TransactionStatus = "approved"
	StatusDeclined TransactionStatus = "declined"
	StatusError    TransactionStatus = "error"
)

type Customer struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
}

// PaymentInfo is kept only on the in-memory order record for the simulation.
// A real integration must never store raw card data at rest.
type PaymentInfo struct {
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

// Order is immutable once inserted into the ledger.
type Order struct {
	ID               string            `json:"id"`
	OrderNumber      string            `json:"orderNumber"`
	Customer         Customer          `json:"customer"`
	PaymentInfo      PaymentInfo       `json:"paymentInfo"`
	ProductVariantID string            `json:"productVariantId"`
	Quantity         int               `json:"quantity"`
	Subtotal         decimal.Decimal   `json:"subtotal"`
	Total            decimal.Decimal   `json:"total"`
	Status           TransactionStatus `json:"status"`
	CreatedAt        time.Time         `json:"createdAt"`
}

// UnitPrice returns the per-item price at time of purchase (subtotal / quantity).
func (o *Order) UnitPrice() decimal.Decimal {
	if o.Quantity == 0 {
		return decimal.Zero
	}
	return o.Subtotal.Div(decimal.NewFromInt(int64(o.Quantity)))
}
