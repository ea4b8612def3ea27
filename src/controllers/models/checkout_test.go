package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validRequest() CheckoutRequest {
	return CheckoutRequest{
		Customer: CustomerPayload{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "5551234567",
			Address:  "1 Main Street",
			City:     "Springfield",
			State:    "IL",
			ZipCode:  "62704",
		},
		Payment: PaymentPayload{
			CardNumber: "4111111111111111",
			ExpiryDate: futureExpiry(),
			CVV:        "123",
		},
		VariantID: "var_001",
		Quantity:  1,
	}
}

func futureExpiry() string {
	next := time.Now().AddDate(1, 0, 0)
	return fmt.Sprintf("%02d/%02d", int(next.Month()), next.Year()%100)
}

func pastExpiry() string {
	previous := time.Date(time.Now().Year()-1, time.January, 1, 0, 0, 0, 0, time.UTC)
	return fmt.Sprintf("%02d/%02d", int(previous.Month()), previous.Year()%100)
}

func TestCheckoutRequest_ValidPasses(t *testing.T) {
	request := validRequest()
	assert.Empty(t, request.Validate())
}

func TestCheckoutRequest_MultibyteMinimumsPass(t *testing.T) {
	request := validRequest()
	request.Customer.FullName = "Åsa"
	request.Customer.City = "Gö"
	request.Customer.State = "ÅÄ"

	assert.Empty(t, request.Validate())
}

func TestCheckoutRequest_FieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *CheckoutRequest)
		field  string
	}{
		{
			name:   "full name too short",
			mutate: func(r *CheckoutRequest) { r.Customer.FullName = "Jo" },
			field:  "fullName",
		},
		{
			name:   "multibyte full name counts runes not bytes",
			mutate: func(r *CheckoutRequest) { r.Customer.FullName = "Ök" },
			field:  "fullName",
		},
		{
			name:   "invalid email",
			mutate: func(r *CheckoutRequest) { r.Customer.Email = "not-an-email" },
			field:  "email",
		},
		{
			name:   "phone too short",
			mutate: func(r *CheckoutRequest) { r.Customer.Phone = "555123456" },
			field:  "phone",
		},
		{
			name:   "phone with letters",
			mutate: func(r *CheckoutRequest) { r.Customer.Phone = "555123456a" },
			field:  "phone",
		},
		{
			name:   "address too short",
			mutate: func(r *CheckoutRequest) { r.Customer.Address = "1 St" },
			field:  "address",
		},
		{
			name:   "city too short",
			mutate: func(r *CheckoutRequest) { r.Customer.City = "A" },
			field:  "city",
		},
		{
			name:   "state too short",
			mutate: func(r *CheckoutRequest) { r.Customer.State = "I" },
			field:  "state",
		},
		{
			name:   "zip code wrong length",
			mutate: func(r *CheckoutRequest) { r.Customer.ZipCode = "627" },
			field:  "zipCode",
		},
		{
			name:   "card number too short",
			mutate: func(r *CheckoutRequest) { r.Payment.CardNumber = "411111111111111" },
			field:  "cardNumber",
		},
		{
			name:   "card number with spaces",
			mutate: func(r *CheckoutRequest) { r.Payment.CardNumber = "4111 1111 1111 1111" },
			field:  "cardNumber",
		},
		{
			name:   "expiry in the past",
			mutate: func(r *CheckoutRequest) { r.Payment.ExpiryDate = pastExpiry() },
			field:  "expiryDate",
		},
		{
			name:   "expiry month out of range",
			mutate: func(r *CheckoutRequest) { r.Payment.ExpiryDate = "13/30" },
			field:  "expiryDate",
		},
		{
			name:   "expiry malformed",
			mutate: func(r *CheckoutRequest) { r.Payment.ExpiryDate = "1230" },
			field:  "expiryDate",
		},
		{
			name:   "cvv wrong length",
			mutate: func(r *CheckoutRequest) { r.Payment.CVV = "12" },
			field:  "cvv",
		},
		{
			name:   "missing variant id",
			mutate: func(r *CheckoutRequest) { r.VariantID = "" },
			field:  "variantId",
		},
		{
			name:   "zero quantity",
			mutate: func(r *CheckoutRequest) { r.Quantity = 0 },
			field:  "quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := validRequest()
			tt.mutate(&request)

			fieldErrors := request.Validate()
			assert.Contains(t, fieldErrors, tt.field)
			assert.Len(t, fieldErrors, 1)
		})
	}
}

func TestValidExpiry_CurrentMonthAccepted(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

	assert.True(t, validExpiry("08/26", now), "current month is not past")
	assert.True(t, validExpiry("09/26", now))
	assert.False(t, validExpiry("07/26", now), "previous month is past")
}
