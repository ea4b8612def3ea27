package models

import (
	"net/mail"
	"regexp"
	"time"
	"unicode/utf8"
)

var (
	digits10 = regexp.MustCompile(`^\d{10}$`)
	digits5  = regexp.MustCompile(`^\d{5}$`)
	digits16 = regexp.MustCompile(`^\d{16}$`)
	digits3  = regexp.MustCompile(`^\d{3}$`)
)

type CustomerPayload struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
}

type PaymentPayload struct {
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

type CheckoutRequest struct {
	Customer  CustomerPayload `json:"customer"`
	Payment   PaymentPayload  `json:"payment"`
	VariantID string          `json:"variantId"`
	Quantity  int             `json:"quantity"`
}

// Validate checks every field against the checkout form rules and returns
// per-field messages. An empty map means the request is valid.
func (r *CheckoutRequest) Validate() map[string]string {
	fieldErrors := map[string]string{}

	if utf8.RuneCountInString(r.Customer.FullName) < 3 {
		fieldErrors["fullName"] = "Full name must be at least 3 characters"
	}
	if _, err := mail.ParseAddress(r.Customer.Email); err != nil {
		fieldErrors["email"] = "Invalid email address"
	}
	if !digits10.MatchString(r.Customer.Phone) {
		fieldErrors["phone"] = "Phone number must be 10 digits"
	}
	if utf8.RuneCountInString(r.Customer.Address) < 5 {
		fieldErrors["address"] = "Address must be at least 5 characters"
	}
	if utf8.RuneCountInString(r.Customer.City) < 2 {
		fieldErrors["city"] = "City must be at least 2 characters"
	}
	if utf8.RuneCountInString(r.Customer.State) < 2 {
		fieldErrors["state"] = "State must be at least 2 characters"
	}
	if !digits5.MatchString(r.Customer.ZipCode) {
		fieldErrors["zipCode"] = "Zip code must be 5 digits"
	}

	if !digits16.MatchString(r.Payment.CardNumber) {
		fieldErrors["cardNumber"] = "Card number must be 16 digits"
	}
	if !validExpiry(r.Payment.ExpiryDate, time.Now()) {
		fieldErrors["expiryDate"] = "Expiry date must be a valid future date (MM/YY)"
	}
	if !digits3.MatchString(r.Payment.CVV) {
		fieldErrors["cvv"] = "CVV must be 3 digits"
	}

	if r.VariantID == "" {
		fieldErrors["variantId"] = "Variant id is required"
	}
	if r.Quantity < 1 {
		fieldErrors["quantity"] = "Quantity must be at least 1"
	}

	return fieldErrors
}

// validExpiry accepts MM/YY with a month in [1,12] whose (month, year) pair is
// not strictly before the current month.
func validExpiry(expiry string, now time.Time) bool {
	parsed, err := time.Parse("01/06", expiry)
	if err != nil {
		return false
	}
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	expiryMonth := time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, time.UTC)
	return !expiryMonth.Before(currentMonth)
}
