package checkout

import (
	"regexp"
	"strings"

	"github.com/fjod/storefront/internal/domain"
)

// FieldErrors maps a form field name to its validation message. An
// empty map means the stage passed validation. Validation failures are
// data, never Go errors: the user corrects them and resubmits.
type FieldErrors map[string]string

var (
	zipRe    = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	phoneRe  = regexp.MustCompile(`^\+?[\d\s\-()]{10,}$`)
	expiryRe = regexp.MustCompile(`^\d{2}/\d{2}$`)
	digitsRe = regexp.MustCompile(`^\d+$`)
)

// ValidateShipping checks the shipping address form.
func ValidateShipping(a domain.ShippingAddress) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(a.FullName) == "" {
		errs["full_name"] = "Full name is required"
	}
	if strings.TrimSpace(a.AddressLine1) == "" {
		errs["address_line1"] = "Address is required"
	}
	if strings.TrimSpace(a.City) == "" {
		errs["city"] = "City is required"
	}
	if strings.TrimSpace(a.State) == "" {
		errs["state"] = "State is required"
	}
	if !zipRe.MatchString(a.ZipCode) {
		errs["zip_code"] = "Invalid ZIP code"
	}
	if !phoneRe.MatchString(a.Phone) {
		errs["phone"] = "Invalid phone number"
	}
	return errs
}

// ValidatePayment checks the payment form. Card number digits are
// validated for length only; this store never charges anything.
func ValidatePayment(p domain.PaymentInfo) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(p.CardHolder) == "" {
		errs["card_holder"] = "Cardholder name is required"
	}
	cardNumber := strings.Join(strings.Fields(p.CardNumber), "")
	if len(cardNumber) < 13 || !digitsRe.MatchString(cardNumber) {
		errs["card_number"] = "Invalid card number"
	}
	if !expiryRe.MatchString(p.ExpiryDate) {
		errs["expiry_date"] = "Invalid expiry date (MM/YY)"
	}
	if len(p.CVV) < 3 {
		errs["cvv"] = "Invalid CVV"
	}
	return errs
}
