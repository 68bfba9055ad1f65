// Package pricing computes the derived money values of a cart. All
// functions are pure; prices are float64 USD amounts like everywhere
// else in the store.
package pricing

import "math"

const TaxRate = 0.08

// Free shipping kicks in at 100, the reduced rate at 50. Both bounds
// are inclusive.
const (
	freeShippingThreshold    = 100
	reducedShippingThreshold = 50
	reducedShippingCost      = 5.99
	standardShippingCost     = 9.99
)

// Tax returns the tax amount for a subtotal, rounded to cents.
func Tax(subtotal float64) float64 {
	return math.Round(subtotal*TaxRate*100) / 100
}

// Shipping returns the shipping cost bracket for a subtotal.
func Shipping(subtotal float64) float64 {
	switch {
	case subtotal >= freeShippingThreshold:
		return 0
	case subtotal >= reducedShippingThreshold:
		return reducedShippingCost
	default:
		return standardShippingCost
	}
}

// Total returns subtotal plus tax plus shipping.
func Total(subtotal float64) float64 {
	return subtotal + Tax(subtotal) + Shipping(subtotal)
}
