// Package checkout derives the order summary shown before payment.
package checkout

import (
	"math"

	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
)

const DefaultTaxRate = 0.08

// Summarize computes tax and total from an unrounded subtotal. Tax is taken on
// the exact subtotal and every field is rounded to the minor currency unit.
func Summarize(subtotal, taxRate float64) models.CheckoutSummary {
	tax := subtotal * taxRate

	return models.CheckoutSummary{
		Subtotal: RoundMinor(subtotal),
		TaxRate:  taxRate,
		Tax:      RoundMinor(tax),
		Total:    RoundMinor(subtotal + tax),
	}
}

// RoundMinor rounds half away from zero to two decimal places.
func RoundMinor(v float64) float64 {
	return math.Round(v*100) / 100
}

// MinorUnits converts an amount to integer cents.
func MinorUnits(v float64) int64 {
	return int64(math.Round(v * 100))
}
