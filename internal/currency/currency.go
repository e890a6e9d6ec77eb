// Package currency turns ledger amounts into display strings and sums them
// without the order dependence of float addition.
package currency

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount pairs a raw value with its display form.
type Amount struct {
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// NewAmount formats value in the given ISO 4217 currency.
func NewAmount(value float64, code string) Amount {
	return Amount{Value: value, Display: Format(value, code)}
}

// Format renders value with the currency's symbol and minor units. Unknown
// codes fall back to a plain two-decimal rendering followed by the code.
func Format(value float64, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return decimal.NewFromFloat(value).StringFixed(2) + " " + code
	}

	factor := decimal.New(1, int32(cur.Fraction))
	minor := decimal.NewFromFloat(value).Mul(factor).Round(0)
	return money.New(minor.IntPart(), cur.Code).Display()
}

// Decimal orders of magnitude beyond which a value is certainly out of
// float64 range, or certainly rounds to zero.
const (
	maxMagnitude = 310
	minMagnitude = -330
)

// Float converts d for storage. ok is false when d lies outside the float64
// range, since such values cannot be encoded as JSON.
func Float(d decimal.Decimal) (value float64, ok bool) {
	// Extreme exponents are settled without converting
	magnitude := int64(d.Exponent()) + int64(d.NumDigits())
	switch {
	case d.IsZero() || magnitude < minMagnitude:
		return 0, true
	case magnitude > maxMagnitude:
		return 0, false
	}
	value = d.InexactFloat64()
	return value, !math.IsInf(value, 0) && !math.IsNaN(value)
}

// Sum adds values exactly in decimal and converts once at the end, so the
// result does not depend on the order of values.
func Sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.InexactFloat64()
}

// Sub returns a - b computed in decimal.
func Sub(a, b float64) float64 {
	return decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).InexactFloat64()
}

// Valid reports whether code is a currency go-money knows.
func Valid(code string) bool {
	return money.GetCurrency(code) != nil
}
