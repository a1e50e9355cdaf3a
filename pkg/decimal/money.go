package decimal

import (
	"math"

	"github.com/shopspring/decimal"
)

// Money is an amount for display, always shown to the cent
type Money struct {
	decimal.Decimal
}

// NewMoney creates a Money from a float64.
// Non-finite values have no decimal representation and become zero.
func NewMoney(value float64) Money {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{decimal.Zero}
	}
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal wraps a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// String returns the amount fixed to two decimals, half away from zero
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format prefixes the dollar sign, "-$12.50" for negative amounts
func (m Money) Format() string {
	if m.Decimal.IsNegative() {
		return "-$" + m.Decimal.Neg().StringFixed(2)
	}
	return "$" + m.String()
}
