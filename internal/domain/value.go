package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Value is a numeric result that may be absent. Calculations that cannot
// produce a meaningful figure (division by zero, a payment that never
// amortizes the balance, a zero result) return an invalid Value, which
// formatters render as a dash.
type Value struct {
	Amount float64
	Valid  bool
}

// Some wraps a present value
func Some(v float64) Value { return Value{Amount: v, Valid: true} }

// None is the absent value
func None() Value { return Value{} }

// ResultOf keeps the historical display rule: zero and NaN mean "nothing to
// show". Infinite results are kept.
func ResultOf(v float64) Value {
	if v == 0 || math.IsNaN(v) {
		return None()
	}
	return Some(v)
}

// FiniteResultOf is ResultOf that also discards infinities
func FiniteResultOf(v float64) Value {
	if math.IsInf(v, 0) {
		return None()
	}
	return ResultOf(v)
}

// Or returns the amount when present, def otherwise
func (v Value) Or(def float64) float64 {
	if !v.Valid {
		return def
	}
	return v.Amount
}

// Float returns the amount, or 0 when absent
func (v Value) Float() float64 { return v.Or(0) }

// MarshalJSON encodes absent and non-finite values as null
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid || math.IsNaN(v.Amount) || math.IsInf(v.Amount, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(v.Amount, 'f', -1, 64)), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (v *Value) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*v = None()
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Some(f)
	return nil
}
