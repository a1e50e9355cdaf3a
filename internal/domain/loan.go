package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/refi/refi-calculator/pkg/dateutil"
	"github.com/refi/refi-calculator/pkg/decimal"
	"gopkg.in/yaml.v3"
)

// Amount is a numeric loan input that tolerates loosely typed sources.
// JSON/YAML numbers, numeric strings, empty strings and null all decode;
// anything unreadable becomes 0 instead of failing the whole document.
type Amount float64

// Float returns the amount as a float64
func (a Amount) Float() float64 { return float64(a) }

// UnmarshalJSON implements json.Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = 0
			return nil
		}
		*a = Amount(decimal.SafeFloat(s))
		return nil
	}
	*a = Amount(decimal.SafeFloat(string(data)))
	return nil
}

// MarshalJSON implements json.Marshaler. Non-finite amounts encode as null.
func (a Amount) MarshalJSON() ([]byte, error) {
	f := float64(a)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (a *Amount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.Tag == "!!null" {
		*a = 0
		return nil
	}
	*a = Amount(decimal.SafeFloat(node.Value))
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (a Amount) MarshalYAML() (interface{}, error) {
	f := float64(a)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, nil
	}
	return f, nil
}

// LoanInputs holds everything entered about the existing mortgage and the
// proposed refinance. Rates are annual percentages, terms are months and
// PMI/MIP figures are annual dollar amounts.
type LoanInputs struct {
	// Original loan
	Appraisal         Amount `json:"appraisal" yaml:"appraisal"`
	CurrentValue      Amount `json:"currentValue" yaml:"currentValue"`
	OriginalPrincipal Amount `json:"originalPrincipal" yaml:"originalPrincipal"`
	OriginalRate      Amount `json:"originalRate" yaml:"originalRate"`
	OriginalTerm      Amount `json:"originalTerm" yaml:"originalTerm"`
	OriginalPMI       Amount `json:"originalPMI" yaml:"originalPMI"`
	CurrentPayment    Amount `json:"currentPayment" yaml:"currentPayment"`
	CurrentBalance    Amount `json:"currentBalance" yaml:"currentBalance"`

	// Refinance assumptions
	ClosingCosts  Amount `json:"closingCosts" yaml:"closingCosts"`
	RateDiscount  Amount `json:"rateDiscount" yaml:"rateDiscount"`
	MonthlyEscrow Amount `json:"monthlyEscrow" yaml:"monthlyEscrow"`
	NewRate       Amount `json:"newRate" yaml:"newRate"`
	NewTerm       Amount `json:"newTerm" yaml:"newTerm"`
	NewPMI        Amount `json:"newPMI" yaml:"newPMI"`
	CashOut       Amount `json:"cashOut" yaml:"cashOut"`
	EscrowRefund  Amount `json:"escrowRefund" yaml:"escrowRefund"`

	// FirstPaymentDate (YYYY-MM-DD) dates the schedules when present
	FirstPaymentDate string `json:"firstPaymentDate,omitempty" yaml:"firstPaymentDate,omitempty"`
}

// Finite reports whether every numeric input is a finite number. "Infinity"
// parses but has no JSON form, so such inputs do not survive a round trip.
func (in LoanInputs) Finite() bool {
	for _, a := range []Amount{
		in.Appraisal, in.CurrentValue, in.OriginalPrincipal, in.OriginalRate,
		in.OriginalTerm, in.OriginalPMI, in.CurrentPayment, in.CurrentBalance,
		in.ClosingCosts, in.RateDiscount, in.MonthlyEscrow, in.NewRate,
		in.NewTerm, in.NewPMI, in.CashOut, in.EscrowRefund,
	} {
		if math.IsInf(a.Float(), 0) || math.IsNaN(a.Float()) {
			return false
		}
	}
	return true
}

// StartDate returns the parsed first payment date. ok is false when the date is
// missing or unreadable, in which case schedules are left undated.
func (in LoanInputs) StartDate() (time.Time, bool) {
	t, err := dateutil.ParseDate(in.FirstPaymentDate)
	if err != nil || t.IsZero() {
		return time.Time{}, false
	}
	return t, true
}
