package domain

import (
	"fmt"
	"time"

	"github.com/refi/refi-calculator/pkg/decimal"
)

// ScenarioKind names one of the four loan/payment combinations being compared
type ScenarioKind string

const (
	CurrentMinimum ScenarioKind = "currentMinimum"
	CurrentPlanned ScenarioKind = "currentPlanned"
	RefiMinimum    ScenarioKind = "refiMinimum"
	RefiPlanned    ScenarioKind = "refiPlanned"
)

// AllScenarios lists the scenarios in display order
var AllScenarios = []ScenarioKind{CurrentMinimum, CurrentPlanned, RefiMinimum, RefiPlanned}

// ParseScenarioKind resolves a scenario name, case-sensitive
func ParseScenarioKind(s string) (ScenarioKind, error) {
	for _, k := range AllScenarios {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown scenario %q", s)
}

// Label returns the human readable scenario name
func (k ScenarioKind) Label() string {
	switch k {
	case CurrentMinimum:
		return "Current Minimum Payment"
	case CurrentPlanned:
		return "Current Planned Payment"
	case RefiMinimum:
		return "Refi Minimum Payment"
	case RefiPlanned:
		return "Refi Planned Payment"
	}
	return string(k)
}

// IsRefinance reports whether the scenario describes the new loan
func (k ScenarioKind) IsRefinance() bool {
	return k == RefiMinimum || k == RefiPlanned
}

// AmortizationRow is one simulated month of a loan
type AmortizationRow struct {
	Month            int        `json:"month"`
	Date             *time.Time `json:"date,omitempty"`
	BeginningBalance float64    `json:"beginning_balance"`
	Interest         float64    `json:"interest"`
	Payment          float64    `json:"payment"`
	PMI              float64    `json:"pmi"`
	Principal        float64    `json:"principal"`
}

// EndingBalance is the balance left after this month's principal
func (r AmortizationRow) EndingBalance() float64 {
	return decimal.RoundCents(r.BeginningBalance - r.Principal)
}

// Schedule is an ordered month-by-month amortization
type Schedule []AmortizationRow

// EndingBalance returns the balance after the last row, or 0 for an empty schedule
func (s Schedule) EndingBalance() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].EndingBalance()
}

// TotalInterest sums the interest column
func (s Schedule) TotalInterest() float64 {
	total := 0.0
	for _, r := range s {
		total = decimal.RoundCents(total + r.Interest)
	}
	return total
}

// TotalPMI sums the PMI column
func (s Schedule) TotalPMI() float64 {
	total := 0.0
	for _, r := range s {
		total = decimal.RoundCents(total + r.PMI)
	}
	return total
}

// At returns the row at a 0-based index; ok is false past the end
func (s Schedule) At(i int) (AmortizationRow, bool) {
	if i < 0 || i >= len(s) {
		return AmortizationRow{}, false
	}
	return s[i], true
}

// ScenarioSet holds the four schedules derived from one LoanInputs
type ScenarioSet struct {
	CurrentMinimum Schedule `json:"currentMinimum"`
	CurrentPlanned Schedule `json:"currentPlanned"`
	RefiMinimum    Schedule `json:"refiMinimum"`
	RefiPlanned    Schedule `json:"refiPlanned"`
}

// Get returns the schedule for a scenario
func (s ScenarioSet) Get(k ScenarioKind) Schedule {
	switch k {
	case CurrentMinimum:
		return s.CurrentMinimum
	case CurrentPlanned:
		return s.CurrentPlanned
	case RefiMinimum:
		return s.RefiMinimum
	case RefiPlanned:
		return s.RefiPlanned
	}
	return nil
}

// Set stores the schedule for a scenario
func (s *ScenarioSet) Set(k ScenarioKind, sched Schedule) {
	switch k {
	case CurrentMinimum:
		s.CurrentMinimum = sched
	case CurrentPlanned:
		s.CurrentPlanned = sched
	case RefiMinimum:
		s.RefiMinimum = sched
	case RefiPlanned:
		s.RefiPlanned = sched
	}
}

// ScenarioValues holds one optional figure per scenario
type ScenarioValues struct {
	CurrentMinimum Value `json:"currentMinimum"`
	CurrentPlanned Value `json:"currentPlanned"`
	RefiMinimum    Value `json:"refiMinimum"`
	RefiPlanned    Value `json:"refiPlanned"`
}

// Get returns the value for a scenario
func (v ScenarioValues) Get(k ScenarioKind) Value {
	switch k {
	case CurrentMinimum:
		return v.CurrentMinimum
	case CurrentPlanned:
		return v.CurrentPlanned
	case RefiMinimum:
		return v.RefiMinimum
	case RefiPlanned:
		return v.RefiPlanned
	}
	return None()
}

// Set stores the value for a scenario
func (v *ScenarioValues) Set(k ScenarioKind, val Value) {
	switch k {
	case CurrentMinimum:
		v.CurrentMinimum = val
	case CurrentPlanned:
		v.CurrentPlanned = val
	case RefiMinimum:
		v.RefiMinimum = val
	case RefiPlanned:
		v.RefiPlanned = val
	}
}
