package calculation

import (
	"github.com/refi/refi-calculator/internal/domain"
)

// RemainingTerms solves the months left for each scenario with its own
// payment, less the PMI share of that payment. A term is never reported
// beyond the scenario's stated term.
func RemainingTerms(in domain.LoanInputs) domain.ScenarioValues {
	var terms domain.ScenarioValues
	for _, p := range ScenarioTable(in) {
		term := RemainingTermMonths(p.RatePercent/(100*MonthsPerYear), p.Payment-p.InitialPMI(), -p.Balance)
		if term.Valid && term.Amount > p.MaxTerm {
			term = domain.ResultOf(p.MaxTerm)
		}
		terms.Set(p.Kind, term)
	}
	return terms
}

// TotalInterest returns the interest each scenario pays over its remaining
// term, using the closed-form cumulative interest rather than a schedule walk.
// Scenarios without a remaining term have no total.
func TotalInterest(in domain.LoanInputs, terms domain.ScenarioValues) domain.ScenarioValues {
	var totals domain.ScenarioValues
	for _, p := range ScenarioTable(in) {
		term := terms.Get(p.Kind)
		if !term.Valid {
			totals.Set(p.Kind, domain.None())
			continue
		}
		cumulative := CumulativeInterest(p.Balance, p.AnnualRate(), term.Amount, 1, term.Amount)
		if !cumulative.Valid {
			totals.Set(p.Kind, domain.None())
			continue
		}
		totals.Set(p.Kind, domain.ResultOf(-cumulative.Amount))
	}
	return totals
}
