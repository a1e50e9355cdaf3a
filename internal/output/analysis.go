package output

import (
	"fmt"

	"github.com/refi/refi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	Kind         domain.ScenarioKind
	ScenarioName string

	// TotalInterest is the lowest total interest among the scenarios
	TotalInterest decimal.Decimal

	// InterestSavings compares against continuing the current plan
	InterestSavings decimal.Decimal

	IsRefinance        bool
	RecoupmentMonths   int
	PaysBackWithinTerm bool
}

// AnalyzeScenarios picks the scenario that pays the least total interest and
// checks whether refinancing earns back its closing costs within the new term.
func AnalyzeScenarios(a *domain.Analysis) Recommendation {
	if a == nil {
		return Recommendation{}
	}
	var (
		best  domain.ScenarioSummary
		found bool
	)
	for _, sc := range a.Summary.Scenarios {
		if !sc.TotalInterest.Valid {
			continue
		}
		if !found || sc.TotalInterest.Amount < best.TotalInterest.Amount {
			best, found = sc, true
		}
	}
	if !found {
		return Recommendation{}
	}

	rec := Recommendation{
		Kind:          best.Kind,
		ScenarioName:  best.Name,
		TotalInterest: decimal.NewFromFloat(best.TotalInterest.Amount),
		IsRefinance:   best.Kind.IsRefinance(),
	}
	if planned := a.Summary.TotalInterest.CurrentPlanned; planned.Valid {
		rec.InterestSavings = decimal.NewFromFloat(planned.Amount).Sub(rec.TotalInterest)
	}

	payback := a.Summary.Recoupment.WithoutAdditionalPayment
	if best.Kind == domain.RefiPlanned {
		payback = a.Summary.Recoupment.WithAdditionalPayment
	}
	rec.RecoupmentMonths = payback.Month
	rec.PaysBackWithinTerm = payback.Reached() && float64(payback.Month) <= a.Inputs.NewTerm.Float()
	return rec
}

// Headline summarizes a recommendation in one sentence
func (r Recommendation) Headline() string {
	if r.ScenarioName == "" {
		return "No scenario produced a total interest figure"
	}
	line := fmt.Sprintf("%s pays the least interest (%s", r.ScenarioName, FormatCurrency(r.TotalInterest))
	if r.InterestSavings.IsPositive() {
		line += fmt.Sprintf(", %s less than the current plan", FormatCurrency(r.InterestSavings))
	}
	line += ")"
	if !r.IsRefinance {
		return line + "; refinancing does not reduce total interest"
	}
	if r.PaysBackWithinTerm {
		return line + fmt.Sprintf("; closing costs are recouped after %d months", r.RecoupmentMonths)
	}
	return line + "; closing costs are not recouped within the new term"
}
