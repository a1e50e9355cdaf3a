package output

import (
	"testing"

	"github.com/refi/refi-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeScenarios_PicksLowestInterest(t *testing.T) {
	a := sampleAnalysis(t)
	rec := AnalyzeScenarios(a)

	assert.Equal(t, domain.RefiPlanned, rec.Kind)
	assert.Equal(t, "Refi Planned Payment", rec.ScenarioName)
	assert.True(t, rec.IsRefinance)
	assert.Equal(t, 15, rec.RecoupmentMonths)
	assert.True(t, rec.PaysBackWithinTerm)

	want := decimal.NewFromFloat(a.Summary.TotalInterest.CurrentPlanned.Amount).Sub(rec.TotalInterest)
	assert.True(t, want.Equal(rec.InterestSavings))
	assert.True(t, rec.InterestSavings.GreaterThan(decimal.NewFromInt(49000)))
}

func synthetic(total domain.ScenarioValues, recoup domain.Recoupment, newTerm float64) *domain.Analysis {
	a := &domain.Analysis{Inputs: domain.LoanInputs{NewTerm: domain.Amount(newTerm)}}
	a.Summary.TotalInterest = total
	a.Summary.Recoupment = recoup
	for _, k := range domain.AllScenarios {
		a.Summary.Scenarios = append(a.Summary.Scenarios, domain.ScenarioSummary{Kind: k, Name: k.Label(), TotalInterest: total.Get(k)})
	}
	return a
}

func TestAnalyzeScenarios_Cases(t *testing.T) {
	tests := []struct {
		name     string
		total    domain.ScenarioValues
		recoup   domain.Recoupment
		newTerm  float64
		kind     domain.ScenarioKind
		headline string
	}{
		{
			name:     "current plan wins",
			total:    domain.ScenarioValues{CurrentMinimum: domain.Some(90000), CurrentPlanned: domain.Some(50000), RefiMinimum: domain.Some(80000), RefiPlanned: domain.Some(60000)},
			newTerm:  360,
			kind:     domain.CurrentPlanned,
			headline: "Current Planned Payment pays the least interest ($50000.00); refinancing does not reduce total interest",
		},
		{
			name:     "refi minimum recouped late",
			total:    domain.ScenarioValues{CurrentMinimum: domain.Some(90000), CurrentPlanned: domain.Some(70000), RefiMinimum: domain.Some(65000)},
			recoup:   domain.Recoupment{WithoutAdditionalPayment: domain.RecoupmentResult{Month: 200}},
			newTerm:  180,
			kind:     domain.RefiMinimum,
			headline: "Refi Minimum Payment pays the least interest ($65000.00, $5000.00 less than the current plan); closing costs are not recouped within the new term",
		},
		{
			name:     "refi planned uses the additional payment comparison",
			total:    domain.ScenarioValues{CurrentPlanned: domain.Some(70000), RefiPlanned: domain.Some(40000)},
			recoup:   domain.Recoupment{WithAdditionalPayment: domain.RecoupmentResult{Month: 24}},
			newTerm:  360,
			kind:     domain.RefiPlanned,
			headline: "Refi Planned Payment pays the least interest ($40000.00, $30000.00 less than the current plan); closing costs are recouped after 24 months",
		},
		{
			name:     "never recouped",
			total:    domain.ScenarioValues{RefiPlanned: domain.Some(40000)},
			newTerm:  360,
			kind:     domain.RefiPlanned,
			headline: "Refi Planned Payment pays the least interest ($40000.00); closing costs are not recouped within the new term",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := AnalyzeScenarios(synthetic(tc.total, tc.recoup, tc.newTerm))
			assert.Equal(t, tc.kind, rec.Kind)
			assert.Equal(t, tc.headline, rec.Headline())
		})
	}
}

func TestAnalyzeScenarios_NoFigures(t *testing.T) {
	rec := AnalyzeScenarios(emptyAnalysis(t))
	require.Empty(t, rec.ScenarioName)
	assert.Equal(t, "No scenario produced a total interest figure", rec.Headline())
	assert.Equal(t, Recommendation{}, AnalyzeScenarios(nil))
}

func TestGenerateAssumptions(t *testing.T) {
	lines := GenerateAssumptions(sampleInputs())
	require.Len(t, lines, len(DefaultAssumptions))
	assert.Equal(t, "PMI is charged while the balance is at or above $240000.00 (80% of $300000.00)", lines[1])
	assert.Equal(t, "Refinance principal = $230000.00 balance + $0.00 cash out + $4000.00 closing costs = $234000.00", lines[3])
	assert.Equal(t, "Recoupment compares monthly interest for up to 361 months", lines[4])
	assert.Contains(t, lines[5], "$350.00/month")
}
