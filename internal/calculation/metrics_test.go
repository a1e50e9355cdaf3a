package calculation

import (
	"testing"

	"github.com/refi/refi-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRemainingTerms(t *testing.T) {
	terms := RemainingTerms(baselineInputs())
	assert.Equal(t, domain.Some(266.41), terms.CurrentMinimum)
	assert.Equal(t, domain.Some(228.61), terms.CurrentPlanned)
	assert.Equal(t, domain.Some(360), terms.RefiMinimum)
	assert.Equal(t, domain.Some(197.97), terms.RefiPlanned)
}

func TestRemainingTerms_CappedAndMissing(t *testing.T) {
	in := baselineInputs()
	in.NewTerm = 180
	// the refinance minimum now amortizes over 180 months and the planned
	// payment equals it, so nothing can exceed the stated term
	terms := RemainingTerms(in)
	assert.LessOrEqual(t, terms.RefiMinimum.Amount, 180.0)
	assert.LessOrEqual(t, terms.RefiPlanned.Amount, 180.0)

	in = baselineInputs()
	in.CurrentPayment = 500
	terms = RemainingTerms(in)
	assert.False(t, terms.CurrentPlanned.Valid, "payment below interest never pays off")
	assert.True(t, terms.CurrentMinimum.Valid)
}

func TestTotalInterest(t *testing.T) {
	in := baselineInputs()
	totals := TotalInterest(in, RemainingTerms(in))
	assert.InDelta(t, 134105.18, totals.CurrentMinimum.Amount, 0.02)
	assert.InDelta(t, 112910.44, totals.CurrentPlanned.Amount, 0.02)
	assert.InDelta(t, 121159.24, totals.RefiMinimum.Amount, 0.02)
	assert.InDelta(t, 62949.87, totals.RefiPlanned.Amount, 0.02)

	var none domain.ScenarioValues
	assert.Equal(t, domain.ScenarioValues{}, TotalInterest(in, none))
}
