package calculation

import (
	"errors"
	"testing"

	"github.com/refi/refi-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioTable(t *testing.T) {
	table := ScenarioTable(baselineInputs())
	require.Len(t, table, 4)

	want := []struct {
		kind    domain.ScenarioKind
		balance float64
		rate    float64
		payment float64
		pmi     float64
	}{
		{domain.CurrentMinimum, 230000, 4.5, 1366.71, 1200},
		{domain.CurrentPlanned, 230000, 4.5, 1500, 1200},
		{domain.RefiMinimum, 234000, 3.0, 986.55, 0},
		{domain.RefiPlanned, 234000, 3.0, 1500, 0},
	}
	for i, w := range want {
		p := table[i]
		assert.Equal(t, w.kind, p.Kind)
		assert.Equal(t, w.balance, p.Balance, "%s balance", w.kind)
		assert.Equal(t, w.rate, p.RatePercent, "%s rate", w.kind)
		assert.Equal(t, w.payment, p.Payment, "%s payment", w.kind)
		assert.Equal(t, w.pmi, p.AnnualPMI, "%s pmi", w.kind)
		assert.Equal(t, 360.0, p.MaxTerm, "%s term", w.kind)
	}
}

func TestScenarioTable_RefiPlannedNeverBelowMinimum(t *testing.T) {
	in := baselineInputs()
	in.CurrentPayment = 900
	p, err := ParamsFor(in, domain.RefiPlanned)
	require.NoError(t, err)
	assert.Equal(t, 986.55, p.Payment)
}

func TestParamsFor_Unknown(t *testing.T) {
	_, err := ParamsFor(baselineInputs(), domain.ScenarioKind("other"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownScenario))
}

func TestBuildScenarioSet(t *testing.T) {
	set := BuildScenarioSet(baselineInputs())

	lengths := map[domain.ScenarioKind]int{
		domain.CurrentMinimum: 267,
		domain.CurrentPlanned: 229,
		domain.RefiMinimum:    360,
		domain.RefiPlanned:    198,
	}
	for kind, want := range lengths {
		s := set.Get(kind)
		assert.Len(t, s, want, kind)
		assertRowInvariants(t, string(kind), s, 360)
		assert.Nil(t, s[0].Date, "undated inputs produce undated rows")
	}
}

func TestBuildScenarioSet_MinimumEqualsPlanned(t *testing.T) {
	for _, in := range []domain.LoanInputs{baselineInputs(), pmiInputs()} {
		in.CurrentPayment = domain.Amount(MinimumPayment(in, false).Amount)
		set := BuildScenarioSet(in)
		assert.Equal(t, set.CurrentMinimum, set.CurrentPlanned)
	}
}

func TestBuildScenarioSet_PMI(t *testing.T) {
	set := BuildScenarioSet(pmiInputs())
	for _, kind := range domain.AllScenarios {
		s := set.Get(kind)
		require.NotEmpty(t, s, kind)
		assertRowInvariants(t, string(kind), s, 360)
		assert.Greater(t, s.TotalPMI(), 0.0, "%s started above 80%% LTV", kind)
		for _, r := range s {
			if r.BeginningBalance < 0.8*250000 {
				assert.Zero(t, r.PMI, "%s month %d", kind, r.Month)
			}
		}
	}
}

func TestBuildScenarioSet_Dated(t *testing.T) {
	in := baselineInputs()
	in.FirstPaymentDate = "2025-03-01"
	set := BuildScenarioSet(in)
	s := set.Get(domain.CurrentPlanned)
	require.NotNil(t, s[0].Date)
	assert.Equal(t, "2025-03-01", s[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2025-04-01", s[1].Date.Format("2006-01-02"))
}
