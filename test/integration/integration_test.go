package integration

import (
	"context"
	"testing"

	"github.com/refi/refi-calculator/internal/calculation"
	"github.com/refi/refi-calculator/internal/config"
	"github.com/refi/refi-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndToEndCalculation(t *testing.T) {
	parser := config.NewInputParser()
	in, err := parser.LoadFromFile("../testdata/example_inputs.yaml")
	require.NoError(t, err)
	assert.Empty(t, config.Warnings(*in))

	engine := calculation.NewCalculationEngine()
	a, err := engine.Analyze(context.Background(), *in)
	require.NoError(t, err)

	m := a.Summary
	assert.Equal(t, domain.Some(1366.71), m.CurrentMinimumPayment)
	assert.Equal(t, domain.Some(986.55), m.RefiMinimumPayment)
	assert.Equal(t, 234000.0, m.NewPrincipal)
	assert.Equal(t, 15, m.Recoupment.WithoutAdditionalPayment.Month)
	assert.Equal(t, 15, m.Recoupment.WithAdditionalPayment.Month)

	for _, kind := range domain.AllScenarios {
		s := a.Scenarios.Get(kind)
		require.NotEmpty(t, s, kind)
		require.NotNil(t, s[0].Date)
		assert.Equal(t, "2025-01-01", s[0].Date.Format("2006-01-02"))
		end := s.EndingBalance()
		assert.GreaterOrEqual(t, end, 0.0, kind)
		assert.Less(t, end, 5.0, "%s ends within a few dollars of zero", kind)
	}

	planned, ok := m.Scenario(domain.CurrentPlanned)
	require.True(t, ok)
	require.NotNil(t, planned.PayoffDate)
	assert.Equal(t, "2044-01-01", planned.PayoffDate.Format("2006-01-02"))
}

func TestEndToEnd_PMIInputs(t *testing.T) {
	in, err := config.NewInputParser().LoadFromFile("../testdata/pmi_inputs.json")
	require.NoError(t, err)
	assert.Equal(t, 250000.0, in.Appraisal.Float(), "numeric strings decode")

	a, err := calculation.NewCalculationEngine().Analyze(context.Background(), *in)
	require.NoError(t, err)

	for _, kind := range domain.AllScenarios {
		s := a.Scenarios.Get(kind)
		require.NotEmpty(t, s, kind)
		assert.Greater(t, s[0].PMI, 0.0, "%s starts above 80%% LTV", kind)
		assert.Zero(t, s[len(s)-1].PMI, "%s drops PMI before payoff", kind)
	}
	assert.Greater(t, a.Summary.RemainingTerms.CurrentMinimum.Amount, a.Summary.RemainingTerms.CurrentPlanned.Amount)
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()

	in, err := parser.Parse([]byte("appraisal: 300000\ncurrentBalance: 200000\n"), false)
	require.NoError(t, err)
	warnings := config.Warnings(*in)
	assert.NotEmpty(t, warnings, "zero rates and terms are reported")

	// nothing is rejected: the engine still runs
	a, err := calculation.NewCalculationEngine().Analyze(context.Background(), *in)
	require.NoError(t, err)
	assert.Empty(t, a.Scenarios.CurrentMinimum)
	assert.False(t, a.Summary.CurrentMinimumPayment.Valid)

	_, err = parser.LoadFromFile("../testdata/missing.yaml")
	assert.Error(t, err)
}
