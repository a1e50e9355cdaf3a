package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmortizationRow_JSON(t *testing.T) {
	row := AmortizationRow{Month: 3, BeginningBalance: 1000.5, Interest: 4.17, Payment: 100, PMI: 12, Principal: 83.83}
	data, err := json.Marshal(row)
	require.NoError(t, err)
	assert.JSONEq(t, `{"month":3,"beginning_balance":1000.5,"interest":4.17,"payment":100,"pmi":12,"principal":83.83}`, string(data))

	var back AmortizationRow
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, row, back)

	row.BeginningBalance = math.Inf(1)
	row.Interest = math.NaN()
	data, err = json.Marshal(row)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"beginning_balance":null`)
	assert.Contains(t, string(data), `"interest":null`)
}

func TestScenarioSummary_NonFiniteJSON(t *testing.T) {
	s := ScenarioSummary{
		Kind:          CurrentMinimum,
		Name:          CurrentMinimum.Label(),
		StartBalance:  math.Inf(1),
		AnnualRate:    4.5,
		Payment:       Some(math.Inf(1)),
		EndingBalance: math.NaN(),
	}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	require.True(t, json.Valid(data))
	assert.Contains(t, string(data), `"start_balance":null`)
	assert.Contains(t, string(data), `"ending_balance":null`)
	assert.Contains(t, string(data), `"annual_rate":4.5`)
	assert.Contains(t, string(data), `"payment":null`)

	var back ScenarioSummary
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, CurrentMinimum, back.Kind)
	assert.True(t, math.IsNaN(back.StartBalance))
	assert.Equal(t, 4.5, back.AnnualRate)
	assert.False(t, back.Payment.Valid)

	again, err := json.Marshal(back)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}

func TestSummaryMetrics_NonFiniteJSON(t *testing.T) {
	m := SummaryMetrics{
		CurrentMinimumPayment: Some(1366.71),
		NewPrincipal:          math.Inf(1),
		NetCashToClose:        2500,
		Recoupment: Recoupment{
			ClosingCosts:             math.Inf(-1),
			WithoutAdditionalPayment: RecoupmentResult{Month: 15, CumulativeSavings: math.NaN()},
		},
	}
	data, err := json.Marshal(m)
	require.NoError(t, err)
	require.True(t, json.Valid(data))
	assert.Contains(t, string(data), `"new_principal":null`)
	assert.Contains(t, string(data), `"net_cash_to_close":2500`)
	assert.Contains(t, string(data), `"closing_costs":null`)
	assert.Contains(t, string(data), `"cumulative_savings":null`)

	var back SummaryMetrics
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, Some(1366.71), back.CurrentMinimumPayment)
	assert.Equal(t, 2500.0, back.NetCashToClose)
	assert.Equal(t, 15, back.Recoupment.WithoutAdditionalPayment.Month)
	assert.True(t, math.IsNaN(back.NewPrincipal))
}

func TestLoanInputs_Finite(t *testing.T) {
	in := LoanInputs{CurrentBalance: 230000, NewRate: 3}
	assert.True(t, in.Finite())

	in.CurrentBalance = Amount(math.Inf(1))
	assert.False(t, in.Finite())

	in.CurrentBalance = 230000
	in.EscrowRefund = Amount(math.Inf(-1))
	assert.False(t, in.Finite())
}
