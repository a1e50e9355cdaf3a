package calculation

import (
	"testing"

	"github.com/refi/refi-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
)

// baselineInputs is a loan already under 80% LTV, refinanced to a lower rate
func baselineInputs() domain.LoanInputs {
	return domain.LoanInputs{
		Appraisal:         300000,
		CurrentValue:      320000,
		OriginalPrincipal: 250000,
		OriginalRate:      4.5,
		OriginalTerm:      360,
		OriginalPMI:       1200,
		CurrentPayment:    1500,
		CurrentBalance:    230000,
		ClosingCosts:      4000,
		NewRate:           3.0,
		NewTerm:           360,
		EscrowRefund:      1500,
		MonthlyEscrow:     350,
	}
}

// pmiInputs starts both loans above the 80% LTV line
func pmiInputs() domain.LoanInputs {
	return domain.LoanInputs{
		Appraisal:         250000,
		OriginalPrincipal: 240000,
		OriginalRate:      5.0,
		OriginalTerm:      360,
		OriginalPMI:       1800,
		CurrentPayment:    1600,
		CurrentBalance:    230000,
		ClosingCosts:      3000,
		NewRate:           4.0,
		NewTerm:           360,
		NewPMI:            1200,
	}
}

// assertRowInvariants checks the per-row arithmetic every schedule must satisfy
func assertRowInvariants(t *testing.T, name string, s domain.Schedule, maxTerm float64) {
	t.Helper()
	assert.LessOrEqual(t, float64(len(s)), maxTerm, "%s: schedule longer than term", name)
	for i, r := range s {
		assert.Equal(t, i+1, r.Month, "%s: month numbering", name)
		assert.InDelta(t, r.Payment, r.Principal+r.Interest+r.PMI, 0.01, "%s month %d: payment split", name, r.Month)
		if i+1 < len(s) {
			assert.InDelta(t, r.BeginningBalance-r.Principal, s[i+1].BeginningBalance, 0.01, "%s month %d: balance carry", name, r.Month)
		}
	}
	if len(s) > 0 {
		assert.GreaterOrEqual(t, s.EndingBalance(), 0.0, "%s: negative ending balance", name)
		assert.LessOrEqual(t, s.EndingBalance(), s[0].BeginningBalance, "%s: ending above start", name)
	}
}
