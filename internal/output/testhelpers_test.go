package output

import (
	"context"
	"testing"

	calc "github.com/refi/refi-calculator/internal/calculation"
	"github.com/refi/refi-calculator/internal/domain"
	"github.com/stretchr/testify/require"
)

func sampleInputs() domain.LoanInputs {
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
		FirstPaymentDate:  "2025-01-01",
	}
}

func sampleAnalysis(t *testing.T) *domain.Analysis {
	t.Helper()
	a, err := calc.NewCalculationEngine().Analyze(context.Background(), sampleInputs())
	require.NoError(t, err)
	return a
}

// emptyAnalysis has no usable figures at all
func emptyAnalysis(t *testing.T) *domain.Analysis {
	t.Helper()
	a, err := calc.NewCalculationEngine().Analyze(context.Background(), domain.LoanInputs{})
	require.NoError(t, err)
	return a
}
