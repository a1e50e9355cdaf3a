package calculation

import (
	"github.com/refi/refi-calculator/internal/domain"
	"github.com/refi/refi-calculator/pkg/decimal"
)

// RecoupmentHorizon is the last 0-based month index examined for payback and charting
const RecoupmentHorizon = 360

// Recoupment builds the scenario set and reports how long refinancing takes to
// pay back its closing costs through interest savings
func Recoupment(in domain.LoanInputs) domain.Recoupment {
	return RecoupmentFor(in, BuildScenarioSet(in))
}

// RecoupmentFor is Recoupment over an already computed scenario set.
// "Without additional payment" compares the two minimum-payment scenarios,
// "with additional payment" the two planned-payment scenarios.
func RecoupmentFor(in domain.LoanInputs, set domain.ScenarioSet) domain.Recoupment {
	closing := in.ClosingCosts.Float()
	return domain.Recoupment{
		ClosingCosts:             closing,
		WithoutAdditionalPayment: CumulativeSavingsCrossover(set.CurrentMinimum, set.RefiMinimum, closing),
		WithAdditionalPayment:    CumulativeSavingsCrossover(set.CurrentPlanned, set.RefiPlanned, closing),
	}
}

// CumulativeSavingsCrossover walks months 0..RecoupmentHorizon accumulating
// the interest the current loan charges minus what the refinance charges, and
// returns the first 1-based month where the running total reaches target.
// A schedule that has ended contributes no further interest. Month is 0 when
// the target is never reached.
func CumulativeSavingsCrossover(current, refi domain.Schedule, target float64) domain.RecoupmentResult {
	saved := 0.0
	for i := 0; i <= RecoupmentHorizon; i++ {
		saved = decimal.RoundCents(saved + interestAt(current, i) - interestAt(refi, i))
		if saved >= target {
			return domain.RecoupmentResult{Month: i + 1, CumulativeSavings: saved}
		}
	}
	return domain.RecoupmentResult{CumulativeSavings: saved}
}

func interestAt(s domain.Schedule, i int) float64 {
	row, ok := s.At(i)
	if !ok {
		return 0
	}
	return row.Interest
}
