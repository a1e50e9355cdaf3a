package calculation

import (
	"errors"
	"fmt"
	"math"

	"github.com/refi/refi-calculator/internal/domain"
)

// ErrUnknownScenario is returned when a scenario name does not match any of the four scenarios
var ErrUnknownScenario = errors.New("unknown scenario")

// ScenarioParams are the loan parameters one scenario runs with
type ScenarioParams struct {
	Kind        domain.ScenarioKind
	Appraisal   float64
	Balance     float64
	RatePercent float64
	Payment     float64
	AnnualPMI   float64
	MaxTerm     float64
}

// AnnualRate returns the rate as a fraction
func (p ScenarioParams) AnnualRate() float64 { return p.RatePercent / 100 }

// InitialPMI is the monthly PMI charged in the first month, 0 when the
// starting balance is already under 80% of the appraisal
func (p ScenarioParams) InitialPMI() float64 {
	if p.Balance >= PMIThreshold*p.Appraisal {
		return p.AnnualPMI / MonthsPerYear
	}
	return 0
}

// Schedule runs the amortization for these parameters
func (p ScenarioParams) Schedule() domain.Schedule {
	return GenerateSchedule(p.Appraisal, p.Balance, p.AnnualRate(), p.Payment, p.AnnualPMI, p.MaxTerm)
}

// ScenarioTable returns the parameters of all four scenarios in display order.
//
//	currentMinimum  current balance, original rate/PMI/term, minimum payment
//	currentPlanned  same loan, the payment actually being made
//	refiMinimum     new principal, new rate/PMI/term, new minimum payment
//	refiPlanned     new loan, the larger of its minimum and the current payment
func ScenarioTable(in domain.LoanInputs) []ScenarioParams {
	appraisal := in.Appraisal.Float()
	current := ScenarioParams{
		Appraisal:   appraisal,
		Balance:     in.CurrentBalance.Float(),
		RatePercent: in.OriginalRate.Float(),
		AnnualPMI:   in.OriginalPMI.Float(),
		MaxTerm:     in.OriginalTerm.Float(),
	}
	refi := ScenarioParams{
		Appraisal:   appraisal,
		Balance:     NewPrincipal(in),
		RatePercent: in.NewRate.Float(),
		AnnualPMI:   in.NewPMI.Float(),
		MaxTerm:     in.NewTerm.Float(),
	}

	refiMinimum := MinimumPayment(in, true).Float()

	table := []ScenarioParams{current, current, refi, refi}
	table[0].Kind, table[0].Payment = domain.CurrentMinimum, MinimumPayment(in, false).Float()
	table[1].Kind, table[1].Payment = domain.CurrentPlanned, in.CurrentPayment.Float()
	table[2].Kind, table[2].Payment = domain.RefiMinimum, refiMinimum
	table[3].Kind, table[3].Payment = domain.RefiPlanned, math.Max(refiMinimum, in.CurrentPayment.Float())
	return table
}

// ParamsFor returns the parameters of a single scenario
func ParamsFor(in domain.LoanInputs, kind domain.ScenarioKind) (ScenarioParams, error) {
	for _, p := range ScenarioTable(in) {
		if p.Kind == kind {
			return p, nil
		}
	}
	return ScenarioParams{}, fmt.Errorf("%w: %q", ErrUnknownScenario, kind)
}

// BuildScenarioSet computes all four schedules. Rows are dated when the
// inputs carry a first payment date.
func BuildScenarioSet(in domain.LoanInputs) domain.ScenarioSet {
	var set domain.ScenarioSet
	start, dated := in.StartDate()
	for _, p := range ScenarioTable(in) {
		s := p.Schedule()
		if dated {
			s = DateSchedule(s, start)
		}
		set.Set(p.Kind, s)
	}
	return set
}
