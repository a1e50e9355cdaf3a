package calculation

import (
	"context"
	"fmt"
	"math"

	"github.com/refi/refi-calculator/internal/domain"
	"github.com/refi/refi-calculator/pkg/dateutil"
	"github.com/refi/refi-calculator/pkg/decimal"
)

// CalculationEngine runs the full refinance comparison for a set of loan inputs
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	ce.Logger = orNop(l)
}

// Analyze computes the four schedules, the summary figures and the chart
// series. The computation never fails on bad numbers; the only error is a
// context that is already done.
func (ce *CalculationEngine) Analyze(ctx context.Context, in domain.LoanInputs) (*domain.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := orNop(ce.Logger)

	set := BuildScenarioSet(in)
	for _, kind := range domain.AllScenarios {
		if len(set.Get(kind)) == 0 {
			log.Warnf("%s schedule is empty: payment does not amortize the balance", kind.Label())
		} else {
			log.Debugf("%s schedule: %d months", kind.Label(), len(set.Get(kind)))
		}
	}

	summary := ce.Summarize(in, set)
	log.Infof("analysis complete: recoupment %d months (minimum), %d months (planned)",
		summary.Recoupment.WithoutAdditionalPayment.Month, summary.Recoupment.WithAdditionalPayment.Month)

	return &domain.Analysis{
		Inputs:    in,
		Scenarios: set,
		Summary:   summary,
		Series:    LineSeries(set),
	}, nil
}

// Summarize reduces a scenario set to its headline figures
func (ce *CalculationEngine) Summarize(in domain.LoanInputs, set domain.ScenarioSet) domain.SummaryMetrics {
	terms := RemainingTerms(in)
	totals := TotalInterest(in, terms)
	currentMinimum := MinimumPayment(in, false)
	escrow := in.MonthlyEscrow.Float()

	m := domain.SummaryMetrics{
		CurrentMinimumPayment: currentMinimum,
		RefiMinimumPayment:    MinimumPayment(in, true),
		AdditionalPayment:     domain.ResultOf(decimal.RoundCents(in.CurrentPayment.Float() - currentMinimum.Float())),
		NewPrincipal:          NewPrincipal(in),
		NetCashToClose:        decimal.RoundCents(in.ClosingCosts.Float() - in.EscrowRefund.Float()),
		RemainingTerms:        terms,
		TotalInterest:         totals,
		Recoupment:            RecoupmentFor(in, set),
	}

	start, dated := in.StartDate()
	for _, p := range ScenarioTable(in) {
		s := set.Get(p.Kind)
		summary := domain.ScenarioSummary{
			Kind:              p.Kind,
			Name:              p.Kind.Label(),
			StartBalance:      p.Balance,
			AnnualRate:        p.RatePercent,
			MaxTerm:           termMonths(p.MaxTerm),
			Payment:           domain.ResultOf(p.Payment),
			RemainingTerm:     terms.Get(p.Kind),
			TotalInterest:     totals.Get(p.Kind),
			ScheduleMonths:    len(s),
			ScheduledInterest: s.TotalInterest(),
			ScheduledPMI:      s.TotalPMI(),
			EndingBalance:     s.EndingBalance(),
		}
		if summary.Payment.Valid {
			summary.TotalMonthlyOutlay = domain.ResultOf(decimal.RoundCents(p.Payment + escrow))
		}
		if dated && len(s) > 0 {
			payoff := dateutil.PaymentDate(start, len(s))
			summary.PayoffDate = &payoff
		}
		m.Scenarios = append(m.Scenarios, summary)
	}
	return m
}

// Schedule computes a single scenario's amortization
func (ce *CalculationEngine) Schedule(in domain.LoanInputs, kind domain.ScenarioKind) (domain.Schedule, error) {
	p, err := ParamsFor(in, kind)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	s := p.Schedule()
	if start, ok := in.StartDate(); ok {
		s = DateSchedule(s, start)
	}
	orNop(ce.Logger).Debugf("%s schedule: %d months", kind.Label(), len(s))
	return s, nil
}

func termMonths(term float64) int {
	if math.IsNaN(term) || math.IsInf(term, 0) || term < 0 {
		return 0
	}
	return int(term)
}
