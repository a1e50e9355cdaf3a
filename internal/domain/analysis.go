package domain

import "time"

// RecoupmentResult describes when cumulative interest saved by refinancing
// first covers the closing costs
type RecoupmentResult struct {
	// Month is the 1-based month of recoupment, 0 when never reached
	Month int `json:"month"`

	// CumulativeSavings is the interest saved through Month (or through the
	// whole horizon when never reached)
	CumulativeSavings float64 `json:"cumulative_savings"`
}

// Reached reports whether closing costs were recovered within the horizon
func (r RecoupmentResult) Reached() bool { return r.Month > 0 }

// Recoupment pairs the minimum-payment and planned-payment comparisons
type Recoupment struct {
	ClosingCosts             float64          `json:"closing_costs"`
	WithoutAdditionalPayment RecoupmentResult `json:"without_additional_payment"`
	WithAdditionalPayment    RecoupmentResult `json:"with_additional_payment"`
}

// SeriesPoint is one month of chart data: the balance at the start of the month
// (absent once a loan is paid off) and interest paid so far
type SeriesPoint struct {
	Month              int            `json:"month"`
	Balance            ScenarioValues `json:"balance"`
	CumulativeInterest ScenarioValues `json:"cumulative_interest"`
}

// ScenarioSummary provides the headline figures for one scenario
type ScenarioSummary struct {
	Kind          ScenarioKind `json:"kind"`
	Name          string       `json:"name"`
	StartBalance  float64      `json:"start_balance"`
	AnnualRate    float64      `json:"annual_rate"`
	MaxTerm       int          `json:"max_term"`
	Payment       Value        `json:"payment"`
	RemainingTerm Value        `json:"remaining_term"`
	TotalInterest Value        `json:"total_interest"`

	// Figures read off the simulated schedule
	ScheduleMonths    int        `json:"schedule_months"`
	ScheduledInterest float64    `json:"scheduled_interest"`
	ScheduledPMI      float64    `json:"scheduled_pmi"`
	EndingBalance     float64    `json:"ending_balance"`
	PayoffDate        *time.Time `json:"payoff_date,omitempty"`

	// TotalMonthlyOutlay adds monthly escrow on top of the payment
	TotalMonthlyOutlay Value `json:"total_monthly_outlay"`
}

// SummaryMetrics are the scalar results derived from one LoanInputs
type SummaryMetrics struct {
	CurrentMinimumPayment Value   `json:"current_minimum_payment"`
	RefiMinimumPayment    Value   `json:"refi_minimum_payment"`
	AdditionalPayment     Value   `json:"additional_payment"`
	NewPrincipal          float64 `json:"new_principal"`
	NetCashToClose        float64 `json:"net_cash_to_close"`

	RemainingTerms ScenarioValues    `json:"remaining_terms"`
	TotalInterest  ScenarioValues    `json:"total_interest"`
	Scenarios      []ScenarioSummary `json:"scenarios"`
	Recoupment     Recoupment        `json:"recoupment"`
}

// Scenario returns the summary for one scenario kind
func (m SummaryMetrics) Scenario(k ScenarioKind) (ScenarioSummary, bool) {
	for _, s := range m.Scenarios {
		if s.Kind == k {
			return s, true
		}
	}
	return ScenarioSummary{}, false
}

// Analysis is the complete result of running the engine over one LoanInputs
type Analysis struct {
	Inputs    LoanInputs     `json:"inputs"`
	Scenarios ScenarioSet    `json:"scenarios"`
	Summary   SummaryMetrics `json:"summary"`
	Series    []SeriesPoint  `json:"series"`
}
