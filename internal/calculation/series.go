package calculation

import (
	"github.com/refi/refi-calculator/internal/domain"
	"github.com/refi/refi-calculator/pkg/decimal"
)

// LineSeries produces chart data for months 0..RecoupmentHorizon: each
// scenario's beginning balance (absent once the loan is paid off) and its
// cumulative interest, which stays flat after payoff.
func LineSeries(set domain.ScenarioSet) []domain.SeriesPoint {
	points := make([]domain.SeriesPoint, 0, RecoupmentHorizon+1)
	var cumulative [4]float64
	for i := 0; i <= RecoupmentHorizon; i++ {
		point := domain.SeriesPoint{Month: i}
		for k, kind := range domain.AllScenarios {
			row, ok := set.Get(kind).At(i)
			if ok {
				point.Balance.Set(kind, domain.Some(row.BeginningBalance))
				cumulative[k] = decimal.RoundCents(cumulative[k] + row.Interest)
			}
			point.CumulativeInterest.Set(kind, domain.Some(cumulative[k]))
		}
		points = append(points, point)
	}
	return points
}
