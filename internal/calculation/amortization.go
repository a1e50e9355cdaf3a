package calculation

import (
	"math"
	"time"

	"github.com/refi/refi-calculator/internal/domain"
	"github.com/refi/refi-calculator/pkg/dateutil"
	"github.com/refi/refi-calculator/pkg/decimal"
)

// MaxScheduleMonths bounds any single schedule regardless of the stated term
const MaxScheduleMonths = 1200

// GenerateSchedule simulates a loan month by month.
//
// annualRate is a fraction (0.045 for 4.5%) and annualPMI a yearly dollar
// amount. The number of rows is fixed up front from the term solver, capped at
// maxTerm: a payment that cannot amortize the balance produces no rows, and
// one that only just covers interest runs to maxTerm.
//
// PMI is charged while the running balance is at or above 80% of the
// appraisal. Once a loan that started with PMI drops below that line the
// borrower keeps paying the target minus the PMI they no longer owe.
func GenerateSchedule(appraisal, balance, annualRate, payment, annualPMI, maxTerm float64) domain.Schedule {
	threshold := PMIThreshold * appraisal
	monthlyPMI := annualPMI / MonthsPerYear
	startedWithPMI := balance >= threshold

	initialPMI := 0.0
	if startedWithPMI {
		initialPMI = monthlyPMI
	}
	bound := math.Ceil(decimal.RoundCents(nper(annualRate/MonthsPerYear, payment-initialPMI, -balance)))
	months := math.Min(math.Min(bound, maxTerm), MaxScheduleMonths)
	if math.IsNaN(months) || months <= 0 {
		return domain.Schedule{}
	}

	schedule := make(domain.Schedule, 0, int(months))
	cb := balance
	for i := 0; float64(i) < months; i++ {
		interest := decimal.RoundCents(cb * annualRate / MonthsPerYear)

		pmi := 0.0
		if cb >= threshold {
			pmi = decimal.RoundCents(monthlyPMI)
		}

		adjustment := 0.0
		if startedWithPMI && cb < threshold {
			adjustment = monthlyPMI
		}
		pay := decimal.RoundCents(math.Min(payment-adjustment, cb+interest))
		principal := decimal.RoundCents(pay - interest - pmi)

		schedule = append(schedule, domain.AmortizationRow{
			Month:            i + 1,
			BeginningBalance: cb,
			Interest:         interest,
			Payment:          pay,
			PMI:              pmi,
			Principal:        principal,
		})
		cb = decimal.RoundCents(cb - principal)
	}
	return schedule
}

// DateSchedule stamps each row with its due date, counting from the first payment
func DateSchedule(s domain.Schedule, first time.Time) domain.Schedule {
	for i := range s {
		d := dateutil.PaymentDate(first, s[i].Month)
		s[i].Date = &d
	}
	return s
}
