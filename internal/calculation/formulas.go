package calculation

import (
	"math"

	"github.com/refi/refi-calculator/internal/domain"
	"github.com/refi/refi-calculator/pkg/decimal"
)

const (
	// MonthsPerYear is the payment frequency used throughout the engine
	MonthsPerYear = 12

	// PMIThreshold is the loan-to-value ratio at or above which PMI/MIP is charged
	PMIThreshold = 0.8
)

// MonthlyPayment returns the level payment that amortizes principal over
// termMonths: P * (r/q) / (1 - (1+r/q)^-N), where annualRate is a fraction.
//
// A zero rate divides by zero and yields NaN (or Inf); callers decide how to
// present that.
func MonthlyPayment(principal, annualRate, termMonths, periodsPerYear float64) float64 {
	r := annualRate / periodsPerYear
	return principal * (r / (1 - math.Pow(1+r, -termMonths)))
}

// MinimumPayment is the smallest monthly payment that retires the original
// loan (or, with refinance set, the new loan) within its stated term,
// including monthly PMI while loan-to-value is at or above 80%.
func MinimumPayment(in domain.LoanInputs, refinance bool) domain.Value {
	principal := in.OriginalPrincipal.Float()
	rate := in.OriginalRate.Float()
	term := in.OriginalTerm.Float()
	pmi := in.OriginalPMI.Float()
	if refinance {
		principal = NewPrincipal(in)
		rate = in.NewRate.Float()
		term = in.NewTerm.Float()
		pmi = in.NewPMI.Float()
	}

	payment := decimal.RoundCents(MonthlyPayment(principal, rate/100, term, MonthsPerYear))
	if principal >= in.Appraisal.Float()*PMIThreshold {
		payment += pmi / MonthsPerYear
	}
	return domain.ResultOf(decimal.RoundCents(payment))
}

// nper solves for the number of periods needed to pay off presentValue
// (negative for a loan balance) at a periodic rate with a fixed payment.
// Returns NaN when the payment cannot cover interest and +Inf when it
// exactly matches it.
func nper(rate, payment, presentValue float64) float64 {
	return math.Log(payment/(presentValue*rate+payment)) / math.Log(1+rate)
}

// RemainingTermMonths returns the months left on a loan given the monthly
// rate (annual percent / 1200), payment and present value. A loan that never
// pays off has no remaining term.
func RemainingTermMonths(monthlyRate, payment, presentValue float64) domain.Value {
	return domain.FiniteResultOf(decimal.RoundCents(nper(monthlyRate, payment, presentValue)))
}

// CumulativeInterest returns, as a signed cash flow (negative for interest
// paid), the interest paid from month `from` through month `to` inclusive on
// a loan of principal amortized over term months at annualRate (a fraction).
//
// It works off the remaining balance after k payments,
// B(k) = (P - M*q/I)(1+I/q)^k + M*q/I, so no schedule is iterated.
func CumulativeInterest(principal, annualRate, term, from, to float64) domain.Value {
	const q = MonthsPerYear
	m := MonthlyPayment(principal, annualRate, term, q)
	k := m * q / annualRate
	growth := 1 + annualRate/q

	balanceBefore := (principal-k)*math.Pow(growth, from-1) + k
	balanceAfter := (principal-k)*math.Pow(growth, to) + k
	return domain.ResultOf(decimal.RoundCents(balanceBefore - balanceAfter - m*(to-from+1)))
}

// NewPrincipal is the amount of the refinanced loan: the payoff of the old
// loan plus cash out and any closing costs rolled in.
func NewPrincipal(in domain.LoanInputs) float64 {
	return in.CurrentBalance.Float() + in.CashOut.Float() + in.ClosingCosts.Float()
}
