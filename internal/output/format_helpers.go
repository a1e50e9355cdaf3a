package output

import (
	"fmt"
	"math"
	"strconv"
	"time"

	calc "github.com/refi/refi-calculator/internal/calculation"
	"github.com/refi/refi-calculator/internal/domain"
	"github.com/refi/refi-calculator/pkg/dateutil"
	pkgdec "github.com/refi/refi-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Dash stands in for any figure that has no value
const Dash = "-"

// FormatCurrency formats a decimal as USD currency with 2 decimals.
func FormatCurrency(amount decimal.Decimal) string { return pkgdec.NewMoneyFromDecimal(amount).Format() }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatMoney formats a float amount as currency; non-finite amounts render as a dash
func FormatMoney(amount float64) string {
	if !finite(amount) {
		return Dash
	}
	return pkgdec.NewMoney(amount).Format()
}

// FormatValue formats an optional amount as currency
func FormatValue(v domain.Value) string {
	if !v.Valid {
		return Dash
	}
	return FormatMoney(v.Amount)
}

// FormatRate formats an annual percentage rate such as 4.5 as "4.50%"
func FormatRate(percent float64) string {
	if !finite(percent) {
		return Dash
	}
	return FormatPercentage(decimal.NewFromFloat(percent))
}

// FormatTerm formats an optional month count as "266.41 (22y 3m)"
func FormatTerm(v domain.Value) string {
	if !v.Valid || !finite(v.Amount) {
		return Dash
	}
	return fmt.Sprintf("%s (%s)", strconv.FormatFloat(v.Amount, 'f', 2, 64), dateutil.FormatTerm(v.Amount))
}

// FormatRecoupment describes when closing costs are recovered
func FormatRecoupment(r domain.RecoupmentResult) string {
	if !r.Reached() {
		return fmt.Sprintf("not reached within %d months", calc.RecoupmentHorizon+1)
	}
	if r.Month == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months (%s)", r.Month, dateutil.FormatTerm(float64(r.Month)))
}

// FormatDate formats an optional date, dash when absent
func FormatDate(t *time.Time) string {
	if t == nil {
		return Dash
	}
	return t.Format(dateutil.DateLayout)
}

// plainValue renders an optional amount for machine-readable output, empty when absent
func plainValue(v domain.Value) string {
	if !v.Valid || !finite(v.Amount) {
		return ""
	}
	return plainFloat(v.Amount)
}

func plainFloat(x float64) string {
	if !finite(x) {
		return ""
	}
	return decimal.NewFromFloat(x).StringFixed(2)
}

func plainDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateutil.DateLayout)
}

func intToString(i int) string { return strconv.Itoa(i) }

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
