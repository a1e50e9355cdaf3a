package output

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/refi/refi-calculator/internal/domain"
	"github.com/refi/refi-calculator/pkg/dateutil"
)

// verboseRows is how many schedule rows the verbose report prints per scenario
const verboseRows = 12

// ConsoleVerboseFormatter renders the full console report: assumptions,
// summary, and per-scenario detail with the first year of each schedule.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console-verbose" }

func (c ConsoleVerboseFormatter) Format(a *domain.Analysis) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "DETAILED MORTGAGE REFINANCE ANALYSIS")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, line := range GenerateAssumptions(a.Inputs) {
		fmt.Fprintf(&buf, "• %s\n", line)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "SUMMARY")
	fmt.Fprintln(&buf, "=======")
	writeSummary(&buf, a)
	fmt.Fprintln(&buf)
	writeRecoupment(&buf, a.Summary.Recoupment)
	fmt.Fprintln(&buf)

	for i, sc := range a.Summary.Scenarios {
		fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, sc.Name)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		fmt.Fprintf(&buf, "  Starting Balance:     %s\n", FormatMoney(sc.StartBalance))
		fmt.Fprintf(&buf, "  Annual Rate:          %s\n", FormatRate(sc.AnnualRate))
		fmt.Fprintf(&buf, "  Stated Term:          %d months\n", sc.MaxTerm)
		fmt.Fprintf(&buf, "  Monthly Payment:      %s\n", FormatValue(sc.Payment))
		fmt.Fprintf(&buf, "  With Escrow:          %s\n", FormatValue(sc.TotalMonthlyOutlay))
		fmt.Fprintf(&buf, "  Remaining Term:       %s\n", FormatTerm(sc.RemainingTerm))
		fmt.Fprintf(&buf, "  Total Interest:       %s\n", FormatValue(sc.TotalInterest))
		fmt.Fprintf(&buf, "  Scheduled Interest:   %s over %d months\n", FormatMoney(sc.ScheduledInterest), sc.ScheduleMonths)
		fmt.Fprintf(&buf, "  Scheduled PMI:        %s\n", FormatMoney(sc.ScheduledPMI))
		fmt.Fprintf(&buf, "  Payoff Date:          %s%s\n", FormatDate(sc.PayoffDate), payoffOffset(a.Inputs, sc.PayoffDate))
		fmt.Fprintln(&buf)

		s := a.Scenarios.Get(sc.Kind)
		if len(s) == 0 {
			fmt.Fprintln(&buf, "  (no schedule: the payment does not amortize this loan)")
			fmt.Fprintln(&buf)
			continue
		}
		n := len(s)
		if n > verboseRows {
			n = verboseRows
		}
		writeScheduleRows(&buf, s[:n], "  ")
		if len(s) > n {
			fmt.Fprintf(&buf, "  ... %d more months\n", len(s)-n)
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintf(&buf, "RECOMMENDATION: %s\n", AnalyzeScenarios(a).Headline())
	return buf.Bytes(), nil
}

// payoffOffset reports how far the payoff date lies past the first payment
func payoffOffset(in domain.LoanInputs, payoff *time.Time) string {
	start, ok := in.StartDate()
	if !ok || payoff == nil {
		return ""
	}
	return fmt.Sprintf(" (%d months after the first payment)", dateutil.MonthsBetween(start, *payoff))
}

func writeScheduleRows(buf *bytes.Buffer, s domain.Schedule, indent string) {
	fmt.Fprintf(buf, "%s%5s %10s %14s %10s %10s %8s %10s\n", indent, "Month", "Date", "Balance", "Interest", "Payment", "PMI", "Principal")
	for _, r := range s {
		date := Dash
		if r.Date != nil {
			date = FormatDate(r.Date)
		}
		fmt.Fprintf(buf, "%s%5d %10s %14s %10s %10s %8s %10s\n", indent,
			r.Month,
			date,
			FormatMoney(r.BeginningBalance),
			FormatMoney(r.Interest),
			FormatMoney(r.Payment),
			FormatMoney(r.PMI),
			FormatMoney(r.Principal),
		)
	}
}
