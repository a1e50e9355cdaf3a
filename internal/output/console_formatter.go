package output

import (
	"bytes"
	"fmt"

	"github.com/refi/refi-calculator/internal/domain"
)

// ConsoleFormatter prints the summary cards: payments, terms, interest and payback.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(a *domain.Analysis) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "REFINANCE ANALYSIS SUMMARY")
	fmt.Fprintln(&buf, "================================")
	writeSummary(&buf, a)
	fmt.Fprintln(&buf)
	writeScenarioTable(&buf, a.Summary.Scenarios)
	fmt.Fprintln(&buf)
	writeRecoupment(&buf, a.Summary.Recoupment)

	rec := AnalyzeScenarios(a)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Recommended: %s\n", rec.Headline())
	return buf.Bytes(), nil
}

func writeSummary(buf *bytes.Buffer, a *domain.Analysis) {
	m := a.Summary
	fmt.Fprintf(buf, "Current Minimum Payment: %s\n", FormatValue(m.CurrentMinimumPayment))
	fmt.Fprintf(buf, "Current Payment:         %s\n", FormatMoney(a.Inputs.CurrentPayment.Float()))
	fmt.Fprintf(buf, "Additional Payment:      %s\n", FormatValue(m.AdditionalPayment))
	fmt.Fprintf(buf, "Refi Minimum Payment:    %s\n", FormatValue(m.RefiMinimumPayment))
	fmt.Fprintf(buf, "New Principal:           %s\n", FormatMoney(m.NewPrincipal))
	fmt.Fprintf(buf, "Closing Costs:           %s (net cash to close %s)\n",
		FormatMoney(m.Recoupment.ClosingCosts), FormatMoney(m.NetCashToClose))
}

func writeScenarioTable(buf *bytes.Buffer, scenarios []domain.ScenarioSummary) {
	fmt.Fprintf(buf, "%-24s %12s %20s %16s %12s\n", "Scenario", "Payment", "Remaining Term", "Total Interest", "Payoff")
	for _, sc := range scenarios {
		fmt.Fprintf(buf, "%-24s %12s %20s %16s %12s\n",
			sc.Name,
			FormatValue(sc.Payment),
			FormatTerm(sc.RemainingTerm),
			FormatValue(sc.TotalInterest),
			FormatDate(sc.PayoffDate),
		)
	}
}

func writeRecoupment(buf *bytes.Buffer, r domain.Recoupment) {
	fmt.Fprintln(buf, "Recoupment of closing costs:")
	fmt.Fprintf(buf, "  Without additional payment: %s\n", FormatRecoupment(r.WithoutAdditionalPayment))
	fmt.Fprintf(buf, "  With additional payment:    %s\n", FormatRecoupment(r.WithAdditionalPayment))
}
