package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/refi/refi-calculator/internal/domain"
)

// FormatSchedule renders a single scenario's amortization as a console table or CSV
func FormatSchedule(kind domain.ScenarioKind, s domain.Schedule, format string) ([]byte, error) {
	switch NormalizeFormatName(format) {
	case "", "console", "console-verbose":
		var buf bytes.Buffer
		fmt.Fprintf(&buf, "%s AMORTIZATION\n", strings.ToUpper(kind.Label()))
		fmt.Fprintln(&buf, strings.Repeat("=", 72))
		if len(s) == 0 {
			fmt.Fprintln(&buf, "(no schedule: the payment does not amortize this loan)")
			return buf.Bytes(), nil
		}
		writeScheduleRows(&buf, s, "")
		fmt.Fprintln(&buf, strings.Repeat("-", 72))
		fmt.Fprintf(&buf, "Months: %d  Interest: %s  PMI: %s  Ending balance: %s\n",
			len(s), FormatMoney(s.TotalInterest()), FormatMoney(s.TotalPMI()), FormatMoney(s.EndingBalance()))
		return buf.Bytes(), nil
	case "csv", "detailed-csv":
		buf := &bytes.Buffer{}
		w := csv.NewWriter(buf)
		if err := w.Write(scheduleHeader(false)); err != nil {
			return nil, err
		}
		for _, r := range s {
			if err := w.Write(scheduleRecord(r)); err != nil {
				return nil, err
			}
		}
		w.Flush()
		return buf.Bytes(), w.Error()
	}
	return nil, fmt.Errorf("%w for schedules: %q (use console or csv)", ErrUnsupportedFormat, format)
}
