package output

import (
	"bytes"
	"encoding/csv"

	"github.com/refi/refi-calculator/internal/domain"
)

// CSVDetailedExporter writes every row of every schedule, scenario by scenario.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(a *domain.Analysis) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(scheduleHeader(true)); err != nil {
		return nil, err
	}
	for _, kind := range domain.AllScenarios {
		for _, r := range a.Scenarios.Get(kind) {
			if err := w.Write(append([]string{string(kind)}, scheduleRecord(r)...)); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func scheduleHeader(withScenario bool) []string {
	h := []string{"Month", "Date", "BeginningBalance", "Interest", "Payment", "PMI", "Principal", "EndingBalance"}
	if withScenario {
		return append([]string{"Scenario"}, h...)
	}
	return h
}

func scheduleRecord(r domain.AmortizationRow) []string {
	return []string{
		intToString(r.Month),
		plainDate(r.Date),
		plainFloat(r.BeginningBalance),
		plainFloat(r.Interest),
		plainFloat(r.Payment),
		plainFloat(r.PMI),
		plainFloat(r.Principal),
		plainFloat(r.EndingBalance()),
	}
}
