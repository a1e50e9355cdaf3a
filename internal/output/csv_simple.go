package output

import (
	"bytes"
	"encoding/csv"

	"github.com/refi/refi-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(a *domain.Analysis) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Kind", "StartBalance", "AnnualRate", "MaxTerm", "Payment", "TotalMonthlyOutlay", "RemainingTerm", "TotalInterest", "ScheduleMonths", "ScheduledInterest", "ScheduledPMI", "EndingBalance", "PayoffDate", "RecoupmentMonths"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	r := a.Summary.Recoupment
	for _, sc := range a.Summary.Scenarios {
		recoup := ""
		switch sc.Kind {
		case domain.RefiMinimum:
			recoup = intToString(r.WithoutAdditionalPayment.Month)
		case domain.RefiPlanned:
			recoup = intToString(r.WithAdditionalPayment.Month)
		}
		row := []string{
			sc.Name,
			string(sc.Kind),
			plainFloat(sc.StartBalance),
			plainFloat(sc.AnnualRate),
			intToString(sc.MaxTerm),
			plainValue(sc.Payment),
			plainValue(sc.TotalMonthlyOutlay),
			plainValue(sc.RemainingTerm),
			plainValue(sc.TotalInterest),
			intToString(sc.ScheduleMonths),
			plainFloat(sc.ScheduledInterest),
			plainFloat(sc.ScheduledPMI),
			plainFloat(sc.EndingBalance),
			plainDate(sc.PayoffDate),
			recoup,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
