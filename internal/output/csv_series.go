package output

import (
	"bytes"
	"encoding/csv"

	"github.com/refi/refi-calculator/internal/domain"
)

// SeriesCSVExporter writes the chart series: one row per month with each
// scenario's balance and cumulative interest.
type SeriesCSVExporter struct{}

func (s SeriesCSVExporter) Name() string { return "series-csv" }

func (s SeriesCSVExporter) Format(a *domain.Analysis) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Month"}
	for _, kind := range domain.AllScenarios {
		header = append(header, string(kind)+"Balance", string(kind)+"CumulativeInterest")
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, p := range a.Series {
		row := []string{intToString(p.Month)}
		for _, kind := range domain.AllScenarios {
			row = append(row, plainValue(p.Balance.Get(kind)), plainFloat(p.CumulativeInterest.Get(kind).Amount))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
