package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/refi/refi-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with an inline chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"money":      FormatMoney,
	"value":      FormatValue,
	"rate":       FormatRate,
	"term":       FormatTerm,
	"date":       FormatDate,
	"recoupment": FormatRecoupment,
	"add":        func(i, j int) int { return i + j },
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// chartSeries is the compact form the inline chart script reads
type chartSeries struct {
	Label    string     `json:"label"`
	Balance  []*float64 `json:"balance"`
	Interest []float64  `json:"interest"`
}

func buildChartSeries(points []domain.SeriesPoint) []chartSeries {
	out := make([]chartSeries, 0, len(domain.AllScenarios))
	for _, kind := range domain.AllScenarios {
		cs := chartSeries{Label: kind.Label()}
		for _, p := range points {
			if b := p.Balance.Get(kind); b.Valid {
				v := b.Amount
				cs.Balance = append(cs.Balance, &v)
			} else {
				cs.Balance = append(cs.Balance, nil)
			}
			cs.Interest = append(cs.Interest, p.CumulativeInterest.Get(kind).Amount)
		}
		out = append(out, cs)
	}
	return out
}

func (h HTMLFormatter) Format(a *domain.Analysis) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.Analysis
		Recommendation Recommendation
		Assumptions    []string
		Chart          []chartSeries
	}{a, AnalyzeScenarios(a), GenerateAssumptions(a.Inputs), buildChartSeries(a.Series)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
