package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/refi/refi-calculator/internal/domain"
)

const (
	pdfMarginLeft   = 15.0
	pdfMarginTop    = 15.0
	pdfMarginRight  = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = 210.0 - pdfMarginLeft - pdfMarginRight
)

// PDFFormatter renders an A4 report: summary, scenario table, recoupment and
// a year-by-year balance table.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(a *domain.Analysis) ([]byte, error) {
	r := &pdfReport{pdf: fpdf.New("P", "mm", "A4", ""), a: a}
	r.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	r.pdf.SetAutoPageBreak(true, pdfMarginBottom)
	r.pdf.SetTitle("Mortgage Refinance Analysis", false)

	r.addSummaryPage()
	r.addYearlyBalances()

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type pdfReport struct {
	pdf *fpdf.Fpdf
	a   *domain.Analysis
}

func (r *pdfReport) addSummaryPage() {
	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 22)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 12, "Mortgage Refinance Analysis", "", 1, "L", false, 0, "")
	r.pdf.Ln(4)

	m := r.a.Summary
	r.drawSectionHeader("Summary")
	for _, kv := range [][2]string{
		{"Current minimum payment", FormatValue(m.CurrentMinimumPayment)},
		{"Current payment", FormatMoney(r.a.Inputs.CurrentPayment.Float())},
		{"Additional payment", FormatValue(m.AdditionalPayment)},
		{"Refi minimum payment", FormatValue(m.RefiMinimumPayment)},
		{"New principal", FormatMoney(m.NewPrincipal)},
		{"Closing costs", FormatMoney(m.Recoupment.ClosingCosts)},
		{"Net cash to close", FormatMoney(m.NetCashToClose)},
	} {
		r.drawKeyValue(kv[0], kv[1])
	}
	r.pdf.Ln(4)

	r.drawSectionHeader("Scenarios")
	widths := []float64{50, 26, 26, 42, 36}
	r.drawTableHeader([]string{"Scenario", "Rate", "Payment", "Remaining Term", "Total Interest"}, widths)
	for _, sc := range m.Scenarios {
		r.drawTableRow([]string{
			sc.Name,
			FormatRate(sc.AnnualRate),
			FormatValue(sc.Payment),
			FormatTerm(sc.RemainingTerm),
			FormatValue(sc.TotalInterest),
		}, widths)
	}
	r.pdf.Ln(6)

	r.drawSectionHeader("Recoupment")
	r.drawKeyValue("Without additional payment", FormatRecoupment(m.Recoupment.WithoutAdditionalPayment))
	r.drawKeyValue("With additional payment", FormatRecoupment(m.Recoupment.WithAdditionalPayment))
	r.pdf.Ln(4)

	r.drawSectionHeader("Recommendation")
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.MultiCell(pdfContentWidth, 5, pdfText(AnalyzeScenarios(r.a).Headline()), "", "L", false)
	r.pdf.Ln(4)

	r.drawSectionHeader("Assumptions")
	r.pdf.SetFont("Arial", "", 9)
	for _, line := range GenerateAssumptions(r.a.Inputs) {
		r.pdf.MultiCell(pdfContentWidth, 5, pdfText("- "+line), "", "L", false)
	}
}

// addYearlyBalances lists each scenario's balance at the start of every loan year
func (r *pdfReport) addYearlyBalances() {
	r.pdf.AddPage()
	r.drawSectionHeader("Balance at Start of Year")

	headers := []string{"Year"}
	widths := []float64{20}
	years := 0
	for _, kind := range domain.AllScenarios {
		headers = append(headers, kind.Label())
		widths = append(widths, (pdfContentWidth-20)/float64(len(domain.AllScenarios)))
		if n := (len(r.a.Scenarios.Get(kind)) + 11) / 12; n > years {
			years = n
		}
	}
	r.drawTableHeader(headers, widths)
	for y := 0; y < years; y++ {
		cells := []string{fmt.Sprintf("%d", y+1)}
		for _, kind := range domain.AllScenarios {
			row, ok := r.a.Scenarios.Get(kind).At(y * 12)
			if !ok {
				cells = append(cells, Dash)
				continue
			}
			cells = append(cells, FormatMoney(row.BeginningBalance))
		}
		r.drawTableRow(cells, widths)
	}
}

func (r *pdfReport) drawSectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 14)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 8, title, "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(0, 51, 102)
	r.pdf.Line(pdfMarginLeft, r.pdf.GetY(), pdfMarginLeft+pdfContentWidth, r.pdf.GetY())
	r.pdf.Ln(3)
}

func (r *pdfReport) drawKeyValue(key, value string) {
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.CellFormat(70, 6, key, "", 0, "L", false, 0, "")
	r.pdf.SetFont("Arial", "B", 10)
	r.pdf.CellFormat(pdfContentWidth-70, 6, pdfText(value), "", 1, "L", false, 0, "")
}

func (r *pdfReport) drawTableHeader(headers []string, widths []float64) {
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 8)
	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 6, header, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *pdfReport) drawTableRow(cells []string, widths []float64) {
	r.pdf.SetFillColor(250, 250, 250)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.SetFont("Arial", "", 8)
	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 5, pdfText(cell), "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

// pdfText keeps core fonts happy: they only cover Latin-1
func pdfText(s string) string {
	return strings.NewReplacer("•", "-", "≥", ">=").Replace(s)
}
