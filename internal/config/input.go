package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/refi/refi-calculator/internal/calculation"
	"github.com/refi/refi-calculator/internal/domain"
	"github.com/refi/refi-calculator/pkg/dateutil"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of loan input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads loan inputs from a YAML or JSON file. Unparseable
// numbers load as zero; only unreadable or structurally broken files fail.
func (ip *InputParser) LoadFromFile(filename string) (*domain.LoanInputs, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data, strings.EqualFold(filepath.Ext(filename), ".json"))
}

// Parse decodes loan inputs from raw bytes
func (ip *InputParser) Parse(data []byte, isJSON bool) (*domain.LoanInputs, error) {
	var in domain.LoanInputs
	if isJSON {
		if err := json.Unmarshal(data, &in); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		return &in, nil
	}
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &in, nil
}

// Warnings lists conditions under which some results will be blank or
// surprising. None of them stop a calculation.
func Warnings(in domain.LoanInputs) []string {
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	if in.Appraisal.Float() <= 0 {
		warn("appraisal is not set; every loan will be treated as carrying PMI")
	}
	if in.OriginalRate.Float() == 0 {
		warn("original rate is 0%%; current loan payments cannot be computed")
	}
	if in.NewRate.Float() == 0 {
		warn("new rate is 0%%; refinance payments cannot be computed")
	}
	if in.OriginalTerm.Float() <= 0 {
		warn("original term is not set; current schedules will be empty")
	}
	if in.NewTerm.Float() <= 0 {
		warn("new term is not set; refinance schedules will be empty")
	}
	if in.CurrentBalance.Float() <= 0 {
		warn("current balance is not set")
	}
	if minimum := calculation.MinimumPayment(in, false); minimum.Valid && in.CurrentPayment.Float() < minimum.Amount {
		warn("current payment %.2f is below the minimum payment %.2f", in.CurrentPayment.Float(), minimum.Amount)
	}
	if in.CashOut.Float() < 0 {
		warn("cash out is negative (%.2f)", in.CashOut.Float())
	}
	if in.FirstPaymentDate != "" {
		if _, err := dateutil.ParseDate(in.FirstPaymentDate); err != nil {
			warn("first payment date ignored: %v", err)
		}
	}
	return warnings
}

// CreateExampleInputs returns a realistic refinance to start from
func (ip *InputParser) CreateExampleInputs() *domain.LoanInputs {
	return &domain.LoanInputs{
		Appraisal:         300000,
		CurrentValue:      320000,
		OriginalPrincipal: 250000,
		OriginalRate:      4.5,
		OriginalTerm:      360,
		OriginalPMI:       1200,
		CurrentPayment:    1500,
		CurrentBalance:    230000,
		ClosingCosts:      4000,
		RateDiscount:      0,
		MonthlyEscrow:     350,
		NewRate:           3.0,
		NewTerm:           360,
		NewPMI:            0,
		CashOut:           0,
		EscrowRefund:      1500,
		FirstPaymentDate:  "2025-01-01",
	}
}

// SaveToFile writes loan inputs as YAML, or JSON for a .json filename
func (ip *InputParser) SaveToFile(in *domain.LoanInputs, filename string) error {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		data, err = json.MarshalIndent(in, "", "  ")
	} else {
		data, err = yaml.Marshal(in)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal inputs: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
