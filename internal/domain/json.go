package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// finite is a float64 as it appears in JSON: NaN and infinities have no JSON
// number form and encode as null, and null decodes as NaN so a value that
// went out as null comes back out as null.
type finite float64

func (f finite) MarshalJSON() ([]byte, error) {
	x := float64(f)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(x, 'f', -1, 64)), nil
}

func (f *finite) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*f = finite(math.NaN())
		return nil
	}
	var x float64
	if err := json.Unmarshal(data, &x); err != nil {
		return err
	}
	*f = finite(x)
	return nil
}

// MarshalJSON implements json.Marshaler
func (r AmortizationRow) MarshalJSON() ([]byte, error) {
	type plain AmortizationRow
	return json.Marshal(struct {
		plain
		BeginningBalance finite `json:"beginning_balance"`
		Interest         finite `json:"interest"`
		Payment          finite `json:"payment"`
		PMI              finite `json:"pmi"`
		Principal        finite `json:"principal"`
	}{plain(r), finite(r.BeginningBalance), finite(r.Interest), finite(r.Payment), finite(r.PMI), finite(r.Principal)})
}

// UnmarshalJSON implements json.Unmarshaler
func (r *AmortizationRow) UnmarshalJSON(data []byte) error {
	type plain AmortizationRow
	var v struct {
		*plain
		BeginningBalance finite `json:"beginning_balance"`
		Interest         finite `json:"interest"`
		Payment          finite `json:"payment"`
		PMI              finite `json:"pmi"`
		Principal        finite `json:"principal"`
	}
	v.plain = (*plain)(r)
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	r.BeginningBalance = float64(v.BeginningBalance)
	r.Interest = float64(v.Interest)
	r.Payment = float64(v.Payment)
	r.PMI = float64(v.PMI)
	r.Principal = float64(v.Principal)
	return nil
}

// MarshalJSON implements json.Marshaler
func (s ScenarioSummary) MarshalJSON() ([]byte, error) {
	type plain ScenarioSummary
	return json.Marshal(struct {
		plain
		StartBalance      finite `json:"start_balance"`
		AnnualRate        finite `json:"annual_rate"`
		ScheduledInterest finite `json:"scheduled_interest"`
		ScheduledPMI      finite `json:"scheduled_pmi"`
		EndingBalance     finite `json:"ending_balance"`
	}{plain(s), finite(s.StartBalance), finite(s.AnnualRate), finite(s.ScheduledInterest), finite(s.ScheduledPMI), finite(s.EndingBalance)})
}

// UnmarshalJSON implements json.Unmarshaler
func (s *ScenarioSummary) UnmarshalJSON(data []byte) error {
	type plain ScenarioSummary
	var v struct {
		*plain
		StartBalance      finite `json:"start_balance"`
		AnnualRate        finite `json:"annual_rate"`
		ScheduledInterest finite `json:"scheduled_interest"`
		ScheduledPMI      finite `json:"scheduled_pmi"`
		EndingBalance     finite `json:"ending_balance"`
	}
	v.plain = (*plain)(s)
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	s.StartBalance = float64(v.StartBalance)
	s.AnnualRate = float64(v.AnnualRate)
	s.ScheduledInterest = float64(v.ScheduledInterest)
	s.ScheduledPMI = float64(v.ScheduledPMI)
	s.EndingBalance = float64(v.EndingBalance)
	return nil
}

// MarshalJSON implements json.Marshaler
func (m SummaryMetrics) MarshalJSON() ([]byte, error) {
	type plain SummaryMetrics
	return json.Marshal(struct {
		plain
		NewPrincipal   finite `json:"new_principal"`
		NetCashToClose finite `json:"net_cash_to_close"`
	}{plain(m), finite(m.NewPrincipal), finite(m.NetCashToClose)})
}

// UnmarshalJSON implements json.Unmarshaler
func (m *SummaryMetrics) UnmarshalJSON(data []byte) error {
	type plain SummaryMetrics
	var v struct {
		*plain
		NewPrincipal   finite `json:"new_principal"`
		NetCashToClose finite `json:"net_cash_to_close"`
	}
	v.plain = (*plain)(m)
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	m.NewPrincipal = float64(v.NewPrincipal)
	m.NetCashToClose = float64(v.NetCashToClose)
	return nil
}

// MarshalJSON implements json.Marshaler
func (r Recoupment) MarshalJSON() ([]byte, error) {
	type plain Recoupment
	return json.Marshal(struct {
		plain
		ClosingCosts finite `json:"closing_costs"`
	}{plain(r), finite(r.ClosingCosts)})
}

// UnmarshalJSON implements json.Unmarshaler
func (r *Recoupment) UnmarshalJSON(data []byte) error {
	type plain Recoupment
	var v struct {
		*plain
		ClosingCosts finite `json:"closing_costs"`
	}
	v.plain = (*plain)(r)
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	r.ClosingCosts = float64(v.ClosingCosts)
	return nil
}

// MarshalJSON implements json.Marshaler
func (r RecoupmentResult) MarshalJSON() ([]byte, error) {
	type plain RecoupmentResult
	return json.Marshal(struct {
		plain
		CumulativeSavings finite `json:"cumulative_savings"`
	}{plain(r), finite(r.CumulativeSavings)})
}

// UnmarshalJSON implements json.Unmarshaler
func (r *RecoupmentResult) UnmarshalJSON(data []byte) error {
	type plain RecoupmentResult
	var v struct {
		*plain
		CumulativeSavings finite `json:"cumulative_savings"`
	}
	v.plain = (*plain)(r)
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	r.CumulativeSavings = float64(v.CumulativeSavings)
	return nil
}
