package output

import (
	"fmt"

	calc "github.com/refi/refi-calculator/internal/calculation"
	"github.com/refi/refi-calculator/internal/domain"
)

// DefaultAssumptions lists the modeling rules rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Interest accrues monthly at the annual rate / 12, rounded to the cent",
	"PMI is charged while the balance is at or above 80% of the appraisal",
	"Once PMI drops off, the payment shrinks by the PMI no longer owed",
	"Refinance principal = current balance + cash out + closing costs",
	fmt.Sprintf("Recoupment compares monthly interest for up to %d months", calc.RecoupmentHorizon+1),
	"Escrow is shown in the monthly outlay but never amortized",
}

// GenerateAssumptions creates the assumptions list from the actual inputs
func GenerateAssumptions(in domain.LoanInputs) []string {
	appraisal := in.Appraisal.Float()
	return []string{
		DefaultAssumptions[0],
		fmt.Sprintf("PMI is charged while the balance is at or above %s (80%% of %s)",
			FormatMoney(appraisal*calc.PMIThreshold), FormatMoney(appraisal)),
		DefaultAssumptions[2],
		fmt.Sprintf("Refinance principal = %s balance + %s cash out + %s closing costs = %s",
			FormatMoney(in.CurrentBalance.Float()), FormatMoney(in.CashOut.Float()),
			FormatMoney(in.ClosingCosts.Float()), FormatMoney(calc.NewPrincipal(in))),
		DefaultAssumptions[4],
		fmt.Sprintf("Escrow of %s/month is shown in the monthly outlay but never amortized", FormatMoney(in.MonthlyEscrow.Float())),
	}
}
