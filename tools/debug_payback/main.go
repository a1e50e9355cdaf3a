package main

import (
	"fmt"
	"os"

	calc "github.com/refi/refi-calculator/internal/calculation"
	"github.com/refi/refi-calculator/internal/config"
	"github.com/refi/refi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Prints month-by-month interest and cumulative savings for both recoupment
// comparisons, so a payback month can be checked by hand.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_payback <inputs-file>")
		return
	}
	p := config.NewInputParser()
	in, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	set := calc.BuildScenarioSet(*in)
	closing := decimal.NewFromFloat(in.ClosingCosts.Float())

	fmt.Println("Month,CurMinInterest,RefiMinInterest,SavedMin,CurPlannedInterest,RefiPlannedInterest,SavedPlanned")
	savedMin, savedPlanned := decimal.Zero, decimal.Zero
	reachedMin, reachedPlanned := 0, 0
	for i := 0; i <= calc.RecoupmentHorizon; i++ {
		cm := interest(set.CurrentMinimum, i)
		rm := interest(set.RefiMinimum, i)
		cp := interest(set.CurrentPlanned, i)
		rp := interest(set.RefiPlanned, i)
		savedMin = savedMin.Add(cm).Sub(rm)
		savedPlanned = savedPlanned.Add(cp).Sub(rp)
		if reachedMin == 0 && savedMin.GreaterThanOrEqual(closing) {
			reachedMin = i + 1
		}
		if reachedPlanned == 0 && savedPlanned.GreaterThanOrEqual(closing) {
			reachedPlanned = i + 1
		}
		fmt.Printf("%d,%s,%s,%s,%s,%s,%s\n", i+1, cm.StringFixed(2), rm.StringFixed(2), savedMin.StringFixed(2), cp.StringFixed(2), rp.StringFixed(2), savedPlanned.StringFixed(2))
	}

	r := calc.Recoupment(*in)
	fmt.Fprintf(os.Stderr, "recomputed: %d / %d months, engine: %d / %d months\n",
		reachedMin, reachedPlanned, r.WithoutAdditionalPayment.Month, r.WithAdditionalPayment.Month)
}

func interest(s domain.Schedule, i int) decimal.Decimal {
	row, ok := s.At(i)
	if !ok {
		return decimal.Zero
	}
	return decimal.NewFromFloat(row.Interest)
}
