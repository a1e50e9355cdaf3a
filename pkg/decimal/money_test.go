package decimal

import (
	"math"
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestNewMoney(t *testing.T) {
	if got := NewMoney(12.345).String(); got != "12.35" {
		t.Fatalf("NewMoney display mismatch: got %s", got)
	}
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if !NewMoney(v).IsZero() {
			t.Fatalf("NewMoney(%v) should be zero", v)
		}
	}

	d := stddec.NewFromFloat(10.125)
	if m := NewMoneyFromDecimal(d); !m.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m.Decimal, d)
	}
}

func TestFormat(t *testing.T) {
	cases := map[float64]string{
		1013.37:   "$1013.37",
		0:         "$0.00",
		1200.0:    "$1200.00",
		-2.5:      "-$2.50",
		164813.42: "$164813.42",
	}
	for in, want := range cases {
		if got := NewMoney(in).Format(); got != want {
			t.Fatalf("Format(%v) = %s, want %s", in, got, want)
		}
	}
}
