package decimal

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundCents rounds x to two decimal places, halves toward +Inf.
// NaN and infinities are returned unchanged.
func RoundCents(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return math.Floor(x*100+0.5) / 100
}

var numericPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d+)?|\.\d+)([eE][+-]?\d+)?`)

// SafeFloat coerces loosely typed input into a float64. Anything that cannot
// be read as a number (nil, "", "abc", NaN, bool) yields 0. Strings are read
// up to the longest numeric prefix, so "12.5%" is 12.5.
func SafeFloat(v any) float64 {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case decimal.Decimal:
		f = n.InexactFloat64()
	case json.Number:
		f = parseLenient(string(n))
	case string:
		f = parseLenient(n)
	default:
		return 0
	}
	if math.IsNaN(f) {
		return 0
	}
	return f
}

func parseLenient(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	for _, inf := range []string{"Infinity", "+Infinity"} {
		if strings.HasPrefix(s, inf) {
			return math.Inf(1)
		}
	}
	if strings.HasPrefix(s, "-Infinity") {
		return math.Inf(-1)
	}
	prefix := numericPrefix.FindString(s)
	if prefix == "" {
		return 0
	}
	d, err := decimal.NewFromString(prefix)
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}
