package dateutil

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DateLayout is the calendar date format accepted in loan inputs
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date. An empty string yields the zero time and no error.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// AddMonths adds a number of months to a date, clamping to the last day of
// the target month (Jan 31 + 1 month = Feb 28/29).
func AddMonths(date time.Time, months int) time.Time {
	y, m, d := date.Date()
	first := time.Date(y, m, 1, date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
	target := first.AddDate(0, months, 0)
	if last := DaysInMonth(target.Year(), target.Month()); d > last {
		d = last
	}
	return time.Date(target.Year(), target.Month(), d, date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
}

// PaymentDate returns the due date of a 1-based payment month given the first due date
func PaymentDate(first time.Time, month int) time.Time {
	return AddMonths(first, month-1)
}

// MonthsBetween counts whole calendar months from one date to another
func MonthsBetween(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() && to.Day() != DaysInMonth(to.Year(), to.Month()) {
		months--
	}
	return months
}

// DaysInMonth returns the number of days in a month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FormatTerm renders a month count as years and months, e.g. 352 -> "29y 4m".
// Fractional months are rounded up since a partial month still needs a payment.
func FormatTerm(months float64) string {
	if math.IsNaN(months) || math.IsInf(months, 0) || months <= 0 {
		return "-"
	}
	n := int(math.Ceil(months))
	y, m := n/12, n%12
	switch {
	case y == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dy", y)
	default:
		return fmt.Sprintf("%dy %dm", y, m)
	}
}
