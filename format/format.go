// Package format converts between the display strings used by calculator
// forms ("10,000", "5%") and plain numbers.
package format

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidNumber = errors.New("invalid number")

// ParseAmount parses a number that may carry thousands separators.
func ParseAmount(s string) (float64, error) {
	d, err := parse(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

// ParsePercent parses a percentage such as "5%" or "5" and returns 5.
func ParsePercent(s string) (float64, error) {
	s = strings.ReplaceAll(s, "%", "")
	return ParseAmount(s)
}

// FormatAmount renders v with two decimals and comma thousands separators.
func FormatAmount(v float64) string {
	fixed := decimal.NewFromFloat(v).StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// FormatPercent renders a percentage with two decimals, e.g. "12.68%".
func FormatPercent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + "%"
}

func parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty value: %w", ErrInvalidNumber)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q: %w", s, ErrInvalidNumber)
	}
	return d, nil
}
