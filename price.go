package main

import (
	"errors"
	"fmt"
	"strings"
)

var errInvalidPrice = errors.New("invalid price")

// parsePrice converts a decimal price string ("4.99", "12", "0.5") to
// minor currency units. Parsing is done on the digit strings rather than
// through float64 so "4.99" is exactly 499; cent digits beyond the
// second are truncated. A leading "$" is tolerated.
func parsePrice(s string) (int64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return 0, errInvalidPrice
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, errInvalidPrice
	}

	var cents int64
	for _, r := range whole {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", errInvalidPrice, s)
		}
		d := int64(r - '0')
		if cents > (maxPriceCents-d)/10 {
			return 0, fmt.Errorf("%w: %q out of range", errInvalidPrice, s)
		}
		cents = cents*10 + d
	}
	cents *= 100

	for _, r := range frac {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", errInvalidPrice, s)
		}
	}
	if len(frac) > 2 {
		frac = frac[:2]
	}
	mult := int64(10)
	for _, r := range frac {
		cents += int64(r-'0') * mult
		mult /= 10
	}
	return cents, nil
}

// maxPriceCents bounds parsed prices well below int64 overflow.
const maxPriceCents = int64(1) << 50

// formatCents renders minor units as a dollar amount for display.
func formatCents(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
