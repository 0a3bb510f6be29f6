package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimal parses a user-entered numeric string. Both `.` and `,` are
// accepted as the decimal separator (the comma is normalized to a dot before
// parsing). A failed parse returns (0, false): callers in display contexts use
// the zero, callers validating a submission treat !ok as an invalid line.
func ParseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}

	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}

	return d, true
}

// ParseDecimalOrZero is ParseDecimal for optional fields: empty or malformed
// input degrades to zero.
func ParseDecimalOrZero(s string) decimal.Decimal {
	d, ok := ParseDecimal(s)
	if !ok {
		return decimal.Zero
	}
	return d
}
