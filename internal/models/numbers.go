package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimal parses a user-entered numeric field into a decimal value.
// It tolerates the formatting noise commonly found in hand-edited CSV files:
// surrounding whitespace, apostrophe thousand separators and a comma used as
// the decimal separator.
func ParseDecimal(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, "'", "")

	dec, err := decimal.NewFromString(cleaned)
	if err == nil {
		return dec, nil
	}

	// Second attempt with a comma decimal separator ("12,5" -> "12.5").
	// Only when there is exactly one comma and no dot, so "1,234.56" does
	// not silently turn into nonsense.
	if strings.Count(cleaned, ",") == 1 && !strings.Contains(cleaned, ".") {
		if dec, err2 := decimal.NewFromString(strings.Replace(cleaned, ",", ".", 1)); err2 == nil {
			return dec, nil
		}
	}

	return decimal.Zero, err
}
