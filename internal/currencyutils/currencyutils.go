// Package currencyutils normalizes currency codes found in CSV fields.
package currencyutils

import "strings"

// Normalize upper-cases a currency code and falls back to the configured
// default when the field is blank. It does not reject unknown codes; the
// tracker accepts whatever currency the user logs in.
func Normalize(code, fallback string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return strings.ToUpper(strings.TrimSpace(fallback))
	}
	return code
}
