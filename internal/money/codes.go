package money

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// NormalizeCode trims and upper-cases a currency code and checks it is a known ISO 4217 code.
func NormalizeCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", fmt.Errorf("currency %q: must be a 3-letter code", code)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("currency %q: %w", code, err)
	}
	return unit.String(), nil
}

// CurrencyForCountry returns the tender currency of an ISO 3166 country code,
// or fallback when the country is unknown or has no mapped currency.
func CurrencyForCountry(country, fallback string) string {
	country = strings.ToUpper(strings.TrimSpace(country))
	if country == "" {
		return fallback
	}
	region, err := language.ParseRegion(country)
	if err != nil {
		return fallback
	}
	unit, ok := currency.FromRegion(region)
	if !ok {
		return fallback
	}
	return unit.String()
}
