// Package money formats donation amounts and resolves currency codes.
package money

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders amount the way an en-US price tag would: currency
// symbol prefix, thousands grouping and at most two fraction digits with
// trailing zeros dropped ("$1,234.5", "€50").
func FormatCurrency(amount decimal.Decimal, code string) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	digits := printer.Sprint(number.Decimal(rounded.InexactFloat64(),
		number.MinFractionDigits(0), number.MaxFractionDigits(2)))

	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return fmt.Sprintf("%s%s %s", sign, strings.ToUpper(strings.TrimSpace(code)), digits)
	}
	return sign + Symbol(unit) + digits
}

// Symbol returns the en-US display symbol for a currency unit, for example "$" or "€".
func Symbol(unit currency.Unit) string {
	return printer.Sprint(currency.Symbol(unit))
}

// FormatNumber shortens large counters: 1.2M, 3.4K, or the plain value below one thousand.
func FormatNumber(n int64) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(float64(n)/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(float64(n)/1_000, 'f', 1, 64) + "K"
	default:
		return strconv.FormatInt(n, 10)
	}
}
