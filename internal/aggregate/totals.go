// Package aggregate derives campaign progress, leaderboards and activity
// views from a snapshot of donation records. Every function is pure; callers
// pass the current time and location explicitly.
package aggregate

import (
	"github.com/shopspring/decimal"

	"goaltracker/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// TotalBeforeCut sums every donation amount.
func TotalBeforeCut(records []domain.Donation) decimal.Decimal {
	total := decimal.Zero
	for _, d := range records {
		total = total.Add(d.Amount)
	}
	return total
}

// AfterCut applies the platform's revenue share: amount * (1 - cut/100).
func AfterCut(amount, cutPercent decimal.Decimal) decimal.Decimal {
	return amount.Mul(hundred.Sub(cutPercent)).Div(hundred)
}

// TotalAfterCut is the campaign's current amount for a record collection.
func TotalAfterCut(records []domain.Donation, cutPercent decimal.Decimal) decimal.Decimal {
	return AfterCut(TotalBeforeCut(records), cutPercent)
}

// ProgressPercent returns current/target as a percentage capped at 100.
// A zero target always reports 0.
func ProgressPercent(current, target decimal.Decimal) float64 {
	if target.IsZero() {
		return 0
	}
	pct := current.Div(target).Mul(hundred)
	if pct.GreaterThan(hundred) {
		return 100
	}
	if pct.IsNegative() {
		return 0
	}
	return pct.InexactFloat64()
}
