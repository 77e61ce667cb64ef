package aggregate

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"goaltracker/internal/domain"
)

// RecentWindow is the look-back used for "last hour" activity figures.
const RecentWindow = time.Hour

// Summary holds the headline analytics figures for a record collection.
type Summary struct {
	TotalBeforeCut   decimal.Decimal
	TotalAfterCut    decimal.Decimal
	Count            int
	ContributorCount int
	Average          decimal.Decimal
	Largest          decimal.Decimal
	LastHourAmount   decimal.Decimal
	LastHourCount    int
}

// Summarize computes totals, the largest single donation and activity within
// RecentWindow before now.
func Summarize(records []domain.Donation, cutPercent decimal.Decimal, now time.Time) Summary {
	s := Summary{
		TotalBeforeCut: TotalBeforeCut(records),
		Count:          len(records),
		Average:        decimal.Zero,
		Largest:        decimal.Zero,
		LastHourAmount: decimal.Zero,
	}
	s.TotalAfterCut = AfterCut(s.TotalBeforeCut, cutPercent)

	names := make(map[string]struct{})
	since := now.Add(-RecentWindow)
	for _, d := range records {
		names[d.Contributor] = struct{}{}
		if d.Amount.GreaterThan(s.Largest) {
			s.Largest = d.Amount
		}
		if d.Timestamp.After(since) {
			s.LastHourAmount = s.LastHourAmount.Add(d.Amount)
			s.LastHourCount++
		}
	}
	s.ContributorCount = len(names)
	if s.Count > 0 {
		s.Average = s.TotalBeforeCut.Div(decimal.NewFromInt(int64(s.Count)))
	}
	return s
}

// Recent returns up to limit records ordered newest first. The input is not modified.
func Recent(records []domain.Donation, limit int) []domain.Donation {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b domain.Donation) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
