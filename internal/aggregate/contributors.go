package aggregate

import (
	"slices"

	"github.com/shopspring/decimal"

	"goaltracker/internal/domain"
)

// Contributors groups records by exact contributor name and orders the groups
// by total amount, largest first. Equal totals keep first-appearance order.
func Contributors(records []domain.Donation) []domain.Contributor {
	index := make(map[string]int)
	var out []domain.Contributor
	for _, d := range records {
		i, ok := index[d.Contributor]
		if !ok {
			index[d.Contributor] = len(out)
			out = append(out, domain.Contributor{
				Name:         d.Contributor,
				TotalAmount:  decimal.Zero,
				LastDonation: d.Timestamp,
			})
			i = len(out) - 1
		}
		c := &out[i]
		c.TotalAmount = c.TotalAmount.Add(d.Amount)
		c.DonationCount++
		if d.Timestamp.After(c.LastDonation) {
			c.LastDonation = d.Timestamp
		}
	}
	for i := range out {
		out[i].AverageAmount = out[i].TotalAmount.Div(decimal.NewFromInt(int64(out[i].DonationCount)))
	}
	slices.SortStableFunc(out, func(a, b domain.Contributor) int {
		return b.TotalAmount.Cmp(a.TotalAmount)
	})
	return out
}

// TopContributors returns at most limit leaderboard entries. A non-positive limit returns all of them.
func TopContributors(records []domain.Donation, limit int) []domain.Contributor {
	all := Contributors(records)
	if limit > 0 && len(all) > limit {
		return all[:limit]
	}
	return all
}
