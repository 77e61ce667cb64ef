package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"goaltracker/internal/domain"
)

// Settings are the system-wide inputs to derived views.
type Settings struct {
	CutPercent decimal.Decimal
	Location   *time.Location
}

// Dashboard bundles every derived view of one campaign snapshot.
type Dashboard struct {
	Campaign     domain.Campaign
	Progress     float64
	Remaining    decimal.Decimal
	Duration     string
	Estimate     Estimate
	Summary      Summary
	Contributors []domain.Contributor
	Hourly       []HourBucket
	Recent       []domain.Donation
}

const dashboardRecentLimit = 10

// Build derives the full dashboard from a campaign and its donations. It
// recomputes everything from scratch, so identical inputs give identical output.
func Build(campaign domain.Campaign, records []domain.Donation, settings Settings, now time.Time) Dashboard {
	current := TotalAfterCut(records, settings.CutPercent)
	campaign.CurrentAmount = current

	end := now
	if campaign.EndDate != nil && campaign.EndDate.Before(now) {
		end = *campaign.EndDate
	}

	remaining := campaign.TargetAmount.Sub(current)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return Dashboard{
		Campaign:     campaign,
		Progress:     ProgressPercent(current, campaign.TargetAmount),
		Remaining:    remaining,
		Duration:     FormatDuration(campaign.StartDate, end),
		Estimate:     EstimateTimeRemaining(current, campaign.TargetAmount, campaign.StartDate, now),
		Summary:      Summarize(records, settings.CutPercent, now),
		Contributors: Contributors(records),
		Hourly:       HourlyHistogram(records, settings.Location),
		Recent:       Recent(records, dashboardRecentLimit),
	}
}
