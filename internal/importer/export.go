package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"goaltracker/internal/domain"
)

// TimestampLayout is the ISO-8601 form used in exports: UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var exportHeader = []string{"contributor", "amount", "currency", "message", "timestamp", "platform"}

// ExportCSV writes records in their current order with a header row.
func ExportCSV(w io.Writer, records []domain.Donation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for _, d := range records {
		row := []string{
			d.Contributor,
			d.Amount.String(),
			d.Currency,
			d.Message,
			d.Timestamp.UTC().Format(TimestampLayout),
			string(d.Source),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ContributorsCSV writes a leaderboard with one row per contributor.
func ContributorsCSV(w io.Writer, contributors []domain.Contributor, currency string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"rank", "contributor", "total", "donations", "average", "currency", "last_donation"}); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for i, c := range contributors {
		row := []string{
			fmt.Sprint(i + 1),
			c.Name,
			c.TotalAmount.StringFixed(2),
			fmt.Sprint(c.DonationCount),
			c.AverageAmount.StringFixed(2),
			currency,
			c.LastDonation.UTC().Format(TimestampLayout),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SampleRecords returns the two-row example offered to users as a template file.
func SampleRecords(now time.Time) []domain.Donation {
	return []domain.Donation{
		{
			ID:          "1",
			Contributor: "John Doe",
			Amount:      decimal.NewFromInt(50),
			Currency:    "USD",
			Message:     "Great stream! Keep it up!",
			Timestamp:   now,
			Source:      domain.SourceManual,
		},
		{
			ID:          "2",
			Contributor: "Jane Smith",
			Amount:      decimal.NewFromInt(25),
			Currency:    "USD",
			Message:     "Love what you're doing for charity!",
			Timestamp:   now,
			Source:      domain.SourceManual,
		},
	}
}
