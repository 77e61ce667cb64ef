package aggregate

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"goaltracker/internal/domain"
)

// HourBucket aggregates donations that fell within the same hour of the day.
type HourBucket struct {
	Hour   int
	Label  string
	Amount decimal.Decimal
	Count  int
}

// HourlyHistogram buckets records by wall-clock hour (0-23) in loc, ignoring
// the calendar date. Only hours with donations are returned, in ascending order.
func HourlyHistogram(records []domain.Donation, loc *time.Location) []HourBucket {
	if loc == nil {
		loc = time.Local
	}
	byHour := make(map[int]*HourBucket)
	for _, d := range records {
		h := d.Timestamp.In(loc).Hour()
		b, ok := byHour[h]
		if !ok {
			b = &HourBucket{Hour: h, Label: fmt.Sprintf("%d:00", h), Amount: decimal.Zero}
			byHour[h] = b
		}
		b.Amount = b.Amount.Add(d.Amount)
		b.Count++
	}

	out := make([]HourBucket, 0, len(byHour))
	for _, b := range byHour {
		out = append(out, *b)
	}
	slices.SortFunc(out, func(a, b HourBucket) int { return a.Hour - b.Hour })
	return out
}
