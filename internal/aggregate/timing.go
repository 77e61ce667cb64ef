package aggregate

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

var (
	msPerDay  = decimal.NewFromInt(day.Milliseconds())
	msPerHour = decimal.NewFromInt(time.Hour.Milliseconds())
	maxMillis = decimal.NewFromInt(math.MaxInt64 / int64(time.Millisecond))
	maxDays   = decimal.NewFromInt(math.MaxInt64)
)

// EstimateState classifies a time-to-goal projection.
type EstimateState string

const (
	EstimateUnknown   EstimateState = "unknown"
	EstimateReached   EstimateState = "reached"
	EstimateProjected EstimateState = "projected"
)

// Estimate is a linear run-rate projection of when a campaign reaches its target.
// Days and Hours are the whole components of the projection; Remaining is the
// same span saturated at the largest time.Duration.
type Estimate struct {
	State     EstimateState
	Days      int64
	Hours     int64
	Remaining time.Duration
}

// String renders the estimate the way the dashboard shows it.
func (e Estimate) String() string {
	switch e.State {
	case EstimateReached:
		return "Goal reached!"
	case EstimateProjected:
		switch {
		case e.Days > 0:
			return fmt.Sprintf("~%dd %dh remaining", e.Days, e.Hours)
		case e.Hours > 0:
			return fmt.Sprintf("~%dh remaining", e.Hours)
		default:
			return "< 1h remaining"
		}
	default:
		return "Unknown"
	}
}

// EstimateTimeRemaining extrapolates the average rate since start to project
// how long the rest of the target will take. Nothing raised yet, or no time
// elapsed, yields an unknown estimate.
func EstimateTimeRemaining(current, target decimal.Decimal, start, now time.Time) Estimate {
	if current.IsZero() {
		return Estimate{State: EstimateUnknown}
	}
	remaining := target.Sub(current)
	if !remaining.IsPositive() {
		return Estimate{State: EstimateReached}
	}
	elapsed := now.Sub(start)
	if elapsed <= 0 || !current.IsPositive() {
		return Estimate{State: EstimateUnknown}
	}
	// remaining / (current / elapsed), in milliseconds
	ms := remaining.Mul(decimal.NewFromInt(elapsed.Milliseconds())).Div(current).Floor()
	return projected(ms)
}

// projected splits a millisecond projection into days and hours with floor
// division, so very slow run rates never wrap around.
func projected(ms decimal.Decimal) Estimate {
	days := ms.Div(msPerDay).Floor()
	if days.GreaterThan(maxDays) {
		days = maxDays
	}
	hours := ms.Mod(msPerDay).Div(msPerHour).Floor()

	e := Estimate{State: EstimateProjected, Days: days.IntPart(), Hours: hours.IntPart()}
	if ms.GreaterThan(maxMillis) {
		e.Remaining = time.Duration(math.MaxInt64)
	} else {
		e.Remaining = time.Duration(ms.IntPart()) * time.Millisecond
	}
	return e
}

// FormatDuration renders elapsed time as "<d>d <h>h <m>m", dropping leading
// zero components. A negative span renders as "0m".
func FormatDuration(start, end time.Time) string {
	diff := end.Sub(start)
	if diff < 0 {
		diff = 0
	}
	days := int64(diff / day)
	hours := int64((diff % day) / time.Hour)
	minutes := int64((diff % time.Hour) / time.Minute)

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
