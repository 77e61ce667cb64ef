package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Source distinguishes manually entered or imported donations from
// platform-native events.
type Source string

const (
	SourceManual  Source = "manual"
	SourceYouTube Source = "youtube"
)

// ParseSource maps a free-form platform tag onto a Source, defaulting to manual.
func ParseSource(raw string) Source {
	if Source(raw) == SourceYouTube {
		return SourceYouTube
	}
	return SourceManual
}

// Donation represents a single supporter contribution within the active
// campaign's session. Amount is always positive.
type Donation struct {
	ID          string
	Contributor string
	Amount      decimal.Decimal
	Currency    string
	Message     string
	Timestamp   time.Time
	Source      Source
}

// DonationPatch carries the editable fields of a donation. Nil fields are left untouched.
type DonationPatch struct {
	Contributor *string
	Amount      *decimal.Decimal
	Message     *string
}
