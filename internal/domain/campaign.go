package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campaign is a donation goal. CurrentAmount is derived from the donation
// collection and cannot be set directly.
type Campaign struct {
	ID            string
	Title         string
	Description   string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Currency      string
	StartDate     time.Time
	EndDate       *time.Time
	IsActive      bool
	ChannelID     string
	StreamID      string
	CreatedAt     time.Time
	LastUpdated   time.Time
}

// CampaignInput holds the caller-provided fields for a new campaign.
type CampaignInput struct {
	Title        string
	Description  string
	TargetAmount decimal.Decimal
	Currency     string
	StartDate    time.Time
	EndDate      *time.Time
}

// CampaignPatch carries partial campaign updates.
type CampaignPatch struct {
	Title        *string
	Description  *string
	TargetAmount *decimal.Decimal
	Currency     *string
	StartDate    *time.Time
	EndDate      *time.Time
	ClearEndDate bool
	ChannelID    *string
	StreamID     *string
}
