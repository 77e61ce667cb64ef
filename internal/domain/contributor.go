package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contributor is the derived rollup of all donations sharing a contributor name.
type Contributor struct {
	Name          string
	TotalAmount   decimal.Decimal
	DonationCount int
	LastDonation  time.Time
	AverageAmount decimal.Decimal
}
