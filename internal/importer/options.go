// Package importer turns CSV files and free-text donation logs into donation
// records, and writes records back out as CSV.
package importer

import (
	"time"

	"github.com/google/uuid"

	"goaltracker/internal/domain"
)

const (
	defaultCurrency = "USD"
	// DefaultMaxBytes caps how much of an uploaded file is read.
	DefaultMaxBytes int64 = 5 << 20
)

// Options configures parsing. Zero values fall back to USD, time.Now,
// uuid.NewString, DefaultMaxBytes and time.Local. Location applies to
// timestamps that carry no UTC offset.
type Options struct {
	DefaultCurrency string
	Now             domain.Clock
	NewID           domain.IDGenerator
	MaxBytes        int64
	Location        *time.Location
}

func (o Options) withDefaults() Options {
	if o.DefaultCurrency == "" {
		o.DefaultCurrency = defaultCurrency
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	if o.MaxBytes <= 0 {
		o.MaxBytes = DefaultMaxBytes
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	return o
}
