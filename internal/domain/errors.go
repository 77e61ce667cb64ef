package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrNoActiveCampaign   = errors.New("no active campaign")
	ErrInvalidCampaign    = errors.New("invalid campaign")
	ErrInvalidDonation    = errors.New("invalid donation")
	ErrUnsupportedFormat  = errors.New("unsupported file type")
	ErrProviderFailure    = errors.New("provider failure")
	ErrChannelNotAttached = errors.New("no channel connected")
)
