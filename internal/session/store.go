// Package session keeps the in-memory campaign list, the active campaign and
// that campaign's donation collection.
package session

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"goaltracker/internal/domain"
	"goaltracker/internal/money"
)

// Options configures a Store.
type Options struct {
	CutPercent decimal.Decimal
	Now        domain.Clock
	NewID      domain.IDGenerator
	Logger     zerolog.Logger
}

// Store owns campaigns and the active campaign's donations. The donation
// slice is never mutated in place: every change builds a new slice, so a
// Snapshot stays valid after later writes.
type Store struct {
	mu        sync.RWMutex
	campaigns []domain.Campaign
	activeID  string
	donations []domain.Donation

	cut    decimal.Decimal
	now    domain.Clock
	newID  domain.IDGenerator
	logger zerolog.Logger
}

// Snapshot is an immutable view of the active campaign and its donations.
type Snapshot struct {
	Campaign  domain.Campaign
	Donations []domain.Donation
}

// NewStore builds an empty store.
func NewStore(opts Options) *Store {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	return &Store{
		cut:    opts.CutPercent,
		now:    opts.Now,
		newID:  opts.NewID,
		logger: opts.Logger,
	}
}

// CutPercent returns the platform revenue share applied to totals.
func (s *Store) CutPercent() decimal.Decimal {
	return s.cut
}

// Campaigns lists every campaign in creation order.
func (s *Store) Campaigns() []domain.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.campaigns)
}

// Campaign returns one campaign by id.
func (s *Store) Campaign(id string) (domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return domain.Campaign{}, fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}
	return s.campaigns[i], nil
}

// ActiveCampaign returns the campaign donations are currently recorded against.
func (s *Store) ActiveCampaign() (domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(s.activeID)
	if i < 0 {
		return domain.Campaign{}, domain.ErrNoActiveCampaign
	}
	return s.campaigns[i], nil
}

// Snapshot returns the active campaign together with its donations in insertion order.
func (s *Store) Snapshot() (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(s.activeID)
	if i < 0 {
		return Snapshot{}, domain.ErrNoActiveCampaign
	}
	return Snapshot{Campaign: s.campaigns[i], Donations: s.donations}, nil
}

// CreateCampaign validates and stores a new campaign, makes it active and
// starts it with an empty donation collection.
func (s *Store) CreateCampaign(in domain.CampaignInput) (domain.Campaign, error) {
	if err := validateCampaign(in.Title, in.TargetAmount); err != nil {
		return domain.Campaign{}, err
	}
	code, err := money.NormalizeCode(in.Currency)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("%w: %v", domain.ErrInvalidCampaign, err)
	}
	now := s.now()
	start := in.StartDate
	if start.IsZero() {
		start = now
	}
	c := domain.Campaign{
		ID:            s.newID(),
		Title:         strings.TrimSpace(in.Title),
		Description:   strings.TrimSpace(in.Description),
		TargetAmount:  in.TargetAmount,
		CurrentAmount: decimal.Zero,
		Currency:      code,
		StartDate:     start,
		EndDate:       in.EndDate,
		CreatedAt:     now,
		LastUpdated:   now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaigns = append(slices.Clone(s.campaigns), c)
	s.activate(c.ID)
	return s.campaigns[len(s.campaigns)-1], nil
}

// UpdateCampaign applies a partial update. The current amount is derived and
// cannot be changed here.
func (s *Store) UpdateCampaign(id string, patch domain.CampaignPatch) (domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return domain.Campaign{}, fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}
	c := s.campaigns[i]
	if patch.Title != nil {
		c.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		c.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.TargetAmount != nil {
		c.TargetAmount = *patch.TargetAmount
	}
	if patch.Currency != nil {
		code, err := money.NormalizeCode(*patch.Currency)
		if err != nil {
			return domain.Campaign{}, fmt.Errorf("%w: %v", domain.ErrInvalidCampaign, err)
		}
		c.Currency = code
	}
	if patch.StartDate != nil {
		c.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		end := *patch.EndDate
		c.EndDate = &end
	}
	if patch.ClearEndDate {
		c.EndDate = nil
	}
	if patch.ChannelID != nil {
		c.ChannelID = strings.TrimSpace(*patch.ChannelID)
	}
	if patch.StreamID != nil {
		c.StreamID = strings.TrimSpace(*patch.StreamID)
	}
	if err := validateCampaign(c.Title, c.TargetAmount); err != nil {
		return domain.Campaign{}, err
	}
	c.LastUpdated = s.now()

	campaigns := slices.Clone(s.campaigns)
	campaigns[i] = c
	s.campaigns = campaigns
	return c, nil
}

// SelectCampaign switches the active campaign. Donations belong to a single
// campaign session, so the collection is discarded.
func (s *Store) SelectCampaign(id string) (domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(id) < 0 {
		return domain.Campaign{}, fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}
	s.activate(id)
	return s.campaigns[s.indexOf(id)], nil
}

// DeleteCampaign removes a campaign. Deleting the active one activates the
// first remaining campaign, if any, and discards the donation collection.
func (s *Store) DeleteCampaign(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}
	s.campaigns = slices.Delete(slices.Clone(s.campaigns), i, i+1)
	if id != s.activeID {
		return nil
	}
	if len(s.campaigns) == 0 {
		s.activeID = ""
		s.donations = nil
		s.logger.Info().Str("campaign_id", id).Msg("session: active campaign deleted, none remaining")
		return nil
	}
	s.activate(s.campaigns[0].ID)
	return nil
}

// activate marks id active, clears donations and recomputes totals. Callers hold mu.
func (s *Store) activate(id string) {
	campaigns := slices.Clone(s.campaigns)
	for i := range campaigns {
		campaigns[i].IsActive = campaigns[i].ID == id
	}
	s.campaigns = campaigns
	s.activeID = id
	s.replaceDonations(nil)
	s.logger.Info().Str("campaign_id", id).Msg("session: campaign activated, donations reset")
}

func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.campaigns, func(c domain.Campaign) bool { return c.ID == id })
}

func validateCampaign(title string, target decimal.Decimal) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidCampaign)
	}
	if !target.IsPositive() {
		return fmt.Errorf("%w: target amount must be positive", domain.ErrInvalidCampaign)
	}
	return nil
}
