package session

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"goaltracker/internal/aggregate"
	"goaltracker/internal/domain"
)

// AddDonation records a manually entered donation in the active campaign's
// currency. A blank name or non-positive amount is refused and nothing is stored.
func (s *Store) AddDonation(contributor string, amount decimal.Decimal, message string) (domain.Donation, error) {
	contributor = strings.TrimSpace(contributor)
	if contributor == "" || !amount.IsPositive() {
		return domain.Donation{}, domain.ErrInvalidDonation
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(s.activeID)
	if i < 0 {
		return domain.Donation{}, domain.ErrNoActiveCampaign
	}
	d := domain.Donation{
		ID:          s.newID(),
		Contributor: contributor,
		Amount:      amount,
		Currency:    s.campaigns[i].Currency,
		Message:     strings.TrimSpace(message),
		Timestamp:   s.now(),
		Source:      domain.SourceManual,
	}
	s.replaceDonations(append(slices.Clone(s.donations), d))
	return d, nil
}

// AppendDonations adds imported records after the existing ones. Records that
// would break the positive-amount or unique-id invariants are skipped and counted.
func (s *Store) AppendDonations(records []domain.Donation) (added int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(s.activeID) < 0 {
		return 0, domain.ErrNoActiveCampaign
	}
	seen := make(map[string]struct{}, len(s.donations)+len(records))
	for _, d := range s.donations {
		seen[d.ID] = struct{}{}
	}
	next := slices.Clone(s.donations)
	for _, d := range records {
		if !d.Amount.IsPositive() || strings.TrimSpace(d.Contributor) == "" {
			continue
		}
		if _, dup := seen[d.ID]; dup || d.ID == "" {
			d.ID = s.newID()
		}
		seen[d.ID] = struct{}{}
		next = append(next, d)
		added++
	}
	s.replaceDonations(next)
	return added, nil
}

// EditDonation updates a donation's contributor, amount or message.
func (s *Store) EditDonation(id string, patch domain.DonationPatch) (domain.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(s.activeID) < 0 {
		return domain.Donation{}, domain.ErrNoActiveCampaign
	}
	i := slices.IndexFunc(s.donations, func(d domain.Donation) bool { return d.ID == id })
	if i < 0 {
		return domain.Donation{}, fmt.Errorf("donation %s: %w", id, domain.ErrNotFound)
	}
	d := s.donations[i]
	if patch.Contributor != nil {
		d.Contributor = strings.TrimSpace(*patch.Contributor)
	}
	if patch.Amount != nil {
		d.Amount = *patch.Amount
	}
	if patch.Message != nil {
		d.Message = strings.TrimSpace(*patch.Message)
	}
	if d.Contributor == "" || !d.Amount.IsPositive() {
		return domain.Donation{}, domain.ErrInvalidDonation
	}
	next := slices.Clone(s.donations)
	next[i] = d
	s.replaceDonations(next)
	return d, nil
}

// DeleteDonation removes one donation by id.
func (s *Store) DeleteDonation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.donations, func(d domain.Donation) bool { return d.ID == id })
	if i < 0 {
		return fmt.Errorf("donation %s: %w", id, domain.ErrNotFound)
	}
	s.replaceDonations(slices.Delete(slices.Clone(s.donations), i, i+1))
	return nil
}

// ClearDonations discards the whole collection of the active campaign.
func (s *Store) ClearDonations() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(s.activeID) < 0 {
		return domain.ErrNoActiveCampaign
	}
	s.replaceDonations(nil)
	s.logger.Info().Str("campaign_id", s.activeID).Msg("session: donations cleared")
	return nil
}

// replaceDonations swaps in a new collection and recomputes the active
// campaign's current amount. Callers hold mu.
func (s *Store) replaceDonations(next []domain.Donation) {
	s.donations = next
	i := s.indexOf(s.activeID)
	if i < 0 {
		return
	}
	campaigns := slices.Clone(s.campaigns)
	campaigns[i].CurrentAmount = aggregate.TotalAfterCut(next, s.cut)
	campaigns[i].LastUpdated = s.now()
	s.campaigns = campaigns
}
