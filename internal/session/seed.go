package session

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"goaltracker/internal/domain"
)

// seedFile mirrors the YAML layout of CAMPAIGNS_FILE.
type seedFile struct {
	Campaigns []seedEntry `yaml:"campaigns"`
}

type seedEntry struct {
	Title       string     `yaml:"title"`
	Description string     `yaml:"description,omitempty"`
	Target      string     `yaml:"target"`
	Currency    string     `yaml:"currency,omitempty"`
	StartDate   *time.Time `yaml:"start_date,omitempty"`
	EndDate     *time.Time `yaml:"end_date,omitempty"`
	Active      bool       `yaml:"active,omitempty"`
}

// LoadSeed creates the campaigns listed in a YAML file. The entry marked
// active (or the first one) ends up as the active campaign.
func (s *Store) LoadSeed(path string, defaultCurrency string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("seed: read %s: %w", path, err)
	}
	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return 0, fmt.Errorf("seed: parse %s: %w", path, err)
	}

	activeID := ""
	for i, entry := range file.Campaigns {
		target, err := decimal.NewFromString(entry.Target)
		if err != nil {
			return i, fmt.Errorf("seed: campaign %d target %q: %w", i+1, entry.Target, domain.ErrInvalidCampaign)
		}
		in := domain.CampaignInput{
			Title:        entry.Title,
			Description:  entry.Description,
			TargetAmount: target,
			Currency:     entry.Currency,
			EndDate:      entry.EndDate,
		}
		if in.Currency == "" {
			in.Currency = defaultCurrency
		}
		if entry.StartDate != nil {
			in.StartDate = *entry.StartDate
		}
		c, err := s.CreateCampaign(in)
		if err != nil {
			return i, fmt.Errorf("seed: campaign %d: %w", i+1, err)
		}
		if entry.Active || i == 0 {
			activeID = c.ID
		}
	}
	if activeID != "" {
		if _, err := s.SelectCampaign(activeID); err != nil {
			return len(file.Campaigns), err
		}
	}
	return len(file.Campaigns), nil
}

// SeedDemo installs the default fundraiser with a few example donations.
func (s *Store) SeedDemo() (domain.Campaign, error) {
	_, err := s.CreateCampaign(domain.CampaignInput{
		Title:        "Live Stream Fundraiser",
		Description:  "Every donation brings us closer to making a difference!",
		TargetAmount: decimal.NewFromInt(1000),
		Currency:     "USD",
	})
	if err != nil {
		return domain.Campaign{}, err
	}
	now := s.now()
	demo := []domain.Donation{
		{Contributor: "Alice Johnson", Amount: decimal.NewFromInt(25), Currency: "USD", Message: "Great cause! Keep it up! 💖", Timestamp: now.Add(-time.Hour), Source: domain.SourceManual},
		{Contributor: "Bob Smith", Amount: decimal.NewFromInt(50), Currency: "USD", Message: "Happy to support this initiative!", Timestamp: now.Add(-2 * time.Hour), Source: domain.SourceManual},
		{Contributor: "Charlie Davis", Amount: decimal.NewFromInt(15), Currency: "USD", Message: "Every bit helps! 🎯", Timestamp: now.Add(-30 * time.Minute), Source: domain.SourceManual},
	}
	if _, err := s.AppendDonations(demo); err != nil {
		return domain.Campaign{}, err
	}
	return s.ActiveCampaign()
}

// WriteSeed writes every campaign in the CAMPAIGNS_FILE layout, so an exported
// file can be loaded back with LoadSeed.
func (s *Store) WriteSeed(w io.Writer) error {
	var file seedFile
	for _, c := range s.Campaigns() {
		start := c.StartDate
		file.Campaigns = append(file.Campaigns, seedEntry{
			Title:       c.Title,
			Description: c.Description,
			Target:      c.TargetAmount.String(),
			Currency:    c.Currency,
			StartDate:   &start,
			EndDate:     c.EndDate,
			Active:      c.IsActive,
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("seed: encode: %w", err)
	}
	return enc.Close()
}
