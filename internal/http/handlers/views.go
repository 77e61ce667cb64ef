package handlers

import (
	"time"

	"github.com/shopspring/decimal"

	"goaltracker/internal/aggregate"
	"goaltracker/internal/domain"
	"goaltracker/internal/money"
	"goaltracker/internal/youtube"
)

type campaignView struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	TargetAmount    decimal.Decimal `json:"target_amount"`
	CurrentAmount   decimal.Decimal `json:"current_amount"`
	Currency        string          `json:"currency"`
	FormattedTarget string          `json:"formatted_target"`
	FormattedAmount string          `json:"formatted_current"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         *time.Time      `json:"end_date,omitempty"`
	IsActive        bool            `json:"is_active"`
	ChannelID       string          `json:"channel_id,omitempty"`
	StreamID        string          `json:"stream_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	LastUpdated     time.Time       `json:"last_updated"`
}

func newCampaignView(c domain.Campaign) campaignView {
	return campaignView{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		TargetAmount:    c.TargetAmount,
		CurrentAmount:   c.CurrentAmount,
		Currency:        c.Currency,
		FormattedTarget: money.FormatCurrency(c.TargetAmount, c.Currency),
		FormattedAmount: money.FormatCurrency(c.CurrentAmount, c.Currency),
		StartDate:       c.StartDate,
		EndDate:         c.EndDate,
		IsActive:        c.IsActive,
		ChannelID:       c.ChannelID,
		StreamID:        c.StreamID,
		CreatedAt:       c.CreatedAt,
		LastUpdated:     c.LastUpdated,
	}
}

type donationView struct {
	ID          string          `json:"id"`
	Contributor string          `json:"contributor"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Formatted   string          `json:"formatted_amount"`
	Message     string          `json:"message,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
	Source      domain.Source   `json:"source"`
}

func newDonationView(d domain.Donation) donationView {
	return donationView{
		ID:          d.ID,
		Contributor: d.Contributor,
		Amount:      d.Amount,
		Currency:    d.Currency,
		Formatted:   money.FormatCurrency(d.Amount, d.Currency),
		Message:     d.Message,
		Timestamp:   d.Timestamp,
		Source:      d.Source,
	}
}

func donationViews(records []domain.Donation) []donationView {
	out := make([]donationView, 0, len(records))
	for _, d := range records {
		out = append(out, newDonationView(d))
	}
	return out
}

type contributorView struct {
	Rank          int             `json:"rank"`
	Name          string          `json:"name"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Formatted     string          `json:"formatted_total"`
	DonationCount int             `json:"donation_count"`
	AverageAmount decimal.Decimal `json:"average_amount"`
	LastDonation  time.Time       `json:"last_donation"`
}

func contributorViews(contributors []domain.Contributor, currency string) []contributorView {
	out := make([]contributorView, 0, len(contributors))
	for i, c := range contributors {
		out = append(out, contributorView{
			Rank:          i + 1,
			Name:          c.Name,
			TotalAmount:   c.TotalAmount,
			Formatted:     money.FormatCurrency(c.TotalAmount, currency),
			DonationCount: c.DonationCount,
			AverageAmount: c.AverageAmount.Round(2),
			LastDonation:  c.LastDonation,
		})
	}
	return out
}

type hourView struct {
	Hour   int             `json:"hour"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

func hourViews(buckets []aggregate.HourBucket) []hourView {
	out := make([]hourView, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, hourView{Hour: b.Hour, Label: b.Label, Amount: b.Amount, Count: b.Count})
	}
	return out
}

type summaryView struct {
	TotalBeforeCut   decimal.Decimal `json:"total_before_cut"`
	TotalAfterCut    decimal.Decimal `json:"total_after_cut"`
	Count            int             `json:"donation_count"`
	ContributorCount int             `json:"contributor_count"`
	Average          decimal.Decimal `json:"average"`
	Largest          decimal.Decimal `json:"largest"`
	LastHourAmount   decimal.Decimal `json:"last_hour_amount"`
	LastHourCount    int             `json:"last_hour_count"`
	FormattedTotal   string          `json:"formatted_total"`
	FormattedAverage string          `json:"formatted_average"`
}

func newSummaryView(s aggregate.Summary, currency string) summaryView {
	return summaryView{
		TotalBeforeCut:   s.TotalBeforeCut,
		TotalAfterCut:    s.TotalAfterCut,
		Count:            s.Count,
		ContributorCount: s.ContributorCount,
		Average:          s.Average.Round(2),
		Largest:          s.Largest,
		LastHourAmount:   s.LastHourAmount,
		LastHourCount:    s.LastHourCount,
		FormattedTotal:   money.FormatCurrency(s.TotalAfterCut, currency),
		FormattedAverage: money.FormatCurrency(s.Average, currency),
	}
}

type overviewView struct {
	Campaign           campaignView    `json:"campaign"`
	Progress           float64         `json:"progress"`
	Remaining          decimal.Decimal `json:"remaining"`
	FormattedRemaining string          `json:"formatted_remaining"`
	CutPercent         decimal.Decimal `json:"cut_percent"`
	Duration           string          `json:"duration"`
	Estimate           string          `json:"estimate"`
	EstimateState      string          `json:"estimate_state"`
	DonationCount      int             `json:"donation_count"`
	ContributorCount   int             `json:"contributor_count"`
}

func newOverviewView(d aggregate.Dashboard, cut decimal.Decimal) overviewView {
	return overviewView{
		Campaign:           newCampaignView(d.Campaign),
		Progress:           d.Progress,
		Remaining:          d.Remaining,
		FormattedRemaining: money.FormatCurrency(d.Remaining, d.Campaign.Currency),
		CutPercent:         cut,
		Duration:           d.Duration,
		Estimate:           d.Estimate.String(),
		EstimateState:      string(d.Estimate.State),
		DonationCount:      d.Summary.Count,
		ContributorCount:   d.Summary.ContributorCount,
	}
}

type dashboardView struct {
	overviewView
	Summary     summaryView       `json:"summary"`
	Leaderboard []contributorView `json:"leaderboard"`
	Hourly      []hourView        `json:"hourly"`
	Recent      []donationView    `json:"recent"`
	YouTube     *statusView       `json:"youtube,omitempty"`
}

type statusView struct {
	Connected   bool         `json:"connected"`
	Channel     *channelView `json:"channel,omitempty"`
	Live        *liveView    `json:"live,omitempty"`
	RefreshedAt *time.Time   `json:"refreshed_at,omitempty"`
}

type channelView struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	ThumbnailURL    string `json:"thumbnail_url"`
	CustomURL       string `json:"custom_url"`
	SubscriberCount int64  `json:"subscriber_count"`
	Subscribers     string `json:"subscribers"`
	ViewCount       int64  `json:"view_count"`
	VideoCount      int64  `json:"video_count"`
}

type liveView struct {
	IsLive          bool       `json:"is_live"`
	Viewers         int64      `json:"viewers"`
	StreamTitle     string     `json:"stream_title,omitempty"`
	StreamThumbnail string     `json:"stream_thumbnail,omitempty"`
	StreamID        string     `json:"stream_id,omitempty"`
	StartTime       *time.Time `json:"start_time,omitempty"`
}

func newStatusView(s youtube.Status) statusView {
	if !s.Connected {
		return statusView{}
	}
	refreshed := s.RefreshedAt
	return statusView{
		Connected: true,
		Channel: &channelView{
			ID:              s.Channel.ID,
			Title:           s.Channel.Title,
			Description:     s.Channel.Description,
			ThumbnailURL:    s.Channel.ThumbnailURL,
			CustomURL:       s.Channel.CustomURL,
			SubscriberCount: s.Channel.SubscriberCount,
			Subscribers:     money.FormatNumber(s.Channel.SubscriberCount),
			ViewCount:       s.Channel.ViewCount,
			VideoCount:      s.Channel.VideoCount,
		},
		Live: &liveView{
			IsLive:          s.Live.IsLive,
			Viewers:         s.Live.LiveViewerCount,
			StreamTitle:     s.Live.StreamTitle,
			StreamThumbnail: s.Live.StreamThumbnail,
			StreamID:        s.Live.StreamID,
			StartTime:       s.Live.StartTime,
		},
		RefreshedAt: &refreshed,
	}
}
