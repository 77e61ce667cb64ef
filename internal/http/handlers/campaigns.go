package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"goaltracker/internal/aggregate"
	"goaltracker/internal/domain"
	"goaltracker/internal/middleware"
)

type campaignRequest struct {
	Title        *string          `json:"title"`
	Description  *string          `json:"description"`
	TargetAmount *decimal.Decimal `json:"target_amount"`
	Currency     *string          `json:"currency"`
	StartDate    *time.Time       `json:"start_date"`
	EndDate      *time.Time       `json:"end_date"`
	ClearEndDate bool             `json:"clear_end_date"`
	ChannelID    *string          `json:"channel_id"`
	StreamID     *string          `json:"stream_id"`
}

func (a *App) CampaignsList(w http.ResponseWriter, r *http.Request) {
	campaigns := a.Store.Campaigns()
	items := make([]campaignView, 0, len(campaigns))
	for _, c := range campaigns {
		items = append(items, newCampaignView(c))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// CampaignsCreate creates a campaign and makes it active. Without an explicit
// currency the caller's regional currency is used.
func (a *App) CampaignsCreate(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if !a.decode(w, r, &req) {
		return
	}
	in := domain.CampaignInput{
		Currency: middleware.CurrencyFromContext(r.Context(), a.Import.DefaultCurrency),
	}
	if req.Title != nil {
		in.Title = *req.Title
	}
	if req.Description != nil {
		in.Description = *req.Description
	}
	if req.TargetAmount != nil {
		in.TargetAmount = *req.TargetAmount
	}
	if req.Currency != nil {
		in.Currency = *req.Currency
	}
	if req.StartDate != nil {
		in.StartDate = *req.StartDate
	}
	in.EndDate = req.EndDate

	c, err := a.Store.CreateCampaign(in)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, newCampaignView(c))
}

func (a *App) CampaignsGet(w http.ResponseWriter, r *http.Request) {
	c, err := a.Store.Campaign(chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, newCampaignView(c))
}

func (a *App) CampaignsUpdate(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if !a.decode(w, r, &req) {
		return
	}
	c, err := a.Store.UpdateCampaign(chi.URLParam(r, "id"), domain.CampaignPatch{
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		Currency:     req.Currency,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		ClearEndDate: req.ClearEndDate,
		ChannelID:    req.ChannelID,
		StreamID:     req.StreamID,
	})
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, newCampaignView(c))
}

func (a *App) CampaignsDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.Store.DeleteCampaign(chi.URLParam(r, "id")); err != nil {
		a.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CampaignsActivate switches the active campaign. The previous donation
// collection is discarded.
func (a *App) CampaignsActivate(w http.ResponseWriter, r *http.Request) {
	c, err := a.Store.SelectCampaign(chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, newCampaignView(c))
}

// ActiveOverview reports progress of the active campaign.
func (a *App) ActiveOverview(w http.ResponseWriter, r *http.Request) {
	snap, err := a.Store.Snapshot()
	if err != nil {
		a.fail(w, r, err)
		return
	}
	d := aggregate.Build(snap.Campaign, snap.Donations, a.Settings, a.now())
	a.json(w, http.StatusOK, newOverviewView(d, a.Settings.CutPercent))
}
