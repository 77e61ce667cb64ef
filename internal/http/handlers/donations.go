package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"goaltracker/internal/aggregate"
	"goaltracker/internal/domain"
)

type donationRequest struct {
	Contributor *string          `json:"contributor"`
	Amount      *decimal.Decimal `json:"amount"`
	Message     *string          `json:"message"`
}

// DonationsList returns the active campaign's donations newest first.
func (a *App) DonationsList(w http.ResponseWriter, r *http.Request) {
	snap, err := a.Store.Snapshot()
	if err != nil {
		a.fail(w, r, err)
		return
	}
	items := aggregate.Recent(snap.Donations, queryInt(r, "limit", 0))
	a.json(w, http.StatusOK, map[string]any{
		"items": donationViews(items),
		"total": len(snap.Donations),
	})
}

func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.Contributor == nil || req.Amount == nil {
		a.error(w, http.StatusBadRequest, "bad_request", "contributor and amount are required")
		return
	}
	message := ""
	if req.Message != nil {
		message = *req.Message
	}
	d, err := a.Store.AddDonation(*req.Contributor, *req.Amount, message)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, newDonationView(d))
}

func (a *App) DonationsUpdate(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	if !a.decode(w, r, &req) {
		return
	}
	d, err := a.Store.EditDonation(chi.URLParam(r, "id"), domain.DonationPatch{
		Contributor: req.Contributor,
		Amount:      req.Amount,
		Message:     req.Message,
	})
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, newDonationView(d))
}

func (a *App) DonationsDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.Store.DeleteDonation(chi.URLParam(r, "id")); err != nil {
		a.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) DonationsClear(w http.ResponseWriter, r *http.Request) {
	if err := a.Store.ClearDonations(); err != nil {
		a.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
