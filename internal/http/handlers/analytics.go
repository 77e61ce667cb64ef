package handlers

import (
	"net/http"

	"goaltracker/internal/aggregate"
)

const defaultLeaderboardLimit = 10

// Leaderboard ranks contributors by total. ?limit=0 returns everyone.
func (a *App) Leaderboard(w http.ResponseWriter, r *http.Request) {
	snap, err := a.Store.Snapshot()
	if err != nil {
		a.fail(w, r, err)
		return
	}
	top := aggregate.TopContributors(snap.Donations, queryInt(r, "limit", defaultLeaderboardLimit))
	a.json(w, http.StatusOK, map[string]any{
		"items":    contributorViews(top, snap.Campaign.Currency),
		"currency": snap.Campaign.Currency,
	})
}

func (a *App) Hourly(w http.ResponseWriter, r *http.Request) {
	snap, err := a.Store.Snapshot()
	if err != nil {
		a.fail(w, r, err)
		return
	}
	loc := a.Settings.Location
	name := ""
	if loc != nil {
		name = loc.String()
	}
	a.json(w, http.StatusOK, map[string]any{
		"items":    hourViews(aggregate.HourlyHistogram(snap.Donations, loc)),
		"timezone": name,
	})
}

func (a *App) Summary(w http.ResponseWriter, r *http.Request) {
	snap, err := a.Store.Snapshot()
	if err != nil {
		a.fail(w, r, err)
		return
	}
	s := aggregate.Summarize(snap.Donations, a.Settings.CutPercent, a.now())
	a.json(w, http.StatusOK, newSummaryView(s, snap.Campaign.Currency))
}

// Dashboard returns every derived view of the active campaign in one payload.
func (a *App) Dashboard(w http.ResponseWriter, r *http.Request) {
	snap, err := a.Store.Snapshot()
	if err != nil {
		a.fail(w, r, err)
		return
	}
	d := aggregate.Build(snap.Campaign, snap.Donations, a.Settings, a.now())
	currency := snap.Campaign.Currency
	view := dashboardView{
		overviewView: newOverviewView(d, a.Settings.CutPercent),
		Summary:      newSummaryView(d.Summary, currency),
		Leaderboard:  contributorViews(d.Contributors, currency),
		Hourly:       hourViews(d.Hourly),
		Recent:       donationViews(d.Recent),
	}
	if a.Tracker != nil {
		if st := a.Tracker.Status(); st.Connected {
			sv := newStatusView(st)
			view.YouTube = &sv
		}
	}
	a.json(w, http.StatusOK, view)
}
