package handlers

import (
	"errors"
	"net/http"
	"strings"

	"goaltracker/internal/domain"
	"goaltracker/internal/youtube"
)

type connectRequest struct {
	Handle string `json:"handle"`
}

// YouTubeConnect attaches a channel by id or @handle. When a campaign is
// active its channel and stream ids are updated to match.
func (a *App) YouTubeConnect(w http.ResponseWriter, r *http.Request) {
	var req connectRequest
	if !a.decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Handle) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "handle is required")
		return
	}
	st, err := a.Tracker.Connect(r.Context(), strings.TrimSpace(req.Handle))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.linkCampaign(st)
	a.json(w, http.StatusOK, newStatusView(st))
}

func (a *App) YouTubeRefresh(w http.ResponseWriter, r *http.Request) {
	st, err := a.Tracker.Refresh(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.linkCampaign(st)
	a.json(w, http.StatusOK, newStatusView(st))
}

func (a *App) YouTubeStatus(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, newStatusView(a.Tracker.Status()))
}

func (a *App) YouTubeDisconnect(w http.ResponseWriter, r *http.Request) {
	a.Tracker.Disconnect()
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) linkCampaign(st youtube.Status) {
	active, err := a.Store.ActiveCampaign()
	if errors.Is(err, domain.ErrNoActiveCampaign) {
		return
	}
	if err != nil {
		a.Logger.Warn().Err(err).Msg("load active campaign")
		return
	}
	channelID := st.Channel.ID
	streamID := st.Live.StreamID
	if active.ChannelID == channelID && active.StreamID == streamID {
		return
	}
	if _, err := a.Store.UpdateCampaign(active.ID, domain.CampaignPatch{ChannelID: &channelID, StreamID: &streamID}); err != nil {
		a.Logger.Warn().Err(err).Str("campaign_id", active.ID).Msg("link channel to campaign")
	}
}
