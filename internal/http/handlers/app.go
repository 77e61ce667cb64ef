package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"goaltracker/internal/aggregate"
	"goaltracker/internal/domain"
	"goaltracker/internal/importer"
	"goaltracker/internal/session"
	"goaltracker/internal/youtube"
)

// App carries the dependencies shared by every HTTP handler.
type App struct {
	Store    *session.Store
	Tracker  *youtube.Tracker
	Settings aggregate.Settings
	Import   importer.Options
	Now      domain.Clock
	Logger   zerolog.Logger
}

func NewApp(store *session.Store, tracker *youtube.Tracker, settings aggregate.Settings, importOpts importer.Options, logger zerolog.Logger) *App {
	return &App{
		Store:    store,
		Tracker:  tracker,
		Settings: settings,
		Import:   importOpts,
		Now:      time.Now,
		Logger:   logger,
	}
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	var body errorBody
	body.Error.Code = code
	body.Error.Message = message
	a.json(w, status, body)
}

// fail maps domain errors onto HTTP responses.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrNoActiveCampaign):
		a.error(w, http.StatusConflict, "no_active_campaign", err.Error())
	case errors.Is(err, domain.ErrInvalidCampaign), errors.Is(err, domain.ErrInvalidDonation):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, domain.ErrUnsupportedFormat):
		a.error(w, http.StatusUnsupportedMediaType, "unsupported_format", err.Error())
	case errors.Is(err, domain.ErrChannelNotAttached):
		a.error(w, http.StatusConflict, "channel_not_connected", err.Error())
	case errors.Is(err, domain.ErrProviderFailure):
		a.error(w, http.StatusBadGateway, "provider_failure", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		a.error(w, http.StatusGatewayTimeout, "timeout", "upstream timed out")
	default:
		a.Logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		a.error(w, http.StatusInternalServerError, "internal", "internal error")
	}
}

func (a *App) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return false
	}
	return true
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}
