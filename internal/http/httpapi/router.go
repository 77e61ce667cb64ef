package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"goaltracker/internal/http/handlers"
	"goaltracker/internal/infra/geoip"
	"goaltracker/internal/middleware"
)

// Options configures the cross-cutting middleware around the API.
type Options struct {
	Logger          zerolog.Logger
	AllowedOrigins  []string
	ImportsPerMin   int
	DefaultCurrency string
	Resolver        geoip.CountryResolver
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(
		chimw.RequestID,
		chimw.RealIP,
		middleware.Logger(opts.Logger),
		chimw.Recoverer,
		middleware.CORS(opts.AllowedOrigins),
		middleware.Region(opts.DefaultCurrency, opts.Resolver),
	)

	// Health
	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/campaigns", func(r chi.Router) {
		r.Get("/", app.CampaignsList)
		r.Post("/", app.CampaignsCreate)
		r.Get("/{id}", app.CampaignsGet)
		r.Patch("/{id}", app.CampaignsUpdate)
		r.Delete("/{id}", app.CampaignsDelete)
		r.Post("/{id}/activate", app.CampaignsActivate)
	})
	r.Get("/v1/campaign", app.ActiveOverview)

	r.Route("/v1/donations", func(r chi.Router) {
		r.Get("/", app.DonationsList)
		r.Post("/", app.DonationsCreate)
		r.Delete("/", app.DonationsClear)
		r.Patch("/{id}", app.DonationsUpdate)
		r.Delete("/{id}", app.DonationsDelete)
	})

	r.With(middleware.RateLimit(opts.ImportsPerMin, time.Minute)).Post("/v1/imports", app.ImportsCreate)

	r.Route("/v1/exports", func(r chi.Router) {
		r.Get("/donations.csv", app.ExportDonations)
		r.Get("/contributors.csv", app.ExportContributors)
		r.Get("/sample.csv", app.ExportSample)
		r.Get("/archive.zip", app.ExportArchive)
	})

	r.Route("/v1/analytics", func(r chi.Router) {
		r.Get("/leaderboard", app.Leaderboard)
		r.Get("/hourly", app.Hourly)
		r.Get("/summary", app.Summary)
		r.Get("/dashboard", app.Dashboard)
	})

	r.Route("/v1/youtube", func(r chi.Router) {
		r.Get("/", app.YouTubeStatus)
		r.Post("/connect", app.YouTubeConnect)
		r.Post("/refresh", app.YouTubeRefresh)
		r.Delete("/", app.YouTubeDisconnect)
	})

	return r
}
