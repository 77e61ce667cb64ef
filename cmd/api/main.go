package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"goaltracker/internal/aggregate"
	"goaltracker/internal/http/handlers"
	httpapi "goaltracker/internal/http/httpapi"
	"goaltracker/internal/importer"
	"goaltracker/internal/infra"
	"goaltracker/internal/infra/geoip"
	"goaltracker/internal/session"
	"goaltracker/internal/youtube"
)

const refreshTimeout = 10 * time.Second

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	store := session.NewStore(session.Options{
		CutPercent: cfg.CutPercent,
		Logger:     logger.With().Str("component", "session").Logger(),
	})
	if cfg.CampaignsFile != "" {
		n, err := store.LoadSeed(cfg.CampaignsFile, cfg.DefaultCurrency)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.CampaignsFile).Msg("failed to load campaigns")
		}
		logger.Info().Int("campaigns", n).Str("path", cfg.CampaignsFile).Msg("campaigns loaded")
	}
	if cfg.SeedDemo && len(store.Campaigns()) == 0 {
		if _, err := store.SeedDemo(); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed demo campaign")
		}
		logger.Info().Msg("demo campaign seeded")
	}

	var resolver geoip.CountryResolver
	if db, err := geoip.Open(cfg.GeoIPDBPath); err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	} else if db != nil {
		defer db.Close()
		resolver = db
	}

	ytLogger := logger.With().Str("component", "youtube").Logger()
	tracker := youtube.NewTracker(youtube.NewMockClient(cfg.YouTubeMockSeed, cfg.YouTubeMockDelay, nil), nil, ytLogger)
	scheduler := youtube.NewScheduler(tracker, ytLogger, refreshTimeout)
	if err := scheduler.Start(cfg.YouTubeRefreshSchedule); err != nil {
		logger.Fatal().Err(err).Str("schedule", cfg.YouTubeRefreshSchedule).Msg("invalid youtube refresh schedule")
	}

	app := handlers.NewApp(store, tracker,
		aggregate.Settings{CutPercent: cfg.CutPercent, Location: cfg.Location},
		importer.Options{DefaultCurrency: cfg.DefaultCurrency, MaxBytes: cfg.MaxImportBytes, Location: cfg.Location},
		logger)

	router := httpapi.NewRouter(app, httpapi.Options{
		Logger:          logger,
		AllowedOrigins:  cfg.CORSAllowedOrigins,
		ImportsPerMin:   cfg.RateLimitPerMin,
		DefaultCurrency: cfg.DefaultCurrency,
		Resolver:        resolver,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on %s", server.Addr())
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	select {
	case <-scheduler.Stop().Done():
	case <-shutdownCtx.Done():
	}
	logger.Info().Msg("server stopped")
}
