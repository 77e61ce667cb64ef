package youtube

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"goaltracker/internal/domain"
)

// Scheduler refreshes the connected channel on a cron schedule.
type Scheduler struct {
	cron    *cron.Cron
	tracker *Tracker
	logger  zerolog.Logger
	timeout time.Duration
}

// NewScheduler builds a scheduler; timeout bounds each refresh.
func NewScheduler(tracker *Tracker, logger zerolog.Logger, timeout time.Duration) *Scheduler {
	cronLogger := cron.PrintfLogger(&logger)
	return &Scheduler{
		cron:    cron.New(cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger))),
		tracker: tracker,
		logger:  logger,
		timeout: timeout,
	}
}

// Start registers the refresh job and starts the cron loop. An empty schedule disables it.
func (s *Scheduler) Start(schedule string) error {
	if schedule == "" {
		s.logger.Info().Msg("youtube: auto refresh disabled")
		return nil
	}
	if _, err := s.cron.AddFunc(schedule, s.refresh); err != nil {
		return err
	}
	s.logger.Info().Str("schedule", schedule).Msg("youtube: auto refresh scheduled")
	s.cron.Start()
	return nil
}

// Stop halts the scheduler; the returned context is done once running jobs finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	st, err := s.tracker.Refresh(ctx)
	switch {
	case errors.Is(err, domain.ErrChannelNotAttached):
		return
	case err != nil:
		s.logger.Warn().Err(err).Msg("youtube: auto refresh failed")
	default:
		s.logger.Debug().Str("channel", st.Channel.ID).Bool("live", st.Live.IsLive).Msg("youtube: refreshed")
	}
}
