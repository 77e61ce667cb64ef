package youtube

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"goaltracker/internal/domain"
)

// Status is the last known state of the connected channel.
type Status struct {
	Connected   bool
	Channel     domain.ChannelInfo
	Live        domain.LiveInfo
	RefreshedAt time.Time
}

// Tracker remembers which channel is connected and caches its latest details.
type Tracker struct {
	provider domain.ChannelProvider
	now      domain.Clock
	logger   zerolog.Logger

	mu     sync.RWMutex
	status Status
}

// NewTracker builds a tracker over a channel provider.
func NewTracker(provider domain.ChannelProvider, now domain.Clock, logger zerolog.Logger) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{provider: provider, now: now, logger: logger}
}

// Connect fetches channel and live details and makes handle the connected channel.
func (t *Tracker) Connect(ctx context.Context, handle string) (Status, error) {
	st, err := t.fetch(ctx, handle)
	if err != nil {
		return Status{}, err
	}
	t.mu.Lock()
	t.status = st
	t.mu.Unlock()
	return st, nil
}

// Refresh re-fetches the connected channel.
func (t *Tracker) Refresh(ctx context.Context) (Status, error) {
	t.mu.RLock()
	current := t.status
	t.mu.RUnlock()
	if !current.Connected {
		return Status{}, domain.ErrChannelNotAttached
	}
	handle := current.Channel.CustomURL
	if handle == "" {
		handle = current.Channel.ID
	}
	st, err := t.fetch(ctx, handle)
	if err != nil {
		return Status{}, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	// a Disconnect during the fetch wins
	if !t.status.Connected {
		return Status{}, domain.ErrChannelNotAttached
	}
	t.status = st
	return st, nil
}

// Disconnect forgets the connected channel.
func (t *Tracker) Disconnect() {
	t.mu.Lock()
	t.status = Status{}
	t.mu.Unlock()
}

// Status returns the cached state.
func (t *Tracker) Status() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status
}

func (t *Tracker) fetch(ctx context.Context, handle string) (Status, error) {
	channel, err := t.provider.ChannelInfo(ctx, handle)
	if err != nil {
		return Status{}, fmt.Errorf("youtube: channel info: %w", err)
	}
	live, err := t.provider.LiveInfo(ctx, handle)
	if err != nil {
		return Status{}, fmt.Errorf("youtube: live info: %w", err)
	}
	return Status{Connected: true, Channel: channel, Live: live, RefreshedAt: t.now()}, nil
}
