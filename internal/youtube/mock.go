// Package youtube provides a demo stand-in for the streaming platform: it
// generates channel and live-stream details without calling any external API.
package youtube

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"goaltracker/internal/domain"
)

const placeholderThumb = "/api/placeholder/120/120"

var knownChannels = map[string]domain.ChannelInfo{
	"@markiplier": {
		ID:              "UC7_YxT-KID8kRbqZo7MyscQ",
		Title:           "Markiplier",
		Description:     "Hello everybody, my name is Markiplier and welcome to my channel!",
		ThumbnailURL:    placeholderThumb,
		SubscriberCount: 35_800_000,
		ViewCount:       20_100_000_000,
		VideoCount:      5_800,
		CustomURL:       "@markiplier",
	},
	"@mrbeast": {
		ID:              "UCX6OQ3DkcsbYNE6H8uQQuVA",
		Title:           "MrBeast",
		Description:     "I want to make the world a better place before I die.",
		ThumbnailURL:    placeholderThumb,
		SubscriberCount: 123_000_000,
		ViewCount:       28_500_000_000,
		VideoCount:      741,
		CustomURL:       "@mrbeast",
	},
}

// MockClient fabricates plausible channel data. It satisfies domain.ChannelProvider.
type MockClient struct {
	mu    sync.Mutex
	rng   *rand.Rand
	delay time.Duration
	now   domain.Clock
}

// NewMockClient builds a mock whose random choices come from seed. delay
// simulates network latency on every call.
func NewMockClient(seed uint64, delay time.Duration, now domain.Clock) *MockClient {
	if now == nil {
		now = time.Now
	}
	return &MockClient{
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		delay: delay,
		now:   now,
	}
}

// ChannelInfo returns details for a channel handle or id.
func (c *MockClient) ChannelInfo(ctx context.Context, handle string) (domain.ChannelInfo, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return domain.ChannelInfo{}, fmt.Errorf("%w: channel id or handle is required", domain.ErrProviderFailure)
	}
	if err := c.wait(ctx); err != nil {
		return domain.ChannelInfo{}, err
	}
	if info, ok := knownChannels[strings.ToLower(handle)]; ok {
		return info, nil
	}

	custom := handle
	if !strings.HasPrefix(custom, "@") {
		custom = "@" + custom
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.ChannelInfo{
		ID:              handle,
		Title:           "Channel " + handle,
		Description:     fmt.Sprintf("This is a sample channel for %s.", handle),
		ThumbnailURL:    placeholderThumb,
		SubscriberCount: c.rng.Int64N(1_000_000) + 10_000,
		ViewCount:       c.rng.Int64N(100_000_000) + 1_000_000,
		VideoCount:      c.rng.Int64N(1_000) + 50,
		CustomURL:       custom,
	}, nil
}

// LiveInfo reports whether the channel is live. Roughly seven calls in ten
// report a live stream that started within the last two hours.
func (c *MockClient) LiveInfo(ctx context.Context, handle string) (domain.LiveInfo, error) {
	if strings.TrimSpace(handle) == "" {
		return domain.LiveInfo{}, fmt.Errorf("%w: channel id or handle is required", domain.ErrProviderFailure)
	}
	if err := c.wait(ctx); err != nil {
		return domain.LiveInfo{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rng.Float64() <= 0.3 {
		return domain.LiveInfo{}, nil
	}
	now := c.now()
	started := now.Add(-time.Duration(c.rng.Int64N(int64(2 * time.Hour))))
	return domain.LiveInfo{
		IsLive:          true,
		LiveViewerCount: c.rng.Int64N(10_000) + 500,
		StreamTitle:     "Live Stream - Help Us Reach Our Goal! 🎯",
		StreamThumbnail: "/api/placeholder/480/270",
		StreamID:        fmt.Sprintf("stream-%d", now.UnixMilli()),
		StartTime:       &started,
	}, nil
}

func (c *MockClient) wait(ctx context.Context) error {
	if c.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(c.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
