package domain

import (
	"context"
	"time"
)

// Clock yields the current wall-clock time.
type Clock func() time.Time

// IDGenerator yields identifiers unique within a session.
type IDGenerator func() string

// ChannelProvider fetches channel and live-stream details.
type ChannelProvider interface {
	ChannelInfo(ctx context.Context, handle string) (ChannelInfo, error)
	LiveInfo(ctx context.Context, handle string) (LiveInfo, error)
}
