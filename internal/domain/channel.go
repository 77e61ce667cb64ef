package domain

import "time"

// ChannelInfo describes a streaming channel connected to the dashboard.
type ChannelInfo struct {
	ID              string
	Title           string
	Description     string
	ThumbnailURL    string
	SubscriberCount int64
	ViewCount       int64
	VideoCount      int64
	CustomURL       string
}

// LiveInfo is the live-stream status of a channel.
type LiveInfo struct {
	IsLive          bool
	LiveViewerCount int64
	StreamTitle     string
	StreamThumbnail string
	StreamID        string
	StartTime       *time.Time
}
