package client

import (
	"context"

	"github.com/edupulse/channel-insights/model"
)

// ChannelInfo couples a resolved channel identity with its metrics snapshot.
type ChannelInfo struct {
	ID      string
	Title   string
	Metrics model.ChannelMetrics
}

// Client defines the YouTube Data API operations the analysis pipeline
// depends on. The concrete implementation is YouTubeDataClient; tests supply
// mocks.
type Client interface {
	// ResolveChannelID turns a channel URL or handle into a canonical
	// channel id, using a channel search only when the input does not
	// already carry one.
	ResolveChannelID(ctx context.Context, channelURL string) (string, error)

	// FindVideos returns the ids of videos published by the channel within
	// the trailing window, most recent first, bounded to one result page.
	FindVideos(ctx context.Context, channelID string, windowDays int) ([]string, error)

	// FetchDetails retrieves full metadata for the given video ids in
	// batches of at most 50.
	FetchDetails(ctx context.Context, videoIDs []string) ([]model.VideoRecord, error)

	// FetchChannelMetrics retrieves channel-level aggregate statistics.
	FetchChannelMetrics(ctx context.Context, channelID string) (*ChannelInfo, error)
}
