// Package client wraps the YouTube Data API v3 calls the analysis pipeline
// depends on: channel resolution, time-windowed video discovery, batched
// video detail fetching, and channel statistics.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/edupulse/channel-insights/model"
)

const (
	// maxPageSize is the Data API per-request item limit, shared by the
	// search page bound and the videos.list batch size.
	maxPageSize = 50

	// apiKeyPrefix is the structural prefix of every Data API key.
	apiKeyPrefix = "AIzaSy"

	defaultRequestTimeout = 30 * time.Second
)

var errNotConnected = errors.New("YouTube client not connected")

// ValidateAPIKey checks that a Data API credential is present and
// structurally plausible. It issues no network calls.
func ValidateAPIKey(apiKey string) error {
	if apiKey == "" {
		return &CredentialError{Reason: "API key is missing"}
	}
	if !strings.HasPrefix(apiKey, apiKeyPrefix) {
		return &CredentialError{Reason: fmt.Sprintf("API key must start with %q", apiKeyPrefix)}
	}
	return nil
}

// YouTubeDataClient implements Client against the official Data API service.
type YouTubeDataClient struct {
	service *ytapi.Service
	apiKey  string
	timeout time.Duration
}

// NewYouTubeDataClient creates a client for the given credential. The
// credential is validated structurally here, before any call is issued.
func NewYouTubeDataClient(apiKey string, timeout time.Duration) (*YouTubeDataClient, error) {
	if err := ValidateAPIKey(apiKey); err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &YouTubeDataClient{
		apiKey:  apiKey,
		timeout: timeout,
	}, nil
}

// Connect establishes the Data API service. Every request issued through it
// carries the configured HTTP timeout.
func (c *YouTubeDataClient) Connect(ctx context.Context) error {
	httpClient := &http.Client{
		Timeout: c.timeout,
	}

	service, err := ytapi.NewService(ctx, option.WithAPIKey(c.apiKey), option.WithHTTPClient(httpClient))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create YouTube service")
		return fmt.Errorf("failed to create YouTube service: %w", err)
	}

	c.service = service
	log.Info().Msg("Connected to YouTube API")
	return nil
}

// Disconnect releases the Data API service.
func (c *YouTubeDataClient) Disconnect(ctx context.Context) error {
	c.service = nil
	return nil
}

// FindVideos returns the ids of videos the channel published within the
// trailing window, newest first. Discovery is bounded to a single result
// page: a channel publishing more than one page's worth of videos inside the
// window yields a truncated most-recent-first set, which downstream
// consumers rely on.
func (c *YouTubeDataClient) FindVideos(ctx context.Context, channelID string, windowDays int) ([]string, error) {
	if c.service == nil {
		return nil, &DiscoveryError{ChannelID: channelID, Err: errNotConnected}
	}

	publishedAfter := time.Now().AddDate(0, 0, -windowDays).UTC()

	log.Info().
		Str("channel_id", channelID).
		Time("published_after", publishedAfter).
		Int("window_days", windowDays).
		Msg("Discovering channel videos")

	response, err := c.service.Search.List([]string{"id"}).
		ChannelId(channelID).
		Type("video").
		Order("date").
		PublishedAfter(publishedAfter.Format(time.RFC3339)).
		MaxResults(maxPageSize).
		Context(ctx).
		Do()
	if err != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("Video search failed")
		return nil, &DiscoveryError{ChannelID: channelID, Err: err}
	}

	videoIDs := make([]string, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			videoIDs = append(videoIDs, item.Id.VideoId)
		}
	}

	log.Info().Str("channel_id", channelID).Int("video_count", len(videoIDs)).Msg("Video discovery complete")
	return videoIDs, nil
}

// FetchDetails retrieves full metadata for the given video ids, issuing one
// videos.list call per chunk of at most 50 ids, sequentially, and
// concatenating the results in request order. A failed chunk aborts the
// whole fetch.
func (c *YouTubeDataClient) FetchDetails(ctx context.Context, videoIDs []string) ([]model.VideoRecord, error) {
	if len(videoIDs) == 0 {
		return []model.VideoRecord{}, nil
	}
	if c.service == nil {
		return nil, &DetailFetchError{Err: errNotConnected}
	}

	records := make([]model.VideoRecord, 0, len(videoIDs))
	for _, chunk := range chunkIDs(videoIDs, maxPageSize) {
		response, err := c.service.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
			Id(chunk...).
			Context(ctx).
			Do()
		if err != nil {
			log.Error().Err(err).Int("batch_size", len(chunk)).Msg("Video detail batch failed")
			return nil, &DetailFetchError{Err: err}
		}

		for _, item := range response.Items {
			records = append(records, videoRecordFromItem(item))
		}
	}

	log.Info().Int("requested", len(videoIDs)).Int("retrieved", len(records)).Msg("Video details fetched")
	return records, nil
}

// FetchChannelMetrics retrieves channel-level aggregate statistics. A channel
// id that yields zero results is reported as not-found, distinct from a
// transport failure.
func (c *YouTubeDataClient) FetchChannelMetrics(ctx context.Context, channelID string) (*ChannelInfo, error) {
	if c.service == nil {
		return nil, &MetricsFetchError{ChannelID: channelID, Err: errNotConnected}
	}

	response, err := c.service.Channels.List([]string{"snippet", "statistics"}).
		Id(channelID).
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("Channel metrics fetch failed")
		return nil, &MetricsFetchError{ChannelID: channelID, Err: err}
	}

	if len(response.Items) == 0 {
		log.Warn().Str("channel_id", channelID).Msg("Channel not found")
		return nil, &MetricsFetchError{ChannelID: channelID, NotFound: true}
	}

	item := response.Items[0]
	info := &ChannelInfo{ID: item.Id}

	if item.Snippet != nil {
		info.Title = item.Snippet.Title
		info.Metrics.Country = item.Snippet.Country
		info.Metrics.CustomURL = item.Snippet.CustomUrl
		if createdAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
			info.Metrics.ChannelCreatedDate = createdAt
		}
	}
	if item.Statistics != nil {
		info.Metrics.SubscriberCount = int64(item.Statistics.SubscriberCount)
		info.Metrics.TotalChannelViews = int64(item.Statistics.ViewCount)
		info.Metrics.VideoCount = int64(item.Statistics.VideoCount)
	}

	log.Info().
		Str("channel_id", info.ID).
		Str("title", info.Title).
		Int64("subscribers", info.Metrics.SubscriberCount).
		Msg("Channel metrics retrieved")

	return info, nil
}

// chunkIDs partitions ids into slices of at most size elements, preserving order.
func chunkIDs(ids []string, size int) [][]string {
	chunks := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}

// videoRecordFromItem maps one videos.list item to a VideoRecord, applying
// the documented defaults for absent optional fields.
func videoRecordFromItem(item *ytapi.Video) model.VideoRecord {
	record := model.VideoRecord{
		VideoID:   item.Id,
		Thumbnail: selectThumbnail(item),
		Duration:  "PT0S",
	}

	if item.Snippet != nil {
		record.Title = item.Snippet.Title
		record.Description = item.Snippet.Description
		if publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
			record.PublishedAt = publishedAt
		}
	}
	if record.Title == "" {
		record.Title = "Untitled Video"
	}

	if item.Statistics != nil {
		record.ViewCount = int64(item.Statistics.ViewCount)
		record.LikeCount = int64(item.Statistics.LikeCount)
		record.CommentCount = int64(item.Statistics.CommentCount)
	}

	if item.ContentDetails != nil && item.ContentDetails.Duration != "" {
		record.Duration = item.ContentDetails.Duration
	}

	return record
}

// selectThumbnail picks the best available thumbnail by descending quality,
// falling back to the deterministic default URL built from the video id.
func selectThumbnail(item *ytapi.Video) string {
	if item.Snippet != nil && item.Snippet.Thumbnails != nil {
		thumbs := item.Snippet.Thumbnails
		for _, thumb := range []*ytapi.Thumbnail{thumbs.Maxres, thumbs.High, thumbs.Medium, thumbs.Standard, thumbs.Default} {
			if thumb != nil && thumb.Url != "" {
				return thumb.Url
			}
		}
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", item.Id)
}
