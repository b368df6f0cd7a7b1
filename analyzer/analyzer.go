// Package analyzer orchestrates the per-channel analysis pipeline and the
// batch run across channels.
package analyzer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/edupulse/channel-insights/analytics"
	"github.com/edupulse/channel-insights/cache"
	"github.com/edupulse/channel-insights/client"
	"github.com/edupulse/channel-insights/model"
)

const defaultConcurrency = 1

// Analyzer runs channel analyses against a YouTube client, with optional
// read-through caching at every pipeline stage.
type Analyzer struct {
	client      client.Client
	store       cache.Store
	apiKey      string
	concurrency int
	now         func() time.Time
}

// New creates an Analyzer. A nil store disables caching and a non-positive
// concurrency falls back to sequential processing.
func New(c client.Client, store cache.Store, apiKey string, concurrency int) *Analyzer {
	if store == nil {
		store = cache.Noop{}
	}
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	return &Analyzer{
		client:      c,
		store:       store,
		apiKey:      apiKey,
		concurrency: concurrency,
		now:         time.Now,
	}
}

// AnalyzeChannel runs the full pipeline for one channel URL. It is total: any
// stage failure is folded into the result's Error field instead of being
// returned, so one bad channel never disturbs its batch.
//
// The channel metrics fetch and the video discovery are independent once the
// id is resolved, so they run concurrently.
func (a *Analyzer) AnalyzeChannel(ctx context.Context, channelURL string, windowDays int) model.ChannelAnalysisResult {
	result := model.ChannelAnalysisResult{ChannelURL: channelURL}

	channelKey := cache.ChannelKey(channelURL)

	var info *client.ChannelInfo
	var cachedInfo client.ChannelInfo
	if hit, err := a.store.Get(ctx, channelKey, &cachedInfo); err != nil {
		log.Warn().Err(err).Str("key", channelKey).Msg("Channel cache read failed")
	} else if hit {
		log.Debug().Str("channel_url", channelURL).Str("channel_id", cachedInfo.ID).Msg("Channel cache hit")
		info = &cachedInfo
	}

	channelID := ""
	if info != nil {
		channelID = info.ID
	} else {
		resolved, err := a.client.ResolveChannelID(ctx, channelURL)
		if err != nil {
			log.Warn().Err(err).Str("channel_url", channelURL).Msg("Channel resolution failed")
			result.Error = err.Error()
			return result
		}
		channelID = resolved
	}
	result.ChannelID = channelID

	var videoIDs []string
	fromCache := info != nil

	g, gctx := errgroup.WithContext(ctx)
	if !fromCache {
		g.Go(func() error {
			fetched, err := a.client.FetchChannelMetrics(gctx, channelID)
			if err != nil {
				return err
			}
			info = fetched
			return nil
		})
	}
	g.Go(func() error {
		ids, err := a.discoverVideos(gctx, channelID, windowDays)
		if err != nil {
			return err
		}
		videoIDs = ids
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Warn().Err(err).Str("channel_id", channelID).Msg("Channel analysis failed")
		result.Error = err.Error()
		return result
	}

	if !fromCache {
		if err := a.store.Set(ctx, channelKey, info, cache.ChannelTTL); err != nil {
			log.Warn().Err(err).Str("key", channelKey).Msg("Channel cache write failed")
		}
	}

	videos, err := a.videoDetails(ctx, videoIDs)
	if err != nil {
		log.Warn().Err(err).Str("channel_id", channelID).Msg("Video detail fetch failed")
		result.Error = err.Error()
		return result
	}

	stats := analytics.Compute(videos)
	metrics := info.Metrics

	result.ChannelName = info.Title
	result.Videos = videos
	result.Analytics = &stats
	result.ChannelMetrics = &metrics
	return result
}

// discoverVideos returns the video ids for the channel's trailing window,
// consulting the daily videos cache first.
func (a *Analyzer) discoverVideos(ctx context.Context, channelID string, windowDays int) ([]string, error) {
	key := cache.VideosKey(channelID, windowDays, a.now())

	var cached []string
	if hit, err := a.store.Get(ctx, key, &cached); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Videos cache read failed")
	} else if hit {
		return cached, nil
	}

	videoIDs, err := a.client.FindVideos(ctx, channelID, windowDays)
	if err != nil {
		return nil, err
	}

	if err := a.store.Set(ctx, key, videoIDs, cache.VideosTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Videos cache write failed")
	}
	return videoIDs, nil
}

// videoDetails fetches full records for the ids, consulting the details
// cache first. An empty id list short-circuits to an empty slice.
func (a *Analyzer) videoDetails(ctx context.Context, videoIDs []string) ([]model.VideoRecord, error) {
	if len(videoIDs) == 0 {
		return []model.VideoRecord{}, nil
	}

	key := cache.VideoDetailsKey(videoIDs)

	var cached []model.VideoRecord
	if hit, err := a.store.Get(ctx, key, &cached); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Video details cache read failed")
	} else if hit {
		return cached, nil
	}

	videos, err := a.client.FetchDetails(ctx, videoIDs)
	if err != nil {
		return nil, err
	}

	if err := a.store.Set(ctx, key, videos, cache.VideoDetailsTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Video details cache write failed")
	}
	return videos, nil
}

// AnalyzeAll runs the pipeline for every channel URL with bounded
// concurrency. The credential is checked before any work starts; a bad key
// fails the whole batch. Results keep the order of the requested channels,
// and metadata totals cover only the channels that produced analytics.
func (a *Analyzer) AnalyzeAll(ctx context.Context, channels []string, windowDays int) (*model.AnalysisResponse, error) {
	if err := model.ValidateTimeWindow(windowDays); err != nil {
		return nil, err
	}
	if err := client.ValidateAPIKey(a.apiKey); err != nil {
		return nil, err
	}

	analysisKey := cache.AnalysisKey(channels, windowDays, a.now())
	var cached model.AnalysisResponse
	if hit, err := a.store.Get(ctx, analysisKey, &cached); err != nil {
		log.Warn().Err(err).Str("key", analysisKey).Msg("Analysis cache read failed")
	} else if hit {
		log.Info().Int("channel_count", len(channels)).Msg("Serving cached analysis")
		return &cached, nil
	}

	log.Info().
		Int("channel_count", len(channels)).
		Int("window_days", windowDays).
		Int("concurrency", a.concurrency).
		Msg("Starting batch analysis")

	results := make([]model.ChannelAnalysisResult, len(channels))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, channelURL := range channels {
		g.Go(func() error {
			results[i] = a.AnalyzeChannel(gctx, channelURL, windowDays)
			return nil
		})
	}
	g.Wait()

	response := &model.AnalysisResponse{
		RequestID: uuid.NewString(),
		Status:    model.StatusCompleted,
		Channels:  results,
		Metadata:  buildMetadata(results, windowDays, a.now()),
	}

	if err := a.store.Set(ctx, analysisKey, response, cache.AnalysisTTL); err != nil {
		log.Warn().Err(err).Str("key", analysisKey).Msg("Analysis cache write failed")
	}

	log.Info().
		Str("request_id", response.RequestID).
		Int("channel_count", len(results)).
		Int("total_videos", response.Metadata.TotalVideos).
		Msg("Batch analysis complete")

	return response, nil
}

// buildMetadata sums roll-up totals over the error-free channel results.
func buildMetadata(results []model.ChannelAnalysisResult, windowDays int, processedAt time.Time) model.AnalysisMetadata {
	metadata := model.AnalysisMetadata{
		ProcessedAt:            processedAt,
		TimeWindow:             windowDays,
		IndividualChannelCount: len(results),
	}

	for _, r := range results {
		if r.Failed() || r.Analytics == nil {
			continue
		}
		metadata.TotalVideos += r.Analytics.TotalVideos
		metadata.TotalViews += r.Analytics.TotalViews
	}
	return metadata
}
