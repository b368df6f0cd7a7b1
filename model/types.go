// Package model contains the core data types shared across the analysis pipeline.
package model

import (
	"fmt"
	"time"
)

// Time window bounds accepted by the pipeline. The UI offers 7/15/30 day
// presets but any window inside the range is valid.
const (
	MinTimeWindowDays = 1
	MaxTimeWindowDays = 30
)

// ValidateTimeWindow checks that a requested window is inside the supported range.
func ValidateTimeWindow(days int) error {
	if days < MinTimeWindowDays || days > MaxTimeWindowDays {
		return fmt.Errorf("invalid time window: must be between %d and %d days", MinTimeWindowDays, MaxTimeWindowDays)
	}
	return nil
}

// VideoRecord holds the metadata for a single video as returned by the
// videos.list endpoint. Records are never mutated after fetch.
type VideoRecord struct {
	VideoID      string    `json:"videoId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Thumbnail    string    `json:"thumbnail"`
	PublishedAt  time.Time `json:"publishedAt"`
	ViewCount    int64     `json:"viewCount"`
	LikeCount    int64     `json:"likeCount"`
	CommentCount int64     `json:"commentCount"`
	Duration     string    `json:"duration"`
}

// ChannelMetrics is a point-in-time snapshot of channel-level aggregate
// statistics from channels.list.
type ChannelMetrics struct {
	SubscriberCount    int64     `json:"subscriberCount"`
	TotalChannelViews  int64     `json:"totalChannelViews"`
	VideoCount         int64     `json:"videoCount"`
	ChannelCreatedDate time.Time `json:"channelCreatedDate"`
	Country            string    `json:"country,omitempty"`
	CustomURL          string    `json:"customUrl,omitempty"`
}

// GrowthTrend classifies whether per-video view performance is rising,
// falling, or flat across the analyzed window.
type GrowthTrend string

const (
	TrendUp     GrowthTrend = "up"
	TrendDown   GrowthTrend = "down"
	TrendStable GrowthTrend = "stable"
)

// ContentCategory is a title-keyword content bucket with its mean views.
type ContentCategory struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	AvgViews int64  `json:"avgViews"`
}

// ChannelAnalytics is derived purely from a video list; it carries no state
// of its own and is recomputed in full on every analysis run.
type ChannelAnalytics struct {
	TotalVideos       int               `json:"totalVideos"`
	TotalViews        int64             `json:"totalViews"`
	AverageViews      int64             `json:"averageViews"`
	TotalLikes        int64             `json:"totalLikes"`
	TotalComments     int64             `json:"totalComments"`
	EngagementRate    float64           `json:"engagementRate"`
	MostPopularVideo  *VideoRecord      `json:"mostPopularVideo"`
	LeastPopularVideo *VideoRecord      `json:"leastPopularVideo"`
	UploadFrequency   string            `json:"uploadFrequency"`
	AverageDuration   int64             `json:"averageDuration"`
	ViewsGrowthTrend  GrowthTrend       `json:"viewsGrowthTrend"`
	PerformanceScore  int               `json:"performanceScore"`
	TopPerformingDays []string          `json:"topPerformingDays"`
	ContentCategories []ContentCategory `json:"contentCategories"`
}

// ChannelAnalysisResult is the outcome for one channel URL. Analytics and
// ChannelMetrics are set exactly when Error is empty; a failed channel
// carries only the error message. The two shapes are mutually exclusive.
type ChannelAnalysisResult struct {
	ChannelID      string            `json:"channelId,omitempty"`
	ChannelName    string            `json:"channelName,omitempty"`
	ChannelURL     string            `json:"channelUrl"`
	Videos         []VideoRecord     `json:"videos,omitempty"`
	Analytics      *ChannelAnalytics `json:"analytics,omitempty"`
	ChannelMetrics *ChannelMetrics   `json:"channelMetrics,omitempty"`
	Error          string            `json:"error,omitempty"`
}

// Failed reports whether this result carries an error instead of analytics.
func (r ChannelAnalysisResult) Failed() bool {
	return r.Error != ""
}

// AnalysisStatus is the lifecycle state of an analysis response.
type AnalysisStatus string

const (
	StatusProcessing AnalysisStatus = "processing"
	StatusCompleted  AnalysisStatus = "completed"
	StatusError      AnalysisStatus = "error"
)

// AnalysisMetadata holds roll-up totals for one analysis run. Totals sum only
// over channels that produced analytics.
type AnalysisMetadata struct {
	TotalVideos            int       `json:"totalVideos"`
	TotalViews             int64     `json:"totalViews"`
	ProcessedAt            time.Time `json:"processedAt"`
	TimeWindow             int       `json:"timeWindow"`
	IndividualChannelCount int       `json:"individualChannelCount"`
}

// AnalysisResponse is the complete result of a batch analysis. It is built
// once per invocation and never mutated afterwards. The channel list always
// preserves the order of the requested channel URLs.
type AnalysisResponse struct {
	RequestID string                  `json:"requestId"`
	Status    AnalysisStatus          `json:"status"`
	Channels  []ChannelAnalysisResult `json:"channels"`
	Metadata  AnalysisMetadata        `json:"metadata"`
}
