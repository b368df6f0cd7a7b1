// Package analytics derives channel performance statistics from a fetched
// video list. Everything here is pure computation: no I/O, no clock reads
// beyond the publish timestamps already on the records.
package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/edupulse/channel-insights/model"
)

// Growth trend thresholds: the second-half view mean must strictly exceed
// 1.2x the first-half mean to classify as up, and fall strictly below 0.8x
// to classify as down. Exact multiples are stable.
const (
	trendUpFactor   = 1.2
	trendDownFactor = 0.8
)

// categoryRule classifies a video by case-insensitive title keywords. Rules
// are evaluated in order and the first match wins.
type categoryRule struct {
	name     string
	keywords []string
}

var categoryRules = []categoryRule{
	{name: "Tutorial", keywords: []string{"tutorial", "how to"}},
	{name: "Review", keywords: []string{"review", "unboxing"}},
	{name: "Entertainment", keywords: []string{"funny", "comedy"}},
	{name: "Educational", keywords: []string{"learn", "course"}},
}

const fallbackCategory = "Other"

// Compute derives the full analytics object for a channel's video list. It
// is total: zero videos produce the fixed empty analytics value, never an
// error.
func Compute(videos []model.VideoRecord) model.ChannelAnalytics {
	if len(videos) == 0 {
		return emptyAnalytics()
	}

	totalVideos := len(videos)
	var totalViews, totalLikes, totalComments, totalDuration int64
	for _, v := range videos {
		totalViews += v.ViewCount
		totalLikes += v.LikeCount
		totalComments += v.CommentCount
		totalDuration += ParseDurationSeconds(v.Duration)
	}

	averageViews := int64(math.Round(float64(totalViews) / float64(totalVideos)))
	averageDuration := int64(math.Round(float64(totalDuration) / float64(totalVideos)))

	engagementRate := 0.0
	if totalViews > 0 {
		engagementRate = float64(totalLikes+totalComments) / float64(totalViews) * 100
	}

	trend := growthTrend(videos)

	return model.ChannelAnalytics{
		TotalVideos:       totalVideos,
		TotalViews:        totalViews,
		AverageViews:      averageViews,
		TotalLikes:        totalLikes,
		TotalComments:     totalComments,
		EngagementRate:    math.Round(engagementRate*100) / 100,
		MostPopularVideo:  mostPopular(videos),
		LeastPopularVideo: leastPopular(videos),
		UploadFrequency:   uploadFrequency(totalVideos),
		AverageDuration:   averageDuration,
		ViewsGrowthTrend:  trend,
		PerformanceScore:  performanceScore(averageViews, engagementRate, totalVideos, trend),
		TopPerformingDays: topPerformingDays(videos),
		ContentCategories: contentCategories(videos),
	}
}

// emptyAnalytics is the documented result for a channel with no uploads in
// the window.
func emptyAnalytics() model.ChannelAnalytics {
	return model.ChannelAnalytics{
		UploadFrequency:   "No uploads in time period",
		ViewsGrowthTrend:  model.TrendStable,
		TopPerformingDays: []string{},
		ContentCategories: []model.ContentCategory{},
	}
}

func uploadFrequency(totalVideos int) string {
	return fmt.Sprintf("%d videos in period", totalVideos)
}

// mostPopular returns the video with the highest view count; ties resolve to
// the first-encountered video in input order.
func mostPopular(videos []model.VideoRecord) *model.VideoRecord {
	best := videos[0]
	for _, v := range videos[1:] {
		if v.ViewCount > best.ViewCount {
			best = v
		}
	}
	return &best
}

// leastPopular mirrors mostPopular with the lowest view count.
func leastPopular(videos []model.VideoRecord) *model.VideoRecord {
	worst := videos[0]
	for _, v := range videos[1:] {
		if v.ViewCount < worst.ViewCount {
			worst = v
		}
	}
	return &worst
}

// growthTrend splits the videos into chronological halves by publish time
// and compares mean views. Empty halves contribute a zero mean with a
// denominator clamped to 1.
func growthTrend(videos []model.VideoRecord) model.GrowthTrend {
	sorted := make([]model.VideoRecord, len(videos))
	copy(sorted, videos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt.Before(sorted[j].PublishedAt)
	})

	mid := len(sorted) / 2
	firstMean := meanViews(sorted[:mid])
	secondMean := meanViews(sorted[mid:])

	switch {
	case secondMean > firstMean*trendUpFactor:
		return model.TrendUp
	case secondMean < firstMean*trendDownFactor:
		return model.TrendDown
	default:
		return model.TrendStable
	}
}

func meanViews(videos []model.VideoRecord) float64 {
	var total int64
	for _, v := range videos {
		total += v.ViewCount
	}
	count := len(videos)
	if count < 1 {
		count = 1
	}
	return float64(total) / float64(count)
}

// performanceScore combines view volume, engagement, upload consistency, and
// growth trend into a bounded composite. The component caps sum to exactly
// 100, so no separate clamp is needed.
func performanceScore(averageViews int64, engagementRate float64, totalVideos int, trend model.GrowthTrend) int {
	viewScore := math.Min(float64(averageViews)/10000*30, 30)
	engagementScore := math.Min(engagementRate*20, 25)
	consistencyScore := math.Min(float64(totalVideos)/10*20, 20)

	trendScore := 5.0
	switch trend {
	case model.TrendUp:
		trendScore = 25
	case model.TrendStable:
		trendScore = 15
	}

	return int(math.Round(viewScore + engagementScore + consistencyScore + trendScore))
}

// topPerformingDays buckets total views by publish weekday and returns up to
// three weekday names by descending total. Ties resolve in weekday order,
// Sunday first, so the output is deterministic.
func topPerformingDays(videos []model.VideoRecord) []string {
	totals := make(map[time.Weekday]int64)
	for _, v := range videos {
		totals[v.PublishedAt.Weekday()] += v.ViewCount
	}

	days := make([]time.Weekday, 0, len(totals))
	for day := time.Sunday; day <= time.Saturday; day++ {
		if _, ok := totals[day]; ok {
			days = append(days, day)
		}
	}
	sort.SliceStable(days, func(i, j int) bool {
		return totals[days[i]] > totals[days[j]]
	})

	if len(days) > 3 {
		days = days[:3]
	}
	names := make([]string, len(days))
	for i, day := range days {
		names[i] = day.String()
	}
	return names
}

// contentCategories classifies every video into exactly one keyword bucket
// and reports count plus mean views for each non-empty bucket, in rule
// order with Other last.
func contentCategories(videos []model.VideoRecord) []model.ContentCategory {
	counts := make(map[string]int, len(categoryRules)+1)
	views := make(map[string]int64, len(categoryRules)+1)

	for _, v := range videos {
		name := classifyTitle(v.Title)
		counts[name]++
		views[name] += v.ViewCount
	}

	ordered := make([]string, 0, len(categoryRules)+1)
	for _, rule := range categoryRules {
		ordered = append(ordered, rule.name)
	}
	ordered = append(ordered, fallbackCategory)

	categories := make([]model.ContentCategory, 0, len(ordered))
	for _, name := range ordered {
		count := counts[name]
		if count == 0 {
			continue
		}
		categories = append(categories, model.ContentCategory{
			Category: name,
			Count:    count,
			AvgViews: int64(math.Round(float64(views[name]) / float64(count))),
		})
	}
	return categories
}

func classifyTitle(title string) string {
	lowered := strings.ToLower(title)
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.name
			}
		}
	}
	return fallbackCategory
}
