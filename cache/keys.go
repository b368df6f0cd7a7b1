package cache

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ChannelKey caches resolved channel info per raw input URL.
func ChannelKey(channelURL string) string {
	return "channel:" + url.QueryEscape(channelURL)
}

// VideosKey caches the discovered video-id list for one channel and window.
// Embedding the current date gives the entry daily self-invalidation on top
// of its TTL.
func VideosKey(channelID string, windowDays int, day time.Time) string {
	return fmt.Sprintf("videos:%s:%ddays:%s", channelID, windowDays, day.UTC().Format(dateLayout))
}

// VideoDetailsKey caches fetched video details for an id set. The ids are
// sorted before encoding so any ordering of the same set maps to one key.
func VideoDetailsKey(videoIDs []string) string {
	sorted := make([]string, len(videoIDs))
	copy(sorted, videoIDs)
	sort.Strings(sorted)
	return "videodetails:" + base64.StdEncoding.EncodeToString([]byte(strings.Join(sorted, ",")))
}

// AnalysisKey caches a complete batch analysis response. The signature covers
// the sorted channel set, the window, and the current date.
func AnalysisKey(channels []string, windowDays int, day time.Time) string {
	sorted := make([]string, len(channels))
	copy(sorted, channels)
	sort.Strings(sorted)

	signature := fmt.Sprintf("%s:%d:%s", strings.Join(sorted, "|"), windowDays, day.UTC().Format(dateLayout))
	return "analysis:" + base64.StdEncoding.EncodeToString([]byte(signature))
}
