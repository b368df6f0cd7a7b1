package analytics

import (
	"regexp"
	"strconv"
)

// isoDurationPattern matches the ISO-8601-style durations the Data API
// returns. Any subset of the hour/minute/second components may be present.
var isoDurationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseDurationSeconds converts a video duration string like "PT1H2M30S"
// into seconds. Unparseable input yields 0.
func ParseDurationSeconds(duration string) int64 {
	m := isoDurationPattern.FindStringSubmatch(duration)
	if m == nil {
		return 0
	}

	hours, _ := strconv.ParseInt(zeroIfEmpty(m[1]), 10, 64)
	minutes, _ := strconv.ParseInt(zeroIfEmpty(m[2]), 10, 64)
	seconds, _ := strconv.ParseInt(zeroIfEmpty(m[3]), 10, 64)

	return hours*3600 + minutes*60 + seconds
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
