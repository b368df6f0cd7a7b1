package client

import (
	"context"
	"regexp"

	"github.com/rs/zerolog/log"
)

// Channel URL shapes accepted by the resolver, tried in order. The first
// structural match wins.
var channelURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/channel/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`youtube\.com/@([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`youtube\.com/c/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`youtube\.com/user/([a-zA-Z0-9_-]+)`),
}

// canonicalIDPattern is the shape of a stable channel id: the UC prefix
// followed by 22 id characters.
var canonicalIDPattern = regexp.MustCompile(`^UC[a-zA-Z0-9_-]{22}$`)

// IsCanonicalChannelID reports whether s already is a canonical channel id.
func IsCanonicalChannelID(s string) bool {
	return canonicalIDPattern.MatchString(s)
}

// extractChannelSegment pulls the channel-identifying segment out of a URL,
// or returns the input itself when it is already a canonical id. The second
// return reports whether any structural match was found.
func extractChannelSegment(input string) (string, bool) {
	for _, pattern := range channelURLPatterns {
		if m := pattern.FindStringSubmatch(input); m != nil {
			return m[1], true
		}
	}
	if IsCanonicalChannelID(input) {
		return input, true
	}
	return "", false
}

// ResolveChannelID turns a channel URL or handle into a canonical channel id.
// Inputs that already carry a canonical id resolve without any network call;
// everything else becomes a single channel-search query. Zero search results
// is a terminal ResolutionError for that channel, not retried.
func (c *YouTubeDataClient) ResolveChannelID(ctx context.Context, input string) (string, error) {
	segment, matched := extractChannelSegment(input)
	if matched && IsCanonicalChannelID(segment) {
		return segment, nil
	}

	query := input
	if matched {
		query = segment
	}

	log.Debug().Str("input", input).Str("query", query).Msg("Resolving channel id via search")
	return c.searchChannelID(ctx, input, query)
}

// searchChannelID looks up a channel by free-text query, taking the first
// result. Search results carry the channel id in a different field than
// channels.list does; both locations are consulted.
func (c *YouTubeDataClient) searchChannelID(ctx context.Context, input, query string) (string, error) {
	if c.service == nil {
		return "", &ResolutionError{Input: input, Err: errNotConnected}
	}

	response, err := c.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("channel").
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("Channel search failed")
		return "", &ResolutionError{Input: input, Err: err}
	}

	if len(response.Items) == 0 {
		log.Warn().Str("query", query).Msg("Channel search returned no results")
		return "", &ResolutionError{Input: input}
	}

	item := response.Items[0]
	channelID := ""
	if item.Id != nil {
		channelID = item.Id.ChannelId
	}
	if channelID == "" && item.Snippet != nil {
		channelID = item.Snippet.ChannelId
	}
	if channelID == "" {
		return "", &ResolutionError{Input: input}
	}

	log.Info().Str("input", input).Str("channel_id", channelID).Msg("Resolved channel id via search")
	return channelID, nil
}
