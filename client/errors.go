package client

import "fmt"

// CredentialError indicates the API credential is missing or structurally
// malformed. It is checked once up front and aborts an entire batch, since no
// channel can succeed without a usable key.
type CredentialError struct {
	Reason string
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("invalid YouTube API credential: %s", e.Reason)
}

// ResolutionError indicates no channel identifier could be derived from the
// supplied URL or handle, including the case where the fallback channel
// search returned zero results. It is terminal for that channel.
type ResolutionError struct {
	Input string
	Err   error
}

func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not resolve channel id from %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("could not resolve channel id from %q", e.Input)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// DiscoveryError indicates the time-windowed video search failed.
type DiscoveryError struct {
	ChannelID string
	Err       error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("video discovery failed for channel %s: %v", e.ChannelID, e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// DetailFetchError indicates a batched videos.list call failed. The whole
// detail fetch aborts; partial batches are not salvaged.
type DetailFetchError struct {
	Err error
}

func (e *DetailFetchError) Error() string {
	return fmt.Sprintf("video detail fetch failed: %v", e.Err)
}

func (e *DetailFetchError) Unwrap() error { return e.Err }

// MetricsFetchError indicates channel-level statistics could not be
// retrieved, either because the channel does not exist or because of a
// transport failure.
type MetricsFetchError struct {
	ChannelID string
	NotFound  bool
	Err       error
}

func (e *MetricsFetchError) Error() string {
	if e.NotFound {
		return fmt.Sprintf("channel not found: %s", e.ChannelID)
	}
	return fmt.Sprintf("channel metrics fetch failed for %s: %v", e.ChannelID, e.Err)
}

func (e *MetricsFetchError) Unwrap() error { return e.Err }
