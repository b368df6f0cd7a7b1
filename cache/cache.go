// Package cache provides optional read-through caching for the analysis
// pipeline. Every layer of the pipeline works without it; a miss or a store
// failure only costs an extra API call.
package cache

import (
	"context"
	"time"
)

// Time-to-live per cached data class. Channel info is the most stable,
// video lists churn the fastest.
const (
	ChannelTTL      = 24 * time.Hour
	VideosTTL       = 2 * time.Hour
	VideoDetailsTTL = 6 * time.Hour
	AnalysisTTL     = time.Hour
)

// Store is a JSON-valued key-value cache with per-entry expiry.
type Store interface {
	// Get unmarshals the cached value for key into out and reports whether
	// the key was present.
	Get(ctx context.Context, key string, out any) (bool, error)

	// Set stores value under key for at most ttl.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Noop is the Store used when caching is disabled. Every read misses and
// every write is dropped.
type Noop struct{}

func (Noop) Get(ctx context.Context, key string, out any) (bool, error) { return false, nil }

func (Noop) Set(ctx context.Context, key string, value any, ttl time.Duration) error { return nil }
