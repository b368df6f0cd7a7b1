package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/edupulse/channel-insights/analyzer"
	"github.com/edupulse/channel-insights/cache"
	"github.com/edupulse/channel-insights/client"
	"github.com/edupulse/channel-insights/config"
)

// buildAnalyzer wires the client, the optional cache, and the orchestrator
// from configuration. The returned cleanup releases the client and any cache
// connection.
func buildAnalyzer(ctx context.Context, cfg *config.Config, concurrency int) (*analyzer.Analyzer, func(), error) {
	yt, err := client.NewYouTubeDataClient(cfg.YouTube.APIKey, cfg.YouTube.RequestTimeout)
	if err != nil {
		return nil, nil, err
	}
	if err := yt.Connect(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to connect YouTube client: %w", err)
	}

	var store cache.Store = cache.Noop{}
	var daprStore *cache.DaprStore
	if cfg.Cache.Enabled {
		daprStore, err = cache.NewDaprStore(cfg.Cache.StateStore)
		if err != nil {
			// The cache is an optimization; analysis proceeds uncached.
			log.Warn().Err(err).Msg("Cache unavailable, continuing without it")
		} else {
			store = daprStore
		}
	}

	if concurrency <= 0 {
		concurrency = cfg.Analysis.Concurrency
	}

	cleanup := func() {
		yt.Disconnect(context.Background())
		if daprStore != nil {
			daprStore.Close()
		}
	}

	return analyzer.New(yt, store, cfg.YouTube.APIKey, concurrency), cleanup, nil
}
