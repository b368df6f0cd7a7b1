package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	daprc "github.com/dapr/go-sdk/client"
	"github.com/rs/zerolog/log"
)

const defaultStateStoreName = "statestore"

// DaprStore backs the cache with a Dapr state store component, so the
// concrete storage (Redis, Postgres, in-memory) is a deployment decision.
type DaprStore struct {
	client    daprc.Client
	storeName string
}

func getEnvValue(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// NewDaprStore connects to the local Dapr sidecar and targets the named
// state store component. An empty name selects the default component.
func NewDaprStore(storeName string) (*DaprStore, error) {
	if storeName == "" {
		storeName = defaultStateStoreName
	}

	daprPort := getEnvValue("DAPR_GRPC_PORT", "50001")
	client, err := daprc.NewClientWithPort(daprPort)
	if err != nil {
		return nil, fmt.Errorf("failed to create Dapr client: %w", err)
	}

	log.Info().Str("state_store", storeName).Str("dapr_port", daprPort).Msg("Connected to Dapr state store")
	return &DaprStore{client: client, storeName: storeName}, nil
}

// Get reads and unmarshals one entry. Absent keys are a miss, not an error.
func (s *DaprStore) Get(ctx context.Context, key string, out any) (bool, error) {
	response, err := s.client.GetState(ctx, s.storeName, key, nil)
	if err != nil {
		return false, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}
	if len(response.Value) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(response.Value, out); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Discarding undecodable cache entry")
		return false, nil
	}
	return true, nil
}

// Set marshals and stores one entry with the given TTL.
func (s *DaprStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value for key %s: %w", key, err)
	}

	metadata := map[string]string{
		"ttlInSeconds": strconv.Itoa(int(ttl / time.Second)),
	}
	if err := s.client.SaveState(ctx, s.storeName, key, data, metadata); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}
	return nil
}

// Close releases the sidecar connection.
func (s *DaprStore) Close() {
	if s.client != nil {
		s.client.Close()
	}
}
