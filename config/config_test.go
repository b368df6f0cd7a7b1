package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 30*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 30s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Analysis.Concurrency != 1 {
		t.Errorf("Analysis.Concurrency = %d, want 1", cfg.Analysis.Concurrency)
	}
	if cfg.Analysis.DefaultWindowDays != 7 {
		t.Errorf("Analysis.DefaultWindowDays = %d, want 7", cfg.Analysis.DefaultWindowDays)
	}
	if cfg.YouTube.RequestTimeout != 30*time.Second {
		t.Errorf("YouTube.RequestTimeout = %v, want 30s", cfg.YouTube.RequestTimeout)
	}
	if cfg.Cache.Enabled {
		t.Error("Cache.Enabled = true, want false")
	}
	if cfg.Cache.StateStore != "statestore" {
		t.Errorf("Cache.StateStore = %s, want statestore", cfg.Cache.StateStore)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %s, want info", cfg.Logging.Level)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	viper.Reset()
	os.Setenv("CI_YOUTUBE_APIKEY", "AIzaSyFromEnvironment")
	os.Setenv("CI_SERVER_PORT", "9090")
	os.Setenv("CI_ANALYSIS_CONCURRENCY", "4")
	defer func() {
		os.Unsetenv("CI_YOUTUBE_APIKEY")
		os.Unsetenv("CI_SERVER_PORT")
		os.Unsetenv("CI_ANALYSIS_CONCURRENCY")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.YouTube.APIKey != "AIzaSyFromEnvironment" {
		t.Errorf("YouTube.APIKey = %s, want AIzaSyFromEnvironment", cfg.YouTube.APIKey)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Analysis.Concurrency != 4 {
		t.Errorf("Analysis.Concurrency = %d, want 4", cfg.Analysis.Concurrency)
	}
}

func TestSetDefaults(t *testing.T) {
	viper.Reset()
	setDefaults()

	tests := []struct {
		name string
		key  string
		want interface{}
	}{
		{"youtube apikey", "youtube.apikey", ""},
		{"analysis concurrency", "analysis.concurrency", 1},
		{"analysis window", "analysis.defaultwindowdays", 7},
		{"server port", "server.port", 8080},
		{"cache enabled", "cache.enabled", false},
		{"cache statestore", "cache.statestore", "statestore"},
		{"logging level", "logging.level", "info"},
		{"logging pretty", "logging.pretty", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := viper.Get(tt.key)
			if got != tt.want {
				t.Errorf("viper.Get(%s) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}

	if viper.GetDuration("youtube.requesttimeout") != 30*time.Second {
		t.Errorf("youtube.requesttimeout = %v, want 30s", viper.GetDuration("youtube.requesttimeout"))
	}
	if viper.GetDuration("server.shutdowntimeout") != 30*time.Second {
		t.Errorf("server.shutdowntimeout = %v, want 30s", viper.GetDuration("server.shutdowntimeout"))
	}
}
