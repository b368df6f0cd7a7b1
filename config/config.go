// Package config provides configuration management for the application.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	YouTube  YouTubeConfig
	Analysis AnalysisConfig
	Server   ServerConfig
	Cache    CacheConfig
	Logging  LoggingConfig
}

// YouTubeConfig contains Data API credentials and transport settings.
type YouTubeConfig struct {
	APIKey         string
	RequestTimeout time.Duration
}

// AnalysisConfig contains pipeline tuning knobs.
type AnalysisConfig struct {
	Concurrency       int
	DefaultWindowDays int
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            int
	ShutdownTimeout time.Duration
	CORSOrigins     []string
}

// CacheConfig contains the optional Dapr-backed cache settings.
type CacheConfig struct {
	Enabled    bool
	StateStore string
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string
	Pretty bool
}

// Load loads configuration from file and environment variables. A local .env
// file, when present, is folded into the environment first.
func Load() (*Config, error) {
	// Missing .env is the normal production case.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvPrefix("CI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use defaults and env vars
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	// YouTube
	viper.SetDefault("youtube.apikey", "")
	viper.SetDefault("youtube.requesttimeout", 30*time.Second)

	// Analysis
	viper.SetDefault("analysis.concurrency", 1)
	viper.SetDefault("analysis.defaultwindowdays", 7)

	// Server
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.shutdowntimeout", 30*time.Second)
	viper.SetDefault("server.corsorigins", []string{"*"})

	// Cache
	viper.SetDefault("cache.enabled", false)
	viper.SetDefault("cache.statestore", "statestore")

	// Logging
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.pretty", false)
}
