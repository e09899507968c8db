// Package config provides configuration for the blog MCP server.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/akshay23/spurs-blog-mcp-server/internal/blog"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingFeedURL   = errors.New("feed_url is required")
	ErrMissingUserAgent = errors.New("user_agent is required")
	ErrInvalidTimeout   = errors.New("http_timeout must be positive")
	ErrInvalidCacheTTL  = errors.New("cache_ttl must be positive")
	ErrMissingRESTPort  = errors.New("rest_port is required when the REST API is enabled")
)

// Config holds all runtime settings. Defaults are overridden first by an
// optional YAML file, then by environment variables.
type Config struct {
	FeedURL     string        `env:"FEED_URL" yaml:"feed_url"`
	UserAgent   string        `env:"USER_AGENT" yaml:"user_agent"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" yaml:"http_timeout"`
	CacheTTL    time.Duration `env:"CACHE_TTL" yaml:"cache_ttl"`

	RedisURL    string `env:"REDIS_URL" yaml:"redis_url"`
	PostgresDSN string `env:"POSTGRES_DSN" yaml:"postgres_dsn"`

	RESTPort   string `env:"REST_PORT" yaml:"rest_port"`
	EnableREST bool   `env:"ENABLE_REST" yaml:"enable_rest"`

	EnableWarmer      bool `env:"ENABLE_WARMER" yaml:"enable_warmer"`
	EnableReadability bool `env:"ENABLE_READABILITY" yaml:"enable_readability"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		FeedURL:     blog.DefaultFeedURL,
		UserAgent:   blog.DefaultUserAgent,
		HTTPTimeout: 30 * time.Second,
		CacheTTL:    30 * time.Minute,
		RESTPort:    "8080",
	}
}

// Load builds the configuration from defaults, the optional YAML file at
// path (empty path skips the file), and the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if c.FeedURL == "" {
		return ErrMissingFeedURL
	}
	if c.UserAgent == "" {
		return ErrMissingUserAgent
	}
	if c.HTTPTimeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.CacheTTL <= 0 {
		return ErrInvalidCacheTTL
	}
	if c.EnableREST && c.RESTPort == "" {
		return ErrMissingRESTPort
	}
	return nil
}
