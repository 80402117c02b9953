// Package config provides centralized configuration loaded from
// environment variables. Shared by both cmd/api and cmd/scrape.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Season bounds: request validation rejects seasons outside this range
// --------------------------------------------------------------------------

const (
	// MinSeason is the earliest season the stats site publishes tables for.
	MinSeason = 1970
)

// MaxSeason returns the latest requestable season. The site publishes the
// current season's tables as soon as week 1 completes, so the bound moves
// with the calendar.
func MaxSeason() int {
	now := time.Now()
	if now.Month() >= time.September {
		return now.Year()
	}
	return now.Year() - 1
}

// --------------------------------------------------------------------------
// Config struct, populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Upstream sources
	StatsBaseURL string
	FeedBaseURL  string
	UserAgent    string

	// Fetch behaviour
	RequestTimeout    time.Duration
	RequestsPerMinute int
	MaxRetries        int

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting (inbound API)
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// Load reads configuration from environment variables with sensible
// defaults. Unlike upstream credentials, nothing here is required: the
// stats pages are public.
func Load() (*Config, error) {
	return &Config{
		StatsBaseURL: envOr("STATS_BASE_URL", "https://www.nfl.com/stats"),
		FeedBaseURL:  envOr("FEED_BASE_URL", ""),
		UserAgent:    envOr("SCRAPE_USER_AGENT", ""),

		RequestTimeout:    time.Duration(envInt("REQUEST_TIMEOUT_SECONDS", 30)) * time.Second,
		RequestsPerMinute: envInt("REQUESTS_PER_MINUTE", 30),
		MaxRetries:        envInt("MAX_RETRIES", 3),

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
