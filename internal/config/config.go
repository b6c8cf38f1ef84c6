package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	DashboardAddr string // dashboard listen address
	APIAddr       string // trends API listen address

	// Dashboard
	SiteTitle    string        // env: SITE_TITLE, default: "Trending Posts"
	SiteTagline  string        // optional header tagline
	SiteFooter   string        // optional footer text
	TrendsAPIURL string        // base URL of the trends API; polling errors until set
	PollInterval time.Duration // time between poll cycles
	FetchTimeout time.Duration // timeout for outbound HTTP requests

	// Upstream post search
	XBearerToken string // required by the trends API service
	XAPIBaseURL  string // overridable so tests can point at a local server
	SearchQuery  string
	DefaultLimit int // trending posts returned when no limit is given

	// Sentiment inference
	SentimentAPIURL   string // empty disables scoring; items are served text-only
	SentimentAPIToken string

	// CORS
	CORSOrigins string // Comma-separated allowed origins for the trends API

	// TLS/mTLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string // CA for verifying client certs (mTLS)
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:           getEnv("ENV", "development"),
		DashboardAddr: getEnv("DASHBOARD_ADDR", ":3000"),
		APIAddr:       getEnv("API_ADDR", ":8080"),

		SiteTitle:    getEnv("SITE_TITLE", "Trending Posts"),
		SiteTagline:  getEnv("SITE_TAGLINE", ""),
		SiteFooter:   getEnv("SITE_FOOTER", ""),
		TrendsAPIURL: getEnv("TRENDS_API_URL", ""),
		PollInterval: getEnvDuration("POLL_INTERVAL", 5*time.Minute),
		FetchTimeout: getEnvDuration("FETCH_TIMEOUT", 15*time.Second),

		XBearerToken: getEnv("X_BEARER_TOKEN", ""),
		XAPIBaseURL:  getEnv("X_API_BASE_URL", "https://api.twitter.com"),
		SearchQuery:  getEnv("X_SEARCH_QUERY", "(#news OR #breaking) lang:en -is:retweet"),
		DefaultLimit: getEnvInt("TRENDING_DEFAULT_LIMIT", 10),

		SentimentAPIURL:   getEnv("SENTIMENT_API_URL", ""),
		SentimentAPIToken: getEnv("SENTIMENT_API_TOKEN", ""),

		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		TLSEnabled:  getEnv("TLS_ENABLED", "") != "",
		TLSCertFile: getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:  getEnv("TLS_KEY_FILE", ""),
		TLSCAFile:   getEnv("TLS_CA_FILE", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsMTLSEnabled returns true if mTLS is configured with a CA file.
func (c *Config) IsMTLSEnabled() bool {
	return c.TLSEnabled && c.TLSCAFile != ""
}
