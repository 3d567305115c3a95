// Package config loads application configuration from environment variables.
// All variables use the GUIDE_ prefix.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Cache       CacheConfig
	AI          AIConfig
	Auth        AuthConfig
	Occupations OccupationsConfig
	Log         LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int
	Host string
}

// DatabaseConfig holds PostgreSQL connection settings. An empty URL means
// the service runs on in-memory stores only (development mode).
type DatabaseConfig struct {
	URL      string
	MaxConns int
	MinConns int
}

// CacheConfig holds Redis connection settings. An empty URL disables the
// cache; reference data is then re-fetched on every start.
type CacheConfig struct {
	URL string
}

// AIConfig holds configuration for the generative-AI providers.
type AIConfig struct {
	Google GoogleConfig
	OpenAI OpenAIConfig
}

// GoogleConfig holds Google Gemini provider settings.
type GoogleConfig struct {
	APIKey     string
	TextModel  string
	ImageModel string
}

// OpenAIConfig holds settings for the OpenAI-compatible fallback provider.
type OpenAIConfig struct {
	APIKey string
}

// AuthConfig holds mock-OTP login settings.
type AuthConfig struct {
	SimulatedOTP string
	OTPTTL       time.Duration
	SessionTTL   time.Duration
}

// OccupationsConfig holds occupation reference-data source settings.
type OccupationsConfig struct {
	SourceURL string
	Format    string // "csv" or "xlsx"
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with GUIDE_ prefix.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envInt("GUIDE_SERVER_PORT", 8080),
			Host: envStr("GUIDE_SERVER_HOST", "0.0.0.0"),
		},
		Database: DatabaseConfig{
			URL:      envStr("GUIDE_DATABASE_URL", ""),
			MaxConns: envInt("GUIDE_DATABASE_MAX_CONNS", 25),
			MinConns: envInt("GUIDE_DATABASE_MIN_CONNS", 5),
		},
		Cache: CacheConfig{
			URL: envStr("GUIDE_CACHE_URL", ""),
		},
		AI: AIConfig{
			Google: GoogleConfig{
				APIKey:     envStr("GUIDE_AI_GOOGLE_API_KEY", ""),
				TextModel:  envStr("GUIDE_AI_GOOGLE_TEXT_MODEL", "gemini-2.5-flash"),
				ImageModel: envStr("GUIDE_AI_GOOGLE_IMAGE_MODEL", "gemini-2.5-flash-image"),
			},
			OpenAI: OpenAIConfig{
				APIKey: envStr("GUIDE_AI_OPENAI_API_KEY", ""),
			},
		},
		Auth: AuthConfig{
			SimulatedOTP: envStr("GUIDE_AUTH_SIMULATED_OTP", "123456"),
			OTPTTL:       envDuration("GUIDE_AUTH_OTP_TTL", 5*time.Minute),
			SessionTTL:   envDuration("GUIDE_AUTH_SESSION_TTL", 24*time.Hour),
		},
		Occupations: OccupationsConfig{
			SourceURL: envStr("GUIDE_OCCUPATIONS_SOURCE_URL", "https://webapps.ilo.org/ilostat-files/Documents/isco.csv"),
			Format:    envStr("GUIDE_OCCUPATIONS_FORMAT", "csv"),
		},
		Log: LogConfig{
			Level:  envStr("GUIDE_LOG_LEVEL", "info"),
			Format: envStr("GUIDE_LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

// Validate checks that configuration values are consistent.
func (c *Config) Validate() error {
	if c.Occupations.Format != "csv" && c.Occupations.Format != "xlsx" {
		return fmt.Errorf("GUIDE_OCCUPATIONS_FORMAT must be 'csv' or 'xlsx', got %q", c.Occupations.Format)
	}
	if c.Auth.SimulatedOTP == "" {
		return fmt.Errorf("GUIDE_AUTH_SIMULATED_OTP must not be empty")
	}
	return nil
}

// HasAIProvider returns true if at least one AI provider is configured.
func (c *Config) HasAIProvider() bool {
	return c.AI.Google.APIKey != "" || c.AI.OpenAI.APIKey != ""
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
