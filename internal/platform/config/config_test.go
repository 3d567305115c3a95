package config

import (
	"os"
	"testing"
	"time"
)

// clearEnv unsets all GUIDE_ environment variables for a clean test.
func clearEnv(t *testing.T) {
	t.Helper()
	envVars := []string{
		"GUIDE_SERVER_PORT",
		"GUIDE_SERVER_HOST",
		"GUIDE_DATABASE_URL",
		"GUIDE_DATABASE_MAX_CONNS",
		"GUIDE_DATABASE_MIN_CONNS",
		"GUIDE_CACHE_URL",
		"GUIDE_AI_GOOGLE_API_KEY",
		"GUIDE_AI_GOOGLE_TEXT_MODEL",
		"GUIDE_AI_GOOGLE_IMAGE_MODEL",
		"GUIDE_AI_OPENAI_API_KEY",
		"GUIDE_AUTH_SIMULATED_OTP",
		"GUIDE_AUTH_OTP_TTL",
		"GUIDE_AUTH_SESSION_TTL",
		"GUIDE_OCCUPATIONS_SOURCE_URL",
		"GUIDE_OCCUPATIONS_FORMAT",
		"GUIDE_LOG_LEVEL",
		"GUIDE_LOG_FORMAT",
	}
	for _, v := range envVars {
		_ = os.Unsetenv(v)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.URL != "" {
		t.Errorf("Database.URL = %q, want empty (in-memory mode)", cfg.Database.URL)
	}
	if cfg.Database.MaxConns != 25 {
		t.Errorf("Database.MaxConns = %d, want 25", cfg.Database.MaxConns)
	}
	if cfg.Auth.SimulatedOTP != "123456" {
		t.Errorf("Auth.SimulatedOTP = %q, want 123456", cfg.Auth.SimulatedOTP)
	}
	if cfg.Auth.OTPTTL != 5*time.Minute {
		t.Errorf("Auth.OTPTTL = %v, want 5m", cfg.Auth.OTPTTL)
	}
	if cfg.Occupations.Format != "csv" {
		t.Errorf("Occupations.Format = %q, want csv", cfg.Occupations.Format)
	}
	if cfg.AI.Google.TextModel != "gemini-2.5-flash" {
		t.Errorf("AI.Google.TextModel = %q, want gemini-2.5-flash", cfg.AI.Google.TextModel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GUIDE_SERVER_PORT", "9090")
	t.Setenv("GUIDE_AUTH_OTP_TTL", "90s")
	t.Setenv("GUIDE_OCCUPATIONS_FORMAT", "xlsx")
	t.Setenv("GUIDE_AI_GOOGLE_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Auth.OTPTTL != 90*time.Second {
		t.Errorf("Auth.OTPTTL = %v, want 90s", cfg.Auth.OTPTTL)
	}
	if cfg.Occupations.Format != "xlsx" {
		t.Errorf("Occupations.Format = %q, want xlsx", cfg.Occupations.Format)
	}
	if !cfg.HasAIProvider() {
		t.Error("HasAIProvider() = false with Google key set")
	}
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("GUIDE_SERVER_PORT", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want fallback 8080", cfg.Server.Port)
	}
}

func TestValidate(t *testing.T) {
	clearEnv(t)

	cfg, _ := Load()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, want nil", err)
	}

	cfg.Occupations.Format = "json"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with bad format = nil, want error")
	}

	cfg.Occupations.Format = "csv"
	cfg.Auth.SimulatedOTP = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with empty OTP = nil, want error")
	}
}

func TestHasAIProvider_None(t *testing.T) {
	clearEnv(t)

	cfg, _ := Load()
	if cfg.HasAIProvider() {
		t.Error("HasAIProvider() = true with no keys set")
	}
}
