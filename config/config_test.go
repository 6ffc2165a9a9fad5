package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("SMARTSHOP_SERVER_PORT")
		os.Unsetenv("SMARTSHOP_SERVER_ENVIRONMENT")
		os.Unsetenv("SMARTSHOP_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("SMARTSHOP_GEMINI_API_KEY")
		os.Unsetenv("SMARTSHOP_GEMINI_BASE_URL")
		os.Unsetenv("SMARTSHOP_GEMINI_DEFAULT_MODEL")
		os.Unsetenv("SMARTSHOP_CACHE_TYPE")
		os.Unsetenv("SMARTSHOP_CACHE_TTL")
		os.Unsetenv("SMARTSHOP_RATELIMIT_PER_IP")
		os.Unsetenv("SMARTSHOP_RATELIMIT_GEMINI_PER_MINUTE")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Gemini.BaseURL != "https://generativelanguage.googleapis.com" {
			t.Errorf("Gemini.BaseURL = %s, want https://generativelanguage.googleapis.com", cfg.Gemini.BaseURL)
		}
		if cfg.Gemini.DefaultModel != "gemini-pro" {
			t.Errorf("Gemini.DefaultModel = %s, want gemini-pro", cfg.Gemini.DefaultModel)
		}
		if cfg.Cache.Type != "memory" {
			t.Errorf("Cache.Type = %s, want memory", cfg.Cache.Type)
		}
		if cfg.Cache.TTL != 5*time.Minute {
			t.Errorf("Cache.TTL = %v, want 5m", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 100 {
			t.Errorf("RateLimit.PerIP = %d, want 100", cfg.RateLimit.PerIP)
		}
		if cfg.RateLimit.GeminiPerMinute != 15 {
			t.Errorf("RateLimit.GeminiPerMinute = %d, want 15", cfg.RateLimit.GeminiPerMinute)
		}
	})

	t.Run("missing API key is not an error", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}
		if cfg.Gemini.APIKey != "" {
			t.Errorf("Gemini.APIKey = %s, want empty", cfg.Gemini.APIKey)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("SMARTSHOP_SERVER_PORT", "9090")
		os.Setenv("SMARTSHOP_SERVER_ENVIRONMENT", "production")
		os.Setenv("SMARTSHOP_GEMINI_API_KEY", "custom-api-key")
		os.Setenv("SMARTSHOP_GEMINI_BASE_URL", "https://custom.api.com")
		os.Setenv("SMARTSHOP_GEMINI_DEFAULT_MODEL", "gemini-1.5-flash")
		os.Setenv("SMARTSHOP_CACHE_TTL", "10m")
		os.Setenv("SMARTSHOP_RATELIMIT_PER_IP", "200")
		os.Setenv("SMARTSHOP_RATELIMIT_GEMINI_PER_MINUTE", "60")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Gemini.APIKey != "custom-api-key" {
			t.Errorf("Gemini.APIKey = %s, want custom-api-key", cfg.Gemini.APIKey)
		}
		if cfg.Gemini.BaseURL != "https://custom.api.com" {
			t.Errorf("Gemini.BaseURL = %s, want https://custom.api.com", cfg.Gemini.BaseURL)
		}
		if cfg.Gemini.DefaultModel != "gemini-1.5-flash" {
			t.Errorf("Gemini.DefaultModel = %s, want gemini-1.5-flash", cfg.Gemini.DefaultModel)
		}
		if cfg.Cache.TTL != 10*time.Minute {
			t.Errorf("Cache.TTL = %v, want 10m", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 200 {
			t.Errorf("RateLimit.PerIP = %d, want 200", cfg.RateLimit.PerIP)
		}
		if cfg.RateLimit.GeminiPerMinute != 60 {
			t.Errorf("RateLimit.GeminiPerMinute = %d, want 60", cfg.RateLimit.GeminiPerMinute)
		}
	})

	t.Run("fails validation for invalid cache type", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("SMARTSHOP_CACHE_TYPE", "redis")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for unsupported cache type")
		}
	})

	t.Run("fails validation for non-positive gemini rate limit", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("SMARTSHOP_RATELIMIT_GEMINI_PER_MINUTE", "0")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for zero rate limit")
		}
	})
}
