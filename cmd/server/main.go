package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/smartshop/backend/config"
	httpDelivery "github.com/smartshop/backend/internal/delivery/http"
	"github.com/smartshop/backend/internal/infrastructure/cache"
	"github.com/smartshop/backend/internal/infrastructure/gemini"
	"github.com/smartshop/backend/internal/usecase"
)

func main() {
	// Load .env for local development; real environments set vars directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting SmartShop Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	geminiClient := gemini.NewClient(
		cfg.Gemini.APIKey,
		cfg.Gemini.BaseURL,
		cfg.Gemini.DefaultModel,
		cfg.RateLimit.GeminiPerMinute,
	)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		geminiClient.SetDebug(true)
		log.Printf("Gemini client debug mode enabled")
	}

	if cfg.Gemini.APIKey != "" {
		log.Printf("Gemini API configured: %s (key: %s...)", cfg.Gemini.BaseURL, keyPreview(cfg.Gemini.APIKey))
	} else {
		log.Printf("WARNING: Gemini API key not configured - search will serve demo data, chat is disabled")
	}

	// Initialize usecase layer
	comparisonService := usecase.NewComparisonService(
		memoryCache,
		geminiClient,
		usecase.ComparisonServiceConfig{
			CacheTTL: cfg.Cache.TTL,
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(comparisonService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// keyPreview returns a short non-sensitive prefix of the API key for logs
func keyPreview(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:8]
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
