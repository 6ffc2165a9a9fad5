package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/smartshop/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// Generation parameters per call type. The comparison prompt needs a low
// temperature and room for the full JSON; chat is conversational.
var (
	comparisonGenConfig = domain.GenerationConfig{Temperature: 0.3, MaxOutputTokens: 4096}
	chatGenConfig       = domain.GenerationConfig{Temperature: 0.7, MaxOutputTokens: 1500}
)

// ComparisonServiceConfig holds configuration for the comparison service
type ComparisonServiceConfig struct {
	CacheTTL time.Duration
}

// ComparisonService runs the price-comparison pipeline:
// classify -> resolve+invoke -> parse -> rank -> assemble, with a fallback
// edge from any live-path failure to the mock generator.
type ComparisonService struct {
	cache    domain.CacheRepository
	client   domain.GenerativeClient
	cacheTTL time.Duration
}

// NewComparisonService creates a new comparison service with dependencies
func NewComparisonService(
	cache domain.CacheRepository,
	client domain.GenerativeClient,
	config ComparisonServiceConfig,
) *ComparisonService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 5 * time.Minute
	}

	return &ComparisonService{
		cache:    cache,
		client:   client,
		cacheTTL: cacheTTL,
	}
}

// Search produces a ComparisonResult for a product query. It never fails:
// every live-path error is converted to the mock fallback, and the mock
// generator has no failure mode. DataSource is "live" only when the full
// chain succeeded end to end.
func (s *ComparisonService) Search(ctx context.Context, query string) *domain.ComparisonResult {
	isElectronics := IsElectronicsQuery(query)
	log.Printf("[SEARCH] Query %q, category: %s", query, categoryLabel(isElectronics))

	cacheKey := s.generateCacheKey(query)
	if cached, err := s.getFromCache(ctx, cacheKey); err == nil && cached != nil {
		log.Printf("[SEARCH] Cache hit for %q", query)
		return cached
	}

	result, err := s.fetchLive(ctx, query, isElectronics)
	usedMock := false
	if err != nil {
		logFallbackReason(err)
		result = GenerateMockComparison(query, isElectronics)
		usedMock = true
	}

	ranked, bestDeal := RankOffers(result.Platforms)
	result.Platforms = ranked
	result.BestDeal = bestDeal
	result.SearchedAt = time.Now().UTC()

	if usedMock {
		result.DataSource = domain.DataSourceDemo
		return result
	}

	result.DataSource = domain.DataSourceLive

	// Only live results are cached; demo data is cheap to regenerate
	if err := s.setInCache(ctx, cacheKey, result); err != nil {
		log.Printf("[SEARCH] Failed to cache result for %q: %v", query, err)
	}

	return result
}

// fetchLive runs the live path: resolve a model, invoke it with the
// structured comparison prompt, and parse the response.
func (s *ComparisonService) fetchLive(ctx context.Context, query string, isElectronics bool) (*domain.ComparisonResult, error) {
	if !s.client.HasCredential() {
		return nil, domain.ErrCredentialMissing
	}

	model := s.client.ResolveModel(ctx)
	prompt := BuildComparisonPrompt(query, isElectronics)

	raw, err := s.client.GenerateContent(ctx, model, prompt, comparisonGenConfig)
	if err != nil {
		return nil, err
	}

	log.Printf("[SEARCH] Live response received, length %d", len(raw))

	return ParseComparison(raw, query)
}

// Chat answers a conversational message with the shopping-assistant persona.
// Unlike Search, failures are surfaced to the caller, never masked with
// demo data.
func (s *ComparisonService) Chat(ctx context.Context, message string) (string, error) {
	if !s.client.HasCredential() {
		return "", domain.ErrCredentialMissing
	}

	model := s.client.ResolveModel(ctx)
	return s.client.GenerateContent(ctx, model, BuildChatPrompt(message), chatGenConfig)
}

// Models lists generation-capable model identifiers for diagnostics
func (s *ComparisonService) Models(ctx context.Context) ([]string, error) {
	return s.client.ListGenerationModels(ctx)
}

// CredentialConfigured reports whether a provider credential is present
func (s *ComparisonService) CredentialConfigured() bool {
	return s.client.HasCredential()
}

// logFallbackReason logs why the mock path was taken, without leaking raw
// provider error text at warning level for expected conditions.
func logFallbackReason(err error) {
	switch {
	case errors.Is(err, domain.ErrCredentialMissing):
		log.Printf("[SEARCH] No API key configured - using demo data")
	case errors.Is(err, domain.ErrCredentialInvalid):
		log.Printf("[SEARCH] Invalid API key - using demo data")
	case errors.Is(err, domain.ErrQuotaExceeded):
		log.Printf("[SEARCH] API quota exceeded - using demo data")
	case errors.Is(err, domain.ErrModelUnavailable):
		log.Printf("[SEARCH] Model not found - using demo data")
	case errors.Is(err, domain.ErrContentBlocked):
		log.Printf("[SEARCH] Content blocked by safety filters - using demo data")
	case errors.Is(err, domain.ErrNoContent):
		log.Printf("[SEARCH] No response from API - using demo data")
	case errors.Is(err, domain.ErrTruncatedResponse),
		errors.Is(err, domain.ErrInvalidJSON),
		errors.Is(err, domain.ErrInvalidShape):
		log.Printf("[SEARCH] Parse error - falling back to demo data: %v", err)
	default:
		log.Printf("[SEARCH] Unexpected API error - using demo data: %v", err)
	}
}

func categoryLabel(isElectronics bool) string {
	if isElectronics {
		return "Electronics (Amazon + Flipkart only)"
	}
	return "General (All platforms)"
}

// generateCacheKey creates a normalized cache key from the query.
// Format: "comparison:{normalized_query}"
func (s *ComparisonService) generateCacheKey(query string) string {
	return fmt.Sprintf("comparison:%s", normalizeForCacheKey(query))
}

// normalizeForCacheKey normalizes a string for use as cache key component.
// Converts to lowercase, removes special characters, and trims whitespace.
func normalizeForCacheKey(s string) string {
	if s == "" {
		return ""
	}
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// getFromCache retrieves a comparison result from cache
func (s *ComparisonService) getFromCache(ctx context.Context, key string) (*domain.ComparisonResult, error) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	// The cache stores JSON-roundtripped values; re-marshal into the type
	data, err := json.Marshal(value)
	if err != nil {
		return nil, domain.ErrCacheMiss
	}

	var result domain.ComparisonResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, domain.ErrCacheMiss
	}

	if len(result.Platforms) == 0 {
		return nil, domain.ErrCacheMiss
	}

	return &result, nil
}

// setInCache stores a comparison result in cache
func (s *ComparisonService) setInCache(ctx context.Context, key string, result *domain.ComparisonResult) error {
	return s.cache.Set(ctx, key, result, s.cacheTTL)
}
