package domain

import (
	"context"
	"time"
)

// GenerativeClient defines the interface for the Gemini generative-language API
type GenerativeClient interface {
	// ResolveModel returns the identifier of a generation-capable model,
	// falling back to a static default on any listing failure.
	ResolveModel(ctx context.Context) string

	// GenerateContent issues a generation request and returns the first
	// candidate's text verbatim.
	GenerateContent(ctx context.Context, model, prompt string, cfg GenerationConfig) (string, error)

	// ListGenerationModels returns the identifiers of all generation-capable
	// catalog entries. Used only for diagnostics.
	ListGenerationModels(ctx context.Context) ([]string, error)

	// HasCredential reports whether an API key is configured.
	HasCredential() bool
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
