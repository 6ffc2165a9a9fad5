package domain

import "time"

// Data source values for ComparisonResult.DataSource
const (
	DataSourceLive = "live"
	DataSourceDemo = "demo"
)

// PlatformOffer represents one e-commerce platform's quoted deal for a product
type PlatformOffer struct {
	Name       string `json:"name"`
	Price      string `json:"price"` // currency string, e.g. "₹45,999"
	Rating     string `json:"rating"`
	Delivery   string `json:"delivery"`
	Offer      string `json:"offer,omitempty"`
	Link       string `json:"link"`
	IsBestDeal bool   `json:"is_best_deal"` // set only by the deal ranker
}

// ComparisonResult is the unit produced by the pipeline for one search query
type ComparisonResult struct {
	ProductName string          `json:"product_name"`
	Platforms   []PlatformOffer `json:"platforms"`
	BestDeal    *PlatformOffer  `json:"best_deal,omitempty"`
	DataSource  string          `json:"data_source"` // "live" or "demo"
	SearchedAt  time.Time       `json:"searched_at"`
}

// SearchRequest represents a price comparison search request
type SearchRequest struct {
	Query string `json:"query" binding:"required"`
}

// ChatRequest represents a conversational assistant request
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// GenerationConfig carries the generation parameters for a model call
type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// GeminiModel represents one entry in the provider's model catalog
type GeminiModel struct {
	Name                       string   `json:"name"`
	DisplayName                string   `json:"displayName,omitempty"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
}

// GeminiModelList represents the response of the model-catalog endpoint
type GeminiModelList struct {
	Models []GeminiModel `json:"models"`
}
