package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/smartshop/backend/internal/domain"
	"golang.org/x/time/rate"
)

// generateContentMethod is the capability a catalog entry must support to be
// usable for text generation.
const generateContentMethod = "generateContent"

// Client handles communication with the Gemini generative-language API
type Client struct {
	httpClient   *http.Client
	apiKey       string
	baseURL      string
	defaultModel string
	rateLimiter  *rate.Limiter
	debug        bool
}

// NewClient creates a new Gemini API client
func NewClient(apiKey, baseURL, defaultModel string, requestsPerMinute int) *Client {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 15
	}

	// Free tier allows very few requests per minute; burst of 5 covers the
	// listing call plus the generation call of a handful of requests.
	limiter := rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:       apiKey,
		baseURL:      baseURL,
		defaultModel: defaultModel,
		rateLimiter:  limiter,
	}
}

// SetDebug enables verbose request/response logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// HasCredential reports whether an API key is configured
func (c *Client) HasCredential() bool {
	return c.apiKey != ""
}

// ResolveModel discovers which model supports content generation.
// One listing attempt; any failure falls back to the configured default model.
func (c *Client) ResolveModel(ctx context.Context) string {
	if c.apiKey == "" {
		return c.defaultModel
	}

	catalog, err := c.listModels(ctx)
	if err != nil {
		log.Printf("[GEMINI] Could not list models, using fallback %q: %v", c.defaultModel, err)
		return c.defaultModel
	}

	for _, m := range catalog.Models {
		if supportsGeneration(m) {
			name := strings.TrimPrefix(m.Name, "models/")
			if c.debug {
				log.Printf("[GEMINI] Using discovered model: %s", name)
			}
			return name
		}
	}

	log.Printf("[GEMINI] No generation-capable model in catalog, using fallback %q", c.defaultModel)
	return c.defaultModel
}

// ListGenerationModels returns the identifiers of all catalog entries that
// support content generation. Used by the diagnostics endpoint.
func (c *Client) ListGenerationModels(ctx context.Context) ([]string, error) {
	if c.apiKey == "" {
		return nil, domain.ErrCredentialMissing
	}

	catalog, err := c.listModels(ctx)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, m := range catalog.Models {
		if supportsGeneration(m) {
			names = append(names, strings.TrimPrefix(m.Name, "models/"))
		}
	}
	return names, nil
}

// listModels performs a single catalog request against the v1 surface
func (c *Client) listModels(ctx context.Context) (*domain.GeminiModelList, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v1/models?key=%s", c.baseURL, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "SmartShop/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d, body: %s", domain.ErrProviderFailure, resp.StatusCode, string(body))
	}

	var catalog domain.GeminiModelList
	if err := json.NewDecoder(resp.Body).Decode(&catalog); err != nil {
		return nil, fmt.Errorf("failed to decode model catalog: %w", err)
	}

	if len(catalog.Models) == 0 {
		return nil, fmt.Errorf("%w: empty model catalog", domain.ErrProviderFailure)
	}

	return &catalog, nil
}

func supportsGeneration(m domain.GeminiModel) bool {
	for _, method := range m.SupportedGenerationMethods {
		if method == generateContentMethod {
			return true
		}
	}
	return false
}

// generateRequest is the generateContent request payload
type generateRequest struct {
	Contents         []requestContent        `json:"contents"`
	GenerationConfig domain.GenerationConfig `json:"generationConfig"`
}

type requestContent struct {
	Parts []contentPart `json:"parts"`
}

type contentPart struct {
	Text string `json:"text"`
}

// generateResponse is the generateContent response payload
type generateResponse struct {
	Candidates     []candidate     `json:"candidates"`
	PromptFeedback *promptFeedback `json:"promptFeedback,omitempty"`
}

type candidate struct {
	Content      requestContent `json:"content"`
	FinishReason string         `json:"finishReason,omitempty"`
}

type promptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

// GenerateContent issues a content-generation request against the v1 surface,
// retrying exactly once against v1beta when v1 answers 404. The first
// candidate's text is returned unmodified; validation is the parser's job.
func (c *Client) GenerateContent(ctx context.Context, model, prompt string, cfg domain.GenerationConfig) (string, error) {
	if c.apiKey == "" {
		return "", domain.ErrCredentialMissing
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []requestContent{
			{Parts: []contentPart{{Text: prompt}}},
		},
		GenerationConfig: cfg,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error: %w", err)
	}

	status, body, err := c.postGenerate(ctx, "v1", model, payload)
	if err != nil {
		return "", err
	}

	// Model-surface versioning fallback: one retry, no further escalation
	if status == http.StatusNotFound {
		log.Printf("[GEMINI] v1 returned 404 for model %q, trying v1beta", model)
		status, body, err = c.postGenerate(ctx, "v1beta", model, payload)
		if err != nil {
			return "", err
		}
	}

	if status != http.StatusOK {
		return "", c.mapStatusError(status, body)
	}

	var genResp generateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if genResp.PromptFeedback != nil && genResp.PromptFeedback.BlockReason != "" {
		log.Printf("[GEMINI] Prompt blocked: %s", genResp.PromptFeedback.BlockReason)
		return "", domain.ErrContentBlocked
	}

	if len(genResp.Candidates) == 0 {
		return "", domain.ErrNoContent
	}

	first := genResp.Candidates[0]
	if first.FinishReason == "SAFETY" {
		log.Printf("[GEMINI] Response blocked by safety filters")
		return "", domain.ErrContentBlocked
	}

	if len(first.Content.Parts) == 0 || first.Content.Parts[0].Text == "" {
		return "", domain.ErrNoContent
	}

	return first.Content.Parts[0].Text, nil
}

// postGenerate executes one generateContent POST against the given API surface
func (c *Client) postGenerate(ctx context.Context, version, model string, payload []byte) (int, []byte, error) {
	reqURL := fmt.Sprintf("%s/%s/models/%s:generateContent?key=%s", c.baseURL, version, model, c.apiKey)

	if c.debug {
		log.Printf("[GEMINI] POST %s/%s/models/%s:generateContent", c.baseURL, version, model)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", reqURL, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "SmartShop/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", domain.ErrProviderFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", domain.ErrProviderFailure, err)
	}

	return resp.StatusCode, body, nil
}

// mapStatusError converts a terminal non-success status into a domain error
func (c *Client) mapStatusError(status int, body []byte) error {
	switch status {
	case http.StatusTooManyRequests:
		// Quota errors are expected on the free tier; keep the log short
		log.Printf("[GEMINI] API quota exceeded")
		return domain.ErrQuotaExceeded
	case http.StatusUnauthorized, http.StatusForbidden:
		log.Printf("[GEMINI] API key rejected (status %d)", status)
		return domain.ErrCredentialInvalid
	case http.StatusBadRequest:
		log.Printf("[GEMINI] Bad request: %s", truncate(string(body), 500))
		return domain.ErrBadRequest
	case http.StatusNotFound:
		log.Printf("[GEMINI] Model not found on both API surfaces")
		return domain.ErrModelUnavailable
	default:
		log.Printf("[GEMINI] API error - Status: %d, Body: %s", status, truncate(string(body), 500))
		return fmt.Errorf("%w: status %d", domain.ErrProviderFailure, status)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
