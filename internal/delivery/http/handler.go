package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartshop/backend/internal/domain"
	"github.com/smartshop/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	comparisonService *usecase.ComparisonService
}

// NewHandler creates a new HTTP handler
func NewHandler(comparisonService *usecase.ComparisonService) *Handler {
	return &Handler{
		comparisonService: comparisonService,
	}
}

// HealthCheck returns the health status of the API. It reports whether a
// provider credential is configured, never the credential itself.
func (h *Handler) HealthCheck(c *gin.Context) {
	configured := false
	if h.comparisonService != nil {
		configured = h.comparisonService.CredentialConfigured()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":            "ok",
		"service":           "smartshop-backend",
		"version":           "1.0.0",
		"gemini_configured": configured,
	})
}

// searchResponse is the search endpoint's envelope
type searchResponse struct {
	Success bool `json:"success"`
	*domain.ComparisonResult
}

// Search handles price comparison search requests. The pipeline behind it is
// total, so the only error response is a 400 for an unreadable query.
func (h *Handler) Search(c *gin.Context) {
	var req domain.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product query is required"})
		return
	}

	result := h.comparisonService.Search(c.Request.Context(), req.Query)

	c.JSON(http.StatusOK, searchResponse{
		Success:          true,
		ComparisonResult: result,
	})
}

// Chat handles conversational assistant requests. Unlike Search, provider
// failures are surfaced with an appropriate status instead of demo data.
func (h *Handler) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	response, err := h.comparisonService.Chat(c.Request.Context(), req.Message)
	if err != nil {
		status, message := chatErrorStatus(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"response": response,
	})
}

// ListModels reports which provider models support content generation.
// Diagnostics only; requires a configured credential.
func (h *Handler) ListModels(c *gin.Context) {
	models, err := h.comparisonService.Models(c.Request.Context())
	if err != nil {
		status, message := chatErrorStatus(err)
		c.JSON(status, gin.H{"success": false, "error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"available_models": models,
	})
}

// chatErrorStatus maps provider failures to HTTP statuses for the endpoints
// that surface errors instead of falling back to demo data.
func chatErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrCredentialMissing):
		return http.StatusServiceUnavailable, "Gemini API key is not configured"
	case errors.Is(err, domain.ErrCredentialInvalid):
		return http.StatusUnauthorized, "Gemini API key was rejected"
	case errors.Is(err, domain.ErrQuotaExceeded):
		return http.StatusTooManyRequests, "Gemini API quota exceeded, please try again later"
	case errors.Is(err, domain.ErrContentBlocked):
		return http.StatusBadRequest, "Response blocked by safety filters, please rephrase your question"
	case errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest, "Request rejected by Gemini API"
	case errors.Is(err, domain.ErrModelUnavailable):
		return http.StatusBadGateway, "Gemini model is unavailable"
	case errors.Is(err, domain.ErrNoContent):
		return http.StatusBadGateway, "No response from Gemini API"
	default:
		return http.StatusBadGateway, "Failed to get response from Gemini API"
	}
}
