package usecase

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/smartshop/backend/internal/domain"
)

// comparisonPayload is the shape the model is prompted to produce
type comparisonPayload struct {
	ProductName string                 `json:"product_name"`
	Platforms   []domain.PlatformOffer `json:"platforms"`
}

// ParseComparison decodes a raw model response into a ComparisonResult.
// Price strings are passed through untouched; normalization happens in the
// deal ranker. ProductName falls back to the original query when the model
// omits it. DataSource and SearchedAt are left for the orchestrator.
func ParseComparison(raw, query string) (*domain.ComparisonResult, error) {
	cleaned := stripCodeFence(raw)

	// Responses cut short by generation limits produce unbalanced brackets.
	// Catch that before the decode so the failure is diagnosable.
	if err := checkBracketBalance(cleaned); err != nil {
		log.Printf("[PARSER] %v, content preview: %s", err, preview(cleaned, 500))
		return nil, err
	}

	var payload comparisonPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		log.Printf("[PARSER] JSON decode failed: %v, content preview: %s", err, preview(cleaned, 500))
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidJSON, err)
	}

	if len(payload.Platforms) == 0 {
		return nil, fmt.Errorf("%w: missing or empty platforms array", domain.ErrInvalidShape)
	}

	for i, platform := range payload.Platforms {
		if platform.Name == "" || platform.Price == "" {
			return nil, fmt.Errorf("%w: platform %d missing name or price", domain.ErrInvalidShape, i)
		}
	}

	productName := payload.ProductName
	if productName == "" {
		productName = query
	}

	return &domain.ComparisonResult{
		ProductName: productName,
		Platforms:   payload.Platforms,
	}, nil
}

// stripCodeFence removes a leading/trailing markdown code fence if present,
// with or without a language tag. Unfenced text passes through unchanged.
func stripCodeFence(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.ReplaceAll(cleaned, "```json\n", "")
		cleaned = strings.ReplaceAll(cleaned, "```json", "")
		cleaned = strings.ReplaceAll(cleaned, "```\n", "")
		cleaned = strings.ReplaceAll(cleaned, "```", "")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.ReplaceAll(cleaned, "```\n", "")
		cleaned = strings.ReplaceAll(cleaned, "```", "")
	}

	return strings.TrimSpace(cleaned)
}

// checkBracketBalance verifies open/close counts match for braces and brackets
func checkBracketBalance(s string) error {
	openBraces := strings.Count(s, "{")
	closeBraces := strings.Count(s, "}")
	openBrackets := strings.Count(s, "[")
	closeBrackets := strings.Count(s, "]")

	if openBraces != closeBraces || openBrackets != closeBrackets {
		return fmt.Errorf("%w: braces %d/%d, brackets %d/%d",
			domain.ErrTruncatedResponse, openBraces, closeBraces, openBrackets, closeBrackets)
	}
	return nil
}

func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
