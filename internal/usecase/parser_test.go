package usecase

import (
	"errors"
	"testing"

	"github.com/smartshop/backend/internal/domain"
)

const validResponse = `{
  "product_name": "Samsung Galaxy S24",
  "platforms": [
    {
      "name": "Amazon",
      "price": "₹74,999",
      "rating": "4.3/5",
      "delivery": "Free delivery by Tomorrow",
      "offer": "10% instant discount with SBI Credit Card",
      "link": "https://www.amazon.in/s?k=Samsung+Galaxy+S24"
    },
    {
      "name": "Flipkart",
      "price": "₹72,999",
      "rating": "4.5/5",
      "delivery": "Free delivery",
      "offer": "Extra ₹1000 off on HDFC Cards",
      "link": "https://www.flipkart.com/search?q=Samsung+Galaxy+S24"
    }
  ]
}`

func TestParseComparison_Valid(t *testing.T) {
	result, err := ParseComparison(validResponse, "Samsung Galaxy S24")
	if err != nil {
		t.Fatalf("ParseComparison() error = %v, want nil", err)
	}

	if result.ProductName != "Samsung Galaxy S24" {
		t.Errorf("ProductName = %q, want %q", result.ProductName, "Samsung Galaxy S24")
	}
	if len(result.Platforms) != 2 {
		t.Fatalf("len(Platforms) = %d, want 2", len(result.Platforms))
	}
	if result.Platforms[0].Name != "Amazon" {
		t.Errorf("Platforms[0].Name = %q, want Amazon", result.Platforms[0].Name)
	}
	// Price strings pass through unmodified; normalization is the ranker's job
	if result.Platforms[1].Price != "₹72,999" {
		t.Errorf("Platforms[1].Price = %q, want ₹72,999", result.Platforms[1].Price)
	}
	// Provenance fields belong to the orchestrator
	if result.DataSource != "" {
		t.Errorf("DataSource = %q, want unset", result.DataSource)
	}
}

func TestParseComparison_CodeFences(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{
			name: "language-tagged fence",
			raw:  "```json\n" + validResponse + "\n```",
		},
		{
			name: "bare fence",
			raw:  "```\n" + validResponse + "\n```",
		},
		{
			name: "fence with surrounding whitespace",
			raw:  "  \n```json\n" + validResponse + "\n```\n  ",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseComparison(tc.raw, "Samsung Galaxy S24")
			if err != nil {
				t.Fatalf("ParseComparison() error = %v, want nil", err)
			}
			if len(result.Platforms) != 2 {
				t.Errorf("len(Platforms) = %d, want 2", len(result.Platforms))
			}
		})
	}
}

func TestParseComparison_Truncated(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{
			name: "unclosed array",
			raw:  `{"platforms": [`,
		},
		{
			name: "unclosed object",
			raw:  `{"platforms": [{"name": "Amazon", "price": "₹12,499"`,
		},
		{
			name: "fenced and truncated",
			raw:  "```json\n{\"platforms\": [{\"name\": \"Amazon\"",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseComparison(tc.raw, "test")
			if !errors.Is(err, domain.ErrTruncatedResponse) {
				t.Errorf("ParseComparison() error = %v, want ErrTruncatedResponse", err)
			}
		})
	}
}

func TestParseComparison_InvalidJSON(t *testing.T) {
	// Brackets balance but the payload is not JSON
	_, err := ParseComparison(`Here are the prices {} []`, "test")
	if !errors.Is(err, domain.ErrInvalidJSON) {
		t.Errorf("ParseComparison() error = %v, want ErrInvalidJSON", err)
	}
}

func TestParseComparison_InvalidShape(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{
			name: "missing platforms field",
			raw:  `{"product_name": "test"}`,
		},
		{
			name: "empty platforms array",
			raw:  `{"product_name": "test", "platforms": []}`,
		},
		{
			name: "platform missing price",
			raw:  `{"platforms": [{"name": "Amazon", "link": "https://example.com"}]}`,
		},
		{
			name: "platform missing name",
			raw:  `{"platforms": [{"price": "₹12,499"}]}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseComparison(tc.raw, "test")
			if !errors.Is(err, domain.ErrInvalidShape) {
				t.Errorf("ParseComparison() error = %v, want ErrInvalidShape", err)
			}
		})
	}
}

func TestParseComparison_ProductNameDefaultsToQuery(t *testing.T) {
	raw := `{"platforms": [{"name": "Amazon", "price": "₹12,499"}]}`
	result, err := ParseComparison(raw, "cotton kurta")
	if err != nil {
		t.Fatalf("ParseComparison() error = %v, want nil", err)
	}
	if result.ProductName != "cotton kurta" {
		t.Errorf("ProductName = %q, want query echo", result.ProductName)
	}
}
