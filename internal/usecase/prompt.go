package usecase

import (
	"fmt"
	"net/url"
	"strings"
)

// Platform names in generation/mock order
const (
	PlatformAmazon   = "Amazon"
	PlatformFlipkart = "Flipkart"
	PlatformMeesho   = "Meesho"
	PlatformMyntra   = "Myntra"
)

// amazonSearchLink builds the Amazon India search URL for a query
func amazonSearchLink(query string) string {
	return "https://www.amazon.in/s?k=" + url.QueryEscape(query)
}

// flipkartSearchLink builds the Flipkart search URL for a query
func flipkartSearchLink(query string) string {
	return "https://www.flipkart.com/search?q=" + url.QueryEscape(query)
}

// meeshoSearchLink builds the Meesho search URL for a query
func meeshoSearchLink(query string) string {
	return "https://www.meesho.com/search?q=" + url.QueryEscape(query)
}

// myntraSearchLink builds the Myntra search URL for a query
func myntraSearchLink(query string) string {
	return "https://www.myntra.com/search?q=" + url.QueryEscape(query)
}

// myntraListingLink builds Myntra's path-style listing URL used in the prompt
func myntraListingLink(query string) string {
	return "https://www.myntra.com/" + strings.ToLower(url.PathEscape(strings.ReplaceAll(query, " ", "-")))
}

// electronicsPlatformsTemplate describes the restricted two-platform response
// the model must produce for electronics queries
func electronicsPlatformsTemplate(query string) string {
	return fmt.Sprintf(`
IMPORTANT: This is an ELECTRONICS product. Return ONLY Amazon and Flipkart.
- Meesho and Myntra DO NOT sell electronics/smartphones/laptops
- Only include Amazon and Flipkart in your response

Return this JSON structure with ONLY 2 platforms:
{
  "product_name": "%s",
  "platforms": [
    {
      "name": "Amazon",
      "price": "₹XX,XXX",
      "rating": "4.3/5",
      "delivery": "Free delivery by Tomorrow",
      "offer": "10%% instant discount with SBI Credit Card",
      "link": "%s"
    },
    {
      "name": "Flipkart",
      "price": "₹XX,XXX",
      "rating": "4.5/5",
      "delivery": "Free delivery",
      "offer": "Extra ₹1000 off on HDFC Cards",
      "link": "%s"
    }
  ]
}`, query, amazonSearchLink(query), flipkartSearchLink(query))
}

// generalPlatformsTemplate describes the four-platform response for
// non-electronics queries
func generalPlatformsTemplate(query string) string {
	return fmt.Sprintf(`
Return this JSON structure with all 4 platforms:
{
  "product_name": "%s",
  "platforms": [
    {
      "name": "Amazon",
      "price": "₹XX,XXX",
      "rating": "4.3/5",
      "delivery": "Free delivery by Tomorrow",
      "offer": "10%% instant discount with SBI Credit Card",
      "link": "%s"
    },
    {
      "name": "Flipkart",
      "price": "₹XX,XXX",
      "rating": "4.5/5",
      "delivery": "Free delivery",
      "offer": "Extra ₹1000 off on HDFC Cards",
      "link": "%s"
    },
    {
      "name": "Meesho",
      "price": "₹XX,XXX",
      "rating": "4.2/5",
      "delivery": "Free delivery",
      "offer": "Lowest price guarantee",
      "link": "%s"
    },
    {
      "name": "Myntra",
      "price": "₹XX,XXX",
      "rating": "4.4/5",
      "delivery": "Free delivery on orders above ₹999",
      "offer": "Extra 10%% off on prepaid orders",
      "link": "%s"
    }
  ]
}`, query, amazonSearchLink(query), flipkartSearchLink(query), meeshoSearchLink(query), myntraListingLink(query))
}

// BuildComparisonPrompt builds the structured price-comparison prompt for a
// product query. The platform set in the prompt must agree with the
// classifier's decision so live and mock results never disagree on platforms.
func BuildComparisonPrompt(query string, isElectronics bool) string {
	platformsPrompt := generalPlatformsTemplate(query)
	if isElectronics {
		platformsPrompt = electronicsPlatformsTemplate(query)
	}

	return fmt.Sprintf(`You are a price comparison AI for Indian e-commerce platforms. Provide realistic market prices for the requested product.

Product: %s

CRITICAL PRICE FORMAT RULES:
- Prices MUST be in format: ₹XX,XXX (with rupee symbol and comma separators)
- Examples: ₹45,999 or ₹1,25,000 or ₹12,499
- NEVER use decimal points, NEVER use words like "around" or "approximately"
- Use realistic 2024-2025 Indian market prices

%s

Replace XX,XXX with realistic numeric prices. Vary prices slightly across platforms (±5-15%%).

RESPOND WITH ONLY THE JSON - NO MARKDOWN, NO CODE BLOCKS, NO EXPLANATIONS.`, query, platformsPrompt)
}

// BuildChatPrompt wraps a user message in the shopping-assistant persona
func BuildChatPrompt(message string) string {
	return fmt.Sprintf(`You are SmartShop AI, a helpful shopping assistant that helps users find the best deals on products in India. When users ask about products, provide information about prices on Amazon, Flipkart, Meesho, and Myntra. Be concise, helpful, and focus on saving users money. Format your responses clearly with prices, platforms, and recommendations.

User message: %s`, message)
}
