package usecase

import (
	"math/rand"
	"strconv"

	"github.com/smartshop/backend/internal/domain"
)

// Fixed per-platform price offsets on top of the random base price. The
// offsets keep the relative ordering stable across runs (Flipkart always
// cheapest) while the base varies.
const (
	amazonOffset   = 1000
	flipkartOffset = 0
	meeshoOffset   = 2000
	myntraOffset   = 3000
)

// GenerateMockComparison produces a demo ComparisonResult for a query. It is
// the pipeline's terminal fallback: no I/O, no failure mode. Shape is
// deterministic for a given isElectronics flag; only price magnitudes vary.
// DataSource and SearchedAt are left for the orchestrator, like the parser.
func GenerateMockComparison(query string, isElectronics bool) *domain.ComparisonResult {
	basePrice := rand.Intn(50000) + 10000

	allPlatforms := []domain.PlatformOffer{
		{
			Name:     PlatformAmazon,
			Price:    FormatINR(basePrice + amazonOffset),
			Rating:   "4.3/5",
			Delivery: "Free delivery in 2 days",
			Offer:    "10% instant discount with SBI Credit Card",
			Link:     amazonSearchLink(query),
		},
		{
			Name:     PlatformFlipkart,
			Price:    FormatINR(basePrice + flipkartOffset),
			Rating:   "4.5/5",
			Delivery: "Free delivery by Tomorrow",
			Offer:    "Bank Offer: ₹1000 off on HDFC Cards",
			Link:     flipkartSearchLink(query),
		},
		{
			Name:     PlatformMeesho,
			Price:    FormatINR(basePrice + meeshoOffset),
			Rating:   "4.2/5",
			Delivery: "Free delivery in 3-5 days",
			Offer:    "Extra 5% off on first order",
			Link:     meeshoSearchLink(query),
		},
		{
			Name:     PlatformMyntra,
			Price:    FormatINR(basePrice + myntraOffset),
			Rating:   "4.4/5",
			Delivery: "Free delivery in 3 days",
			Offer:    "Additional 10% off with app",
			Link:     myntraSearchLink(query),
		},
	}

	// Electronics queries are restricted to Amazon and Flipkart
	platforms := allPlatforms
	if isElectronics {
		platforms = allPlatforms[:2]
	}

	return &domain.ComparisonResult{
		ProductName: query,
		Platforms:   platforms,
	}
}

// FormatINR renders an amount with the rupee symbol and Indian digit grouping:
// the last three digits form one group, every group above that has two digits
// (125000 -> "₹1,25,000").
func FormatINR(amount int) string {
	digits := strconv.Itoa(amount)
	if len(digits) <= 3 {
		return "₹" + digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var grouped []string
	for len(head) > 2 {
		grouped = append([]string{head[len(head)-2:]}, grouped...)
		head = head[:len(head)-2]
	}
	grouped = append([]string{head}, grouped...)
	grouped = append(grouped, tail)

	result := "₹"
	for i, g := range grouped {
		if i > 0 {
			result += ","
		}
		result += g
	}
	return result
}
