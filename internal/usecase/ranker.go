package usecase

import (
	"log"
	"strconv"
	"strings"
	"unicode"

	"github.com/smartshop/backend/internal/domain"
)

// ParsePrice converts a currency-formatted price string into a numeric value.
// Layered strategy: strip the rupee symbol, thousands separators, and
// whitespace, then parse; failing that, concatenate every digit run in the
// string and parse that. Returns ErrPriceUnparseable when neither yields a
// positive number. Exported so the delivery layer never re-implements
// currency parsing.
func ParsePrice(price string) (float64, error) {
	stripped := strings.NewReplacer("₹", "", ",", "", " ", "").Replace(strings.TrimSpace(price))

	if value, err := strconv.ParseFloat(stripped, 64); err == nil && value > 0 {
		return value, nil
	}

	digits := extractDigits(price)
	if digits != "" {
		if value, err := strconv.ParseFloat(digits, 64); err == nil && value > 0 {
			return value, nil
		}
	}

	return 0, domain.ErrPriceUnparseable
}

// extractDigits concatenates every digit run in the string
func extractDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RankOffers tags the offer with the strictly lowest parsed price as the best
// deal and returns the tagged sequence plus a reference to the winner. The
// input slice is not modified. Offers whose price cannot be parsed are
// excluded from ranking but kept in the sequence untagged. Ties keep the
// first-encountered offer; zero parseable offers yield a nil best deal.
func RankOffers(offers []domain.PlatformOffer) ([]domain.PlatformOffer, *domain.PlatformOffer) {
	ranked := make([]domain.PlatformOffer, len(offers))
	copy(ranked, offers)

	bestIndex := -1
	lowestPrice := 0.0

	for i := range ranked {
		ranked[i].IsBestDeal = false

		price, err := ParsePrice(ranked[i].Price)
		if err != nil {
			log.Printf("[RANKER] Unparseable price for platform %s: %q", ranked[i].Name, ranked[i].Price)
			continue
		}

		if bestIndex == -1 || price < lowestPrice {
			bestIndex = i
			lowestPrice = price
		}
	}

	if bestIndex == -1 {
		return ranked, nil
	}

	ranked[bestIndex].IsBestDeal = true
	return ranked, &ranked[bestIndex]
}
