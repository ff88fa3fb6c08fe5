package scoring

import (
	"fmt"
	"strings"

	"github.com/xizzxy/NextMove/internal/plan"
	"github.com/xizzxy/NextMove/internal/profile"
)

// Housing scores a listing with the component sums: affordability (max 40),
// credit fit (max 25), lifestyle amenity overlap (max 25) and a prime
// location bonus (10). No jitter; the rent diversity pass breaks ties.
func Housing(listing plan.Listing, p profile.Profile, recommendedMaxRent int, tables Tables) (int, string) {
	score := 0
	var reasons []string

	switch {
	case listing.Rent <= p.Budget && listing.Rent <= recommendedMaxRent:
		score += 40
		reasons = append(reasons, "within recommended budget")
	case listing.Rent <= p.Budget:
		score += 25
		reasons = append(reasons, "within your budget")
	case float64(listing.Rent) <= float64(p.Budget)*1.1:
		score += 15
		reasons = append(reasons, "slightly above budget")
	}

	credit := profile.CreditEstimate(p.CreditBand)
	switch {
	case credit >= listing.MinCreditScore:
		score += 25
		reasons = append(reasons, "meets credit requirements")
	case credit >= listing.MinCreditScore-30:
		score += 15
		reasons = append(reasons, "close to credit requirements")
	}

	if matches := amenityMatches(p.Interests, listing.Amenities); matches > 0 {
		component := matches * 8
		if component > 25 {
			component = 25
		}
		score += component
		reasons = append(reasons, fmt.Sprintf("matches %d lifestyle preference(s)", matches))
	}

	for _, keyword := range tables.LocationKeywords {
		if containsFold(listing.Address, keyword) {
			score += 10
			reasons = append(reasons, "prime location")
			break
		}
	}

	if score > 100 {
		score = 100
	}
	if len(reasons) > 3 {
		reasons = reasons[:3]
	}

	return score, fmt.Sprintf("Good fit: %s.", strings.Join(reasons, ", "))
}

// amenityMatches counts interests that appear in at least one amenity, either
// as a substring or via a shared whitespace token.
func amenityMatches(interests, amenities []string) int {
	matches := 0
	for _, interest := range interests {
		interest = strings.ToLower(strings.TrimSpace(interest))
		if interest == "" {
			continue
		}
		words := strings.Fields(interest)
		for _, amenity := range amenities {
			amenity = strings.ToLower(amenity)
			if strings.Contains(amenity, interest) || anyWordIn(words, amenity) {
				matches++
				break
			}
		}
	}
	return matches
}

func anyWordIn(words []string, s string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
