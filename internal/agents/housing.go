package agents

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/xizzxy/NextMove/internal/ai"
	"github.com/xizzxy/NextMove/internal/metrics"
	"github.com/xizzxy/NextMove/internal/plan"
	"github.com/xizzxy/NextMove/internal/profile"
	"github.com/xizzxy/NextMove/internal/ranking"
	"github.com/xizzxy/NextMove/internal/scoring"
)

// rawListing is the shape listings arrive in, from the model or from the
// fallback table, before scoring.
type rawListing struct {
	Address        string   `mapstructure:"address"`
	Rent           int      `mapstructure:"rent"`
	MinCreditScore int      `mapstructure:"min_credit_score"`
	Amenities      []string `mapstructure:"amenities"`
	Lat            float64  `mapstructure:"lat"`
	Lng            float64  `mapstructure:"lng"`
}

// Housing generates and ranks apartment listings. It runs after finance and
// lifestyle so listings can be steered toward the recommended rent and the
// best-fitting neighborhoods.
func Housing(ctx context.Context, deps Deps, prof profile.Profile, finance plan.FinanceResult, lifestyle plan.LifestyleResult) plan.HousingResult {
	raws := sourceListings(ctx, deps, prof, lifestyle)

	raws = ranking.PadTo(raws, housingListingCount, func(i int) rawListing {
		return syntheticListing(prof.City, prof.Budget, i)
	})

	rents := make([]int, len(raws))
	for i, r := range raws {
		rents[i] = r.Rent
	}
	rents = ranking.UniqueRents(rents)

	listings := make([]plan.Listing, len(raws))
	for i, r := range raws {
		listing := plan.Listing{
			Address:        r.Address,
			Rent:           rents[i],
			MinCreditScore: r.MinCreditScore,
			Amenities:      r.Amenities,
			Coords:         plan.Coordinates{Lat: r.Lat, Lng: r.Lng},
		}
		score, reason := scoring.Housing(listing, prof, finance.Affordability.RecommendedMaxRent, deps.Tables)
		listing.MatchScore = score
		listing.Reason = reason
		listings[i] = listing
	}

	return plan.HousingResult{
		Listings: ranking.TopN(listings, housingListingCount, func(l plan.Listing) int { return l.MatchScore }),
	}
}

func sourceListings(ctx context.Context, deps Deps, prof profile.Profile, lifestyle plan.LifestyleResult) []rawListing {
	if deps.AI == nil {
		return fallbackListings(prof.City, prof.Budget)
	}

	raw, err := deps.AI.GenerateContent(ctx, housingPrompt(prof, lifestyle), ai.Options{
		Temperature:     0.5,
		MaxOutputTokens: 1000,
		JSON:            true,
	})
	if err == nil {
		var listings []rawListing
		if listings, err = decodeList[rawListing](raw, "listings"); err == nil {
			cleaned := listings[:0]
			for _, l := range listings {
				if strings.TrimSpace(l.Address) == "" || l.Rent <= 0 {
					continue
				}
				cleaned = append(cleaned, l)
			}
			if len(cleaned) > 0 {
				return cleaned
			}
			err = fmt.Errorf("no usable listings in response")
		}
	}

	deps.logger().Warn("listing generation failed, using fallback", zap.Error(err))
	metrics.DomainFallbacks.WithLabelValues("housing", "ai").Inc()
	return fallbackListings(prof.City, prof.Budget)
}

func housingPrompt(prof profile.Profile, lifestyle plan.LifestyleResult) string {
	var neighborhoods []string
	if lifestyle.PrimaryFit != nil {
		neighborhoods = append(neighborhoods, lifestyle.PrimaryFit.Name)
	}
	for _, n := range lifestyle.Alternatives {
		neighborhoods = append(neighborhoods, n.Name)
	}
	target := "any neighborhood"
	if len(neighborhoods) > 0 {
		target = strings.Join(neighborhoods, ", ")
	}

	interests := "general"
	if len(prof.Interests) > 0 {
		interests = strings.Join(prof.Interests, ", ")
	}

	return fmt.Sprintf(`Generate 5 realistic apartment listings in %s.
Target neighborhoods: %s.
Rent between $%d and $%d per month.
The renter's interests are: %s. Include amenities that match where plausible.

Respond with ONLY a JSON object in this exact format:
{"listings": [{"address": "123 Main St, %s", "rent": 1500, "min_credit_score": 650, "amenities": ["gym", "pool"], "lat": 29.76, "lng": -95.36}]}`,
		prof.City, target, prof.Budget-300, prof.Budget+500, interests, prof.City)
}
