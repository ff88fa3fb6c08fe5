package agents

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/xizzxy/NextMove/internal/ai"
	"github.com/xizzxy/NextMove/internal/metrics"
	"github.com/xizzxy/NextMove/internal/plan"
	"github.com/xizzxy/NextMove/internal/profile"
	"github.com/xizzxy/NextMove/internal/ranking"
	"github.com/xizzxy/NextMove/internal/scoring"
)

type rawNeighborhood struct {
	Name string   `mapstructure:"name"`
	Tags []string `mapstructure:"tags"`
}

// Lifestyle ranks neighborhoods by hobby/tag overlap and nearby points of
// interest by interest relevance and distance from the city center.
func Lifestyle(ctx context.Context, deps Deps, prof profile.Profile) plan.LifestyleResult {
	jit := scoring.NewJitter(scoring.Seed(prof.City, prof.CareerPath, "lifestyle"))

	neighborhoods := scoreNeighborhoods(sourceNeighborhoods(ctx, deps, prof), prof)
	ranked := ranking.TopN(neighborhoods, len(neighborhoods), func(n plan.Neighborhood) int { return n.MatchScore })

	result := plan.LifestyleResult{
		Places:      lifestylePlaces(ctx, deps, prof, jit),
		Explanation: "Ranked by keyword overlap between your interests and neighborhood tags.",
	}

	if len(ranked) > 0 {
		primary := ranked[0]
		result.PrimaryFit = &primary
	}
	rest := ranked
	if len(rest) > 1 {
		rest = rest[1:]
		if len(rest) > alternativeCount {
			rest = rest[:alternativeCount]
		}
		result.Alternatives = rest
	} else {
		result.Alternatives = []plan.Neighborhood{}
	}

	return result
}

func sourceNeighborhoods(ctx context.Context, deps Deps, prof profile.Profile) []plan.Neighborhood {
	candidates := fallbackNeighborhoods()

	if deps.AI != nil {
		prompt := fmt.Sprintf(`List 4 distinct neighborhoods of %s, each with 3 one-word lifestyle tags (for example "nightlife", "parks", "walkable").

Respond with ONLY a JSON object in this exact format:
{"neighborhoods": [{"name": "Downtown", "tags": ["nightlife", "gym", "walkable"]}]}`, prof.City)

		raw, err := deps.AI.GenerateContent(ctx, prompt, ai.Options{
			Temperature:     0.6,
			MaxOutputTokens: 600,
			JSON:            true,
		})
		if err == nil {
			var decoded []rawNeighborhood
			if decoded, err = decodeList[rawNeighborhood](raw, "neighborhoods"); err == nil && len(decoded) > 0 {
				candidates = candidates[:0]
				for _, n := range decoded {
					if strings.TrimSpace(n.Name) == "" {
						continue
					}
					candidates = append(candidates, plan.Neighborhood{Name: n.Name, Tags: n.Tags})
				}
			}
		}
		if err != nil || len(candidates) == 0 {
			deps.logger().Warn("neighborhood generation failed, using fallback", zap.Error(err))
			metrics.DomainFallbacks.WithLabelValues("lifestyle", "ai").Inc()
			candidates = fallbackNeighborhoods()
		}
	}

	// Always offer at least a primary fit plus two alternatives.
	if len(candidates) < 1+alternativeCount {
		seen := make(map[string]struct{}, len(candidates))
		for _, n := range candidates {
			seen[strings.ToLower(n.Name)] = struct{}{}
		}
		for _, n := range fallbackNeighborhoods() {
			if len(candidates) >= 1+alternativeCount {
				break
			}
			if _, dup := seen[strings.ToLower(n.Name)]; !dup {
				candidates = append(candidates, n)
			}
		}
	}

	return candidates
}

func scoreNeighborhoods(candidates []plan.Neighborhood, prof profile.Profile) []plan.Neighborhood {
	hobbies := profile.HobbyTokens(prof)

	scores := make([]int, len(candidates))
	for i, n := range candidates {
		scores[i] = scoring.NeighborhoodFit(n, hobbies)
	}
	scores = ranking.UniqueScores(scores)

	for i := range candidates {
		candidates[i].MatchScore = scores[i]
	}
	return candidates
}

func lifestylePlaces(ctx context.Context, deps Deps, prof profile.Profile, jit *scoring.Jitter) []plan.Place {
	candidates := sourcePlaces(ctx, deps, prof)

	for i := range candidates {
		score, reasons := scoring.Place(candidates[i], prof.Interests, i, jit)
		candidates[i].MatchScore = score
		candidates[i].Reason = strings.Join(reasons, ", ")
	}

	candidates = ranking.PadTo(candidates, lifestylePlaceCount, func(i int) plan.Place {
		pl := syntheticPlace(prof.City, prof.Interests, i)
		score, reasons := scoring.Place(pl, prof.Interests, i, jit)
		pl.MatchScore = score
		pl.Reason = strings.Join(reasons, ", ")
		return pl
	})

	scores := make([]int, len(candidates))
	for i, pl := range candidates {
		scores[i] = pl.MatchScore
	}
	scores = ranking.UniqueScores(scores)
	for i := range candidates {
		candidates[i].MatchScore = scores[i]
	}

	return ranking.TopN(candidates, lifestylePlaceCount, func(pl plan.Place) int { return pl.MatchScore })
}

func sourcePlaces(ctx context.Context, deps Deps, prof profile.Profile) []plan.Place {
	if deps.Places == nil {
		return nil
	}

	queries := make([]string, 0, 3)
	for _, interest := range prof.Interests {
		if len(queries) == 3 {
			break
		}
		queries = append(queries, fmt.Sprintf("%s in %s", interest, prof.City))
	}
	if len(queries) == 0 {
		queries = append(queries, fmt.Sprintf("popular attractions in %s", prof.City))
	}

	var collected []plan.Place
	for _, query := range queries {
		results, err := deps.Places.TextSearch(ctx, query)
		if err != nil {
			deps.logger().Warn("places search failed, using fallback",
				zap.String("query", query),
				zap.Error(err),
			)
			metrics.DomainFallbacks.WithLabelValues("lifestyle", "places").Inc()
			continue
		}
		for _, r := range results {
			collected = append(collected, plan.Place{
				Name:   r.Name,
				Tags:   r.Tags,
				Coords: plan.Coordinates{Lat: r.Lat, Lng: r.Lng},
			})
		}
	}

	fillDistances(collected)
	return collected
}

// fillDistances computes each place's distance from the city center, taken
// as the centroid of the result set.
func fillDistances(places []plan.Place) {
	if len(places) == 0 {
		return
	}

	var center plan.Coordinates
	for _, pl := range places {
		center.Lat += pl.Coords.Lat
		center.Lng += pl.Coords.Lng
	}
	center.Lat /= float64(len(places))
	center.Lng /= float64(len(places))

	for i := range places {
		places[i].DistanceKm = distanceKm(center, places[i].Coords)
	}
}

// distanceKm is an equirectangular approximation, good enough at city scale.
func distanceKm(a, b plan.Coordinates) float64 {
	const kmPerDegree = 111.0
	dLat := (b.Lat - a.Lat) * kmPerDegree
	dLng := (b.Lng - a.Lng) * kmPerDegree * math.Cos(a.Lat*math.Pi/180)
	return math.Sqrt(dLat*dLat + dLng*dLng)
}
