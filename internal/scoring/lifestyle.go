package scoring

import (
	"strings"

	"github.com/xizzxy/NextMove/internal/plan"
)

const (
	placeInterestWeight = 0.7
	placeDistanceWeight = 0.3

	// Distance falloff: full marks within 1 km of the city center, linear to
	// zero at 20 km.
	placeNearKm = 1.0
	placeFarKm  = 20.0
)

// Place scores a point of interest against the user's interests and its
// distance from the city center. pos is the candidate's position in the
// original list and feeds a small tie-breaking offset.
func Place(pl plan.Place, interests []string, pos int, jit *Jitter) (int, []string) {
	relevance, common := interestRelevance(interests, pl.Tags)
	distance := distanceScore(pl.DistanceKm)

	raw := placeInterestWeight*relevance +
		placeDistanceWeight*distance +
		jit.Offset() - float64(pos%3)

	var reasons []string
	if common > 0 {
		reasons = append(reasons, "matches your interests")
	}
	if pl.DistanceKm <= 5 {
		reasons = append(reasons, "close to the city center")
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "popular spot in the area")
	}

	return Clamp(raw), reasons
}

// interestRelevance is the Jaccard-style overlap between interest tokens and
// category tag tokens, scaled to 0..100. With no interest tokens the score is
// a neutral 50.
func interestRelevance(interests, tags []string) (float64, int) {
	interestTokens := make(map[string]struct{})
	for _, interest := range interests {
		for _, tok := range Tokens(interest) {
			interestTokens[tok] = struct{}{}
		}
	}
	if len(interestTokens) == 0 {
		return 50, 0
	}

	tagTokens := make(map[string]struct{})
	for _, tag := range tags {
		for _, tok := range Tokens(strings.ReplaceAll(tag, "_", " ")) {
			tagTokens[tok] = struct{}{}
		}
	}

	common := countCommon(interestTokens, tagTokens)
	union := len(interestTokens) + len(tagTokens) - common
	if union == 0 {
		return 50, 0
	}

	return 100 * float64(common) / float64(union), common
}

func distanceScore(km float64) float64 {
	switch {
	case km <= placeNearKm:
		return 100
	case km >= placeFarKm:
		return 0
	default:
		return 100 * (placeFarKm - km) / (placeFarKm - placeNearKm)
	}
}

// NeighborhoodFit is the fallback-path neighborhood score: the share of the
// user's hobby tokens found among the neighborhood tags, scaled to 0..100.
// With no hobby tokens it returns the neutral 30.
func NeighborhoodFit(n plan.Neighborhood, hobbyTokens []string) int {
	if len(hobbyTokens) == 0 {
		return 30
	}

	tags := make(map[string]struct{}, len(n.Tags))
	for _, tag := range n.Tags {
		tags[strings.ToLower(tag)] = struct{}{}
	}

	matched := 0
	for _, tok := range hobbyTokens {
		if _, ok := tags[strings.ToLower(tok)]; ok {
			matched++
		}
	}

	return Clamp(100 * float64(matched) / float64(len(hobbyTokens)))
}
