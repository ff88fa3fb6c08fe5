// Package scoring implements the per-domain match score formulas. All scores
// are integers in [0,100]; empty-input divisions short-circuit to documented
// neutral values instead of failing.
package scoring

import (
	"hash/fnv"
	"math"
	"math/rand"
	"strings"
)

// Tables carries the keyword lookup tables used by the scorers. They are
// plain configuration so the mappings stay testable and extensible.
type Tables struct {
	// GenericRoles are title keywords that grant a baseline career relevance
	// when no direct token overlap exists.
	GenericRoles []string
	// LocationKeywords mark an address as prime location for housing.
	LocationKeywords []string
}

// DefaultTables returns the built-in keyword tables.
func DefaultTables() Tables {
	return Tables{
		GenericRoles:     []string{"engineer", "developer", "analyst", "manager"},
		LocationKeywords: []string{"downtown", "center"},
	}
}

// Jitter is a per-request deterministic random source used for tie-breaking.
// It is explicitly seeded so repeated runs over the same profile reproduce the
// same ordering.
type Jitter struct {
	rng *rand.Rand
}

// NewJitter returns a jitter source seeded with the given value.
func NewJitter(seed int64) *Jitter {
	return &Jitter{rng: rand.New(rand.NewSource(seed))}
}

// Offset returns a tie-breaking offset in [-2, 2]. A nil jitter yields 0.
func (j *Jitter) Offset() float64 {
	if j == nil {
		return 0
	}
	return float64(j.rng.Intn(5) - 2)
}

// Percent returns a small percentage in [1, n]. A nil jitter yields 1.
func (j *Jitter) Percent(n int) int {
	if j == nil || n <= 1 {
		return 1
	}
	return 1 + j.rng.Intn(n)
}

// Hash64 returns a stable FNV-1a hash of the joined parts. Used to seed
// jitter and to derive reproducible synthetic records.
func Hash64(parts ...string) uint64 {
	h := fnv.New64a()
	for i, part := range parts {
		if i > 0 {
			h.Write([]byte{0})
		}
		h.Write([]byte(strings.ToLower(strings.TrimSpace(part))))
	}
	return h.Sum64()
}

// Seed derives a jitter seed for one domain of one request.
func Seed(city, career, domain string) int64 {
	return int64(Hash64(city, career, domain))
}

// Clamp bounds a raw score to [0,100] and floors it to an integer.
func Clamp(raw float64) int {
	if raw < 0 {
		return 0
	}
	if raw > 100 {
		return 100
	}
	return int(math.Floor(raw))
}

// Tokens splits s into lowercased whitespace tokens.
func Tokens(s string) []string {
	return strings.Fields(strings.ToLower(s))
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

func countCommon(a, b map[string]struct{}) int {
	common := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			common++
		}
	}
	return common
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
