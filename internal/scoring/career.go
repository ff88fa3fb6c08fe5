package scoring

import (
	"strings"

	"github.com/xizzxy/NextMove/internal/plan"
	"github.com/xizzxy/NextMove/internal/profile"
)

// Career weights: relevance dominates, salary fit second, location last.
const (
	careerRelevanceWeight = 0.6
	careerSalaryWeight    = 0.25
	careerLocationWeight  = 0.15
)

// Career scores a job match against the profile. Reasons are ordered by
// contributing weight, at most three.
func Career(job plan.JobMatch, p profile.Profile, tables Tables, jit *Jitter) (int, []string) {
	relevance, relevanceReason := careerRelevance(job.Title, p.CareerPath, tables)
	salary, salaryReason := salaryScore(job.SalaryRange, p.Salary)
	location, locationReason := locationScore(job.Location, p.City)

	raw := careerRelevanceWeight*relevance +
		careerSalaryWeight*salary +
		careerLocationWeight*location +
		jit.Offset()

	reasons := []string{relevanceReason, salaryReason, locationReason}
	if len(reasons) > 3 {
		reasons = reasons[:3]
	}

	return Clamp(raw), reasons
}

func careerRelevance(title, career string, tables Tables) (float64, string) {
	if career != "" && (containsFold(title, career) || containsFold(career, title)) {
		return 100, "title matches your career path"
	}

	titleTokens := tokenSet(Tokens(title))
	careerTokens := tokenSet(Tokens(career))
	if len(titleTokens) > 0 && len(careerTokens) > 0 {
		common := countCommon(titleTokens, careerTokens)
		if common > 0 {
			denom := len(titleTokens)
			if len(careerTokens) > denom {
				denom = len(careerTokens)
			}
			ratio := float64(common) / float64(denom)
			return 60 + 40*ratio, "overlaps with your career keywords"
		}
	}

	for _, role := range tables.GenericRoles {
		if containsFold(title, role) {
			return 70, "related technical role"
		}
	}

	return 50, "outside your stated career path"
}

func salaryScore(salaryRange string, target int) (float64, string) {
	lo, hi, ok := ParseSalaryRange(salaryRange)
	if !ok || target <= 0 {
		return 50, "salary details unavailable"
	}

	midpoint := float64(lo+hi) / 2
	ratio := midpoint / float64(target)

	if midpoint >= float64(target) {
		if ratio > 1.5 {
			ratio = 1.5
		}
		score := 60 + (ratio-1)*80
		if score > 100 {
			score = 100
		}
		return score, "pay at or above your target"
	}

	score := ratio * 60
	if score < 20 {
		score = 20
	}
	return score, "pay below your target"
}

func locationScore(jobLocation, city string) (float64, string) {
	if cityMatches(jobLocation, city) {
		return 90, "located in your destination city"
	}
	return 50, "outside your destination city"
}

// cityMatches compares case-insensitively and tolerates state suffixes such
// as "Houston, TX" vs "Houston".
func cityMatches(candidate, city string) bool {
	candidate = normalizeCity(candidate)
	city = normalizeCity(city)
	if candidate == "" || city == "" {
		return false
	}
	return candidate == city || containsFold(candidate, city) || containsFold(city, candidate)
}

func normalizeCity(s string) string {
	if i := strings.IndexByte(s, ','); i >= 0 {
		s = s[:i]
	}
	return strings.ToLower(strings.TrimSpace(s))
}
