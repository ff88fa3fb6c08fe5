package profile

import "strings"

// Credit bands recognized by the planner. Any unknown value is resolved to
// BandFair during normalization.
const (
	BandExcellent = "excellent"
	BandGood      = "good"
	BandFair      = "fair"
	BandPoor      = "poor"
)

// Profile is the user intake record. It is built once per request and treated
// as read-only by every downstream stage.
type Profile struct {
	Name            string   `json:"name,omitempty" mapstructure:"name"`
	City            string   `json:"city" mapstructure:"city"`
	Budget          int      `json:"budget" mapstructure:"budget"`
	CreditBand      string   `json:"credit_band,omitempty" mapstructure:"credit_band"`
	CreditScore     int      `json:"credit_score,omitempty" mapstructure:"credit_score"`
	Interests       []string `json:"interests,omitempty" mapstructure:"interests"`
	Lifestyle       string   `json:"lifestyle,omitempty" mapstructure:"lifestyle"`
	Hobbies         string   `json:"hobbies,omitempty" mapstructure:"hobbies"`
	CareerPath      string   `json:"career_path,omitempty" mapstructure:"career_path"`
	ExperienceYears int      `json:"experience_years,omitempty" mapstructure:"experience_years"`
	Salary          int      `json:"salary,omitempty" mapstructure:"salary"`
}

// Normalize fills gaps so that scoring never sees an unresolved field. It only
// defaults, it does not validate: a profile can always be normalized.
func Normalize(p Profile) Profile {
	p.City = strings.TrimSpace(p.City)
	p.Name = strings.TrimSpace(p.Name)
	p.CareerPath = strings.TrimSpace(p.CareerPath)

	band := strings.ToLower(strings.TrimSpace(p.CreditBand))
	switch band {
	case BandExcellent, BandGood, BandFair, BandPoor:
		p.CreditBand = band
	default:
		if p.CreditScore > 0 {
			p.CreditBand = BandFromScore(p.CreditScore)
		} else {
			p.CreditBand = BandFair
		}
	}

	if p.ExperienceYears < 0 {
		p.ExperienceYears = 0
	}
	if p.Salary < 0 {
		p.Salary = 0
	}

	if p.Interests == nil {
		p.Interests = []string{}
	}
	cleaned := p.Interests[:0]
	for _, interest := range p.Interests {
		if interest = strings.TrimSpace(interest); interest != "" {
			cleaned = append(cleaned, interest)
		}
	}
	p.Interests = cleaned

	return p
}

// BandFromScore maps a numeric credit score onto a band using fixed
// thresholds: >=740 excellent, >=670 good, >=580 fair, else poor.
func BandFromScore(score int) string {
	switch {
	case score >= 740:
		return BandExcellent
	case score >= 670:
		return BandGood
	case score >= 580:
		return BandFair
	default:
		return BandPoor
	}
}

// CreditEstimate converts a band back into the numeric proxy used by listing
// requirements checks.
func CreditEstimate(band string) int {
	switch strings.ToLower(strings.TrimSpace(band)) {
	case BandExcellent:
		return 750
	case BandGood:
		return 700
	case BandFair:
		return 650
	case BandPoor:
		return 600
	default:
		return 650
	}
}

// HobbyTokens returns the lowercased whitespace/comma-separated tokens from
// the hobbies and interests fields, deduplicated in input order.
func HobbyTokens(p Profile) []string {
	seen := make(map[string]struct{})
	var tokens []string

	add := func(raw string) {
		for _, tok := range strings.FieldsFunc(strings.ToLower(raw), func(r rune) bool {
			return r == ' ' || r == ',' || r == ';'
		}) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			tokens = append(tokens, tok)
		}
	}

	add(p.Hobbies)
	for _, interest := range p.Interests {
		add(interest)
	}

	return tokens
}
