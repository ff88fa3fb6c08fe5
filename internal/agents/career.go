package agents

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/xizzxy/NextMove/internal/ai"
	"github.com/xizzxy/NextMove/internal/jobsearch"
	"github.com/xizzxy/NextMove/internal/metrics"
	"github.com/xizzxy/NextMove/internal/plan"
	"github.com/xizzxy/NextMove/internal/profile"
	"github.com/xizzxy/NextMove/internal/ranking"
	"github.com/xizzxy/NextMove/internal/scoring"
)

const (
	recruiterTargetCount = 3
	skillsPerJob         = 5
)

type rawJob struct {
	Title       string   `mapstructure:"title"`
	Company     string   `mapstructure:"company"`
	Location    string   `mapstructure:"location"`
	SalaryRange string   `mapstructure:"salary_range"`
	Skills      []string `mapstructure:"skills"`
}

// Career ranks job matches and prepares recruiter outreach for the top
// companies. Candidates come from the job board first, then the AI
// collaborator, then the static fallback.
func Career(ctx context.Context, deps Deps, prof profile.Profile) plan.CareerResult {
	jit := scoring.NewJitter(scoring.Seed(prof.City, prof.CareerPath, "career"))

	matches := sourceJobs(ctx, deps, prof)

	matches = ranking.PadTo(matches, careerJobCount, func(i int) plan.JobMatch {
		return toJobMatch(syntheticJob(prof.City, i))
	})

	salaryRanges := make([]string, len(matches))
	for i, m := range matches {
		salaryRanges[i] = m.SalaryRange
	}
	salaryRanges = ranking.UniqueSalaryRanges(salaryRanges, jit)

	scores := make([]int, len(matches))
	for i := range matches {
		matches[i].SalaryRange = salaryRanges[i]
		score, reasons := scoring.Career(matches[i], prof, deps.Tables, jit)
		scores[i] = score
		matches[i].Reason = strings.Join(reasons, "; ")
	}
	scores = ranking.UniqueScores(scores)
	for i := range matches {
		matches[i].MatchScore = scores[i]
	}

	ranked := ranking.TopN(matches, careerJobCount, func(m plan.JobMatch) int { return m.MatchScore })

	targets := recruiterTargets(ranked)

	return plan.CareerResult{
		JobMatches:       ranked,
		RecruiterTargets: targets,
		EmailDrafts:      emailDrafts(targets, prof),
	}
}

func sourceJobs(ctx context.Context, deps Deps, prof profile.Profile) []plan.JobMatch {
	query := prof.CareerPath
	if query == "" {
		query = "software"
	}

	if deps.Jobs != nil {
		jobs, err := deps.Jobs.SearchJobs(ctx, query, jobsearch.SearchParams{
			Location:   prof.City,
			MaxResults: careerJobCount,
		})
		if err == nil && len(jobs) > 0 {
			matches := make([]plan.JobMatch, len(jobs))
			for i, j := range jobs {
				matches[i] = toJobMatch(j)
			}
			return matches
		}
		if err != nil {
			deps.logger().Warn("job search failed, trying generated jobs",
				zap.String("query", query),
				zap.Error(err),
			)
			metrics.DomainFallbacks.WithLabelValues("career", "jobs").Inc()
		}
	}

	if matches := generatedJobs(ctx, deps, prof, query); len(matches) > 0 {
		return matches
	}

	jobs := fallbackJobs(prof.City)
	matches := make([]plan.JobMatch, len(jobs))
	for i, j := range jobs {
		matches[i] = toJobMatch(j)
	}
	return matches
}

func generatedJobs(ctx context.Context, deps Deps, prof profile.Profile, query string) []plan.JobMatch {
	if deps.AI == nil {
		return nil
	}

	prompt := fmt.Sprintf(`Generate %d realistic current job openings in %s for a "%s" career path with %d years of experience.

Respond with ONLY a JSON object in this exact format:
{"jobs": [{"title": "Frontend Engineer", "company": "PixelForge", "location": "%s", "salary_range": "$85,000 - $115,000", "skills": ["react", "typescript"]}]}`,
		careerJobCount, prof.City, query, prof.ExperienceYears, prof.City)

	raw, err := deps.AI.GenerateContent(ctx, prompt, ai.Options{
		Temperature:     0.6,
		MaxOutputTokens: 1200,
		JSON:            true,
	})
	if err == nil {
		var jobs []rawJob
		if jobs, err = decodeList[rawJob](raw, "jobs"); err == nil {
			matches := make([]plan.JobMatch, 0, len(jobs))
			for _, j := range jobs {
				if strings.TrimSpace(j.Title) == "" || strings.TrimSpace(j.Company) == "" {
					continue
				}
				location := j.Location
				if location == "" {
					location = prof.City
				}
				matches = append(matches, plan.JobMatch{
					Title:       j.Title,
					Company:     j.Company,
					Skills:      j.Skills,
					Location:    location,
					SalaryRange: j.SalaryRange,
				})
			}
			if len(matches) > 0 {
				return matches
			}
			err = fmt.Errorf("no usable jobs in response")
		}
	}

	deps.logger().Warn("job generation failed, using fallback", zap.Error(err))
	metrics.DomainFallbacks.WithLabelValues("career", "ai").Inc()
	return nil
}

func toJobMatch(j jobsearch.Job) plan.JobMatch {
	salaryRange := ""
	if j.SalaryMin > 0 && j.SalaryMax > 0 {
		salaryRange = scoring.FormatSalaryRange(int(j.SalaryMin), int(j.SalaryMax))
	}

	skills := scoring.Tokens(j.Description)
	if len(skills) > skillsPerJob {
		skills = skills[:skillsPerJob]
	}

	return plan.JobMatch{
		Title:       j.Title,
		Company:     j.Company,
		Skills:      skills,
		Location:    j.Location,
		SalaryRange: salaryRange,
	}
}

// recruiterTargets picks the top-ranked distinct companies.
func recruiterTargets(matches []plan.JobMatch) []plan.RecruiterTarget {
	targets := make([]plan.RecruiterTarget, 0, recruiterTargetCount)
	seen := make(map[string]struct{}, recruiterTargetCount)

	for _, m := range matches {
		if len(targets) == recruiterTargetCount {
			break
		}
		key := strings.ToLower(m.Company)
		if _, dup := seen[key]; dup || key == "" {
			continue
		}
		seen[key] = struct{}{}
		targets = append(targets, plan.RecruiterTarget{Company: m.Company, Role: m.Title})
	}

	return targets
}

func emailDrafts(targets []plan.RecruiterTarget, prof profile.Profile) []plan.EmailDraft {
	name := prof.Name
	if name == "" {
		name = "A relocating candidate"
	}

	drafts := make([]plan.EmailDraft, len(targets))
	for i, target := range targets {
		drafts[i] = plan.EmailDraft{
			To:      recruiterAddress(target.Company),
			Subject: fmt.Sprintf("Interest in %s – relocating to %s", target.Role, prof.City),
			Body: fmt.Sprintf(
				"Hi,\n\nI'm %s, relocating to %s, and the %s opening at %s caught my eye. My background in %s with %d years of experience lines up well with the role. I'd love to set up a short call.\n\nBest,\n%s",
				name, prof.City, target.Role, target.Company, prof.CareerPath, prof.ExperienceYears, name,
			),
		}
	}

	return drafts
}

func recruiterAddress(company string) string {
	domain := strings.ToLower(strings.TrimSpace(company))
	domain = strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, domain)
	if domain == "" {
		domain = "careers"
	}
	return fmt.Sprintf("recruiter@%s.com", domain)
}
