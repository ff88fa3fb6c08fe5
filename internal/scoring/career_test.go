package scoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xizzxy/NextMove/internal/plan"
	"github.com/xizzxy/NextMove/internal/profile"
)

func testProfile() profile.Profile {
	return profile.Normalize(profile.Profile{
		City:       "Houston, TX",
		Budget:     1800,
		CreditBand: "good",
		CareerPath: "Software Engineer",
		Salary:     72000,
	})
}

func TestCareerRelevanceTitleSubstring(t *testing.T) {
	rel, _ := careerRelevance("Senior Software Engineer", "Software Engineer", DefaultTables())
	assert.Equal(t, float64(100), rel)

	// Reverse containment counts too.
	rel, _ = careerRelevance("Engineer", "Software Engineer Backend Systems Engineer", DefaultTables())
	assert.Equal(t, float64(100), rel)
}

func TestCareerRelevanceTokenOverlap(t *testing.T) {
	// "Data Engineer" vs "Software Engineer": one common token out of two.
	rel, _ := careerRelevance("Data Engineer", "Software Engineer", DefaultTables())
	assert.InDelta(t, 80, rel, 0.001) // 60 + 40*(1/2)
}

func TestCareerRelevanceGenericRole(t *testing.T) {
	rel, _ := careerRelevance("Project Manager", "Veterinarian", DefaultTables())
	assert.Equal(t, float64(70), rel)

	rel, _ = careerRelevance("Chef de Partie", "Veterinarian", DefaultTables())
	assert.Equal(t, float64(50), rel)
}

func TestCareerRelevanceEmptyCareerPath(t *testing.T) {
	// An empty career path must not trip the substring shortcut.
	rel, _ := careerRelevance("Line Cook", "", DefaultTables())
	assert.Equal(t, float64(50), rel)
}

func TestSalaryScore(t *testing.T) {
	// No range or no target: neutral.
	s, _ := salaryScore("", 72000)
	assert.Equal(t, float64(50), s)
	s, _ = salaryScore("$60,000 - $80,000", 0)
	assert.Equal(t, float64(50), s)

	// Midpoint equals target: base 60.
	s, _ = salaryScore("$62,000 - $82,000", 72000)
	assert.InDelta(t, 60, s, 0.001)

	// Midpoint 1.5x target caps the bonus.
	s, _ = salaryScore("$108,000 - $108,000", 72000)
	assert.InDelta(t, 100, s, 0.001)

	// Below target scales down with a floor of 20.
	s, _ = salaryScore("$30,000 - $42,000", 72000)
	assert.InDelta(t, 30, s, 0.001) // (36000/72000)*60
	s, _ = salaryScore("$1,000 - $2,000", 72000)
	assert.Equal(t, float64(20), s)
}

func TestLocationScore(t *testing.T) {
	s, _ := locationScore("Houston", "Houston, TX")
	assert.Equal(t, float64(90), s)
	s, _ = locationScore("Dallas, TX", "Houston, TX")
	assert.Equal(t, float64(50), s)
}

func TestCareerScoreBoundsFuzzed(t *testing.T) {
	jit := NewJitter(42)
	titles := []string{"", "Engineer", "Senior Software Engineer", "Baker", "A B C D E F G"}
	salaries := []string{"", "nonsense", "10k-20k", "$500,000 - $900,000", "72000"}
	locations := []string{"", "Houston", "Remote", "Houston, TX, USA"}

	p := testProfile()
	for _, title := range titles {
		for _, sal := range salaries {
			for _, loc := range locations {
				job := plan.JobMatch{Title: title, SalaryRange: sal, Location: loc}
				score, reasons := Career(job, p, DefaultTables(), jit)
				require.GreaterOrEqual(t, score, 0, "job %+v", job)
				require.LessOrEqual(t, score, 100, "job %+v", job)
				require.LessOrEqual(t, len(reasons), 3)
			}
		}
	}
}

func TestCareerScoreIdempotentWithinJitter(t *testing.T) {
	p := testProfile()
	job := plan.JobMatch{Title: "Software Engineer", SalaryRange: "$70,000 - $90,000", Location: "Houston"}

	first, _ := Career(job, p, DefaultTables(), NewJitter(1))
	second, _ := Career(job, p, DefaultTables(), NewJitter(2))
	assert.InDelta(t, first, second, 4) // both draws are within +-2

	// Same seed reproduces exactly.
	a, _ := Career(job, p, DefaultTables(), NewJitter(7))
	b, _ := Career(job, p, DefaultTables(), NewJitter(7))
	assert.Equal(t, a, b)
}

func TestParseSalaryRange(t *testing.T) {
	cases := []struct {
		in     string
		lo, hi int
		ok     bool
	}{
		{"$48,000 - $72,000", 48000, 72000, true},
		{"48k-72k", 48000, 72000, true},
		{"72000", 72000, 72000, true},
		{"$90,000 to $60,000", 60000, 90000, true},
		{"competitive", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%q", tc.in), func(t *testing.T) {
			lo, hi, ok := ParseSalaryRange(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.lo, lo)
			assert.Equal(t, tc.hi, hi)
		})
	}
}

func TestFormatSalaryRange(t *testing.T) {
	assert.Equal(t, "$48,000 - $72,000", FormatSalaryRange(48000, 72000))
	assert.Equal(t, "$900 - $1,200", FormatSalaryRange(900, 1200))
}
