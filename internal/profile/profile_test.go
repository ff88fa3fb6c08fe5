package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandFromScoreBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{740, BandExcellent},
		{739, BandGood},
		{670, BandGood},
		{669, BandFair},
		{580, BandFair},
		{579, BandPoor},
		{300, BandPoor},
		{850, BandExcellent},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, BandFromScore(tc.score), "score %d", tc.score)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	got := Normalize(Profile{
		City:            "  Houston, TX  ",
		Budget:          1800,
		ExperienceYears: -3,
		Salary:          -1,
	})

	assert.Equal(t, "Houston, TX", got.City)
	assert.Equal(t, BandFair, got.CreditBand)
	assert.Equal(t, 0, got.ExperienceYears)
	assert.Equal(t, 0, got.Salary)
	assert.NotNil(t, got.Interests)
	assert.Empty(t, got.Interests)
}

func TestNormalizeDerivesBandFromScore(t *testing.T) {
	got := Normalize(Profile{City: "Austin", CreditScore: 720})
	assert.Equal(t, BandGood, got.CreditBand)

	// An explicit band wins over the numeric score.
	got = Normalize(Profile{City: "Austin", CreditBand: "Poor", CreditScore: 800})
	assert.Equal(t, BandPoor, got.CreditBand)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	p := Normalize(Profile{
		City:        "Denver",
		CreditScore: 600,
		Interests:   []string{" gym ", "", "vegan"},
	})
	assert.Equal(t, p, Normalize(p))
	assert.Equal(t, []string{"gym", "vegan"}, p.Interests)
}

func TestCreditEstimate(t *testing.T) {
	assert.Equal(t, 750, CreditEstimate("excellent"))
	assert.Equal(t, 700, CreditEstimate("good"))
	assert.Equal(t, 650, CreditEstimate("fair"))
	assert.Equal(t, 600, CreditEstimate("poor"))
	assert.Equal(t, 650, CreditEstimate("unknown"))
}

func TestHobbyTokens(t *testing.T) {
	p := Profile{
		Hobbies:   "climbing, painting",
		Interests: []string{"vegan", "Gym"},
	}
	assert.Equal(t, []string{"climbing", "painting", "vegan", "gym"}, HobbyTokens(p))

	assert.Empty(t, HobbyTokens(Profile{}))
}
