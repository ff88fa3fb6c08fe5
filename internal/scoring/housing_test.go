package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xizzxy/NextMove/internal/plan"
	"github.com/xizzxy/NextMove/internal/profile"
)

func housingProfile() profile.Profile {
	return profile.Normalize(profile.Profile{
		City:       "Houston, TX",
		Budget:     1800,
		CreditBand: "good", // estimate 700
		Interests:  []string{"vegan", "gym"},
	})
}

func TestHousingAffordabilityComponents(t *testing.T) {
	p := housingProfile()
	tables := DefaultTables()

	cases := []struct {
		name    string
		listing plan.Listing
		want    int
	}{
		{
			name:    "within recommended budget and credit",
			listing: plan.Listing{Rent: 1500, MinCreditScore: 650},
			want:    40 + 25,
		},
		{
			name:    "within budget but above recommended",
			listing: plan.Listing{Rent: 1750, MinCreditScore: 650},
			want:    25 + 25,
		},
		{
			name:    "slightly above budget",
			listing: plan.Listing{Rent: 1900, MinCreditScore: 650},
			want:    15 + 25,
		},
		{
			name:    "far above budget",
			listing: plan.Listing{Rent: 3000, MinCreditScore: 650},
			want:    25,
		},
		{
			name:    "credit within 30 points below requirement",
			listing: plan.Listing{Rent: 1500, MinCreditScore: 720},
			want:    40 + 15,
		},
		{
			name:    "credit too low",
			listing: plan.Listing{Rent: 1500, MinCreditScore: 780},
			want:    40,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score, _ := Housing(tc.listing, p, 1700, tables)
			assert.Equal(t, tc.want, score)
		})
	}
}

func TestHousingAmenityOverlapAndLocation(t *testing.T) {
	p := housingProfile()
	listing := plan.Listing{
		Rent:           1500,
		MinCreditScore: 650,
		Amenities:      []string{"fitness gym", "vegan cafe downstairs"},
		Address:        "500 Downtown Ave, Houston, TX",
	}

	score, reason := Housing(listing, p, 1700, DefaultTables())
	// 40 afford + 25 credit + 16 amenities (2 matches * 8) + 10 location.
	assert.Equal(t, 91, score)
	assert.Contains(t, reason, "Good fit:")
}

func TestHousingAmenityComponentCapped(t *testing.T) {
	p := profile.Normalize(profile.Profile{
		City:       "Houston, TX",
		Budget:     1800,
		CreditBand: "excellent",
		Interests:  []string{"gym", "pool", "parking", "pets"},
	})
	listing := plan.Listing{
		Rent:           1500,
		MinCreditScore: 600,
		Amenities:      []string{"gym", "pool", "parking garage", "pet friendly"},
	}

	score, _ := Housing(listing, p, 1700, DefaultTables())
	// 4 matches would be 32; capped at 25.
	assert.Equal(t, 40+25+25, score)
}

func TestHousingScoreClampedTo100(t *testing.T) {
	p := housingProfile()
	listing := plan.Listing{
		Rent:           1000,
		MinCreditScore: 600,
		Amenities:      []string{"gym", "vegan market"},
		Address:        "1 City Center Plaza",
	}
	score, _ := Housing(listing, p, 1700, DefaultTables())
	assert.LessOrEqual(t, score, 100)
	assert.Equal(t, 40+25+16+10, score)
}

func TestHousingNoInterestsNeverPanics(t *testing.T) {
	p := profile.Normalize(profile.Profile{City: "Houston", Budget: 1800})
	score, _ := Housing(plan.Listing{Rent: 1500, MinCreditScore: 650}, p, 1700, DefaultTables())
	assert.Equal(t, 40+25, score)
}
