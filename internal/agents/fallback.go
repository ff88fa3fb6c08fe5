package agents

import (
	"fmt"

	"github.com/xizzxy/NextMove/internal/jobsearch"
	"github.com/xizzxy/NextMove/internal/plan"
	"github.com/xizzxy/NextMove/internal/scoring"
)

// Static fallback tables. Shapes match live provider data so a fallback
// response is indistinguishable from a live one.

func fallbackTips() []string {
	return []string{
		"Ask about deposit alternatives or payment schedules.",
		"Get renter's insurance quotes (<$20/mo for many).",
		"Schedule utility transfers two weeks before the move.",
	}
}

func fallbackNeighborhoods() []plan.Neighborhood {
	return []plan.Neighborhood{
		{Name: "Downtown", Tags: []string{"nightlife", "gym", "walkable"}},
		{Name: "Arts District", Tags: []string{"vegan", "cafes", "galleries"}},
		{Name: "Midtown", Tags: []string{"quiet", "parks", "family"}},
	}
}

func fallbackJobs(city string) []jobsearch.Job {
	return []jobsearch.Job{
		{Title: "Frontend Engineer", Company: "PixelForge", Location: city, Description: "react typescript ui", SalaryMin: 85000, SalaryMax: 115000},
		{Title: "Junior Data Engineer", Company: "DataWaves", Location: city, Description: "python sql airflow", SalaryMin: 70000, SalaryMax: 95000},
		{Title: "ML Ops Engineer", Company: "ModelHaus", Location: city, Description: "python ml docker", SalaryMin: 95000, SalaryMax: 130000},
		{Title: "Data Analyst", Company: "MarketLens", Location: city, Description: "python pandas viz", SalaryMin: 60000, SalaryMax: 80000},
	}
}

func fallbackListings(city string, budget int) []rawListing {
	return []rawListing{
		{Address: fmt.Sprintf("123 Mock St, %s", city), Rent: budget - 100, MinCreditScore: 650, Amenities: []string{"gym", "pool"}, Lat: 29.7, Lng: -95.3},
		{Address: fmt.Sprintf("456 Lifestyle Ave, %s", city), Rent: budget + 200, MinCreditScore: 720, Amenities: []string{"roof deck", "bike storage"}, Lat: 29.8, Lng: -95.5},
		{Address: fmt.Sprintf("789 Budget Ln, %s", city), Rent: budget - 300, MinCreditScore: 600, Amenities: []string{"laundry", "parking"}, Lat: 29.6, Lng: -95.4},
		{Address: fmt.Sprintf("321 Premium Blvd, %s", city), Rent: budget + 100, MinCreditScore: 700, Amenities: []string{"fitness center", "concierge"}, Lat: 29.75, Lng: -95.35},
	}
}

// syntheticListing derives a reproducible padding listing from a stable hash
// of (city, index). Repeated calls with the same input produce the same
// record.
func syntheticListing(city string, budget, i int) rawListing {
	h := scoring.Hash64(city, fmt.Sprint(i))
	rent := budget - 200 + int(h%500)
	return rawListing{
		Address:        fmt.Sprintf("%d Relocation Way, %s", 100+int(h%899), city),
		Rent:           rent,
		MinCreditScore: 600 + int(h>>8%150),
		Amenities:      []string{"laundry", "parking"},
		Lat:            29.5 + float64(h%600)/1000,
		Lng:            -95.7 + float64(h>>16%600)/1000,
	}
}

// syntheticPlace derives a reproducible padding place the same way.
func syntheticPlace(city string, interests []string, i int) plan.Place {
	h := scoring.Hash64(city, "place", fmt.Sprint(i))

	tag := "local favorite"
	if len(interests) > 0 {
		tag = interests[i%len(interests)]
	}

	names := []string{"Commons", "Corner", "Collective", "Club", "Market"}
	return plan.Place{
		Name:       fmt.Sprintf("%s %s", titleWord(tag), names[int(h%uint64(len(names)))]),
		Tags:       []string{tag},
		Coords:     plan.Coordinates{Lat: 29.5 + float64(h%800)/1000, Lng: -95.7 + float64(h>>16%800)/1000},
		DistanceKm: 1 + float64(h>>32%18),
	}
}

// syntheticJob reuses a fallback job with a distinguishing suffix so padding
// never collides with a real candidate.
func syntheticJob(city string, i int) jobsearch.Job {
	base := fallbackJobs(city)
	job := base[i%len(base)]
	job.Title = fmt.Sprintf("%s (Opening %d)", job.Title, i+1)
	return job
}

func titleWord(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
