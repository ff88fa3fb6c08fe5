// Package plan defines the records returned by the move planner. Every record
// is built once per request and never mutated afterwards.
package plan

// Coordinates is a simple lat/lng pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Affordability summarizes the rent guidance derived from the profile.
type Affordability struct {
	RecommendedMaxRent  int    `json:"recommended_max_rent"`
	CreditBand          string `json:"credit_band"`
	BudgetVsRecommended string `json:"budget_vs_recommended"`
}

// MoveCash breaks down the one-time cash needed for the move.
type MoveCash struct {
	Deposits int `json:"deposits"`
	Moving   int `json:"moving"`
	Setup    int `json:"setup"`
	Buffer   int `json:"buffer"`
	Total    int `json:"total"`
}

// FinanceResult is the finance domain output.
type FinanceResult struct {
	Affordability Affordability `json:"affordability"`
	MoveCash      MoveCash      `json:"move_cash_needed"`
	Tips          []string      `json:"tips"`
}

// Neighborhood is a scored neighborhood candidate.
type Neighborhood struct {
	Name       string   `json:"name"`
	Tags       []string `json:"tags"`
	MatchScore int      `json:"match_score"`
}

// Place is a scored point of interest near the destination city.
type Place struct {
	Name       string      `json:"name"`
	Tags       []string    `json:"tags"`
	Coords     Coordinates `json:"coords"`
	DistanceKm float64     `json:"distance_km"`
	MatchScore int         `json:"match_score"`
	Reason     string      `json:"reason,omitempty"`
}

// LifestyleResult is the lifestyle domain output.
type LifestyleResult struct {
	PrimaryFit   *Neighborhood  `json:"primary_fit"`
	Alternatives []Neighborhood `json:"alternatives"`
	Places       []Place        `json:"places"`
	Explanation  string         `json:"explanation"`
}

// Listing is a scored apartment listing.
type Listing struct {
	Address        string      `json:"address"`
	Rent           int         `json:"rent"`
	MinCreditScore int         `json:"min_credit_score"`
	Amenities      []string    `json:"amenities"`
	Coords         Coordinates `json:"coords"`
	MatchScore     int         `json:"match_score"`
	Reason         string      `json:"reason"`
}

// HousingResult is the housing domain output.
type HousingResult struct {
	Listings []Listing `json:"housing_recommendations"`
}

// JobMatch is a scored job candidate.
type JobMatch struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Skills      []string `json:"skills"`
	Location    string   `json:"location"`
	SalaryRange string   `json:"salary_range,omitempty"`
	MatchScore  int      `json:"match_score"`
	Reason      string   `json:"reason,omitempty"`
}

// RecruiterTarget identifies a company/role pair worth a direct outreach.
type RecruiterTarget struct {
	Company string `json:"company"`
	Role    string `json:"role"`
}

// EmailDraft is a ready-to-send recruiter outreach draft.
type EmailDraft struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// CareerResult is the career domain output.
type CareerResult struct {
	JobMatches       []JobMatch        `json:"job_matches"`
	RecruiterTargets []RecruiterTarget `json:"recruiter_targets"`
	EmailDrafts      []EmailDraft      `json:"email_drafts"`
}

// Summary is the composite headline record built after all four domains
// resolve.
type Summary struct {
	Headline     string           `json:"headline"`
	TopApartment *Listing         `json:"top_apartment,omitempty"`
	JobTarget    *RecruiterTarget `json:"job_target,omitempty"`
	CashNeeded   int              `json:"cash_needed"`
	Neighborhood *Neighborhood    `json:"neighborhood,omitempty"`
}

// Plan is the full response for one planning request.
type Plan struct {
	ID        string          `json:"id"`
	Status    string          `json:"status"`
	City      string          `json:"city"`
	Finance   FinanceResult   `json:"finance"`
	Lifestyle LifestyleResult `json:"lifestyle"`
	Housing   HousingResult   `json:"housing"`
	Career    CareerResult    `json:"career"`
	Summary   Summary         `json:"summary"`
}
