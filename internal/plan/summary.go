package plan

import "fmt"

// BuildSummary joins the four domain results into the composite summary. It is
// a pure function: any empty domain result yields an absent field, never an
// error.
func BuildSummary(city string, finance FinanceResult, lifestyle LifestyleResult, housing HousingResult, career CareerResult) Summary {
	s := Summary{
		Headline:   fmt.Sprintf("Personalized move plan for %s", city),
		CashNeeded: finance.MoveCash.Total,
	}

	if len(housing.Listings) > 0 {
		top := housing.Listings[0]
		s.TopApartment = &top
	}

	if len(career.RecruiterTargets) > 0 {
		target := career.RecruiterTargets[0]
		s.JobTarget = &target
	}

	if lifestyle.PrimaryFit != nil {
		fit := *lifestyle.PrimaryFit
		s.Neighborhood = &fit
	}

	return s
}
