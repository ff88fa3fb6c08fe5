package agents

import (
	"context"
	"sync"

	"github.com/xizzxy/NextMove/internal/ai"
	"github.com/xizzxy/NextMove/internal/jobsearch"
	"github.com/xizzxy/NextMove/internal/places"
	"github.com/xizzxy/NextMove/internal/profile"
	"github.com/xizzxy/NextMove/internal/scoring"
)

type fakeAI struct {
	response string
	err      error

	mu      sync.Mutex
	prompts []string
}

func (f *fakeAI) GenerateContent(_ context.Context, prompt string, _ ai.Options) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeJobs struct {
	jobs []jobsearch.Job
	err  error
}

func (f *fakeJobs) SearchJobs(_ context.Context, _ string, _ jobsearch.SearchParams) ([]jobsearch.Job, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.jobs, nil
}

type fakePlaces struct {
	places []places.Place
	err    error
}

func (f *fakePlaces) TextSearch(_ context.Context, _ string) ([]places.Place, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.places, nil
}

func testProfile() profile.Profile {
	return profile.Normalize(profile.Profile{
		Name:            "Jordan",
		City:            "Houston",
		Budget:          1800,
		CreditScore:     700,
		Interests:       []string{"climbing", "vegan food"},
		Hobbies:         "climbing, live music",
		CareerPath:      "frontend engineer",
		ExperienceYears: 3,
		Salary:          72000,
	})
}

func testDeps(gen ai.Generator, jobs JobSearcher, placeSearch PlaceSearcher) Deps {
	return Deps{
		AI:     gen,
		Jobs:   jobs,
		Places: placeSearch,
		Tables: scoring.DefaultTables(),
	}
}
