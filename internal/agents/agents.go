// Package agents implements the four recommendation generators (finance,
// lifestyle, housing, career) and the pipeline that joins them into one plan.
//
// Each agent is a thin orchestration: an optional external lookup (AI
// completion, job board, places search), deterministic scoring over the
// returned records, diversity and sizing passes, and a static fallback when
// the external call fails or returns too little data. A failing collaborator
// never fails the request.
package agents

import (
	"context"

	"go.uber.org/zap"

	"github.com/xizzxy/NextMove/internal/ai"
	"github.com/xizzxy/NextMove/internal/jobsearch"
	"github.com/xizzxy/NextMove/internal/places"
	"github.com/xizzxy/NextMove/internal/scoring"
)

// Fixed result list sizes per domain.
const (
	housingListingCount = 5
	careerJobCount      = 10
	lifestylePlaceCount = 15
	alternativeCount    = 2
)

// JobSearcher is the job board collaborator.
type JobSearcher interface {
	SearchJobs(ctx context.Context, query string, params jobsearch.SearchParams) ([]jobsearch.Job, error)
}

// PlaceSearcher is the places collaborator.
type PlaceSearcher interface {
	TextSearch(ctx context.Context, query string) ([]places.Place, error)
}

// Deps aggregates the collaborators shared by all agents. Any of AI, Jobs and
// Places may be nil; the owning agent then goes straight to fallback data.
type Deps struct {
	AI     ai.Generator
	Jobs   JobSearcher
	Places PlaceSearcher
	Logger *zap.Logger
	Tables scoring.Tables
}

func (d Deps) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}
