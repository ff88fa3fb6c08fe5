package agents

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xizzxy/NextMove/internal/metrics"
	"github.com/xizzxy/NextMove/internal/plan"
	"github.com/xizzxy/NextMove/internal/profile"
)

// Runner owns the full planning pipeline.
type Runner struct {
	deps Deps
}

// NewRunner builds a Runner around the shared collaborators.
func NewRunner(deps Deps) *Runner {
	return &Runner{deps: deps}
}

// Run computes one complete move plan. Finance and lifestyle run first in
// parallel; housing needs both of their outputs and runs alongside career in a
// second wave. Domain failures surface as fallback data, so the only error a
// caller can see is a cancelled context.
func (r *Runner) Run(ctx context.Context, input profile.Profile) (*plan.Plan, error) {
	started := time.Now()

	prof := profile.Normalize(input)
	if prof.Budget <= 0 {
		prof.Budget = defaultBudget
	}

	logger := r.deps.logger().With(
		zap.String("city", prof.City),
		zap.String("career_path", prof.CareerPath),
	)
	logger.Info("starting move plan")

	var (
		finance   plan.FinanceResult
		lifestyle plan.LifestyleResult
		housing   plan.HousingResult
		career    plan.CareerResult
	)

	var wave1 sync.WaitGroup
	wave1.Add(2)
	go func() {
		defer wave1.Done()
		finance = Finance(ctx, r.deps, prof)
	}()
	go func() {
		defer wave1.Done()
		lifestyle = Lifestyle(ctx, r.deps, prof)
	}()
	wave1.Wait()

	var wave2 sync.WaitGroup
	wave2.Add(2)
	go func() {
		defer wave2.Done()
		housing = Housing(ctx, r.deps, prof, finance, lifestyle)
	}()
	go func() {
		defer wave2.Done()
		career = Career(ctx, r.deps, prof)
	}()
	wave2.Wait()

	if err := ctx.Err(); err != nil {
		metrics.PlansTotal.WithLabelValues("cancelled").Inc()
		return nil, err
	}

	result := &plan.Plan{
		ID:        uuid.NewString(),
		Status:    "success",
		City:      prof.City,
		Finance:   finance,
		Lifestyle: lifestyle,
		Housing:   housing,
		Career:    career,
		Summary:   plan.BuildSummary(prof.City, finance, lifestyle, housing, career),
	}

	elapsed := time.Since(started)
	metrics.PlansTotal.WithLabelValues("success").Inc()
	metrics.PlanDuration.Observe(elapsed.Seconds())
	logger.Info("move plan complete",
		zap.String("plan_id", result.ID),
		zap.Duration("elapsed", elapsed),
	)

	return result, nil
}
