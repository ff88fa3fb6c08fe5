package agents

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/xizzxy/NextMove/internal/ai"
	"github.com/xizzxy/NextMove/internal/metrics"
	"github.com/xizzxy/NextMove/internal/plan"
	"github.com/xizzxy/NextMove/internal/profile"
)

// Move cash heuristics: first and last month deposits, flat truck/supplies
// and utility setup costs, plus a half-budget cushion.
const (
	movingCost     = 800
	setupCost      = 300
	defaultBudget  = 2000
	rentIncomeRule = 0.30
)

// Finance computes affordability guidance and the one-time move budget. The
// arithmetic is fully local; only the advice tips go through the AI
// collaborator, with a static fallback.
func Finance(ctx context.Context, deps Deps, prof profile.Profile) plan.FinanceResult {
	budget := prof.Budget
	if budget <= 0 {
		budget = defaultBudget
	}

	deposits := budget * 2
	buffer := budget / 2
	total := deposits + movingCost + setupCost + buffer

	recommended := recommendedMaxRent(prof.Salary, budget)

	return plan.FinanceResult{
		Affordability: plan.Affordability{
			RecommendedMaxRent:  recommended,
			CreditBand:          prof.CreditBand,
			BudgetVsRecommended: budgetVsRecommended(budget, recommended),
		},
		MoveCash: plan.MoveCash{
			Deposits: deposits,
			Moving:   movingCost,
			Setup:    setupCost,
			Buffer:   buffer,
			Total:    total,
		},
		Tips: financeTips(ctx, deps, prof, budget),
	}
}

// recommendedMaxRent applies the 30%-of-income rule. With an unknown salary
// the rule is reversed from the stated budget: the budget is assumed to
// already be 30% of monthly income.
func recommendedMaxRent(salary, budget int) int {
	if salary > 0 {
		return int(math.Floor(float64(salary) * rentIncomeRule / 12))
	}

	monthlyIncome := float64(budget) / rentIncomeRule
	annual := monthlyIncome * 12
	return int(math.Floor(annual * rentIncomeRule / 12))
}

// budgetVsRecommended classifies the stated budget against the recommended
// max rent: "near" within +-10%, otherwise "below" or "above".
func budgetVsRecommended(budget, recommended int) string {
	if recommended <= 0 {
		return "near"
	}
	diff := float64(budget - recommended)
	if math.Abs(diff) <= 0.10*float64(recommended) {
		return "near"
	}
	if diff < 0 {
		return "below"
	}
	return "above"
}

func financeTips(ctx context.Context, deps Deps, prof profile.Profile, budget int) []string {
	if deps.AI == nil {
		return fallbackTips()
	}

	prompt := fmt.Sprintf(`Give 3 short practical money-saving tips for someone moving to %s with a monthly rent budget of $%d and a %s credit band.

Respond with ONLY a JSON object in this exact format:
{"tips": ["tip one", "tip two", "tip three"]}`, prof.City, budget, prof.CreditBand)

	raw, err := deps.AI.GenerateContent(ctx, prompt, ai.Options{
		Temperature:     0.7,
		MaxOutputTokens: 400,
		JSON:            true,
	})
	if err == nil {
		var tips []string
		if tips, err = decodeList[string](raw, "tips"); err == nil {
			cleaned := tips[:0]
			for _, tip := range tips {
				if tip = strings.TrimSpace(tip); tip != "" {
					cleaned = append(cleaned, tip)
				}
			}
			if len(cleaned) > 0 {
				return cleaned
			}
			err = fmt.Errorf("no usable tips in response")
		}
	}

	deps.logger().Warn("finance tips generation failed, using fallback", zap.Error(err))
	metrics.DomainFallbacks.WithLabelValues("finance", "ai").Inc()
	return fallbackTips()
}
