package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PlansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nextmove_plans_total",
			Help: "Total number of move plans computed",
		},
		[]string{"status"},
	)

	PlanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "nextmove_plan_duration_seconds",
			Help: "Duration of full plan computation in seconds",
		},
	)

	DomainFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nextmove_domain_fallbacks_total",
			Help: "Times a domain substituted fallback data for a failed external call",
		},
		[]string{"domain", "source"},
	)
)
