package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Anvil metrics
var (
	CombinationsPrepared = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCombinationsPrepared,
			Help: HelpTextCombinationsPrepared,
		},
		[]string{LabelOutcome},
	)

	Extractions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameExtractions,
			Help: HelpTextExtractions,
		},
		[]string{LabelDecision},
	)

	RepairCost = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRepairCost,
			Help:    HelpTextRepairCost,
			Buckets: RepairCostBuckets,
		},
	)

	DeferredWrites = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDeferredWrites,
			Help: HelpTextDeferredWrites,
		},
	)

	AuditErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAuditErrors,
			Help: HelpTextAuditErrors,
		},
	)
)
