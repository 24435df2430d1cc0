package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals // promauto registers collectors once per process
var (
	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "semcache_lookups_total",
		Help: "Total number of cache lookups by outcome",
	}, []string{"outcome"})

	cacheLookupLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "semcache_lookup_latency_seconds",
		Help:    "Latency of cache lookups by outcome",
		Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"outcome"})

	cacheWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "semcache_writes_total",
		Help: "Total number of cache writes by tier and status",
	}, []string{"tier", "status"})

	cacheDegradations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "semcache_degradations_total",
		Help: "Total number of lookups served without a tier, by reason",
	}, []string{"reason"})

	semanticDistance = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "semcache_semantic_distance",
		Help:    "Cosine distance of the nearest semantic candidate",
		Buckets: []float64{.05, .1, .15, .2, .25, .3, .4, .5, .75, 1, 2},
	})

	rateLimitDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "semcache_rate_limit_decisions_total",
		Help: "Total number of rate limit checks by decision",
	}, []string{"decision"})
)

// RecordLookup counts a lookup and observes its latency.
func RecordLookup(outcome string, elapsed time.Duration) {
	cacheLookups.WithLabelValues(outcome).Inc()
	cacheLookupLatency.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// RecordWrite counts a write to one cache tier.
func RecordWrite(tier, status string) {
	cacheWrites.WithLabelValues(tier, status).Inc()
}

// RecordDegradation counts a lookup or write that skipped a tier.
func RecordDegradation(reason string) {
	cacheDegradations.WithLabelValues(reason).Inc()
}

// ObserveDistance records the distance of the nearest semantic candidate.
func ObserveDistance(distance float64) {
	semanticDistance.Observe(distance)
}

// RecordRateLimit counts a rate limit decision.
func RecordRateLimit(limited bool) {
	decision := "allowed"
	if limited {
		decision = "limited"
	}
	rateLimitDecisions.WithLabelValues(decision).Inc()
}
