package navigator

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Plan outcomes used as the "result" label.
const (
	resultOK          = "ok"
	resultNoRoute     = "no_route"
	resultUnreachable = "unreachable"
	resultCanceled    = "canceled"
)

// Metrics holds the navigator's Prometheus collectors. A nil *Metrics
// records nothing.
type Metrics struct {
	plans       *prometheus.CounterVec
	duration    prometheus.Histogram
	tiers       *prometheus.CounterVec
	tiedRoutes  prometheus.Histogram
	transitions prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg. Pass
// prometheus.DefaultRegisterer to expose them on the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		plans: f.NewCounterVec(prometheus.CounterOpts{
			Name: "navroute_plan_total",
			Help: "Navigation plans by result",
		}, []string{"result"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "navroute_plan_duration_seconds",
			Help:    "Navigation plan latency in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12), // 0.1ms to ~400ms
		}),
		tiers: f.NewCounterVec(prometheus.CounterOpts{
			Name: "navroute_zone_path_tier_total",
			Help: "Resolved walk segments by fallback tier",
		}, []string{"tier"}),
		tiedRoutes: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "navroute_tied_routes",
			Help:    "Number of equally cheap connector routes per cross-floor plan",
			Buckets: []float64{1, 2, 3, 5, 10},
		}),
		transitions: f.NewCounter(prometheus.CounterOpts{
			Name: "navroute_floor_transitions_total",
			Help: "Floor transitions in produced plans",
		}),
	}
}

func (m *Metrics) observePlan(result string, start time.Time) {
	if m == nil {
		return
	}
	m.plans.WithLabelValues(result).Inc()
	m.duration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) observeTier(tier string) {
	if m == nil {
		return
	}
	m.tiers.WithLabelValues(tier).Inc()
}

func (m *Metrics) observeRoutes(n int) {
	if m == nil {
		return
	}
	m.tiedRoutes.Observe(float64(n))
}

func (m *Metrics) observeTransitions(n int) {
	if m == nil {
		return
	}
	m.transitions.Add(float64(n))
}
