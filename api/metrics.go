package api

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK      = "ok"
	outcomeInvalid = "invalid"
	outcomeError   = "error"
)

type Metrics struct {
	runs           *prometheus.CounterVec
	averageWaiting *prometheus.HistogramVec
	cacheHits      prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "os_scheduler_runs_total",
				Help: "Scheduling runs by algorithm and outcome",
			},
			[]string{"algorithm", "outcome"},
		),
		averageWaiting: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "os_scheduler_average_waiting_time",
				Help:    "Average waiting time per successful run, in simulated time units",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
			[]string{"algorithm"},
		),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "os_scheduler_cache_hits_total",
			Help: "Schedule responses served from the response cache",
		}),
	}
	reg.MustRegister(m.runs, m.averageWaiting, m.cacheHits)
	return m
}

func (m *Metrics) observeRun(algorithm, outcome string, averageWaiting float64) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(algorithm, outcome).Inc()
	if outcome == outcomeOK {
		m.averageWaiting.WithLabelValues(algorithm).Observe(averageWaiting)
	}
}

func (m *Metrics) observeCacheHit() {
	if m == nil {
		return
	}
	m.cacheHits.Inc()
}
