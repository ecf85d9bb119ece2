package psm

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SessionEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "psm_session_events_total",
			Help: "Count of PSM session operations by kind.",
		},
		[]string{"op"},
	)

	EstimationRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "psm_estimation_runs_total",
			Help: "Placeholder estimation runs by outcome (started, rejected, completed, discarded).",
		},
		[]string{"outcome"},
	)

	OpenSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "psm_open_sessions",
		Help: "Number of live PSM sessions.",
	})
)

func init() {
	prometheus.MustRegister(SessionEventsTotal, EstimationRunsTotal, OpenSessions)
}
