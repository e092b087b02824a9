package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// trialLabels identify the protocol variant and the sweep a trial belongs to.
var trialLabels = []string{"protocol", "sweep"}

func (r *Registry) initTrialMetrics() {
	r.TrialsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trials_total",
			Help:      "Total number of completed gossip trials",
		},
		trialLabels,
	)

	r.TrialReachability = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "trial_reachability",
			Help:      "Fraction of nodes informed when a trial terminated",
			Buckets:   prometheus.LinearBuckets(0.1, 0.1, 10),
		},
		trialLabels,
	)

	r.TrialMessages = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "trial_messages",
			Help:      "Messages sent per trial, including distance table refreshes",
			Buckets:   prometheus.ExponentialBuckets(10, 4, 10),
		},
		trialLabels,
	)

	r.TrialHops = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "trial_hops",
			Help:      "Hops until the frontier emptied",
			Buckets:   []float64{5, 10, 20, 30, 50, 75, 100, 150, 250, 500},
		},
		trialLabels,
	)

	r.TrialDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "trial_duration_seconds",
			Help:      "Wall-clock time of one trial",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
		},
		trialLabels,
	)

	r.HopLimitHits = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hop_limit_hits_total",
			Help:      "Trials aborted by the hop safety cap",
		},
		trialLabels,
	)
}

func (r *Registry) initTopologyMetrics() {
	r.EdgeChangesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edge_changes_total",
			Help:      "Edges removed or revived by the instability model",
		},
		trialLabels,
	)

	r.ConnectAttempts = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "graph_connect_attempts",
			Help:      "Random geometric graphs drawn until one was connected",
			Buckets:   []float64{1, 2, 3, 5, 10, 20, 50, 100},
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Edge count of each generated graph",
			Buckets:   prometheus.ExponentialBuckets(100, 2, 10),
		},
	)

	r.GraphCoverage = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "graph_largest_component_ratio",
			Help:      "Share of vertices in the largest connected component of each generated graph",
			Buckets:   []float64{0.1, 0.25, 0.5, 0.75, 0.9, 0.95, 0.99, 1},
		},
	)
}

func (r *Registry) initRunMetrics() {
	r.BuildInfo = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "build_info",
			Help:      "Build info (constant 1, labeled by version and run id)",
		},
		[]string{"version", "run_id"},
	)

	r.RunStartSeconds = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_start_timestamp_seconds",
			Help:      "Unix time the run started",
		},
	)
}
