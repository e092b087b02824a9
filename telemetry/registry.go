// Package telemetry holds the Prometheus metrics of a simulation run.
//
// The simulator is a batch process, not a server: metrics are collected in a
// private registry and dumped once in text exposition format at the end of a
// run (see WriteTextfile), ready for the node_exporter textfile collector.
package telemetry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// namespace prefixes every metric name.
const namespace = "gossipsim"

// Registry holds all metrics of one simulation run.
type Registry struct {
	// Trial metrics
	TrialsTotal       *prometheus.CounterVec
	TrialReachability *prometheus.HistogramVec
	TrialMessages     *prometheus.HistogramVec
	TrialHops         *prometheus.HistogramVec
	TrialDuration     *prometheus.HistogramVec
	HopLimitHits      *prometheus.CounterVec

	// Topology metrics
	EdgeChangesTotal *prometheus.CounterVec
	ConnectAttempts  prometheus.Histogram
	GraphEdges       prometheus.Histogram
	GraphCoverage    prometheus.Histogram

	// Run metrics
	BuildInfo       *prometheus.GaugeVec
	RunStartSeconds prometheus.Gauge

	registry *prometheus.Registry
	mu       sync.Mutex
}

// NewRegistry creates a registry with all metrics initialized.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initTrialMetrics()
	r.initTopologyMetrics()
	r.initRunMetrics()

	return r
}

