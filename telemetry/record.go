package telemetry

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Trial is the outcome of one gossip trial as seen by the metrics.
type Trial struct {
	Protocol     string
	Sweep        string
	Reachability float64
	Messages     int
	Hops         int
	EdgeChanges  int
	Duration     time.Duration
}

// RecordTrial records a completed trial.
func (r *Registry) RecordTrial(t Trial) {
	r.TrialsTotal.WithLabelValues(t.Protocol, t.Sweep).Inc()
	r.TrialReachability.WithLabelValues(t.Protocol, t.Sweep).Observe(t.Reachability)
	r.TrialMessages.WithLabelValues(t.Protocol, t.Sweep).Observe(float64(t.Messages))
	r.TrialHops.WithLabelValues(t.Protocol, t.Sweep).Observe(float64(t.Hops))
	r.TrialDuration.WithLabelValues(t.Protocol, t.Sweep).Observe(t.Duration.Seconds())
	r.EdgeChangesTotal.WithLabelValues(t.Protocol, t.Sweep).Add(float64(t.EdgeChanges))
}

// RecordHopLimit records a trial aborted by the hop cap.
func (r *Registry) RecordHopLimit(protocol, sweep string) {
	r.HopLimitHits.WithLabelValues(protocol, sweep).Inc()
}

// RecordGraph records one generated graph, how many draws it took and the
// share of its vertices in the largest connected component.
func (r *Registry) RecordGraph(attempts, edges int, coverage float64) {
	r.ConnectAttempts.Observe(float64(attempts))
	r.GraphEdges.Observe(float64(edges))
	r.GraphCoverage.Observe(coverage)
}

// SetRunInfo should be called once per run.
func (r *Registry) SetRunInfo(version, runID string, start time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.BuildInfo.Reset()
	r.BuildInfo.WithLabelValues(version, runID).Set(1)
	r.RunStartSeconds.Set(float64(start.Unix()))
}

// WriteTextfile dumps every metric to path in text exposition format.
// The file is written atomically (temp file + rename).
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("telemetry: write %s: %w", path, err)
	}
	return nil
}
