package experiment

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// smallConfig returns a fast, seeded configuration over a complete graph
// (every pair lies within the radius).
func smallConfig() *Config {
	cfg := Default()
	cfg.Protocols = []ProtocolSpec{{ID: ProtocolFlooding}, {ID: ProtocolFFG, Fanout: 2}}
	cfg.Graph.Nodes = 20
	cfg.Graph.Radius = 200
	cfg.Graph.XRange = 100
	cfg.Graph.YRange = 100
	cfg.Sweep.Values = []float64{0, 0.5}
	cfg.Trials = 2
	cfg.GraphTrials = 3
	cfg.Seed = 11
	return cfg
}

func TestNewRunner_Rejects(t *testing.T) {
	_, err := NewRunner(nil)
	require.ErrorIs(t, err, ErrInvalidConfig)

	cfg := smallConfig()
	cfg.Trials = 0
	_, err = NewRunner(cfg)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRunnerOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { WithLogger(nil) })
	assert.Panics(t, func() { WithMetrics(nil) })
	assert.Panics(t, func() { WithSink(nil) })
}

func TestRunner_Run_ProducesEveryTrial(t *testing.T) {
	cfg := smallConfig()
	sink := &MemorySink{}
	r, err := NewRunner(cfg, WithSink(sink), WithRunID("fixed"))
	require.NoError(t, err)

	sum, err := r.Run(context.Background())
	require.NoError(t, err)

	want := len(cfg.Protocols) * len(cfg.Sweep.Values) * cfg.Trials * cfg.GraphTrials
	require.Len(t, sink.Results, want)
	assert.Equal(t, want, sum.Trials)
	assert.Equal(t, []string{"Flooding", "FFG_2"}, sink.Begun)
	assert.Len(t, sum.Aggregates, len(cfg.Protocols)*len(cfg.Sweep.Values))
	assert.Equal(t, "fixed", sum.RunID)

	perProtocol := map[string]int{}
	for _, res := range sink.Results {
		perProtocol[res.Protocol]++
		assert.Equal(t, perProtocol[res.Protocol], res.Trial, "trial ids count up per protocol")
		assert.Equal(t, "fixed", res.RunID)
		assert.Equal(t, 20, res.Nodes)
		assert.Equal(t, 190, res.Edges)
		assert.GreaterOrEqual(t, res.Reachability, 0.0)
		assert.LessOrEqual(t, res.Reachability, 1.0)
		assert.Positive(t, res.Hops)
	}
}

func TestRunner_Run_StaticFloodReachesAll(t *testing.T) {
	cfg := smallConfig()
	cfg.Protocols = []ProtocolSpec{{ID: ProtocolFlooding}}
	cfg.Sweep.Values = []float64{0}
	cfg.Graph.Radius = 40
	cfg.Graph.RequireConnected = true
	sink := &MemorySink{}
	r, err := NewRunner(cfg, WithSink(sink))
	require.NoError(t, err)

	_, err = r.Run(context.Background())
	require.NoError(t, err)
	for _, res := range sink.Results {
		assert.Equal(t, 1.0, res.Reachability)
		assert.Zero(t, res.EdgeChanges)
	}
}

func TestRunner_Run_FullChurnStrandsSource(t *testing.T) {
	cfg := smallConfig()
	cfg.Protocols = []ProtocolSpec{{ID: ProtocolFlooding}}
	cfg.Sweep.Values = []float64{1}
	sink := &MemorySink{}
	r, err := NewRunner(cfg, WithSink(sink))
	require.NoError(t, err)

	_, err = r.Run(context.Background())
	require.NoError(t, err)
	for _, res := range sink.Results {
		assert.InDelta(t, 1.0/20, res.Reachability, 1e-12)
		assert.Equal(t, 1, res.Hops)
		assert.Equal(t, 190, res.EdgeChanges)
	}
}

func TestRunner_Run_Deterministic(t *testing.T) {
	run := func() []Result {
		sink := &MemorySink{}
		cfg := smallConfig()
		cfg.Protocols = append(cfg.Protocols, ProtocolSpec{ID: ProtocolGMBC, Fanout: 2})
		r, err := NewRunner(cfg, WithSink(sink), WithRunID("same"))
		require.NoError(t, err)
		_, err = r.Run(context.Background())
		require.NoError(t, err)
		return sink.Results
	}
	assert.Equal(t, run(), run())
}

func TestRunner_Run_SweepKinds(t *testing.T) {
	for _, kind := range Kinds {
		t.Run(string(kind), func(t *testing.T) {
			cfg := smallConfig()
			cfg.Protocols = []ProtocolSpec{{ID: ProtocolGMBC, Fanout: 2}}
			cfg.Sweep.Kind = kind
			cfg.Sweep.Values = []float64{0.4}
			cfg.Trials, cfg.GraphTrials = 1, 2
			sink := &MemorySink{}
			r, err := NewRunner(cfg, WithSink(sink))
			require.NoError(t, err)

			_, err = r.Run(context.Background())
			require.NoError(t, err)
			require.Len(t, sink.Results, 2)
			for _, res := range sink.Results {
				assert.Equal(t, kind, res.Sweep.Kind)
				assert.Len(t, res.Record(), len(Header(res.Sweep)))
			}
		})
	}
}

func TestRunner_Run_FixedCount(t *testing.T) {
	cfg := smallConfig()
	cfg.Protocols = []ProtocolSpec{{ID: ProtocolFlooding}}
	cfg.Sweep.FixedCount = true
	cfg.Sweep.Values = []float64{5}
	sink := &MemorySink{}
	r, err := NewRunner(cfg, WithSink(sink))
	require.NoError(t, err)

	_, err = r.Run(context.Background())
	require.NoError(t, err)
	for _, res := range sink.Results {
		// 5 removals per step, plus 5 revivals from the second step on
		assert.Equal(t, 5+10*(res.Hops-1), res.EdgeChanges)
	}
}

func TestRunner_Run_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sink := &MemorySink{}
	r, err := NewRunner(smallConfig(), WithSink(sink))
	require.NoError(t, err)

	sum, err := r.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, sum)
	assert.Zero(t, sum.Trials)
	assert.Empty(t, sink.Results)
}

func TestRunner_Run_HopLimit(t *testing.T) {
	cfg := smallConfig()
	cfg.MaxHops = 1
	r, err := NewRunner(cfg)
	require.NoError(t, err)

	_, err = r.Run(context.Background())
	require.ErrorIs(t, err, ErrHopLimit)
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Metrics().HopLimitHits.WithLabelValues("Flooding", "varying")))
}

func TestRunner_Run_RecordsMetricsAndLogs(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	cfg := smallConfig()
	r, err := NewRunner(cfg, WithLogger(zap.New(core)), WithVersion("v-test"))
	require.NoError(t, err)

	_, err = r.Run(context.Background())
	require.NoError(t, err)

	perProtocol := float64(len(cfg.Sweep.Values) * cfg.Trials * cfg.GraphTrials)
	m := r.Metrics()
	assert.Equal(t, perProtocol, testutil.ToFloat64(m.TrialsTotal.WithLabelValues("Flooding", "varying")))
	assert.Equal(t, perProtocol, testutil.ToFloat64(m.TrialsTotal.WithLabelValues("FFG_2", "varying")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BuildInfo.WithLabelValues("v-test", r.RunID())))

	graphs := len(cfg.Protocols) * len(cfg.Sweep.Values) * cfg.Trials
	var coverage dto.Metric
	require.NoError(t, m.GraphCoverage.Write(&coverage))
	assert.Equal(t, uint64(graphs), coverage.Histogram.GetSampleCount())
	assert.InDelta(t, float64(graphs), coverage.Histogram.GetSampleSum(), 1e-9, "complete graphs are one component")

	assert.Equal(t, 1, logs.FilterMessage("run started").Len())
	assert.Equal(t, 1, logs.FilterMessage("run finished").Len())
	assert.Equal(t, len(cfg.Protocols)*len(cfg.Sweep.Values), logs.FilterMessage("sweep point done").Len())
	assert.Zero(t, logs.FilterMessage("trial done").Len(), "per-trial lines are debug only")
}

func TestRunner_Run_WritesCSV(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewCSVSink(dir)
	require.NoError(t, err)
	cfg := smallConfig()
	cfg.Sweep.Kind = KindUpdate
	cfg.Protocols = []ProtocolSpec{{ID: ProtocolGMBC, Fanout: 4}}
	cfg.Sweep.Values = []float64{0, 1}
	r, err := NewRunner(cfg, WithSink(sink))
	require.NoError(t, err)

	_, err = r.Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, sink.Close())

	raw, err := os.ReadFile(filepath.Join(dir, "GMBG_4_updateMBC.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "GMBG_4\nid,nodeNum,varyingRate,updateRate,reachability")
}

func TestRunner_BuildGraph_IDSchemes(t *testing.T) {
	cfg := smallConfig()
	cfg.Graph.Nodes = 12
	r, err := NewRunner(cfg)
	require.NoError(t, err)

	g, _, err := r.buildGraph()
	require.NoError(t, err)
	assert.Equal(t, "0", g.Vertices()[0])
	assert.Equal(t, "1", g.Vertices()[1])
	assert.Equal(t, "10", g.Vertices()[2])

	cfg.Graph.IDPrefix = "n"
	g, _, err = r.buildGraph()
	require.NoError(t, err)
	assert.Equal(t, "n0", g.Vertices()[0])

	cfg.Graph.PadIDs = true
	g, _, err = r.buildGraph()
	require.NoError(t, err)
	assert.Equal(t, []string{"n00", "n01", "n02"}, g.Vertices()[:3])
}
