package experiment

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/gossipsim/bfs"
	"github.com/katalvlaran/gossipsim/builder"
	"github.com/katalvlaran/gossipsim/churn"
	"github.com/katalvlaran/gossipsim/core"
	"github.com/katalvlaran/gossipsim/protocol"
	"github.com/katalvlaran/gossipsim/rng"
	"github.com/katalvlaran/gossipsim/telemetry"
)

// Stream ids split the run seed into independent per-component sources.
const (
	streamGraph uint64 = iota + 1
	streamChurn
	streamProtocol
)

// Runner executes a sweep: for every protocol, every sweep point and every
// drawn graph, it runs GraphTrials trials and reports each one to the sink.
type Runner struct {
	cfg     *Config
	log     *zap.Logger
	metrics *telemetry.Registry
	sink    Sink
	runID   string
	version string
	base    *rand.Rand
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the operational logger. Panics on nil.
func WithLogger(l *zap.Logger) RunnerOption {
	if l == nil {
		panic("experiment: WithLogger(nil)")
	}
	return func(r *Runner) { r.log = l }
}

// WithMetrics sets the metrics registry. Panics on nil.
func WithMetrics(m *telemetry.Registry) RunnerOption {
	if m == nil {
		panic("experiment: WithMetrics(nil)")
	}
	return func(r *Runner) { r.metrics = m }
}

// WithSink sets the result sink. Panics on nil.
func WithSink(s Sink) RunnerOption {
	if s == nil {
		panic("experiment: WithSink(nil)")
	}
	return func(r *Runner) { r.sink = s }
}

// WithRunID overrides the generated run id.
func WithRunID(id string) RunnerOption {
	return func(r *Runner) {
		if id != "" {
			r.runID = id
		}
	}
}

// WithVersion labels the run's build_info metric.
func WithVersion(v string) RunnerOption {
	return func(r *Runner) { r.version = v }
}

// NewRunner validates cfg and returns a Runner. Defaults: no-op logger, a
// private metrics registry, results kept in a MemorySink, a random UUID run id.
func NewRunner(cfg *Config, opts ...RunnerOption) (*Runner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("NewRunner: nil config: %w", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("NewRunner: %w", err)
	}

	r := &Runner{
		cfg:     cfg,
		log:     zap.NewNop(),
		metrics: telemetry.NewRegistry(),
		sink:    &MemorySink{},
		runID:   uuid.NewString(),
		version: "dev",
	}
	for _, opt := range opts {
		opt(r)
	}
	if cfg.Seed == 0 {
		r.base = rng.Fresh()
	} else {
		r.base = rng.FromSeed(cfg.Seed)
	}

	return r, nil
}

// RunID returns the identifier stamped on every result of this runner.
func (r *Runner) RunID() string { return r.runID }

// Metrics returns the registry the runner records into.
func (r *Runner) Metrics() *telemetry.Registry { return r.metrics }

// Run executes the whole sweep. Cancellation is honored between trials; a
// trial in progress always completes. The summary covers every finished
// trial, also when an error is returned.
//
// Errors: ctx.Err(), ErrHopLimit, or a wrapped build/model/protocol/sink error.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	started := time.Now()
	sum := newSummarizer()
	report := func() *Summary {
		return &Summary{
			RunID:      r.runID,
			Started:    started,
			Elapsed:    time.Since(started),
			Trials:     sum.total,
			Aggregates: sum.aggregates(),
		}
	}

	points := r.cfg.Sweep.Points()
	r.metrics.SetRunInfo(r.version, r.runID, started)
	r.log.Info("run started",
		zap.String("run_id", r.runID),
		zap.String("sweep", string(r.cfg.Sweep.Kind)),
		zap.Int("protocols", len(r.cfg.Protocols)),
		zap.Float64s("points", points),
		zap.Int("trials", r.cfg.Trials),
		zap.Int("graph_trials", r.cfg.GraphTrials),
		zap.Int64("seed", r.cfg.Seed),
	)

	for _, spec := range r.cfg.Protocols {
		name, err := ProtocolName(spec)
		if err != nil {
			return report(), fmt.Errorf("Run: %w", err)
		}
		if err := r.sink.Begin(name, r.cfg.Sweep); err != nil {
			return report(), fmt.Errorf("Run: %w", err)
		}

		trial := 0
		for _, pt := range points {
			for i := 0; i < r.cfg.Trials; i++ {
				if err := ctx.Err(); err != nil {
					return report(), err
				}
				if err := r.runGraph(ctx, spec, name, pt, &trial, sum); err != nil {
					return report(), fmt.Errorf("Run: %s at %g: %w", name, pt, err)
				}
			}
			if a, ok := sum.aggregate(name, pt); ok {
				r.log.Info("sweep point done",
					zap.String("run_id", r.runID),
					zap.String("protocol", name),
					zap.Float64("point", pt),
					zap.Int("trials", a.Trials),
					zap.Float64("mean_reachability", a.MeanReachability),
					zap.Float64("mean_messages", a.MeanMessages),
					zap.Float64("mean_hops", a.MeanHops),
				)
			}
		}
	}

	out := report()
	r.log.Info("run finished",
		zap.String("run_id", r.runID),
		zap.Int("trials", out.Trials),
		zap.Duration("elapsed", out.Elapsed),
	)

	return out, nil
}

// runGraph draws one graph and runs GraphTrials trials on it.
func (r *Runner) runGraph(ctx context.Context, spec ProtocolSpec, name string, pt float64, trial *int, sum *summarizer) error {
	g, attempts, err := r.buildGraph()
	if err != nil {
		return err
	}
	largest, err := bfs.LargestComponent(g, bfs.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("component scan: %w", err)
	}
	r.metrics.RecordGraph(attempts, g.EdgeCount(), float64(largest)/float64(g.VertexCount()))
	r.log.Debug("graph drawn",
		zap.String("protocol", name),
		zap.Int("nodes", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("largest_component", largest),
		zap.Int("attempts", attempts),
	)

	model, err := r.newModel(g, pt)
	if err != nil {
		return err
	}
	engine, err := NewProtocol(spec, r.cfg.Sweep.updateRateFor(pt), r.cfg.TTL, rng.Derive(r.base, streamProtocol))
	if err != nil {
		return err
	}
	if err := engine.SetGraph(g); err != nil {
		return err
	}

	for j := 0; j < r.cfg.GraphTrials; j++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		*trial++
		res, err := r.runTrial(g, model, engine, name)
		if err != nil {
			return fmt.Errorf("trial %d: %w", *trial, err)
		}
		res.RunID = r.runID
		res.Trial = *trial
		res.Protocol = name
		res.Sweep = r.cfg.Sweep
		res.Point = pt

		if err := r.sink.Write(res); err != nil {
			return err
		}
		sum.add(res)
		r.log.Debug("trial done",
			zap.String("run_id", r.runID),
			zap.String("protocol", name),
			zap.Int("trial", res.Trial),
			zap.Float64("point", pt),
			zap.Float64("reachability", res.Reachability),
			zap.Int("messages", res.Messages),
			zap.Int("hops", res.Hops),
			zap.Int("edge_changes", res.EdgeChanges),
		)
	}

	return nil
}

// runTrial resets the model and the engine, then alternates one instability
// step and one protocol hop until the frontier empties.
func (r *Runner) runTrial(g *core.Graph, model churn.Model, engine *protocol.Engine, name string) (Result, error) {
	start := time.Now()
	if err := model.Init(); err != nil {
		return Result{}, err
	}
	if err := engine.Init(); err != nil {
		return Result{}, err
	}
	res := Result{Nodes: g.VertexCount(), Edges: g.EdgeCount()}

	for {
		if engine.HopCount() >= r.cfg.MaxHops {
			r.metrics.RecordHopLimit(name, string(r.cfg.Sweep.Kind))
			return Result{}, fmt.Errorf("%s after %d hops: %w", name, engine.HopCount(), ErrHopLimit)
		}
		changed, err := model.Step()
		if err != nil {
			return Result{}, err
		}
		res.EdgeChanges += changed
		done, err := engine.Step()
		if err != nil {
			return Result{}, err
		}
		if done {
			break
		}
	}

	res.Reachability = engine.Reachability()
	res.Messages = engine.MsgCount()
	res.Hops = engine.HopCount()
	r.metrics.RecordTrial(telemetry.Trial{
		Protocol:     name,
		Sweep:        string(r.cfg.Sweep.Kind),
		Reachability: res.Reachability,
		Messages:     res.Messages,
		Hops:         res.Hops,
		EdgeChanges:  res.EdgeChanges,
		Duration:     time.Since(start),
	})

	return res, nil
}

// buildGraph draws one random geometric graph, redrawing until connected
// when the configuration asks for it.
func (r *Runner) buildGraph() (*core.Graph, int, error) {
	gc := r.cfg.Graph
	opts := []builder.BuilderOption{builder.WithRand(rng.Derive(r.base, streamGraph))}
	switch {
	case gc.PadIDs:
		opts = append(opts, builder.WithPaddedIDs(gc.IDPrefix, gc.Nodes))
	case gc.IDPrefix != "":
		opts = append(opts, builder.WithPrefixedIDs(gc.IDPrefix))
	}
	ctor := builder.RandomGeometric(gc.Nodes, gc.Radius, gc.XRange, gc.YRange)

	if gc.RequireConnected {
		return builder.BuildConnected(gc.MaxAttempts, opts, ctor)
	}
	g, err := builder.BuildGraph(opts, ctor)
	if err != nil {
		return nil, 1, err
	}

	return g, 1, nil
}

// newModel binds the instability model of the sweep kind to g at point pt.
func (r *Runner) newModel(g *core.Graph, pt float64) (churn.Model, error) {
	sw := r.cfg.Sweep
	src := churn.WithRand(rng.Derive(r.base, streamChurn))

	switch sw.Kind {
	case KindChurn:
		nc := churn.NewNodeChurn(src)
		if err := nc.SetGraph(g); err != nil {
			return nil, err
		}
		if err := nc.SetChurnRate(pt); err != nil {
			return nil, err
		}
		return nc, nil

	case KindBiased:
		ec := churn.NewEdgeChurn(src)
		if err := ec.SetGraph(g, r.cfg.Graph.XRange, r.cfg.Graph.YRange, sw.CellsX, sw.CellsY); err != nil {
			return nil, err
		}
		if err := ec.SetRate(sw.VaryingRate); err != nil {
			return nil, err
		}
		if err := ec.SetBias(pt); err != nil {
			return nil, err
		}
		return ec, nil

	case KindUpdate:
		ec := churn.NewEdgeChurn(src)
		if err := ec.SetGraph(g, 0, 0, 0, 0); err != nil {
			return nil, err
		}
		if err := ec.SetRate(sw.VaryingRate); err != nil {
			return nil, err
		}
		return ec, nil

	case KindVarying:
		ec := churn.NewEdgeChurn(src)
		if err := ec.SetGraph(g, 0, 0, 0, 0); err != nil {
			return nil, err
		}
		if sw.FixedCount {
			if err := ec.SetFixedCount(int(pt)); err != nil {
				return nil, err
			}
		} else if err := ec.SetRate(pt); err != nil {
			return nil, err
		}
		return ec, nil

	default:
		return nil, fmt.Errorf("newModel(%q): %w", sw.Kind, ErrUnknownSweep)
	}
}
