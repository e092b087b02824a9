// File: engine.go
// Role: The hop-by-hop dissemination state machine.
// Transitions:
//   Idle --Init--> Propagating --Step (frontier empties)--> Done
//   Any  --Init--> Propagating (a new trial on the same graph)
// Accounting:
//   - hopCount += 1 per Step.
//   - msgCount += OnHopStart charge + one per candidate considered.

package protocol

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gossipsim/core"
)

// Engine spreads one message from a source over a mutable graph using a Strategy.
// Infection state is owned by the engine and keyed by vertex ID, so it
// survives vertices leaving and rejoining the graph.
type Engine struct {
	strategy Strategy
	source   string // configured source; "" means lowest ID
	active   string // source of the current trial

	g        *core.Graph
	state    State
	infected map[string]bool
	total    int
	frontier []Envelope

	msgCount int
	hopCount int
}

// New returns an idle engine driven by strategy. Panics on a nil strategy.
func New(strategy Strategy, opts ...Option) *Engine {
	if strategy == nil {
		panic("protocol: New(nil strategy)")
	}
	e := &Engine{strategy: strategy, infected: make(map[string]bool)}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// SetGraph binds g and returns the engine to StateIdle.
func (e *Engine) SetGraph(g *core.Graph) error {
	if g == nil {
		return ErrNoGraph
	}
	e.g = g
	e.state = StateIdle
	e.frontier = nil

	return nil
}

// Init starts a trial: every vertex uninfected, counters zeroed, the source
// infected and a self-addressed envelope queued. The vertex count observed
// here is the reachability denominator for the whole trial.
//
// Errors: ErrNoGraph, ErrSourceNotFound, or a wrapped Strategy.Reset error.
func (e *Engine) Init() error {
	if e.g == nil {
		return ErrNoGraph
	}
	src := e.source
	if src == "" {
		ids := e.g.Vertices()
		if len(ids) == 0 {
			return fmt.Errorf("Init: empty graph: %w", ErrSourceNotFound)
		}
		src = ids[0]
	}
	if !e.g.HasVertex(src) {
		return fmt.Errorf("Init: %q: %w", src, ErrSourceNotFound)
	}
	if err := e.strategy.Reset(e.g); err != nil {
		return fmt.Errorf("Init: %s: %w", e.strategy.Name(), err)
	}

	e.active = src
	e.total = e.g.VertexCount()
	e.infected = make(map[string]bool, e.total)
	e.infected[src] = true
	e.frontier = []Envelope{{Sender: src, Receiver: src}}
	e.msgCount, e.hopCount = 0, 0
	e.state = StatePropagating

	return nil
}

// Step advances one hop and reports whether dissemination is done.
//
// Implementation:
//   - Stage 1: hopCount++ and charge the strategy's pre-pass.
//   - Stage 2: For each envelope, collect candidates: every current neighbor
//     for the source's own envelope, the strategy's choice otherwise.
//     A receiver that has left the graph forwards nothing.
//   - Stage 3: Each candidate costs one message; an uninfected candidate
//     becomes infected and gets an envelope in the next frontier.
//   - Stage 4: Replace the frontier; Done when it is empty.
//
// Errors: ErrNotInitialized, ErrAlreadyDone, or a wrapped strategy/graph error.
func (e *Engine) Step() (bool, error) {
	switch e.state {
	case StateIdle:
		return false, ErrNotInitialized
	case StateDone:
		return true, ErrAlreadyDone
	}

	e.hopCount++
	charge, err := e.strategy.OnHopStart(e.g)
	if err != nil {
		return false, fmt.Errorf("Step: hop %d: %w", e.hopCount, err)
	}
	e.msgCount += charge

	next := make([]Envelope, 0, len(e.frontier))
	for _, env := range e.frontier {
		targets, err := e.targets(env)
		if err != nil {
			return false, fmt.Errorf("Step: hop %d: %w", e.hopCount, err)
		}
		for _, to := range targets {
			e.msgCount++
			if e.infected[to] {
				continue
			}
			e.infected[to] = true
			next = append(next, Envelope{Sender: env.Receiver, Receiver: to})
		}
	}

	e.frontier = next
	if len(next) == 0 {
		e.state = StateDone
		return true, nil
	}

	return false, nil
}

func (e *Engine) targets(env Envelope) ([]string, error) {
	if !e.g.HasVertex(env.Receiver) {
		return nil, nil
	}
	if env.Receiver == e.active && env.Sender == e.active {
		nbrs, err := e.g.NeighborIDs(env.Receiver)
		if errors.Is(err, core.ErrVertexNotFound) {
			return nil, nil
		}
		return nbrs, err
	}

	return e.strategy.SelectTargets(env, e.g)
}

// Reachability returns infected / vertices-at-Init, or 0 before Init.
func (e *Engine) Reachability() float64 {
	if e.total == 0 {
		return 0
	}
	return float64(len(e.infected)) / float64(e.total)
}

// MsgCount returns the messages spent so far in this trial.
func (e *Engine) MsgCount() int { return e.msgCount }

// HopCount returns the number of Step calls in this trial.
func (e *Engine) HopCount() int { return e.hopCount }

// State returns the lifecycle phase.
func (e *Engine) State() State { return e.state }

// Infected reports whether id has received the message in this trial.
func (e *Engine) Infected(id string) bool { return e.infected[id] }

// InfectedCount returns the number of infected vertices.
func (e *Engine) InfectedCount() int { return len(e.infected) }

// Source returns the source of the current trial ("" before Init).
func (e *Engine) Source() string { return e.active }

// Frontier returns a copy of the pending envelopes.
func (e *Engine) Frontier() []Envelope { return append([]Envelope(nil), e.frontier...) }

// Strategy returns the forwarding policy.
func (e *Engine) Strategy() Strategy { return e.strategy }

// String returns the strategy name.
func (e *Engine) String() string { return e.strategy.Name() }
