// SPDX-License-Identifier: MIT
// Package: gossipsim/protocol
//
// types.go - states, envelopes, the Strategy contract and sentinel errors of
// the dissemination engine.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Constructors and option constructors panic on meaningless inputs;
//     Init/Step never panic.

package protocol

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gossipsim/core"
)

// Sentinel errors for the engine.
var (
	// ErrNotInitialized indicates Step was called before Init.
	ErrNotInitialized = errors.New("protocol: engine not initialized")

	// ErrAlreadyDone indicates Step was called after the frontier emptied.
	ErrAlreadyDone = errors.New("protocol: dissemination already done")

	// ErrNoGraph indicates the engine has no graph bound.
	ErrNoGraph = errors.New("protocol: no graph bound")

	// ErrSourceNotFound indicates the source vertex is absent (or the graph is empty).
	ErrSourceNotFound = errors.New("protocol: source vertex not found")
)

// State is the lifecycle phase of an Engine.
type State int

const (
	// StateIdle is the phase before Init.
	StateIdle State = iota
	// StatePropagating means the frontier holds pending envelopes.
	StatePropagating
	// StateDone means the frontier is empty.
	StateDone
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePropagating:
		return "propagating"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Envelope is one delivered message: Sender handed it to Receiver.
// The source's first envelope is addressed to itself.
type Envelope struct {
	Sender, Receiver string
}

// Strategy is the pluggable forwarding policy of a protocol variant.
// The graph handed to a Strategy must be treated as read-only.
type Strategy interface {
	// Name identifies the variant in results ("Flooding", "FFG_4", ...).
	Name() string
	// Reset prepares per-trial state; called by Engine.Init.
	Reset(g *core.Graph) error
	// OnHopStart runs before any envelope of a hop and returns the number
	// of messages it spent.
	OnHopStart(g *core.Graph) (charge int, err error)
	// SelectTargets returns the receivers the envelope's receiver forwards to.
	// Every returned ID must be a current neighbor of env.Receiver.
	SelectTargets(env Envelope, g *core.Graph) ([]string, error)
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource fixes the source vertex. Panics on an empty ID.
// Without it the engine uses the lexicographically lowest vertex ID.
func WithSource(id string) Option {
	if id == "" {
		panic("protocol: WithSource(\"\")")
	}
	return func(e *Engine) { e.source = id }
}
