// SPDX-License-Identifier: MIT
// Package: gossipsim/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - BuildConnected repeats the same composition until the result is connected.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gossipsim/bfs"
	"github.com/katalvlaran/gossipsim/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Draw every random value from cfg.rng in a stable, documented order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; the partial graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor sentinel (ErrTooFewVertices, ErrInvalidRadius, ...), wrapped.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)

	g, err := apply(cfg, cons)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// BuildConnected runs the constructors up to maxAttempts times and returns the
// first connected result together with the number of attempts it took.
//
// Implementation:
//   - Stage 1: Resolve the configuration ONCE, so every attempt keeps drawing
//     from the same random stream (a fixed seed still yields a fixed sequence
//     of candidate graphs, not the same graph over and over).
//   - Stage 2: Build, then test connectivity with bfs.Connected.
//
// Errors:
//   - ErrOptionViolation if maxAttempts < 1.
//   - ErrConstructFailed if no attempt produced a connected graph.
//   - Any constructor error, wrapped; a failing constructor is not retried.
//
// Complexity:
//   - O(maxAttempts · (build + V + E)).
func BuildConnected(maxAttempts int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, int, error) {
	if maxAttempts < 1 {
		return nil, 0, fmt.Errorf("%s: maxAttempts=%d < 1: %w", MethodBuildConnected, maxAttempts, ErrOptionViolation)
	}
	cfg := newBuilderConfig(bopts...)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		g, err := apply(cfg, cons)
		if err != nil {
			return nil, attempt, fmt.Errorf("%s: attempt %d: %w", MethodBuildConnected, attempt, err)
		}
		if bfs.Connected(g) {
			return g, attempt, nil
		}
	}

	return nil, maxAttempts, fmt.Errorf("%s: no connected graph after %d attempts: %w",
		MethodBuildConnected, maxAttempts, ErrConstructFailed)
}

// apply builds one graph from cfg and cons.
func apply(cfg builderConfig, cons []Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Add vertices via cfg.idFn in ascending index order.
//   - Emit edges in a stable, documented order.
//   - Return only sentinel errors; NEVER panic at runtime.

// RandomGeometric places n vertices on integer coordinates in
// [0,xRange)×[0,yRange) and connects every pair within radius.
// Requires cfg.rng != nil.
// Complexity: O(n²) distance checks. Deterministic for a fixed seed.
//func RandomGeometric(n int, radius, xRange, yRange float64) Constructor
