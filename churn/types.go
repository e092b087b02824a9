// SPDX-License-Identifier: MIT
// Package: gossipsim/churn
//
// types.go - shared contract, sentinel errors and options of the
// instability models.
//
// Contract:
//   • A model is bound to a graph (SetGraph), armed (Init), then stepped.
//   • Step before Init is a precondition failure (ErrNotInitialized).
//   • Option constructors validate and panic; models themselves never panic.

package churn

import (
	"errors"

	"github.com/katalvlaran/gossipsim/rng"
)

// Sentinel errors for the instability models.
var (
	// ErrNotInitialized indicates Step was called before Init.
	ErrNotInitialized = errors.New("churn: model not initialized")

	// ErrNoGraph indicates the model has no graph bound.
	ErrNoGraph = errors.New("churn: no graph bound")

	// ErrInvalidRate indicates a probability outside [0,1] or a negative count.
	ErrInvalidRate = errors.New("churn: invalid rate")

	// ErrModeConflict indicates SetRate and SetFixedCount were both requested.
	ErrModeConflict = errors.New("churn: rate and fixed count are mutually exclusive")

	// ErrInvalidGeometry indicates a checkerboard that cannot be laid out.
	ErrInvalidGeometry = errors.New("churn: invalid checkerboard geometry")
)

// Model mutates a bound graph once per simulation hop.
type Model interface {
	// Init restores the full original topology and arms the model.
	Init() error
	// Step applies one round of instability and reports how many edges changed.
	Step() (changed int, err error)
}

// Option configures a model at construction time.
type Option func(*options)

type options struct {
	rnd rng.Source
}

// WithRand injects an explicit random source. Panics on nil.
func WithRand(src rng.Source) Option {
	if src == nil {
		panic("churn: WithRand(nil)")
	}
	return func(o *options) { o.rnd = src }
}

// WithSeed uses a deterministic source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rnd = rng.FromSeed(seed) }
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rnd == nil {
		o.rnd = rng.Fresh()
	}

	return o
}

func validProbability(p float64) bool { return p >= 0 && p <= 1 }
