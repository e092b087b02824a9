// SPDX-License-Identifier: MIT
// Package: gossipsim/protocol
//
// variants.go - shared configuration of the forwarding strategies.

package protocol

import (
	"errors"

	"github.com/katalvlaran/gossipsim/core"
	"github.com/katalvlaran/gossipsim/mbc"
	"github.com/katalvlaran/gossipsim/rng"
)

// VariantOption configures a forwarding strategy.
type VariantOption func(*variantConfig)

type variantConfig struct {
	rnd rng.Source
	gen *mbc.Generator
}

// WithRand injects the random source used for shuffles and coins. Panics on nil.
func WithRand(src rng.Source) VariantOption {
	if src == nil {
		panic("protocol: WithRand(nil)")
	}
	return func(c *variantConfig) { c.rnd = src }
}

// WithSeed uses a deterministic source seeded with seed.
func WithSeed(seed int64) VariantOption {
	return func(c *variantConfig) { c.rnd = rng.FromSeed(seed) }
}

// WithGenerator sets the oracle generator of distance-biased gossip. Panics on nil.
func WithGenerator(gen *mbc.Generator) VariantOption {
	if gen == nil {
		panic("protocol: WithGenerator(nil)")
	}
	return func(c *variantConfig) { c.gen = gen }
}

func newVariantConfig(opts []VariantOption) variantConfig {
	c := variantConfig{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rnd == nil {
		c.rnd = rng.Fresh()
	}
	if c.gen == nil {
		c.gen = mbc.NewGenerator()
	}

	return c
}

// eligible returns the receiver's current neighbors except the sender.
// A receiver that is no longer in the graph has none.
func eligible(env Envelope, g *core.Graph) ([]string, error) {
	nbrs, err := g.NeighborIDs(env.Receiver)
	if errors.Is(err, core.ErrVertexNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	out := nbrs[:0]
	for _, id := range nbrs {
		if id != env.Sender {
			out = append(out, id)
		}
	}

	return out, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
