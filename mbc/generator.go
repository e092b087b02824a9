// File: generator.go
// Role: Builds a Table for one root from the current topology.
// Stages:
//   1. Bounded flood from every root neighbor, never re-entering the root.
//   2. Triangle closure restricted to the root's neighbor set.

package mbc

import (
	"fmt"

	"github.com/katalvlaran/gossipsim/bfs"
	"github.com/katalvlaran/gossipsim/core"
)

// DefaultTTL is the search radius used when no WithTTL option is given.
const DefaultTTL = 1

// Option configures a Generator.
type Option func(*Generator)

// WithTTL sets the search radius. A TTL of t lets a neighbor reach another
// neighbor directly or through up to t intermediate non-root vertices.
// Panics if ttl < 0.
func WithTTL(ttl int) Option {
	if ttl < 0 {
		panic(fmt.Sprintf("mbc: WithTTL(%d): ttl must be >= 0", ttl))
	}
	return func(g *Generator) { g.ttl = ttl }
}

// Generator builds fresh oracle tables. It keeps no state between calls and
// may be shared.
type Generator struct {
	ttl int
}

// NewGenerator returns a Generator with DefaultTTL unless overridden.
func NewGenerator(opts ...Option) *Generator {
	gen := &Generator{ttl: DefaultTTL}
	for _, opt := range opts {
		opt(gen)
	}

	return gen
}

// TTL returns the configured search radius.
func (gen *Generator) TTL() int { return gen.ttl }

// Generate computes the oracle of root from scratch.
//
// Implementation:
//   - Stage 1: For each neighbor `from` of root, walk at most TTL+1 hops
//     without passing through root. Every other root neighbor `to` reached at
//     depth d gets Set(from, to, d).
//   - Stage 2: For each mid, start, goal in the neighbor set, tighten
//     dist(start, goal) with dist(start, mid) + dist(mid, goal).
//
// Errors:
//   - ErrGraphNil, ErrRootNotFound, or a wrapped bfs error.
//
// Complexity:
//   - Time O(k·(V+E) + k³) for k = deg(root), Space O(k²).
func (gen *Generator) Generate(g *core.Graph, root string) (*Table, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	nbrs, err := g.NeighborIDs(root)
	if err != nil {
		return nil, fmt.Errorf("Generate: root %q: %w", root, ErrRootNotFound)
	}
	t := NewTable(root, nbrs)

	notRoot := func(_, nbr string) bool { return nbr != root }
	for _, from := range t.neighbors {
		res, err := bfs.Walk(g, from,
			bfs.WithMaxDepth(gen.ttl+1),
			bfs.WithFilterNeighbor(notRoot),
		)
		if err != nil {
			return nil, fmt.Errorf("Generate: walk from %q: %w", from, err)
		}
		for _, to := range t.neighbors {
			if to == from {
				continue
			}
			if d, ok := res.Depth[to]; ok {
				t.Set(from, to, d)
			}
		}
	}

	t.closeTriangles()

	return t, nil
}

// closeTriangles runs the Floyd–Warshall k→i→j relaxation over the neighbor set.
func (t *Table) closeTriangles() {
	for _, mid := range t.neighbors {
		for _, start := range t.neighbors {
			dsm := t.Get(start, mid)
			if start == mid || IsInf(dsm) {
				continue
			}
			for _, goal := range t.neighbors {
				if goal == start || goal == mid {
					continue
				}
				dmg := t.Get(mid, goal)
				if IsInf(dmg) {
					continue
				}
				t.Set(start, goal, dsm+dmg)
			}
		}
	}
}
