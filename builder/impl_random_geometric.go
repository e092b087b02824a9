// SPDX-License-Identifier: MIT
// Package: gossipsim/builder
//
// impl_random_geometric.go - implementation of RandomGeometric(n, r, X, Y).
//
// Canonical model:
//   - Vertices land on INTEGER coordinates drawn uniformly from [0,X)×[0,Y):
//     x = rng.Intn(int(X)), then y = rng.Intn(int(Y)), per vertex.
//   - Two vertices are adjacent iff dx² + dy² ≤ r² (closed disc).
//   - Each new vertex is tested against every previously placed vertex.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - r ≥ 0, not NaN (else ErrInvalidRadius).
//   - 1 ≤ X, Y ≤ MaxInt32 (else ErrInvalidRange); fractional ranges truncate.
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n²) distance checks.
//   - Space: O(n) for the placed-coordinate buffer.
//
// Determinism:
//   - Stable vertex order: i asc; draw order x then y.
//   - Stable edge-trial order: new vertex i against placed j asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gossipsim/core"
)

// placed is the integer position of a vertex already in the graph.
type placed struct {
	id   string
	x, y int
}

// RandomGeometric returns a Constructor that samples a random geometric graph
// over n vertices with connection radius r in an X×Y integer area.
func RandomGeometric(n int, radius, xRange, yRange float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := validateMin(MethodRandomGeometric, n, MinGeometricNodes); err != nil {
			return err
		}
		if err := validateRadius(MethodRandomGeometric, radius); err != nil {
			return err
		}
		if err := validateRange(MethodRandomGeometric, xRange, yRange); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomGeometric, ErrNeedRandSource)
		}

		// 2) Place vertices one by one and connect each to its earlier neighbors.
		var (
			spanX, spanY = int(xRange), int(yRange)
			r2           = radius * radius
			pts          = make([]placed, 0, n)
			dx, dy       int
		)
		for i := 0; i < n; i++ {
			p := placed{id: cfg.idFn(i), x: cfg.rng.Intn(spanX), y: cfg.rng.Intn(spanY)}
			if err := g.AddVertex(p.id, float64(p.x), float64(p.y)); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", MethodRandomGeometric, p.id, err)
			}
			for _, q := range pts {
				dx, dy = p.x-q.x, p.y-q.y
				if float64(dx*dx+dy*dy) > r2 {
					continue
				}
				if _, err := g.AddEdge(p.id, q.id); err != nil {
					return fmt.Errorf("%s: AddEdge(%s,%s): %w", MethodRandomGeometric, p.id, q.id, err)
				}
			}
			pts = append(pts, p)
		}

		return nil
	}
}
