// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for gossipsim/core tests.

package core_test

import (
	"testing"

	"github.com/katalvlaran/gossipsim/core"
	"github.com/stretchr/testify/require"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
)

// newSquare builds the A-B-D-C-A square on the unit grid:
//
//	A(0,0)───B(1,0)
//	│        │
//	C(0,1)───D(1,1)
func newSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(VertexA, 0, 0))
	require.NoError(t, g.AddVertex(VertexB, 1, 0))
	require.NoError(t, g.AddVertex(VertexC, 0, 1))
	require.NoError(t, g.AddVertex(VertexD, 1, 1))
	for _, p := range [][2]string{{VertexA, VertexB}, {VertexB, VertexD}, {VertexD, VertexC}, {VertexC, VertexA}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	return g
}
