package churn_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/gossipsim/core"
	"github.com/katalvlaran/gossipsim/rng"
	"github.com/stretchr/testify/require"
)

// vertexAt describes a test vertex.
type vertexAt struct {
	id   string
	x, y float64
}

func buildGraph(t *testing.T, vs []vertexAt, edges [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range vs {
		require.NoError(t, g.AddVertex(v.id, v.x, v.y))
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

// randomGraph returns n vertices scattered on a 100×100 plane with edge probability p.
func randomGraph(seed int64, n int, p float64) *core.Graph {
	r := rng.FromSeed(seed)
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddVertex("v"+strconv.Itoa(i), float64(r.Intn(100)), float64(r.Intn(100)))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Bernoulli(r, p) {
				_, _ = g.AddEdge("v"+strconv.Itoa(i), "v"+strconv.Itoa(j))
			}
		}
	}

	return g
}
