package protocol_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/gossipsim/core"
	"github.com/katalvlaran/gossipsim/protocol"
	"github.com/katalvlaran/gossipsim/rng"
	"github.com/stretchr/testify/require"
)

// recorder wraps a Strategy and tallies what the engine should be charged.
type recorder struct {
	protocol.Strategy
	charges   int
	targets   int
	maxBatch  int
	bounced   bool
	strangers bool
}

func (r *recorder) OnHopStart(g *core.Graph) (int, error) {
	c, err := r.Strategy.OnHopStart(g)
	r.charges += c
	return c, err
}

func (r *recorder) SelectTargets(env protocol.Envelope, g *core.Graph) ([]string, error) {
	out, err := r.Strategy.SelectTargets(env, g)
	r.targets += len(out)
	if len(out) > r.maxBatch {
		r.maxBatch = len(out)
	}
	for _, to := range out {
		if to == env.Sender {
			r.bounced = true
		}
		if !g.HasEdge(env.Receiver, to) {
			r.strangers = true
		}
	}
	return out, err
}

func cycle(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex("n"+strconv.Itoa(i), float64(i), 0))
	}
	for i := 0; i < n; i++ {
		_, err := g.AddEdge("n"+strconv.Itoa(i), "n"+strconv.Itoa((i+1)%n))
		require.NoError(t, err)
	}

	return g
}

func buildGraph(t *testing.T, ids []string, edges [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, id := range ids {
		require.NoError(t, g.AddVertex(id, float64(i), 0))
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

// randomGraph returns n vertices with edge probability p plus a spanning path.
func randomGraph(seed int64, n int, p float64) *core.Graph {
	r := rng.FromSeed(seed)
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddVertex("v"+strconv.Itoa(i), float64(i), 0)
	}
	for i := 1; i < n; i++ {
		_, _ = g.AddEdge("v"+strconv.Itoa(i-1), "v"+strconv.Itoa(i))
	}
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if rng.Bernoulli(r, p) {
				_, _ = g.AddEdge("v"+strconv.Itoa(i), "v"+strconv.Itoa(j))
			}
		}
	}

	return g
}
