package churn_test

import (
	"testing"

	"github.com/katalvlaran/gossipsim/churn"
	"github.com/katalvlaran/gossipsim/core"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestChurnProperties covers edge conservation and node-churn edge symmetry.
func TestChurnProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("edge churn conserves active+dead", prop.ForAll(
		func(seed int64, rate float64, fixed int, mode int) bool {
			g := randomGraph(seed, 12, 0.3)
			total := g.EdgeCount()
			c := churn.NewEdgeChurn(churn.WithSeed(seed))
			if err := c.SetGraph(g, 100, 100, 4, 4); err != nil {
				return false
			}
			switch mode {
			case 0:
				_ = c.SetRate(rate)
			case 1:
				_ = c.SetFixedCount(fixed)
			default:
				_ = c.SetRate(rate)
				_ = c.SetBias(rate)
			}
			if err := c.Init(); err != nil {
				return false
			}
			for step := 0; step < 8; step++ {
				if _, err := c.Step(); err != nil {
					return false
				}
				if c.ActiveCount()+c.DeadCount() != total || g.EdgeCount() != c.ActiveCount() {
					return false
				}
			}
			if err := c.Init(); err != nil {
				return false
			}
			return g.EdgeCount() == total
		},
		gen.Int64Range(1, 1<<40),
		gen.Float64Range(0, 1),
		gen.IntRange(0, 20),
		gen.IntRange(0, 2),
	))

	properties.Property("node churn edge present iff original and both ends alive", prop.ForAll(
		func(seed int64, rate float64) bool {
			g := randomGraph(seed, 12, 0.3)
			original := make(map[core.EdgeKey]bool)
			for _, k := range g.EdgeKeys() {
				original[k] = true
			}
			c := churn.NewNodeChurn(churn.WithSeed(seed))
			if c.SetGraph(g) != nil || c.SetChurnRate(rate) != nil || c.Init() != nil {
				return false
			}
			for step := 0; step < 8; step++ {
				if _, err := c.Step(); err != nil {
					return false
				}
				present := 0
				for k := range original {
					want := c.IsAlive(k.U) && c.IsAlive(k.V)
					if g.HasEdge(k.U, k.V) != want {
						return false
					}
					if want {
						present++
					}
				}
				if g.EdgeCount() != present || g.VertexCount() != c.AliveCount() {
					return false
				}
			}
			if c.Init() != nil {
				return false
			}
			return g.EdgeCount() == len(original) && g.VertexCount() == c.NodeCount()
		},
		gen.Int64Range(1, 1<<40),
		gen.Float64Range(0, 1),
	))

	properties.TestingRun(t)
}
