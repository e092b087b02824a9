package builder_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gossipsim/bfs"
	"github.com/katalvlaran/gossipsim/builder"
	"github.com/katalvlaran/gossipsim/core"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withinRadius reports whether the coordinates of u and v are at most r apart.
func withinRadius(t *testing.T, g *core.Graph, u, v string, r float64) bool {
	t.Helper()
	a, err := g.Vertex(u)
	require.NoError(t, err)
	b, err := g.Vertex(v)
	require.NoError(t, err)
	dx, dy := a.X-b.X, a.Y-b.Y

	return dx*dx+dy*dy <= r*r
}

// TestRandomGeometric_Validation verifies the sentinel for every invalid input.
func TestRandomGeometric_Validation(t *testing.T) {
	seeded := []builder.BuilderOption{builder.WithSeed(1)}
	tests := []struct {
		name  string
		opts  []builder.BuilderOption
		ctor  builder.Constructor
		check error
	}{
		{"zero nodes", seeded, builder.RandomGeometric(0, 10, 100, 100), builder.ErrTooFewVertices},
		{"negative radius", seeded, builder.RandomGeometric(5, -1, 100, 100), builder.ErrInvalidRadius},
		{"NaN radius", seeded, builder.RandomGeometric(5, math.NaN(), 100, 100), builder.ErrInvalidRadius},
		{"empty x range", seeded, builder.RandomGeometric(5, 10, 0.5, 100), builder.ErrInvalidRange},
		{"NaN y range", seeded, builder.RandomGeometric(5, 10, 100, math.NaN()), builder.ErrInvalidRange},
		{"no rng", nil, builder.RandomGeometric(5, 10, 100, 100), builder.ErrNeedRandSource},
		{"nil constructor", seeded, nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.opts, tc.ctor)
			require.ErrorIs(t, err, tc.check)
			assert.Nil(t, g)
		})
	}
}

// TestRandomGeometric_Coordinates verifies integer placement inside the area
// and the closed-disc adjacency rule in both directions.
func TestRandomGeometric_Coordinates(t *testing.T) {
	const (
		n      = 120
		radius = 12.0
		xRange = 80.0
		yRange = 60.0
	)
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)},
		builder.RandomGeometric(n, radius, xRange, yRange))
	require.NoError(t, err)
	require.Equal(t, n, g.VertexCount())

	ids := g.Vertices()
	for _, id := range ids {
		v, err := g.Vertex(id)
		require.NoError(t, err)
		assert.Equal(t, math.Trunc(v.X), v.X, "x of %s must be integral", id)
		assert.Equal(t, math.Trunc(v.Y), v.Y, "y of %s must be integral", id)
		assert.True(t, v.X >= 0 && v.X < xRange)
		assert.True(t, v.Y >= 0 && v.Y < yRange)
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			assert.Equal(t, withinRadius(t, g, ids[i], ids[j], radius), g.HasEdge(ids[i], ids[j]),
				"pair %s-%s", ids[i], ids[j])
		}
	}
}

// TestRandomGeometric_Deterministic verifies that equal seeds give equal graphs.
func TestRandomGeometric_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(99), builder.WithPrefixedIDs("n")},
			builder.RandomGeometric(50, 15, 100, 100))
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	assert.Equal(t, a.Vertices(), b.Vertices())
	assert.Equal(t, a.EdgeKeys(), b.EdgeKeys())
	assert.Contains(t, a.Vertices(), "n0")
}

// TestRandomGeometric_ZeroRadiusSinglePoint verifies that a 1×1 area with
// radius 0 stacks every vertex on the origin and connects them all.
func TestRandomGeometric_ZeroRadiusSinglePoint(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(3)},
		builder.RandomGeometric(4, 0, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())
}

// TestBuildConnected verifies the retry loop and its failure mode.
func TestBuildConnected(t *testing.T) {
	t.Run("dense graph connects first time", func(t *testing.T) {
		g, attempts, err := builder.BuildConnected(5,
			[]builder.BuilderOption{builder.WithSeed(11)},
			builder.RandomGeometric(30, 200, 100, 100))
		require.NoError(t, err)
		assert.Equal(t, 1, attempts)
		assert.True(t, bfs.Connected(g))
	})

	t.Run("isolated vertices never connect", func(t *testing.T) {
		g, attempts, err := builder.BuildConnected(3,
			[]builder.BuilderOption{builder.WithSeed(11)},
			builder.RandomGeometric(2, 0, 1000, 1000))
		// two vertices on a 1000×1000 grid almost never coincide
		require.ErrorIs(t, err, builder.ErrConstructFailed)
		assert.Nil(t, g)
		assert.Equal(t, 3, attempts)
	})

	t.Run("bad attempt budget", func(t *testing.T) {
		_, _, err := builder.BuildConnected(0, nil, builder.RandomGeometric(2, 1, 1, 1))
		require.ErrorIs(t, err, builder.ErrOptionViolation)
	})

	t.Run("constructor errors are not retried", func(t *testing.T) {
		_, attempts, err := builder.BuildConnected(10, nil, builder.RandomGeometric(2, 1, 1, 1))
		require.ErrorIs(t, err, builder.ErrNeedRandSource)
		assert.Equal(t, 1, attempts)
	})

	t.Run("retries draw fresh graphs", func(t *testing.T) {
		// Three vertices on a 2×2 grid with radius 1 connect only for some
		// layouts; each retry redraws the coordinates.
		g, attempts, err := builder.BuildConnected(500,
			[]builder.BuilderOption{builder.WithSeed(5)},
			builder.RandomGeometric(3, 1, 2, 2))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, attempts, 1)
		assert.True(t, bfs.Connected(g))
	})
}

// TestRandomGeometric_Properties checks the adjacency rule over random parameters.
func TestRandomGeometric_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	properties := gopter.NewProperties(parameters)

	properties.Property("edges are exactly the pairs within radius", prop.ForAll(
		func(seed int64, n int, radius float64) bool {
			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)},
				builder.RandomGeometric(n, radius, 50, 50))
			if err != nil {
				return false
			}
			ids := g.Vertices()
			for i := 0; i < len(ids); i++ {
				a, _ := g.Vertex(ids[i])
				for j := i + 1; j < len(ids); j++ {
					b, _ := g.Vertex(ids[j])
					dx, dy := a.X-b.X, a.Y-b.Y
					if (dx*dx+dy*dy <= radius*radius) != g.HasEdge(ids[i], ids[j]) {
						return false
					}
				}
			}
			return g.VertexCount() == n
		},
		gen.Int64Range(1, 1<<30),
		gen.IntRange(1, 40),
		gen.Float64Range(0, 30),
	))

	properties.TestingRun(t)
}
