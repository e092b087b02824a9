// SPDX-License-Identifier: MIT
package core_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/katalvlaran/gossipsim/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nConcurrent = 100

// TestGraph_ConcurrentReadersAndWriters runs mixed mutations and queries under -race.
func TestGraph_ConcurrentReadersAndWriters(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("hub", 0, 0))
	for i := 0; i < nConcurrent; i++ {
		require.NoError(t, g.AddVertex("v"+strconv.Itoa(i), float64(i), 0))
	}

	var wg sync.WaitGroup
	errs := make(chan error, nConcurrent)
	for i := 0; i < nConcurrent; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			if _, err := g.AddEdge("hub", "v"+strconv.Itoa(i)); err != nil {
				errs <- err
			}
		}(i)
		go func() {
			defer wg.Done()
			_, _ = g.NeighborIDs("hub")
			_ = g.EdgeKeys()
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	deg, err := g.Degree("hub")
	require.NoError(t, err)
	assert.Equal(t, nConcurrent, deg)

	seen := make(map[string]bool, nConcurrent)
	for _, e := range g.Edges() {
		assert.False(t, seen[e.ID], "duplicate edge id %s", e.ID)
		seen[e.ID] = true
	}
}
