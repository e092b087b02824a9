package bfs

import (
	"fmt"

	"github.com/katalvlaran/gossipsim/core"
)

// Components partitions g into connected components, covering every vertex
// like a full-forest traversal. Components are ordered by their lowest ID;
// each lists its vertices in walk order from that ID.
//
// opts apply to every walk. A caller OnVisit hook still runs for each vertex;
// a context stops the traversal between or inside walks.
//
// Errors: ErrGraphNil, ErrOptionViolation, or a wrapped Walk error.
// Complexity: O(V + E).
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	seen := make(map[string]bool, g.VertexCount())
	hook := o.OnVisit
	walkOpts := append(append([]Option(nil), opts...), WithOnVisit(func(id string, depth int) error {
		seen[id] = true
		return hook(id, depth)
	}))

	var comps [][]string
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := Walk(g, id, walkOpts...)
		if err != nil {
			return nil, fmt.Errorf("Components: from %q: %w", id, err)
		}
		comps = append(comps, res.Order)
	}

	return comps, nil
}

// LargestComponent returns the size of the biggest connected component of g,
// 0 for an empty graph. It bounds the reachability of any static
// dissemination on g.
//
// Errors: as Components.
func LargestComponent(g *core.Graph, opts ...Option) (int, error) {
	comps, err := Components(g, opts...)
	if err != nil {
		return 0, err
	}
	best := 0
	for _, c := range comps {
		if len(c) > best {
			best = len(c)
		}
	}

	return best, nil
}
