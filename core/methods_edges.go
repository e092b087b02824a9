// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/RemoveEdgeBetween/HasEdge/
//       Edges/EdgeKeys/EdgeCount/Midpoint, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - EdgeKeys() returns keys sorted by (U, V) asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge connects u and v with a new undirected edge and returns its ID.
//
// Steps:
//  1. Validate IDs and reject loops.
//  2. Both endpoints must already exist (no auto-create: a vertex without a
//     coordinate has no meaning here).
//  3. Lock muEdgeAdj, reject a parallel edge.
//  4. Generate eid atomically, store, mirror adjacency.
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed, ErrVertexNotFound, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string) (string, error) {
	if u == "" || v == "" {
		return "", ErrEmptyVertexID
	}
	if u == v {
		return "", ErrLoopNotAllowed
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[u]; !ok {
		return "", ErrVertexNotFound
	}
	if _, ok := g.vertices[v]; !ok {
		return "", ErrVertexNotFound
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, dup := g.adjacency[u][v]; dup {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: u, To: v}
	g.adjacency[u][v] = eid
	g.adjacency[v][u] = eid

	return eid, nil
}

// RemoveEdge deletes one edge by ID together with its mirror.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	delete(g.adjacency[e.From], e.To)
	delete(g.adjacency[e.To], e.From)

	return nil
}

// RemoveEdgeBetween deletes the edge connecting u and v, whatever its current ID.
// Complexity: O(1).
func (g *Graph) RemoveEdgeBetween(u, v string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	eid, ok := g.adjacency[u][v]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)

	return nil
}

// HasEdge reports whether u and v are currently connected.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// Edges returns all edges sorted by Edge.ID asc.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out
}

// EdgeKeys returns the canonical endpoint pairs of all edges, sorted by (U, V).
// Complexity: O(E log E).
func (g *Graph) EdgeKeys() []EdgeKey {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]EdgeKey, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e.Key())
	}
	SortEdgeKeys(out)

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Midpoint returns the midpoint of the segment between the endpoints of k.
// Both vertices must currently exist; the edge itself need not.
func (g *Graph) Midpoint(k EdgeKey) (x, y float64, err error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	a, ok := g.vertices[k.U]
	if !ok {
		return 0, 0, ErrVertexNotFound
	}
	b, ok := g.vertices[k.V]
	if !ok {
		return 0, 0, ErrVertexNotFound
	}

	return (a.X + b.X) / 2, (a.Y + b.Y) / 2, nil
}

// SortEdgeKeys sorts keys by (U, V) ascending in place.
func SortEdgeKeys(keys []EdgeKey) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].U != keys[j].U {
			return keys[i].U < keys[j].U
		}
		return keys[i].V < keys[j].V
	})
}

// edgeIDLess orders "e<n>" IDs numerically so that e10 follows e9.
func edgeIDLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// nextEdgeID returns a new unique textual edge ID ("e1", "e2", ...).
// Uses a monotonic counter incremented atomically; no fmt allocations.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
