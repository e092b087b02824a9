// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, Degree, IncidentKeys).
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lex asc.
//   - IncidentKeys() returns keys sorted by (U, V).
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.

package core

import "sort"

// NeighborIDs returns the IDs adjacent to id, sorted lexicographically ascending.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert and muEdgeAdj read locks (in that order).
//   - Stage 3: Validate vertex existence (ErrVertexNotFound).
//   - Stage 4: Copy the adjacency bucket keys and sort them.
//
// Returns a freshly allocated slice; callers may retain and mutate it.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	bucket := g.adjacency[id]
	ids := make([]string, 0, len(bucket))
	for nbr := range bucket {
		ids = append(ids, nbr)
	}
	sort.Strings(ids)

	return ids, nil
}

// Degree returns the number of edges incident to id.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.adjacency[id]), nil
}

// IncidentKeys returns the canonical keys of all edges incident to id.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) IncidentKeys(id string) ([]EdgeKey, error) {
	nbrs, err := g.NeighborIDs(id)
	if err != nil {
		return nil, err
	}
	keys := make([]EdgeKey, 0, len(nbrs))
	for _, nbr := range nbrs {
		keys = append(keys, NewEdgeKey(id, nbr))
	}
	SortEdgeKeys(keys)

	return keys, nil
}
