// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap/teardown under muEdgeAdj (lock order muVert -> muEdgeAdj).
package core

import (
	"math"
	"sort"
)

// IsNil reports whether the receiver should be treated as nil when stored inside interfaces.
func (v *Vertex) IsNil() bool { return v == nil }

// AddVertex inserts a vertex at (x, y).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, reject duplicates (ErrVertexExists).
//   - Stage 3: Under muEdgeAdj write lock, bootstrap the adjacency bucket.
//
// Unlike a generic container, AddVertex is NOT idempotent: a coordinate is
// fixed at creation and silently keeping the old one would hide caller bugs.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string, x, y float64) error {
	return g.insertVertex(&Vertex{ID: id, X: x, Y: y, Metadata: make(map[string]interface{})})
}

// RestoreVertex re-inserts a previously removed vertex from its snapshot,
// keeping the original coordinate and Metadata. No edges are restored.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexExists.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) RestoreVertex(snapshot Vertex) error {
	meta := snapshot.Metadata
	if meta == nil {
		meta = make(map[string]interface{})
	}
	return g.insertVertex(&Vertex{ID: snapshot.ID, X: snapshot.X, Y: snapshot.Y, Metadata: meta})
}

// insertVertex registers v in the vertex catalog and bootstraps adjacency.
func (g *Graph) insertVertex(v *Vertex) error {
	if v.ID == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[v.ID]; exists {
		return ErrVertexExists
	}
	g.vertices[v.ID] = v

	g.muEdgeAdj.Lock()
	if g.adjacency[v.ID] == nil {
		g.adjacency[v.ID] = make(map[string]string)
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the live vertex record for id. Treat it as read-only.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// RemoveVertex deletes a vertex and all incident edges and reports how many
// edges were removed.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert and muEdgeAdj write locks for an atomic topology update.
//   - Stage 3: Verify presence (ErrVertexNotFound).
//   - Stage 4: Walk the vertex's adjacency bucket, deleting each edge and its mirror.
//   - Stage 5: Delete the vertex record and its bucket.
//
// Complexity:
//   - Time O(deg(v)), Space O(1) extra.
func (g *Graph) RemoveVertex(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return 0, ErrVertexNotFound
	}

	removed := 0
	for nbr, eid := range g.adjacency[id] {
		delete(g.edges, eid)
		delete(g.adjacency[nbr], id)
		removed++
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)

	return removed, nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Bounds returns the bounding box of all vertex coordinates.
// An empty graph reports all zeros.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph) Bounds() (minX, minY, maxX, maxY float64) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if len(g.vertices) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, v := range g.vertices {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}

	return minX, minY, maxX, maxY
}
