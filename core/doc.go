// Package core provides the mutable in-memory Graph that every simulation
// component reads and mutates in place.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected, unweighted, simple (no self-loops, no parallel edges).
//   - Every vertex carries a fixed (X, Y) coordinate and a Metadata map.
//   - Constant-time edge operations via a mirrored adjacency map:
//     adjacency[u][v] = adjacency[v][u] = edgeID
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Identity rule:
//
//	An edge that is removed and re-added gets a new Edge.ID. Anything that
//	tracks edges across removals (the instability models in package churn)
//	keys them by EdgeKey, the canonical endpoint pair.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string, x, y float64) error   // O(1)
//	RestoreVertex(snapshot Vertex) error       // O(1)
//	RemoveVertex(id string) (int, error)       // O(deg(v)), reports removed edges
//	HasVertex(id string) bool                  // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v string) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error                 // O(1)
//	RemoveEdgeBetween(u, v string) error            // O(1)
//	HasEdge(u, v string) bool                       // O(1)
//
//	// Query
//	NeighborIDs(id string) ([]string, error)   // O(d·log d), sorted
//	Degree(id string) (int, error)             // O(1)
//	Vertices() []string                        // O(V·log V), sorted
//	Edges() []*Edge                            // O(E·log E), by ID
//	EdgeKeys() []EdgeKey                       // O(E·log E), by (U,V)
//
// Collaborator boundary:
//
//	FromTopology(nodes []NodeSpec, edges []EdgeKey) (*Graph, error)
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
// represents a square with four vertices and four edges.
package core
