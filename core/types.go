// Package core defines the central Graph, Vertex, and Edge types used by the
// simulation: an undirected, unweighted, simple graph whose vertices carry a
// fixed 2-D coordinate.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency). The simulation is sequential, but the
// locks keep read-only consumers (metrics, drivers) safe.
//
// This file declares Vertex, Edge, EdgeKey, Graph, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrVertexExists        - vertex ID is already present.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop requested.
//	ErrMultiEdgeNotAllowed - a second edge between the same endpoints requested.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrVertexExists indicates an insert of an ID that is already present.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph. X and Y are fixed at
// creation and never change. Metadata stores arbitrary attributes (e.g. display
// style) and is carried over when a departed vertex is restored.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// X, Y is the vertex position in the plane.
	X, Y float64

	// Metadata stores arbitrary user data. It is shared, not deep-copied.
	Metadata map[string]interface{}
}

// Edge represents an undirected connection between two vertices.
//
// ID is unique for the lifetime of the Graph. Removing and re-adding the same
// endpoints yields a new ID, which is why instability bookkeeping must use
// EdgeKey rather than *Edge identity.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the endpoint given first to AddEdge.
	From string

	// To is the endpoint given second to AddEdge.
	To string
}

// Key returns the canonical endpoint pair of the edge.
func (e *Edge) Key() EdgeKey { return NewEdgeKey(e.From, e.To) }

// IsNil reports whether the receiver should be treated as nil when stored inside interfaces.
func (e *Edge) IsNil() bool { return e == nil }

// EdgeKey is the canonical unordered endpoint pair of an edge, with U < V.
// Two keys are equal iff they connect the same two vertices.
type EdgeKey struct {
	U, V string
}

// NewEdgeKey returns the canonical key for the pair {a, b}.
// Complexity: O(1).
func NewEdgeKey(a, b string) EdgeKey {
	if b < a {
		a, b = b, a
	}
	return EdgeKey{U: a, V: b}
}

// Other returns the endpoint opposite to id, or "" if id is not an endpoint.
func (k EdgeKey) Other(id string) string {
	switch id {
	case k.U:
		return k.V
	case k.V:
		return k.U
	default:
		return ""
	}
}

// String renders the key as "U-V".
func (k EdgeKey) String() string { return k.U + "-" + k.V }

// Graph is the core in-memory graph data structure.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// Lock order is always muVert -> muEdgeAdj.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[u][v] = edge ID, mirrored as adjacency[v][u].
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
}
