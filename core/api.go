// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Collaborator-facing constructor for prebuilt topologies.
// Policy:
//   - Connectivity is the generator's job; FromTopology does not re-check it.
//   - Input order does not matter; the resulting Graph is deterministic.

package core

import "fmt"

// NodeSpec describes one vertex handed over by an external generator.
type NodeSpec struct {
	ID       string
	X, Y     float64
	Metadata map[string]interface{}
}

// FromTopology builds a Graph from prebuilt vertices and edges.
//
// Implementation:
//   - Stage 1: Insert every NodeSpec with its coordinate and metadata.
//   - Stage 2: Connect every EdgeKey; endpoints must be among the nodes.
//
// Errors:
//   - Any vertex or edge sentinel from the core, wrapped with the offending item.
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func FromTopology(nodes []NodeSpec, edges []EdgeKey) (*Graph, error) {
	g := NewGraph()
	for _, n := range nodes {
		if err := g.RestoreVertex(Vertex{ID: n.ID, X: n.X, Y: n.Y, Metadata: n.Metadata}); err != nil {
			return nil, fmt.Errorf("FromTopology: vertex %q: %w", n.ID, err)
		}
	}
	for _, k := range edges {
		if _, err := g.AddEdge(k.U, k.V); err != nil {
			return nil, fmt.Errorf("FromTopology: edge %s: %w", k, err)
		}
	}

	return g, nil
}
