// Package bfs provides bounded breadth-first search over a core.Graph,
// returning hop distances and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → hops from start
//   - Honors a hop budget via WithMaxDepth (d>0) or explicit “no limit” (d==0).
//   - Allows pruning individual neighbor edges via WithFilterNeighbor.
//   - OnVisit hook (may abort with an error).
//
// Why
//
//   - The distance oracle floods a bounded region around each neighbor of a
//     root while never passing through the root itself; that is exactly a
//     depth-limited, filtered BFS.
//   - The graph generator rejects disconnected samples with Connected.
//
// Determinism
//
//	core.NeighborIDs returns IDs sorted lexicographically and Walk enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Walk(
//	    g, "n3",
//	    bfs.WithMaxDepth(2),
//	    bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != root }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.NeighborIDs fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
