// Package mbc implements the distance oracle consulted by distance-biased
// gossip: for a root vertex r, the minimum hop distance between every
// ordered pair of r's neighbors along paths that never pass back through r.
//
// The search radius is bounded by a TTL (default 1): with TTL=1 a neighbor
// sees another neighbor if they are adjacent or share one non-root vertex.
// Pairs never observed hold the sentinel INF; a stored finite value is
// always the minimum of everything observed for that pair.
//
//	      r
//	    / | \
//	   A──B  C        Distance(A,B)=1, Distance(A,C)=INF
//
// A large distance (or INF) between the sender and a candidate suggests the
// edge to the candidate crosses a biconnected-component boundary, which is
// what makes the candidate worth prioritizing.
//
// Tables are never updated in place: every call to Generator.Generate rebuilds
// one from the current topology, so callers that need freshness regenerate.
//
// Complexity: O(k·(V+E) + k³) per table, k = deg(root).
package mbc
