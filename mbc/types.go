// Package mbc defines the per-root neighbor distance table (the "MBC") and
// its sentinel errors.
package mbc

import (
	"errors"
	"fmt"
	"sort"
)

// INF is the distance stored for a pair with no known bounded path.
// It is large enough that INF+INF never overflows an int.
const INF = 1 << 29

// Sentinel errors for oracle generation and queries.
var (
	// ErrGraphNil is returned when Generate is called with a nil graph.
	ErrGraphNil = errors.New("mbc: graph is nil")

	// ErrRootNotFound is returned when the root vertex is absent from the graph.
	ErrRootNotFound = errors.New("mbc: root vertex not found")

	// ErrUndefinedPair is returned when a queried id is not a neighbor of the root.
	ErrUndefinedPair = errors.New("mbc: pair is not defined for this root")
)

// IsInf reports whether d is the "never observed" sentinel.
func IsInf(d int) bool { return d >= INF }

// Pair is an ordered pair of neighbor IDs of the root.
type Pair struct {
	A, B string
}

// Table is the distance oracle of one root vertex, valid for the topology
// observed at generation time.
type Table struct {
	root      string
	neighbors []string            // sorted
	member    map[string]struct{} // neighbor membership
	dist      map[Pair]int
}

// NewTable returns an empty table for root over the given neighbor set.
// The neighbor slice is copied and sorted.
func NewTable(root string, neighbors []string) *Table {
	nbrs := append([]string(nil), neighbors...)
	sort.Strings(nbrs)
	member := make(map[string]struct{}, len(nbrs))
	for _, id := range nbrs {
		member[id] = struct{}{}
	}

	return &Table{
		root:      root,
		neighbors: nbrs,
		member:    member,
		dist:      make(map[Pair]int, len(nbrs)*len(nbrs)),
	}
}

// Root returns the vertex this table belongs to.
func (t *Table) Root() string { return t.root }

// Neighbors returns a copy of the root's neighbor set at generation time, sorted.
func (t *Table) Neighbors() []string { return append([]string(nil), t.neighbors...) }

// Len returns the number of observed (finite) pairs.
func (t *Table) Len() int { return len(t.dist) }

// Get returns the stored distance for (a, b), or INF when never observed.
// Unlike Distance it performs no membership check.
func (t *Table) Get(a, b string) int {
	if d, ok := t.dist[Pair{A: a, B: b}]; ok {
		return d
	}
	return INF
}

// Set stores min(current, d) for the ordered pair (a, b).
// Entries only ever tighten; values at or above INF are ignored.
func (t *Table) Set(a, b string, d int) {
	if IsInf(d) {
		return
	}
	p := Pair{A: a, B: b}
	if old, ok := t.dist[p]; ok && old <= d {
		return
	}
	t.dist[p] = d
}

// Distance returns the hop distance from a to b avoiding the root.
//
// Returns INF with a nil error when both are neighbors of the root but no
// bounded path was observed, and ErrUndefinedPair when either is not.
func (t *Table) Distance(a, b string) (int, error) {
	if _, ok := t.member[a]; !ok {
		return INF, fmt.Errorf("Distance: %q of root %q: %w", a, t.root, ErrUndefinedPair)
	}
	if _, ok := t.member[b]; !ok {
		return INF, fmt.Errorf("Distance: %q of root %q: %w", b, t.root, ErrUndefinedPair)
	}

	return t.Get(a, b), nil
}
