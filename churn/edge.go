// File: edge.go
// Role: EdgeChurn, the time-varying link model.
// Determinism:
//   - Original edges are tracked by core.EdgeKey in sorted order, so a seeded
//     source yields the same removals and revivals on every run.
// Invariant:
//   - ActiveCount()+DeadCount() equals the number of original edges at all times.

package churn

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gossipsim/core"
	"github.com/katalvlaran/gossipsim/rng"
)

// Mode selects how EdgeChurn picks the edges it toggles.
type Mode int

const (
	// ModeBernoulli flips every candidate independently with one global rate.
	ModeBernoulli Mode = iota
	// ModeFixedCount toggles exactly k candidates per pass (or all if fewer).
	ModeFixedCount
	// ModeBiased flips with a rate skewed by the checkerboard parity of the edge midpoint.
	ModeBiased
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeBernoulli:
		return "bernoulli"
	case ModeFixedCount:
		return "fixed"
	case ModeBiased:
		return "biased"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// EdgeChurn partitions the original edge set of a graph into active and dead
// edges and moves edges between the two every step.
type EdgeChurn struct {
	rnd rng.Source
	g   *core.Graph

	rangeX, rangeY float64
	cellsX, cellsY int

	rate     float64
	rateSet  bool
	fixed    int
	fixedSet bool
	bias     float64
	biasSet  bool

	keys  []core.EdgeKey        // original edges, sorted
	odd   map[core.EdgeKey]bool // checkerboard parity of the midpoint
	dead  map[core.EdgeKey]bool // currently removed
	armed bool
}

// NewEdgeChurn returns an unbound model in Bernoulli mode with rate 0.
func NewEdgeChurn(opts ...Option) *EdgeChurn {
	o := buildOptions(opts)

	return &EdgeChurn{rnd: o.rnd, dead: make(map[core.EdgeKey]bool)}
}

// SetGraph binds g and snapshots its current edges as the original, all-active
// edge set. rangeX×rangeY is the coordinate plane, split into cellsX×cellsY
// checkerboard cells for ModeBiased. Zero cells disable the checkerboard.
// Edges still dead on a previously bound graph are restored to it first, so
// rebinding never loses an edge.
//
// Errors: ErrNoGraph, ErrInvalidGeometry, or a wrapped core error.
// Complexity: O(E log E).
func (c *EdgeChurn) SetGraph(g *core.Graph, rangeX, rangeY float64, cellsX, cellsY int) error {
	if g == nil {
		return ErrNoGraph
	}
	if rangeX < 0 || rangeY < 0 || cellsX < 0 || cellsY < 0 {
		return fmt.Errorf("SetGraph: range %gx%g cells %dx%d: %w", rangeX, rangeY, cellsX, cellsY, ErrInvalidGeometry)
	}
	if err := c.release(); err != nil {
		return fmt.Errorf("SetGraph: %w", err)
	}

	c.g = g
	c.rangeX, c.rangeY = rangeX, rangeY
	c.cellsX, c.cellsY = cellsX, cellsY
	c.keys = g.EdgeKeys()
	c.dead = make(map[core.EdgeKey]bool)
	c.odd = make(map[core.EdgeKey]bool, len(c.keys))
	c.armed = false

	if c.hasCheckerboard() {
		for _, k := range c.keys {
			mx, my, err := g.Midpoint(k)
			if err != nil {
				return fmt.Errorf("SetGraph: midpoint of %s: %w", k, err)
			}
			c.odd[k] = c.cellParity(mx, my) == 1
		}
	}

	return nil
}

// SetRate selects per-edge probability p for both passes.
// Errors: ErrInvalidRate, ErrModeConflict.
func (c *EdgeChurn) SetRate(p float64) error {
	if !validProbability(p) {
		return fmt.Errorf("SetRate(%g): %w", p, ErrInvalidRate)
	}
	if c.fixedSet {
		return fmt.Errorf("SetRate(%g): %w", p, ErrModeConflict)
	}
	c.rate, c.rateSet = p, true

	return nil
}

// SetFixedCount selects fixed-count mode toggling k edges per pass.
// Errors: ErrInvalidRate, ErrModeConflict.
func (c *EdgeChurn) SetFixedCount(k int) error {
	if k < 0 {
		return fmt.Errorf("SetFixedCount(%d): %w", k, ErrInvalidRate)
	}
	if c.rateSet || c.biasSet {
		return fmt.Errorf("SetFixedCount(%d): %w", k, ErrModeConflict)
	}
	c.fixed, c.fixedSet = k, true

	return nil
}

// SetBias switches to ModeBiased with bias b in [0,1]. The configured rate is
// the base rate of both checkerboard classes.
// Errors: ErrInvalidRate, ErrModeConflict.
func (c *EdgeChurn) SetBias(b float64) error {
	if !validProbability(b) {
		return fmt.Errorf("SetBias(%g): %w", b, ErrInvalidRate)
	}
	if c.fixedSet {
		return fmt.Errorf("SetBias(%g): %w", b, ErrModeConflict)
	}
	c.bias, c.biasSet = b, true

	return nil
}

// Mode reports the active selection mode.
func (c *EdgeChurn) Mode() Mode {
	switch {
	case c.fixedSet:
		return ModeFixedCount
	case c.biasSet:
		return ModeBiased
	default:
		return ModeBernoulli
	}
}

// RateFor returns the effective toggle probability of edge k: the global rate,
// or in ModeBiased rate−rate·bias for odd cells and rate+rate·bias for even
// cells, capped at 1. In ModeFixedCount it returns 0.
func (c *EdgeChurn) RateFor(k core.EdgeKey) float64 {
	switch c.Mode() {
	case ModeFixedCount:
		return 0
	case ModeBiased:
		if c.odd[k] {
			return c.rate - c.rate*c.bias
		}
		return math.Min(1, c.rate+c.rate*c.bias)
	default:
		return c.rate
	}
}

// ActiveCount returns the number of original edges currently present.
func (c *EdgeChurn) ActiveCount() int { return len(c.keys) - len(c.dead) }

// DeadCount returns the number of original edges currently removed.
func (c *EdgeChurn) DeadCount() int { return len(c.dead) }

// Init revives every dead edge and arms the model.
//
// Errors: ErrNoGraph, ErrInvalidGeometry (ModeBiased without a checkerboard),
// or a wrapped core error when an endpoint has vanished.
func (c *EdgeChurn) Init() error {
	if c.g == nil {
		return ErrNoGraph
	}
	if c.Mode() == ModeBiased && !c.hasCheckerboard() {
		return fmt.Errorf("Init: biased mode: %w", ErrInvalidGeometry)
	}
	if err := c.release(); err != nil {
		return fmt.Errorf("Init: %w", err)
	}
	c.armed = true

	return nil
}

// Step runs the removal pass, then the revival pass, and returns the number of
// edges changed. Only edges that were dead when the step began are revival
// candidates; an edge removed in this step stays dead until the next one.
//
// Errors: ErrNotInitialized, or a wrapped core error.
// Complexity: O(E log E).
func (c *EdgeChurn) Step() (int, error) {
	if !c.armed {
		return 0, ErrNotInitialized
	}
	deadBefore := c.deadKeys()
	active := make([]core.EdgeKey, 0, c.ActiveCount())
	for _, k := range c.keys {
		if !c.dead[k] {
			active = append(active, k)
		}
	}

	changed := 0
	for _, k := range c.pick(active) {
		if err := c.g.RemoveEdgeBetween(k.U, k.V); err != nil {
			return changed, fmt.Errorf("Step: remove %s: %w", k, err)
		}
		c.dead[k] = true
		changed++
	}
	for _, k := range c.pick(deadBefore) {
		if err := c.revive(k); err != nil {
			return changed, fmt.Errorf("Step: %w", err)
		}
		changed++
	}

	return changed, nil
}

// pick selects the candidates to toggle according to the active mode.
func (c *EdgeChurn) pick(candidates []core.EdgeKey) []core.EdgeKey {
	if c.Mode() == ModeFixedCount {
		pool := append([]core.EdgeKey(nil), candidates...)
		c.rnd.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		n := c.fixed
		if n > len(pool) {
			n = len(pool)
		}
		return pool[:n]
	}

	out := make([]core.EdgeKey, 0, len(candidates))
	for _, k := range candidates {
		if rng.Bernoulli(c.rnd, c.RateFor(k)) {
			out = append(out, k)
		}
	}

	return out
}

// release revives every dead edge of the currently bound graph.
func (c *EdgeChurn) release() error {
	if c.g == nil {
		return nil
	}
	for _, k := range c.deadKeys() {
		if err := c.revive(k); err != nil {
			return err
		}
	}

	return nil
}

func (c *EdgeChurn) revive(k core.EdgeKey) error {
	if _, err := c.g.AddEdge(k.U, k.V); err != nil {
		return fmt.Errorf("revive %s: %w", k, err)
	}
	delete(c.dead, k)

	return nil
}

func (c *EdgeChurn) deadKeys() []core.EdgeKey {
	out := make([]core.EdgeKey, 0, len(c.dead))
	for k := range c.dead {
		out = append(out, k)
	}
	core.SortEdgeKeys(out)

	return out
}

func (c *EdgeChurn) hasCheckerboard() bool {
	return c.rangeX > 0 && c.rangeY > 0 && c.cellsX > 0 && c.cellsY > 0
}

// cellParity returns (⌊x/cellW⌋ + ⌊y/cellH⌋) mod 2 in {0, 1}.
func (c *EdgeChurn) cellParity(x, y float64) int {
	cx := int(math.Floor(x / (c.rangeX / float64(c.cellsX))))
	cy := int(math.Floor(y / (c.rangeY / float64(c.cellsY))))

	return ((cx+cy)%2 + 2) % 2
}

var _ Model = (*EdgeChurn)(nil)

