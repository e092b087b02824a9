// File: gmbc.go
// Role: Distance-biased gossip. Neighbors with no known short detour from
//       the sender are served before neighbors the sender can reach anyway.
// Oracle freshness:
//   - updateRate == 1: the receiver's oracle is rebuilt right before selecting.
//   - updateRate < 1:  each hop, every vertex rebuilds with probability updateRate.
//   - Either way a vertex picked by the per-hop coin is charged deg(v) messages.
//     At updateRate == 1 the coin always succeeds, so the pre-pass still runs
//     and charges every vertex each hop; only the rebuild moves to selection.
//     Message counts of rate-1 runs therefore include the pre-pass charge.

package protocol

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/gossipsim/core"
	"github.com/katalvlaran/gossipsim/mbc"
	"github.com/katalvlaran/gossipsim/rng"
)

// GMBC is the distance-biased gossip strategy.
type GMBC struct {
	fanout     int
	updateRate float64
	rnd        rng.Source
	gen        *mbc.Generator

	tables    map[string]*mbc.Table
	refreshes int
}

// NewGMBC returns distance-biased gossip.
// Panics if fanout < 0 or updateRate is outside [0,1].
func NewGMBC(fanout int, updateRate float64, opts ...VariantOption) *GMBC {
	if fanout < 0 {
		panic(fmt.Sprintf("protocol: NewGMBC(%d, _): fanout must be >= 0", fanout))
	}
	if updateRate < 0 || updateRate > 1 {
		panic(fmt.Sprintf("protocol: NewGMBC(_, %g): updateRate must be in [0,1]", updateRate))
	}
	c := newVariantConfig(opts)

	return &GMBC{
		fanout:     fanout,
		updateRate: updateRate,
		rnd:        c.rnd,
		gen:        c.gen,
		tables:     make(map[string]*mbc.Table),
	}
}

// Fanout returns the per-envelope forwarding budget.
func (s *GMBC) Fanout() int { return s.fanout }

// UpdateRate returns the per-hop oracle refresh probability.
func (s *GMBC) UpdateRate() float64 { return s.updateRate }

// Refreshes returns how many oracles were rebuilt since the last Reset,
// not counting the Reset itself.
func (s *GMBC) Refreshes() int { return s.refreshes }

// Table returns the current oracle of id, or nil if none was built.
func (s *GMBC) Table(id string) *mbc.Table { return s.tables[id] }

// Name implements Strategy.
func (s *GMBC) Name() string { return "GMBG_" + strconv.Itoa(s.fanout) }

// Reset implements Strategy by building an oracle for every vertex.
func (s *GMBC) Reset(g *core.Graph) error {
	ids := g.Vertices()
	s.tables = make(map[string]*mbc.Table, len(ids))
	s.refreshes = 0
	for _, id := range ids {
		tbl, err := s.gen.Generate(g, id)
		if err != nil {
			return fmt.Errorf("Reset: %w", err)
		}
		s.tables[id] = tbl
	}

	return nil
}

// OnHopStart implements Strategy: the per-hop refresh pass.
func (s *GMBC) OnHopStart(g *core.Graph) (int, error) {
	charge := 0
	for _, id := range g.Vertices() {
		if !rng.Bernoulli(s.rnd, s.updateRate) {
			continue
		}
		deg, err := g.Degree(id)
		if err != nil {
			return charge, fmt.Errorf("OnHopStart: %w", err)
		}
		charge += deg
		if s.updateRate == 1 {
			continue
		}
		if err := s.refresh(g, id); err != nil {
			return charge, fmt.Errorf("OnHopStart: %w", err)
		}
	}

	return charge, nil
}

// SelectTargets implements Strategy.
//
// Implementation:
//   - Stage 1: Rebuild the receiver's oracle when updateRate == 1.
//   - Stage 2: Split eligible neighbors into far (INF or unknown distance from
//     the sender) and near.
//   - Stage 3: Shuffle each tier, far first, keep min(fanout, total).
func (s *GMBC) SelectTargets(env Envelope, g *core.Graph) ([]string, error) {
	if !g.HasVertex(env.Receiver) {
		return nil, nil
	}
	if s.updateRate == 1 {
		if err := s.refresh(g, env.Receiver); err != nil {
			return nil, fmt.Errorf("SelectTargets: %w", err)
		}
	}
	pool, err := eligible(env, g)
	if err != nil {
		return nil, err
	}

	tbl := s.tables[env.Receiver]
	far := make([]string, 0, len(pool))
	near := make([]string, 0, len(pool))
	for _, to := range pool {
		if s.isFar(tbl, env.Sender, to) {
			far = append(far, to)
		} else {
			near = append(near, to)
		}
	}
	rng.ShuffleStrings(s.rnd, far)
	rng.ShuffleStrings(s.rnd, near)
	ordered := append(far, near...)

	return ordered[:minInt(s.fanout, len(ordered))], nil
}

// isFar treats "undefined" (stale oracle, sender not a neighbor) like INF.
func (s *GMBC) isFar(tbl *mbc.Table, from, to string) bool {
	if tbl == nil {
		return true
	}
	d, err := tbl.Distance(from, to)

	return err != nil || mbc.IsInf(d)
}

func (s *GMBC) refresh(g *core.Graph, id string) error {
	tbl, err := s.gen.Generate(g, id)
	if err != nil {
		return err
	}
	s.tables[id] = tbl
	s.refreshes++

	return nil
}

var _ Strategy = (*GMBC)(nil)
