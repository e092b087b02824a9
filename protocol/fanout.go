package protocol

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/gossipsim/core"
	"github.com/katalvlaran/gossipsim/rng"
)

// FixedFanout forwards to a uniform sample, without replacement, of at most
// fanout neighbors other than the sender.
type FixedFanout struct {
	fanout int
	rnd    rng.Source
}

// NewFixedFanout returns fixed-fanout gossip. Panics if fanout < 0.
func NewFixedFanout(fanout int, opts ...VariantOption) *FixedFanout {
	if fanout < 0 {
		panic(fmt.Sprintf("protocol: NewFixedFanout(%d): fanout must be >= 0", fanout))
	}
	c := newVariantConfig(opts)

	return &FixedFanout{fanout: fanout, rnd: c.rnd}
}

// Fanout returns the per-envelope forwarding budget.
func (f *FixedFanout) Fanout() int { return f.fanout }

// Name implements Strategy.
func (f *FixedFanout) Name() string { return "FFG_" + strconv.Itoa(f.fanout) }

// Reset implements Strategy.
func (*FixedFanout) Reset(*core.Graph) error { return nil }

// OnHopStart implements Strategy.
func (*FixedFanout) OnHopStart(*core.Graph) (int, error) { return 0, nil }

// SelectTargets implements Strategy. A pool smaller than fanout is sent in full.
func (f *FixedFanout) SelectTargets(env Envelope, g *core.Graph) ([]string, error) {
	pool, err := eligible(env, g)
	if err != nil {
		return nil, err
	}
	rng.ShuffleStrings(f.rnd, pool)

	return pool[:minInt(f.fanout, len(pool))], nil
}

var _ Strategy = (*FixedFanout)(nil)
