package protocol

import "github.com/katalvlaran/gossipsim/core"

// Flood forwards to every neighbor except the sender.
type Flood struct{}

// NewFlood returns the flooding strategy.
func NewFlood() *Flood { return &Flood{} }

// Name implements Strategy.
func (*Flood) Name() string { return "Flooding" }

// Reset implements Strategy; flooding keeps no state.
func (*Flood) Reset(*core.Graph) error { return nil }

// OnHopStart implements Strategy; flooding spends nothing up front.
func (*Flood) OnHopStart(*core.Graph) (int, error) { return 0, nil }

// SelectTargets implements Strategy.
func (*Flood) SelectTargets(env Envelope, g *core.Graph) ([]string, error) {
	return eligible(env, g)
}

var _ Strategy = (*Flood)(nil)
