package experiment

import (
	"fmt"

	"github.com/katalvlaran/gossipsim/mbc"
	"github.com/katalvlaran/gossipsim/protocol"
	"github.com/katalvlaran/gossipsim/rng"
)

// Canonical protocol ids and their numeric aliases.
const (
	ProtocolFlooding = "Flooding"
	ProtocolFFG      = "FFG"
	ProtocolGMBC     = "GMBC"
)

// canonicalID maps a protocol id or numeric alias to its canonical name.
func canonicalID(id string) (string, error) {
	switch id {
	case ProtocolFlooding, "0":
		return ProtocolFlooding, nil
	case ProtocolFFG, "1":
		return ProtocolFFG, nil
	case ProtocolGMBC, "2":
		return ProtocolGMBC, nil
	default:
		return "", fmt.Errorf("%q: %w", id, ErrUnknownProtocol)
	}
}

// NewStrategy builds the forwarding strategy of spec. updateRate and ttl only
// matter to GMBC.
//
// Errors: ErrUnknownProtocol, or a wrapped error for a meaningless fanout or rate.
func NewStrategy(spec ProtocolSpec, updateRate float64, ttl int, src rng.Source) (protocol.Strategy, error) {
	id, err := canonicalID(spec.ID)
	if err != nil {
		return nil, fmt.Errorf("NewStrategy: %w", err)
	}
	if spec.Fanout < 0 {
		return nil, fmt.Errorf("NewStrategy: fanout %d < 0: %w", spec.Fanout, ErrInvalidConfig)
	}

	switch id {
	case ProtocolFlooding:
		return protocol.NewFlood(), nil
	case ProtocolFFG:
		return protocol.NewFixedFanout(spec.Fanout, protocol.WithRand(src)), nil
	default:
		if updateRate < 0 || updateRate > 1 {
			return nil, fmt.Errorf("NewStrategy: update rate %g: %w", updateRate, ErrInvalidConfig)
		}
		if ttl < 0 {
			return nil, fmt.Errorf("NewStrategy: ttl %d: %w", ttl, ErrInvalidConfig)
		}
		return protocol.NewGMBC(spec.Fanout, updateRate,
			protocol.WithRand(src),
			protocol.WithGenerator(mbc.NewGenerator(mbc.WithTTL(ttl))),
		), nil
	}
}

// NewProtocol builds an idle engine for spec.
func NewProtocol(spec ProtocolSpec, updateRate float64, ttl int, src rng.Source) (*protocol.Engine, error) {
	s, err := NewStrategy(spec, updateRate, ttl, src)
	if err != nil {
		return nil, err
	}

	return protocol.New(s), nil
}

// ProtocolName returns the display name of spec ("Flooding", "FFG_4", "GMBG_4").
func ProtocolName(spec ProtocolSpec) (string, error) {
	s, err := NewStrategy(spec, 1, mbc.DefaultTTL, rng.FromSeed(0))
	if err != nil {
		return "", err
	}

	return s.Name(), nil
}
