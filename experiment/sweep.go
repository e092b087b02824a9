package experiment

import (
	"fmt"
	"math"
	"strings"
)

// Kind names the parameter a sweep varies.
type Kind string

// Sweep kinds.
const (
	// KindVarying sweeps the edge churn rate (or, with FixedCount, the number
	// of edges toggled per pass).
	KindVarying Kind = "varying"
	// KindBiased sweeps the checkerboard bias at a fixed edge churn rate.
	KindBiased Kind = "biased"
	// KindChurn sweeps the node churn rate.
	KindChurn Kind = "churn"
	// KindUpdate sweeps the GMBC table refresh rate at a fixed edge churn rate.
	KindUpdate Kind = "update"
)

// Kinds lists every sweep kind in documentation order.
var Kinds = []Kind{KindVarying, KindBiased, KindChurn, KindUpdate}

// ParseKind maps a name (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}

	return "", fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownSweep)
}

// pointScale rounds sweep points to 9 decimals so that 0.1 steps land on
// 0.3 rather than 0.30000000000000004.
const pointScale = 1e9

// MaxSweepPoints caps the number of points a Start/Finish/Delta range may expand to.
const MaxSweepPoints = 100000

// rangeCount returns how many points the Start/Finish/Delta range spans, as a
// float so that a tiny Delta cannot overflow.
func (s SweepConfig) rangeCount() float64 {
	return math.Floor((s.Finish-s.Start)/s.Delta+1e-9) + 1
}

// Points returns the swept values: Values verbatim when set, otherwise
// Start, Start+Delta, ... up to and including Finish. Points are computed
// from the step index, so rounding error never drops the last point. A range
// wider than MaxSweepPoints yields nil.
func (s SweepConfig) Points() []float64 {
	if len(s.Values) > 0 {
		return append([]float64(nil), s.Values...)
	}
	if s.Delta <= 0 || s.Finish < s.Start {
		return nil
	}
	count := s.rangeCount()
	if count > MaxSweepPoints {
		return nil
	}
	pts := make([]float64, int(count))
	for i := range pts {
		pts[i] = math.Round((s.Start+float64(i)*s.Delta)*pointScale) / pointScale
	}

	return pts
}

// checkPoint validates one swept value for the sweep kind.
func (s SweepConfig) checkPoint(v float64) error {
	if s.FixedCount {
		if v < 0 || v != math.Trunc(v) {
			return fmt.Errorf("fixed edge count %g is not a non-negative integer", v)
		}
		return nil
	}
	if v < 0 || v > 1 {
		return fmt.Errorf("%s value %g outside [0,1]", s.Kind, v)
	}

	return nil
}

// ParamColumns returns the CSV columns of the fixed and swept parameters,
// in result-file column order.
func (s SweepConfig) ParamColumns() []string {
	switch s.Kind {
	case KindBiased:
		return []string{"varyingRate", "bias"}
	case KindChurn:
		return []string{"ChurnRate"}
	case KindUpdate:
		return []string{"varyingRate", "updateRate"}
	default:
		if s.FixedCount {
			return []string{"varyingFixNum"}
		}
		return []string{"varyingRate"}
	}
}

// ParamValues returns the row values matching ParamColumns for point v.
func (s SweepConfig) ParamValues(v float64) []float64 {
	switch s.Kind {
	case KindBiased, KindUpdate:
		return []float64{s.VaryingRate, v}
	default:
		return []float64{v}
	}
}

// updateRateFor returns the GMBC refresh rate used at point v.
func (s SweepConfig) updateRateFor(v float64) float64 {
	if s.Kind == KindUpdate {
		return v
	}
	return s.UpdateRate
}

// Preset rewrites the sweep section and trial counts of cfg to the classic
// experiment of kind:
//
//	varying  edge rate 0 to 1 step 0.1, 50 graphs × 10 trials
//	biased   bias 0 to 1 step 0.2 at edge rate 0.2, 50 × 10
//	churn    node rate 0 to 1 step 0.1, 10 × 50
//	update   refresh rate 0 to 1 step 0.2 at edge rate 0.4, 50 × 10
//
// Geometry, protocols and output settings are left alone.
func Preset(cfg *Config, kind Kind) {
	sw := &cfg.Sweep
	sw.Kind = kind
	sw.Start, sw.Finish, sw.Values, sw.FixedCount = 0, 1, nil, false
	cfg.Trials, cfg.GraphTrials = 50, 10

	switch kind {
	case KindBiased:
		sw.Delta, sw.VaryingRate = 0.2, 0.2
	case KindChurn:
		sw.Delta = 0.1
		cfg.Trials, cfg.GraphTrials = 10, 50
	case KindUpdate:
		sw.Delta, sw.VaryingRate = 0.2, 0.4
	default:
		sw.Delta = 0.1
	}
}
