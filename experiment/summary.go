package experiment

import "time"

// Aggregate summarizes every trial of one protocol at one sweep point.
type Aggregate struct {
	Protocol string  `json:"protocol"`
	Point    float64 `json:"point"`
	Trials   int     `json:"trials"`

	MeanReachability float64 `json:"mean_reachability"`
	MinReachability  float64 `json:"min_reachability"`
	MaxReachability  float64 `json:"max_reachability"`
	MeanMessages     float64 `json:"mean_messages"`
	MeanHops         float64 `json:"mean_hops"`
	MeanEdgeChanges  float64 `json:"mean_edge_changes"`
}

// Summary is what Runner.Run reports once the sweep ends or is cancelled.
type Summary struct {
	RunID      string        `json:"run_id"`
	Started    time.Time     `json:"started"`
	Elapsed    time.Duration `json:"elapsed_ns"`
	Trials     int           `json:"trials"`
	Aggregates []Aggregate   `json:"aggregates"` // in production order
}

type aggKey struct {
	protocol string
	point    float64
}

// summarizer accumulates results into per-(protocol, point) aggregates.
type summarizer struct {
	order []aggKey
	acc   map[aggKey]*Aggregate
	total int
}

func newSummarizer() *summarizer {
	return &summarizer{acc: make(map[aggKey]*Aggregate)}
}

func (s *summarizer) add(r Result) {
	k := aggKey{protocol: r.Protocol, point: r.Point}
	a, ok := s.acc[k]
	if !ok {
		a = &Aggregate{Protocol: r.Protocol, Point: r.Point, MinReachability: r.Reachability, MaxReachability: r.Reachability}
		s.acc[k] = a
		s.order = append(s.order, k)
	}
	s.total++
	a.Trials++
	n := float64(a.Trials)
	// running means
	a.MeanReachability += (r.Reachability - a.MeanReachability) / n
	a.MeanMessages += (float64(r.Messages) - a.MeanMessages) / n
	a.MeanHops += (float64(r.Hops) - a.MeanHops) / n
	a.MeanEdgeChanges += (float64(r.EdgeChanges) - a.MeanEdgeChanges) / n
	if r.Reachability < a.MinReachability {
		a.MinReachability = r.Reachability
	}
	if r.Reachability > a.MaxReachability {
		a.MaxReachability = r.Reachability
	}
}

func (s *summarizer) aggregate(protocol string, point float64) (Aggregate, bool) {
	a, ok := s.acc[aggKey{protocol: protocol, point: point}]
	if !ok {
		return Aggregate{}, false
	}
	return *a, true
}

func (s *summarizer) aggregates() []Aggregate {
	out := make([]Aggregate, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, *s.acc[k])
	}
	return out
}
