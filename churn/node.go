// File: node.go
// Role: NodeChurn, the departing/rejoining node model.
// Determinism:
//   - Nodes are visited in lexicographic ID order every step.
// Invariants:
//   - A node flips at most once per step.
//   - Removal drops exactly the edges incident at removal time.
//   - Revival re-adds an edge to a remembered neighbor iff that neighbor is alive.

package churn

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/gossipsim/core"
	"github.com/katalvlaran/gossipsim/rng"
)

// nodeRecord is what the model remembers about one tracked vertex.
type nodeRecord struct {
	snapshot  core.Vertex // coordinate and metadata to restore
	neighbors []string    // neighbor IDs at bind time
	dead      bool
}

// NodeChurn partitions the vertices of a graph into alive and dead ones and
// flips each vertex with probability churnRate every step.
type NodeChurn struct {
	rnd   rng.Source
	g     *core.Graph
	rate  float64
	order []string
	nodes map[string]*nodeRecord
	armed bool
}

// NewNodeChurn returns an unbound model with churn rate 0.
func NewNodeChurn(opts ...Option) *NodeChurn {
	o := buildOptions(opts)

	return &NodeChurn{rnd: o.rnd, nodes: make(map[string]*nodeRecord)}
}

// SetGraph binds g and remembers every vertex with its coordinate, metadata
// and current neighbor list. All vertices start alive. Nodes still dead on a
// previously bound graph are restored to it first, so rebinding never loses
// a node.
//
// Errors: ErrNoGraph, or a wrapped core error.
// Complexity: O(V log V + E).
func (c *NodeChurn) SetGraph(g *core.Graph) error {
	if g == nil {
		return ErrNoGraph
	}
	if err := c.release(); err != nil {
		return fmt.Errorf("SetGraph: %w", err)
	}
	nodes := make(map[string]*nodeRecord, g.VertexCount())
	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		if err != nil {
			return fmt.Errorf("SetGraph: %w", err)
		}
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return fmt.Errorf("SetGraph: %w", err)
		}
		nodes[id] = &nodeRecord{snapshot: *v, neighbors: nbrs}
	}

	c.g = g
	c.nodes = nodes
	c.order = sortedIDs(nodes)
	c.armed = false

	return nil
}

// SetChurnRate sets the per-node, per-step flip probability.
// Errors: ErrInvalidRate.
func (c *NodeChurn) SetChurnRate(p float64) error {
	if !validProbability(p) {
		return fmt.Errorf("SetChurnRate(%g): %w", p, ErrInvalidRate)
	}
	c.rate = p

	return nil
}

// Init revives every dead node and arms the model.
// Errors: ErrNoGraph, or a wrapped core error.
func (c *NodeChurn) Init() error {
	if c.g == nil {
		return ErrNoGraph
	}
	if err := c.release(); err != nil {
		return fmt.Errorf("Init: %w", err)
	}
	c.armed = true

	return nil
}

// release revives every dead node of the currently bound graph in ID order.
func (c *NodeChurn) release() error {
	if c.g == nil {
		return nil
	}
	for _, id := range c.order {
		if !c.nodes[id].dead {
			continue
		}
		if _, err := c.revive(id); err != nil {
			return err
		}
	}

	return nil
}

// Step visits every tracked node once; with probability churnRate an alive
// node departs and a dead node rejoins. Returns removed plus re-added edges.
//
// Errors: ErrNotInitialized, or a wrapped core error.
// Complexity: O(V + E).
func (c *NodeChurn) Step() (int, error) {
	if !c.armed {
		return 0, ErrNotInitialized
	}

	changed := 0
	for _, id := range c.order {
		if !rng.Bernoulli(c.rnd, c.rate) {
			continue
		}
		var (
			n   int
			err error
		)
		if c.nodes[id].dead {
			n, err = c.revive(id)
		} else {
			n, err = c.remove(id)
		}
		if err != nil {
			return changed, fmt.Errorf("Step: %w", err)
		}
		changed += n
	}

	return changed, nil
}

// NodeCount returns the total number of tracked nodes, alive or dead.
func (c *NodeChurn) NodeCount() int { return len(c.nodes) }

// AliveCount returns the number of tracked nodes currently in the graph.
func (c *NodeChurn) AliveCount() int {
	alive := 0
	for _, rec := range c.nodes {
		if !rec.dead {
			alive++
		}
	}

	return alive
}

// IsAlive reports whether id is tracked and currently in the graph.
func (c *NodeChurn) IsAlive(id string) bool {
	rec, ok := c.nodes[id]
	return ok && !rec.dead
}

// remove detaches id, refreshing its snapshot so that metadata changed while
// alive survives the round trip.
func (c *NodeChurn) remove(id string) (int, error) {
	rec := c.nodes[id]
	v, err := c.g.Vertex(id)
	if err != nil {
		return 0, fmt.Errorf("remove %q: %w", id, err)
	}
	rec.snapshot = *v
	n, err := c.g.RemoveVertex(id)
	if err != nil {
		return 0, fmt.Errorf("remove %q: %w", id, err)
	}
	rec.dead = true

	return n, nil
}

// revive re-inserts id and reconnects it to every remembered neighbor that is alive.
func (c *NodeChurn) revive(id string) (int, error) {
	rec := c.nodes[id]
	if err := c.g.RestoreVertex(rec.snapshot); err != nil {
		return 0, fmt.Errorf("revive %q: %w", id, err)
	}
	rec.dead = false

	added := 0
	for _, nbr := range rec.neighbors {
		if !c.IsAlive(nbr) {
			continue
		}
		if _, err := c.g.AddEdge(id, nbr); err != nil {
			return added, fmt.Errorf("revive %q: edge to %q: %w", id, nbr, err)
		}
		added++
	}

	return added, nil
}

func sortedIDs(m map[string]*nodeRecord) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

var _ Model = (*NodeChurn)(nil)
