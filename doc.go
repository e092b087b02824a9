// Package gossipsim simulates gossip dissemination over unstable wireless
// networks and measures how far one message spreads.
//
// What is modeled?
//
//	Nodes are scattered at integer coordinates on a plane and linked when
//	they lie within a radio radius (a random geometric graph). While a
//	message spreads hop by hop, an instability model keeps removing and
//	restoring links, or whole nodes, at a configured rate.
//
// Protocols compared:
//
//	Flooding  every node forwards to every neighbor
//	FFG       fixed fanout gossip: forward to k random neighbors
//	GMBC      gossip over minimum boundary clusters: prefer neighbors that
//	          lie in a different local cluster, then fill with near ones
//
// Packages:
//
//	core/        mutable undirected graph with planar vertex positions
//	bfs/         bounded breadth-first walks, connectivity, components
//	builder/     random geometric graph construction
//	mbc/         minimum boundary cluster discovery and distance tables
//	churn/       edge and node instability models
//	protocol/    the hop-by-hop dissemination engine and its strategies
//	experiment/  configuration, parameter sweeps, CSV results
//	telemetry/   Prometheus metrics of a run
//	logging/     zap logger construction
//	rng/         seeded, splittable random sources
//	cmd/gossipsim the command line front end
//
// A trial on a drawn graph:
//
//	model.Init(); engine.Init()
//	for !done { model.Step(); done = engine.Step() }
//
// and reports reachability (infected / vertices), messages and hops.
//
//	go install github.com/katalvlaran/gossipsim/cmd/gossipsim@latest
//	gossipsim sweep churn --seed 42
package gossipsim
