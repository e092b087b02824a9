// Package builder generates the random geometric graphs (RGG) the gossip
// simulation runs on, in the “functional‐options” style shared by the rest of
// the module.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        resolve options once, apply Constructors in order.
//     – BuildConnected:    repeat BuildGraph's composition until bfs.Connected holds.
//   - Constructors:
//     – RandomGeometric:   n vertices on integer coordinates in [0,X)×[0,Y),
//     adjacent iff their Euclidean distance is at most r.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed/WithRand: the random source (required by RandomGeometric).
//     – WithIDScheme:      vertex labels; DecimalID ("0","1",…),
//     PrefixedID ("n0","n1",…), PaddedID ("n000",…,"n999").
//
// Guarantees:
//
//   - Determinism: a fixed seed yields the same sequence of graphs, including
//     across BuildConnected retries.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidRadius,
//     ErrInvalidRange, ErrNeedRandSource, ErrConstructFailed) wrapped with the
//     method name.
//
// Example:
//
//	g, attempts, err := builder.BuildConnected(builder.DefaultMaxAttempts,
//		[]builder.BuilderOption{builder.WithSeed(42)},
//		builder.RandomGeometric(400, 10, 150, 150))
package builder
