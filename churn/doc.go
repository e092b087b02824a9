// Package churn implements the two graph instability models a gossip trial
// runs against. Each is stepped once per hop, strictly before the protocol
// observes the graph for that hop.
//
// EdgeChurn ("time-varying links") keeps the original edge set split into
// active and dead edges. A step first removes active edges, then revives edges
// that were already dead when the step began. Three selection modes exist:
//
//	ModeBernoulli   every candidate flips with probability rate
//	ModeFixedCount  a shuffled sample of exactly k candidates flips (all, if fewer)
//	ModeBiased      the plane is a cellsX×cellsY checkerboard; an edge whose
//	                midpoint lies in an odd cell flips with rate−rate·bias,
//	                one in an even cell with rate+rate·bias
//
// NodeChurn keeps every vertex alive or dead. A step visits each vertex once
// and flips it with probability churnRate: a departing vertex takes its
// incident edges with it; a rejoining vertex is restored with its coordinate
// and metadata and reconnected to those of its original neighbors that are
// alive at that moment.
//
// Both models track topology by identity (vertex ID, core.EdgeKey), never by
// pointer, because the graph hands out fresh records on every re-insert.
//
// Errors:
//
//	ErrNotInitialized  Step before Init
//	ErrNoGraph         no graph bound
//	ErrInvalidRate     probability outside [0,1] or negative count
//	ErrModeConflict    SetRate/SetBias combined with SetFixedCount
//	ErrInvalidGeometry unusable checkerboard for ModeBiased
package churn
