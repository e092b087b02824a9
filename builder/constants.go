// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRandomGeometric is the canonical name for the RandomGeometric constructor.
	MethodRandomGeometric = "RandomGeometric"
	// MethodBuildConnected is the canonical name for the BuildConnected orchestrator.
	MethodBuildConnected = "BuildConnected"
)

//-----------------------------------------------------------------------------
// Minimums and Defaults
//-----------------------------------------------------------------------------

// MinGeometricNodes is the smallest meaningful size for a geometric graph.
const MinGeometricNodes = 1

// MinCoordinateRange is the smallest placement range per axis: a range of 1
// still admits the single integer coordinate 0.
const MinCoordinateRange = 1

// DefaultMaxAttempts is the connectivity retry budget used when callers have
// no better number.
const DefaultMaxAttempts = 100
