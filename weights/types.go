// Package weights defines the store layout constants, the Influence pair,
// and sentinel errors for the weights subpackage of github.com/wynnrig/weightcore.
package weights

import "errors"

// Sentinel errors for store construction.
var (
	// ErrVertexCount indicates a negative vertex count was supplied.
	ErrVertexCount = errors.New("weights: vertex count must be non-negative")
)

const (
	// Stride is the fixed maximum number of group influences stored per vertex.
	Stride = 8

	// SentinelGroup marks an unused slot in the group-index array.
	SentinelGroup int32 = -1

	// WeightEpsilon is the threshold below which an influence is considered
	// negligible and dropped by the operators.
	WeightEpsilon float32 = 1e-4

	// SumEpsilon is the threshold below which a weight sum is treated as zero
	// and normalization is skipped.
	SumEpsilon float32 = 1e-5
)

// Influence is one (group, weight) pair of a vertex's weight distribution.
type Influence struct {
	Group  int32
	Weight float32
}

// Store holds the strided weight representation for vertexCount vertices.
// Vertex indices passed to its methods must lie in [0, VertexCount());
// out-of-range indices panic, matching slice semantics — callers validate
// dimensions once at the session boundary, not per vertex.
type Store struct {
	vertexCount  int
	groupIndices []int32
	groupValues  []float32
	truncations  uint64
}
