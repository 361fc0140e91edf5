// Package brush defines operator results and sentinel errors for the brush
// subpackage of github.com/wynnrig/weightcore.
package brush

import (
	"errors"
	"sort"

	"github.com/wynnrig/weightcore/falloff"
)

// Sentinel errors for operator invocation.
var (
	// ErrStoreNil is returned if a nil weight store is passed.
	ErrStoreNil = errors.New("brush: weight store is nil")

	// ErrGraphNil is returned if Smooth is called without an adjacency graph.
	ErrGraphNil = errors.New("brush: adjacency graph is nil")

	// ErrDimensionMismatch is returned when the store and graph were built
	// for different vertex counts.
	ErrDimensionMismatch = errors.New("brush: store and graph vertex counts differ")

	// ErrFactorRange is returned when an operator factor lies outside [0, 1].
	ErrFactorRange = errors.New("brush: factor must lie in [0, 1]")
)

// Result summarizes one operator call.
type Result struct {
	// Touched counts the target vertices the operator wrote to.
	Touched int

	// Culled counts the influences dropped by the Stride capacity limit
	// during this call. Lossy but non-fatal; hosts should surface it.
	Culled int
}

// sortedVertices returns the target vertices in ascending index order for a
// reproducible processing sequence.
func sortedVertices(targets falloff.TargetSet) []int32 {
	order := make([]int32, 0, len(targets))
	for v := range targets {
		order = append(order, v)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	return order
}

func clamp01(f float32) float32 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}

	return f
}
