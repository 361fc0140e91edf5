// Package falloff defines target-set types, tunable options and sentinel
// errors for the falloff subpackage of github.com/wynnrig/weightcore.
package falloff

import (
	"errors"
	"fmt"
)

// Sentinel errors for target selection.
var (
	// ErrGraphNil is returned if a nil adjacency graph is passed.
	ErrGraphNil = errors.New("falloff: adjacency graph is nil")

	// ErrSeedRange is returned when a seed vertex index is out of range.
	ErrSeedRange = errors.New("falloff: seed vertex out of range")

	// ErrQueryNil is returned if a nil spatial query is passed.
	ErrQueryNil = errors.New("falloff: spatial range query is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("falloff: invalid option supplied")
)

// TargetSet maps vertex index → blend factor in [0, 1]. It lives only for
// the duration of one operator call.
type TargetSet map[int32]float32

// RangeQuery reports every vertex within radius of point, together with its
// euclidean distance. kdtree.(*Tree).FindRange satisfies this signature.
type RangeQuery func(point [3]float32, radius float32, visit func(vertex int32, dist float32))

// Option configures target selection via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when the
// selector is invoked.
type Option func(*selectOptions)

type selectOptions struct {
	// factorScale multiplies every non-seed factor, clamped back into [0,1].
	factorScale float32

	// internal error recorded during option parsing
	err error
}

func defaultOptions() selectOptions {
	return selectOptions{factorScale: 1.0}
}

// WithFactorScale scales the falloff factor of every non-seed vertex
// (ring vertices for Topological, all vertices for Geometric). Values above
// 1 sharpen the falloff toward the seed factor; the scaled result is clamped
// to 1. Negative scales are an option violation.
func WithFactorScale(s float32) Option {
	return func(o *selectOptions) {
		if s < 0 {
			o.err = fmt.Errorf("%w: FactorScale cannot be negative (%g)", ErrOptionViolation, s)

			return
		}
		o.factorScale = s
	}
}
