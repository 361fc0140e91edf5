package falloff

import (
	"fmt"

	"github.com/wynnrig/weightcore/adjacency"
)

// Topological expands the seed set ring by ring over the adjacency graph and
// returns a TargetSet with linearly decaying factors.
//
// Seeds get factor 1.0. Ring i (1 ≤ i ≤ steps) gets (steps-i+1)/(steps+1);
// a vertex reached by several seeds keeps the factor of its first (closest)
// discovery. Ring vertices whose scaled factor is not strictly positive are
// still claimed for discovery but omitted from the result. Expansion stops
// after the requested steps or as soon as a ring discovers no new vertex.
// steps ≤ 0 selects only the seeds.
//
// Returns ErrGraphNil, ErrSeedRange for invalid input or ErrOptionViolation
// for bad options.
func Topological(g *adjacency.Graph, seeds []int32, steps int, opts ...Option) (TargetSet, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	targets := make(TargetSet, len(seeds))
	visited := make([]bool, n)

	// Seed the frontier.
	ring := make([]int32, 0, len(seeds))
	for _, v := range seeds {
		if v < 0 || int(v) >= n {
			return nil, fmt.Errorf("%w: seed %d, vertexCount %d", ErrSeedRange, v, n)
		}
		if visited[v] {
			continue
		}
		visited[v] = true
		targets[v] = 1.0
		ring = append(ring, v)
	}

	var next []int32
	for i := 1; i <= steps; i++ {
		factor := clamp01(float32(steps-i+1) / float32(steps+1) * o.factorScale)

		next = next[:0]
		for _, v := range ring {
			indices, _ := g.Neighbors(int(v))
			for _, nbr := range indices {
				if visited[nbr] {
					continue
				}
				visited[nbr] = true
				// A zero scaled factor still claims the vertex for this
				// ring; it just contributes no target.
				if factor > 0 {
					targets[nbr] = factor
				}
				next = append(next, nbr)
			}
		}
		if len(next) == 0 {
			break
		}
		ring, next = next, ring
	}

	return targets, nil
}

// Geometric selects every vertex within radius of point, with quadratic
// falloff 1 - (dist²/radius²). Vertices at or beyond the radius — and any
// whose factor would not be strictly positive — are excluded. radius ≤ 0
// yields an empty set.
//
// The spatial query is caller-supplied; kdtree.(*Tree).FindRange fits.
// Returns ErrQueryNil or ErrOptionViolation for invalid input.
func Geometric(point [3]float32, radius float32, query RangeQuery, opts ...Option) (TargetSet, error) {
	if query == nil {
		return nil, ErrQueryNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	targets := make(TargetSet)
	if radius <= 0 {
		return targets, nil
	}

	invRadiusSq := 1.0 / (radius * radius)
	query(point, radius, func(vertex int32, dist float32) {
		factor := clamp01((1.0 - dist*dist*invRadiusSq) * o.factorScale)
		if factor <= 0 {
			return
		}
		targets[vertex] = factor
	})

	return targets, nil
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
