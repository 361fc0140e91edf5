// Package falloff turns a brush interaction into a target set: the vertices
// an operator invocation will modify, each with a blend factor in [0, 1]
// that decays with distance from the interaction seed.
//
// Two selectors are provided:
//
//   - Topological — BFS ring expansion over the adjacency graph. Seed
//     vertices get factor 1.0; ring i (1-indexed, i ≤ steps) gets
//     (steps-i+1)/(steps+1), linearly decaying to just above 0 at the last
//     ring. A vertex discovered in an earlier ring keeps its higher factor.
//     steps ≤ 0 selects only the seeds.
//
//   - Geometric — quadratic radius falloff 1 - (dist²/radius²) over the
//     vertices reported by a caller-supplied spatial range query (see the
//     kdtree package for one). Vertices at or beyond the radius are
//     excluded entirely; radius ≤ 0 selects nothing.
//
// Target sets are ephemeral: build one per operator call and discard it.
//
// Options follow the functional pattern; an invalid option surfaces as
// ErrOptionViolation when the selector runs.
package falloff
