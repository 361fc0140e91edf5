// Package brush implements the weight operators that mutate a strided
// weight store under a falloff-blended target set.
//
// Operators
//
//   - Smooth — graph-weighted local averaging across all groups of a
//     vertex, followed by a top-Stride cut and renormalization to 1.0.
//     Needs the adjacency graph; the only operator that does.
//
//   - Harden — pushes the active group's weight toward 0 or 1, whichever
//     is nearer (threshold 0.5). Touches only the active group; other
//     groups keep their exact values. This asymmetry versus Smooth is
//     deliberate: Harden is a single-group sculpting tool, Smooth a
//     whole-vertex blend.
//
//   - Add — injects strength·falloff into the active group. With
//     auto-normalize the other groups are rescaled so the vertex total
//     stays 1.0; without it the total is only clamped back down when it
//     overshoots 1.0. Negative strength subtracts.
//
//   - Smear — drags the active group's weight toward a sampled source
//     value (the weight under the previous cursor position). A negative
//     source disables the stroke. Single-group, like Harden.
//
// Every operator processes target vertices in ascending index order, so
// results are reproducible even though Smooth reads neighbor weights that
// earlier targets in the same call may already have written.
//
// Per-vertex numeric edge cases (zero neighbor edge-weight sums, absent
// groups, negligible results) are handled by documented fallbacks and are
// never errors; only nil inputs, mismatched dimensions and out-of-range
// factors are rejected at the call boundary.
package brush
