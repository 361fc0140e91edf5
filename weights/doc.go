// Package weights implements the strided per-vertex weight store: a sparse
// {vertex → {group: weight}} mapping laid out as two parallel flat arrays
// for cache-friendly batch operators.
//
// Layout
//
//	groupIndices[v*Stride .. v*Stride+Stride) — group ids, SentinelGroup (-1) when empty
//	groupValues [v*Stride .. v*Stride+Stride) — the matching weights, 0 when empty
//
//	Stride = 8: the maximum number of simultaneous group influences per
//	vertex, matching common skinning-engine limits.
//
// Capacity behavior
//
//	Writing more than Stride influences to a vertex silently keeps the
//	top-Stride entries by weight and drops the rest. The drop is lossy, so
//	the store counts every culled influence; hosts should surface
//	Truncations() to the user as a capacity warning rather than treat it
//	as an error.
//
// Weights need not sum to 1.0 except immediately after a normalizing
// operator (see the brush package). A vertex whose slots are all sentinel
// reads back as an empty map — zero influence is a valid terminal state.
//
// The store is owned by a single editing session and is not safe for
// concurrent mutation.
package weights
