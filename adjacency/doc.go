// Package adjacency builds a compressed sparse row (CSR) neighbor graph
// from an unstructured mesh edge list and vertex positions.
//
// What & Why
//
//	Weight smoothing needs, for every vertex, the set of its topological
//	neighbors together with an edge weight that favors close vertices.
//	Rebuilding that from an edge list on every brush event is wasteful, so
//	the builder runs once per topology change and produces an immutable,
//	flat-array structure:
//
//	  starts[v]..starts[v+1]  — v's range inside indices/weights
//	  indices[k]              — neighbor vertex index
//	  weights[k]              — 1 / (edge length + 1e-4)
//
//	Each undirected edge contributes one directed entry per endpoint, so
//	the index and weight arrays hold exactly 2·E entries.
//
// Errors
//
//   - ErrInvalidTopology   — an edge references a vertex outside [0, n)
//   - ErrDimensionMismatch — the edge or position array has a malformed length
//
// Complexity
//
//	Build: O(V + E) time, O(V + E) memory (three passes: degree count,
//	prefix sum, populate). Neighbor lookup: O(1) range + O(deg) scan.
//
// The graph is immutable after Build and safe for concurrent readers.
// See example_test.go for usage.
package adjacency
