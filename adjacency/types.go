// Package adjacency defines the CSR graph type and sentinel errors
// for the adjacency subpackage of github.com/wynnrig/weightcore.
package adjacency

import "errors"

// Sentinel errors for adjacency construction.
var (
	// ErrInvalidTopology indicates an edge references an out-of-range vertex index.
	ErrInvalidTopology = errors.New("adjacency: edge references vertex outside [0, vertexCount)")
	// ErrDimensionMismatch indicates a malformed edge or position array length.
	ErrDimensionMismatch = errors.New("adjacency: input array length does not match vertex/edge counts")
)

// DistanceEpsilon guards the inverse-distance edge weight against division
// by zero for coincident vertices: weight = 1 / (distance + DistanceEpsilon).
const DistanceEpsilon = 1e-4

// Graph is an immutable CSR adjacency structure over a mesh's vertices.
// starts has vertexCount+1 entries; starts[v]..starts[v+1] delimits vertex
// v's slice of the indices and weights arrays. Indices and weights each hold
// exactly two entries per undirected input edge.
type Graph struct {
	vertexCount int
	starts      []int32
	indices     []int32
	weights     []float32
}

// VertexCount returns the number of vertices the graph was built over.
func (g *Graph) VertexCount() int { return g.vertexCount }

// EdgeEntryCount returns the total number of directed neighbor entries (2·E).
func (g *Graph) EdgeEntryCount() int { return len(g.indices) }

// Degree returns the number of neighbors of vertex v.
func (g *Graph) Degree(v int) int {
	return int(g.starts[v+1] - g.starts[v])
}

// Neighbors returns vertex v's neighbor indices and the matching
// inverse-distance edge weights. The returned slices alias the graph's
// internal arrays and must not be modified.
func (g *Graph) Neighbors(v int) (indices []int32, weights []float32) {
	lo, hi := g.starts[v], g.starts[v+1]

	return g.indices[lo:hi], g.weights[lo:hi]
}
