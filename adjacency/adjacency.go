package adjacency

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Build constructs a CSR adjacency graph from an undirected edge list and
// vertex positions.
//
// edges holds two vertex indices per edge (flattened pairs, length 2·E);
// positions holds three coordinates per vertex (flattened xyz, length 3·V).
// Every edge (a,b) contributes the entry (b, w) to a's neighbor range and
// (a, w) to b's, with w = 1/(|pos[a]-pos[b]| + DistanceEpsilon).
//
// Returns ErrDimensionMismatch for malformed array lengths or a negative
// vertexCount, and ErrInvalidTopology when an edge references a vertex
// outside [0, vertexCount). The builder never guesses: the first bad edge
// aborts the build.
func Build(vertexCount int, edges []int32, positions []float32) (*Graph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("%w: negative vertexCount %d", ErrDimensionMismatch, vertexCount)
	}
	if len(edges)%2 != 0 {
		return nil, fmt.Errorf("%w: edge array length %d is not a multiple of 2", ErrDimensionMismatch, len(edges))
	}
	if len(positions) != vertexCount*3 {
		return nil, fmt.Errorf("%w: position array length %d, want %d", ErrDimensionMismatch, len(positions), vertexCount*3)
	}

	edgeCount := len(edges) / 2
	g := &Graph{
		vertexCount: vertexCount,
		starts:      make([]int32, vertexCount+1),
		indices:     make([]int32, edgeCount*2),
		weights:     make([]float32, edgeCount*2),
	}

	// Pass 1: degree count (validates indices on the way).
	for e := 0; e < edgeCount; e++ {
		a, b := edges[e*2], edges[e*2+1]
		if a < 0 || int(a) >= vertexCount || b < 0 || int(b) >= vertexCount {
			return nil, fmt.Errorf("%w: edge %d = (%d, %d)", ErrInvalidTopology, e, a, b)
		}
		g.starts[a]++
		g.starts[b]++
	}

	// Pass 2: exclusive prefix sum turns counts into range starts.
	var cursor int32
	for v := 0; v < vertexCount; v++ {
		count := g.starts[v]
		g.starts[v] = cursor
		cursor += count
	}
	g.starts[vertexCount] = cursor

	// Pass 3: populate neighbor entries, tracking per-vertex write positions.
	pos := make([]int32, vertexCount)
	copy(pos, g.starts[:vertexCount])
	for e := 0; e < edgeCount; e++ {
		a, b := edges[e*2], edges[e*2+1]
		w := edgeWeight(positions, a, b)

		pa := pos[a]
		g.indices[pa] = b
		g.weights[pa] = w
		pos[a]++

		pb := pos[b]
		g.indices[pb] = a
		g.weights[pb] = w
		pos[b]++
	}

	return g, nil
}

// edgeWeight computes the inverse-distance weight between vertices a and b.
func edgeWeight(positions []float32, a, b int32) float32 {
	dx := positions[a*3] - positions[b*3]
	dy := positions[a*3+1] - positions[b*3+1]
	dz := positions[a*3+2] - positions[b*3+2]
	dist := math32.Sqrt(dx*dx + dy*dy + dz*dz)

	return 1.0 / (dist + DistanceEpsilon)
}
