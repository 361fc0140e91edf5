// Package kdtree defines the tree structure and sentinel errors for the
// kdtree subpackage of github.com/wynnrig/weightcore.
package kdtree

import (
	"errors"
	"fmt"
	"sort"

	"github.com/chewxy/math32"
)

// Sentinel errors for tree construction.
var (
	// ErrDimensionMismatch indicates the position array is not xyz triples.
	ErrDimensionMismatch = errors.New("kdtree: position array length is not a multiple of 3")
)

const noChild int32 = -1

// node is one tree entry; children index into the nodes slice.
type node struct {
	vertex int32
	left   int32
	right  int32
}

// Tree is an immutable 3D k-d tree over vertex positions.
type Tree struct {
	positions []float32
	nodes     []node
	root      int32
}

// Build constructs a balanced tree from flat xyz vertex positions
// (length 3·V). An empty array yields a valid empty tree.
func Build(positions []float32) (*Tree, error) {
	if len(positions)%3 != 0 {
		return nil, fmt.Errorf("%w: got length %d", ErrDimensionMismatch, len(positions))
	}

	n := len(positions) / 3
	t := &Tree{
		positions: positions,
		nodes:     make([]node, 0, n),
		root:      noChild,
	}

	order := make([]int32, n)
	for i := range order {
		order[i] = int32(i)
	}
	t.root = t.build(order, 0)

	return t, nil
}

// build recursively splits order by the median along the cycling axis and
// returns the subtree's node index, or noChild for an empty span.
func (t *Tree) build(order []int32, depth int) int32 {
	if len(order) == 0 {
		return noChild
	}

	axis := depth % 3
	sort.Slice(order, func(i, j int) bool {
		return t.positions[order[i]*3+int32(axis)] < t.positions[order[j]*3+int32(axis)]
	})

	mid := len(order) / 2
	idx := int32(len(t.nodes))
	t.nodes = append(t.nodes, node{vertex: order[mid]})

	left := t.build(order[:mid], depth+1)
	right := t.build(order[mid+1:], depth+1)
	t.nodes[idx].left = left
	t.nodes[idx].right = right

	return idx
}

// Len returns the number of indexed vertices.
func (t *Tree) Len() int { return len(t.nodes) }

// FindRange visits every vertex within radius of point (inclusive),
// reporting its euclidean distance. Visit order is unspecified. The method
// satisfies falloff.RangeQuery.
func (t *Tree) FindRange(point [3]float32, radius float32, visit func(vertex int32, dist float32)) {
	if radius < 0 {
		return
	}
	t.rangeSearch(t.root, 0, point, radius, visit)
}

func (t *Tree) rangeSearch(idx int32, depth int, p [3]float32, radius float32, visit func(int32, float32)) {
	if idx == noChild {
		return
	}
	nd := t.nodes[idx]

	if d := t.distance(nd.vertex, p); d <= radius {
		visit(nd.vertex, d)
	}

	axis := depth % 3
	diff := p[axis] - t.positions[nd.vertex*3+int32(axis)]

	near, far := nd.left, nd.right
	if diff > 0 {
		near, far = far, near
	}
	t.rangeSearch(near, depth+1, p, radius, visit)
	if math32.Abs(diff) <= radius {
		t.rangeSearch(far, depth+1, p, radius, visit)
	}
}

// FindNearest returns the vertex closest to point and its distance.
// ok is false for an empty tree.
func (t *Tree) FindNearest(point [3]float32) (vertex int32, dist float32, ok bool) {
	if t.root == noChild {
		return 0, 0, false
	}

	best := int32(-1)
	bestDist := float32(math32.MaxFloat32)
	t.nearestSearch(t.root, 0, point, &best, &bestDist)

	return best, bestDist, true
}

func (t *Tree) nearestSearch(idx int32, depth int, p [3]float32, best *int32, bestDist *float32) {
	if idx == noChild {
		return
	}
	nd := t.nodes[idx]

	if d := t.distance(nd.vertex, p); d < *bestDist {
		*bestDist = d
		*best = nd.vertex
	}

	axis := depth % 3
	diff := p[axis] - t.positions[nd.vertex*3+int32(axis)]

	near, far := nd.left, nd.right
	if diff > 0 {
		near, far = far, near
	}
	t.nearestSearch(near, depth+1, p, best, bestDist)
	if math32.Abs(diff) < *bestDist {
		t.nearestSearch(far, depth+1, p, best, bestDist)
	}
}

// distance returns the euclidean distance from vertex v to p.
func (t *Tree) distance(v int32, p [3]float32) float32 {
	dx := t.positions[v*3] - p[0]
	dy := t.positions[v*3+1] - p[1]
	dz := t.positions[v*3+2] - p[2]

	return math32.Sqrt(dx*dx + dy*dy + dz*dz)
}
