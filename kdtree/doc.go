// Package kdtree implements a static 3D k-d tree over mesh vertex
// positions, answering the two spatial queries an interactive weight brush
// needs: all vertices within a radius of the cursor (range search, feeding
// the geometric falloff) and the single closest vertex (nearest search,
// feeding smear source sampling).
//
// The tree is built once per topology refresh from the same flat xyz
// position array the adjacency builder consumes, and is immutable
// afterward. Build is O(n log² n); both queries are O(log n + k) expected
// on reasonably distributed meshes.
//
// FindRange matches the falloff.RangeQuery signature directly.
package kdtree
