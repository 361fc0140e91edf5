package weights

import (
	"fmt"
	"sort"
)

// New returns an empty store for vertexCount vertices: every slot holds
// SentinelGroup and weight 0.
func New(vertexCount int) (*Store, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrVertexCount, vertexCount)
	}
	s := &Store{
		vertexCount:  vertexCount,
		groupIndices: make([]int32, vertexCount*Stride),
		groupValues:  make([]float32, vertexCount*Stride),
	}
	for i := range s.groupIndices {
		s.groupIndices[i] = SentinelGroup
	}

	return s, nil
}

// NewFromMaps builds a store from caller-supplied per-vertex group-weight
// maps, one map per vertex. Entries beyond Stride per vertex are truncated
// to the highest-weight ones (counted in Truncations).
func NewFromMaps(perVertex []map[int32]float32) (*Store, error) {
	s, err := New(len(perVertex))
	if err != nil {
		return nil, err
	}
	for v, m := range perVertex {
		s.Set(v, m)
	}

	return s, nil
}

// VertexCount returns the number of vertices the store was sized for.
func (s *Store) VertexCount() int { return s.vertexCount }

// Truncations returns the number of influences culled so far by capacity
// limits. Advisory: the corresponding writes still completed with the
// top-Stride entries kept.
func (s *Store) Truncations() uint64 { return s.truncations }

// Slots returns vertex v's raw group-index and value slots as mutable
// Stride-sized views into the store. Direct slot access exists for the
// batch operators; callers must keep sentinel slots at -1/0 and must not
// hold the views across a Set on the same vertex.
func (s *Store) Slots(v int) (groups []int32, values []float32) {
	base := v * Stride

	return s.groupIndices[base : base+Stride], s.groupValues[base : base+Stride]
}

// Get returns vertex v's weight distribution as a fresh map. A vertex with
// all-sentinel slots yields an empty map: zero influence, not an error.
func (s *Store) Get(v int) map[int32]float32 {
	groups, values := s.Slots(v)
	m := make(map[int32]float32, Stride)
	for k := 0; k < Stride; k++ {
		if groups[k] == SentinelGroup {
			continue
		}
		m[groups[k]] = values[k]
	}

	return m
}

// Set replaces vertex v's distribution with the supplied map, keeping only
// the Stride highest-weight entries. Returns the number of culled entries.
func (s *Store) Set(v int, m map[int32]float32) int {
	infl := make([]Influence, 0, len(m))
	for g, w := range m {
		infl = append(infl, Influence{Group: g, Weight: w})
	}

	return s.SetInfluences(v, infl)
}

// SetInfluences replaces vertex v's distribution with the supplied pairs,
// keeping only the Stride highest-weight entries. The slice is sorted in
// place (weight descending, group ascending for determinism). Returns the
// number of culled entries, which is also added to Truncations.
func (s *Store) SetInfluences(v int, infl []Influence) int {
	sort.Slice(infl, func(i, j int) bool {
		if infl[i].Weight != infl[j].Weight {
			return infl[i].Weight > infl[j].Weight
		}

		return infl[i].Group < infl[j].Group
	})

	culled := 0
	if len(infl) > Stride {
		culled = len(infl) - Stride
		infl = infl[:Stride]
		s.truncations += uint64(culled)
	}

	groups, values := s.Slots(v)
	for k := 0; k < Stride; k++ {
		if k < len(infl) {
			groups[k] = infl[k].Group
			values[k] = infl[k].Weight
		} else {
			groups[k] = SentinelGroup
			values[k] = 0
		}
	}

	return culled
}

// Weight returns vertex v's weight for the given group, 0 if absent.
func (s *Store) Weight(v int, group int32) float32 {
	groups, values := s.Slots(v)
	for k := 0; k < Stride; k++ {
		if groups[k] == group {
			return values[k]
		}
	}

	return 0
}

// SetWeight writes a single group's weight on vertex v, inserting a slot if
// the group is absent. When all slots are occupied the smallest-weight slot
// is evicted if it holds less than w; otherwise the write is dropped.
// Either capacity outcome increments Truncations.
func (s *Store) SetWeight(v int, group int32, w float32) {
	groups, values := s.Slots(v)

	free := -1
	smallest := 0
	for k := 0; k < Stride; k++ {
		if groups[k] == group {
			values[k] = w

			return
		}
		if groups[k] == SentinelGroup {
			if free < 0 {
				free = k
			}

			continue
		}
		if values[k] < values[smallest] || groups[smallest] == SentinelGroup {
			smallest = k
		}
	}

	if free >= 0 {
		groups[free] = group
		values[free] = w

		return
	}

	// Vertex is at capacity: keep the heavier influence.
	s.truncations++
	if w > values[smallest] {
		groups[smallest] = group
		values[smallest] = w
	}
}

// RemoveWeight clears the slot holding the given group on vertex v, if any.
func (s *Store) RemoveWeight(v int, group int32) {
	groups, values := s.Slots(v)
	for k := 0; k < Stride; k++ {
		if groups[k] == group {
			groups[k] = SentinelGroup
			values[k] = 0

			return
		}
	}
}

// Total returns the sum of vertex v's weights across all groups.
func (s *Store) Total(v int) float32 {
	groups, values := s.Slots(v)
	var total float32
	for k := 0; k < Stride; k++ {
		if groups[k] == SentinelGroup {
			continue
		}
		total += values[k]
	}

	return total
}
