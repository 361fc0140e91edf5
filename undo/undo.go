package undo

import (
	"sort"

	"github.com/wynnrig/weightcore/weights"
)

// DefaultCapacity is the stack depth used when none is specified.
const DefaultCapacity = 20

// Snapshot records {group → {vertex → weight}} as captured before a
// mutating call. Weights are raw floats; restore is value-exact.
type Snapshot map[int32]map[int32]float32

// Capture scans the whole store and records the given groups' weight on
// every vertex, explicit zeros included.
func Capture(store *weights.Store, groups []int32) Snapshot {
	snap := make(Snapshot, len(groups))
	vc := store.VertexCount()
	for _, g := range groups {
		m := make(map[int32]float32, vc)
		for v := 0; v < vc; v++ {
			m[int32(v)] = store.Weight(v, g)
		}
		snap[g] = m
	}

	return snap
}

// Stack is a bounded LIFO of snapshots with FIFO eviction on overflow.
type Stack struct {
	capacity int
	snaps    []Snapshot
}

// NewStack returns a stack holding at most capacity snapshots;
// capacity <= 0 selects DefaultCapacity.
func NewStack(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Stack{capacity: capacity, snaps: make([]Snapshot, 0, capacity)}
}

// Len returns the number of snapshots currently held.
func (s *Stack) Len() int { return len(s.snaps) }

// Push appends a snapshot; a full stack silently drops its oldest entry.
func (s *Stack) Push(snap Snapshot) {
	if len(s.snaps) == s.capacity {
		copy(s.snaps, s.snaps[1:])
		s.snaps = s.snaps[:len(s.snaps)-1]
	}
	s.snaps = append(s.snaps, snap)
}

// PopAndApply pops the most recent snapshot and writes its weights back
// into the store verbatim for every recorded (group, vertex) pair. A zero
// captured weight clears the group's slot on that vertex rather than
// storing a zero entry.
//
// Each vertex is rebuilt in a single write: restored pairs always land,
// and groups outside the snapshot keep their current values where slots
// remain. When the merge overflows the vertex capacity the smallest
// non-restored influences are dropped, never the restored ones.
// Returns false when the stack is empty.
func (s *Stack) PopAndApply(store *weights.Store) bool {
	if len(s.snaps) == 0 {
		return false
	}

	snap := s.snaps[len(s.snaps)-1]
	s.snaps = s.snaps[:len(s.snaps)-1]

	// Regroup {group → vertex → weight} into per-vertex restore maps.
	perVertex := make(map[int32]map[int32]float32)
	for g, m := range snap {
		for v, w := range m {
			rv := perVertex[v]
			if rv == nil {
				rv = make(map[int32]float32, len(snap))
				perVertex[v] = rv
			}
			rv[g] = w
		}
	}

	for v, restored := range perVertex {
		restoreVertex(store, int(v), restored)
	}

	return true
}

// restoreVertex replaces vertex v's snapshotted groups with their captured
// weights and carries the remaining groups over, dropping the smallest
// carried influences if the merge exceeds the slot capacity.
func restoreVertex(store *weights.Store, v int, restored map[int32]float32) {
	infl := make([]weights.Influence, 0, weights.Stride)
	for g, w := range restored {
		if w == 0 {
			// Captured as absent: the group stays cleared.
			continue
		}
		infl = append(infl, weights.Influence{Group: g, Weight: w})
	}

	carried := make([]weights.Influence, 0, weights.Stride)
	for g, w := range store.Get(v) {
		if _, snapshotted := restored[g]; snapshotted {
			continue
		}
		carried = append(carried, weights.Influence{Group: g, Weight: w})
	}

	if room := weights.Stride - len(infl); len(carried) > room {
		sort.Slice(carried, func(i, j int) bool {
			if carried[i].Weight != carried[j].Weight {
				return carried[i].Weight > carried[j].Weight
			}

			return carried[i].Group < carried[j].Group
		})
		if room < 0 {
			room = 0
		}
		carried = carried[:room]
	}

	store.SetInfluences(v, append(infl, carried...))
}
