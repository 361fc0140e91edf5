package weights_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wynnrig/weightcore/weights"
)

// TestNew_Errors rejects a negative vertex count.
func TestNew_Errors(t *testing.T) {
	_, err := weights.New(-1)
	require.ErrorIs(t, err, weights.ErrVertexCount)
}

// TestGet_EmptyVertex verifies all-sentinel slots read back as an empty map.
func TestGet_EmptyVertex(t *testing.T) {
	s, err := weights.New(2)
	require.NoError(t, err)
	require.Empty(t, s.Get(0))
	require.Zero(t, s.Weight(0, 3))
	require.Zero(t, s.Total(0))
}

// TestSetGet_RoundTrip covers the plain write/read path.
func TestSetGet_RoundTrip(t *testing.T) {
	s, _ := weights.New(3)
	in := map[int32]float32{0: 0.7, 4: 0.3}
	culled := s.Set(1, in)
	require.Zero(t, culled)
	require.Equal(t, in, s.Get(1))
	require.InDelta(t, 1.0, s.Total(1), 1e-6)

	// untouched vertices stay empty
	require.Empty(t, s.Get(0))
	require.Empty(t, s.Get(2))
}

// TestSet_TruncatesToStride verifies the top-Stride-by-weight rule and the
// advisory truncation counter.
func TestSet_TruncatesToStride(t *testing.T) {
	s, _ := weights.New(1)
	in := make(map[int32]float32, weights.Stride+2)
	for g := int32(0); g < weights.Stride+2; g++ {
		in[g] = float32(g+1) * 0.01
	}

	culled := s.Set(0, in)
	require.Equal(t, 2, culled)
	require.Equal(t, uint64(2), s.Truncations())

	got := s.Get(0)
	require.Len(t, got, weights.Stride)
	// the two lightest groups (0 and 1) must be gone
	require.NotContains(t, got, int32(0))
	require.NotContains(t, got, int32(1))
	require.Contains(t, got, int32(weights.Stride+1))
}

// TestSetInfluences_DeterministicTieBreak pins the weight-desc, group-asc order.
func TestSetInfluences_DeterministicTieBreak(t *testing.T) {
	s, _ := weights.New(1)
	infl := make([]weights.Influence, 0, weights.Stride+1)
	for g := int32(0); g < weights.Stride+1; g++ {
		infl = append(infl, weights.Influence{Group: g, Weight: 0.1})
	}

	culled := s.SetInfluences(0, infl)
	require.Equal(t, 1, culled)

	got := s.Get(0)
	require.Len(t, got, weights.Stride)
	// equal weights: the highest group id loses
	require.NotContains(t, got, int32(weights.Stride))
	require.Contains(t, got, int32(0))
}

// TestSetWeight_InsertUpdateEvict covers single-slot writes at capacity.
func TestSetWeight_InsertUpdateEvict(t *testing.T) {
	s, _ := weights.New(1)

	// insert + update
	s.SetWeight(0, 5, 0.4)
	require.InDelta(t, 0.4, s.Weight(0, 5), 1e-6)
	s.SetWeight(0, 5, 0.6)
	require.InDelta(t, 0.6, s.Weight(0, 5), 1e-6)

	// fill remaining slots
	for g := int32(0); g < weights.Stride-1; g++ {
		s.SetWeight(0, 100+g, 0.2+float32(g)*0.01)
	}
	require.Len(t, s.Get(0), weights.Stride)
	require.Zero(t, s.Truncations())

	// heavier newcomer evicts the smallest (group 100 at 0.2)
	s.SetWeight(0, 9, 0.5)
	require.Equal(t, uint64(1), s.Truncations())
	require.InDelta(t, 0.5, s.Weight(0, 9), 1e-6)
	require.Zero(t, s.Weight(0, 100))

	// lighter newcomer is dropped, existing slots untouched
	s.SetWeight(0, 10, 0.01)
	require.Equal(t, uint64(2), s.Truncations())
	require.Zero(t, s.Weight(0, 10))
	require.Len(t, s.Get(0), weights.Stride)
}

// TestRemoveWeight clears one slot and leaves the rest alone.
func TestRemoveWeight(t *testing.T) {
	s, _ := weights.New(1)
	s.Set(0, map[int32]float32{1: 0.5, 2: 0.5})

	s.RemoveWeight(0, 1)
	require.Equal(t, map[int32]float32{2: 0.5}, s.Get(0))

	// removing an absent group is a no-op
	s.RemoveWeight(0, 7)
	require.Equal(t, map[int32]float32{2: 0.5}, s.Get(0))
}

// TestNewFromMaps initializes from caller-supplied distributions.
func TestNewFromMaps(t *testing.T) {
	s, err := weights.NewFromMaps([]map[int32]float32{
		{0: 1.0},
		nil,
		{1: 0.25, 2: 0.75},
	})
	require.NoError(t, err)
	require.Equal(t, 3, s.VertexCount())
	require.Equal(t, map[int32]float32{0: 1.0}, s.Get(0))
	require.Empty(t, s.Get(1))
	require.InDelta(t, 1.0, s.Total(2), 1e-6)
}

// TestSlots_RawLayout pins the sentinel padding contract the operators rely on.
func TestSlots_RawLayout(t *testing.T) {
	s, _ := weights.New(1)
	s.Set(0, map[int32]float32{3: 0.9, 7: 0.1})

	groups, values := s.Slots(0)
	require.Len(t, groups, weights.Stride)
	require.Equal(t, int32(3), groups[0]) // heaviest first
	require.Equal(t, int32(7), groups[1])
	for k := 2; k < weights.Stride; k++ {
		require.Equal(t, weights.SentinelGroup, groups[k])
		require.Zero(t, values[k])
	}
}
