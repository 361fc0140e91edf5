package falloff_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wynnrig/weightcore/adjacency"
	"github.com/wynnrig/weightcore/falloff"
)

// lineGraph builds the 0-1-2-...-(n-1) chain with unit edges.
func lineGraph(t *testing.T, n int) *adjacency.Graph {
	t.Helper()
	pos := make([]float32, n*3)
	edges := make([]int32, 0, (n-1)*2)
	for i := 0; i < n; i++ {
		pos[i*3] = float32(i)
		if i+1 < n {
			edges = append(edges, int32(i), int32(i+1))
		}
	}
	g, err := adjacency.Build(n, edges, pos)
	require.NoError(t, err)

	return g
}

// TestTopological_Errors verifies invalid input and option rejection.
func TestTopological_Errors(t *testing.T) {
	_, err := falloff.Topological(nil, []int32{0}, 1)
	require.ErrorIs(t, err, falloff.ErrGraphNil)

	g := lineGraph(t, 3)
	_, err = falloff.Topological(g, []int32{5}, 1)
	require.ErrorIs(t, err, falloff.ErrSeedRange)

	_, err = falloff.Topological(g, []int32{0}, 1, falloff.WithFactorScale(-0.5))
	require.ErrorIs(t, err, falloff.ErrOptionViolation)
}

// TestTopological_SeedsOnly covers steps <= 0.
func TestTopological_SeedsOnly(t *testing.T) {
	g := lineGraph(t, 5)
	targets, err := falloff.Topological(g, []int32{2}, 0)
	require.NoError(t, err)
	require.Equal(t, falloff.TargetSet{2: 1.0}, targets)

	targets, err = falloff.Topological(g, []int32{2}, -3)
	require.NoError(t, err)
	require.Equal(t, falloff.TargetSet{2: 1.0}, targets)
}

// TestTopological_RingFactors pins the (steps-i+1)/(steps+1) decay on a chain.
func TestTopological_RingFactors(t *testing.T) {
	g := lineGraph(t, 7)
	targets, err := falloff.Topological(g, []int32{3}, 2)
	require.NoError(t, err)

	require.Len(t, targets, 5)
	require.InDelta(t, 1.0, targets[3], 1e-6)
	// ring 1: (2-1+1)/(2+1) = 2/3
	require.InDelta(t, 2.0/3.0, targets[2], 1e-6)
	require.InDelta(t, 2.0/3.0, targets[4], 1e-6)
	// ring 2: (2-2+1)/(2+1) = 1/3
	require.InDelta(t, 1.0/3.0, targets[1], 1e-6)
	require.InDelta(t, 1.0/3.0, targets[5], 1e-6)
	require.NotContains(t, targets, int32(0))
	require.NotContains(t, targets, int32(6))
}

// TestTopological_Monotonic asserts factors never increase with ring distance.
func TestTopological_Monotonic(t *testing.T) {
	g := lineGraph(t, 12)
	const steps = 6
	targets, err := falloff.Topological(g, []int32{0}, steps)
	require.NoError(t, err)

	prev := targets[0]
	for v := int32(1); v <= steps; v++ {
		require.LessOrEqual(t, targets[v], prev, "factor must not increase at vertex %d", v)
		require.Greater(t, targets[v], float32(0), "ring factors stay above 0")
		prev = targets[v]
	}
}

// TestTopological_FirstDiscoveryWins: a vertex between two seeds keeps the
// factor of its closest discovery.
func TestTopological_FirstDiscoveryWins(t *testing.T) {
	g := lineGraph(t, 5)
	// seeds 0 and 2: vertex 1 is ring 1 from both; vertex 3 and 4 from seed 2 only
	targets, err := falloff.Topological(g, []int32{0, 2}, 3)
	require.NoError(t, err)

	require.InDelta(t, 1.0, targets[0], 1e-6)
	require.InDelta(t, 1.0, targets[2], 1e-6)
	// ring 1 factor, not overwritten by a later ring
	require.InDelta(t, 3.0/4.0, targets[1], 1e-6)
	require.InDelta(t, 3.0/4.0, targets[3], 1e-6)
	require.InDelta(t, 2.0/4.0, targets[4], 1e-6)
}

// TestTopological_EarlyStop expands past the component boundary without error.
func TestTopological_EarlyStop(t *testing.T) {
	g := lineGraph(t, 3)
	targets, err := falloff.Topological(g, []int32{1}, 50)
	require.NoError(t, err)
	require.Len(t, targets, 3)
}

// TestTopological_DuplicateSeeds collapse to a single entry.
func TestTopological_DuplicateSeeds(t *testing.T) {
	g := lineGraph(t, 3)
	targets, err := falloff.Topological(g, []int32{1, 1, 1}, 0)
	require.NoError(t, err)
	require.Equal(t, falloff.TargetSet{1: 1.0}, targets)
}

// fakeQuery serves canned (vertex, dist) pairs as a RangeQuery.
func fakeQuery(pairs map[int32]float32) falloff.RangeQuery {
	return func(_ [3]float32, radius float32, visit func(int32, float32)) {
		for v, d := range pairs {
			if d < radius {
				visit(v, d)
			}
		}
	}
}

// TestGeometric_Errors verifies nil-query and option rejection.
func TestGeometric_Errors(t *testing.T) {
	_, err := falloff.Geometric([3]float32{}, 1.0, nil)
	require.ErrorIs(t, err, falloff.ErrQueryNil)

	_, err = falloff.Geometric([3]float32{}, 1.0, fakeQuery(nil), falloff.WithFactorScale(-1))
	require.ErrorIs(t, err, falloff.ErrOptionViolation)
}

// TestGeometric_QuadraticFalloff pins 1 - d²/r².
func TestGeometric_QuadraticFalloff(t *testing.T) {
	q := fakeQuery(map[int32]float32{0: 0.0, 1: 0.5, 2: 0.9, 3: 1.0, 4: 2.0})
	targets, err := falloff.Geometric([3]float32{}, 1.0, q)
	require.NoError(t, err)

	require.Len(t, targets, 3)
	require.InDelta(t, 1.0, targets[0], 1e-6)
	require.InDelta(t, 0.75, targets[1], 1e-6)
	require.InDelta(t, 1.0-0.81, targets[2], 1e-5)
	// at or beyond the radius: excluded, not factor 0
	require.NotContains(t, targets, int32(3))
	require.NotContains(t, targets, int32(4))
}

// TestGeometric_NonPositiveRadius yields an empty set.
func TestGeometric_NonPositiveRadius(t *testing.T) {
	q := fakeQuery(map[int32]float32{0: 0.0})
	targets, err := falloff.Geometric([3]float32{}, 0, q)
	require.NoError(t, err)
	require.Empty(t, targets)

	targets, err = falloff.Geometric([3]float32{}, -2, q)
	require.NoError(t, err)
	require.Empty(t, targets)
}

// TestFactorScale_ClampsToOne checks sharpened falloff saturates at 1.
func TestFactorScale_ClampsToOne(t *testing.T) {
	q := fakeQuery(map[int32]float32{1: 0.5})
	targets, err := falloff.Geometric([3]float32{}, 1.0, q, falloff.WithFactorScale(2.0))
	require.NoError(t, err)
	require.InDelta(t, 1.0, targets[1], 1e-6) // 0.75*2 clamped

	g := lineGraph(t, 4)
	rings, err := falloff.Topological(g, []int32{0}, 1, falloff.WithFactorScale(4.0))
	require.NoError(t, err)
	require.InDelta(t, 1.0, rings[1], 1e-6) // 0.5*4 clamped
}

// TestFactorScale_ZeroExcludesScaledVertices: a zero scale zeroes every
// scaled factor, and zero-factor vertices never enter the result.
func TestFactorScale_ZeroExcludesScaledVertices(t *testing.T) {
	q := fakeQuery(map[int32]float32{0: 0.0, 1: 0.5})
	targets, err := falloff.Geometric([3]float32{}, 1.0, q, falloff.WithFactorScale(0))
	require.NoError(t, err)
	require.Empty(t, targets)

	// seeds are unscaled; rings vanish at scale 0
	g := lineGraph(t, 4)
	rings, err := falloff.Topological(g, []int32{0}, 2, falloff.WithFactorScale(0))
	require.NoError(t, err)
	require.Equal(t, falloff.TargetSet{0: 1.0}, rings)
}
