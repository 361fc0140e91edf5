package brush

import (
	"github.com/wynnrig/weightcore/falloff"
	"github.com/wynnrig/weightcore/weights"
)

// Add injects strength·f into the active group on every target vertex.
// Negative strength subtracts; the group's raw result is clamped at zero.
//
// With autoNormalize the vertex total is held at 1.0: the active group
// takes min(raw, 1.0) and the other groups are rescaled to fill the rest,
// preserving their proportions. When the other groups hold ~0 they stay at
// zero and the active group keeps its partial total — an accepted
// below-1.0 edge case. A raw result ≥ 1.0 gives the active group the whole
// vertex.
//
// Without autoNormalize the group takes the raw result directly and the
// vertex is uniformly scaled back down only when its total exceeds 1.0
// (plus a small epsilon); totals below 1.0 are legitimate in this mode.
//
// The operator is total over any valid store state: the only error is
// ErrStoreNil.
func Add(store *weights.Store, targets falloff.TargetSet, group int32, strength float32, autoNormalize bool) (Result, error) {
	var res Result
	if store == nil {
		return res, ErrStoreNil
	}

	truncBefore := store.Truncations()
	for _, v := range sortedVertices(targets) {
		f := clamp01(targets[v])
		delta := strength * f
		if delta == 0 {
			continue
		}

		w := store.Weight(int(v), group)
		raw := w + delta
		if raw < 0 {
			raw = 0
		}

		if autoNormalize {
			applyNormalized(store, int(v), group, raw)
		} else {
			applyAdditive(store, int(v), group, raw)
		}
		res.Touched++
	}
	res.Culled = int(store.Truncations() - truncBefore)

	return res, nil
}

// applyNormalized writes the active weight and rescales the other groups so
// the vertex total stays 1.0.
func applyNormalized(store *weights.Store, v int, group int32, raw float32) {
	if raw >= 1.0 {
		// Active takes all.
		store.SetInfluences(v, []weights.Influence{{Group: group, Weight: 1.0}})

		return
	}

	store.SetWeight(v, group, raw)

	groups, values := store.Slots(v)
	var othersSum float32
	for k := 0; k < weights.Stride; k++ {
		if groups[k] == weights.SentinelGroup || groups[k] == group {
			continue
		}
		othersSum += values[k]
	}
	if othersSum <= weights.WeightEpsilon {
		// Nothing to redistribute; active holds a partial total.
		return
	}

	scale := (1.0 - raw) / othersSum
	for k := 0; k < weights.Stride; k++ {
		if groups[k] == weights.SentinelGroup || groups[k] == group {
			continue
		}
		values[k] *= scale
	}
}

// applyAdditive writes the active weight and clamps the vertex total back
// to exactly 1.0 only on overshoot.
func applyAdditive(store *weights.Store, v int, group int32, raw float32) {
	store.SetWeight(v, group, raw)

	total := store.Total(v)
	if total <= 1.0+weights.WeightEpsilon {
		return
	}

	inv := 1.0 / total
	groups, values := store.Slots(v)
	for k := 0; k < weights.Stride; k++ {
		if groups[k] == weights.SentinelGroup {
			continue
		}
		values[k] *= inv
	}
}
