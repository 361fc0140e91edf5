package brush

import (
	"github.com/chewxy/math32"

	"github.com/wynnrig/weightcore/falloff"
	"github.com/wynnrig/weightcore/weights"
)

// Harden pushes the active group's weight on every target vertex toward 0
// or 1, whichever is nearer: the snap target is 1.0 when the current weight
// is ≥ 0.5, else 0.0, and the new weight is lerp(current, target, factor·f).
//
// Only the active group changes; other groups keep their exact values and
// no renormalization happens — combine with an explicit normalize pass if
// the caller wants unit totals. A vertex where the group is absent and the
// snap result is zero gains no entry (no zero-weight noise).
//
// Returns ErrStoreNil or ErrFactorRange for invalid input.
func Harden(store *weights.Store, targets falloff.TargetSet, group int32, factor float32) (Result, error) {
	var res Result
	if store == nil {
		return res, ErrStoreNil
	}
	if factor < 0 || factor > 1 {
		return res, ErrFactorRange
	}

	for _, v := range sortedVertices(targets) {
		t := factor * clamp01(targets[v])
		if t <= 0 {
			continue
		}

		w := store.Weight(int(v), group)
		var target float32
		if w >= 0.5 {
			target = 1.0
		}
		nw := w + (target-w)*t

		if math32.Abs(nw-w) < weights.WeightEpsilon {
			continue
		}

		store.SetWeight(int(v), group, nw)
		res.Touched++
	}

	return res, nil
}
