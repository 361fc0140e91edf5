package brush

import (
	"github.com/chewxy/math32"

	"github.com/wynnrig/weightcore/falloff"
	"github.com/wynnrig/weightcore/weights"
)

// Smear drags the active group's weight on every target vertex toward a
// sampled source value: lerp(current, source, f). The source is typically
// the group's weight under the previous cursor position (see
// session.SourceWeight); a negative source means "no valid sample" and
// disables the whole call.
//
// Like Harden this is a single-group tool: other groups keep their exact
// values. Changes below the weight epsilon are skipped, so smearing a
// region that already matches the source is a no-op.
//
// Returns ErrStoreNil for a nil store.
func Smear(store *weights.Store, targets falloff.TargetSet, group int32, source float32) (Result, error) {
	var res Result
	if store == nil {
		return res, ErrStoreNil
	}
	if source < 0 {
		return res, nil
	}

	truncBefore := store.Truncations()
	for _, v := range sortedVertices(targets) {
		f := clamp01(targets[v])
		if f <= 0 {
			continue
		}

		w := store.Weight(int(v), group)
		nw := w + (source-w)*f
		if math32.Abs(nw-w) < weights.WeightEpsilon {
			continue
		}

		store.SetWeight(int(v), group, nw)
		res.Touched++
	}
	res.Culled = int(store.Truncations() - truncBefore)

	return res, nil
}
