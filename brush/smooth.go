package brush

import (
	"github.com/wynnrig/weightcore/adjacency"
	"github.com/wynnrig/weightcore/falloff"
	"github.com/wynnrig/weightcore/weights"
)

// Smooth blends every target vertex toward the edge-weighted average of its
// neighbors' weights, across all groups at once.
//
// For a vertex v with blend factor f, each group g referenced by v's
// neighbors moves to lerp(current, avg, baseFactor·f), where avg is the
// neighbor average weighted by the adjacency edge weights. Groups present
// on v but absent from every neighbor decay by the same blend. The result
// keeps only the top Stride groups by weight and is renormalized to sum to
// 1.0 whenever the kept sum is non-negligible.
//
// A vertex whose neighbor edge-weight sum is zero (isolated or fully
// degenerate) is left unchanged. Returns ErrStoreNil, ErrGraphNil,
// ErrDimensionMismatch or ErrFactorRange for invalid input.
func Smooth(store *weights.Store, g *adjacency.Graph, targets falloff.TargetSet, baseFactor float32) (Result, error) {
	var res Result
	if store == nil {
		return res, ErrStoreNil
	}
	if g == nil {
		return res, ErrGraphNil
	}
	if store.VertexCount() != g.VertexCount() {
		return res, ErrDimensionMismatch
	}
	if baseFactor < 0 || baseFactor > 1 {
		return res, ErrFactorRange
	}

	accum := make(map[int32]float32, weights.Stride*2)
	blended := make([]weights.Influence, 0, weights.Stride*2)

	for _, v := range sortedVertices(targets) {
		t := baseFactor * clamp01(targets[v])
		if t <= 0 {
			continue
		}

		// Accumulate edge-weighted neighbor sums per group.
		clear(accum)
		var totalEdge float32
		indices, edgeWeights := g.Neighbors(int(v))
		for i, nbr := range indices {
			ew := edgeWeights[i]
			totalEdge += ew

			nGroups, nValues := store.Slots(int(nbr))
			for k := 0; k < weights.Stride; k++ {
				if nGroups[k] == weights.SentinelGroup || nValues[k] <= 0 {
					continue
				}
				accum[nGroups[k]] += nValues[k] * ew
			}
		}

		// Degenerate: nothing to average against, leave the vertex alone.
		if totalEdge <= weights.SumEpsilon {
			continue
		}
		invTotal := 1.0 / totalEdge

		blended = blended[:0]
		vGroups, vValues := store.Slots(int(v))

		// Groups seen on neighbors: lerp toward the average.
		for group, sum := range accum {
			avg := sum * invTotal
			var cur float32
			for k := 0; k < weights.Stride; k++ {
				if vGroups[k] == group {
					cur = vValues[k]

					break
				}
			}
			nw := cur + (avg-cur)*t
			if nw > weights.WeightEpsilon {
				blended = append(blended, weights.Influence{Group: group, Weight: nw})
			}
		}

		// Groups only on the vertex itself: decay toward zero.
		for k := 0; k < weights.Stride; k++ {
			if vGroups[k] == weights.SentinelGroup || vValues[k] <= 0 {
				continue
			}
			if _, seen := accum[vGroups[k]]; seen {
				continue
			}
			nw := vValues[k] * (1 - t)
			if nw > weights.WeightEpsilon {
				blended = append(blended, weights.Influence{Group: vGroups[k], Weight: nw})
			}
		}

		// Top-Stride cut, then renormalize the kept set.
		res.Culled += store.SetInfluences(int(v), blended)
		kGroups, kValues := store.Slots(int(v))
		var total float32
		for k := 0; k < weights.Stride; k++ {
			if kGroups[k] == weights.SentinelGroup {
				continue
			}
			total += kValues[k]
		}
		if total > weights.SumEpsilon {
			inv := 1.0 / total
			for k := 0; k < weights.Stride; k++ {
				if kGroups[k] == weights.SentinelGroup {
					continue
				}
				kValues[k] *= inv
			}
		}
		res.Touched++
	}

	return res, nil
}
