package session

import (
	"time"

	"go.uber.org/zap"

	"github.com/wynnrig/weightcore/brush"
	"github.com/wynnrig/weightcore/falloff"
)

// dab selects the vertices under one brush dab: every vertex within radius
// of point, quadratic falloff scaled by the configured brush strength.
func (s *Session) dab(point [3]float32, radius float32) (falloff.TargetSet, error) {
	return falloff.Geometric(point, radius, s.tree.FindRange,
		falloff.WithFactorScale(s.cfg.Strength))
}

// selection turns explicit seed vertices into a target set. With UseFalloff
// the seeds grow by FalloffSteps rings of decaying factor; otherwise only
// the seeds themselves are edited, at full factor.
func (s *Session) selection(seeds []int32) (falloff.TargetSet, error) {
	steps := 0
	if s.cfg.UseFalloff {
		steps = s.cfg.FalloffSteps
	}

	return falloff.Topological(s.graph, seeds, steps,
		falloff.WithFactorScale(s.cfg.FalloffFactor))
}

// finish logs one operator application and folds per-dab results together.
func (s *Session) finish(op string, targets int, res brush.Result, start time.Time) {
	s.log.Debug("stroke op",
		zap.String("op", op),
		zap.Int("targets", targets),
		zap.Int("touched", res.Touched),
		zap.Int("culled", res.Culled),
		zap.Duration("took", time.Since(start)),
	)
	if res.Culled > 0 {
		s.log.Warn("influences truncated", zap.String("op", op), zap.Int("culled", res.Culled))
	}
}

// PaintSmooth applies one smoothing dab at point. Each covered vertex blends
// toward the edge-weighted average of its neighbors; the configured smooth
// factor and the dab falloff set the blend per vertex.
func (s *Session) PaintSmooth(point [3]float32, radius float32) (brush.Result, error) {
	start := time.Now()
	targets, err := s.dab(point, radius)
	if err != nil {
		return brush.Result{}, err
	}

	res, err := brush.Smooth(s.store, s.graph, targets, s.cfg.SmoothFactor)
	if err != nil {
		return brush.Result{}, err
	}
	s.finish("smooth", len(targets), res, start)

	return res, nil
}

// PaintHarden applies one hardening dab: covered weights of group snap
// toward 0 or 1, whichever is closer.
func (s *Session) PaintHarden(point [3]float32, radius float32, group int32) (brush.Result, error) {
	if group < 0 {
		return brush.Result{}, ErrGroupRange
	}
	start := time.Now()
	targets, err := s.dab(point, radius)
	if err != nil {
		return brush.Result{}, err
	}

	res, err := brush.Harden(s.store, targets, group, s.cfg.HardenFactor)
	if err != nil {
		return brush.Result{}, err
	}
	s.finish("harden", len(targets), res, start)

	return res, nil
}

// PaintAdd applies one additive dab of the configured AddStrength to group,
// normalizing or clamping per the AutoNormalize setting.
func (s *Session) PaintAdd(point [3]float32, radius float32, group int32) (brush.Result, error) {
	if group < 0 {
		return brush.Result{}, ErrGroupRange
	}
	start := time.Now()
	targets, err := s.dab(point, radius)
	if err != nil {
		return brush.Result{}, err
	}

	res, err := brush.Add(s.store, targets, group, s.cfg.AddStrength, s.cfg.AutoNormalize)
	if err != nil {
		return brush.Result{}, err
	}
	s.finish("add", len(targets), res, start)

	return res, nil
}

// PaintSmear applies one smearing dab, dragging covered weights of group
// toward source — typically the value SourceWeight sampled where the stroke
// began. A negative source disables the dab.
func (s *Session) PaintSmear(point [3]float32, radius float32, group int32, source float32) (brush.Result, error) {
	if group < 0 {
		return brush.Result{}, ErrGroupRange
	}
	start := time.Now()
	targets, err := s.dab(point, radius)
	if err != nil {
		return brush.Result{}, err
	}

	res, err := brush.Smear(s.store, targets, group, source)
	if err != nil {
		return brush.Result{}, err
	}
	s.finish("smear", len(targets), res, start)

	return res, nil
}

// SmoothSelection smooths the seed vertices (grown by ring falloff when
// enabled) for the configured number of iterations. Results accumulate
// across iterations; Touched reports the final pass.
func (s *Session) SmoothSelection(seeds []int32) (brush.Result, error) {
	start := time.Now()
	targets, err := s.selection(seeds)
	if err != nil {
		return brush.Result{}, err
	}

	var res brush.Result
	culled := 0
	for i := 0; i < s.cfg.SmoothIterations; i++ {
		res, err = brush.Smooth(s.store, s.graph, targets, s.cfg.SmoothFactor)
		if err != nil {
			return brush.Result{}, err
		}
		culled += res.Culled
	}
	res.Culled = culled
	s.finish("smooth_selection", len(targets), res, start)

	return res, nil
}

// HardenSelection snaps the seed vertices' weights of group toward 0 or 1,
// with ring falloff when enabled.
func (s *Session) HardenSelection(seeds []int32, group int32) (brush.Result, error) {
	if group < 0 {
		return brush.Result{}, ErrGroupRange
	}
	start := time.Now()
	targets, err := s.selection(seeds)
	if err != nil {
		return brush.Result{}, err
	}

	res, err := brush.Harden(s.store, targets, group, s.cfg.HardenFactor)
	if err != nil {
		return brush.Result{}, err
	}
	s.finish("harden_selection", len(targets), res, start)

	return res, nil
}

// AddSelection adds the given strength of group onto the seed vertices, with
// ring falloff when enabled. Unlike PaintAdd the strength is explicit here:
// selection edits usually come from a numeric field, not the brush default.
func (s *Session) AddSelection(seeds []int32, group int32, strength float32) (brush.Result, error) {
	if group < 0 {
		return brush.Result{}, ErrGroupRange
	}
	start := time.Now()
	targets, err := s.selection(seeds)
	if err != nil {
		return brush.Result{}, err
	}

	res, err := brush.Add(s.store, targets, group, strength, s.cfg.AutoNormalize)
	if err != nil {
		return brush.Result{}, err
	}
	s.finish("add_selection", len(targets), res, start)

	return res, nil
}
