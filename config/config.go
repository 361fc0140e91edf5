package config

import (
	"errors"
	"fmt"
)

// ErrInvalid indicates a configuration value outside its documented range.
var ErrInvalid = errors.New("config: invalid value")

// Brush bundles the interactive editing defaults.
type Brush struct {
	// RadiusPx is the screen-space brush radius in pixels, [1, 1000].
	RadiusPx int `yaml:"radius_px"`

	// Strength is the global brush strength, [0.01, 1].
	Strength float32 `yaml:"strength"`

	// UseFalloff enables ring falloff for selection-based edits.
	UseFalloff bool `yaml:"use_falloff"`

	// FalloffSteps is the topological ring count, [1, 10].
	FalloffSteps int `yaml:"falloff_steps"`

	// FalloffFactor scales non-seed ring factors, [0, 2].
	FalloffFactor float32 `yaml:"falloff_factor"`

	// AutoNormalize keeps vertex totals at 1.0 during Add.
	AutoNormalize bool `yaml:"auto_normalize"`

	// SmoothFactor is the per-pass smoothing blend, [0, 1].
	SmoothFactor float32 `yaml:"smooth_factor"`

	// SmoothIterations is the number of smoothing passes per call, [1, 10].
	SmoothIterations int `yaml:"smooth_iterations"`

	// HardenFactor is the snap blend for Harden, [0, 1].
	HardenFactor float32 `yaml:"harden_factor"`

	// AddStrength is the default additive delta, [-1, 1].
	AddStrength float32 `yaml:"add_strength"`

	// UndoDepth is the snapshot stack capacity, [1, 100].
	UndoDepth int `yaml:"undo_depth"`
}

// Default returns the built-in brush defaults.
func Default() Brush {
	return Brush{
		RadiusPx:         50,
		Strength:         0.5,
		UseFalloff:       false,
		FalloffSteps:     2,
		FalloffFactor:    1.0,
		AutoNormalize:    false,
		SmoothFactor:     0.5,
		SmoothIterations: 1,
		HardenFactor:     1.0,
		AddStrength:      0.1,
		UndoDepth:        20,
	}
}

// Validate checks every field against its documented range.
func (b Brush) Validate() error {
	switch {
	case b.RadiusPx < 1 || b.RadiusPx > 1000:
		return fmt.Errorf("%w: radius_px %d outside [1, 1000]", ErrInvalid, b.RadiusPx)
	case b.Strength < 0.01 || b.Strength > 1:
		return fmt.Errorf("%w: strength %g outside [0.01, 1]", ErrInvalid, b.Strength)
	case b.FalloffSteps < 1 || b.FalloffSteps > 10:
		return fmt.Errorf("%w: falloff_steps %d outside [1, 10]", ErrInvalid, b.FalloffSteps)
	case b.FalloffFactor < 0 || b.FalloffFactor > 2:
		return fmt.Errorf("%w: falloff_factor %g outside [0, 2]", ErrInvalid, b.FalloffFactor)
	case b.SmoothFactor < 0 || b.SmoothFactor > 1:
		return fmt.Errorf("%w: smooth_factor %g outside [0, 1]", ErrInvalid, b.SmoothFactor)
	case b.SmoothIterations < 1 || b.SmoothIterations > 10:
		return fmt.Errorf("%w: smooth_iterations %d outside [1, 10]", ErrInvalid, b.SmoothIterations)
	case b.HardenFactor < 0 || b.HardenFactor > 1:
		return fmt.Errorf("%w: harden_factor %g outside [0, 1]", ErrInvalid, b.HardenFactor)
	case b.AddStrength < -1 || b.AddStrength > 1:
		return fmt.Errorf("%w: add_strength %g outside [-1, 1]", ErrInvalid, b.AddStrength)
	case b.UndoDepth < 1 || b.UndoDepth > 100:
		return fmt.Errorf("%w: undo_depth %d outside [1, 100]", ErrInvalid, b.UndoDepth)
	}

	return nil
}
