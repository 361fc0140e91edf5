// Package session defines option plumbing, sampling modes and sentinel
// errors for the session subpackage of github.com/wynnrig/weightcore.
package session

import (
	"errors"

	"go.uber.org/zap"

	"github.com/wynnrig/weightcore/config"
)

// Sentinel errors for session construction and topology updates.
var (
	// ErrVertexMismatch is returned by RefreshTopology and LoadWeights when
	// the incoming data is sized for a different vertex count than the
	// session's weight store.
	ErrVertexMismatch = errors.New("session: vertex count mismatch")

	// ErrGroupRange is returned when a negative deform-group index is passed
	// to an editing call.
	ErrGroupRange = errors.New("session: group index must be non-negative")

	// ErrOptionViolation wraps any option-level configuration error.
	ErrOptionViolation = errors.New("session: option violation")
)

// SampleMethod selects how SourceWeight reads a weight under the cursor.
type SampleMethod uint8

const (
	// SampleNearest reads the single closest vertex.
	SampleNearest SampleMethod = iota

	// SampleAverage averages every vertex inside the sample radius.
	SampleAverage
)

// sessionOptions is the resolved configuration for New.
type sessionOptions struct {
	logger *zap.Logger
	cfg    config.Brush

	// err records the first option violation; surfaced by New.
	err error
}

// defaultOptions returns a silent session with the built-in brush defaults.
func defaultOptions() sessionOptions {
	return sessionOptions{
		logger: zap.NewNop(),
		cfg:    config.Default(),
	}
}

// Option adjusts session construction.
type Option func(*sessionOptions)

// WithLogger attaches a structured logger for per-stroke diagnostics.
// A nil logger is an option violation.
func WithLogger(log *zap.Logger) Option {
	return func(o *sessionOptions) {
		if log == nil {
			o.err = errors.Join(o.err, errors.New("session: WithLogger(nil)"))

			return
		}
		o.logger = log
	}
}

// WithConfig replaces the built-in brush defaults. The config is validated;
// an invalid one is an option violation.
func WithConfig(cfg config.Brush) Option {
	return func(o *sessionOptions) {
		if err := cfg.Validate(); err != nil {
			o.err = errors.Join(o.err, err)

			return
		}
		o.cfg = cfg
	}
}
