package engine

import "errors"

// Domain errors for particle set construction and frame validation.
var (
	// ErrParticleCount indicates a non-positive particle count.
	ErrParticleCount = errors.New("engine: particle count must be positive")

	// ErrMassRange indicates an invalid or non-positive mass range.
	ErrMassRange = errors.New("engine: mass range must be positive with min <= max")

	// ErrNonFinite indicates NaN or Inf in a particle's state.
	ErrNonFinite = errors.New("engine: non-finite particle state (NaN or Inf)")
)
