// SPDX-License-Identifier: MIT

package coil

import "errors"

// Sentinel errors for loop validation, discretization and presets.
// Callers match them with errors.Is; boundaries add context with %w.
var (
	// ErrDegenerateAxis indicates a zero-length (non-normalizable) axis.
	ErrDegenerateAxis = errors.New("coil: axis must be a non-zero vector")

	// ErrNonPositiveRadius indicates radius <= 0 (or NaN).
	ErrNonPositiveRadius = errors.New("coil: radius must be > 0")

	// ErrInvalidTurns indicates a turn count below 1.
	ErrInvalidTurns = errors.New("coil: turns must be >= 1")

	// ErrNonFinite indicates a NaN or ±Inf in centre, axis, radius or current.
	ErrNonFinite = errors.New("coil: NaN or Inf in loop parameters")

	// ErrTooFewSegments indicates a discretization resolution below MinSegments.
	ErrTooFewSegments = errors.New("coil: segment count must be >= 3")

	// ErrInvalidPreset indicates nonsensical preset parameters.
	ErrInvalidPreset = errors.New("coil: invalid preset parameters")

	// ErrEmptySet indicates a coil-set file without loops.
	ErrEmptySet = errors.New("coil: coil set contains no loops")
)
