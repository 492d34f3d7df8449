// SPDX-License-Identifier: MIT

package geom

import "errors"

// Every message is prefixed with "geom: ..." so wrapped errors stay greppable.
var (
	// ErrZeroVector is returned when a direction is required but the input
	// vector has (numerically) zero length.
	ErrZeroVector = errors.New("geom: zero-length vector cannot be normalized")

	// ErrNonFinite signals a NaN or ±Inf component where finite values are required.
	ErrNonFinite = errors.New("geom: NaN or Inf component")
)
