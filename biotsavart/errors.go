// SPDX-License-Identifier: MIT

package biotsavart

import "errors"

var (
	// ErrInvalidLoop wraps a loop validation failure together with the loop index.
	// The underlying coil sentinel stays reachable through errors.Is.
	ErrInvalidLoop = errors.New("biotsavart: invalid loop")

	// ErrNonFinitePoint indicates an observation point with NaN/Inf components.
	ErrNonFinitePoint = errors.New("biotsavart: NaN or Inf observation point")
)
