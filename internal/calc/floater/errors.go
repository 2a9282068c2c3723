package floater

import "errors"

// Failure kinds. Callers branch with errors.Is; the concrete message carries
// the offending field or quantity.
var (
	// ErrInvalidGeometry marks a configuration whose columns, plates or
	// ambient constants make the hydrostatics undefined.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrDegenerateMass marks a period computation attempted with zero or
	// negative total structural mass.
	ErrDegenerateMass = errors.New("degenerate mass")

	// ErrUnstableHydrostatics marks a non-positive restoring stiffness
	// (GM <= 0 or Aw <= 0): the natural period is undefined there.
	ErrUnstableHydrostatics = errors.New("unstable hydrostatics")
)
