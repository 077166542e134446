package engine

import "errors"

// Sentinel error kinds, per the error-handling design: InvalidInput for
// structural problems surfaced before the main loop starts, and
// IgnitionRejected for a well-formed but unusable explicit ignition point.
// Run does not return ErrIgnitionRejected: a rejected ignition yields an
// empty Result with a nil error. NumericDomain anomalies are clamped locally inside internal/fuelmodel,
// internal/crownfire and internal/spotting, and never reach the caller as
// an error; max_runtime exhaustion is normal termination, not an error.
var (
	ErrInvalidInput     = errors.New("firecast: invalid input")
	ErrIgnitionRejected = errors.New("firecast: ignition rejected")
)
