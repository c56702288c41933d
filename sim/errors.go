package sim

import "errors"

// ErrInvalidInput marks caller mistakes: non-positive horizons, negative
// order sizes, non-positive replication or step counts, empty candidate
// lists. Detected before any simulation work begins and never retried.
var ErrInvalidInput = errors.New("invalid input")

// ErrSchedulingViolation marks a defect in activity logic, such as
// requesting a wait with a negative delay. The run is aborted immediately.
var ErrSchedulingViolation = errors.New("scheduling violation")
