package core

import "errors"

// Sentinel errors for common error conditions across the coreset pipeline.
// Callers should use errors.Is / errors.As against these rather than
// matching on message text.
var (
	// ErrInvalidShape indicates incompatible matrix/vector dimensions.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrIndexOutOfBounds indicates an index is outside valid range.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrInvalidArgument indicates an invalid argument or configuration value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDegenerateData indicates input data that admits no valid sampling
	// distribution, e.g. zero points, zero dimensions, or every point
	// identical so that all clustering costs are zero.
	ErrDegenerateData = errors.New("degenerate data")

	// ErrInvariantViolation indicates a logic error in ring/group
	// partitioning: a point assigned to neither a ring, shortfall, nor
	// overshoot set, or counted in more than one group.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrNumericFailure indicates a weight computation produced a zero,
	// negative, or non-finite result where a positive finite weight was
	// required.
	ErrNumericFailure = errors.New("numeric failure")
)
