package core

// Version is the current version of gophercoreset.
const Version = "v1.0.0"

// UnseededSeed is the sentinel seed value requesting OS-entropy seeding
// instead of a fixed, reproducible seed.
const UnseededSeed int64 = -1

// Default hyperparameters for coreset construction, per spec section 6.
const (
	// DefaultBeta is the ring scale controlling L_lo = -floor(log10(beta)).
	DefaultBeta = 200.0

	// DefaultGroupsPerRange is the number of groups J per ring range.
	DefaultGroupsPerRange = 4

	// DefaultMaxIters bounds the number of Lloyd iterations.
	DefaultMaxIters = 100

	// DefaultConvergenceEps is the Frobenius-norm threshold for Lloyd
	// termination.
	DefaultConvergenceEps = 1e-4

	// DefaultKPrimeMultiplier is the factor applied to k to obtain k'
	// (the bicriteria clustering's centre count) absent an explicit
	// override. Spec section 9 flags k'=k vs k'=2k as an open question;
	// this module defaults to 2k as the theoretically grounded choice.
	DefaultKPrimeMultiplier = 2
)
