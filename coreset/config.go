// Package coreset is the top-level entry point: Build wires the random
// source, bicriteria clustering, ring construction, and group/sensitivity
// sampling into the single call a caller makes, the way the teacher's
// models/cluster.KMeans.Fit is the one call a DataFrame consumer makes.
package coreset

import (
	"fmt"

	"github.com/TIVerse/gophercoreset/core"
)

// Config bundles every configuration knob named in spec section 6. Build
// replaces a zero KPrime with core.DefaultKPrimeMultiplier * K and a zero
// T with N; a zero MaxIters or ConvergenceEps falls back to the core
// default inside the k-means engine. Validate replaces nothing; it
// rejects invalid values, including a zero Beta or GroupsPerRange.
type Config struct {
	K              int
	KPrime         int
	T              int
	Beta           float64
	GroupsPerRange int
	MaxIters       int
	ConvergenceEps float64
	Seed           int64
}

// Option configures a Config, built via the teacher's core.Option[T]
// generic.
type Option = core.Option[Config]

// WithK sets the target cluster count k.
func WithK(k int) Option {
	return func(c *Config) error {
		c.K = k
		return nil
	}
}

// WithKPrime overrides the bicriteria clustering size, which otherwise
// defaults to core.DefaultKPrimeMultiplier * K.
func WithKPrime(kPrime int) Option {
	return func(c *Config) error {
		c.KPrime = kPrime
		return nil
	}
}

// WithT sets the target coreset sample count before shortfall/centre
// additions. When T is left unset (0), Build uses the number of input
// points N.
func WithT(t int) Option {
	return func(c *Config) error {
		c.T = t
		return nil
	}
}

// WithBeta sets the ring scale controlling L_lo = -floor(log10(beta)).
func WithBeta(beta float64) Option {
	return func(c *Config) error {
		c.Beta = beta
		return nil
	}
}

// WithGroupsPerRange sets the number of cost-banded groups per ring
// range (J in spec section 6).
func WithGroupsPerRange(j int) Option {
	return func(c *Config) error {
		c.GroupsPerRange = j
		return nil
	}
}

// WithMaxIters bounds the number of Lloyd iterations run during
// bicriteria clustering.
func WithMaxIters(maxIters int) Option {
	return func(c *Config) error {
		c.MaxIters = maxIters
		return nil
	}
}

// WithConvergenceEps sets the Frobenius-norm threshold for Lloyd
// termination.
func WithConvergenceEps(eps float64) Option {
	return func(c *Config) error {
		c.ConvergenceEps = eps
		return nil
	}
}

// WithSeed fixes the PRNG seed. Pass core.UnseededSeed for OS-entropy
// seeding.
func WithSeed(seed int64) Option {
	return func(c *Config) error {
		c.Seed = seed
		return nil
	}
}

// defaultConfig returns a Config with every package default filled in
// except K, which the caller must always supply, and KPrime, which is
// left at 0: KPrime's k-dependent default (core.DefaultKPrimeMultiplier
// * K) can only be computed once WithK/WithKPrime have both had a
// chance to run, so Build fills it in after applying options rather
// than here.
func defaultConfig(k int) *Config {
	return &Config{
		K:              k,
		KPrime:         0,
		T:              0,
		Beta:           core.DefaultBeta,
		GroupsPerRange: core.DefaultGroupsPerRange,
		MaxIters:       core.DefaultMaxIters,
		ConvergenceEps: core.DefaultConvergenceEps,
		Seed:           core.UnseededSeed,
	}
}

// Validate checks the spec section 7 "configuration invalid" conditions.
func (c *Config) Validate(n int) error {
	if c.K <= 0 || c.K > n {
		return fmt.Errorf("coreset: k=%d invalid for n=%d: %w", c.K, n, core.ErrInvalidArgument)
	}
	if c.KPrime <= 0 {
		return fmt.Errorf("coreset: k'=%d must be positive: %w", c.KPrime, core.ErrInvalidArgument)
	}
	if c.T <= 0 {
		return fmt.Errorf("coreset: T=%d must be positive: %w", c.T, core.ErrInvalidArgument)
	}
	if c.Beta <= 1 {
		return fmt.Errorf("coreset: beta=%f must be > 1: %w", c.Beta, core.ErrInvalidArgument)
	}
	if c.GroupsPerRange <= 0 {
		return fmt.Errorf("coreset: J=%d must be positive: %w", c.GroupsPerRange, core.ErrInvalidArgument)
	}
	if c.Seed < 0 && c.Seed != core.UnseededSeed {
		return fmt.Errorf("coreset: seed=%d must be non-negative or the unseeded sentinel: %w", c.Seed, core.ErrInvalidArgument)
	}
	return nil
}
