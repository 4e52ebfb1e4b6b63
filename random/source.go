// Package random provides the single source of randomness used throughout
// the coreset pipeline: uniform draws, weighted choice with replacement,
// and weighted reservoir sampling. Every randomised component in this
// module takes a *Source explicitly, or a seed from which it builds its
// own Source (cluster.Engine.Cluster), rather than reaching for a
// process-global generator, so that two runs constructed with the same
// seed are bit-identical (spec section 8, property 7).
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/TIVerse/gophercoreset/core"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source is the exclusively-owned random generator handed through the
// pipeline. Its state mutates on every draw; it must not be shared across
// concurrent builds.
type Source struct {
	rng     *rand.Rand
	uniform distuv.Uniform
}

// New creates a Source seeded deterministically with seed. Passing
// core.UnseededSeed draws a seed from OS entropy (crypto/rand), falling
// back to the current time if that read fails.
func New(seed int64) *Source {
	if seed == core.UnseededSeed {
		var buf [8]byte
		if _, err := crand.Read(buf[:]); err == nil {
			seed = int64(binary.LittleEndian.Uint64(buf[:]))
		} else {
			seed = time.Now().UnixNano()
		}
	}
	rng := rand.New(rand.NewSource(seed))
	return &Source{
		rng:     rng,
		uniform: distuv.Uniform{Min: 0, Max: 1, Src: rng},
	}
}

// UniformIndex returns an integer in [0, n) drawn uniformly at random.
func (s *Source) UniformIndex(n int) int {
	if n <= 0 {
		panic("random: UniformIndex requires n > 0")
	}
	return s.rng.Intn(n)
}

// UniformReal returns a real number in [0.0, 1.0) drawn uniformly at random.
func (s *Source) UniformReal() float64 {
	return s.uniform.Rand()
}

// WeightedChoice draws a single index i with probability proportional to
// weights[i]. Weights must be non-negative with a strictly positive sum;
// callers in degenerate-cost situations (spec section 4.D) must guard
// against an all-zero distribution before calling this.
func (s *Source) WeightedChoice(weights []float64) (int, error) {
	total := 0.0
	for _, w := range weights {
		if w < 0 {
			return 0, core.ErrInvalidArgument
		}
		total += w
	}
	if total <= 0 {
		return 0, core.ErrNumericFailure
	}

	target := s.UniformReal() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if cumulative >= target {
			return i, nil
		}
	}
	// Floating point rounding may leave a residual below target; fall
	// back to the last non-zero-weight index rather than index 0.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i, nil
		}
	}
	return 0, core.ErrNumericFailure
}

// WeightedChoiceMany draws k indices with replacement from weights, each
// draw independent and identically distributed per WeightedChoice.
func (s *Source) WeightedChoiceMany(k int, weights []float64) ([]int, error) {
	if k < 0 {
		return nil, core.ErrInvalidArgument
	}
	result := make([]int, k)
	for i := 0; i < k; i++ {
		idx, err := s.WeightedChoice(weights)
		if err != nil {
			return nil, err
		}
		result[i] = idx
	}
	return result, nil
}

// WeightedReservoir draws k distinct-position samples from n items using
// Chao's A-Res weighted reservoir algorithm: the reservoir is initialised
// with positions [0, k), then for each subsequent position i the running
// weight sum grows by weights[i], the inclusion probability
// p_i = k*weights[i]/sum is computed, and a uniform draw q decides
// whether position i replaces a uniformly chosen reservoir slot.
func (s *Source) WeightedReservoir(k int, weights []float64) ([]int, error) {
	n := len(weights)
	if k <= 0 || k > n {
		return nil, core.ErrInvalidArgument
	}

	reservoir := make([]int, k)
	sum := 0.0
	for i := 0; i < k; i++ {
		reservoir[i] = i
		sum += weights[i]
	}

	for i := k; i < n; i++ {
		sum += weights[i]
		if sum <= 0 {
			continue
		}
		pi := float64(k) * weights[i] / sum
		q := s.UniformReal()
		if q <= pi {
			slot := s.UniformIndex(k)
			reservoir[slot] = i
		}
	}

	return reservoir, nil
}
