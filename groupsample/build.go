package groupsample

import (
	"fmt"
	"math"

	"github.com/TIVerse/gophercoreset/cluster"
	"github.com/TIVerse/gophercoreset/core"
	"github.com/TIVerse/gophercoreset/internal/bitset"
	"github.com/TIVerse/gophercoreset/random"
	"gonum.org/v1/gonum/mat"
)

// Params bundles the group sampler's configuration knobs, all named in
// spec section 6.
type Params struct {
	KPrime         int
	T              int
	Beta           float64
	GroupsPerRange int
	MaxIters       int
	ConvergenceEps float64
	Seed           int64
}

// DefaultParams returns Params with the given kPrime, T and seed and the
// package defaults from core for every other field.
func DefaultParams(kPrime, t int, seed int64) Params {
	return Params{
		KPrime:         kPrime,
		T:              t,
		Beta:           core.DefaultBeta,
		GroupsPerRange: core.DefaultGroupsPerRange,
		MaxIters:       core.DefaultMaxIters,
		ConvergenceEps: core.DefaultConvergenceEps,
		Seed:           seed,
	}
}

// Build runs the full group-sampling pipeline (spec section 4.E):
// bicriteria clustering, ring construction, shortfall centre weights,
// ring-group sampling, and an overshoot fallback via the sensitivity
// sampler. It returns the bicriteria centres alongside the composite
// coreset, per spec section 6's output contract.
func Build(points *mat.Dense, p Params) (*cluster.Result, []cluster.WeightedPoint, error) {
	if p.KPrime <= 0 {
		return nil, nil, fmt.Errorf("groupsample: k'=%d invalid: %w", p.KPrime, core.ErrInvalidArgument)
	}
	if p.T <= 0 {
		return nil, nil, fmt.Errorf("groupsample: T=%d must be positive: %w", p.T, core.ErrInvalidArgument)
	}
	if p.Beta <= 1 {
		return nil, nil, fmt.Errorf("groupsample: beta=%f must be > 1: %w", p.Beta, core.ErrInvalidArgument)
	}
	if p.GroupsPerRange <= 0 {
		return nil, nil, fmt.Errorf("groupsample: J=%d must be positive: %w", p.GroupsPerRange, core.ErrInvalidArgument)
	}

	// (1) Bicriteria clustering.
	engine := cluster.NewEngine(p.KPrime)
	engine.MaxIters = p.MaxIters
	engine.ConvergenceEps = p.ConvergenceEps
	result, err := engine.Cluster(points, p.Seed)
	if err != nil {
		return nil, nil, fmt.Errorf("groupsample: bicriteria clustering failed: %w", err)
	}
	table := result.Assignments
	totalCost := table.TotalCost()
	if totalCost <= 0 {
		return nil, nil, fmt.Errorf("groupsample: total clustering cost is zero: %w", core.ErrDegenerateData)
	}

	// (2) Build rings.
	rings, err := cluster.BuildRings(table, p.Beta)
	if err != nil {
		return nil, nil, fmt.Errorf("groupsample: ring construction failed: %w", err)
	}
	if err := rings.Validate(table.NumPoints()); err != nil {
		return nil, nil, fmt.Errorf("groupsample: ring partition invariant violated: %w", err)
	}

	rnd := random.New(p.Seed)
	var coresetPoints []cluster.WeightedPoint

	// (3) Shortfall contribution: one centre weight per cluster with a
	// non-empty shortfall set, weight equal to the shortfall count.
	for c := 0; c < table.NumClusters(); c++ {
		shortfall := rings.Shortfall(c)
		if len(shortfall) == 0 {
			continue
		}
		coresetPoints = append(coresetPoints, cluster.WeightedPoint{
			Index:    c,
			Weight:   float64(len(shortfall)),
			IsCenter: true,
		})
	}

	// (5)+(6) Ring groups, sampled proportionally to cost.
	ringGroups := BuildRingGroups(rings, table, p.KPrime, p.GroupsPerRange)
	if err := validateRingGroupPartition(rings, ringGroups, table.NumPoints()); err != nil {
		return nil, nil, err
	}
	ringSamples, err := SampleGroups(ringGroups, table, p.T, totalCost, rnd)
	if err != nil {
		return nil, nil, fmt.Errorf("groupsample: failed to sample ring groups: %w", err)
	}
	coresetPoints = append(coresetPoints, ringSamples...)

	// (7) Overshoot fallback via the sensitivity sampler, scaled to the
	// overshoot set's share of the total cost.
	overshoot := rings.AllOvershoot()
	if len(overshoot) > 0 {
		overshootCost := 0.0
		for _, p := range overshoot {
			overshootCost += table.GetDistance(p)
		}
		share := overshootCost / totalCost
		numSamples := int(math.Ceil(float64(p.T) * share))
		if numSamples > 0 {
			overshootSamples, err := sensitivityFallback(result, overshoot, numSamples, rnd)
			if err != nil {
				return nil, nil, fmt.Errorf("groupsample: overshoot fallback failed: %w", err)
			}
			coresetPoints = append(coresetPoints, overshootSamples...)
		}
	}

	return result, coresetPoints, nil
}

// validateRingGroupPartition checks spec section 8 property 5: for each
// ring range l, the union of groups (*, l) equals the union of rings
// (*, l), each point counted exactly once. It rejects a point that appears
// in more than one group of the same range, and a range whose group point
// count differs from its ring point count.
func validateRingGroupPartition(rings *cluster.RingSet, groups []*Group, n int) error {
	for l := rings.RangeLo; l <= rings.RangeHi; l++ {
		seen := bitset.New(n)
		ringTotal := 0
		for c := 0; c < rings.NumClusters(); c++ {
			if ring := rings.Ring(c, l); ring != nil {
				ringTotal += len(ring.Points)
			}
		}

		groupTotal := 0
		for _, g := range groups {
			if g.RangeIndex == l {
				groupTotal += len(g.Points)
				for _, p := range g.Points {
					if seen.Test(p) {
						return fmt.Errorf("groupsample: point %d is in more than one group of range %d: %w", p, l, core.ErrInvariantViolation)
					}
					seen.Set(p)
				}
			}
		}

		if ringTotal != groupTotal {
			return fmt.Errorf("groupsample: range %d has %d ring points but %d group points: %w", l, ringTotal, groupTotal, core.ErrInvariantViolation)
		}
	}
	return nil
}
