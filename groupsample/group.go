// Package groupsample implements the group sampler (spec section 4.E):
// a bicriteria clustering is partitioned into rings, rings are bucketed
// into cost-banded groups, and each group contributes samples weighted
// proportionally to its members' clustering cost. Shortfall points
// collapse onto their cluster centre; overshoot points are handled by
// falling back to the sensitivity sampler (spec section 4.E step 7).
//
// Grounded on original_source/source/coresets/group_sampling.cpp's
// makeGroups/makeRings pipeline.
package groupsample

import (
	"math"

	"github.com/TIVerse/gophercoreset/assignment"
	"github.com/TIVerse/gophercoreset/cluster"
)

// overshootSentinel marks a Group built from the overshoot bucket rather
// than a numbered ring range.
const overshootSentinel = math.MinInt32

// Group is the set of points drawn from a single ring range (or the
// overshoot bucket, for the sentinel range) whose host cluster's
// ring-cost falls in the j-indexed cost band. Spec section 3, "Group".
type Group struct {
	J          int
	RangeIndex int
	Points     []int
}

// IsOvershootGroup reports whether g was built from the overshoot bucket
// rather than a ring range.
func (g *Group) IsOvershootGroup() bool {
	return g.RangeIndex == overshootSentinel
}

// Cost sums the assigned distance of every point in the group.
func (g *Group) Cost(table *assignment.Table) float64 {
	sum := 0.0
	for _, p := range g.Points {
		sum += table.GetDistance(p)
	}
	return sum
}

// bandBounds computes the j-indexed cost band [lower, upper) scaled from
// baseCost: lower = (1/kPrime)*2^-j*baseCost, upper = (1/kPrime)*2^(-j+1)*baseCost,
// per spec section 4.E steps 4 and 5. j=0 has no upper bound (it catches
// everything at or above the top band). The last of numGroups bands has
// no lower bound instead, so the bands span (-inf, +inf) without a gap
// below the smallest threshold — the scan-and-break ring construction
// guarantees every point lands in exactly one ring, and these bands must
// likewise guarantee every non-empty ring lands in exactly one group
// (spec section 8 property 5).
func bandBounds(j, numGroups, kPrime int, baseCost float64) (lower, upper float64, hasLower, hasUpper bool) {
	inv := 1.0 / float64(kPrime)
	hasLower = j != numGroups-1
	hasUpper = j != 0
	if hasLower {
		lower = inv * math.Ldexp(baseCost, -j)
	}
	if hasUpper {
		upper = inv * math.Ldexp(baseCost, -j+1)
	}
	return
}

func inBand(cost, lower, upper float64, hasLower, hasUpper bool) bool {
	if hasLower && cost < lower {
		return false
	}
	if hasUpper && cost >= upper {
		return false
	}
	return true
}

// BuildRingGroups buckets every non-empty ring at range l into a group
// (j, l) whose cost band its cluster's ring-cost falls in, for every
// l in [rings.RangeLo, rings.RangeHi] and j in [0, numGroups). Spec
// section 4.E step 5.
func BuildRingGroups(rings *cluster.RingSet, table *assignment.Table, kPrime, numGroups int) []*Group {
	var groups []*Group

	for l := rings.RangeLo; l <= rings.RangeHi; l++ {
		ringCost := rings.RingCost(l, table)

		for j := 0; j < numGroups; j++ {
			lower, upper, hasLower, hasUpper := bandBounds(j, numGroups, kPrime, ringCost)

			var points []int
			for c := 0; c < rings.NumClusters(); c++ {
				ring := rings.Ring(c, l)
				if ring == nil {
					continue
				}
				clusterRingCost := ring.TotalCost(table)
				if inBand(clusterRingCost, lower, upper, hasLower, hasUpper) {
					points = append(points, ring.Points...)
				}
			}

			if len(points) > 0 {
				groups = append(groups, &Group{J: j, RangeIndex: l, Points: points})
			}
		}
	}

	return groups
}

// BuildOvershootGroups buckets the overshoot set into cost-banded groups
// the same way BuildRingGroups buckets rings, using the total overshoot
// cost as the scaling base instead of a per-range ring cost. Spec section
// 4.E step 4. This is the group-based overshoot strategy; Build defaults
// to the sensitivity-sampler fallback of step 7 instead (see DESIGN.md).
func BuildOvershootGroups(rings *cluster.RingSet, table *assignment.Table, kPrime, numGroups int) []*Group {
	totalO := 0.0
	perCluster := make([]float64, rings.NumClusters())
	for c := 0; c < rings.NumClusters(); c++ {
		for _, p := range rings.Overshoot(c) {
			cost := table.GetDistance(p)
			perCluster[c] += cost
			totalO += cost
		}
	}
	if totalO <= 0 {
		return nil
	}

	// Spec section 4.E step 4 defines j over [0, J-1) — one fewer band
	// than the ring groups of step 5, with no catch-all for whatever
	// falls below the smallest threshold.
	var groups []*Group
	for j := 0; j < numGroups-1; j++ {
		lower, upper, hasUpper := 1.0/float64(kPrime)*math.Ldexp(totalO, -j), 0.0, j != 0
		if hasUpper {
			upper = 1.0 / float64(kPrime) * math.Ldexp(totalO, -j+1)
		}

		var points []int
		for c := 0; c < rings.NumClusters(); c++ {
			if inBand(perCluster[c], lower, upper, true, hasUpper) {
				points = append(points, rings.Overshoot(c)...)
			}
		}
		if len(points) > 0 {
			groups = append(groups, &Group{J: j, RangeIndex: overshootSentinel, Points: points})
		}
	}

	return groups
}
