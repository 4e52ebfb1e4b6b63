package cluster

import (
	"math"

	"github.com/TIVerse/gophercoreset/assignment"
	"github.com/TIVerse/gophercoreset/core"
	"github.com/TIVerse/gophercoreset/internal/bitset"
)

// Ring holds the points of one cluster whose cost falls within a single
// power-of-two cost band, per spec section 3's Ring definition. A point
// belongs to at most one ring.
type Ring struct {
	Cluster    int
	RangeIndex int
	Lower      float64
	Upper      float64
	Points     []int
}

// TotalCost sums the assigned distance of every point in the ring.
func (r *Ring) TotalCost(table *assignment.Table) float64 {
	sum := 0.0
	for _, p := range r.Points {
		sum += table.GetDistance(p)
	}
	return sum
}

// RingSet is the built-once, read-many collection of every cluster's
// rings together with its shortfall and overshoot populations. Grounded
// on original_source/include/coresets/group_sampling.hpp's RingSet and
// its makeRings construction.
type RingSet struct {
	RangeLo int
	RangeHi int

	// rings[cluster][rangeIndex-RangeLo] is nil when that ring is empty.
	rings [][]*Ring

	shortfall [][]int
	overshoot [][]int
}

// RangeBounds computes L_lo = -floor(log10(beta)) and L_hi = -L_lo, per
// spec section 3's Ring identification.
func RangeBounds(beta float64) (lo, hi int) {
	lo = -int(math.Floor(math.Log10(beta)))
	hi = -lo
	return
}

// BuildRings partitions every point of table into a ring, a shortfall
// set, or an overshoot set, scanning ring ranges from RangeLo to RangeHi
// and stopping at the first match exactly as the original's makeRings
// scan-then-break loop does. It is a logic error, reported as
// core.ErrInvariantViolation, for a point to match neither a ring, the
// shortfall condition, nor the overshoot condition.
func BuildRings(table *assignment.Table, beta float64) (*RingSet, error) {
	lo, hi := RangeBounds(beta)
	k := table.NumClusters()
	avg := table.AverageCosts()

	rs := &RingSet{
		RangeLo:   lo,
		RangeHi:   hi,
		rings:     make([][]*Ring, k),
		shortfall: make([][]int, k),
		overshoot: make([][]int, k),
	}
	for c := range rs.rings {
		rs.rings[c] = make([]*Ring, hi-lo+1)
	}

	for p := 0; p < table.NumPoints(); p++ {
		c := table.GetCluster(p)
		cost := table.GetDistance(p)
		delta := avg[c]

		placed := false
		for l := lo; l <= hi; l++ {
			lower := delta * math.Ldexp(1, l)
			upper := delta * math.Ldexp(1, l+1)
			if cost >= lower && cost < upper {
				idx := l - lo
				ring := rs.rings[c][idx]
				if ring == nil {
					ring = &Ring{Cluster: c, RangeIndex: l, Lower: lower, Upper: upper}
					rs.rings[c][idx] = ring
				}
				ring.Points = append(ring.Points, p)
				placed = true
				break
			}
		}

		if placed {
			continue
		}

		innerMost := delta * math.Ldexp(1, lo)
		outerMost := delta * math.Ldexp(1, hi+1)
		switch {
		case cost < innerMost:
			rs.shortfall[c] = append(rs.shortfall[c], p)
		case cost >= outerMost:
			rs.overshoot[c] = append(rs.overshoot[c], p)
		default:
			return nil, core.ErrInvariantViolation
		}
	}

	return rs, nil
}

// Ring returns the ring for (cluster, rangeIndex), or nil if that ring is
// empty.
func (rs *RingSet) Ring(cluster, rangeIndex int) *Ring {
	if rangeIndex < rs.RangeLo || rangeIndex > rs.RangeHi {
		return nil
	}
	return rs.rings[cluster][rangeIndex-rs.RangeLo]
}

// Shortfall returns the shortfall points of cluster c.
func (rs *RingSet) Shortfall(c int) []int {
	return rs.shortfall[c]
}

// Overshoot returns the overshoot points of cluster c.
func (rs *RingSet) Overshoot(c int) []int {
	return rs.overshoot[c]
}

// AllOvershoot returns every overshoot point across every cluster.
func (rs *RingSet) AllOvershoot() []int {
	var all []int
	for c := range rs.overshoot {
		all = append(all, rs.overshoot[c]...)
	}
	return all
}

// RingCost sums TotalCost across every cluster's ring at range l:
// ringCost(l) = sum_c totalCost(ring(c,l)).
func (rs *RingSet) RingCost(l int, table *assignment.Table) float64 {
	sum := 0.0
	for c := range rs.rings {
		if ring := rs.Ring(c, l); ring != nil {
			sum += ring.TotalCost(table)
		}
	}
	return sum
}

// NumClusters returns the number of clusters the ring set was built for.
func (rs *RingSet) NumClusters() int {
	return len(rs.rings)
}

// Validate checks the partition invariant from spec section 8 property 4:
// every point belongs to exactly one of {ring, shortfall, overshoot}. It
// uses a bitset to mark claimed points in O(N) and catch both gaps and
// double-assignment.
func (rs *RingSet) Validate(n int) error {
	seen := bitset.New(n)
	mark := func(p int) error {
		if seen.Test(p) {
			return core.ErrInvariantViolation
		}
		seen.Set(p)
		return nil
	}

	for c := range rs.rings {
		for _, ring := range rs.rings[c] {
			if ring == nil {
				continue
			}
			for _, p := range ring.Points {
				if err := mark(p); err != nil {
					return err
				}
			}
		}
		for _, p := range rs.shortfall[c] {
			if err := mark(p); err != nil {
				return err
			}
		}
		for _, p := range rs.overshoot[c] {
			if err := mark(p); err != nil {
				return err
			}
		}
	}

	if !seen.All() {
		return core.ErrInvariantViolation
	}
	return nil
}
