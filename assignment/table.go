// Package assignment provides the cluster assignment table: for every
// point, which centre it is nearest to and how far away that centre is,
// plus the per-cluster aggregates (size, average cost, total cost) the
// rest of the pipeline is built on.
package assignment

import (
	"math"

	"github.com/TIVerse/gophercoreset/core"
	"gonum.org/v1/gonum/mat"
)

// Table records, for each of N points, the index of its nearest centre
// and the Euclidean distance to it. It owns no reference to the point or
// centre matrices; assignAll recomputes from whatever matrices are passed
// in, the way the teacher's KMeans.Fit recomputes km.labels every
// iteration.
type Table struct {
	cluster  []int
	distance []float64
	k        int
}

// New allocates an assignment table for n points against k clusters. All
// entries start unassigned (cluster -1, distance 0) until Assign or
// AssignAll populates them.
func New(n, k int) *Table {
	t := &Table{
		cluster:  make([]int, n),
		distance: make([]float64, n),
		k:        k,
	}
	for i := range t.cluster {
		t.cluster[i] = -1
	}
	return t
}

// Assign records that point p belongs to cluster c at distance dist.
func (t *Table) Assign(p, c int, dist float64) {
	t.cluster[p] = c
	t.distance[p] = dist
}

// AssignAll recomputes the nearest centre and distance for every row of
// points against every row of centres, breaking ties by the smallest
// centre index. points and centres share the same column count.
func AssignAll(points, centres *mat.Dense) *Table {
	n, _ := points.Dims()
	k, _ := centres.Dims()
	t := New(n, k)

	for p := 0; p < n; p++ {
		row := points.RawRowView(p)
		bestCluster := 0
		bestDist := math.Inf(1)
		for c := 0; c < k; c++ {
			d := euclidean(row, centres.RawRowView(c))
			if d < bestDist {
				bestDist = d
				bestCluster = c
			}
		}
		t.Assign(p, bestCluster, bestDist)
	}
	return t
}

func euclidean(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}

// GetCluster returns the cluster index assigned to point p.
func (t *Table) GetCluster(p int) int {
	return t.cluster[p]
}

// GetDistance returns the distance from point p to its assigned centre.
func (t *Table) GetDistance(p int) float64 {
	return t.distance[p]
}

// NumPoints returns the number of points tracked by the table.
func (t *Table) NumPoints() int {
	return len(t.cluster)
}

// NumClusters returns the number of clusters the table was built for.
func (t *Table) NumClusters() int {
	return t.k
}

// Size returns the number of points assigned to cluster c.
func (t *Table) Size(c int) int {
	count := 0
	for _, cl := range t.cluster {
		if cl == c {
			count++
		}
	}
	return count
}

// TotalCost returns the sum of distances of every point to its assigned
// centre: sum_p distance[p].
func (t *Table) TotalCost() float64 {
	total := 0.0
	for _, d := range t.distance {
		total += d
	}
	return total
}

// AverageCost returns (sum of distances in cluster c) / max(1, size(c)).
func (t *Table) AverageCost(c int) float64 {
	sum := 0.0
	count := 0
	for p, cl := range t.cluster {
		if cl == c {
			sum += t.distance[p]
			count++
		}
	}
	return sum / float64(max(1, count))
}

// AverageCosts returns AverageCost(c) for every cluster c in [0, k).
func (t *Table) AverageCosts() []float64 {
	avgs := make([]float64, t.k)
	for c := range avgs {
		avgs[c] = t.AverageCost(c)
	}
	return avgs
}

// PointsInCluster returns the indices of every point assigned to cluster c.
func (t *Table) PointsInCluster(c int) []int {
	var pts []int
	for p, cl := range t.cluster {
		if cl == c {
			pts = append(pts, p)
		}
	}
	return pts
}

// Validate checks that every cluster index lies within [0, k) and every
// distance is finite and non-negative, per the spec's table invariant.
func (t *Table) Validate() error {
	for p, c := range t.cluster {
		if c < 0 || c >= t.k {
			return core.ErrIndexOutOfBounds
		}
		d := t.distance[p]
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return core.ErrNumericFailure
		}
	}
	return nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
