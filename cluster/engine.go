// Package cluster implements the k-means engine: k-means++ or uniform
// seeding followed by Lloyd iteration, producing the bicriteria
// clustering (centres, assignment table) that the coreset samplers
// consume. Adapted from the teacher's models/cluster/kmeans.go, with the
// DataFrame/Series plumbing replaced by dense gonum matrices and an
// explicit random.Source in place of a locally constructed *rand.Rand.
package cluster

import (
	"fmt"
	"math"

	"github.com/TIVerse/gophercoreset/assignment"
	"github.com/TIVerse/gophercoreset/core"
	"github.com/TIVerse/gophercoreset/internal/memory"
	"github.com/TIVerse/gophercoreset/random"
	"gonum.org/v1/gonum/mat"
)

// InitMethod selects how the engine seeds its initial centres.
type InitMethod int

const (
	// InitKMeansPlusPlus seeds centres with the k-means++ distribution
	// (spec section 4.C).
	InitKMeansPlusPlus InitMethod = iota
	// InitUniform seeds centres by picking k rows uniformly at random,
	// with replacement.
	InitUniform
)

// Engine runs k-means++-seeded Lloyd iteration. Exported fields give
// callers the same knobs spec section 6 names for the bicriteria
// clustering.
type Engine struct {
	NClusters      int
	MaxIters       int
	ConvergenceEps float64
	Init           InitMethod
}

// NewEngine creates an Engine with the given cluster count and the
// package defaults for the remaining knobs (mirrors NewKMeans's
// zero-value-correcting constructor).
func NewEngine(nClusters int) *Engine {
	return &Engine{
		NClusters:      nClusters,
		MaxIters:       core.DefaultMaxIters,
		ConvergenceEps: core.DefaultConvergenceEps,
		Init:           InitKMeansPlusPlus,
	}
}

// Result bundles a bicriteria clustering's centres with the assignment
// table of the last Lloyd assignment step. That table was computed
// against the centres before the final update, so it matches Centres
// exactly only once the iteration has converged; callers that stop on
// MaxIters and need assignments against the returned Centres re-run
// assignment.AssignAll. Mirrors the original ClusteringResult
// value object (original_source/include/clustering/clustering_result.hpp).
type Result struct {
	Centres     *mat.Dense
	Assignments *assignment.Table
	Iterations  int
}

// Cluster runs k-means++ (or uniform) seeded Lloyd iteration on points
// and returns the resulting centres and assignment table. seed drives
// every randomised decision; the same seed and points always produce the
// same Result (spec section 8, property 7).
func (e *Engine) Cluster(points *mat.Dense, seed int64) (*Result, error) {
	n, d := points.Dims()
	if e.NClusters <= 0 || e.NClusters > n {
		return nil, fmt.Errorf("cluster: k=%d invalid for n=%d points: %w", e.NClusters, n, core.ErrInvalidArgument)
	}
	if d == 0 {
		return nil, fmt.Errorf("cluster: zero-dimensional points: %w", core.ErrDegenerateData)
	}

	rnd := random.New(seed)

	var centres *mat.Dense
	var err error
	switch e.Init {
	case InitUniform:
		centres = e.initUniform(points, rnd)
	default:
		centres, err = e.initKMeansPlusPlus(points, rnd)
		if err != nil {
			return nil, err
		}
	}

	maxIters := e.MaxIters
	if maxIters <= 0 {
		maxIters = core.DefaultMaxIters
	}
	eps := e.ConvergenceEps
	if eps <= 0 {
		eps = core.DefaultConvergenceEps
	}

	var table *assignment.Table
	iterations := 0
	for iter := 0; iter < maxIters; iter++ {
		table = assignment.AssignAll(points, centres)

		newCentres, shift := e.updateCentres(points, centres, table, d)
		centres = newCentres
		iterations = iter + 1

		if shift < eps {
			break
		}
	}

	return &Result{Centres: centres, Assignments: table, Iterations: iterations}, nil
}

// updateCentres recomputes each centre as the mean of its assigned
// points, dividing by max(1, count) so an empty cluster becomes the zero
// row per spec section 4.C step 2 and the empty-cluster note in section
// 9. It returns the new centre matrix and the Frobenius norm of the
// shift from the previous centres.
func (e *Engine) updateCentres(points, oldCentres *mat.Dense, table *assignment.Table, d int) (*mat.Dense, float64) {
	k := e.NClusters

	sums := memory.Float64SlicePool.Get()
	if cap(sums) < k*d {
		sums = make([]float64, k*d)
	} else {
		sums = sums[:k*d]
		for i := range sums {
			sums[i] = 0
		}
	}
	defer memory.Float64SlicePool.Put(sums[:0])

	counts := make([]int, k)

	n, _ := points.Dims()
	for p := 0; p < n; p++ {
		c := table.GetCluster(p)
		counts[c]++
		row := points.RawRowView(p)
		base := c * d
		for j := 0; j < d; j++ {
			sums[base+j] += row[j]
		}
	}

	newCentres := mat.NewDense(k, d, nil)
	maxShift := 0.0
	for c := 0; c < k; c++ {
		base := c * d
		newRow := make([]float64, d)
		if counts[c] > 0 {
			for j := 0; j < d; j++ {
				newRow[j] = sums[base+j] / float64(counts[c])
			}
		}
		newCentres.SetRow(c, newRow)

		// rowDistance already returns the squared per-row distance; the
		// Frobenius norm is sqrt(sum of squared per-row distances), so it
		// must be summed directly, not squared again.
		maxShift += rowDistance(oldCentres.RawRowView(c), newRow)
	}

	return newCentres, math.Sqrt(maxShift)
}

// rowDistance returns the squared Euclidean distance between a and b.
func rowDistance(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return sum
}

// initUniform picks NClusters row indices uniformly at random, with
// replacement, and copies those rows as the initial centres (spec
// section 4.C, "Initialisation - uniform").
func (e *Engine) initUniform(points *mat.Dense, rnd *random.Source) *mat.Dense {
	n, d := points.Dims()
	centres := mat.NewDense(e.NClusters, d, nil)
	for c := 0; c < e.NClusters; c++ {
		idx := rnd.UniformIndex(n)
		centres.SetRow(c, points.RawRowView(idx))
	}
	return centres
}

// initKMeansPlusPlus seeds centres with the k-means++ distribution: the
// first centre uniform at random, each subsequent centre drawn with
// probability proportional to its squared distance to the nearest
// already-chosen centre (spec section 4.C).
func (e *Engine) initKMeansPlusPlus(points *mat.Dense, rnd *random.Source) (*mat.Dense, error) {
	n, d := points.Dims()
	centres := mat.NewDense(e.NClusters, d, nil)

	first := rnd.UniformIndex(n)
	centres.SetRow(0, points.RawRowView(first))

	sqDist := make([]float64, n)
	for c := 1; c < e.NClusters; c++ {
		for p := 0; p < n; p++ {
			row := points.RawRowView(p)
			minDist := math.Inf(1)
			for prev := 0; prev < c; prev++ {
				dist := euclidean(row, centres.RawRowView(prev))
				if dist < minDist {
					minDist = dist
				}
			}
			sqDist[p] = minDist * minDist
		}

		// When every point already coincides with a chosen centre (for
		// example when all points are identical) the squared distances sum
		// to zero, and the next centre is picked uniformly instead.
		total := 0.0
		for _, w := range sqDist {
			total += w
		}
		if total == 0 {
			centres.SetRow(c, points.RawRowView(rnd.UniformIndex(n)))
			continue
		}

		next, err := rnd.WeightedChoice(sqDist)
		if err != nil {
			return nil, fmt.Errorf("cluster: k-means++ seeding failed at centre %d: %w", c, err)
		}
		centres.SetRow(c, points.RawRowView(next))
	}

	return centres, nil
}

func euclidean(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}
