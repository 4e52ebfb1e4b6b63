package groupsample

import (
	"github.com/TIVerse/gophercoreset/assignment"
	"github.com/TIVerse/gophercoreset/cluster"
	"github.com/TIVerse/gophercoreset/random"
	"github.com/TIVerse/gophercoreset/sensitivity"
)

// sensitivityFallback implements spec section 4.E step 7: build an
// assignment table restricted to the overshoot points (reusing their
// already-known cluster and cost from the bicriteria clustering), run
// the sensitivity sampler against it, then translate the sampled point
// indices back into the caller's original point-matrix indexing.
//
// Grounded on the original's addOuterMostRingPoints, which builds the
// "points outside all rings" sub-matrix and leaves a TODO to run
// sensitivity sampling over it; this is that TODO completed.
func sensitivityFallback(result *cluster.Result, overshoot []int, t int, rnd *random.Source) ([]cluster.WeightedPoint, error) {
	if len(overshoot) == 0 {
		return nil, nil
	}

	table := result.Assignments
	restricted := assignment.New(len(overshoot), table.NumClusters())
	for i, p := range overshoot {
		restricted.Assign(i, table.GetCluster(p), table.GetDistance(p))
	}

	restrictedResult := &cluster.Result{
		Centres:     result.Centres,
		Assignments: restricted,
	}

	sampled, err := sensitivity.Sample(restrictedResult, t, rnd)
	if err != nil {
		return nil, err
	}

	out := make([]cluster.WeightedPoint, len(sampled))
	for i, wp := range sampled {
		if wp.IsCenter {
			out[i] = wp
			continue
		}
		out[i] = cluster.WeightedPoint{
			Index:    overshoot[wp.Index],
			Weight:   wp.Weight,
			IsCenter: false,
		}
	}
	return out, nil
}
