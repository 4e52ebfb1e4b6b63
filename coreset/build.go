package coreset

import (
	"fmt"

	"github.com/TIVerse/gophercoreset/cluster"
	"github.com/TIVerse/gophercoreset/core"
	"github.com/TIVerse/gophercoreset/groupsample"
	"gonum.org/v1/gonum/mat"
)

// Build runs the full coreset construction pipeline on points (an N-by-D
// dense matrix, spec section 6's input contract) and returns the
// bicriteria centres alongside the weighted coreset, per spec section 6's
// output contract: consumers resolve isCenter=true entries by indexing
// into the returned centre matrix.
func Build(points *mat.Dense, opts ...Option) (*mat.Dense, []cluster.WeightedPoint, error) {
	n, _ := points.Dims()
	if n == 0 {
		return nil, nil, fmt.Errorf("coreset: empty point matrix: %w", core.ErrDegenerateData)
	}

	cfg := defaultConfig(0)
	if err := core.ApplyOptions(cfg, opts...); err != nil {
		return nil, nil, err
	}
	if cfg.KPrime == 0 {
		cfg.KPrime = core.DefaultKPrimeMultiplier * cfg.K
	}
	if cfg.T == 0 {
		cfg.T = n
	}
	if err := cfg.Validate(n); err != nil {
		return nil, nil, err
	}

	params := groupsample.Params{
		KPrime:         cfg.KPrime,
		T:              cfg.T,
		Beta:           cfg.Beta,
		GroupsPerRange: cfg.GroupsPerRange,
		MaxIters:       cfg.MaxIters,
		ConvergenceEps: cfg.ConvergenceEps,
		Seed:           cfg.Seed,
	}

	result, coresetPoints, err := groupsample.Build(points, params)
	if err != nil {
		return nil, nil, err
	}

	return result.Centres, coresetPoints, nil
}
