package groupsample

import (
	"testing"

	"github.com/TIVerse/gophercoreset/assignment"
	"github.com/TIVerse/gophercoreset/cluster"
	"github.com/TIVerse/gophercoreset/random"
	"gonum.org/v1/gonum/mat"
)

func TestSensitivityFallbackEmptyOvershoot(t *testing.T) {
	result := &cluster.Result{
		Centres:     mat.NewDense(1, 2, []float64{0, 0}),
		Assignments: assignment.New(1, 1),
	}
	out, err := sensitivityFallback(result, nil, 5, random.New(1))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out != nil {
		t.Errorf("expected nil output for empty overshoot set, got %+v", out)
	}
}

func TestSensitivityFallbackRemapsIndices(t *testing.T) {
	table := assignment.New(5, 1)
	table.Assign(0, 0, 1)
	table.Assign(1, 0, 1)
	table.Assign(2, 0, 100)
	table.Assign(3, 0, 200)
	table.Assign(4, 0, 300)

	result := &cluster.Result{
		Centres:     mat.NewDense(1, 2, []float64{0, 0}),
		Assignments: table,
	}

	overshoot := []int{2, 3, 4}
	out, err := sensitivityFallback(result, overshoot, 3, random.New(5))
	if err != nil {
		t.Fatalf("sensitivityFallback failed: %v", err)
	}

	for _, wp := range out {
		if wp.IsCenter {
			continue
		}
		found := false
		for _, p := range overshoot {
			if wp.Index == p {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("sampled index %d not remapped into overshoot set %v", wp.Index, overshoot)
		}
	}
}
