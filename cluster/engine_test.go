package cluster

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func twoBlobs() *mat.Dense {
	return mat.NewDense(6, 2, []float64{
		1, 1,
		2, 2,
		3, 3,
		8, 8,
		9, 9,
		10, 10,
	})
}

func TestEngineClusterBasic(t *testing.T) {
	points := twoBlobs()
	engine := NewEngine(2)

	result, err := engine.Cluster(points, 42)
	if err != nil {
		t.Fatalf("Cluster failed: %v", err)
	}

	r, _ := result.Centres.Dims()
	if r != 2 {
		t.Errorf("expected 2 centres, got %d", r)
	}
	if result.Iterations == 0 {
		t.Error("expected at least one Lloyd iteration")
	}
	t.Logf("centres: %v, iterations: %d", mat.Formatted(result.Centres), result.Iterations)
}

func TestEngineUniformInit(t *testing.T) {
	points := twoBlobs()
	engine := NewEngine(2)
	engine.Init = InitUniform

	result, err := engine.Cluster(points, 1)
	if err != nil {
		t.Fatalf("Cluster failed: %v", err)
	}
	if result.Assignments.NumPoints() != 6 {
		t.Errorf("expected 6 assignments, got %d", result.Assignments.NumPoints())
	}
}

func TestEngineRejectsKGreaterThanN(t *testing.T) {
	points := mat.NewDense(2, 2, []float64{1, 1, 2, 2})
	engine := NewEngine(5)

	if _, err := engine.Cluster(points, 42); err == nil {
		t.Error("expected error when k > n")
	}
}

func TestEngineDeterministic(t *testing.T) {
	points := twoBlobs()

	r1, err := NewEngine(2).Cluster(points, 42)
	if err != nil {
		t.Fatalf("Cluster failed: %v", err)
	}
	r2, err := NewEngine(2).Cluster(points, 42)
	if err != nil {
		t.Fatalf("Cluster failed: %v", err)
	}

	if !mat.Equal(r1.Centres, r2.Centres) {
		t.Error("same-seed runs produced different centres")
	}
}

func TestEngineLloydMonotoneCost(t *testing.T) {
	points := twoBlobs()
	engine := NewEngine(2)
	engine.MaxIters = 1

	result, err := engine.Cluster(points, 42)
	if err != nil {
		t.Fatalf("Cluster failed: %v", err)
	}
	firstCost := result.Assignments.TotalCost()

	engine.MaxIters = 20
	result2, err := engine.Cluster(points, 42)
	if err != nil {
		t.Fatalf("Cluster failed: %v", err)
	}
	finalCost := result2.Assignments.TotalCost()

	if finalCost > firstCost+1e-9 {
		t.Errorf("total cost increased from %f to %f across more iterations", firstCost, finalCost)
	}
}

func TestEngineSingleCluster(t *testing.T) {
	points := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	engine := NewEngine(1)

	result, err := engine.Cluster(points, 7)
	if err != nil {
		t.Fatalf("Cluster failed: %v", err)
	}

	// The single centre should be the arithmetic mean: 2.5.
	got := result.Centres.At(0, 0)
	if got < 2.4 || got > 2.6 {
		t.Errorf("centre = %f, want ~2.5", got)
	}
}
