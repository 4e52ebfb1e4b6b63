package groupsample

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func blobPoints(t *testing.T) *mat.Dense {
	t.Helper()
	data := []float64{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
		50, 50,
		50, 51,
		51, 50,
		51, 51,
		100, 0,
	}
	return mat.NewDense(9, 2, data)
}

func TestBuildProducesCoreset(t *testing.T) {
	points := blobPoints(t)
	params := DefaultParams(4, 10, 7)

	result, coreset, err := Build(points, params)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if result.Centres.RawMatrix().Rows != params.KPrime {
		t.Errorf("expected %d centres, got %d", params.KPrime, result.Centres.RawMatrix().Rows)
	}
	if len(coreset) == 0 {
		t.Fatal("expected a non-empty coreset")
	}
	for _, wp := range coreset {
		if wp.Weight < 0 {
			t.Errorf("negative coreset weight: %+v", wp)
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	points := blobPoints(t)
	params := DefaultParams(4, 10, 42)

	_, coreset1, err := Build(points, params)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	_, coreset2, err := Build(points, params)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(coreset1) != len(coreset2) {
		t.Fatalf("non-deterministic coreset size: %d vs %d", len(coreset1), len(coreset2))
	}
	for i := range coreset1 {
		if coreset1[i] != coreset2[i] {
			t.Errorf("non-deterministic coreset at %d: %+v vs %+v", i, coreset1[i], coreset2[i])
		}
	}
}

func TestBuildRejectsInvalidParams(t *testing.T) {
	points := blobPoints(t)

	cases := []Params{
		DefaultParams(0, 10, 1),
		DefaultParams(4, 0, 1),
	}
	for _, p := range cases {
		if _, _, err := Build(points, p); err == nil {
			t.Errorf("expected error for params %+v", p)
		}
	}

	badBeta := DefaultParams(4, 10, 1)
	badBeta.Beta = 1
	if _, _, err := Build(points, badBeta); err == nil {
		t.Error("expected error for beta <= 1")
	}

	badJ := DefaultParams(4, 10, 1)
	badJ.GroupsPerRange = 0
	if _, _, err := Build(points, badJ); err == nil {
		t.Error("expected error for non-positive GroupsPerRange")
	}
}
