package cluster

import (
	"testing"

	"github.com/TIVerse/gophercoreset/assignment"
)

func TestRangeBounds(t *testing.T) {
	lo, hi := RangeBounds(200)
	if lo != -2 || hi != 2 {
		t.Errorf("RangeBounds(200) = (%d, %d), want (-2, 2)", lo, hi)
	}
}

// buildTestTable constructs one cluster with 100 "typical" points at
// distance 10 (which dominate the cluster's average cost) plus three
// deliberately placed points: one well below the innermost ring bound
// (shortfall), one inside a ring band, and one well beyond the outermost
// ring bound (overshoot).
func buildTestTable() *assignment.Table {
	n := 103
	table := assignment.New(n, 1)
	for i := 0; i < 100; i++ {
		table.Assign(i, 0, 10)
	}
	table.Assign(100, 0, 1)    // shortfall
	table.Assign(101, 0, 15)   // ring
	table.Assign(102, 0, 1000) // overshoot
	return table
}

func TestBuildRingsPartition(t *testing.T) {
	table := buildTestTable()
	rs, err := BuildRings(table, 200)
	if err != nil {
		t.Fatalf("BuildRings failed: %v", err)
	}

	if err := rs.Validate(table.NumPoints()); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if len(rs.Shortfall(0)) != 1 {
		t.Errorf("expected 1 shortfall point, got %d", len(rs.Shortfall(0)))
	}
	if len(rs.Overshoot(0)) != 1 {
		t.Errorf("expected 1 overshoot point, got %d", len(rs.Overshoot(0)))
	}
}

func TestBuildRingsEmptyOvershoot(t *testing.T) {
	// All points within the ring range: no shortfall, no overshoot.
	table := assignment.New(2, 1)
	table.Assign(0, 0, 2.0)
	table.Assign(1, 0, 3.0)

	rs, err := BuildRings(table, 200)
	if err != nil {
		t.Fatalf("BuildRings failed: %v", err)
	}
	if len(rs.AllOvershoot()) != 0 {
		t.Errorf("expected no overshoot points, got %d", len(rs.AllOvershoot()))
	}
	if err := rs.Validate(2); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
}
