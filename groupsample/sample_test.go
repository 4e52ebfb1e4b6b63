package groupsample

import (
	"math"
	"testing"

	"github.com/TIVerse/gophercoreset/assignment"
	"github.com/TIVerse/gophercoreset/random"
)

func TestSampleGroupsWeightsFinite(t *testing.T) {
	table := assignment.New(4, 1)
	table.Assign(0, 0, 1)
	table.Assign(1, 0, 2)
	table.Assign(2, 0, 3)
	table.Assign(3, 0, 4)

	groups := []*Group{{J: 0, RangeIndex: 0, Points: []int{0, 1, 2, 3}}}
	rnd := random.New(11)

	out, err := SampleGroups(groups, table, 10, table.TotalCost(), rnd)
	if err != nil {
		t.Fatalf("SampleGroups failed: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected samples from a positive-cost group")
	}
	for _, wp := range out {
		if wp.Weight <= 0 || math.IsInf(wp.Weight, 0) || math.IsNaN(wp.Weight) {
			t.Errorf("non-positive or non-finite weight: %+v", wp)
		}
	}
}

func TestSampleGroupsSkipsZeroCostGroup(t *testing.T) {
	table := assignment.New(2, 1)
	table.Assign(0, 0, 0)
	table.Assign(1, 0, 0)

	groups := []*Group{{J: 0, RangeIndex: 0, Points: []int{0, 1}}}
	rnd := random.New(3)

	out, err := SampleGroups(groups, table, 5, 1, rnd)
	if err != nil {
		t.Fatalf("SampleGroups failed: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected no samples from a zero-cost group, got %d", len(out))
	}
}
