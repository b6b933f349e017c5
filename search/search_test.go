package search

import (
	"math"
	"testing"
)

// line builds a SuccessorFn for a simple directed line graph 0->1->2->...->n-1
// with uniform edge cost 1.
func line(n int64) SuccessorFn {
	return func(node int64, emit func(dest int64, cost float64)) {
		if node+1 < n {
			emit(node+1, 1)
		}
	}
}

func TestRunFindsShortestPathOnLine(t *testing.T) {
	res, err := Run(5, []int64{0}, []int64{4}, line(5), nil, Options{StoreParents: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 4 {
		t.Fatalf("Cost=%v; want 4", res.Cost)
	}
	want := []int64{0, 1, 2, 3, 4}
	if len(res.Path) != len(want) {
		t.Fatalf("Path=%v; want %v", res.Path, want)
	}
	for i, v := range want {
		if res.Path[i] != v {
			t.Fatalf("Path=%v; want %v", res.Path, want)
		}
	}
}

func TestRunNoPathReturnsInfCostAndNilPath(t *testing.T) {
	empty := func(node int64, emit func(dest int64, cost float64)) {}
	res, err := Run(3, []int64{0}, []int64{2}, empty, nil, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(res.Cost, 1) {
		t.Fatalf("Cost=%v; want +Inf", res.Cost)
	}
	if res.Path != nil {
		t.Fatalf("Path=%v; want nil", res.Path)
	}
}

func TestRunRejectsEmptyStarts(t *testing.T) {
	if _, err := Run(3, nil, []int64{1}, line(3), nil, Options{}); err != ErrNoStarts {
		t.Fatalf("err=%v; want ErrNoStarts", err)
	}
}

func TestRunRejectsBadNodeCount(t *testing.T) {
	if _, err := Run(0, []int64{0}, []int64{1}, line(3), nil, Options{}); err != ErrBadNodeCount {
		t.Fatalf("err=%v; want ErrBadNodeCount", err)
	}
}

func TestRunStoreParentsImpliesStoreVisited(t *testing.T) {
	res, err := Run(3, []int64{0}, []int64{2}, line(3), nil, Options{StoreParents: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.VisitTime == nil {
		t.Fatal("VisitTime=nil; want populated because StoreParents implies StoreVisited")
	}
}

func TestRunComputeAllDistancesSettlesEveryReachableNode(t *testing.T) {
	res, err := Run(5, []int64{0}, []int64{4}, line(5), nil, Options{ComputeAllDistances: true})
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []float64{0, 1, 2, 3, 4} {
		if res.Distances[i] != want {
			t.Errorf("Distances[%d]=%v; want %v", i, res.Distances[i], want)
		}
	}
}

func TestRunAStarWithAdmissibleHeuristicMatchesDijkstra(t *testing.T) {
	// Grid-like diamond: 0 -> {1,2} -> 3, costs chosen so the heuristic
	// (1 for every node but the end) is admissible.
	succ := func(node int64, emit func(dest int64, cost float64)) {
		switch node {
		case 0:
			emit(1, 1)
			emit(2, 4)
		case 1:
			emit(3, 4)
		case 2:
			emit(3, 1)
		}
	}
	h := func(node int64) float64 {
		if node == 3 {
			return 0
		}
		return 1
	}
	res, err := Run(4, []int64{0}, []int64{3}, succ, h, Options{StoreParents: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 5 {
		t.Fatalf("Cost=%v; want 5", res.Cost)
	}
}

func TestRunIgnoresOutOfRangeSuccessors(t *testing.T) {
	succ := func(node int64, emit func(dest int64, cost float64)) {
		if node == 0 {
			emit(-1, 1)
			emit(99, 1)
			emit(1, 1)
		}
	}
	res, err := Run(2, []int64{0}, []int64{1}, succ, nil, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Cost != 1 {
		t.Fatalf("Cost=%v; want 1", res.Cost)
	}
}
