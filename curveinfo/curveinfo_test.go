package curveinfo

import (
	"math"
	"testing"

	"github.com/kvoxel/curvextract/costfn"
	"github.com/kvoxel/curvextract/grid"
)

func uniformVolume(shape grid.Shape, value float64) costfn.Volume {
	data := make([]float64, shape.NumCells())
	for i := range data {
		data[i] = value
	}
	return costfn.Volume{Shape: shape, Data: data}
}

// S5: curve_info over [(0,0,0),(1,0,0),(2,0,0),(3,0,0)] with unit data
// returns (data=3, length=3, curvature=0, torsion=0).
func TestScenarioS5StraightPolylineWithUnitData(t *testing.T) {
	shape := grid.Shape{M: 4, N: 4, O: 1}
	vol := uniformVolume(shape, 1)
	path := []grid.Point{{X: 0}, {X: 1}, {X: 2}, {X: 3}}

	totals, err := Evaluate(costfn.LinearInterpolation, vol, path, eightNeighborhood2D(), costfn.Settings{
		VoxelDimensions:  [3]float64{1, 1, 1},
		LengthPenalty:    1,
		CurvaturePenalty: 1,
		CurvaturePower:   2,
		TorsionPenalty:   1,
		TorsionPower:     2,
	})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(totals.Data-3) > 1e-9 {
		t.Errorf("Data=%v; want 3", totals.Data)
	}
	if math.Abs(totals.WeightedLength-3) > 1e-9 {
		t.Errorf("WeightedLength=%v; want 3", totals.WeightedLength)
	}
	if math.Abs(totals.WeightedCurvature) > 1e-9 {
		t.Errorf("WeightedCurvature=%v; want 0", totals.WeightedCurvature)
	}
	if math.Abs(totals.WeightedTorsion) > 1e-9 {
		t.Errorf("WeightedTorsion=%v; want 0", totals.WeightedTorsion)
	}
}

func TestEvaluateRejectsShortPath(t *testing.T) {
	shape := grid.Shape{M: 2, N: 1, O: 1}
	vol := uniformVolume(shape, 1)

	_, err := Evaluate(costfn.LinearInterpolation, vol, []grid.Point{{X: 0}}, eightNeighborhood2D(), costfn.Settings{})
	if err != ErrPathTooShort {
		t.Fatalf("err=%v; want ErrPathTooShort", err)
	}
}

func TestEvaluatePropagatesUnknownProblemType(t *testing.T) {
	shape := grid.Shape{M: 2, N: 1, O: 1}
	vol := uniformVolume(shape, 1)
	path := []grid.Point{{X: 0}, {X: 1}}

	_, err := Evaluate("not_real", vol, path, eightNeighborhood2D(), costfn.Settings{})
	if err != costfn.ErrUnknownProblemType {
		t.Fatalf("err=%v; want costfn.ErrUnknownProblemType", err)
	}
}

func eightNeighborhood2D() grid.Connectivity {
	return grid.ConnFromRows([][3]int{
		{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0},
		{1, 1, 0}, {1, -1, 0}, {-1, 1, 0}, {-1, -1, 0},
	})
}
