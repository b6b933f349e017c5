package heuristic

import (
	"math"
	"testing"

	"github.com/kvoxel/curvextract/costfn"
	"github.com/kvoxel/curvextract/grid"
)

func uniformQuad(t *testing.T, shape grid.Shape) costfn.Quad {
	t.Helper()
	vol := costfn.Volume{Shape: shape, Data: make([]float64, shape.NumCells())}
	for i := range vol.Data {
		vol.Data[i] = 1
	}
	quad, err := costfn.Build(costfn.LinearInterpolation, vol, costfn.Settings{
		VoxelDimensions: [3]float64{1, 1, 1},
		LengthPenalty:   1,
	})
	if err != nil {
		t.Fatal(err)
	}
	return quad
}

func TestBuildIsZeroAtTheEndSet(t *testing.T) {
	shape := grid.Shape{M: 4, N: 1, O: 1}
	conn := grid.ConnFromRows([][3]int{{1, 0, 0}, {-1, 0, 0}})
	quad := uniformQuad(t, shape)

	vals, err := Build(shape, conn, quad, []grid.Point{{X: 3}})
	if err != nil {
		t.Fatal(err)
	}
	if vals.At(grid.Point{X: 3}) != 0 {
		t.Fatalf("At(end)=%v; want 0", vals.At(grid.Point{X: 3}))
	}
	if vals.At(grid.Point{X: 0}) <= 0 {
		t.Fatalf("At(far)=%v; want >0", vals.At(grid.Point{X: 0}))
	}
}

func TestBuildIsMonotoneTowardEndSet(t *testing.T) {
	shape := grid.Shape{M: 4, N: 1, O: 1}
	conn := grid.ConnFromRows([][3]int{{1, 0, 0}, {-1, 0, 0}})
	quad := uniformQuad(t, shape)

	vals, err := Build(shape, conn, quad, []grid.Point{{X: 3}})
	if err != nil {
		t.Fatal(err)
	}
	prev := math.Inf(1)
	for x := 0; x <= 3; x++ {
		v := vals.At(grid.Point{X: x})
		if v > prev {
			t.Fatalf("At(x=%d)=%v should not exceed At(x=%d)=%v", x, v, x-1, prev)
		}
		prev = v
	}
}

func TestBuildUnreachableVoxelsAreInf(t *testing.T) {
	shape := grid.Shape{M: 4, N: 1, O: 1}
	conn := grid.ConnFromRows([][3]int{{0, 1, 0}}) // +y only, N=1 so nothing is reachable
	quad := uniformQuad(t, shape)

	vals, err := Build(shape, conn, quad, []grid.Point{{X: 0}})
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(vals.At(grid.Point{X: 1}), 1) {
		t.Fatalf("At(x=1)=%v; want +Inf (unreachable)", vals.At(grid.Point{X: 1}))
	}
}

func TestBuildNoEndsYieldsAllInf(t *testing.T) {
	shape := grid.Shape{M: 2, N: 1, O: 1}
	conn := grid.ConnFromRows([][3]int{{1, 0, 0}, {-1, 0, 0}})
	quad := uniformQuad(t, shape)

	vals, err := Build(shape, conn, quad, nil)
	if err != nil {
		t.Fatal(err)
	}
	for x := 0; x < 2; x++ {
		if !math.IsInf(vals.At(grid.Point{X: x}), 1) {
			t.Fatalf("At(x=%d)=%v; want +Inf with no end points", x, vals.At(grid.Point{X: x}))
		}
	}
}
