package regcache

import (
	"math"
	"testing"

	"github.com/kvoxel/curvextract/costfn"
	"github.com/kvoxel/curvextract/grid"
)

func TestCacheMatchesDirectEvaluation(t *testing.T) {
	conn := grid.ConnFromRows([][3]int{{1, 0, 0}, {0, 1, 0}, {-1, 0, 0}, {0, -1, 0}})
	quad, err := costfn.Build(costfn.LinearInterpolation, costfn.Volume{}, costfn.Settings{
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
	if !Applicable(quad, 1, 1, 1) {
		t.Fatal("Euclidean terms should be cache-applicable")
	}

	cache := New(conn.K())
	for e1 := 0; e1 < conn.K(); e1++ {
		for e2 := 0; e2 < conn.K(); e2++ {
			for e3 := 0; e3 < conn.K(); e3++ {
				cached := cache.Get(e1, e2, e3, conn, quad)
				direct := compute(e1, e2, e3, conn, quad)
				if math.Abs(cached-direct) > 1e-12 {
					t.Errorf("cache.Get(%d,%d,%d)=%v; want %v", e1, e2, e3, cached, direct)
				}
				// Second access must hit the cache and return the same value.
				if again := cache.Get(e1, e2, e3, conn, quad); again != cached {
					t.Errorf("repeat cache.Get(%d,%d,%d)=%v; want %v", e1, e2, e3, again, cached)
				}
			}
		}
	}
}

func TestApplicableFalseWhenDataDependentWithPositiveWeight(t *testing.T) {
	shape := grid.Shape{M: 4, N: 4, O: 1}
	vol := costfn.Volume{Shape: shape, Data: make([]float64, shape.NumCells())}
	quad, err := costfn.Build(costfn.Geodesic, vol, costfn.Settings{
		VoxelDimensions:  [3]float64{1, 1, 1},
		LengthPenalty:    1,
		CurvaturePenalty: 1,
		CurvaturePower:   2,
	})
	if err != nil {
		t.Fatal(err)
	}
	if Applicable(quad, 1, 1, 0) {
		t.Fatal("geodesic length/curvature with positive weight must not be cacheable")
	}
	if !Applicable(quad, 0, 0, 0) {
		t.Fatal("all-zero weights must always be cacheable")
	}
}
