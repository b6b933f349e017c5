// Package curveinfo implements the curve_info diagnostic: given a problem
// type, the data volume, a manually supplied polyline, connectivity and
// settings, it recomputes the eight scalar totals independent of
// search/lifted. The same cost functors costfn.Build produces are walked
// directly over consecutive points of the polyline, so a search result and
// a hand-constructed polyline are scored identically.
//
// Grounded on original_source/matlab/library/curve_info_mex.cpp: the same
// per-segment accumulation of data, length, curvature and torsion, guarded
// by the same weight ≤ 0 ⇒ 0 policy as the search path (costfn.ApplyWeight /
// ApplyPenalty), so the two call sites can never drift apart.
package curveinfo

import (
	"errors"

	"github.com/kvoxel/curvextract/costfn"
	"github.com/kvoxel/curvextract/grid"
)

// ErrPathTooShort is returned when path has fewer than two points.
var ErrPathTooShort = errors.New("curveinfo: path must have at least two points")

// Totals holds the eight scalars of diagnostic call.
type Totals struct {
	Cost              float64
	Data              float64
	WeightedLength    float64
	WeightedCurvature float64
	WeightedTorsion   float64
	RawLength         float64
	RawCurvature      float64
	RawTorsion        float64
}

// Evaluate recomputes Totals for path under problemType, data and settings.
func Evaluate(problemType string, data costfn.Volume, path []grid.Point, conn grid.Connectivity, settings costfn.Settings) (Totals, error) {
	if len(path) < 2 {
		return Totals{}, ErrPathTooShort
	}

	quad, err := costfn.Build(problemType, data, settings)
	if err != nil {
		return Totals{}, err
	}

	vd := settings.VoxelDimensions
	var totals Totals

	for i := 0; i+1 < len(path); i++ {
		p, q := path[i], path[i+1]
		totals.Data += quad.Data.Data(p, q)
		totals.WeightedLength += quad.Length.Length(p, q)
		totals.RawLength += costfn.RawLength(p, q, vd)
	}

	for i := 0; i+2 < len(path); i++ {
		p, q, r := path[i], path[i+1], path[i+2]
		totals.WeightedCurvature += quad.Curvature.Curvature(p, q, r)
		totals.RawCurvature += costfn.RawCurvature(p, q, r, vd)
	}

	for i := 0; i+3 < len(path); i++ {
		p, q, r, s := path[i], path[i+1], path[i+2], path[i+3]
		totals.WeightedTorsion += quad.Torsion.Torsion(p, q, r, s)
		totals.RawTorsion += costfn.RawTorsion(p, q, r, s, vd)
	}

	totals.Cost = totals.Data + totals.WeightedLength + totals.WeightedCurvature + totals.WeightedTorsion
	return totals, nil
}
