package heuristic

import (
	"math"

	"github.com/kvoxel/curvextract/costfn"
	"github.com/kvoxel/curvextract/grid"
	"github.com/kvoxel/curvextract/search"
)

// Values is the lower bound h_voxel, indexed by voxel index (shape.Sub2Ind).
// Values[i] is the cheapest unlifted data+length cost from voxel i to the
// end set, or +Inf if i cannot reach the end set.
type Values struct {
	distances   []float64
	shape       grid.Shape
	evaluations int64
}

// At returns the lower bound for the voxel point p.
func (v Values) At(p grid.Point) float64 {
	return v.distances[v.shape.Sub2IndPoint(p)]
}

// AtIndex returns the lower bound for the voxel index i.
func (v Values) AtIndex(i int) float64 {
	return v.distances[i]
}

// Evaluations is the number of successor-oracle invocations spent computing
// this bound.
func (v Values) Evaluations() int64 {
	return v.evaluations
}

// Build computes h_voxel for every voxel reachable from ends, over a graph
// whose edges are the grid connectivity conn weighted by quad's data and
// length terms only.
func Build(shape grid.Shape, conn grid.Connectivity, quad costfn.Quad, ends []grid.Point) (Values, error) {
	n := int64(shape.NumCells())

	successors := func(node int64, emit func(dest int64, cost float64)) {
		p := shape.Ind2SubPoint(int(node))
		for _, off := range conn {
			q := p.Add(off)
			if !shape.ValidPoint(q) {
				continue
			}
			cost := quad.Data.Data(p, q) + quad.Length.Length(p, q)
			emit(int64(shape.Sub2IndPoint(q)), cost)
		}
	}

	starts := make([]int64, 0, len(ends))
	for _, p := range ends {
		if shape.ValidPoint(p) {
			starts = append(starts, int64(shape.Sub2IndPoint(p)))
		}
	}
	if len(starts) == 0 {
		distances := make([]float64, n)
		for i := range distances {
			distances[i] = math.Inf(1)
		}
		return Values{distances: distances, shape: shape}, nil
	}

	res, err := search.Run(n, starts, nil, successors, nil, search.Options{ComputeAllDistances: true})
	if err != nil {
		return Values{}, err
	}
	return Values{distances: res.Distances, shape: shape, evaluations: res.Evaluations}, nil
}
