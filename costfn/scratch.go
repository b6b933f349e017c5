package costfn

import (
	"sync"

	"github.com/kvoxel/curvextract/grid"
)

// lineIntegralSamples is the number of interior samples used to approximate
// the line integral of the data volume along a directed edge.
const lineIntegralSamples = 4

// crossingScratch is the per-call scratch buffer in which the line-integral
// evaluator records the fractional position of each interior sample it
// takes along the segment; every sample carries equal weight. It is pooled rather than shared so that the same DataCost value
// stays safe to call concurrently from independent search instances, without
// a shared mutable buffer leaking across goroutines.
type crossingScratch struct {
	crossings []float64
}

var scratchPool = sync.Pool{
	New: func() any {
		return &crossingScratch{crossings: make([]float64, 0, lineIntegralSamples)}
	},
}

func getScratch() *crossingScratch {
	s := scratchPool.Get().(*crossingScratch)
	s.crossings = s.crossings[:0]
	return s
}

func putScratch(s *crossingScratch) {
	scratchPool.Put(s)
}

// integrateLine approximates the line integral of vol's trilinear
// interpolant along the directed segment p->q, recording the fractional
// position of each interior sample into scratch.crossings (so a caller
// instrumenting the search can inspect how the integral was built up).
func integrateLine(vol Volume, p, q grid.Point, scratch *crossingScratch) float64 {
	var total float64
	for i := 1; i <= lineIntegralSamples; i++ {
		t := float64(i) / float64(lineIntegralSamples+1)
		scratch.crossings = append(scratch.crossings, t)
		fx := float64(p.X) + t*float64(q.X-p.X)
		fy := float64(p.Y) + t*float64(q.Y-p.Y)
		fz := float64(p.Z) + t*float64(q.Z-p.Z)
		total += trilinear(vol, fx, fy, fz)
	}
	total += vol.AtPoint(p)
	total += vol.AtPoint(q)
	return total / float64(lineIntegralSamples+2)
}

// averageData is the simple two-sample average used by the geodesic
// problem type to weight length/curvature by local image intensity.
func averageData(vol Volume, p, q grid.Point) float64 {
	return (vol.AtPoint(p) + vol.AtPoint(q)) / 2
}

// trilinear samples vol at a fractional coordinate, clamping each of the
// eight corner lookups to the nearest in-bounds voxel.
func trilinear(vol Volume, x, y, z float64) float64 {
	x0 := int(floorFloat(x))
	y0 := int(floorFloat(y))
	z0 := int(floorFloat(z))
	fx := x - floorFloat(x)
	fy := y - floorFloat(y)
	fz := z - floorFloat(z)

	c000 := vol.clampedAt(x0, y0, z0)
	c100 := vol.clampedAt(x0+1, y0, z0)
	c010 := vol.clampedAt(x0, y0+1, z0)
	c110 := vol.clampedAt(x0+1, y0+1, z0)
	c001 := vol.clampedAt(x0, y0, z0+1)
	c101 := vol.clampedAt(x0+1, y0, z0+1)
	c011 := vol.clampedAt(x0, y0+1, z0+1)
	c111 := vol.clampedAt(x0+1, y0+1, z0+1)

	c00 := c000*(1-fx) + c100*fx
	c10 := c010*(1-fx) + c110*fx
	c01 := c001*(1-fx) + c101*fx
	c11 := c011*(1-fx) + c111*fx

	c0 := c00*(1-fy) + c10*fy
	c1 := c01*(1-fy) + c11*fy

	return c0*(1-fz) + c1*fz
}

func floorFloat(x float64) float64 {
	i := float64(int(x))
	if i > x {
		i--
	}
	return i
}
