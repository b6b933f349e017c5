// Package regcache implements a regularization cache: a memoized table from
// a triple of connectivity-edge indices (e1,e2,e3) to length(p3,p4) +
// curvature(p2,p3,p4) + torsion(p1,p2,p3,p4), evaluated at an arbitrary
// anchor point. The cache is valid only when those three terms are
// translation-invariant, i.e. when none of them reads the image volume (or
// their weight is zero anyway). Applicable reports that.
//
// Entries are filled lazily on first miss; capacity is bounded by K³, the
// same dense-slice-plus-bitset shape as a fixed small lookup table, since
// there is no eviction to manage.
package regcache

import (
	"github.com/kvoxel/curvextract/costfn"
	"github.com/kvoxel/curvextract/grid"
)

// Cache memoizes (e1,e2,e3) -> length+curvature+torsion for one connectivity.
type Cache struct {
	k      int
	values []float64
	filled []bool
}

// New allocates a Cache for a connectivity of size k. Capacity is k³.
func New(k int) *Cache {
	return &Cache{
		k:      k,
		values: make([]float64, k*k*k),
		filled: make([]bool, k*k*k),
	}
}

func (c *Cache) index(e1, e2, e3 int) int {
	return e1*c.k*c.k + e2*c.k + e3
}

// Get returns the cached regularization cost for (e1,e2,e3), computing and
// storing it on first access from the connectivity's offsets, anchored at
// the origin.
func (c *Cache) Get(e1, e2, e3 int, conn grid.Connectivity, quad costfn.Quad) float64 {
	idx := c.index(e1, e2, e3)
	if c.filled[idx] {
		return c.values[idx]
	}
	value := compute(e1, e2, e3, conn, quad)
	c.values[idx] = value
	c.filled[idx] = true
	return value
}

// compute evaluates length+curvature+torsion at an arbitrary anchor (the
// origin), which is valid because all three functors consulted here are
// translation-invariant whenever Applicable(quad) is true.
func compute(e1, e2, e3 int, conn grid.Connectivity, quad costfn.Quad) float64 {
	p1 := grid.Point{}
	p2 := p1.Add(conn[e1])
	p3 := p2.Add(conn[e2])
	p4 := p3.Add(conn[e3])

	cost := quad.Length.Length(p3, p4)
	cost += quad.Curvature.Curvature(p2, p3, p4)
	cost += quad.Torsion.Torsion(p1, p2, p3, p4)
	return cost
}

// Applicable reports whether the cache may be consulted at all for this
// quadruple and settings: every one of length/curvature/torsion must be
// either data-independent, or have its corresponding weight zeroed out so
// the data dependence never shows up in the sum.
func Applicable(quad costfn.Quad, lengthPenalty, curvaturePenalty, torsionPenalty float64) bool {
	if quad.Length.DataDependent() && lengthPenalty > 0 {
		return false
	}
	if quad.Curvature.DataDependent() && curvaturePenalty > 0 {
		return false
	}
	if quad.Torsion.DataDependent() && torsionPenalty > 0 {
		return false
	}
	return true
}
