package lifted

import (
	"github.com/kvoxel/curvextract/costfn"
	"github.com/kvoxel/curvextract/grid"
	"github.com/kvoxel/curvextract/regcache"
)

// Oracle produces the outgoing edges of a lifted node on demand. It never
// returns a slice on the hot path: successors are streamed through emit,
// mirroring gridgraph's allocation-free precomputed-offset adjacency
// expansion.
type Oracle struct {
	Shape grid.Shape
	Conn  grid.Connectivity
	Quad  costfn.Quad
	Cache *regcache.Cache // nil disables caching (regcache.Applicable was false)
	Starts []int64        // the lifted start set; only consulted from the super-source

	// Evaluations counts successor-oracle invocations, reported by the
	// driver.
	Evaluations int64
}

// SuperSource returns the sentinel lifted-node id: the total edge-pair
// count.
func (o *Oracle) SuperSource() int64 {
	return NumEdgePairs(o.Shape, o.Conn)
}

// Successors emits every valid outgoing edge of ep.
func (o *Oracle) Successors(ep int64, emit func(dest int64, cost float64)) {
	o.Evaluations++

	if ep == o.SuperSource() {
		o.superSourceSuccessors(emit)
		return
	}

	k := o.Conn.K()
	root, e1, e2 := Decode(ep, k)
	p1 := o.Shape.Ind2SubPoint(root)
	p2 := p1.Add(o.Conn[e1])
	p3 := p2.Add(o.Conn[e2])

	for e3 := 0; e3 < k; e3++ {
		p4 := p3.Add(o.Conn[e3])
		if !o.Shape.ValidPoint(p4) {
			continue
		}
		if p4 == p2 {
			continue // forbid U-turns
		}

		cost := o.Quad.Data.Data(p3, p4)
		if o.Cache != nil {
			cost += o.Cache.Get(e1, e2, e3, o.Conn, o.Quad)
		} else {
			cost += o.Quad.Length.Length(p3, p4)
			cost += o.Quad.Curvature.Curvature(p2, p3, p4)
			cost += o.Quad.Torsion.Torsion(p1, p2, p3, p4)
		}

		dest := Encode(o.Shape.Sub2IndPoint(p2), e2, e3, k)
		emit(dest, cost)
	}
}

// superSourceSuccessors emits one edge per lifted start node, with a cost
// that already includes the first segment's data, length and curvature,
// but not torsion, since a three-point segment has no fourth point yet.
func (o *Oracle) superSourceSuccessors(emit func(dest int64, cost float64)) {
	for _, startEP := range o.Starts {
		p1, p2, p3 := Points(startEP, o.Shape, o.Conn)

		cost := o.Quad.Data.Data(p1, p2)
		cost += o.Quad.Data.Data(p2, p3)
		cost += o.Quad.Length.Length(p1, p2)
		cost += o.Quad.Length.Length(p2, p3)
		cost += o.Quad.Curvature.Curvature(p1, p2, p3)

		emit(startEP, cost)
	}
}
