package lifted

import (
	"testing"

	"github.com/kvoxel/curvextract/costfn"
	"github.com/kvoxel/curvextract/grid"
)

func buildQuad(t *testing.T, shape grid.Shape) costfn.Quad {
	t.Helper()
	vol := costfn.Volume{Shape: shape, Data: make([]float64, shape.NumCells())}
	for i := range vol.Data {
		vol.Data[i] = 1
	}
	quad, err := costfn.Build(costfn.LinearInterpolation, vol, costfn.Settings{
		VoxelDimensions: [3]float64{1, 1, 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	return quad
}

func TestOracleSuperSourceEmitsEveryStart(t *testing.T) {
	shape := grid.Shape{M: 4, N: 1, O: 1}
	conn := fourNeighborConn()
	quad := buildQuad(t, shape)

	start := Encode(shape.Sub2Ind(0, 0, 0), 0, 0, conn.K()) // root=0, e1=e2="+x"
	oracle := &Oracle{Shape: shape, Conn: conn, Quad: quad, Starts: []int64{start}}

	var dests []int64
	oracle.Successors(oracle.SuperSource(), func(dest int64, cost float64) {
		dests = append(dests, dest)
		if cost <= 0 {
			t.Errorf("super-source cost=%v; want >0 for nonzero data", cost)
		}
	})
	if len(dests) != 1 || dests[0] != start {
		t.Fatalf("dests=%v; want [%d]", dests, start)
	}
	if oracle.Evaluations != 1 {
		t.Errorf("Evaluations=%d; want 1", oracle.Evaluations)
	}
}

func TestOracleForbidsUTurn(t *testing.T) {
	shape := grid.Shape{M: 4, N: 1, O: 1}
	conn := fourNeighborConn() // offsets: +x,-x,+y,-y
	quad := buildQuad(t, shape)
	oracle := &Oracle{Shape: shape, Conn: conn, Quad: quad}

	// root=1, e1=0(+x) -> p1=(1),p2=(2); e2=1(-x) -> p3=(1) == p1, excluded by LiftSets
	// Use a continuation instead: p1=(0),e1=0(+x)->p2=(1),e2=0(+x)->p3=(2).
	ep := Encode(shape.Sub2Ind(0, 0, 0), 0, 0, conn.K())
	var dests []int64
	oracle.Successors(ep, func(dest int64, cost float64) {
		dests = append(dests, dest)
	})
	// e3=1 (-x) would send p4 back to p2=(1): must be excluded.
	for _, dest := range dests {
		_, e2, e3 := Decode(dest, conn.K())
		if e2 == 0 && e3 == 1 {
			t.Fatalf("U-turn continuation leaked into successors: dest=%d", dest)
		}
	}
}

func TestOracleOnValidGridBoundary(t *testing.T) {
	shape := grid.Shape{M: 2, N: 1, O: 1}
	conn := fourNeighborConn() // offsets: +x,-x,+y,-y
	quad := buildQuad(t, shape)
	oracle := &Oracle{Shape: shape, Conn: conn, Quad: quad}

	// root=0, e1=0(+x)->p2=(1,0,0); e2=1(-x)->p3=(0,0,0). Every continuation
	// e3 either U-turns back to p2 or leaves the 2x1x1 grid.
	ep := Encode(shape.Sub2Ind(0, 0, 0), 0, 1, conn.K())
	var n int
	oracle.Successors(ep, func(dest int64, cost float64) { n++ })
	if n != 0 {
		t.Fatalf("expected no successors at the grid boundary, got %d", n)
	}
}
