package lifted

import (
	"sort"

	"github.com/kvoxel/curvextract/grid"
)

// LiftSets enumerates every valid edge-pair of shape/conn and buckets it
// into the lifted start set (root cell tagged start, or listed in
// extraStart) and the lifted end set (tail cell p3 tagged end, or listed in
// extraEnd): start/end lifted sets contain only edge-pairs whose root/tail
// cell has the corresponding mesh-map tag.
//
// A segment whose tail returns to its root (p1 == p3, the "symmetric
// neighborhood" case) is excluded as a degenerate edge-pair that folds
// straight back onto itself.
func LiftSets(mesh grid.MeshMap, conn grid.Connectivity, extraStart, extraEnd []grid.Point) (starts, ends []int64) {
	shape := mesh.Shape
	k := conn.K()

	extraStartSet := toIndexSet(extraStart, shape)
	extraEndSet := toIndexSet(extraEnd, shape)

	startSet := make(map[int64]struct{})
	endSet := make(map[int64]struct{})

	for root := 0; root < shape.NumCells(); root++ {
		p1 := shape.Ind2SubPoint(root)
		for e1 := 0; e1 < k; e1++ {
			p2 := p1.Add(conn[e1])
			if !shape.ValidPoint(p2) {
				continue
			}
			for e2 := 0; e2 < k; e2++ {
				p3 := p2.Add(conn[e2])
				if p1 == p3 {
					continue
				}
				if !shape.ValidPoint(p3) {
					continue
				}
				id := Encode(root, e1, e2, k)

				if mesh.At(p1.X, p1.Y, p1.Z) == grid.TagStart {
					startSet[id] = struct{}{}
				} else if _, ok := extraStartSet[root]; ok {
					startSet[id] = struct{}{}
				}

				tail := shape.Sub2IndPoint(p3)
				if mesh.At(p3.X, p3.Y, p3.Z) == grid.TagEnd {
					endSet[id] = struct{}{}
				} else if _, ok := extraEndSet[tail]; ok {
					endSet[id] = struct{}{}
				}
			}
		}
	}

	return sortedKeys(startSet), sortedKeys(endSet)
}

func toIndexSet(points []grid.Point, shape grid.Shape) map[int]struct{} {
	set := make(map[int]struct{}, len(points))
	for _, p := range points {
		set[shape.Sub2IndPoint(p)] = struct{}{}
	}
	return set
}

func sortedKeys(set map[int64]struct{}) []int64 {
	out := make([]int64, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
