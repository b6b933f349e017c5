package segment

import (
	"math"

	"github.com/kvoxel/curvextract/grid"
	"github.com/kvoxel/curvextract/lifted"
	"github.com/kvoxel/curvextract/search"
)

// projectPath turns a lifted node path (super-source, startEP, ...) into the
// voxel polyline: the first real edge-pair contributes all three of its
// points, every later edge-pair contributes only its new tail point, for a
// total of len(path)+1 voxels (the edge-pairs after the sentinel, plus two).
func projectPath(path []int64, shape grid.Shape, conn grid.Connectivity) []grid.Point {
	if len(path) < 2 {
		return nil
	}
	real := path[1:] // drop the super-source sentinel
	p1, p2, p3 := lifted.Points(real[0], shape, conn)
	pts := make([]grid.Point, 0, len(real)+2)
	pts = append(pts, p1, p2, p3)
	for _, id := range real[1:] {
		_, _, p4 := lifted.Points(id, shape, conn)
		pts = append(pts, p4)
	}
	return pts
}

// projectArrays implements visit-time and parent projection: every lifted node visited at time t contributes
// its tail points with visit time t, and "first visit wins": a point keeps
// the smallest visit time (and the corresponding predecessor) across every
// lifted node that touches it. A lifted node's p1 is only claimed as a root
// (self-parent, meaning "no predecessor") when that node is itself a member
// of starts: for every other node p1 is just the predecessor edge-pair's p2
// and is already claimed through that edge-pair's own p2/p3 projection.
func projectArrays(res search.Result, superSource int64, starts []int64, shape grid.Shape, conn grid.Connectivity, storeParents, storeDistances bool) (visitTime []int32, parent []int32, distances []float64) {
	numCells := shape.NumCells()
	startSet := make(map[int64]struct{}, len(starts))
	for _, s := range starts {
		startSet[s] = struct{}{}
	}

	visitTime = make([]int32, numCells)
	for i := range visitTime {
		visitTime[i] = -1
	}
	if storeParents {
		parent = make([]int32, numCells)
		for i := range parent {
			parent[i] = -1
		}
	}
	if storeDistances {
		distances = make([]float64, numCells)
		for i := range distances {
			distances[i] = math.Inf(1)
		}
	}

	claim := func(voxel, parentVoxel int, t int32, dist float64) {
		if visitTime[voxel] == -1 || t < visitTime[voxel] {
			visitTime[voxel] = t
			if storeParents {
				parent[voxel] = int32(parentVoxel)
			}
			if storeDistances {
				distances[voxel] = dist
			}
		}
	}

	for id := range res.VisitTime {
		node := int64(id)
		if node == superSource || res.VisitTime[id] == -1 {
			continue
		}
		t := int32(res.VisitTime[id])
		p1, p2, p3 := lifted.Points(node, shape, conn)
		i1, i2, i3 := shape.Sub2IndPoint(p1), shape.Sub2IndPoint(p2), shape.Sub2IndPoint(p3)

		dist := math.Inf(1)
		if storeDistances && res.Distances != nil {
			dist = res.Distances[id]
		}

		if _, isStart := startSet[node]; isStart {
			claim(i1, i1, t, dist)
		}
		claim(i2, i1, t, dist)
		claim(i3, i2, t, dist)
	}

	return visitTime, parent, distances
}
