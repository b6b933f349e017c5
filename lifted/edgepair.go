// Package lifted implements the lifted graph G*: nodes are edge-pairs
// (three-point curve segments) plus a single super-source, and edges
// connect an edge-pair to its valid four-point continuations.
//
// The encoding root*K^2 + e1*K + e2 is injective over valid (root,e1,e2)
// triples; Encode/Decode are exact inverses.
package lifted

import "github.com/kvoxel/curvextract/grid"

// EdgePair is the decoded form of a lifted node: a three-point segment
// root -> root+C[e1] -> root+C[e1]+C[e2].
type EdgePair struct {
	Root, E1, E2 int
}

// Encode packs (root,e1,e2) into the injective lifted-node id root*K^2 +
// e1*K + e2.
func Encode(root, e1, e2, k int) int64 {
	kk := int64(k)
	return int64(root)*kk*kk + int64(e1)*kk + int64(e2)
}

// Decode is the exact inverse of Encode.
func Decode(id int64, k int) (root, e1, e2 int) {
	kk := int64(k) * int64(k)
	root = int(id / kk)
	rem := id % kk
	e1 = int(rem / int64(k))
	e2 = int(rem % int64(k))
	return
}

// Points decodes a lifted node id into its three voxel points.
func Points(id int64, shape grid.Shape, conn grid.Connectivity) (p1, p2, p3 grid.Point) {
	root, e1, e2 := Decode(id, conn.K())
	p1 = shape.Ind2SubPoint(root)
	p2 = p1.Add(conn[e1])
	p3 = p2.Add(conn[e2])
	return
}

// NumEdgePairs returns the total count of valid edge-pair ids for a grid of
// the given shape and connectivity (K = conn.K()): M*N*O*K^2. This doubles
// as the super-source's sentinel id.
func NumEdgePairs(shape grid.Shape, conn grid.Connectivity) int64 {
	k := int64(conn.K())
	return int64(shape.NumCells()) * k * k
}
