// Package heuristic computes the admissible lower bound h_voxel used to
// guide the lifted-graph A* search: a plain Dijkstra over the
// unlifted voxel graph (data+length cost only, no curvature/torsion), run
// from the true end set so that h_voxel[v] is the cheapest unlifted cost
// from v to the end set, a valid lower bound on the remaining lifted cost
// from any edge-pair whose tail is v, since dropping curvature and torsion
// (both nonnegative, invariant) only ever reduces cost, and since
// the data/length cost of an edge is symmetric, the distance computed with
// a single Dijkstra sourced at the end set equals, for every v, the
// forward distance from v to the end set.
//
// This single-source-from-the-end-set run is what the original
// implementation calls "switching the start and end sets when calculating
// the lower bound" (original_source's edgepair_segmentaion.cpp /
// node_segmentation.cpp): instead of one Dijkstra per voxel, one Dijkstra
// sourced at the opposite set gives every voxel's bound at once.
//
// Realized here as a second, independent call into search.Run over a
// dedicated voxel-point successor function.
package heuristic
