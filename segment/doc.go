// Package segment is the driver: it assembles the lifted start/end sets
// from a mesh map and extra points, builds the cost
// functors and regularization cache, runs the label-setting search over
// the lifted graph (optionally A*-guided by package heuristic), and
// projects the result back onto the voxel grid.
//
// Grounded end to end on original_source's edgepair_segmentaion.cpp and
// node_segmentation.cpp: the mesh-map scan that builds the lifted sets, the
// super-source wiring into search.Run, and the "first visit wins" conflict
// resolution when projecting the lifted visit-time grid down onto voxels.
package segment
