// Package grid defines the index algebra shared by every other package in
// this module: a fixed (M,N,O) voxel shape, the bidirectional map between a
// linear index and (x,y,z) coordinates, connectivity offsets, voxel points,
// and the mesh-map tagging scheme (free / start / end cells).
//
// x is the fastest-moving axis: Sub2Ind(x,y,z) = x + M*y + M*N*z.
//
// No other index arithmetic is exposed from this package; successor
// generation and result projection in other packages build on exactly these
// primitives.
package grid
