// Package search implements a label-setting shortest-path engine: a
// best-first search over nonnegative edge weights, optionally guided
// by an admissible lower-bound heuristic (A*), that reads the graph only
// through a successor callback: it has no notion of "lifted" vs. "unlifted"
// nodes, so the same engine drives both the lifted-graph search in package
// segment and the unlifted-graph heuristic precomputation in package
// heuristic.
//
// Ties among equal-priority frontier entries are broken FIFO, by the order
// entries were pushed: Go's container/heap gives no such guarantee on its
// own, so every push is stamped with a monotonically increasing sequence
// number used as the heap's secondary sort key.
//
// Grounded on dijkstra/dijkstra.go's container/heap + functional-options
// shape, generalized from string-keyed core.Graph vertices to int64 node
// ids supplied by an arbitrary successor oracle.
package search
