package search

import "errors"

// Sentinel errors for the search package.
var (
	// ErrNoStarts indicates an empty start set.
	ErrNoStarts = errors.New("search: start set is empty")
	// ErrBadNodeCount indicates a non-positive node count.
	ErrBadNodeCount = errors.New("search: node count must be positive")
)

// SuccessorFn streams the outgoing edges of node through emit. Implementations
// must never invoke emit with a destination outside [0,n).
type SuccessorFn func(node int64, emit func(dest int64, cost float64))

// HeuristicFn is an optional admissible lower bound on the remaining cost
// from node to the end set. A nil HeuristicFn runs plain Dijkstra.
type HeuristicFn func(node int64) float64

// Options configures a single Run call.
type Options struct {
	// StoreVisited records, per settled node, the monotone visit order.
	// StoreParents forces this to true.
	StoreVisited bool

	// StoreParents records the predecessor of every settled node. Implies
	// StoreVisited.
	StoreParents bool

	// ComputeAllDistances disables the early-exit at the end set and
	// settles every reachable node, populating Result.Distances.
	ComputeAllDistances bool
}

// normalize applies the "StoreParents implies StoreVisited" rule.
func (o Options) normalize() Options {
	if o.StoreParents {
		o.StoreVisited = true
	}
	return o
}

// Result is the outcome of a single Run call.
type Result struct {
	// Cost is the cheapest start-to-end cost, or +Inf if no path exists.
	Cost float64

	// Path is the sequence of node ids from a start to an end node,
	// inclusive, or nil if no path exists.
	Path []int64

	// VisitTime[node] is the order in which node was settled, or -1 if
	// never settled. Populated when Options.StoreVisited is set.
	VisitTime []int64

	// Parent[node] is the predecessor of node on the shortest-path tree, or
	// -1 for a start node or a node never reached. A node reached but not
	// settled before the search stopped keeps its tentative predecessor.
	// Populated when Options.StoreParents is set.
	Parent []int64

	// Distances[node] is the settled distance to node, or +Inf if
	// unreached. Populated when Options.ComputeAllDistances is set.
	Distances []float64

	// Evaluations counts the number of distinct nodes settled. Every settled
	// node is expanded except an end node at which the search stops.
	Evaluations int64
}
