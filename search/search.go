package search

import (
	"container/heap"
	"math"
)

// Run executes the label-setting search described in package doc over n
// nodes, from starts to ends, using successors to expand a node's outgoing
// edges and, if h is non-nil, h as an admissible lower bound to guide the
// search (A*). h may be nil for plain Dijkstra.
//
// Run settles nodes in order of nondecreasing tentative distance and stops
// the first time it settles a node in ends, unless opts.ComputeAllDistances
// is set, in which case it exhausts every node reachable from starts.
func Run(n int64, starts, ends []int64, successors SuccessorFn, h HeuristicFn, opts Options) (Result, error) {
	if n <= 0 {
		return Result{}, ErrBadNodeCount
	}
	if len(starts) == 0 {
		return Result{}, ErrNoStarts
	}
	opts = opts.normalize()

	endSet := make(map[int64]struct{}, len(ends))
	for _, e := range ends {
		endSet[e] = struct{}{}
	}

	dist := make([]float64, n)
	settled := make([]bool, n)
	parent := make([]int64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		parent[i] = -1
	}

	var visitTime []int64
	if opts.StoreVisited {
		visitTime = make([]int64, n)
		for i := range visitTime {
			visitTime[i] = -1
		}
	}

	priority := func(node int64, d float64) float64 {
		if h == nil {
			return d
		}
		return d + h(node)
	}

	pq := make(frontier, 0, len(starts))
	heap.Init(&pq)
	var seq int64
	for _, s := range starts {
		if s < 0 || s >= n {
			continue
		}
		if dist[s] > 0 {
			dist[s] = 0
		}
		heap.Push(&pq, &frontierItem{node: s, priority: priority(s, 0), seq: seq})
		seq++
	}

	var (
		found       bool
		foundNode   int64 = -1
		evaluations int64
		clock       int64
	)

	for pq.Len() > 0 {
		top := heap.Pop(&pq).(*frontierItem)
		node := top.node
		if settled[node] {
			continue
		}
		settled[node] = true
		evaluations++
		if opts.StoreVisited {
			visitTime[node] = clock
			clock++
		}

		if _, isEnd := endSet[node]; isEnd && !opts.ComputeAllDistances {
			found = true
			foundNode = node
			break
		}

		d := dist[node]
		successors(node, func(dest int64, cost float64) {
			if dest < 0 || dest >= n || cost < 0 {
				return
			}
			if settled[dest] {
				return
			}
			alt := d + cost
			if alt < dist[dest] {
				dist[dest] = alt
				parent[dest] = node
				heap.Push(&pq, &frontierItem{node: dest, priority: priority(dest, alt), seq: seq})
				seq++
			}
		})
	}

	result := Result{Cost: math.Inf(1), Evaluations: evaluations}
	if opts.StoreVisited {
		result.VisitTime = visitTime
	}
	if opts.StoreParents {
		result.Parent = parent
	}
	if opts.ComputeAllDistances {
		result.Distances = dist
		for _, e := range ends {
			if e >= 0 && e < n && dist[e] < result.Cost {
				result.Cost = dist[e]
				foundNode = e
				found = dist[e] < math.Inf(1)
			}
		}
	}

	if !found {
		return result, nil
	}
	if !opts.ComputeAllDistances {
		result.Cost = dist[foundNode]
	}
	result.Path = reconstruct(parent, foundNode)
	return result, nil
}

// reconstruct walks parent pointers from node back to a start (parent==-1)
// and returns the path in start-to-node order.
func reconstruct(parent []int64, node int64) []int64 {
	var rev []int64
	for node != -1 {
		rev = append(rev, node)
		node = parent[node]
	}
	path := make([]int64, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}
	return path
}
