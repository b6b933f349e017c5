package search

// frontierItem is a single entry on the priority queue: a candidate node at
// a tentative priority (distance, or distance+heuristic under A*), stamped
// with the order it was pushed so ties resolve FIFO.
type frontierItem struct {
	node     int64
	priority float64
	seq      int64
	index    int
}

// frontier is a container/heap.Interface over frontierItem, ordered by
// priority and, on ties, by seq ascending (earlier pushes win).
type frontier []*frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}

func (f *frontier) Push(x any) {
	item := x.(*frontierItem)
	item.index = len(*f)
	*f = append(*f, item)
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*f = old[:n-1]
	return item
}
