package astar

import "container/heap"

// frontierItem is one queued state together with the cheapest route known to
// it so far.
type frontierItem[StateType comparable] struct {
	State     StateType
	Cost      uint64 // accumulated cost from the start
	Estimated uint64 // Cost plus the state's heuristic
	Route     []StateType

	indexInHeap int
}

// frontier is a min-priority queue over estimated total cost holding at most
// one item per distinct state: always the cheapest one seen so far.
type frontier[StateType comparable] struct {
	items   itemHeap[StateType]
	byState map[StateType]*frontierItem[StateType]
}

func newFrontier[StateType comparable]() *frontier[StateType] {
	return &frontier[StateType]{
		byState: make(map[StateType]*frontierItem[StateType]),
	}
}

// pushOrImprove inserts item, unless an item for the same state is already
// queued at an equal or lower estimated total cost. A strictly cheaper item
// replaces the incumbent in place (decrease-key) and takes over its slot,
// route included.
func (f *frontier[StateType]) pushOrImprove(item *frontierItem[StateType]) {
	if existing, queued := f.byState[item.State]; queued {
		if item.Estimated >= existing.Estimated {
			return
		}
		existing.Cost = item.Cost
		existing.Estimated = item.Estimated
		existing.Route = item.Route
		heap.Fix(&f.items, existing.indexInHeap)
		return
	}

	heap.Push(&f.items, item)
	f.byState[item.State] = item
}

// popMin removes and returns the item with the smallest estimated total
// cost. The second return is false when the frontier is empty.
func (f *frontier[StateType]) popMin() (*frontierItem[StateType], bool) {
	if f.items.Len() == 0 {
		return nil, false
	}
	item := heap.Pop(&f.items).(*frontierItem[StateType])
	delete(f.byState, item.State)
	return item, true
}

func (f *frontier[StateType]) len() int { return f.items.Len() }

// itemHeap implements heap.Interface ordered by estimated total cost
// ascending. Ties sift in container/heap's internal order.
type itemHeap[StateType comparable] []*frontierItem[StateType]

func (h itemHeap[StateType]) Len() int { return len(h) }

func (h itemHeap[StateType]) Less(i, j int) bool {
	return h[i].Estimated < h[j].Estimated
}

func (h itemHeap[StateType]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].indexInHeap = i
	h[j].indexInHeap = j
}

func (h *itemHeap[StateType]) Push(x any) {
	item := x.(*frontierItem[StateType])
	item.indexInHeap = len(*h)
	*h = append(*h, item)
}

func (h *itemHeap[StateType]) Pop() any {
	oldHeap := *h
	n := len(oldHeap)
	item := oldHeap[n-1]
	oldHeap[n-1] = nil
	*h = oldHeap[:n-1]
	return item
}
