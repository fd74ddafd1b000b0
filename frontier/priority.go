package frontier

import "container/heap"

// entry is one heap slot: the stored item, its priority and the insertion
// sequence number used to break ties.
type entry[T any] struct {
	item     T
	priority float64
	seq      uint64
}

// entryHeap is a min-heap of entries ordered by (priority, seq).
type entryHeap[T any] []entry[T]

// Len returns the number of entries in the heap.
func (h entryHeap[T]) Len() int { return len(h) }

// Less orders by priority, then by insertion order.
func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

// Swap swaps two entries.
func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be an entry[T].
func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

// Pop is called by heap.Pop and removes the last slot.
func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = entry[T]{}
	*h = old[:n-1]

	return e
}

// PriorityQueue yields the item with the minimum priority first.
// Equal priorities are served in insertion order.
type PriorityQueue[T any] struct {
	h   entryHeap[T]
	seq uint64
}

// NewPriorityQueue returns an empty PriorityQueue.
func NewPriorityQueue[T any]() *PriorityQueue[T] {
	return &PriorityQueue[T]{}
}

// Push inserts item with the given priority.
func (pq *PriorityQueue[T]) Push(item T, priority float64) {
	heap.Push(&pq.h, entry[T]{item: item, priority: priority, seq: pq.seq})
	pq.seq++
}

// Pop removes and returns the item with the smallest priority.
func (pq *PriorityQueue[T]) Pop() (T, bool) {
	item, _, ok := pq.PopWithPriority()
	return item, ok
}

// PopWithPriority is Pop that also reports the priority the item was stored with.
func (pq *PriorityQueue[T]) PopWithPriority() (T, float64, bool) {
	if len(pq.h) == 0 {
		var zero T
		return zero, 0, false
	}
	e := heap.Pop(&pq.h).(entry[T])

	return e.item, e.priority, true
}

// Peek returns the next item without removing it.
func (pq *PriorityQueue[T]) Peek() (T, float64, bool) {
	if len(pq.h) == 0 {
		var zero T
		return zero, 0, false
	}
	return pq.h[0].item, pq.h[0].priority, true
}

// Len returns the number of stored items.
func (pq *PriorityQueue[T]) Len() int { return len(pq.h) }

// IsEmpty reports whether the queue holds no items.
func (pq *PriorityQueue[T]) IsEmpty() bool { return len(pq.h) == 0 }

// PriorityFunc is a PriorityQueue whose priorities come from fn.
// It implements Container, so the engine can drive it like a Stack or Queue.
type PriorityFunc[T any] struct {
	pq *PriorityQueue[T]
	fn PriorityFn[T]
}

// NewPriorityFunc returns an empty PriorityFunc ordered by fn.
// A nil fn gives every item priority 0, which degrades to FIFO order.
func NewPriorityFunc[T any](fn PriorityFn[T]) *PriorityFunc[T] {
	if fn == nil {
		fn = func(T) float64 { return 0 }
	}
	return &PriorityFunc[T]{pq: NewPriorityQueue[T](), fn: fn}
}

// Push inserts item with priority fn(item).
func (p *PriorityFunc[T]) Push(item T) {
	p.pq.Push(item, p.fn(item))
}

// Pop removes and returns the item with the smallest priority.
func (p *PriorityFunc[T]) Pop() (T, bool) { return p.pq.Pop() }

// Len returns the number of stored items.
func (p *PriorityFunc[T]) Len() int { return p.pq.Len() }

// IsEmpty reports whether the container holds no items.
func (p *PriorityFunc[T]) IsEmpty() bool { return p.pq.IsEmpty() }
