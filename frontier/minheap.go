package frontier

import "container/heap"

// heapEntry is one member of a MinHeap.
type heapEntry[T comparable] struct {
	item  T
	key   int // cached key, refreshed by Update
	seq   int // insertion sequence, the tie-breaker
	index int // position in the heap slice
}

// entryPQ is a min-heap of *heapEntry ordered by (key, seq).
type entryPQ[T comparable] []*heapEntry[T]

// Len returns the number of entries in the heap.
func (pq entryPQ[T]) Len() int { return len(pq) }

// Less orders by key, then by insertion sequence.
func (pq entryPQ[T]) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two entries and keeps their indices current.
func (pq entryPQ[T]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push adds x, which must be a *heapEntry[T]. Called by heap.Push.
func (pq *entryPQ[T]) Push(x any) {
	e := x.(*heapEntry[T])
	e.index = len(*pq)
	*pq = append(*pq, e)
}

// Pop removes the last entry. Called by heap.Pop.
func (pq *entryPQ[T]) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*pq = old[:n-1]

	return e
}

// MinHeap is the heap-backed Priority. Unlike the lazy decrease-key heap in a
// plain Dijkstra, every member has exactly one entry and Update repositions it,
// which keeps Contains and Remove exact.
type MinHeap[T comparable] struct {
	key    Key[T]
	pq     entryPQ[T]
	byItem map[T]*heapEntry[T]
	seq    int
}

// NewMinHeap returns an empty MinHeap ordered by key.
func NewMinHeap[T comparable](key Key[T]) *MinHeap[T] {
	return &MinHeap[T]{key: key, byItem: make(map[T]*heapEntry[T])}
}

// InsertAll pushes items in order, skipping members already present.
// Complexity: O(k log n) for k items.
func (h *MinHeap[T]) InsertAll(items []T) {
	for _, it := range items {
		if _, ok := h.byItem[it]; ok {
			continue
		}
		e := &heapEntry[T]{item: it, key: h.key(it), seq: h.seq}
		h.seq++
		h.byItem[it] = e
		heap.Push(&h.pq, e)
	}
}

// ExtractMin removes and returns the member with the smallest (key, seq).
func (h *MinHeap[T]) ExtractMin() (item T, key int, ok bool) {
	if h.pq.Len() == 0 {
		return item, 0, false
	}
	e := heap.Pop(&h.pq).(*heapEntry[T])
	delete(h.byItem, e.item)

	return e.item, e.key, true
}

// Update re-reads the key of item and restores heap order.
func (h *MinHeap[T]) Update(item T) {
	e, ok := h.byItem[item]
	if !ok {
		return
	}
	e.key = h.key(item)
	heap.Fix(&h.pq, e.index)
}

// Remove drops item if present.
func (h *MinHeap[T]) Remove(item T) {
	e, ok := h.byItem[item]
	if !ok {
		return
	}
	delete(h.byItem, item)
	heap.Remove(&h.pq, e.index)
}

// Contains reports membership.
func (h *MinHeap[T]) Contains(item T) bool {
	_, ok := h.byItem[item]
	return ok
}

// IsEmpty reports whether no members remain.
func (h *MinHeap[T]) IsEmpty() bool { return h.pq.Len() == 0 }

// Len returns the number of members.
func (h *MinHeap[T]) Len() int { return h.pq.Len() }
