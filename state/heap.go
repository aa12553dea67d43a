package state

import "container/heap"

// LabelHeap is a min-heap of arena indices ordered by State.Ratio()
// (cost/length, spec §3), implementing container/heap.Interface exactly
// as the teacher's dijkstra.nodePQ does for its own (vertex, distance)
// pairs — here the payload is an arena index rather than a vertex ID,
// since the pricing engine's unprocessed heaps (UF, UB, spec §4.1.1)
// address States by arena slot, not by pointer.
type LabelHeap struct {
	arena   *Arena
	indices []int
}

// NewLabelHeap returns an empty LabelHeap backed by arena.
func NewLabelHeap(arena *Arena) *LabelHeap {
	h := &LabelHeap{arena: arena}
	heap.Init(h)

	return h
}

// Len implements heap.Interface.
func (h *LabelHeap) Len() int { return len(h.indices) }

// Less implements heap.Interface: smaller cost/length pops first.
func (h *LabelHeap) Less(i, j int) bool {
	return h.arena.Get(h.indices[i]).Ratio() < h.arena.Get(h.indices[j]).Ratio()
}

// Swap implements heap.Interface.
func (h *LabelHeap) Swap(i, j int) { h.indices[i], h.indices[j] = h.indices[j], h.indices[i] }

// Push implements heap.Interface. Use PushIndex, not this method, from
// outside the package.
func (h *LabelHeap) Push(x interface{}) { h.indices = append(h.indices, x.(int)) }

// Pop implements heap.Interface. Use PopIndex, not this method, from
// outside the package.
func (h *LabelHeap) Pop() interface{} {
	n := len(h.indices)
	x := h.indices[n-1]
	h.indices = h.indices[:n-1]

	return x
}

// PushIndex pushes an arena index onto the heap.
func (h *LabelHeap) PushIndex(idx int) { heap.Push(h, idx) }

// PopIndex pops the arena index with the smallest Ratio().
func (h *LabelHeap) PopIndex() int { return heap.Pop(h).(int) }

// Empty reports whether the heap has no pending labels.
func (h *LabelHeap) Empty() bool { return len(h.indices) == 0 }
