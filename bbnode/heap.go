package bbnode

import "container/heap"

// OpenQueue is the B&B engine's open-node priority queue: a min-heap
// ordered by descending ParentLPObjective (selection strategy BEST_BOUND,
// spec §4.5), with ascending id as the tiebreak. Negating the comparison
// gives "largest objective first" out of container/heap's min-heap shape,
// mirroring the teacher's dijkstra.nodePQ (state/heap.go LabelHeap follows
// the same pattern for pricing labels).
type OpenQueue struct {
	nodes []*BBNode
}

// NewOpenQueue returns an empty OpenQueue.
func NewOpenQueue() *OpenQueue {
	q := &OpenQueue{}
	heap.Init(q)

	return q
}

// Len implements heap.Interface.
func (q *OpenQueue) Len() int { return len(q.nodes) }

// Less implements heap.Interface: higher ParentLPObjective pops first;
// ties broken by smaller id.
func (q *OpenQueue) Less(i, j int) bool {
	a, b := q.nodes[i], q.nodes[j]
	if a.ParentLPObjective != b.ParentLPObjective {
		return a.ParentLPObjective > b.ParentLPObjective
	}

	return a.ID < b.ID
}

// Swap implements heap.Interface.
func (q *OpenQueue) Swap(i, j int) { q.nodes[i], q.nodes[j] = q.nodes[j], q.nodes[i] }

// Push implements heap.Interface. Use PushNode, not this method, from
// outside the package.
func (q *OpenQueue) Push(x interface{}) { q.nodes = append(q.nodes, x.(*BBNode)) }

// Pop implements heap.Interface. Use PopNode, not this method, from
// outside the package.
func (q *OpenQueue) Pop() interface{} {
	n := len(q.nodes)
	x := q.nodes[n-1]
	q.nodes = q.nodes[:n-1]

	return x
}

// PushNode inserts a node into the open queue.
func (q *OpenQueue) PushNode(n *BBNode) { heap.Push(q, n) }

// PopNode removes and returns the best-bound node.
func (q *OpenQueue) PopNode() *BBNode { return heap.Pop(q).(*BBNode) }

// Empty reports whether the queue has no pending nodes.
func (q *OpenQueue) Empty() bool { return len(q.nodes) == 0 }
