package heuristic

import "github.com/saturnix/eprover-core/internal/clause"

// queue is one priority queue of the HCB (spec §4.8): a min-heap over a
// clause's evalIdx-th evaluation entry, ordered by (priority, weight).
// It implements container/heap's Interface; container/heap is stdlib
// because no pack library addresses binary heaps and it is the
// idiomatic Go mechanism for exactly this (see DESIGN.md).
type queue struct {
	evalIdx int
	items   []*clause.Clause
}

func (q *queue) Len() int { return len(q.items) }

func (q *queue) Less(i, j int) bool {
	a, b := q.items[i].Eval[q.evalIdx], q.items[j].Eval[q.evalIdx]
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.Weight < b.Weight
}

func (q *queue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *queue) Push(x any) { q.items = append(q.items, x.(*clause.Clause)) }

func (q *queue) Pop() any {
	old := q.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	q.items = old[:n-1]
	return it
}
