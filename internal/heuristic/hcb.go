package heuristic

import (
	"container/heap"

	"github.com/saturnix/eprover-core/internal/clause"
)

// QueueSpec names one (weight function, steps) entry of the cyclic
// schedule (spec §4.8 "[(queue_1, steps_1), (queue_2, steps_2), …]").
type QueueSpec struct {
	Name   string
	Weight WeightFunc
	Steps  int
}

// HCB is the heuristic control block: a cyclic schedule of priority
// queues (spec §4.8). Every inserted clause is pushed onto every queue
// with its own evaluation entry; Select dispatches to the current
// queue for Steps consecutive calls before advancing, giving strict
// fairness as long as every weight function is finite and bounded and
// every queue is eventually visited.
type HCB struct {
	ctx     *Context
	queues  []*queue
	weights []WeightFunc
	steps   []int

	cursor    int
	stepsLeft int
	// removed lazily drops stale heap entries: a clause popped from one
	// queue is logically gone from every other queue too, but removing it
	// from N-1 heaps eagerly would cost O(N log n) per selection; instead
	// Select discards anything already marked removed when it resurfaces.
	removed map[string]bool
}

// NewHCB builds an HCB from specs, in schedule order. Panics if specs is
// empty: a schedule with no queues can never select anything, which is
// always a caller configuration bug, not a runtime condition to handle.
func NewHCB(ctx *Context, specs []QueueSpec) *HCB {
	if len(specs) == 0 {
		panic("heuristic: NewHCB requires at least one queue")
	}
	h := &HCB{
		ctx:     ctx,
		queues:  make([]*queue, len(specs)),
		weights: make([]WeightFunc, len(specs)),
		steps:   make([]int, len(specs)),
		removed: make(map[string]bool),
	}
	for i, s := range specs {
		h.queues[i] = &queue{evalIdx: i}
		heap.Init(h.queues[i])
		h.weights[i] = s.Weight
		h.steps[i] = s.Steps
	}
	h.stepsLeft = h.steps[0]
	return h
}

// priorityOf gives conjecture-descendant clauses
// priority 0 (selected first within equal weight) and everything else
// priority 1, a common refinement-style bias toward goal-directed search.
func priorityOf(c *clause.Clause) int {
	if c.Is(clause.FlagConjectureDescendant) {
		return 0
	}
	return 1
}

// Insert evaluates c against every queue's weight function and pushes it
// onto all of them (spec §3 "evaluation vector produced by the
// heuristic" — one entry per queue).
func (h *HCB) Insert(c *clause.Clause) {
	c.Eval = make([]clause.EvalEntry, len(h.queues))
	p := priorityOf(c)
	for i, wf := range h.weights {
		c.Eval[i] = clause.EvalEntry{Priority: p, Weight: wf(h.ctx, c)}
	}
	for _, q := range h.queues {
		heap.Push(q, c)
	}
	delete(h.removed, c.Ident)
}

// Select returns the next clause per the cyclic schedule, or false if
// every queue is exhausted (spec §4.9 step 1 "Select G from unprocessed
// via the HCB").
func (h *HCB) Select() (*clause.Clause, bool) {
	for tries := 0; tries <= len(h.queues); tries++ {
		q := h.queues[h.cursor]
		for q.Len() > 0 {
			c := heap.Pop(q).(*clause.Clause)
			if h.removed[c.Ident] {
				continue
			}
			h.removed[c.Ident] = true
			h.stepsLeft--
			if h.stepsLeft <= 0 {
				h.advance()
			}
			return c, true
		}
		h.advance()
	}
	return nil, false
}

func (h *HCB) advance() {
	h.cursor = (h.cursor + 1) % len(h.queues)
	h.stepsLeft = h.steps[h.cursor]
}

// Remove marks c as no longer a selection candidate without requiring it
// to have been popped first (spec §4.9 step 4 "back-simplify... remove
// them from processed"): used when a clause in unprocessed is discarded
// by forward simplification before ever being selected.
func (h *HCB) Remove(c *clause.Clause) {
	h.removed[c.Ident] = true
}

// Pending reports how many distinct not-yet-selected clauses remain
// across the schedule: the distinct idents still held by any queue that
// are not marked removed (stale entries stay in a queue until popped).
func (h *HCB) Pending() int {
	seen := make(map[string]bool)
	for _, q := range h.queues {
		for _, c := range q.items {
			if !h.removed[c.Ident] {
				seen[c.Ident] = true
			}
		}
	}
	return len(seen)
}
