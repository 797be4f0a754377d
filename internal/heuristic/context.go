// Package heuristic implements the heuristic control block (HCB, spec
// §4.8): a cyclic schedule of priority queues, each driven by a weight
// function, that together decide which clause the given-clause loop
// processes next.
//
// Grounded on the teacher's internal/semantic analyzer scoring passes
// (which rank candidate overload resolutions by a small set of weighted
// criteria) — generalized here from a one-shot scoring pass to a
// persistent, incrementally-updated multi-queue schedule.
package heuristic

import "github.com/saturnix/eprover-core/internal/symtab"

// Context carries the shared, cross-clause state weight functions need:
// the conjecture's symbol set (for conjecture-symbol weight) and a
// reproducible pseudo-random stream (for the randomised weight function).
// It also tracks a monotonic counter for FIFO-style weights.
type Context struct {
	ConjectureSymbols map[symtab.Code]bool

	fifoCounter int64
	rngState    uint64
}

// NewContext creates a heuristic context. seed drives the reproducible
// randomised weight function (spec §4.8 "user-supplied seeds"); zero
// conjectureSymbols is fine (ConjectureSymbolWeight then never boosts
// anything).
func NewContext(conjectureSymbols map[symtab.Code]bool, seed uint64) *Context {
	if conjectureSymbols == nil {
		conjectureSymbols = map[symtab.Code]bool{}
	}
	if seed == 0 {
		seed = 0x9e3779b97f4a7c15
	}
	return &Context{ConjectureSymbols: conjectureSymbols, rngState: seed}
}

// nextFIFO returns a strictly increasing counter, giving FIFOWeight its
// insertion-order semantics.
func (c *Context) nextFIFO() int64 {
	c.fifoCounter++
	return c.fifoCounter
}

// nextRandom advances a xorshift64* generator, giving RandomizedWeight a
// reproducible-given-seed pseudo-random stream (spec §4.8).
func (c *Context) nextRandom() uint64 {
	x := c.rngState
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	c.rngState = x
	return x * 2685821657736338717
}
