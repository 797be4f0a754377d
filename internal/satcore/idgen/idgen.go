// Package idgen generates fresh, stable identifiers for clauses and term
// bank artifacts (spec §3 "unique ident").
//
// Grounded on the teacher's dependency graph: github.com/segmentio/ksuid
// is an indirect teacher dependency (pulled in via the LSP toolchain);
// here it mints one run tag per Generator rather than one ID per call.
// Per-ident uniqueness and ordering instead come from a plain monotonic
// counter (spec §9's "fresh clause identifier... process-wide counter"),
// since spec §5 isolates each search strategy in its own address space
// and the core never merges proof segments across them — within a run,
// idents only need to be stable and orderable, which a random K-sortable
// payload is not (it is sortable only to second granularity). The ksuid
// tag still lets idents minted by distinct Generators (e.g. one per OS
// process) be told apart, should they ever need to sit side by side.
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/segmentio/ksuid"
)

// Generator issues fresh identifiers, all sharing one run tag and an
// increasing counter. Construct with NewGenerator; the zero value has no
// tag and will panic on first use.
type Generator struct {
	tag     string
	counter *atomic.Uint64
}

// NewGenerator creates a Generator with a fresh run tag and a counter
// starting at zero.
func NewGenerator() Generator {
	return Generator{tag: ksuid.New().String(), counter: new(atomic.Uint64)}
}

// Next returns a fresh identifier: this Generator's run tag followed by a
// zero-padded monotonic counter, so within one run plain string
// comparison of idents agrees with creation order (relied on by
// internal/loop's axiom tie-break and internal/proof's sorted axiom
// lists).
func (g Generator) Next() string {
	n := g.counter.Add(1)
	return fmt.Sprintf("%s-%012d", g.tag, n)
}
