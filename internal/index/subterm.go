package index

import (
	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/term"
)

// Occurrence is one position where a subterm appears in an indexed clause
// set (spec §4.5.3). Restricted marks a position that may only be
// rewritten under the stricter condition of spec §4.6 ("a subterm marked
// restricted may only be rewritten by demodulators whose left-hand side
// is strictly more general…").
type Occurrence struct {
	ClauseIdent string
	LiteralIdx  int
	Side        int
	Path        []int
	Restricted  bool
}

// SubtermIndex maps every non-variable subterm of every indexed literal to
// its occurrences (spec §4.5.3), backed by a FingerprintIndex so
// demodulation/superposition can retrieve unifiable/matchable subterms
// without a full linear scan.
type SubtermIndex struct {
	fp    *FingerprintIndex
	byIdent map[string][]Occurrence // for OnRemove and direct lookup
}

func NewSubtermIndex() *SubtermIndex {
	return &SubtermIndex{fp: NewFingerprintIndex(nil), byIdent: make(map[string][]Occurrence)}
}

func walkSubterms(t *term.Term, path []int, fn func(sub *term.Term, path []int)) {
	if t.IsVar {
		return
	}
	fn(t, path)
	for i, a := range t.Args {
		walkSubterms(a, append(append([]int(nil), path...), i), fn)
	}
}

// OnInsert implements clause.Indexer: indexes every non-variable subterm
// of every literal of c.
func (si *SubtermIndex) OnInsert(c *clause.Clause) {
	for li, l := range c.Literals {
		sides := [2]*term.Term{l.LHS, l.RHS}
		for side, t := range sides {
			walkSubterms(t, nil, func(sub *term.Term, path []int) {
				occ := Occurrence{ClauseIdent: c.Ident, LiteralIdx: li, Side: side, Path: path}
				si.byIdent[c.Ident] = append(si.byIdent[c.Ident], occ)
				si.fp.Insert(Payload{ClauseIdent: c.Ident, LiteralIdx: li, Side: side, Path: path, Term: sub})
			})
		}
	}
}

// OnRemove implements clause.Indexer.
func (si *SubtermIndex) OnRemove(c *clause.Clause) {
	delete(si.byIdent, c.Ident)
	for li, l := range c.Literals {
		sides := [2]*term.Term{l.LHS, l.RHS}
		for side, t := range sides {
			walkSubterms(t, nil, func(sub *term.Term, _ []int) {
				si.fp.Remove(sub, func(p Payload) bool {
					return p.ClauseIdent == c.Ident && p.LiteralIdx == li && p.Side == side
				})
			})
		}
	}
}

// FindUnifiableSubterms visits every occurrence whose subterm is not ruled
// out as unifiable with query.
func (si *SubtermIndex) FindUnifiableSubterms(query *term.Term, visit func(Payload)) {
	si.fp.FindUnifiable(query, visit)
}

// FindMatchableSubterms visits every occurrence whose subterm query (as
// pattern) is not ruled out as matching.
func (si *SubtermIndex) FindMatchableSubterms(query *term.Term, visit func(Payload)) {
	si.fp.FindMatchable(query, visit)
}
