package index

import (
	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/symtab"
	"github.com/saturnix/eprover-core/internal/term"
)

// UnitIndex is the fast path supplemented from
// original_source/CLAUSES/ccl_unitclause_index.c (SPEC_FULL.md §C):
// positive unit equations get a dedicated flat index keyed by the head
// symbol of their LHS, consulted before the general subterm index since
// demodulation overwhelmingly rewrites by units.
type UnitIndex struct {
	byHead map[symtab.Code][]*clause.Clause
	trueC  *term.Term
}

// NewUnitIndex creates an empty index. trueConst is the bank's $true
// constant, needed to recognise non-equational literals (spec §3).
func NewUnitIndex(trueConst *term.Term) *UnitIndex {
	return &UnitIndex{byHead: make(map[symtab.Code][]*clause.Clause), trueC: trueConst}
}

func headCode(t *term.Term) (symtab.Code, bool) {
	if t.IsVar {
		return 0, false
	}
	return t.Code, true
}

// OnInsert implements clause.Indexer.
func (u *UnitIndex) OnInsert(c *clause.Clause) {
	if !c.IsUnitEquation(u.trueC) {
		return
	}
	l := c.Literals[0]
	if code, ok := headCode(l.LHS); ok {
		u.byHead[code] = append(u.byHead[code], c)
	}
}

// OnRemove implements clause.Indexer.
func (u *UnitIndex) OnRemove(c *clause.Clause) {
	if !c.IsUnitEquation(u.trueC) {
		return
	}
	l := c.Literals[0]
	code, ok := headCode(l.LHS)
	if !ok {
		return
	}
	list := u.byHead[code]
	for i, cc := range list {
		if cc == c {
			u.byHead[code] = append(list[:i], list[i+1:]...)
			break
		}
	}
}

// CandidatesForHead returns the demodulator clauses whose LHS head symbol
// is code. Unit equations whose LHS is a bare variable are not indexed and
// never returned.
func (u *UnitIndex) CandidatesForHead(code symtab.Code) []*clause.Clause {
	return u.byHead[code]
}
