package index

import (
	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/term"
)

// OverlapIndex distinguishes from-terms (oriented equation LHS of positive
// equational literals, candidate sources for superposition) and
// into-terms (every non-variable subterm of every literal, candidate
// targets) for paramodulation (spec §4.4, §4.5.3).
type OverlapIndex struct {
	from *FingerprintIndex // positive equational literal sides
	into *FingerprintIndex // every non-variable subterm
}

func NewOverlapIndex() *OverlapIndex {
	return &OverlapIndex{from: NewFingerprintIndex(nil), into: NewFingerprintIndex(nil)}
}

// OnInsert implements clause.Indexer.
func (oi *OverlapIndex) OnInsert(c *clause.Clause) {
	for li, l := range c.Literals {
		sides := [2]*term.Term{l.LHS, l.RHS}
		for side, t := range sides {
			walkSubterms(t, nil, func(sub *term.Term, path []int) {
				oi.into.Insert(Payload{ClauseIdent: c.Ident, LiteralIdx: li, Side: side, Path: path, Term: sub})
			})
		}
		if l.Positive {
			// Both sides are indexed as "from" candidates since orientation
			// may be unknown until the active ordering compares the
			// (possibly still-unground) instance; superposition tries both
			// orientations per spec §4.7 "both orientations of unoriented
			// equalities are tried".
			oi.from.Insert(Payload{ClauseIdent: c.Ident, LiteralIdx: li, Side: 0, Term: l.LHS})
			oi.from.Insert(Payload{ClauseIdent: c.Ident, LiteralIdx: li, Side: 1, Term: l.RHS})
		}
	}
}

// OnRemove implements clause.Indexer.
func (oi *OverlapIndex) OnRemove(c *clause.Clause) {
	for li, l := range c.Literals {
		sides := [2]*term.Term{l.LHS, l.RHS}
		for side, t := range sides {
			walkSubterms(t, nil, func(sub *term.Term, _ []int) {
				oi.into.Remove(sub, func(p Payload) bool {
					return p.ClauseIdent == c.Ident && p.LiteralIdx == li && p.Side == side
				})
			})
		}
		if l.Positive {
			oi.from.Remove(l.LHS, func(p Payload) bool {
				return p.ClauseIdent == c.Ident && p.LiteralIdx == li && p.Side == 0
			})
			oi.from.Remove(l.RHS, func(p Payload) bool {
				return p.ClauseIdent == c.Ident && p.LiteralIdx == li && p.Side == 1
			})
		}
	}
}

// FindFromCandidates visits payloads of positive-equation sides unifiable
// with query, i.e. candidate "s = t" equations to paramodulate FROM.
func (oi *OverlapIndex) FindFromCandidates(query *term.Term, visit func(Payload)) {
	oi.from.FindUnifiable(query, visit)
}

// FindIntoCandidates visits payloads of subterms unifiable with query,
// i.e. candidate positions to paramodulate INTO.
func (oi *OverlapIndex) FindIntoCandidates(query *term.Term, visit func(Payload)) {
	oi.into.FindUnifiable(query, visit)
}
