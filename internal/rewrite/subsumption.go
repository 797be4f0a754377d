package rewrite

import (
	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/subst"
	"github.com/saturnix/eprover-core/internal/term"
)

// Subsumes reports whether c subsumes d (spec §4.6): there exists a
// substitution sigma such that the literals of c-sigma, sign and all, map
// to pairwise distinct literals of d (multiset containment). c is renamed
// apart first since both clauses'
// terms live in the same shared bank and could otherwise share a variable
// by coincidence of index.
func Subsumes(bank *term.Bank, c, d *clause.Clause) (bool, *subst.Subst) {
	renamed := renameLiterals(bank, c.Literals)
	sub := subst.New()
	if subsumeFrom(sub, renamed, 0, d.Literals, make([]bool, len(d.Literals))) {
		return true, sub
	}
	return false, nil
}

func renameLiterals(bank *term.Bank, lits []*clause.Literal) []*clause.Literal {
	sides := make([]*term.Term, 0, len(lits)*2)
	for _, l := range lits {
		sides = append(sides, l.LHS, l.RHS)
	}
	ren := subst.Rename(bank, sides...)
	out := make([]*clause.Literal, len(lits))
	for i, l := range lits {
		out[i] = &clause.Literal{
			LHS:      ren.Apply(bank, l.LHS),
			RHS:      ren.Apply(bank, l.RHS),
			Positive: l.Positive,
		}
	}
	return out
}

func subsumeFrom(sub *subst.Subst, cLits []*clause.Literal, i int, dLits []*clause.Literal, used []bool) bool {
	if i == len(cLits) {
		return true
	}
	for j, dl := range dLits {
		if used[j] {
			continue
		}
		w := sub.Watermark()
		used[j] = true
		if literalMatches(sub, cLits[i], dl) && subsumeFrom(sub, cLits, i+1, dLits, used) {
			return true
		}
		used[j] = false
		sub.Undo(w)
	}
	return false
}

// literalMatches tries to match cl against dl (same sign, either
// equation orientation) under sub, extending it on success and leaving it
// unchanged (via watermark/Undo) on failure.
func literalMatches(sub *subst.Subst, cl, dl *clause.Literal) bool {
	if cl.Positive != dl.Positive {
		return false
	}
	w := sub.Watermark()
	if subst.Match(sub, cl.LHS, dl.LHS) && subst.Match(sub, cl.RHS, dl.RHS) {
		return true
	}
	sub.Undo(w)
	if subst.Match(sub, cl.LHS, dl.RHS) && subst.Match(sub, cl.RHS, dl.LHS) {
		return true
	}
	sub.Undo(w)
	return false
}

// AnySubsumes reports whether any clause in candidates subsumes d, short
// circuiting on the first match. Used both for forward subsumption
// (candidates = processed set) and back-subsumption (candidates = the new
// clause as a singleton).
func AnySubsumes(bank *term.Bank, candidates []*clause.Clause, d *clause.Clause) bool {
	for _, c := range candidates {
		if c == d {
			continue
		}
		if ok, _ := Subsumes(bank, c, d); ok {
			return true
		}
	}
	return false
}
