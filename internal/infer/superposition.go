package infer

import (
	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/order"
	"github.com/saturnix/eprover-core/internal/subst"
	"github.com/saturnix/eprover-core/internal/term"
)

// renameApart renames every literal of lits to fresh variables, for
// combining two clauses that share a term bank (and therefore might
// coincidentally share a variable index) in one inference.
func renameApart(bank *term.Bank, lits []*clause.Literal) []*clause.Literal {
	sides := make([]*term.Term, 0, len(lits)*2)
	for _, l := range lits {
		sides = append(sides, l.LHS, l.RHS)
	}
	ren := subst.Rename(bank, sides...)
	out := make([]*clause.Literal, len(lits))
	for i, l := range lits {
		out[i] = &clause.Literal{LHS: ren.Apply(bank, l.LHS), RHS: ren.Apply(bank, l.RHS), Positive: l.Positive}
	}
	return out
}

func substLiteral(bank *term.Bank, sub *subst.Subst, l *clause.Literal) *clause.Literal {
	return &clause.Literal{LHS: sub.Apply(bank, l.LHS), RHS: sub.Apply(bank, l.RHS), Positive: l.Positive}
}

func substLiterals(bank *term.Bank, sub *subst.Subst, lits []*clause.Literal) []*clause.Literal {
	out := make([]*clause.Literal, len(lits))
	for i, l := range lits {
		out[i] = substLiteral(bank, sub, l)
	}
	return out
}

func isMaximalAt(ord *order.Ordering, lits []*clause.Literal, idx int) bool {
	marked := make([]*clause.Literal, len(lits))
	for i, l := range lits {
		cp := *l
		marked[i] = &cp
	}
	clause.MarkMaximalLiterals(ord, marked)
	return marked[idx].Is(clause.FlagMaximal)
}

func finishDerivation(c *clause.Clause, kind clause.InferenceKind, parents ...*clause.Clause) {
	c.Derivation = &clause.Derivation{Kind: kind, Parents: parents}
	maxDepth := 0
	size := 1
	for _, p := range parents {
		if p.ProofDepth > maxDepth {
			maxDepth = p.ProofDepth
		}
		size += p.ProofSize
	}
	c.ProofDepth = maxDepth + 1
	c.ProofSize = size
}

// Superposition performs one superposition/paramodulation inference (spec
// §4.7): from's literal at fromLitIdx must be a positive equation s=t
// (fromSide selects which side is s); into's literal at intoLitIdx
// contains a non-variable subterm u at path, reachable by unifying s with
// u. The inference fires only if sσ > tσ under ord and both the source
// and target literals are maximal in their (renamed, substituted) clause
// — the ordering restrictions that keep superposition refutationally
// complete without being a full saturation of every possible rewrite
// (spec §4.7 "ordering-restricted inference eligibility").
func Superposition(
	bank *term.Bank, ord *order.Ordering, ident string,
	from *clause.Clause, fromLitIdx, fromSide int,
	into *clause.Clause, intoLitIdx, intoSide int, path []int,
) (*clause.Clause, bool) {
	if fromLitIdx < 0 || fromLitIdx >= len(from.Literals) || !from.Literals[fromLitIdx].Positive {
		return nil, false
	}
	if intoLitIdx < 0 || intoLitIdx >= len(into.Literals) {
		return nil, false
	}

	fromLits := renameApart(bank, from.Literals)
	fromEq := fromLits[fromLitIdx]
	s, t := fromEq.LHS, fromEq.RHS
	if fromSide == 1 {
		s, t = t, s
	}

	var intoTerm *term.Term
	intoLit := into.Literals[intoLitIdx]
	if intoSide == 0 {
		intoTerm = intoLit.LHS
	} else {
		intoTerm = intoLit.RHS
	}
	u := subtermAt(intoTerm, path)
	if u == nil || u.IsVar {
		return nil, false
	}

	sub := subst.New()
	if !subst.Unify(sub, s, u) {
		return nil, false
	}

	sInst := sub.Apply(bank, s)
	tInst := sub.Apply(bank, t)
	if !ord.Greater(sInst, tInst) {
		return nil, false
	}

	fromInst := substLiterals(bank, sub, fromLits)
	if !isMaximalAt(ord, fromInst, fromLitIdx) {
		return nil, false
	}
	intoInst := substLiterals(bank, sub, into.Literals)
	if !isMaximalAt(ord, intoInst, intoLitIdx) {
		return nil, false
	}

	intoTermInst := sub.Apply(bank, intoTerm)
	replaced := replaceAtPath(bank, intoTermInst, path, tInst)

	newIntoLit := &clause.Literal{Positive: intoLit.Positive}
	if intoSide == 0 {
		newIntoLit.LHS, newIntoLit.RHS = replaced, intoInst[intoLitIdx].RHS
	} else {
		newIntoLit.RHS, newIntoLit.LHS = replaced, intoInst[intoLitIdx].LHS
	}

	var lits []*clause.Literal
	for i, l := range fromInst {
		if i == fromLitIdx {
			continue
		}
		lits = append(lits, l)
	}
	for i, l := range intoInst {
		if i == intoLitIdx {
			lits = append(lits, newIntoLit)
			continue
		}
		lits = append(lits, l)
	}

	result := clause.New(ident, lits)
	finishDerivation(result, clause.InferenceParamod, from, into)
	return result, true
}
