package infer

import (
	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/order"
	"github.com/saturnix/eprover-core/internal/subst"
	"github.com/saturnix/eprover-core/internal/term"
)

// EqualityResolution performs equality resolution (spec §4.7): given a
// clause with a negative equational literal s != t at litIdx, if s and t
// unify under sigma, the literal is eliminated and Csigma is the
// consequence. Requires the literal to be maximal in Csigma.
func EqualityResolution(bank *term.Bank, ord *order.Ordering, ident string, c *clause.Clause, litIdx int) (*clause.Clause, bool) {
	if litIdx < 0 || litIdx >= len(c.Literals) || c.Literals[litIdx].Positive {
		return nil, false
	}
	lit := c.Literals[litIdx]

	sub := subst.New()
	if !subst.Unify(sub, lit.LHS, lit.RHS) {
		return nil, false
	}

	instLits := substLiterals(bank, sub, c.Literals)
	if !isMaximalAt(ord, instLits, litIdx) {
		return nil, false
	}

	var lits []*clause.Literal
	for i, l := range instLits {
		if i == litIdx {
			continue
		}
		lits = append(lits, l)
	}

	result := clause.New(ident, lits)
	finishDerivation(result, clause.InferenceEqRes, c)
	return result, true
}

// EqualityFactoring performs equality factoring (spec §4.7): given a
// clause with two positive equational literals s≈t (lit1Idx) and s'≈t'
// (lit2Idx) whose left-hand sides unify under sigma, and tsigma is not
// greater than ssigma, produces (C \ {s≈t,s'≈t'} ∨ t≉t' ∨ s'≈t')sigma.
// Requires s≈t to be maximal in Csigma.
func EqualityFactoring(bank *term.Bank, ord *order.Ordering, ident string, c *clause.Clause, lit1Idx, lit2Idx int) (*clause.Clause, bool) {
	if lit1Idx == lit2Idx || lit1Idx < 0 || lit2Idx < 0 || lit1Idx >= len(c.Literals) || lit2Idx >= len(c.Literals) {
		return nil, false
	}
	l1, l2 := c.Literals[lit1Idx], c.Literals[lit2Idx]
	if !l1.Positive || !l2.Positive {
		return nil, false
	}

	sub := subst.New()
	if !subst.Unify(sub, l1.LHS, l2.LHS) {
		return nil, false
	}

	sInst := sub.Apply(bank, l1.LHS)
	tInst := sub.Apply(bank, l1.RHS)
	tpInst := sub.Apply(bank, l2.RHS)
	if ord.Greater(tInst, sInst) {
		return nil, false
	}

	instLits := substLiterals(bank, sub, c.Literals)
	if !isMaximalAt(ord, instLits, lit1Idx) {
		return nil, false
	}

	var lits []*clause.Literal
	for i, l := range instLits {
		if i == lit1Idx || i == lit2Idx {
			continue
		}
		lits = append(lits, l)
	}
	lits = append(lits, &clause.Literal{LHS: tInst, RHS: tpInst, Positive: false})
	lits = append(lits, &clause.Literal{LHS: sInst, RHS: tpInst, Positive: true})

	result := clause.New(ident, lits)
	finishDerivation(result, clause.InferenceEqFactor, c)
	return result, true
}
