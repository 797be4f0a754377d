// Package rewrite implements normal-form computation, demodulation,
// subsumption, contextual simplify-reflect, tautology deletion, and
// AC-normalisation (spec §2.8, §4.6).
//
// Grounded on the teacher's internal/ir/optimizations.go, which repeatedly
// rewrites an IR value graph to a fixed point using a cached
// "already simplified" marker per value; generalized here from IR
// peephole rewriting to ordered term rewriting with a real termination
// argument (the simplification ordering, spec §4.3).
package rewrite

import (
	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/index"
	"github.com/saturnix/eprover-core/internal/order"
	"github.com/saturnix/eprover-core/internal/subst"
	"github.com/saturnix/eprover-core/internal/term"
)

// OrientUnitClause orients a positive unit equation's single literal so
// LHS >= RHS under ord, flagging it Oriented, so it can serve as a
// left-to-right demodulator (spec §2.8 "demodulator: an oriented positive
// unit equation"). Unoriented (incomparable) equations are left as-is and
// unflagged. UnitIndex still files them under their LHS head symbol, and
// RewriteToNormalForm applies one left to right only, at any subterm
// where the matched instance is greater than the RHS instance.
func OrientUnitClause(ord *order.Ordering, c *clause.Clause) {
	if len(c.Literals) != 1 || !c.Literals[0].Positive {
		return
	}
	l := c.Literals[0]
	switch ord.Compare(l.LHS, l.RHS) {
	case order.Less:
		l.LHS, l.RHS = l.RHS, l.LHS
		l.SetFlag(clause.FlagOriented)
	case order.Greater:
		l.SetFlag(clause.FlagOriented)
	}
}

// RewriteToNormalForm rewrites every subterm of t to normal form against
// the demodulators reachable through units (spec §4.6). It terminates
// because every rewrite step strictly decreases t under ord (spec §8
// "Rewriting termination").
func RewriteToNormalForm(bank *term.Bank, ord *order.Ordering, units *index.UnitIndex, t *term.Term) *term.Term {
	if t.IsVar {
		return t
	}
	args := make([]*term.Term, len(t.Args))
	changed := false
	for i, a := range t.Args {
		na := RewriteToNormalForm(bank, ord, units, a)
		args[i] = na
		if na != a {
			changed = true
		}
	}
	cur := t
	if changed {
		cur = bank.MustIntern(t.Code, args)
	}
	for {
		next, ok := tryRewriteTop(bank, ord, units, cur)
		if !ok {
			return cur
		}
		cur = next
	}
}

func tryRewriteTop(bank *term.Bank, ord *order.Ordering, units *index.UnitIndex, t *term.Term) (*term.Term, bool) {
	if t.IsVar {
		return t, false
	}
	for _, d := range units.CandidatesForHead(t.Code) {
		lit := d.Literals[0]
		ren := subst.Rename(bank, lit.LHS, lit.RHS)
		lhs := ren.Apply(bank, lit.LHS)
		rhs := ren.Apply(bank, lit.RHS)

		sub := subst.New()
		if !subst.Match(sub, lhs, t) {
			continue
		}
		rhsInst := sub.Apply(bank, rhs)
		if ord.Greater(t, rhsInst) {
			return rhsInst, true
		}
	}
	return t, false
}

// NormalizeClause rewrites every literal side of c to normal form in
// place and recomputes the clause's cached weight (spec §4.6 "After
// normal-form, the clause's standard weight cache is recomputed").
// Reports whether anything changed.
func NormalizeClause(bank *term.Bank, ord *order.Ordering, units *index.UnitIndex, c *clause.Clause) bool {
	changed := false
	for _, l := range c.Literals {
		nl := RewriteToNormalForm(bank, ord, units, l.LHS)
		nr := RewriteToNormalForm(bank, ord, units, l.RHS)
		if nl != l.LHS || nr != l.RHS {
			changed = true
			l.LHS, l.RHS = nl, nr
		}
	}
	if changed {
		c.Recompute()
	}
	return changed
}
