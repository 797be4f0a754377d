package clause

import (
	"github.com/saturnix/eprover-core/internal/order"
	"github.com/saturnix/eprover-core/internal/term"
)

// MarkMaximalLiterals sets the Maximal and StrictlyMaximal flags on every
// literal of lits relative to the others, using the ordering induced by
// cmp on the larger of each literal's two sides (spec §4.3
// "mark_maximal_literals"; idempotent — recomputing simply resets and
// reassigns the same flag bits).
//
// The literal-to-literal comparison compares each literal's maximal side
// (the larger of LHS/RHS under cmp); a literal is Maximal if no other
// literal's maximal side is strictly greater, and StrictlyMaximal if none
// is greater-or-equal.
func MarkMaximalLiterals(cmp *order.Ordering, lits []*Literal) {
	for _, l := range lits {
		l.ClearFlag(FlagMaximal | FlagStrictlyMaximal)
	}

	maxSides := make([]*term.Term, len(lits))
	for i, l := range lits {
		maxSides[i] = maximalSide(cmp, l)
	}

	for i, li := range lits {
		isMax, isStrict := true, true
		for j := range lits {
			if i == j {
				continue
			}
			switch cmp.Compare(maxSides[i], maxSides[j]) {
			case order.Less:
				isMax, isStrict = false, false
			case order.Equal:
				isStrict = false
			}
		}
		if isMax {
			li.SetFlag(FlagMaximal)
		}
		if isStrict {
			li.SetFlag(FlagStrictlyMaximal)
		}
	}
}

func maximalSide(cmp *order.Ordering, l *Literal) *term.Term {
	if cmp.Greater(l.RHS, l.LHS) {
		return l.RHS
	}
	return l.LHS
}
