package rewrite

import (
	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/term"
)

// ContextualSimplifyReflect implements spec §4.6's contextual
// simplify-reflect: for each literal L of d, flip L's sign and check
// whether the resulting clause is subsumed by some clause already in
// processed. If so, L follows from the rest of d plus the processed set
// and can be deleted. Runs to a fixpoint since deleting one literal can
// expose another; returns the simplified clause and whether anything
// changed.
//
// Grounded on original_source/CLAUSES/ccl_context_sr.c (SPEC_FULL.md §C),
// which performs exactly this flip-and-subsume check against the
// existing processed clauses rather than a dedicated rule set.
func ContextualSimplifyReflect(bank *term.Bank, processed []*clause.Clause, d *clause.Clause) (*clause.Clause, bool) {
	cur := d
	changedEver := false
	for {
		next, changed := simplifyReflectOnce(bank, processed, cur)
		if !changed {
			return cur, changedEver
		}
		cur = next
		changedEver = true
	}
}

func simplifyReflectOnce(bank *term.Bank, processed []*clause.Clause, d *clause.Clause) (*clause.Clause, bool) {
	for i, li := range d.Literals {
		flipped := &clause.Literal{LHS: li.LHS, RHS: li.RHS, Positive: !li.Positive}
		trialLits := withLiteralReplaced(d.Literals, i, flipped)
		trial := clause.New(d.Ident+"#sr-trial", trialLits)

		if AnySubsumes(bank, processed, trial) {
			remaining := withLiteralRemoved(d.Literals, i)
			return clause.New(d.Ident, remaining), true
		}
	}
	return d, false
}

func withLiteralReplaced(lits []*clause.Literal, i int, repl *clause.Literal) []*clause.Literal {
	out := make([]*clause.Literal, len(lits))
	copy(out, lits)
	out[i] = repl
	return out
}

func withLiteralRemoved(lits []*clause.Literal, i int) []*clause.Literal {
	out := make([]*clause.Literal, 0, len(lits)-1)
	out = append(out, lits[:i]...)
	out = append(out, lits[i+1:]...)
	return out
}
