package rewrite

import (
	"github.com/saturnix/eprover-core/internal/symtab"
	"github.com/saturnix/eprover-core/internal/term"
)

// ACNormalize canonicalizes the argument order of every binary
// associative-commutative symbol occurring in t, bottom-up, so that two
// terms equal modulo AC become syntactically identical (SPEC_FULL.md §C,
// supplementing spec §4.6's simplification set with the AC-handling the
// distillation dropped; grounded on
// original_source/CLAUSES/ccl_global_indices.c's "AC-normal form" bit
// maintained alongside the global indices). Symbols must be both
// FlagAssociative and FlagCommutative and binary; anything else is left
// untouched.
func ACNormalize(bank *term.Bank, sig *symtab.Bank, t *term.Term) *term.Term {
	if t.IsVar || len(t.Args) == 0 {
		return t
	}
	args := make([]*term.Term, len(t.Args))
	changed := false
	for i, a := range t.Args {
		na := ACNormalize(bank, sig, a)
		args[i] = na
		if na != a {
			changed = true
		}
	}

	sym := sig.BySymbol(t.Code)
	if sym != nil && len(args) == 2 && sym.Is(symtab.FlagAssociative) && sym.Is(symtab.FlagCommutative) {
		flat := flattenAC(t.Code, args)
		sortCanonical(flat)
		if len(flat) != len(args) {
			changed = true
		}
		args = rebuildRightAssoc(bank, t.Code, flat)
		if len(args) == 2 {
			if !changed {
				changed = args[0] != t.Args[0] || args[1] != t.Args[1]
			}
			if changed {
				return bank.MustIntern(t.Code, args)
			}
			return t
		}
		return args[0]
	}

	if !changed {
		return t
	}
	return bank.MustIntern(t.Code, args)
}

// flattenAC collects the AC-flattened argument list of a chain of nested
// applications of the same binary AC symbol (e.g. f(f(a,b),c) -> [a,b,c]).
func flattenAC(head symtab.Code, args []*term.Term) []*term.Term {
	var out []*term.Term
	var walk func(t *term.Term)
	walk = func(t *term.Term) {
		if !t.IsVar && t.Code == head && len(t.Args) == 2 {
			walk(t.Args[0])
			walk(t.Args[1])
			return
		}
		out = append(out, t)
	}
	for _, a := range args {
		walk(a)
	}
	return out
}

// sortCanonical orders terms by a deterministic key (weight, then
// textual form) so AC-equal terms always flatten to the same sequence
// regardless of original nesting.
func sortCanonical(ts []*term.Term) {
	for i := 1; i < len(ts); i++ {
		for j := i; j > 0 && canonicalLess(ts[j], ts[j-1]); j-- {
			ts[j], ts[j-1] = ts[j-1], ts[j]
		}
	}
}

func canonicalLess(a, b *term.Term) bool {
	if a.Weight() != b.Weight() {
		return a.Weight() < b.Weight()
	}
	return a.String() < b.String()
}

// rebuildRightAssoc rebuilds a right-associated chain of head(...) from a
// flat, already-sorted operand list; len(out) can be 1 if flattening
// collapsed everything into a single operand (impossible for arity-2
// input but kept general).
func rebuildRightAssoc(bank *term.Bank, head symtab.Code, flat []*term.Term) []*term.Term {
	if len(flat) <= 2 {
		return flat
	}
	acc := flat[len(flat)-1]
	for i := len(flat) - 2; i > 0; i-- {
		acc = bank.MustIntern(head, []*term.Term{flat[i], acc})
	}
	return []*term.Term{flat[0], acc}
}
