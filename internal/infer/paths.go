// Package infer implements the superposition calculus's generating
// inference rules (spec §2.9, §4.7): superposition (paramodulation),
// equality resolution, and equality factoring.
//
// Grounded on the teacher's internal/semantic type-checking rules
// (contract.go, expr.go), which apply a small fixed set of typed
// transformation rules to produce a new IR node from one or two inputs
// plus a witness substitution — generalized here from type-check
// judgements to the superposition calculus's clause-producing rules.
package infer

import "github.com/saturnix/eprover-core/internal/term"

// subtermAt navigates path (a sequence of argument indices from the
// root) within t. Returns nil if the path does not exist — callers only
// invoke this with paths an index previously recorded against the exact
// term being navigated, so this should never happen in practice, but it
// is checked rather than assumed.
func subtermAt(t *term.Term, path []int) *term.Term {
	cur := t
	for _, i := range path {
		if cur.IsVar || i >= len(cur.Args) {
			return nil
		}
		cur = cur.Args[i]
	}
	return cur
}

// replaceAtPath rebuilds whole with the subterm at path replaced by repl,
// reconstructing every ancestor along the path bottom-up through bank so
// the result is properly hash-consed.
func replaceAtPath(bank *term.Bank, whole *term.Term, path []int, repl *term.Term) *term.Term {
	if len(path) == 0 {
		return repl
	}
	i := path[0]
	args := make([]*term.Term, len(whole.Args))
	copy(args, whole.Args)
	args[i] = replaceAtPath(bank, whole.Args[i], path[1:], repl)
	return bank.MustIntern(whole.Code, args)
}
