// Package subst implements the binding stack, unification and matching
// (spec §2.4, §4.2).
//
// Per the Design Notes (spec §9), variable bindings are not stored on the
// term node itself: a Subst is an external, watermarked binding
// environment keyed by variable identity (pointer identity of the
// term.Term variable node, which is unique per (sort, index) within a
// bank). This lets term.Bank stay a store of immutable nodes while still
// giving unification the same undo discipline the source system gets from
// mutable binding slots.
//
// Grounded on the teacher's internal/ir builder (internal/ir/builder.go),
// which threads a mutable binding/scope environment alongside an immutable
// value graph; generalized here from lexical scoping to a watermarked undo
// stack suited to backtracking search.
package subst

import "github.com/saturnix/eprover-core/internal/term"

type binding struct {
	variable *term.Term
	previous *term.Term
	hadPrev  bool
}

// Subst is a substitution: a stack of (variable, previous-binding,
// new-binding) triples (spec §4.2), with destructive-looking apply and
// stack-watermarked undo.
type Subst struct {
	current map[*term.Term]*term.Term
	stack   []binding
}

// New creates an empty substitution.
func New() *Subst {
	return &Subst{current: make(map[*term.Term]*term.Term)}
}

// Watermark returns the current stack height, to be passed to Undo later.
// Nested unifications must strictly nest their watermarks (spec §5).
func (s *Subst) Watermark() int { return len(s.stack) }

// Lookup implements term.Binder: it resolves v's current binding.
func (s *Subst) Lookup(v *term.Term) (*term.Term, bool) {
	t, ok := s.current[v]
	return t, ok
}

// Bind installs v -> t, recording the previous binding (if any) for undo.
// Bind does not check for conflicts; callers (unify/match) are expected to
// only bind previously-unbound variables, per Robinson's algorithm.
func (s *Subst) Bind(v, t *term.Term) {
	prev, had := s.current[v]
	s.stack = append(s.stack, binding{variable: v, previous: prev, hadPrev: had})
	s.current[v] = t
}

// Undo rewinds the substitution to watermark w, restoring every binding
// that existed at that point. Undoing to 0 yields the empty substitution
// (spec §8 "Unification undo").
func (s *Subst) Undo(w int) {
	for len(s.stack) > w {
		top := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		if top.hadPrev {
			s.current[top.variable] = top.previous
		} else {
			delete(s.current, top.variable)
		}
	}
}

// Apply builds the fully-dereferenced instance of t under s in bank b,
// i.e. apply(s, t) from spec §8 "Substitution soundness".
func (s *Subst) Apply(b *term.Bank, t *term.Term) *term.Term {
	resolved := term.DerefFollow(t, s.Lookup)
	if resolved.IsVar {
		return resolved
	}
	if len(resolved.Args) == 0 {
		return resolved
	}
	args := make([]*term.Term, len(resolved.Args))
	changed := false
	for i, a := range resolved.Args {
		na := s.Apply(b, a)
		args[i] = na
		if na != a {
			changed = true
		}
	}
	if !changed {
		return resolved
	}
	return b.MustIntern(resolved.Code, args)
}

// Rename produces a substitution mapping every free variable occurring in
// ts to a fresh variable of the same sort, the standard "variable renaming"
// operation named in spec §2.4.
func Rename(b *term.Bank, ts ...*term.Term) *Subst {
	s := New()
	seen := map[*term.Term]bool{}
	var walk func(t *term.Term)
	walk = func(t *term.Term) {
		if t.IsVar {
			if !seen[t] {
				seen[t] = true
				s.Bind(t, b.FreshVariable(t.Sort))
			}
			return
		}
		for _, a := range t.Args {
			walk(a)
		}
	}
	for _, t := range ts {
		walk(t)
	}
	return s
}
