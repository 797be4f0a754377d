package subst

import "github.com/saturnix/eprover-core/internal/term"

// occurs reports whether v occurs in t under the current bindings of s.
func occurs(s *Subst, v, t *term.Term) bool {
	t = term.DerefFollow(t, s.Lookup)
	if t.IsVar {
		return t == v
	}
	for _, a := range t.Args {
		if occurs(s, v, a) {
			return true
		}
	}
	return false
}

// Unify performs syntactic first-order unification of s and t (Robinson's
// algorithm) over shared terms, with an occurs check (spec §4.2 `unify`).
// On failure the substitution is restored to its state at entry; on
// success bindings remain installed at the returned watermark's level (the
// caller decides when to undo).
func Unify(sub *Subst, s, t *term.Term) bool {
	w := sub.Watermark()
	if unify1(sub, s, t) {
		return true
	}
	sub.Undo(w)
	return false
}

func unify1(sub *Subst, s, t *term.Term) bool {
	s = term.DerefFollow(s, sub.Lookup)
	t = term.DerefFollow(t, sub.Lookup)

	if s == t {
		return true
	}
	if s.IsVar {
		if occurs(sub, s, t) {
			return false
		}
		sub.Bind(s, t)
		return true
	}
	if t.IsVar {
		if occurs(sub, t, s) {
			return false
		}
		sub.Bind(t, s)
		return true
	}
	if s.Code != t.Code || len(s.Args) != len(t.Args) {
		return false
	}
	for i := range s.Args {
		if !unify1(sub, s.Args[i], t.Args[i]) {
			return false
		}
	}
	return true
}

// CompleteUnifier computes an MGU of s and t, installing bindings durably
// into sub (the caller is responsible for undoing them later, spec §4.2
// `complete_unifier`). Equivalent to Unify but named separately to make
// the "caller owns the watermark" contract explicit at call sites that
// intend the bindings to outlive the current stack frame.
func CompleteUnifier(sub *Subst, s, t *term.Term) bool {
	return Unify(sub, s, t)
}

// Match performs one-sided matching: pattern may bind variables, but
// variables occurring in instance are treated as opaque constants (spec
// §4.2 `match`). Same watermark discipline as Unify.
func Match(sub *Subst, pattern, instance *term.Term) bool {
	w := sub.Watermark()
	if match1(sub, pattern, instance) {
		return true
	}
	sub.Undo(w)
	return false
}

func match1(sub *Subst, pattern, instance *term.Term) bool {
	if pattern.IsVar {
		if bound, ok := sub.Lookup(pattern); ok {
			return bound == instance
		}
		sub.Bind(pattern, instance)
		return true
	}
	if instance.IsVar {
		return false
	}
	if pattern.Code != instance.Code || len(pattern.Args) != len(instance.Args) {
		return false
	}
	for i := range pattern.Args {
		if !match1(sub, pattern.Args[i], instance.Args[i]) {
			return false
		}
	}
	return true
}
