package order

import "github.com/saturnix/eprover-core/internal/term"

// lpoCompare is the standard recursive Lexicographic Path Ordering
// comparison (Dershowitz), parameterized by the same per-symbol Status
// used for KBO tie-breaking (spec §4.3).
func lpoCompare(p *Precedence, s, t *term.Term) Result {
	if s == t {
		return Equal
	}
	if s.IsVar {
		if t.IsVar {
			return Uncomparable
		}
		if containsVar(t, s) {
			return Less
		}
		return Uncomparable
	}
	if t.IsVar {
		if containsVar(s, t) {
			return Greater
		}
		return Uncomparable
	}

	// s > t if some argument of s is >= t.
	for _, sa := range s.Args {
		r := lpoCompare(p, sa, t)
		if r == Greater || r == Equal {
			return Greater
		}
	}
	// symmetric check for t > s.
	for _, ta := range t.Args {
		r := lpoCompare(p, ta, s)
		if r == Greater || r == Equal {
			return Less
		}
	}

	cmp := p.Compare(s.Code, t.Code)
	switch {
	case cmp > 0:
		if lpoAllGreaterThanArgs(p, s, t.Args) {
			return Greater
		}
		return Uncomparable
	case cmp < 0:
		if lpoAllGreaterThanArgs(p, t, s.Args) {
			return Less
		}
		return Uncomparable
	default: // same head symbol
		switch p.StatusOf(s.Code) {
		case StatusMultiset:
			return lpoMultisetArgs(p, s, t)
		default:
			return lpoLexArgs(p, s, t)
		}
	}
}

// lpoAllGreaterThanArgs reports whether s is greater than every term in args.
func lpoAllGreaterThanArgs(p *Precedence, s *term.Term, args []*term.Term) bool {
	for _, a := range args {
		if lpoCompare(p, s, a) != Greater {
			return false
		}
	}
	return true
}

func lpoLexArgs(p *Precedence, s, t *term.Term) Result {
	n := len(s.Args)
	for i := 0; i < n; i++ {
		if s.Args[i] == t.Args[i] {
			continue
		}
		r := lpoCompare(p, s.Args[i], t.Args[i])
		switch r {
		case Greater:
			if lpoAllGreaterThanArgs(p, s, t.Args[i+1:]) && s.Args[i] != t.Args[i] {
				return Greater
			}
			return Uncomparable
		case Less:
			if lpoAllGreaterThanArgs(p, t, s.Args[i+1:]) {
				return Less
			}
			return Uncomparable
		default:
			return Uncomparable
		}
	}
	return Equal
}

func lpoMultisetArgs(p *Precedence, s, t *term.Term) Result {
	return kboCompareMultiset(p, s.Args, t.Args, true, true)
}
