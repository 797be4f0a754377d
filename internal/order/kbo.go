package order

import "github.com/saturnix/eprover-core/internal/term"

// kboWeight computes the KBO weight of t under precedence p: the variable
// weight for a variable, or the symbol's weight plus the weights of its
// arguments otherwise (spec §4.3 "a weight function assigning a
// non-negative integer to each symbol, with the variable weight fixed").
func kboWeight(p *Precedence, t *term.Term) int {
	if t.IsVar {
		return p.VarWeight()
	}
	w := p.WeightOf(t.Code)
	for _, a := range t.Args {
		w += kboWeight(p, a)
	}
	return w
}

func varCounts(t *term.Term, into map[*term.Term]int) {
	if t.IsVar {
		into[t]++
		return
	}
	for _, a := range t.Args {
		varCounts(a, into)
	}
}

// varCountsGE reports whether, for every variable, a's count is >= b's.
func varCountsGE(a, b map[*term.Term]int) bool {
	for v, n := range b {
		if a[v] < n {
			return false
		}
	}
	return true
}

func containsVar(t, v *term.Term) bool {
	if t == v {
		return true
	}
	for _, a := range t.Args {
		if containsVar(a, v) {
			return true
		}
	}
	return false
}

// kboCompare is the standard recursive Knuth-Bendix ordering comparison
// (Baader & Nipkow, "Term Rewriting and All That", ch. 5.4), extended with
// a lexicographic or multiset argument comparison per symbol Status when
// head symbols and weights tie.
func kboCompare(p *Precedence, s, t *term.Term) Result {
	if s == t {
		return Equal
	}

	if t.IsVar {
		if !s.IsVar && containsVar(s, t) {
			return Greater
		}
		return Uncomparable
	}
	if s.IsVar {
		if containsVar(t, s) {
			return Less
		}
		return Uncomparable
	}

	vs, vt := map[*term.Term]int{}, map[*term.Term]int{}
	varCounts(s, vs)
	varCounts(t, vt)
	sGEt := varCountsGE(vs, vt)
	tGEs := varCountsGE(vt, vs)

	ws, wt := kboWeight(p, s), kboWeight(p, t)

	switch {
	case ws > wt:
		if sGEt {
			return Greater
		}
		return Uncomparable
	case ws < wt:
		if tGEs {
			return Less
		}
		return Uncomparable
	default: // ws == wt
		cmp := p.Compare(s.Code, t.Code)
		switch {
		case cmp > 0:
			if sGEt {
				return Greater
			}
			return Uncomparable
		case cmp < 0:
			if tGEs {
				return Less
			}
			return Uncomparable
		default: // same head symbol (cmp==0 implies s.Code==t.Code since Compare is a total order)
			return kboCompareArgs(p, s, t, sGEt, tGEs)
		}
	}
}

func kboCompareArgs(p *Precedence, s, t *term.Term, sGEt, tGEs bool) Result {
	switch p.StatusOf(s.Code) {
	case StatusMultiset:
		return kboCompareMultiset(p, s.Args, t.Args, sGEt, tGEs)
	default:
		return kboCompareLex(p, s.Args, t.Args, sGEt, tGEs)
	}
}

func kboCompareLex(p *Precedence, sArgs, tArgs []*term.Term, sGEt, tGEs bool) Result {
	for i := range sArgs {
		if sArgs[i] == tArgs[i] {
			continue
		}
		sub := kboCompare(p, sArgs[i], tArgs[i])
		switch sub {
		case Equal:
			continue
		case Greater:
			if sGEt {
				return Greater
			}
			return Uncomparable
		case Less:
			if tGEs {
				return Less
			}
			return Uncomparable
		default:
			return Uncomparable
		}
	}
	return Equal
}

// kboCompareMultiset compares argument vectors as multisets (for
// associative-commutative-flavoured symbols): greater iff some
// permutation makes every position >= and at least one strictly >.
func kboCompareMultiset(p *Precedence, sArgs, tArgs []*term.Term, sGEt, tGEs bool) Result {
	remaining := append([]*term.Term(nil), tArgs...)
	strictSomewhere := false
	for _, sa := range sArgs {
		matchedIdx := -1
		for i, ta := range remaining {
			if ta == nil {
				continue
			}
			r := kboCompare(p, sa, ta)
			if r == Equal {
				matchedIdx = i
				break
			}
			if r == Greater {
				matchedIdx = i
				strictSomewhere = true
				break
			}
		}
		if matchedIdx == -1 {
			return Uncomparable
		}
		remaining[matchedIdx] = nil
	}
	for _, r := range remaining {
		if r != nil {
			return Uncomparable
		}
	}
	if strictSomewhere && sGEt {
		return Greater
	}
	return Equal
}
