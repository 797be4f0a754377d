// Package order implements the simplification-ordering layer: LPO and KBO
// over a symbol precedence and (for KBO) a weight function, with a
// comparison cache (spec §2.5, §4.3).
//
// Grounded on the teacher's internal/semantic analyzer_type.go (a
// precedence-like total order used to resolve type-promotion conflicts)
// and internal/ir/optimizations.go (a cached, memoized rewrite of IR
// values); generalized here to the two standard term orderings used by
// superposition provers.
package order

// Result is the outcome of comparing two terms under an Ordering (spec
// §4.3). NotGreaterEqual and NotLessEqual are the "negative" results the
// spec calls cacheable refutations: they rule out one direction without
// having fully determined the other.
type Result uint8

const (
	Equal Result = iota
	Greater
	Less
	Uncomparable
	NotGreaterEqual // ruled out: s is not >= t (but may be Less or Uncomparable)
	NotLessEqual    // ruled out: s is not <= t (but may be Greater or Uncomparable)
)

func (r Result) String() string {
	switch r {
	case Equal:
		return "="
	case Greater:
		return ">"
	case Less:
		return "<"
	case Uncomparable:
		return "?"
	case NotGreaterEqual:
		return "!>="
	case NotLessEqual:
		return "!<="
	default:
		return "invalid"
	}
}

// definitive reports whether r is one of the four final answers (as
// opposed to one of the two cacheable-but-partial negative results).
func (r Result) definitive() bool {
	return r == Equal || r == Greater || r == Less || r == Uncomparable
}

// Flip returns the result of swapping the comparison's operands.
func (r Result) Flip() Result {
	switch r {
	case Greater:
		return Less
	case Less:
		return Greater
	case NotGreaterEqual:
		return NotLessEqual
	case NotLessEqual:
		return NotGreaterEqual
	default:
		return r
	}
}
