package pcl

import (
	"fmt"
	"strings"

	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/term"
)

// MiniClause is the compact clause representation of
// original_source/PCL2/pcl_miniclauses.c ("Maximal compact representation
// for clauses... you need some context to interpret this, in particular
// the term bank"): just literal signs and term pairs, with none of
// clause.Clause's ident/derivation/flags/weight bookkeeping.
type MiniClause struct {
	Signs []bool
	LHS   []*term.Term
	RHS   []*term.Term
}

// Minify strips lits down to a MiniClause.
func Minify(lits []*clause.Literal) *MiniClause {
	m := &MiniClause{
		Signs: make([]bool, len(lits)),
		LHS:   make([]*term.Term, len(lits)),
		RHS:   make([]*term.Term, len(lits)),
	}
	for i, l := range lits {
		m.Signs[i] = l.Positive
		m.LHS[i] = l.LHS
		m.RHS[i] = l.RHS
	}
	return m
}

// Literals reconstructs full literals from a MiniClause.
func (m *MiniClause) Literals() []*clause.Literal {
	out := make([]*clause.Literal, len(m.Signs))
	for i := range m.Signs {
		out[i] = &clause.Literal{LHS: m.LHS[i], RHS: m.RHS[i], Positive: m.Signs[i]}
	}
	return out
}

// CompactLiterals renders lits against a single reference parent's
// literals, replacing any literal that is identical (same sides, same
// sign) to one of parent's with a positional "=N" reference (1-based
// index into parent) instead of printing it in full.
//
// This is the compression pcl_miniclauses.c's compact listing mode
// allows — proof steps may omit unchanged literals and reference them
// positionally — which the spec's §6.1/§6.2 PCL2 description only
// gestures at via the optional "extra" field without detailing; it is
// opt-in (FormatCompact, not String) since a reader needs the parent
// step's own rendering at hand to resolve "=N".
func CompactLiterals(lits, parent []*clause.Literal) string {
	if len(lits) == 0 {
		return "$false"
	}
	parts := make([]string, len(lits))
	for i, l := range lits {
		if idx := indexOfIdentical(parent, l); idx >= 0 {
			parts[i] = fmt.Sprintf("=%d", idx+1)
		} else {
			parts[i] = l.String()
		}
	}
	return strings.Join(parts, " | ")
}

func indexOfIdentical(lits []*clause.Literal, l *clause.Literal) int {
	for i, p := range lits {
		if p.LHS == l.LHS && p.RHS == l.RHS && p.Positive == l.Positive {
			return i
		}
	}
	return -1
}

// FormatCompact renders s in the minified mode: when it has exactly one
// parent, literals unchanged from that parent's are replaced by a
// positional reference instead of being printed in full. trace must
// contain the step s.Justification.Parents[0] refers to (any slice
// containing it, e.g. the one FromProofSteps returned, works); if it
// isn't found, FormatCompact falls back to the uncompressed String form.
func (s Step) FormatCompact(trace []Step) string {
	if len(s.Justification.Parents) != 1 {
		return s.String()
	}
	parentLits, ok := literalsOf(trace, s.Justification.Parents[0])
	if !ok {
		return s.String()
	}

	out := fmt.Sprintf("%s : %s : %s", s.ID, CompactLiterals(s.Literals, parentLits), s.Justification)
	if s.Extra != "" {
		out += " : " + s.Extra
	}
	return out + "."
}

func literalsOf(trace []Step, id ID) ([]*clause.Literal, bool) {
	want := id.String()
	for _, s := range trace {
		if s.ID.String() == want {
			return s.Literals, true
		}
	}
	return nil, false
}
