package index

import "github.com/saturnix/eprover-core/internal/clause"

// Features is the fixed-size integer feature tuple computed for a clause
// (spec §4.5.2): "per-literal counts by sign; per-symbol counts weighted
// by sign; etc." A clause C can subsume D only if every feature of C
// other than the variable-occurrence count is <= the corresponding
// feature of D (the monotonic ordering the feature-vector index relies on
// for candidate pruning); instantiating a variable can lower that count,
// so LE does not compare it.
type Features [6]int

const (
	featPosLits = iota
	featNegLits
	featPosWeight
	featNegWeight
	featFunSymbols
	featVarOccurrences
)

// ComputeFeatures computes the feature tuple of c.
func ComputeFeatures(c *clause.Clause) Features {
	var f Features
	for _, l := range c.Literals {
		w := l.LHS.Weight() + l.RHS.Weight()
		funs := l.LHS.FunCount() + l.RHS.FunCount()
		vars := l.LHS.VarCount() + l.RHS.VarCount()
		if l.Positive {
			f[featPosLits]++
			f[featPosWeight] += w
		} else {
			f[featNegLits]++
			f[featNegWeight] += w
		}
		f[featFunSymbols] += funs
		f[featVarOccurrences] += vars
	}
	return f
}

// LE reports whether every component of f except featVarOccurrences is
// <= the corresponding component of g — the necessary condition for "f's
// clause could subsume g's clause" (spec §4.5.2).
func (f Features) LE(g Features) bool {
	for i := range f {
		if i == featVarOccurrences {
			continue
		}
		if f[i] > g[i] {
			return false
		}
	}
	return true
}
