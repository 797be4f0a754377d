package loop

import (
	"sort"

	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/symtab"
	"github.com/saturnix/eprover-core/internal/term"
)

// RelevanceVector maps a function/predicate symbol to a relevance score
// (e.g. distance from the conjecture in a SInE-style relevance filter,
// spec §6.3 "SInE relevance filtering"); a zero or absent entry means
// "no relevance information for this symbol".
type RelevanceVector map[symtab.Code]int

// SortAxiomsByRelevance orders axioms by average symbol relevance,
// ascending, so the lowest-relevance (least informative) axioms are
// scheduled first when fed into Init — following
// original_source/CLAUSES/ccl_axiomsorter.c's WAxiomCmp (SPEC_FULL.md
// §C), which ranks each axiom by the mean relevance of its non-special
// symbols and breaks ties by a stable secondary key. Here that secondary
// key is the clause ident rather than WAxiomCmp's raw pointer comparison,
// since ident order is what this system can reproduce deterministically
// across runs.
func SortAxiomsByRelevance(sig *symtab.Bank, rel RelevanceVector, axioms []*clause.Clause) {
	sort.SliceStable(axioms, func(i, j int) bool {
		wi, wj := axiomRelevance(sig, rel, axioms[i]), axiomRelevance(sig, rel, axioms[j])
		if wi != wj {
			return wi < wj
		}
		return axioms[i].Ident < axioms[j].Ident
	})
}

// axiomRelevance computes the mean relevance of c's non-special symbols,
// mirroring WAxiomAddRelEval: symbols absent from rel (relevance 0) are
// excluded from both the sum and the count, so an axiom entirely made of
// unscored symbols gets relevance 0 rather than an artificially low one.
func axiomRelevance(sig *symtab.Bank, rel RelevanceVector, c *clause.Clause) float64 {
	seen := make(map[symtab.Code]bool)
	for _, l := range c.Literals {
		collectRelevanceSymbols(l.LHS, seen)
		collectRelevanceSymbols(l.RHS, seen)
	}

	sum, count := 0, 0
	for code := range seen {
		sym := sig.BySymbol(code)
		if sym == nil || sym.Is(symtab.FlagSpecial) {
			continue
		}
		if r, ok := rel[code]; ok && r != 0 {
			sum += r
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

func collectRelevanceSymbols(t *term.Term, into map[symtab.Code]bool) {
	if t.IsVar {
		return
	}
	into[t.Code] = true
	for _, a := range t.Args {
		collectRelevanceSymbols(a, into)
	}
}
