package index

import (
	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/symtab"
	"github.com/saturnix/eprover-core/internal/term"
)

// FunctionSymbolIndex is the coarse membership filter of spec §4.4/§4.5:
// for each function symbol, the set of clauses mentioning it. Used to
// quickly rule out subsumption/simplification candidates that share no
// symbol with the query clause at all.
type FunctionSymbolIndex struct {
	bySymbol map[symtab.Code]map[string]bool
}

func NewFunctionSymbolIndex() *FunctionSymbolIndex {
	return &FunctionSymbolIndex{bySymbol: make(map[symtab.Code]map[string]bool)}
}

func collectSymbols(t *term.Term, into map[symtab.Code]bool) {
	if t.IsVar {
		return
	}
	into[t.Code] = true
	for _, a := range t.Args {
		collectSymbols(a, into)
	}
}

func (fsi *FunctionSymbolIndex) symbolsOf(c *clause.Clause) map[symtab.Code]bool {
	syms := make(map[symtab.Code]bool)
	for _, l := range c.Literals {
		collectSymbols(l.LHS, syms)
		collectSymbols(l.RHS, syms)
	}
	return syms
}

func (fsi *FunctionSymbolIndex) OnInsert(c *clause.Clause) {
	for sym := range fsi.symbolsOf(c) {
		set, ok := fsi.bySymbol[sym]
		if !ok {
			set = make(map[string]bool)
			fsi.bySymbol[sym] = set
		}
		set[c.Ident] = true
	}
}

func (fsi *FunctionSymbolIndex) OnRemove(c *clause.Clause) {
	for sym := range fsi.symbolsOf(c) {
		if set, ok := fsi.bySymbol[sym]; ok {
			delete(set, c.Ident)
		}
	}
}

// ClausesContaining returns idents of clauses mentioning sym.
func (fsi *FunctionSymbolIndex) ClausesContaining(sym symtab.Code) map[string]bool {
	return fsi.bySymbol[sym]
}

// SymbolOverlapCandidates unions ClausesContaining over every function
// symbol occurring in query, ruling out candidates that share no symbol
// with query at all — a necessary condition for query and a candidate to
// stand in a subsumption or simplification relationship in either
// direction, since every literal side of the smaller clause must match
// verbatim against the larger one. ok is false when query mentions no
// function symbols at all (e.g. a bare variable equation), in which case
// symbol overlap carries no information and callers should skip the
// filter rather than mistake the unfiltered case for "excludes
// everything".
func (fsi *FunctionSymbolIndex) SymbolOverlapCandidates(query *clause.Clause) (candidates map[string]bool, ok bool) {
	syms := fsi.symbolsOf(query)
	if len(syms) == 0 {
		return nil, false
	}
	out := make(map[string]bool)
	for sym := range syms {
		for ident := range fsi.bySymbol[sym] {
			out[ident] = true
		}
	}
	return out, true
}

// GlobalIndices bundles every index together and rebuilds them as one
// unit on demodulator-set change, following
// original_source/CLAUSES/ccl_global_indices.c (SPEC_FULL.md §C) rather
// than treating the four index kinds of spec §2.7 as independent
// structures.
type GlobalIndices struct {
	Subterm  *SubtermIndex
	Overlap  *OverlapIndex
	Features *FeatureVectorIndex
	Units    *UnitIndex
	Symbols  *FunctionSymbolIndex
}

// NewGlobalIndices builds the bundle and returns it already wired as a
// single clause.Indexer (via AsIndexer) for attaching to a clause.Set.
func NewGlobalIndices(trueConst *term.Term) *GlobalIndices {
	return &GlobalIndices{
		Subterm:  NewSubtermIndex(),
		Overlap:  NewOverlapIndex(),
		Features: NewFeatureVectorIndex(),
		Units:    NewUnitIndex(trueConst),
		Symbols:  NewFunctionSymbolIndex(),
	}
}

// bundledIndexer fans OnInsert/OnRemove out to every component index,
// implementing clause.Indexer as one attachable unit.
type bundledIndexer struct{ g *GlobalIndices }

func (b bundledIndexer) OnInsert(c *clause.Clause) {
	b.g.Subterm.OnInsert(c)
	b.g.Overlap.OnInsert(c)
	b.g.Features.OnInsert(c)
	b.g.Units.OnInsert(c)
	b.g.Symbols.OnInsert(c)
}

func (b bundledIndexer) OnRemove(c *clause.Clause) {
	b.g.Subterm.OnRemove(c)
	b.g.Overlap.OnRemove(c)
	b.g.Features.OnRemove(c)
	b.g.Units.OnRemove(c)
	b.g.Symbols.OnRemove(c)
}

// AsIndexer returns g wrapped as a single clause.Indexer, for
// Set.AttachIndexer.
func (g *GlobalIndices) AsIndexer() clause.Indexer { return bundledIndexer{g} }

// Rebuild clears every component index and reinserts every clause
// currently in s — the "rebuilt together on demodulator-set change"
// discipline SPEC_FULL.md §C calls for.
func (g *GlobalIndices) Rebuild(s *clause.Set) {
	*g = *NewGlobalIndices(g.Units.trueC)
	s.Each(func(c *clause.Clause) bool {
		bundledIndexer{g}.OnInsert(c)
		return true
	})
}
