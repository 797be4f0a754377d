// Package loop implements the given-clause (DISCOUNT-variant) saturation
// main loop: four clause sets plus the shared term bank, ordering,
// signature, heuristic control block and global indices (spec §3, §4.9).
//
// Grounded on the teacher's internal/semantic analyzer driver (the one
// component of the teacher that owns a central "process one unit, derive
// its consequences, feed them back" control loop over a shared symbol
// table and diagnostic sink) — generalized here from one-pass semantic
// analysis to an open-ended given-clause refutation search.
package loop

import (
	"sync/atomic"

	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/heuristic"
	"github.com/saturnix/eprover-core/internal/index"
	"github.com/saturnix/eprover-core/internal/order"
	"github.com/saturnix/eprover-core/internal/rewrite"
	"github.com/saturnix/eprover-core/internal/satcore/idgen"
	"github.com/saturnix/eprover-core/internal/symtab"
	"github.com/saturnix/eprover-core/internal/term"
)

// State is the saturation state of spec §4.9: "Four sets plus indices:
// axioms, unprocessed, processed_pos, processed_neg_non_units. An
// optional watchlist. A global term bank, ordering, signature, heuristic,
// and proof index. A step counter."
type State struct {
	Bank *term.Bank
	Sig  *symtab.Bank
	Ord  *order.Ordering
	HCB  *heuristic.HCB

	Indices *index.GlobalIndices

	Axioms               *clause.Set
	Unprocessed          *clause.Set
	ProcessedPos         *clause.Set // positive unit equations, used as demodulators
	ProcessedNegNonUnits *clause.Set // everything else
	Watchlist            *clause.Set // optional; nil if unused

	TrueConst *term.Term

	Step int

	ids     idgen.Generator
	byIdent map[string]*clause.Clause

	interrupted atomic.Bool
}

// NewState builds an empty saturation state wired to a single shared
// GlobalIndices bundle: both processed subsets attach it as one
// clause.Indexer, so simplification candidates are drawn from the whole
// processed set regardless of which subset a clause lives in (spec §4.9
// "only the processed set participates in simplification").
func NewState(bank *term.Bank, sig *symtab.Bank, ord *order.Ordering, hcb *heuristic.HCB, trueConst *term.Term) *State {
	s := &State{
		Bank:                 bank,
		Sig:                  sig,
		Ord:                  ord,
		HCB:                  hcb,
		Indices:              index.NewGlobalIndices(trueConst),
		Axioms:               clause.NewSet("axioms"),
		Unprocessed:          clause.NewSet("unprocessed"),
		ProcessedPos:         clause.NewSet("processed_pos"),
		ProcessedNegNonUnits: clause.NewSet("processed_neg_non_units"),
		TrueConst:            trueConst,
		ids:                  idgen.NewGenerator(),
		byIdent:              make(map[string]*clause.Clause),
	}
	s.ProcessedPos.AttachIndexer(s.Indices.AsIndexer())
	s.ProcessedNegNonUnits.AttachIndexer(s.Indices.AsIndexer())
	return s
}

// EnableWatchlist attaches an (initially empty) watchlist set — clauses
// the caller wants recognised when derived (spec §4.9 "optional
// watchlist").
func (s *State) EnableWatchlist() { s.Watchlist = clause.NewSet("watchlist") }

func (s *State) register(c *clause.Clause) { s.byIdent[c.Ident] = c }

// Lookup resolves an index query's ClauseIdent back to its clause, for
// turning index payloads into concrete inference arguments.
func (s *State) Lookup(ident string) *clause.Clause { return s.byIdent[ident] }

func (s *State) nextIdent() string { return s.ids.Next() }

// AddAxiom registers c as an input clause, not yet scheduled (spec §4.9
// initialisation step 3 runs separately, via Init).
func (s *State) AddAxiom(c *clause.Clause) {
	s.Axioms.Insert(c)
	s.register(c)
}

// Init moves every axiom into unprocessed with a freshly computed
// evaluation vector (spec §4.9 initialisation step 3). Axioms is left
// empty.
func (s *State) Init() {
	for _, c := range s.Axioms.Slice() {
		s.Axioms.Remove(c)
		c.SetFlag(clause.FlagInitial)
		s.addUnprocessed(c)
	}
}

// InitWithRelevance is Init, but schedules axioms in ascending
// relevance-score order first (spec §6.3 "SInE relevance filtering"; see
// SortAxiomsByRelevance). Axioms with equal relevance (an absent score
// counts as 0) are ordered by clause ident.
func (s *State) InitWithRelevance(rel RelevanceVector) {
	axioms := s.Axioms.Slice()
	SortAxiomsByRelevance(s.Sig, rel, axioms)
	for _, c := range axioms {
		s.Axioms.Remove(c)
		c.SetFlag(clause.FlagInitial)
		s.addUnprocessed(c)
	}
}

// addUnprocessed evaluates c against the HCB and inserts it into
// unprocessed (spec §4.9 step 8 "Evaluate... insert into unprocessed").
func (s *State) addUnprocessed(c *clause.Clause) {
	s.HCB.Insert(c)
	s.Unprocessed.Insert(c)
	s.register(c)
}

// isPositiveUnit reports whether c is a one-literal positive equation,
// the processed_pos / demodulator criterion of spec §4.9.
func isPositiveUnit(c *clause.Clause, trueConst *term.Term) bool {
	return c.IsUnitEquation(trueConst) && c.Literals[0].Positive
}

// insertProcessed files c into the appropriate processed subset and
// updates indices (spec §4.9 step 5), orienting it first if it is a unit
// equation so it is immediately usable as a demodulator.
func (s *State) insertProcessed(c *clause.Clause) {
	if len(c.Literals) == 1 {
		rewrite.OrientUnitClause(s.Ord, c)
	}
	c.SetFlag(clause.FlagProcessed)
	if isPositiveUnit(c, s.TrueConst) {
		s.ProcessedPos.InsertIndexed(c)
	} else {
		s.ProcessedNegNonUnits.InsertIndexed(c)
	}
	s.register(c)
}

// removeProcessed unlinks c from whichever processed subset currently
// owns it and updates indices (spec §4.9 step 4 "remove them from
// processed, and from indices").
func (s *State) removeProcessed(c *clause.Clause) {
	if set := c.Set(); set != nil {
		set.RemoveIndexed(c)
	}
	c.ClearFlag(clause.FlagProcessed)
}

// processedSlice snapshots every clause in either processed subset, the
// candidate pool for forward/back simplification (spec §4.9 "only the
// processed set participates in simplification").
func (s *State) processedSlice() []*clause.Clause {
	out := s.ProcessedPos.Slice()
	out = append(out, s.ProcessedNegNonUnits.Slice()...)
	return out
}

// Interrupt sets the cooperative interrupt flag (spec §4.9 "Cancellation
// and timeouts"). Safe to call from a signal handler or timer goroutine
// concurrently with Run.
func (s *State) Interrupt() { s.interrupted.Store(true) }

// Interrupted reports whether Interrupt has been called.
func (s *State) Interrupted() bool { return s.interrupted.Load() }
