package loop

import (
	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/index"
	"github.com/saturnix/eprover-core/internal/infer"
	"github.com/saturnix/eprover-core/internal/rewrite"
	"github.com/saturnix/eprover-core/internal/satlog"
	"github.com/saturnix/eprover-core/internal/term"
)

var log = satlog.For("loop")

// Status names why Run stopped (spec §4.9 loop termination conditions).
type Status string

const (
	StatusUnsatisfiable Status = "unsatisfiable"
	StatusSatisfiable   Status = "satisfiable"
	StatusInterrupted   Status = "interrupted"
	StatusResourceOut   Status = "resource_out"
)

// Result is Run's outcome (spec §4.10 feeds off Empty when Status is
// StatusUnsatisfiable).
type Result struct {
	Status Status
	Empty  *clause.Clause
	Steps  int
}

// Run drives the given-clause loop until unprocessed is exhausted, the
// empty clause is derived, the interrupt flag is set, or maxSteps
// selections have happened (0 means unlimited) (spec §4.9 "Loop").
func Run(s *State, maxSteps int) Result {
	for {
		if s.Interrupted() {
			log.Debugf("interrupted at step %d", s.Step)
			return Result{Status: StatusInterrupted, Steps: s.Step}
		}
		if maxSteps > 0 && s.Step >= maxSteps {
			return Result{Status: StatusResourceOut, Steps: s.Step}
		}

		given, ok := s.HCB.Select()
		if !ok {
			return Result{Status: StatusSatisfiable, Steps: s.Step}
		}
		s.Unprocessed.Remove(given)
		s.Step++

		given, kept := s.forwardSimplify(given)
		if !kept {
			continue
		}
		if given.IsEmpty() {
			log.Infof("empty clause derived at step %d: %s", s.Step, given.Ident)
			return Result{Status: StatusUnsatisfiable, Empty: given, Steps: s.Step}
		}

		s.backSimplify(given)
		s.insertProcessed(given)

		for _, child := range s.generate(given) {
			if rewrite.IsTautology(child) {
				continue
			}
			s.addUnprocessed(child)
		}
	}
}

// forwardSimplify applies spec §4.9 step 2 to given: normal-form
// rewriting, subsumption (discard if subsumed), contextual
// simplify-reflect, tautology deletion, destructive equality resolution.
// Returns (clause, false) if given was discarded as redundant.
func (s *State) forwardSimplify(given *clause.Clause) (*clause.Clause, bool) {
	rewrite.NormalizeClause(s.Bank, s.Ord, s.Indices.Units, given)

	processed := s.processedSlice()
	if rewrite.AnySubsumes(s.Bank, s.subsumerCandidates(given, processed), given) {
		return nil, false
	}

	given, _ = rewrite.ContextualSimplifyReflect(s.Bank, processed, given)
	if rewrite.IsTautology(given) {
		return nil, false
	}

	given = s.destructiveEqRes(given)
	if rewrite.IsTautology(given) {
		return nil, false
	}
	return given, true
}

// destructiveEqRes repeatedly eliminates negative literals whose sides
// unify — spec §4.9 forward-simplify step 2's "destructive equality
// resolution" (the unqualified, general form; initialisation step 1's
// narrower "pure-variable inequalities" case is the subset where both
// sides happen to be variables). Reuses infer.EqualityResolution, so the
// same maximality restriction that keeps the generating rule complete
// also gates this simplifying use of it.
func (s *State) destructiveEqRes(c *clause.Clause) *clause.Clause {
	for {
		applied := false
		for i, l := range c.Literals {
			if l.Positive {
				continue
			}
			if next, ok := infer.EqualityResolution(s.Bank, s.Ord, c.Ident, c, i); ok {
				c = next
				applied = true
				break
			}
		}
		if !applied {
			return c
		}
	}
}

// backSimplify finds processed clauses given subsumes, rewrites, or
// simplify-reflects, and removes or re-simplifies them (spec §4.9 step 4).
func (s *State) backSimplify(given *clause.Clause) {
	var demod *index.UnitIndex
	var demodTargets map[string]bool
	if isPositiveUnit(given, s.TrueConst) {
		demod = index.NewUnitIndex(s.TrueConst)
		demod.OnInsert(given)
		demodTargets = make(map[string]bool)
		s.Indices.Subterm.FindMatchableSubterms(given.Literals[0].LHS, func(p index.Payload) {
			demodTargets[p.ClauseIdent] = true
		})
	}

	subsumeSets := []map[string]bool{
		identSet(s.Indices.Features.CandidatesThatMayBeSubsumedBy(index.ComputeFeatures(given))),
	}
	if bySymbol, ok := s.Indices.Symbols.SymbolOverlapCandidates(given); ok {
		subsumeSets = append(subsumeSets, bySymbol)
	}

	for _, p := range s.processedSlice() {
		if p == given {
			continue
		}
		if inAllSets(p.Ident, subsumeSets) {
			if ok, _ := rewrite.Subsumes(s.Bank, given, p); ok {
				s.removeProcessed(p)
				continue
			}
		}
		if demod != nil && demodTargets[p.Ident] && rewrite.NormalizeClause(s.Bank, s.Ord, demod, p) {
			s.removeProcessed(p)
			s.addUnprocessed(p)
			continue
		}
		if simplified, changed := rewrite.ContextualSimplifyReflect(s.Bank, []*clause.Clause{given}, p); changed {
			s.removeProcessed(p)
			s.addUnprocessed(simplified)
		}
	}
}

// subsumerCandidates narrows processed to clauses that could possibly
// subsume given: sharing a function symbol with it (FunctionSymbolIndex,
// the coarse membership filter of spec §4.4) and whose feature vector is
// componentwise <= given's (FeatureVectorIndex, spec §4.5.2's
// "Feature-vector necessity"). Both are necessary, not sufficient,
// conditions for subsumption, so intersecting them only drops candidates
// rewrite.AnySubsumes would itself have rejected — never a true subsumer
// — while letting it skip the real unification attempt entirely for
// everything else.
func (s *State) subsumerCandidates(given *clause.Clause, processed []*clause.Clause) []*clause.Clause {
	sets := []map[string]bool{
		identSet(s.Indices.Features.CandidatesThatMaySubsume(index.ComputeFeatures(given))),
	}
	if bySymbol, ok := s.Indices.Symbols.SymbolOverlapCandidates(given); ok {
		sets = append(sets, bySymbol)
	}
	return filterByIdents(processed, sets...)
}

func identSet(idents []string) map[string]bool {
	out := make(map[string]bool, len(idents))
	for _, id := range idents {
		out[id] = true
	}
	return out
}

func inAllSets(ident string, sets []map[string]bool) bool {
	for _, set := range sets {
		if !set[ident] {
			return false
		}
	}
	return true
}

func filterByIdents(clauses []*clause.Clause, sets ...map[string]bool) []*clause.Clause {
	out := make([]*clause.Clause, 0, len(clauses))
	for _, c := range clauses {
		if inAllSets(c.Ident, sets) {
			out = append(out, c)
		}
	}
	return out
}

// generate produces every child of given: paramodulants with eligible
// processed clauses in both directions (given already filed into
// processed by the time generate runs, so self-superposition is included
// the same way the source system treats the given clause as a member of
// its own eligible set), equality factors, and equality resolvents
// (spec §4.9 step 6).
func (s *State) generate(given *clause.Clause) []*clause.Clause {
	var out []*clause.Clause

	for i, l := range given.Literals {
		if l.Positive {
			continue
		}
		if c, ok := infer.EqualityResolution(s.Bank, s.Ord, s.nextIdent(), given, i); ok {
			out = append(out, c)
		}
	}

	for i, li := range given.Literals {
		if !li.Positive {
			continue
		}
		for j, lj := range given.Literals {
			if i == j || !lj.Positive {
				continue
			}
			if c, ok := infer.EqualityFactoring(s.Bank, s.Ord, s.nextIdent(), given, i, j); ok {
				out = append(out, c)
			}
		}
	}

	out = append(out, s.superposeFromGiven(given)...)
	out = append(out, s.superposeIntoGiven(given)...)
	return out
}

// superposeFromGiven finds processed subterms unifiable with either side
// of one of given's positive equations, and superposes given (as source)
// into each match.
func (s *State) superposeFromGiven(given *clause.Clause) []*clause.Clause {
	var out []*clause.Clause
	for li, l := range given.Literals {
		if !l.Positive {
			continue
		}
		sides := [2]*term.Term{l.LHS, l.RHS}
		for side, t := range sides {
			s.Indices.Overlap.FindIntoCandidates(t, func(p index.Payload) {
				into := s.Lookup(p.ClauseIdent)
				if into == nil {
					return
				}
				if c, ok := infer.Superposition(s.Bank, s.Ord, s.nextIdent(), given, li, side, into, p.LiteralIdx, p.Side, p.Path); ok {
					out = append(out, c)
				}
			})
		}
	}
	return out
}

// superposeIntoGiven finds processed positive-equation sides unifiable
// with one of given's subterms, and superposes each (as source) into
// given.
func (s *State) superposeIntoGiven(given *clause.Clause) []*clause.Clause {
	var out []*clause.Clause
	for li, l := range given.Literals {
		sides := [2]*term.Term{l.LHS, l.RHS}
		for side, t := range sides {
			walkSubterms(t, nil, func(sub *term.Term, path []int) {
				s.Indices.Overlap.FindFromCandidates(sub, func(p index.Payload) {
					from := s.Lookup(p.ClauseIdent)
					if from == nil {
						return
					}
					if c, ok := infer.Superposition(s.Bank, s.Ord, s.nextIdent(), from, p.LiteralIdx, p.Side, given, li, side, path); ok {
						out = append(out, c)
					}
				})
			})
		}
	}
	return out
}

// walkSubterms visits every non-variable subterm of t (including t
// itself when non-variable), reporting each one's path from t's root.
// Mirrors internal/index's own subterm walk (kept private there), since
// loop needs the same traversal to drive "superpose into given" queries.
func walkSubterms(t *term.Term, path []int, visit func(sub *term.Term, path []int)) {
	if t.IsVar {
		return
	}
	visit(t, path)
	for i, a := range t.Args {
		walkSubterms(a, append(append([]int{}, path...), i), visit)
	}
}
