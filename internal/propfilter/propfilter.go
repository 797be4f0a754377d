// Package propfilter implements a cheap ground-propositional abstraction
// of a clause — ignoring every first-order argument and keeping only the
// shape of its atoms — used strictly as a pre-filter ahead of the real
// unification-based subsumption and tautology checks in internal/rewrite,
// never as a replacement for them: the abstraction can only rule a check
// out, never rule one in.
//
// Grounded on original_source/PROPOSITIONAL/cpr_propsig.c: a bidirectional
// name<->small-integer encoding for propositional atoms (there, whole
// ground atoms; here, argument-stripped atom shapes), with code 0
// reserved to mean "no atom" the way PLiteralNoLit does.
package propfilter

import (
	"fmt"
	"sync"

	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/symtab"
	"github.com/saturnix/eprover-core/internal/term"
)

// PropCode is the encoding of one propositional atom shape. 0 (NoAtom) is
// reserved and never assigned, mirroring cpr_propsig.c's PLiteralNoLit.
type PropCode int32

const NoAtom PropCode = 0

// Signature is a bidirectional name<->code table for propositional atom
// shapes, mirroring cpr_propsig.c's PropSigCell.
type Signature struct {
	mu     sync.RWMutex
	names  []string // index 0 unused, matching PropSigAlloc's sentinel push
	byName map[string]PropCode
}

// NewSignature builds an empty signature.
func NewSignature() *Signature {
	return &Signature{names: []string{""}, byName: map[string]PropCode{}}
}

// Encode returns name's code, assigning a fresh one the first time it is
// seen.
func (s *Signature) Encode(name string) PropCode {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.byName[name]; ok {
		return c
	}
	c := PropCode(len(s.names))
	s.names = append(s.names, name)
	s.byName[name] = c
	return c
}

// Name returns c's name, or "" if c is out of range.
func (s *Signature) Name(c PropCode) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c <= NoAtom || int(c) >= len(s.names) {
		return ""
	}
	return s.names[c]
}

// Size returns the number of distinct atom shapes encoded so far.
func (s *Signature) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.names) - 1
}

// headKey names the head of t: its symbol's name, or a fixed sentinel for
// a variable head. A variable head carries no propositional information,
// so every variable collapses to the same key — this is also this
// package's one soundness caveat: a bare-variable atom or equation side
// (e.g. the atom "X" rather than "p(X)") can change head symbol under
// substitution in a way this abstraction cannot track, since it is built
// before the instantiating substitution is known. That shape is rare
// enough in practice (first-order atoms are almost always predicate
// applications) that it is accepted rather than special-cased.
func headKey(sig *symtab.Bank, t *term.Term) string {
	if t.IsVar {
		return "*"
	}
	if sym := sig.BySymbol(t.Code); sym != nil {
		return sym.Name
	}
	return "?"
}

// AtomKey is the abstraction key of a literal's atom: the predicate
// symbol's name for a plain atom, or the unordered pair of both sides'
// head symbol names for an equation (unordered since "=" is symmetric) —
// every argument underneath those heads is discarded either way.
func AtomKey(sig *symtab.Bank, trueConst *term.Term, l *clause.Literal) string {
	if l.IsEquational(trueConst) {
		a, b := headKey(sig, l.LHS), headKey(sig, l.RHS)
		if a > b {
			a, b = b, a
		}
		return fmt.Sprintf("=(%s,%s)", a, b)
	}
	return headKey(sig, l.LHS)
}

// Abstract encodes every literal of lits into a signed PropCode: positive
// for a positive literal, negated for a negative one. Two literals with
// the same atom key and the same polarity always produce the same signed
// code, regardless of their actual arguments.
func Abstract(sig *Signature, symsig *symtab.Bank, trueConst *term.Term, lits []*clause.Literal) []int32 {
	out := make([]int32, len(lits))
	for i, l := range lits {
		code := int32(sig.Encode(AtomKey(symsig, trueConst, l)))
		if !l.Positive {
			code = -code
		}
		out[i] = code
	}
	return out
}

// CouldBeTautology reports whether lits' abstraction contains some atom
// key with both a positive and a negative occurrence. A syntactic
// tautology of the complementary-pair kind (a clause containing both L
// and ~L) always has this shape in its abstraction, so when this returns
// false no such pair exists; reflexive equations (s = s), which
// internal/rewrite's tautology check also deletes, are not covered. When
// it returns true, the real check still has to run — the abstraction
// cannot confirm a tautology on its own; this is a necessary, not
// sufficient, condition.
func CouldBeTautology(sig *Signature, symsig *symtab.Bank, trueConst *term.Term, lits []*clause.Literal) bool {
	codes := Abstract(sig, symsig, trueConst, lits)
	seen := make(map[int32]bool, len(codes))
	for _, c := range codes {
		if seen[-c] {
			return true
		}
		seen[c] = true
	}
	return false
}

// CouldSubsume reports whether every atom key occurring in sub's
// abstraction also occurs (with the same polarity) somewhere in super's —
// a necessary condition for sub subsuming super under the real
// unification-based check: subsumption maps every literal of sub onto
// some literal of super via one substitution, and that mapping can only
// ever connect literals whose abstractions already agree, so a sub atom
// key absent from super's abstraction rules out subsumption entirely.
// Multiplicities are deliberately not compared (literals of sub with
// different arguments can share one atom key), so this checks set
// containment, a weaker necessary condition than the multiset
// containment subsumption needs.
func CouldSubsume(sig *Signature, symsig *symtab.Bank, trueConst *term.Term, sub, super []*clause.Literal) bool {
	subCodes := Abstract(sig, symsig, trueConst, sub)
	superCodes := Abstract(sig, symsig, trueConst, super)

	superSet := make(map[int32]bool, len(superCodes))
	for _, c := range superCodes {
		superSet[c] = true
	}
	for _, c := range subCodes {
		if !superSet[c] {
			return false
		}
	}
	return true
}
