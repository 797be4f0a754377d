// Package term implements the perfectly shared, hash-consed term DAG
// (spec §2.3, §4.1): a Bank owns every Term node; structural identity
// implies pointer identity within a bank.
//
// Per the Design Notes (spec §9 "Shared DAG with mutable binding slots on
// variables"), term nodes here are immutable once interned. Variable
// instantiation during unification/matching is modeled externally by the
// subst package's watermarked binding stack, not by a mutable field on
// the Term itself — this is the reimplementation strategy the spec
// recommends in place of the source system's mutable binding slot.
//
// Grounded on the teacher's internal/ir package (internal/ir/types.go,
// internal/ir/builder.go), which builds a shared, typed instruction/value
// graph with cached derived properties; generalized here from an SSA-style
// value graph to a hash-consed first-order term DAG.
package term

import (
	"fmt"

	"github.com/saturnix/eprover-core/internal/symtab"
)

// TermFlags is the property bitset carried by every term node (spec §3).
type TermFlags uint16

const (
	FlagRewritten TermFlags = 1 << iota
	FlagRestrictedRewritable
	FlagMaximal
	FlagInSoS
	FlagGround // no variables anywhere in the term; cached for fast checks
)

// Term is one node of the shared DAG. Variables are distinguished by
// IsVar; a variable node has no Args and Code is meaningless for it.
type Term struct {
	bank *Bank

	IsVar bool
	Code  symtab.Code // valid iff !IsVar
	VarID int32       // valid iff IsVar: opaque per-bank index, keyed with Sort

	Args []*Term
	Sort *symtab.Sort

	weight   int
	varCount int
	funCount int
	flags    TermFlags
}

// Bank returns the owning bank.
func (t *Term) Bank() *Bank { return t.bank }

// Weight is the cached structural weight (symbol-count weight, spec
// §3 "cached structural weight"). Ordering-specific weight functions
// (internal/order) compute their own KBO weight separately; this is the
// generic size used by heuristics that want "how big is this term" without
// consulting an ordering.
func (t *Term) Weight() int { return t.weight }

// VarCount / FunCount are the cached variable and function-symbol counts.
func (t *Term) VarCount() int { return t.varCount }
func (t *Term) FunCount() int { return t.funCount }

func (t *Term) Is(f TermFlags) bool { return t.flags&f != 0 }

// WithFlag returns a flags value with f set; since terms are immutable,
// flags that vary per occurrence (maximal, rewritten) are tracked by the
// caller (clause literal, rewrite cache) rather than mutated in place,
// except via Bank.setFlags during interning/rewrite-link bookkeeping.
func (t *Term) Flags() TermFlags { return t.flags }

func (t *Term) Arity() int {
	if t.IsVar {
		return 0
	}
	return len(t.Args)
}

func (t *Term) String() string {
	if t.IsVar {
		return fmt.Sprintf("X%d", t.VarID)
	}
	sym := t.bank.sig.BySymbol(t.Code)
	name := "?"
	if sym != nil {
		name = sym.Name
	}
	if len(t.Args) == 0 {
		return name
	}
	s := name + "("
	for i, a := range t.Args {
		if i > 0 {
			s += ","
		}
		s += a.String()
	}
	return s + ")"
}

// Equal is pointer identity, which the hash-consing invariant makes
// equivalent to structural equality within one bank (spec §8 "Perfect
// sharing").
func (t *Term) Equal(other *Term) bool { return t == other }
