// Package clause implements the equational literal and clause data model
// (spec §2.6, §3, §4.4): clauses as canonically ordered literal lists with
// derivation links, property bitsets, and heuristic evaluation vectors.
//
// Grounded on the teacher's internal/ast (contract.go, expr.go) — a typed,
// property-tagged AST node family with an owning-container discipline —
// generalized from Kanso's contract/function tree to a flat multiset-of-
// literals clause.
package clause

import (
	"github.com/saturnix/eprover-core/internal/symtab"
	"github.com/saturnix/eprover-core/internal/term"
)

// LiteralFlags is the property bitset on a literal (spec §3).
type LiteralFlags uint16

const (
	FlagMaximal LiteralFlags = 1 << iota
	FlagStrictlyMaximal
	FlagOriented // LHS is ordered >= RHS under the active simplification ordering
	FlagSplit
	FlagAnswer
	FlagPseudo
	FlagSelected // selected for paramodulation/resolution, overriding maximality
)

// Literal is an equational literal: an ordered pair of terms with a sign.
// When RHS is the bank's $true constant, the literal is "non-equational"
// (an ordinary atom); otherwise it is a genuine equation (spec §3).
type Literal struct {
	LHS, RHS *term.Term
	Positive bool
	Flags    LiteralFlags
}

// NewEquational builds s = t (or s != t if !positive).
func NewEquational(lhs, rhs *term.Term, positive bool) *Literal {
	return &Literal{LHS: lhs, RHS: rhs, Positive: positive}
}

// NewAtom builds p (or ~p) as a non-equational literal p = $true.
func NewAtom(trueConst, atom *term.Term, positive bool) *Literal {
	return &Literal{LHS: atom, RHS: trueConst, Positive: positive}
}

// IsEquational reports whether this literal is a genuine equation, i.e.
// RHS is not the designated $true constant.
func (l *Literal) IsEquational(trueConst *term.Term) bool {
	return l.RHS != trueConst
}

func (l *Literal) Is(f LiteralFlags) bool { return l.Flags&f != 0 }
func (l *Literal) SetFlag(f LiteralFlags) { l.Flags |= f }
func (l *Literal) ClearFlag(f LiteralFlags) { l.Flags &^= f }

// Terms returns both sides, for callers that want to iterate without
// caring about orientation.
func (l *Literal) Terms() [2]*term.Term { return [2]*term.Term{l.LHS, l.RHS} }

// Complementary reports whether l and other are syntactically
// complementary equational literals (l = s=t positive, other = s=t
// negative or vice versa) under pointer identity of their sides. Used by
// tautology deletion and equality resolution eligibility checks.
func (l *Literal) Complementary(other *Literal) bool {
	if l.Positive == other.Positive {
		return false
	}
	return (l.LHS == other.LHS && l.RHS == other.RHS) ||
		(l.LHS == other.RHS && l.RHS == other.LHS)
}

// String renders the literal for diagnostics/printing (see
// internal/syntax for the real TPTP pretty-printer). A non-equational
// literal prints as its atom, prefixed by "~" when negative.
func (l *Literal) String() string {
	if !l.RHS.IsVar && l.RHS.Code == symtab.CodeTrue {
		if l.Positive {
			return l.LHS.String()
		}
		return "~" + l.LHS.String()
	}
	op := "="
	if !l.Positive {
		op = "!="
	}
	return l.LHS.String() + op + l.RHS.String()
}
