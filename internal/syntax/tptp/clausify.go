package tptp

import (
	"fmt"

	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/term"
)

// formula is a minimal first-order formula tree used only internally, as
// the intermediate representation between a parsed FOF AST and the flat
// CNF clause list the saturation engine consumes.
//
// No original_source clausifier file was retrieved alongside this system
// (original_source/ covers CLAUSES/PCL2/PROPOSITIONAL/ANALYSIS/LEARN, none
// of which implement FOF-to-CNF translation), and the translation itself
// is pure first-order-logic algorithm rather than a concern any example
// repo's third-party dependency addresses — see DESIGN.md for why this
// one piece is plain textbook logic (NNF, then Skolemization, then CNF
// distribution) rather than grounded on a specific corpus file.
type foKind int

const (
	fAtom foKind = iota
	fNot
	fAnd
	fOr
	fForall
	fExists
)

type formula struct {
	kind foKind

	// fAtom
	lhs, rhs *term.Term
	positive bool

	// fAnd / fOr
	ops []*formula

	// fNot
	inner *formula

	// fForall / fExists
	qvars []*term.Term
	body  *formula
}

func fNot1(f *formula) *formula       { return &formula{kind: fNot, inner: f} }
func fAnd2(a, b *formula) *formula    { return &formula{kind: fAnd, ops: []*formula{a, b}} }
func fOr2(a, b *formula) *formula     { return &formula{kind: fOr, ops: []*formula{a, b}} }

// buildFormula translates a parsed FOFFormula into a formula tree,
// eliminating every binary connective down to And/Or/Not so the later NNF
// pass only has to handle those three plus the quantifiers.
func (cv *Converter) buildFormula(f *FOFFormula, vars map[string]*term.Term) (*formula, error) {
	left, err := cv.buildOr(f.Left, vars)
	if err != nil {
		return nil, err
	}
	if f.Tail == nil {
		return left, nil
	}
	right, err := cv.buildOr(f.Tail.Right, vars)
	if err != nil {
		return nil, err
	}
	switch f.Tail.Op {
	case "=>":
		return fOr2(fNot1(left), right), nil
	case "<=":
		return fOr2(left, fNot1(right)), nil
	case "<=>":
		return fAnd2(fOr2(fNot1(left), right), fOr2(fNot1(right), left)), nil
	case "<~>":
		return fNot1(fAnd2(fOr2(fNot1(left), right), fOr2(fNot1(right), left))), nil
	case "~|":
		return fNot1(fOr2(left, right)), nil
	case "~&":
		return fNot1(fAnd2(left, right)), nil
	}
	return nil, fmt.Errorf("tptp: unknown fof connective %q", f.Tail.Op)
}

func (cv *Converter) buildOr(f *FOFOrFormula, vars map[string]*term.Term) (*formula, error) {
	ops := make([]*formula, len(f.Operands))
	for i, a := range f.Operands {
		o, err := cv.buildAnd(a, vars)
		if err != nil {
			return nil, err
		}
		ops[i] = o
	}
	if len(ops) == 1 {
		return ops[0], nil
	}
	return &formula{kind: fOr, ops: ops}, nil
}

func (cv *Converter) buildAnd(f *FOFAndFormula, vars map[string]*term.Term) (*formula, error) {
	ops := make([]*formula, len(f.Operands))
	for i, u := range f.Operands {
		o, err := cv.buildUnitary(u, vars)
		if err != nil {
			return nil, err
		}
		ops[i] = o
	}
	if len(ops) == 1 {
		return ops[0], nil
	}
	return &formula{kind: fAnd, ops: ops}, nil
}

func (cv *Converter) buildUnitary(u *FOFUnitary, vars map[string]*term.Term) (*formula, error) {
	switch {
	case u.Quant != nil:
		return cv.buildQuantified(u.Quant, vars)
	case u.Negated != nil:
		inner, err := cv.buildUnitary(u.Negated, vars)
		if err != nil {
			return nil, err
		}
		return fNot1(inner), nil
	case u.Paren != nil:
		return cv.buildFormula(u.Paren, vars)
	case u.Atom != nil:
		return cv.buildAtomFormula(u.Atom, vars)
	}
	return nil, fmt.Errorf("tptp: empty fof formula node")
}

func (cv *Converter) buildQuantified(q *FOFQuantified, vars map[string]*term.Term) (*formula, error) {
	child := make(map[string]*term.Term, len(vars)+len(q.Vars))
	for k, v := range vars {
		child[k] = v
	}
	bound := make([]*term.Term, len(q.Vars))
	for i, name := range q.Vars {
		v := cv.Bank.FreshVariable(cv.sort)
		child[name] = v
		bound[i] = v
	}
	body, err := cv.buildUnitary(q.Body, child)
	if err != nil {
		return nil, err
	}
	kind := fForall
	if q.Quantifier == "?" {
		kind = fExists
	}
	return &formula{kind: kind, qvars: bound, body: body}, nil
}

func (cv *Converter) buildAtomFormula(a *Atom, vars map[string]*term.Term) (*formula, error) {
	lhs, err := cv.term(a.LHS, vars)
	if err != nil {
		return nil, err
	}
	if a.Eq != nil {
		rhs, err := cv.term(a.Eq.RHS, vars)
		if err != nil {
			return nil, err
		}
		return &formula{kind: fAtom, lhs: lhs, rhs: rhs, positive: a.Eq.Op != "!="}, nil
	}
	return &formula{kind: fAtom, lhs: lhs, rhs: cv.TrueConst, positive: true}, nil
}

// nnf pushes negation down to the atoms (De Morgan plus quantifier
// duality); neg tracks whether the enclosing context has flipped polarity.
func nnf(f *formula, neg bool) *formula {
	switch f.kind {
	case fAtom:
		positive := f.positive
		if neg {
			positive = !positive
		}
		return &formula{kind: fAtom, lhs: f.lhs, rhs: f.rhs, positive: positive}
	case fNot:
		return nnf(f.inner, !neg)
	case fAnd, fOr:
		kind := f.kind
		if neg {
			if kind == fAnd {
				kind = fOr
			} else {
				kind = fAnd
			}
		}
		ops := make([]*formula, len(f.ops))
		for i, o := range f.ops {
			ops[i] = nnf(o, neg)
		}
		return &formula{kind: kind, ops: ops}
	case fForall, fExists:
		kind := f.kind
		if neg {
			if kind == fForall {
				kind = fExists
			} else {
				kind = fForall
			}
		}
		return &formula{kind: kind, qvars: f.qvars, body: nnf(f.body, neg)}
	}
	panic("tptp: unreachable formula kind in nnf")
}

// skolemize removes every quantifier from an NNF formula: universal
// variables are carried forward as Skolem-function arguments, existential
// variables are replaced throughout their scope by a fresh Skolem term
// over the enclosing universals (spec §3 "Skolem-introduced" flag is set
// on the fresh symbol via symtab.Bank.FreshSkolem).
func (cv *Converter) skolemize(f *formula, univ []*term.Term) *formula {
	switch f.kind {
	case fAtom:
		return f
	case fAnd, fOr:
		ops := make([]*formula, len(f.ops))
		for i, o := range f.ops {
			ops[i] = cv.skolemize(o, univ)
		}
		return &formula{kind: f.kind, ops: ops}
	case fForall:
		nextUniv := make([]*term.Term, 0, len(univ)+len(f.qvars))
		nextUniv = append(nextUniv, univ...)
		nextUniv = append(nextUniv, f.qvars...)
		return cv.skolemize(f.body, nextUniv)
	case fExists:
		body := f.body
		for _, v := range f.qvars {
			sym := cv.Sig.FreshSkolem(len(univ))
			skTerm := cv.Bank.MustIntern(sym.Code, univ)
			body = substFormula(cv.Bank, body, v, skTerm)
		}
		return cv.skolemize(body, univ)
	}
	panic("tptp: unreachable formula kind in skolemize")
}

func substFormula(bank *term.Bank, f *formula, old, new *term.Term) *formula {
	switch f.kind {
	case fAtom:
		return &formula{
			kind:     fAtom,
			lhs:      substTerm(bank, f.lhs, old, new),
			rhs:      substTerm(bank, f.rhs, old, new),
			positive: f.positive,
		}
	case fAnd, fOr:
		ops := make([]*formula, len(f.ops))
		for i, o := range f.ops {
			ops[i] = substFormula(bank, o, old, new)
		}
		return &formula{kind: f.kind, ops: ops}
	case fForall, fExists:
		return &formula{kind: f.kind, qvars: f.qvars, body: substFormula(bank, f.body, old, new)}
	}
	panic("tptp: unreachable formula kind in substFormula")
}

func substTerm(bank *term.Bank, t, old, new *term.Term) *term.Term {
	if t == old {
		return new
	}
	if t.IsVar || len(t.Args) == 0 {
		return t
	}
	changed := false
	args := make([]*term.Term, len(t.Args))
	for i, a := range t.Args {
		na := substTerm(bank, a, old, new)
		args[i] = na
		if na != a {
			changed = true
		}
	}
	if !changed {
		return t
	}
	return bank.MustIntern(t.Code, args)
}

// toCNF distributes a quantifier-free NNF formula into a flat list of
// clauses (each a literal list); Or distributes over And by cross-join.
func toCNF(f *formula) [][]*clause.Literal {
	switch f.kind {
	case fAtom:
		return [][]*clause.Literal{{&clause.Literal{LHS: f.lhs, RHS: f.rhs, Positive: f.positive}}}
	case fAnd:
		var out [][]*clause.Literal
		for _, o := range f.ops {
			out = append(out, toCNF(o)...)
		}
		return out
	case fOr:
		result := toCNF(f.ops[0])
		for _, o := range f.ops[1:] {
			result = crossJoin(result, toCNF(o))
		}
		return result
	}
	panic("tptp: unreachable formula kind in toCNF")
}

func crossJoin(a, b [][]*clause.Literal) [][]*clause.Literal {
	out := make([][]*clause.Literal, 0, len(a)*len(b))
	for _, ca := range a {
		for _, cb := range b {
			merged := make([]*clause.Literal, 0, len(ca)+len(cb))
			merged = append(merged, ca...)
			merged = append(merged, cb...)
			out = append(out, merged)
		}
	}
	return out
}

func (cv *Converter) convertFOF(in *FOFInput) (*Unit, error) {
	raw, err := cv.buildFormula(in.Formula, map[string]*term.Term{})
	if err != nil {
		return nil, fmt.Errorf("fof(%s): %w", in.Name, err)
	}

	role := Role(in.Role)
	if role == RoleConjecture {
		raw = fNot1(raw)
		role = RoleNegatedConjecture
	}

	sk := cv.skolemize(nnf(raw, false), nil)
	lits := toCNF(sk)

	clauses := make([]*clause.Clause, len(lits))
	for i, ls := range lits {
		ident := in.Name
		if len(lits) > 1 {
			ident = fmt.Sprintf("%s_%d", in.Name, i+1)
		}
		c := clause.New(ident, ls)
		if role == RoleNegatedConjecture {
			c.SetFlag(clause.FlagConjectureDescendant)
		}
		clauses[i] = c
	}
	return &Unit{Name: in.Name, Role: role, Clauses: clauses}, nil
}
