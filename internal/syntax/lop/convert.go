package lop

import (
	"fmt"

	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/symtab"
	"github.com/saturnix/eprover-core/internal/syntax/tptp"
	"github.com/saturnix/eprover-core/internal/term"
)

// Converter turns parsed LOP clauses into clause.Clause values, sharing
// one signature and term bank with the rest of a run — mirrors
// internal/syntax/tptp.Converter's shape and term-conversion logic
// (duplicated rather than exported from tptp, since tptp.Converter's
// term/literal conversion is a private implementation detail of its own
// CNF/FOF role handling, which does not apply to LOP's head/body sign
// convention).
type Converter struct {
	Sig       *symtab.Bank
	Bank      *term.Bank
	TrueConst *term.Term

	sort *symtab.Sort
	next int
}

func NewConverter(sig *symtab.Bank, bank *term.Bank, trueConst *term.Term) *Converter {
	return &Converter{
		Sig:       sig,
		Bank:      bank,
		TrueConst: trueConst,
		sort:      &symtab.Sort{Kind: symtab.SortIndividual},
	}
}

// Convert builds one clause.Clause per parsed LOP clause, in file order.
// Clauses have no name in LOP source, so idents are assigned
// sequentially ("lop1", "lop2", ...).
func (cv *Converter) Convert(f *File) ([]*clause.Clause, error) {
	out := make([]*clause.Clause, 0, len(f.Clauses))
	for _, pc := range f.Clauses {
		c, err := cv.clause(pc)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (cv *Converter) clause(pc *Clause) (*clause.Clause, error) {
	vars := map[string]*term.Term{}
	var lits []*clause.Literal

	for _, pl := range pc.Head {
		l, err := cv.literal(pl, vars, false)
		if err != nil {
			return nil, err
		}
		lits = append(lits, l)
	}
	for _, pl := range pc.Body {
		l, err := cv.literal(pl, vars, true)
		if err != nil {
			return nil, err
		}
		lits = append(lits, l)
	}

	cv.next++
	return clause.New(fmt.Sprintf("lop%d", cv.next), lits), nil
}

// literal converts one parsed literal; bodyPosition flips its final sign
// relative to its surface form (spec §6.1's "head <- body" convention: a
// body literal is a precondition, so it contributes a negative disjunct).
func (cv *Converter) literal(pl *tptp.Literal, vars map[string]*term.Term, bodyPosition bool) (*clause.Literal, error) {
	lhs, err := cv.term(pl.Atom.LHS, vars)
	if err != nil {
		return nil, err
	}
	surface := !pl.Negated
	positive := surface
	if bodyPosition {
		positive = !surface
	}

	if pl.Atom.Eq != nil {
		rhs, err := cv.term(pl.Atom.Eq.RHS, vars)
		if err != nil {
			return nil, err
		}
		eq := positive
		if pl.Atom.Eq.Op == "!=" {
			eq = !eq
		}
		return clause.NewEquational(lhs, rhs, eq), nil
	}
	return clause.NewAtom(cv.TrueConst, lhs, positive), nil
}

func (cv *Converter) term(t *tptp.Term, vars map[string]*term.Term) (*term.Term, error) {
	switch {
	case t.Var != nil:
		name := *t.Var
		if v, ok := vars[name]; ok {
			return v, nil
		}
		v := cv.Bank.FreshVariable(cv.sort)
		vars[name] = v
		return v, nil
	case t.Number != nil:
		sym, err := cv.Sig.Intern(*t.Number, 0, 0)
		if err != nil {
			return nil, err
		}
		return cv.Bank.InternTerm(sym.Code, nil)
	case t.DistinctObj != nil:
		sym, err := cv.Sig.Intern(*t.DistinctObj, 0, 0)
		if err != nil {
			return nil, err
		}
		return cv.Bank.InternTerm(sym.Code, nil)
	case t.Func != nil:
		args := make([]*term.Term, len(t.Func.Args))
		for i, a := range t.Func.Args {
			at, err := cv.term(a, vars)
			if err != nil {
				return nil, err
			}
			args[i] = at
		}
		sym, err := cv.Sig.Intern(t.Func.Name, len(args), 0)
		if err != nil {
			return nil, err
		}
		return cv.Bank.InternTerm(sym.Code, args)
	}
	return nil, fmt.Errorf("lop: empty term node")
}
