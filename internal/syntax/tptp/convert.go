package tptp

import (
	"fmt"

	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/symtab"
	"github.com/saturnix/eprover-core/internal/term"
)

// Role is a TPTP annotated-formula role (spec §6.1 "roles include axiom,
// conjecture, negated_conjecture").
type Role string

const (
	RoleAxiom             Role = "axiom"
	RoleHypothesis        Role = "hypothesis"
	RoleDefinition        Role = "definition"
	RoleLemma             Role = "lemma"
	RoleTheorem           Role = "theorem"
	RoleAssumption        Role = "assumption"
	RolePlain             Role = "plain"
	RoleConjecture        Role = "conjecture"
	RoleNegatedConjecture Role = "negated_conjecture"
)

// Unit is one TPTP annotated formula after conversion. A conjecture-role
// formula is negated during conversion (so the saturation engine always
// works from axioms-plus-negated-goal), which is why it may expand to
// more than one clause: negating an n-literal CNF clause or a non-trivial
// FOF formula produces a conjunction, not a single clause.
type Unit struct {
	Name    string
	Role    Role
	Clauses []*clause.Clause
}

// Converter turns parsed TPTP AST nodes into clause.Clause values sharing
// one signature and term bank (spec §6.1/§6.2's textual <-> internal
// bridge). All Sig/Bank/TrueConst must match what the caller's
// loop.State was built from.
type Converter struct {
	Sig       *symtab.Bank
	Bank      *term.Bank
	TrueConst *term.Term

	sort *symtab.Sort
}

// NewConverter builds a Converter with a private individual sort shared
// by every variable it introduces.
func NewConverter(sig *symtab.Bank, bank *term.Bank, trueConst *term.Term) *Converter {
	return &Converter{
		Sig:       sig,
		Bank:      bank,
		TrueConst: trueConst,
		sort:      &symtab.Sort{Kind: symtab.SortIndividual},
	}
}

// Convert walks f's statements (Include directives are accepted
// syntactically but produce no Unit) and produces
// one Unit per cnf/fof annotated formula, in file order.
func (cv *Converter) Convert(f *File) ([]*Unit, error) {
	var units []*Unit
	for _, st := range f.Statements {
		switch {
		case st.CNF != nil:
			u, err := cv.convertCNF(st.CNF)
			if err != nil {
				return nil, err
			}
			units = append(units, u)
		case st.FOF != nil:
			u, err := cv.convertFOF(st.FOF)
			if err != nil {
				return nil, err
			}
			units = append(units, u)
		}
	}
	return units, nil
}

func (cv *Converter) convertCNF(in *CNFInput) (*Unit, error) {
	list := in.Clause.Unparened
	if in.Clause.Paren != nil {
		list = in.Clause.Paren
	}
	vars := map[string]*term.Term{}
	lits := make([]*clause.Literal, 0, len(list.Literals))
	for _, pl := range list.Literals {
		l, err := cv.literal(pl, vars)
		if err != nil {
			return nil, fmt.Errorf("cnf(%s): %w", in.Name, err)
		}
		lits = append(lits, l)
	}

	role := Role(in.Role)
	c := clause.New(in.Name, lits)
	if role == RoleConjecture {
		return &Unit{Name: in.Name, Role: RoleNegatedConjecture, Clauses: cv.negateClauseAsConjecture(c)}, nil
	}
	return &Unit{Name: in.Name, Role: role, Clauses: []*clause.Clause{c}}, nil
}

// negateClauseAsConjecture turns a conjecture clause L1 | ... | Ln into
// its negation ~L1 & ... & ~Ln, expressed as n unit clauses (De Morgan
// over a disjunction distributes straight into a conjunction of units, so
// no general clausification is needed here).
func (cv *Converter) negateClauseAsConjecture(c *clause.Clause) []*clause.Clause {
	out := make([]*clause.Clause, len(c.Literals))
	for i, l := range c.Literals {
		neg := &clause.Literal{LHS: l.LHS, RHS: l.RHS, Positive: !l.Positive}
		ident := c.Ident
		if len(c.Literals) > 1 {
			ident = fmt.Sprintf("%s_%d", c.Ident, i+1)
		}
		nc := clause.New(ident, []*clause.Literal{neg})
		nc.SetFlag(clause.FlagConjectureDescendant)
		out[i] = nc
	}
	return out
}

func (cv *Converter) literal(pl *Literal, vars map[string]*term.Term) (*clause.Literal, error) {
	lhs, err := cv.term(pl.Atom.LHS, vars)
	if err != nil {
		return nil, err
	}
	positive := !pl.Negated
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

func (cv *Converter) term(t *Term, vars map[string]*term.Term) (*term.Term, error) {
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
		// No arithmetic decision procedure is implemented (out of scope);
		// a numeral is just an uninterpreted nullary constant.
		sym, err := cv.Sig.Intern(*t.Number, 0, 0)
		if err != nil {
			return nil, err
		}
		return cv.Bank.InternTerm(sym.Code, nil)
	case t.DistinctObj != nil:
		// Likewise treated as an ordinary constant: the "all distinct
		// objects are pairwise unequal" axiom TPTP implies is not
		// automatically generated.
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
	return nil, fmt.Errorf("tptp: empty term node")
}
