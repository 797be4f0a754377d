package pcl2

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/pcl"
	"github.com/saturnix/eprover-core/internal/symtab"
	"github.com/saturnix/eprover-core/internal/syntax/tptp"
	"github.com/saturnix/eprover-core/internal/term"
)

// Converter turns a parsed PCL2 File into pcl.Step values, sharing one
// signature and term bank. Each step's variables are scoped to that step
// alone — PCL2 lines are read back independently, never jointly
// unified across steps.
//
// Grounded on internal/syntax/tptp.Converter's shape; term/literal
// conversion is duplicated rather than imported for the same reason
// internal/syntax/lop duplicates it: it is a private implementation
// detail of tptp.Converter, not something meant to be shared across
// syntaxes with otherwise-unrelated clause-level conventions.
type Converter struct {
	Sig       *symtab.Bank
	Bank      *term.Bank
	TrueConst *term.Term

	sort *symtab.Sort
}

func NewConverter(sig *symtab.Bank, bank *term.Bank, trueConst *term.Term) *Converter {
	return &Converter{
		Sig:       sig,
		Bank:      bank,
		TrueConst: trueConst,
		sort:      &symtab.Sort{Kind: symtab.SortIndividual},
	}
}

// Convert builds one pcl.Step per parsed PCL2 line, in file order.
func (cv *Converter) Convert(f *File) ([]pcl.Step, error) {
	out := make([]pcl.Step, 0, len(f.Steps))
	for _, ps := range f.Steps {
		s, err := cv.step(ps)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (cv *Converter) step(ps *Step) (pcl.Step, error) {
	id, err := parseID(ps.ID)
	if err != nil {
		return pcl.Step{}, err
	}

	var lits []*clause.Literal
	if ps.Clause.Literals != nil {
		vars := map[string]*term.Term{}
		for _, pl := range ps.Clause.Literals.Literals {
			l, err := cv.literal(pl, vars)
			if err != nil {
				return pcl.Step{}, fmt.Errorf("pcl2 step %s: %w", ps.ID, err)
			}
			lits = append(lits, l)
		}
	}

	j := pcl.Justification{Op: ps.Justification.Op}
	for _, p := range ps.Justification.Parents {
		pid, err := parseID(p.Value)
		if err != nil {
			return pcl.Step{}, err
		}
		j.Parents = append(j.Parents, pid)
	}

	extra := ""
	if ps.Extra != nil {
		extra = *ps.Extra
	}
	return pcl.Step{ID: id, Literals: lits, Justification: j, Extra: extra}, nil
}

// parseID splits a dotted identifier ("1.2.3") into its pcl.ID component
// integers.
func parseID(s string) (pcl.ID, error) {
	parts := strings.Split(s, ".")
	id := make(pcl.ID, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("pcl2: bad identifier %q: %w", s, err)
		}
		id[i] = n
	}
	return id, nil
}

func (cv *Converter) literal(pl *tptp.Literal, vars map[string]*term.Term) (*clause.Literal, error) {
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
	return nil, fmt.Errorf("pcl2: empty term node")
}

// Format renders steps back to PCL2 trace text, one line per step, in
// order — the inverse of Parse+Convert. Each line is pcl.Step's own
// String rendering, since that already produces the exact
// "id : clause : justification[: extra]." form this syntax defines.
func Format(steps []pcl.Step) string {
	lines := make([]string, len(steps))
	for i, s := range steps {
		lines[i] = s.String()
	}
	return strings.Join(lines, "\n")
}
