package tptp

import (
	"fmt"
	"strings"

	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/symtab"
	"github.com/saturnix/eprover-core/internal/term"
)

// FormatClause renders c as a TPTP cnf(...) annotated formula line (spec
// §6.2 "Textual clauses in TPTP CNF").
//
// Grounded on grammar/printer.go's per-node String()/StringWithIndent
// idiom, adapted to free functions over internal/clause and internal/term
// rather than methods on those types — both packages stay syntax-agnostic
// by design (see internal/clause/literal.go's own "see internal/syntax
// for the real TPTP pretty-printer" note).
func FormatClause(sig *symtab.Bank, c *clause.Clause, role Role) string {
	var b strings.Builder
	fmt.Fprintf(&b, "cnf(%s, %s, ", c.Ident, role)
	if c.IsEmpty() {
		b.WriteString("$false")
	} else {
		for i, l := range c.Literals {
			if i > 0 {
				b.WriteString(" | ")
			}
			writeLiteral(&b, sig, l)
		}
	}
	b.WriteString(").")
	return b.String()
}

// FormatClauses renders a whole problem/answer set, one cnf(...) line per
// clause, in order.
func FormatClauses(sig *symtab.Bank, clauses []*clause.Clause, role Role) string {
	lines := make([]string, len(clauses))
	for i, c := range clauses {
		lines[i] = FormatClause(sig, c, role)
	}
	return strings.Join(lines, "\n")
}

func writeLiteral(b *strings.Builder, sig *symtab.Bank, l *clause.Literal) {
	if !l.RHS.IsVar && l.RHS.Code == symtab.CodeTrue {
		if !l.Positive {
			b.WriteByte('~')
		}
		writeTerm(b, sig, l.LHS)
		return
	}
	writeTerm(b, sig, l.LHS)
	if l.Positive {
		b.WriteString(" = ")
	} else {
		b.WriteString(" != ")
	}
	writeTerm(b, sig, l.RHS)
}

func writeTerm(b *strings.Builder, sig *symtab.Bank, t *term.Term) {
	if t.IsVar {
		fmt.Fprintf(b, "X%d", t.VarID)
		return
	}
	name := "?"
	if sym := sig.BySymbol(t.Code); sym != nil {
		name = sym.Name
	}
	b.WriteString(name)
	if len(t.Args) == 0 {
		return
	}
	b.WriteByte('(')
	for i, a := range t.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		writeTerm(b, sig, a)
	}
	b.WriteByte(')')
}
