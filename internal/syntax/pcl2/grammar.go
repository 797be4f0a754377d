// Package pcl2 implements the PCL2 proof-trace textual syntax (spec
// §6.1, §6.2): `id : clause : justification [: extra].`, parsed into
// internal/pcl's Step/ID/Justification model and printed back out.
//
// Grounded on internal/syntax/tptp's four-file shape (lexer, grammar,
// parser, convert); the clause portion of a step reuses tptp's own
// Literal/Atom/EqTail/Term AST nodes rather than redefining them, the
// same way internal/syntax/lop does.
package pcl2

import "github.com/saturnix/eprover-core/internal/syntax/tptp"

// File is a sequence of proof steps, one per line of trace text.
type File struct {
	Steps []*Step `@@*`
}

// Step is one PCL2 line.
type Step struct {
	ID            string         `@(DottedInt|Number) ":"`
	Clause        *Clause        `@@ ":"`
	Justification *Justification `@@`
	Extra         *string        `[ ":" @(Ident|Quoted|Number|DottedInt) ]`
	Close         string         `"."`
}

// Clause is either the empty clause ($false) or a literal disjunction.
type Clause struct {
	False    *string           `  @DollarWord`
	Literals *tptp.LiteralList `| @@`
}

// Justification is an inference operator plus optional parent-id
// arguments: `initial`, `paramod(1, 2)`, `factor(3)`.
type Justification struct {
	Op      string      `@Ident`
	Parents []*ParentID `[ "(" @@ { "," @@ } ")" ]`
}

// ParentID is one argument of a Justification — its own node (rather
// than a bare string field) so participle has somewhere to attach the
// DottedInt-or-Number alternation without splitting Justification's own
// tag across fields.
type ParentID struct {
	Value string `@(DottedInt|Number)`
}
