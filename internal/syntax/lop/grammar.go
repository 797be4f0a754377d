// Package lop implements the older, historical LOP-family clause syntax
// (spec §6.1): clauses written as `head_literals <- body_literals.`, with
// literals separated by `;` or `,`. Head literals keep their written
// sign; body literals are implicitly negated (a body literal is a
// precondition, which becomes a negative disjunct in the resulting
// clause), matching the classic Prolog-style "head if body" reading.
//
// Grounded on internal/syntax/tptp's four-file shape (itself grounded on
// the teacher's grammar package); term/atom/literal nodes are reused
// directly from internal/syntax/tptp rather than redefined, since LOP's
// term syntax is the same functor-application syntax TPTP uses — only
// the clause-level punctuation differs.
package lop

import "github.com/saturnix/eprover-core/internal/syntax/tptp"

// File is a sequence of LOP clauses.
type File struct {
	Clauses []*Clause `@@*`
}

// Clause is `[head] "<-" [body] "."`: Head literals keep their surface
// sign in the resulting clause; Body literals are negated.
type Clause struct {
	Head  []*tptp.Literal `[ @@ { ( "," | ";" ) @@ } ]`
	Body  []*tptp.Literal `"<-" [ @@ { ( "," | ";" ) @@ } ]`
	Close string          `"."`
}
