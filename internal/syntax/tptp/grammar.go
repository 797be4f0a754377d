// Package tptp implements the TPTP-family textual clause/formula syntax
// (spec §6.1, §6.2): CNF clauses (`cnf(name, role, literal-disjunction).`)
// and FOF formulas, with roles including axiom, conjecture and
// negated_conjecture, equality as the binary predicate `=`, and
// disequality as `!=` or the negation of `=`.
//
// Grounded on the teacher's grammar package: a participle/v2 declarative
// AST (grammar.go), a stateful lexer (lexer.go), a ParseString entry point
// with caret-style error reporting (parser.go), and per-node String()
// pretty-printers (printer.go) — the same four-file shape is used here,
// generalized from Kanso's module/struct/function syntax to TPTP's
// annotated-formula syntax.
package tptp

// File is a sequence of include directives and annotated formulas — the
// top-level production of a TPTP input file.
type File struct {
	Statements []*Statement `@@*`
}

type Statement struct {
	Include *Include  `  @@`
	CNF     *CNFInput `| @@`
	FOF     *FOFInput `| @@`
}

// Include is `include('file', [names]).`; the optional selection list is
// accepted syntactically but ignored (no TPTP library is bundled here).
type Include struct {
	File  string   `"include" "(" @Quoted`
	Names []string `[ "," "[" @Quoted { "," @Quoted } "]" ]`
	Close string   `")" "."`
}

// CNFInput is `cnf(name, role, clause [, source]).`.
type CNFInput struct {
	Name   string       `"cnf" "(" @(Ident|Quoted|Number)`
	Role   string       `"," @Ident`
	Clause *CNFFormula  `"," @@`
	Source *GeneralTerm `[ "," @@ ]`
	Close  string       `")" "."`
}

// FOFInput is `fof(name, role, formula [, source]).`.
type FOFInput struct {
	Name    string       `"fof" "(" @(Ident|Quoted|Number)`
	Role    string       `"," @Ident`
	Formula *FOFFormula  `"," @@`
	Source  *GeneralTerm `[ "," @@ ]`
	Close   string       `")" "."`
}

// CNFFormula is a disjunction of literals, optionally parenthesized.
type CNFFormula struct {
	Paren     *LiteralList `  "(" @@ ")"`
	Unparened *LiteralList `| @@`
}

type LiteralList struct {
	Literals []*Literal `@@ { "|" @@ }`
}

// Literal is a (possibly negated) equational or plain atom.
type Literal struct {
	Negated bool  `[ @"~" ]`
	Atom    *Atom `@@`
}

// Atom is a plain predicate application, or — when Eq is present — an
// equation or disequation between two terms.
type Atom struct {
	LHS *Term   `@@`
	Eq  *EqTail `@@?`
}

// EqTail is the `(= | !=) term` tail of an equational atom, split into its
// own node so Atom's two cases stay each a single, self-contained field.
type EqTail struct {
	Op  string `@("=" | "!=")`
	RHS *Term  `@@`
}

// Term is a variable, number, distinct object, or functor application
// (arity 0 functors have no parenthesized argument list).
type Term struct {
	Var         *string  `  @Var`
	Number      *string  `| @Number`
	DistinctObj *string  `| @DistinctObject`
	Func        *Functor `| @@`
}

type Functor struct {
	Name string  `@(Ident | DollarWord | Quoted)`
	Args []*Term `[ "(" @@ { "," @@ } ")" ]`
}

// GeneralTerm is TPTP's catch-all "general_term" production, covering the
// small subset actually seen in source/annotation fields: a plain term or
// a bracketed list of general terms (including the empty list `[]`).
type GeneralTerm struct {
	List *GeneralList `  @@`
	Term *Term        `| @@`
}

type GeneralList struct {
	Items []*GeneralTerm `"[" [ @@ { "," @@ } ] "]"`
}

// FOFFormula is a disjunction-level formula, optionally followed by one
// binary-connective tail — TPTP's binary connectives are non-associative
// (used at most once per formula), so Tail never nests further.
type FOFFormula struct {
	Left *FOFOrFormula  `@@`
	Tail *FOFBinaryTail `@@?`
}

type FOFBinaryTail struct {
	Op    string        `@("<=>" | "<~>" | "=>" | "<=" | "~|" | "~&")`
	Right *FOFOrFormula `@@`
}

type FOFOrFormula struct {
	Operands []*FOFAndFormula `@@ { "|" @@ }`
}

type FOFAndFormula struct {
	Operands []*FOFUnitary `@@ { "&" @@ }`
}

// FOFUnitary is a quantified formula, a negation, a parenthesized
// formula, or a plain atom — TPTP's "unitary_formula".
type FOFUnitary struct {
	Quant   *FOFQuantified `  @@`
	Negated *FOFUnitary    `| "~" @@`
	Paren   *FOFFormula    `| "(" @@ ")"`
	Atom    *Atom          `| @@`
}

// FOFQuantified is `(! | ?) [X, Y, ...] : body`; Quantifier is "!"
// (universal) or "?" (existential).
type FOFQuantified struct {
	Quantifier string      `@("!" | "?")`
	Vars       []string    `"[" @Var { "," @Var } "]" ":"`
	Body       *FOFUnitary `@@`
}
