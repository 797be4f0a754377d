package tptp

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenizes the TPTP-family input language (spec §6.1): CNF and FOF
// annotated formulas built from lower-case functor words, upper-case
// variables, `$`-prefixed defined symbols, quoted atoms/distinct objects,
// numbers, and punctuation.
//
// Grounded on grammar/lexer.go's stateful single-state rule table; rule
// order matters here even more than there, since TPTP's connectives share
// prefixes (`<=>`, `<=`, `=>`, `=`) and the longer alternative must be
// tried first.
var Lexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"LineComment", `%[^\n]*`, nil},
		{"BlockComment", `/\*([^*]|\*[^/])*\*/`, nil},

		{"Quoted", `'(\\.|[^'\\])*'`, nil},
		{"DistinctObject", `"(\\.|[^"\\])*"`, nil},

		{"DollarWord", `\$[a-z][a-zA-Z0-9_]*`, nil},
		{"Ident", `[a-z][a-zA-Z0-9_]*`, nil},
		{"Var", `[A-Z][a-zA-Z0-9_]*`, nil},

		{"Number", `[+-]?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?`, nil},

		// Multi-character operators before any of their single-char prefixes.
		{"Op3", `<=>|<~>`, nil},
		{"Op2", `=>|<=|~\||~&|!=`, nil},
		{"Op1", `[!?~&|=]`, nil},

		{"Punct", `[()\[\],.:]`, nil},

		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
