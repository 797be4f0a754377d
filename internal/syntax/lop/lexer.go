package lop

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenizes the LOP-family clause syntax (spec §6.1 "older,
// historical" format). Token rule names deliberately match
// internal/syntax/tptp's lexer (Var, Ident, Number, DollarWord, Quoted,
// DistinctObject) so this package can parse term/atom/literal nodes
// straight out of internal/syntax/tptp's grammar rather than redefining
// them — only the clause-level punctuation (`<-` instead of `cnf(...)`)
// differs between the two formats.
var Lexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"LineComment", `%[^\n]*`, nil},

		{"Quoted", `'(\\.|[^'\\])*'`, nil},
		{"DistinctObject", `"(\\.|[^"\\])*"`, nil},

		{"DollarWord", `\$[a-z][a-zA-Z0-9_]*`, nil},
		{"Ident", `[a-z][a-zA-Z0-9_]*`, nil},
		{"Var", `[A-Z][a-zA-Z0-9_]*`, nil},

		{"Number", `[+-]?[0-9]+(\.[0-9]+)?`, nil},

		{"Arrow", `<-`, nil},
		{"Op2", `!=`, nil},
		{"Op1", `[~=]`, nil},

		{"Punct", `[(),;.]`, nil},

		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
