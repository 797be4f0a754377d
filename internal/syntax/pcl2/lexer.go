package pcl2

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenizes PCL2 trace lines (spec §6.1, §6.2): `id : clause :
// justification [: extra].`, reusing the term/atom/literal token shapes
// of internal/syntax/tptp (its AST nodes are embedded directly in this
// package's Clause), plus a DottedInt rule for PCL2's own dotted step
// identifiers.
//
// Grounded on internal/syntax/tptp/lexer.go's rule table and ordering
// discipline; DottedInt must be tried before Number so a multi-part
// identifier like "1.2.3" tokenizes as one piece instead of Number's
// single-dot float shape swallowing only the first two components.
var Lexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"LineComment", `%[^\n]*`, nil},
		{"BlockComment", `/\*([^*]|\*[^/])*\*/`, nil},

		{"Quoted", `'(\\.|[^'\\])*'`, nil},
		{"DistinctObject", `"(\\.|[^"\\])*"`, nil},

		{"DollarWord", `\$[a-z][a-zA-Z0-9_]*`, nil},
		{"Ident", `[a-z][a-zA-Z0-9_]*`, nil},
		{"Var", `[A-Z][a-zA-Z0-9_]*`, nil},

		{"DottedInt", `[0-9]+(\.[0-9]+)+`, nil},
		{"Number", `[+-]?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?`, nil},

		{"Op3", `<=>|<~>`, nil},
		{"Op2", `=>|<=|~\||~&|!=`, nil},
		{"Op1", `[!?~&|=]`, nil},

		{"Punct", `[()\[\],.:]`, nil},

		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
