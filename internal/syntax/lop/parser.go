package lop

import (
	"github.com/alecthomas/participle/v2"

	"github.com/saturnix/eprover-core/internal/syntax/tptp"
)

var parser = participle.MustBuild[File](
	participle.Lexer(Lexer),
	participle.Elide("Whitespace", "LineComment"),
	participle.UseLookahead(4),
)

// Parse parses LOP-family source text into a File AST.
func Parse(filename, src string) (*File, error) {
	return parser.ParseString(filename, src)
}

// ReportError renders a parse error in caret style; delegates to
// internal/syntax/tptp's reporter since the message shape is identical
// regardless of which format failed.
func ReportError(src string, err error) string {
	return tptp.ReportError(src, err)
}
