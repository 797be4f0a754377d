package tptp

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
)

var parser = participle.MustBuild[File](
	participle.Lexer(Lexer),
	participle.Elide("Whitespace", "LineComment", "BlockComment"),
	participle.UseLookahead(4),
)

// Parse parses TPTP-family source text (CNF clauses and FOF formulas) into
// a File AST. filename is used only for error positions.
func Parse(filename, src string) (*File, error) {
	f, err := parser.ParseString(filename, src)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// ReportError renders a parse error in caret style against its source
// line, for callers that print to a terminal rather than handle the error
// programmatically.
//
// Grounded on grammar/parser.go's reportParseError.
func ReportError(src string, err error) string {
	pe, ok := err.(participle.Error)
	if !ok {
		return color.RedString("tptp: %s", err)
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		return color.RedString("tptp: syntax error at unknown location: %s", err)
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", pos.Column-1) + "^"

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", color.RedString("syntax error in %s at line %d, column %d:", pos.Filename, pos.Line, pos.Column))
	fmt.Fprintf(&b, "%s\n", line)
	fmt.Fprintf(&b, "%s\n", color.HiRedString(caret))
	fmt.Fprintf(&b, "-> %s", pe.Message())
	return b.String()
}
