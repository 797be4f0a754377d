package proverrors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Reporter renders ParseError/SemanticError values as caret-style
// diagnostics against their source text.
//
// Grounded on the teacher's internal/errors.ErrorReporter.FormatError:
// same header/location/context-line/caret-marker layout, generalized
// from CompilerError to this package's two error kinds.
type Reporter struct {
	filename string
	lines    []string
}

// NewReporter builds a Reporter for one source file's text.
func NewReporter(filename, source string) *Reporter {
	return &Reporter{filename: filename, lines: strings.Split(source, "\n")}
}

// FormatParseError renders e.
func (r *Reporter) FormatParseError(e *ParseError) string {
	return r.format(LevelError, e.Code, e.Message, e.Position, e.Length, nil, "")
}

// FormatSemanticError renders e, including its notes and help text.
func (r *Reporter) FormatSemanticError(e *SemanticError) string {
	return r.format(e.Level, e.Code, e.Message, e.Position, e.Length, e.Notes, e.HelpText)
}

func (r *Reporter) format(level Level, code, message string, pos Position, length int, notes []string, help string) string {
	var b strings.Builder

	levelColor := r.levelColor(level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	if code != "" {
		fmt.Fprintf(&b, "%s[%s]: %s\n", levelColor(string(level)), code, message)
	} else {
		fmt.Fprintf(&b, "%s: %s\n", levelColor(string(level)), message)
	}

	width := r.lineNumberWidth(pos.Line)
	indent := strings.Repeat(" ", width)

	fmt.Fprintf(&b, "%s %s %s:%d:%d\n", indent, dim("-->"), r.filename, pos.Line, pos.Column)
	fmt.Fprintf(&b, "%s %s\n", indent, dim("│"))

	if pos.Line > 1 && pos.Line-1 < len(r.lines) {
		fmt.Fprintf(&b, "%s %s %s\n", dim(fmt.Sprintf("%*d", width, pos.Line-1)), dim("│"), r.lines[pos.Line-2])
	}

	if pos.Line > 0 && pos.Line <= len(r.lines) {
		fmt.Fprintf(&b, "%s %s %s\n", bold(fmt.Sprintf("%*d", width, pos.Line)), dim("│"), r.lines[pos.Line-1])
		fmt.Fprintf(&b, "%s %s %s\n", indent, dim("│"), r.marker(pos.Column, length, level))
	}

	if pos.Line < len(r.lines) {
		fmt.Fprintf(&b, "%s %s %s\n", dim(fmt.Sprintf("%*d", width, pos.Line+1)), dim("│"), r.lines[pos.Line])
	}

	for _, note := range notes {
		noteColor := color.New(color.FgBlue).SprintFunc()
		fmt.Fprintf(&b, "%s %s %s %s\n", indent, dim("│"), noteColor("note:"), note)
	}

	if help != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(&b, "%s %s %s %s\n", indent, dim("│"), helpColor("help:"), help)
	}

	b.WriteString("\n")
	return b.String()
}

func (r *Reporter) levelColor(level Level) func(...interface{}) string {
	switch level {
	case LevelWarning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

func (r *Reporter) marker(column, length int, level Level) string {
	if length <= 0 {
		length = 1
	}
	spaces := strings.Repeat(" ", max(0, column-1))

	markerColor := color.New(color.FgRed, color.Bold).SprintFunc()
	if level == LevelWarning {
		markerColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	}
	return spaces + markerColor(strings.Repeat("^", length))
}

func (r *Reporter) lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3
	}
	return width
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
