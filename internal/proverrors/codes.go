// Package proverrors defines the stable error taxonomy of spec §7: parse
// (syntax) errors, semantic errors, and the internal-invariant-violation
// panic value, plus a caret-style Reporter for rendering the first two.
//
// Grounded on the teacher's internal/errors package (codes.go, a
// CompilerError struct, reporter.go's caret rendering via fatih/color):
// this package keeps that same shape, split into the two error kinds
// spec §7's taxonomy names explicitly.
package proverrors

// Error code ranges:
// P0001-P0099: parse (syntax) errors, one per input syntax's failure mode
// S0001-S0099: semantic errors (arity mismatch, unknown precedence
//              symbol, illegal ordering parameters, ...)

const (
	// P0001: the underlying participle parser rejected the input.
	ErrorSyntax = "P0001"

	// P0002: an include directive named a file that could not be read.
	ErrorIncludeNotFound = "P0002"

	// P0003: the input format selector (§6.3) named a syntax this prover
	// does not implement.
	ErrorUnknownInputFormat = "P0003"
)

const (
	// S0001: a symbol was used at two different arities (spec §4.1
	// SymbolArityMismatch).
	ErrorArityMismatch = "S0001"

	// S0002: auto-precedence or an explicit precedence named a symbol not
	// present in the problem's signature.
	ErrorUnknownPrecedenceSymbol = "S0002"

	// S0003: an ordering selector or its parameters (§6.3) are not a
	// recognised combination.
	ErrorIllegalOrderingParams = "S0003"

	// S0004: two annotated formulas declared the same name.
	ErrorDuplicateClauseIdent = "S0004"

	// S0005: an annotated formula used a role this prover does not
	// recognise (spec §6.1's role list).
	ErrorUnknownRole = "S0005"

	// S0006: a heuristic/weight-function name or definition (§6.3) did
	// not resolve to anything this prover implements.
	ErrorUnknownHeuristic = "S0006"
)

// Description returns a human-readable description of code, or "unknown
// error code" if code is not recognised.
func Description(code string) string {
	switch code {
	case ErrorSyntax:
		return "input did not parse as valid syntax for the selected format"
	case ErrorIncludeNotFound:
		return "an include directive named a file that could not be read"
	case ErrorUnknownInputFormat:
		return "unrecognised input format selector"
	case ErrorArityMismatch:
		return "a symbol was declared with conflicting arities"
	case ErrorUnknownPrecedenceSymbol:
		return "precedence specification named a symbol not in the signature"
	case ErrorIllegalOrderingParams:
		return "unrecognised ordering selector or parameters"
	case ErrorDuplicateClauseIdent:
		return "two annotated formulas declared the same name"
	case ErrorUnknownRole:
		return "unrecognised annotated-formula role"
	case ErrorUnknownHeuristic:
		return "unrecognised heuristic or weight-function name"
	default:
		return "unknown error code"
	}
}

// Category returns "Parse" or "Semantic" for a recognised code's prefix,
// "Unknown" otherwise.
func Category(code string) string {
	if len(code) == 0 {
		return "Unknown"
	}
	switch code[0] {
	case 'P':
		return "Parse"
	case 'S':
		return "Semantic"
	default:
		return "Unknown"
	}
}
