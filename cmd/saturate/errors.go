package main

import "github.com/saturnix/eprover-core/internal/proverrors"

// syntaxErr, usageErr, and systemErr classify a run-time failure into
// one of spec §7's error-taxonomy categories, so exitCodeForError can
// pick the matching exit code without re-inspecting the error message.
type syntaxErr struct{ error }
type usageErr struct{ error }
type systemErr struct{ error }

func (e syntaxErr) Unwrap() error { return e.error }
func (e usageErr) Unwrap() error  { return e.error }
func (e systemErr) Unwrap() error { return e.error }

// exitCodeForError maps a classified load/parse/configuration failure to
// spec §7's error taxonomy: syntax errors exit with the syntax-error
// code, semantic/configuration errors (e.g. unknown heuristic name,
// arity mismatch) with the usage-error code, and I/O failures with the
// system-error code.
func exitCodeForError(err error) int {
	switch err.(type) {
	case syntaxErr:
		return proverrors.ExitSyntaxError
	case usageErr:
		return proverrors.ExitUsageError
	case systemErr:
		return proverrors.ExitSystemError
	default:
		return proverrors.ExitUsageError
	}
}
