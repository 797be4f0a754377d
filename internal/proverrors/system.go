package proverrors

import pkgerrors "github.com/pkg/errors"

// WrapSystem wraps err with a formatted message and a stack trace, for
// external-collaborator failures at the system/IO boundary (spec §7
// "External collaborator failures ... propagate as system errors and
// exit"). Returns nil if err is nil.
func WrapSystem(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return pkgerrors.Wrapf(err, format, args...)
}
