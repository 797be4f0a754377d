package symtab

import "errors"

// ErrArityConflict is returned by Bank.Intern when a name is reused with a
// different arity than its first declaration.
var ErrArityConflict = errors.New("symbol arity conflict")
