package symtab

// SymbolFlags is a property bitset on a Symbol, mirroring the property
// bitsets used throughout the source system for terms and clauses
// (spec §3 "property flags").
type SymbolFlags uint16

const (
	FlagAssociative SymbolFlags = 1 << iota
	FlagCommutative
	FlagSkolem
	FlagDefinitionPredicate
	FlagInterpreted // arithmetic/interpreted symbol
	FlagSpecial     // reserved system symbol (logical connectives, $true)
)

// Code identifies a function or predicate symbol. By convention codes for
// free variables are negative (spec §3 "head symbol code: positive for
// function/predicate, negative for a free variable"); Code itself only
// ever holds the positive, function/predicate half — variables are
// handled by the term package's own VarBank.
type Code int32

// Reserved codes for logical connectives and the Boolean constant true,
// always present in a freshly created Bank.
const (
	CodeInvalid Code = 0
	CodeTrue    Code = 1 // $true
	CodeFalse   Code = 2 // $false
	CodeEquals  Code = 3 // '=' (the equality predicate)
	CodeAnd     Code = 4
	CodeOr      Code = 5
	CodeNot     Code = 6
	firstUser        = 16
)

// Symbol is one interned function/predicate symbol.
type Symbol struct {
	Code   Code
	Name   string
	Arity  int
	Type   *Sort // declared type, nil if untyped/uninterpreted individual
	Flags  SymbolFlags
}

func (s *Symbol) Is(f SymbolFlags) bool { return s.Flags&f != 0 }
