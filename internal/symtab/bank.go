package symtab

import (
	"fmt"
	"sync"
)

// Bank is the signature table: it interns symbol names to Codes and holds
// each Symbol's attributes. One Bank is shared by a single term bank and
// clause set (spec §2.2).
//
// Grounded on the teacher's internal/ast symbol-table pattern (a name ->
// descriptor map built once during analysis) generalized to support fresh
// Skolem-symbol introduction during saturation.
type Bank struct {
	mu      sync.RWMutex
	byName  map[string]*Symbol
	byCode  []*Symbol // index 0 unused (CodeInvalid)
	nextSk  int
}

// NewBank creates a signature table pre-populated with the reserved codes
// (spec §3 "reserved codes exist for logical connectives and the Boolean
// value true").
func NewBank() *Bank {
	b := &Bank{
		byName: make(map[string]*Symbol),
		byCode: make([]*Symbol, firstUser),
	}
	reserved := []struct {
		code  Code
		name  string
		arity int
		flags SymbolFlags
	}{
		{CodeTrue, "$true", 0, FlagSpecial},
		{CodeFalse, "$false", 0, FlagSpecial},
		{CodeEquals, "=", 2, FlagSpecial},
		{CodeAnd, "&", 2, FlagSpecial},
		{CodeOr, "|", 2, FlagSpecial},
		{CodeNot, "~", 1, FlagSpecial},
	}
	for _, r := range reserved {
		sym := &Symbol{Code: r.code, Name: r.name, Arity: r.arity, Flags: r.flags}
		b.byName[r.name] = sym
		b.byCode[r.code] = sym
	}
	b.nextSk = 0
	return b
}

// Intern returns the Symbol for name, creating it with the given arity and
// flags if it does not already exist. A second Intern call for the same
// name with a different arity returns ErrArityConflict (spec §4.1's
// SymbolArityMismatch, lifted to the signature layer).
func (b *Bank) Intern(name string, arity int, flags SymbolFlags) (*Symbol, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if sym, ok := b.byName[name]; ok {
		if sym.Arity != arity {
			return nil, fmt.Errorf("%w: symbol %q declared with arity %d, requested %d",
				ErrArityConflict, name, sym.Arity, arity)
		}
		return sym, nil
	}
	sym := &Symbol{
		Code:  Code(len(b.byCode)),
		Name:  name,
		Arity: arity,
		Flags: flags,
	}
	b.byName[name] = sym
	b.byCode = append(b.byCode, sym)
	return sym, nil
}

// Lookup returns the symbol for a name without creating it.
func (b *Bank) Lookup(name string) (*Symbol, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	sym, ok := b.byName[name]
	return sym, ok
}

// BySymbol returns the Symbol for a Code, or nil if code is unknown.
func (b *Bank) BySymbol(code Code) *Symbol {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if int(code) < 0 || int(code) >= len(b.byCode) {
		return nil
	}
	return b.byCode[code]
}

// FreshSkolem interns a new, guaranteed-unused Skolem function symbol of
// the given arity (spec §3 "Skolem-introduced" flag).
func (b *Bank) FreshSkolem(arity int) *Symbol {
	b.mu.Lock()
	defer b.mu.Unlock()
	for {
		name := fmt.Sprintf("esk%d", b.nextSk)
		b.nextSk++
		if _, exists := b.byName[name]; exists {
			continue
		}
		sym := &Symbol{
			Code:  Code(len(b.byCode)),
			Name:  name,
			Arity: arity,
			Flags: FlagSkolem,
		}
		b.byName[name] = sym
		b.byCode = append(b.byCode, sym)
		return sym
	}
}

// Size reports the length of the code table, reserved slots included, so
// every valid code is below Size(); for fingerprint vector sizing
// heuristics (index package) and diagnostics.
func (b *Bank) Size() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.byCode)
}
