package term

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/saturnix/eprover-core/internal/symtab"
)

// Bank is the term store: perfectly shared, hash-consed term nodes rooted
// at a single signature bank (spec §2.3, §4.1).
//
// Hash table policy: Go's built-in map is used as the open-addressed table
// spec §4.1 calls for ("open-addressed or bucketed, sized to load factor
// <= 0.7"); runtime/map already rehashes under that discipline, so no
// custom bucket array is reimplemented here — see DESIGN.md for why this
// is a standard-library choice rather than a ported one.
type Bank struct {
	mu  sync.Mutex
	sig *symtab.Bank

	table map[string]*Term // structural-signature -> canonical node

	// Variable bank: keyed by (sort pointer, index).
	vars         map[varKey]*Term
	nextVarIndex map[*symtab.Sort]int32

	// rewrite_link cache (spec §4.1 rewrite_link / follow_rewrite_chain).
	// Valid only until invalidated by a change to the active demodulator
	// set (spec §9 "Rewrite link on a shared node"); callers must call
	// InvalidateRewriteLinks when the demodulator set changes.
	links map[*Term]*RewriteLink
}

type varKey struct {
	sort  *symtab.Sort
	index int32
}

// RewriteLink records that a term was found rewritable to replacement by
// some demodulator, for reuse without re-deriving the normal form.
type RewriteLink struct {
	Replacement *Term
	Witness     any // demodulator clause/equation identity; opaque to term package
	SoS         bool
	Kind        string
}

// NewBank creates an empty term bank over the given signature.
func NewBank(sig *symtab.Bank) *Bank {
	return &Bank{
		sig:          sig,
		table:        make(map[string]*Term),
		vars:         make(map[varKey]*Term),
		nextVarIndex: make(map[*symtab.Sort]int32),
		links:        make(map[*Term]*RewriteLink),
	}
}

func (b *Bank) Signature() *symtab.Bank { return b.sig }

// InternVariable returns the unique term node for (sort, index), creating
// it on first use. Negative/free-variable indices are opaque to callers;
// FreshVariable should be used to obtain one that cannot collide with an
// existing index for that sort (spec §4.1 "the bank records the smallest
// unused index").
func (b *Bank) InternVariable(sort *symtab.Sort, index int32) *Term {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.internVariableLocked(sort, index)
}

func (b *Bank) internVariableLocked(sort *symtab.Sort, index int32) *Term {
	k := varKey{sort, index}
	if t, ok := b.vars[k]; ok {
		return t
	}
	t := &Term{bank: b, IsVar: true, VarID: index, Sort: sort, weight: 1, varCount: 1}
	b.vars[k] = t
	if next := index + 1; next > b.nextVarIndex[sort] {
		b.nextVarIndex[sort] = next
	}
	return t
}

// FreshVariable allocates a variable with an index guaranteed unused for
// that sort in this bank.
func (b *Bank) FreshVariable(sort *symtab.Sort) *Term {
	b.mu.Lock()
	defer b.mu.Unlock()
	idx := b.nextVarIndex[sort]
	b.nextVarIndex[sort] = idx + 1
	return b.internVariableLocked(sort, idx)
}

// ErrArityMismatch is SymbolArityMismatch from spec §4.1.
type ErrArityMismatch struct {
	Symbol   string
	Expected int
	Got      int
}

func (e *ErrArityMismatch) Error() string {
	return fmt.Sprintf("symbol %q expects %d argument(s), got %d", e.Symbol, e.Expected, e.Got)
}

func signature(code symtab.Code, args []*Term) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(int(code)))
	for _, a := range args {
		sb.WriteByte(':')
		// pointer identity of already-interned args is stable within the
		// bank, so its numeric address is a valid structural key.
		fmt.Fprintf(&sb, "%p", a)
	}
	return sb.String()
}

// InternTerm returns the canonical node for (head, args), interning it if
// necessary. Every argument must already live in this bank (spec §4.1).
func (b *Bank) InternTerm(head symtab.Code, args []*Term) (*Term, error) {
	sym := b.sig.BySymbol(head)
	if sym == nil {
		return nil, fmt.Errorf("intern_term: unknown symbol code %d", head)
	}
	if sym.Arity != len(args) {
		return nil, &ErrArityMismatch{Symbol: sym.Name, Expected: sym.Arity, Got: len(args)}
	}
	for _, a := range args {
		if a.bank != b {
			return nil, fmt.Errorf("intern_term: argument %v does not belong to this bank", a)
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	key := signature(head, args)
	if existing, ok := b.table[key]; ok {
		return existing, nil
	}

	weight := 1
	varCount, funCount := 0, 1
	ground := true
	for _, a := range args {
		weight += a.weight
		varCount += a.varCount
		funCount += a.funCount
		if !a.Is(FlagGround) {
			ground = false
		}
	}
	var flags TermFlags
	if ground {
		flags |= FlagGround
	}

	t := &Term{
		bank:     b,
		Code:     head,
		Args:     args,
		Sort:     sym.Type,
		weight:   weight,
		varCount: varCount,
		funCount: funCount,
		flags:    flags,
	}
	b.table[key] = t
	return t, nil
}

// MustIntern is InternTerm with a panic on error, for call sites (tests,
// generating inferences operating on already-validated signatures) where
// an arity mismatch would be an internal invariant violation rather than
// a user-facing error.
func (b *Bank) MustIntern(head symtab.Code, args []*Term) *Term {
	t, err := b.InternTerm(head, args)
	if err != nil {
		panic(err)
	}
	return t
}

// Binder resolves a variable to its current binding, if any. Supplied by
// the caller (typically subst.Subst.Lookup) so the term bank itself never
// holds binding state (spec §9 design note).
type Binder func(v *Term) (*Term, bool)

// DerefOnce returns the term bound to t under binder, or t unchanged if t
// is not a variable or is unbound. It does not follow chains.
func DerefOnce(t *Term, binder Binder) *Term {
	if !t.IsVar || binder == nil {
		return t
	}
	if bound, ok := binder(t); ok {
		return bound
	}
	return t
}

// DerefFollow follows a chain of bindings to a fixed point.
func DerefFollow(t *Term, binder Binder) *Term {
	for t.IsVar && binder != nil {
		bound, ok := binder(t)
		if !ok {
			break
		}
		t = bound
	}
	return t
}

// DerefMode selects how InsertWithDeref treats variable bindings while
// copying.
type DerefMode uint8

const (
	DerefNone DerefMode = iota
	DerefOnceMode
	DerefFollowMode
)

// InsertWithDeref copies t (possibly from a different bank) into b,
// applying binder per mode, reusing shared structure already present in b.
func (b *Bank) InsertWithDeref(t *Term, mode DerefMode, binder Binder) (*Term, error) {
	switch mode {
	case DerefOnceMode:
		t = DerefOnce(t, binder)
	case DerefFollowMode:
		t = DerefFollow(t, binder)
	}
	if t.IsVar {
		return b.InternVariable(t.Sort, t.VarID), nil
	}
	args := make([]*Term, len(t.Args))
	for i, a := range t.Args {
		copied, err := b.InsertWithDeref(a, mode, binder)
		if err != nil {
			return nil, err
		}
		args[i] = copied
	}
	return b.InternTerm(t.Code, args)
}

// SetRewriteLink records that term was found rewritable to replacement.
func (b *Bank) SetRewriteLink(t, replacement *Term, witness any, sos bool, kind string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t.flags |= FlagRewritten
	b.links[t] = &RewriteLink{Replacement: replacement, Witness: witness, SoS: sos, Kind: kind}
}

// RewriteLinkOf returns the cached rewrite link for t, if any.
func (b *Bank) RewriteLinkOf(t *Term) (*RewriteLink, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	l, ok := b.links[t]
	return l, ok
}

// FollowRewriteChain collapses a chain of rewrite links to its end.
func (b *Bank) FollowRewriteChain(t *Term) *Term {
	b.mu.Lock()
	defer b.mu.Unlock()
	seen := map[*Term]bool{}
	for {
		l, ok := b.links[t]
		if !ok || seen[t] {
			return t
		}
		seen[t] = true
		t = l.Replacement
	}
}

// InvalidateRewriteLinks drops the whole cache; callers must invoke this
// whenever the active demodulator set changes (spec §9).
func (b *Bank) InvalidateRewriteLinks() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.links = make(map[*Term]*RewriteLink)
}

// Root is anything that can report the terms it keeps alive, so
// CollectGarbage can mark reachable nodes across every registered
// clause/formula set (spec §4.1 collect_garbage).
type Root interface {
	LiveTerms() []*Term
}

// CollectGarbage marks every term reachable from roots and rebuilds the
// hash table with only those nodes, without disturbing live pointers
// (spec §4.1: "resizes are stop-the-world but safe because all term
// pointers are preserved").
func (b *Bank) CollectGarbage(roots []Root) {
	b.mu.Lock()
	defer b.mu.Unlock()

	live := make(map[*Term]bool)
	var mark func(t *Term)
	mark = func(t *Term) {
		if t == nil || live[t] {
			return
		}
		live[t] = true
		for _, a := range t.Args {
			mark(a)
		}
	}
	for _, r := range roots {
		for _, t := range r.LiveTerms() {
			mark(t)
		}
	}

	newTable := make(map[string]*Term, len(live))
	for key, t := range b.table {
		if live[t] {
			newTable[key] = t
		}
	}
	b.table = newTable

	newVars := make(map[varKey]*Term, len(live))
	for k, t := range b.vars {
		if live[t] {
			newVars[k] = t
		}
	}
	b.vars = newVars

	newLinks := make(map[*Term]*RewriteLink, len(b.links))
	for t, l := range b.links {
		if live[t] {
			newLinks[t] = l
		}
	}
	b.links = newLinks
}

// Size returns the number of distinct non-variable terms currently live.
func (b *Bank) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.table)
}
