package order

import "github.com/saturnix/eprover-core/internal/symtab"

// Status controls how equal-precedence function symbols compare their
// argument vectors in LPO (spec §4.3 "optional status (lex/multiset) per
// symbol").
type Status uint8

const (
	StatusLexicographic Status = iota
	StatusMultiset
)

// Precedence is a total order on symbol codes, plus a per-symbol Status
// for LPO and a per-symbol weight for KBO.
type Precedence struct {
	rank     map[symtab.Code]int
	status   map[symtab.Code]Status
	weight   map[symtab.Code]int
	varWeight int
}

// NewPrecedence builds a precedence from an explicit total order (ordered
// lowest-to-highest). Symbols not listed are treated as occurring before
// every listed symbol, ordered by their numeric Code for determinism.
func NewPrecedence(order []symtab.Code, varWeight int) *Precedence {
	p := &Precedence{
		rank:      make(map[symtab.Code]int, len(order)),
		status:    make(map[symtab.Code]Status, len(order)),
		weight:    make(map[symtab.Code]int, len(order)),
		varWeight: varWeight,
	}
	for i, c := range order {
		p.rank[c] = i + 1
		p.weight[c] = 1
	}
	return p
}

// SetStatus overrides a symbol's LPO status (default lexicographic).
func (p *Precedence) SetStatus(c symtab.Code, s Status) { p.status[c] = s }

// SetWeight overrides a symbol's KBO weight (default 1). Must be
// non-negative; constant symbols conventionally get weight >= 1 so that a
// ground term is strictly heavier than the (fixed) variable weight once it
// has any symbols at all, preserving KBO well-foundedness.
func (p *Precedence) SetWeight(c symtab.Code, w int) { p.weight[c] = w }

func (p *Precedence) VarWeight() int { return p.varWeight }

func (p *Precedence) WeightOf(c symtab.Code) int {
	if w, ok := p.weight[c]; ok {
		return w
	}
	return 1
}

func (p *Precedence) StatusOf(c symtab.Code) Status {
	return p.status[c]
}

// Compare returns -1, 0, 1 for a before/equal/after b in the precedence.
// Unranked symbols rank by Code, below every ranked symbol, so the order
// is always total.
func (p *Precedence) Compare(a, b symtab.Code) int {
	if a == b {
		return 0
	}
	ra, ok1 := p.rank[a]
	rb, ok2 := p.rank[b]
	switch {
	case ok1 && ok2:
		return sign(ra - rb)
	case ok1 && !ok2:
		return 1
	case !ok1 && ok2:
		return -1
	default:
		return sign(int(a) - int(b))
	}
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// AutoPrecedence builds a precedence by symbol arity then alphabetic name,
// the fallback used when "auto" ordering is requested (spec §6.3) and no
// explicit precedence was supplied. Grounded on the same idea as the
// teacher's deterministic declaration-order symbol table construction.
func AutoPrecedence(sig *symtab.Bank, codes []symtab.Code, varWeight int) *Precedence {
	ordered := make([]symtab.Code, len(codes))
	copy(ordered, codes)
	// Stable order by (arity ascending, name ascending): cheap, deterministic,
	// and tends to orient "constructors before defined functions" which is a
	// reasonable default precedence for completeness-preserving demodulation.
	less := func(i, j int) bool {
		si, sj := sig.BySymbol(ordered[i]), sig.BySymbol(ordered[j])
		if si == nil || sj == nil {
			return ordered[i] < ordered[j]
		}
		if si.Arity != sj.Arity {
			return si.Arity < sj.Arity
		}
		return si.Name < sj.Name
	}
	insertionSort(ordered, less)
	return NewPrecedence(ordered, varWeight)
}

func insertionSort(s []symtab.Code, less func(i, j int) bool) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && less(j, j-1); j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
