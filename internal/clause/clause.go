package clause

import "github.com/saturnix/eprover-core/internal/term"

// ClauseFlags is the property bitset on a clause (spec §3).
type ClauseFlags uint32

const (
	FlagInitial ClauseFlags = 1 << iota
	FlagConjectureDescendant
	FlagProcessed
	FlagInSoS
	FlagLimitedRewriting
	FlagChosenWatched
	FlagProofStep
)

// EvalEntry is one (priority, weight) pair of a clause's heuristic
// evaluation vector, one per priority queue in the HCB (spec §4.8). The
// type lives here, not in internal/heuristic, so clause has no dependency
// on the heuristic package; internal/heuristic imports clause instead.
type EvalEntry struct {
	Priority int
	Weight   float64
}

// Clause is a finite multiset of literals, represented as a slice kept in
// the canonical order the active ordering and literal weights impose
// (spec §3). Ident is produced by idgen so it is stable across merged
// proof segments (spec §9 "Global state").
type Clause struct {
	Ident string

	Literals []*Literal

	PosCount, NegCount int
	StandardWeight     int // cached, recomputed after normal-form rewriting (spec §4.6)

	Derivation *Derivation
	Flags      ClauseFlags
	Eval       []EvalEntry

	// ProofDepth/ProofSize are incremented on generation (spec §4.7
	// "incremented proof depth/size").
	ProofDepth int
	ProofSize  int

	set        *Set
	prev, next *Clause
}

// New builds a clause from literals, computing counts and the standard
// weight. The clause is not yet owned by any Set.
func New(ident string, lits []*Literal) *Clause {
	c := &Clause{Ident: ident, Literals: lits}
	c.Recompute()
	return c
}

// Recompute recomputes PosCount/NegCount/StandardWeight from Literals;
// callers must call this after any in-place literal rewrite (spec §4.6
// "After normal-form, the clause's standard weight cache is recomputed").
func (c *Clause) Recompute() {
	c.PosCount, c.NegCount = 0, 0
	w := 0
	for _, l := range c.Literals {
		if l.Positive {
			c.PosCount++
		} else {
			c.NegCount++
		}
		w += 1 + l.LHS.Weight() + l.RHS.Weight()
	}
	c.StandardWeight = w
}

func (c *Clause) Is(f ClauseFlags) bool  { return c.Flags&f != 0 }
func (c *Clause) SetFlag(f ClauseFlags)  { c.Flags |= f }
func (c *Clause) ClearFlag(f ClauseFlags) { c.Flags &^= f }

// IsEmpty reports whether this is the empty clause (no literals), the
// derivation target of a successful refutation (spec §8 "Empty clause is
// recognised on derivation").
func (c *Clause) IsEmpty() bool { return len(c.Literals) == 0 }

// Set returns the owning clause set, or nil if unowned.
func (c *Clause) Set() *Set { return c.set }

// LiveTerms implements term.Root so a term bank's garbage collector can
// find every term reachable from this clause.
func (c *Clause) LiveTerms() []*term.Term {
	ts := make([]*term.Term, 0, len(c.Literals)*2)
	for _, l := range c.Literals {
		ts = append(ts, l.LHS, l.RHS)
	}
	return ts
}

// IsUnitEquation reports whether c is a single positive equational
// literal — the demodulator shape (spec §2.8).
func (c *Clause) IsUnitEquation(trueConst *term.Term) bool {
	return len(c.Literals) == 1 && c.Literals[0].Positive && c.Literals[0].IsEquational(trueConst)
}

func (c *Clause) String() string {
	if c.IsEmpty() {
		return "$false"
	}
	s := ""
	for i, l := range c.Literals {
		if i > 0 {
			s += " | "
		}
		s += l.String()
	}
	return s
}
