package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/symtab"
	"github.com/saturnix/eprover-core/internal/term"
)

type hfix struct {
	sig  *symtab.Bank
	bank *term.Bank
}

func newHfix() *hfix {
	sig := symtab.NewBank()
	return &hfix{sig: sig, bank: term.NewBank(sig)}
}

func (f *hfix) t(name string, args ...*term.Term) *term.Term {
	s, ok := f.sig.Lookup(name)
	if !ok {
		var err error
		s, err = f.sig.Intern(name, len(args), 0)
		if err != nil {
			panic(err)
		}
	}
	return f.bank.MustIntern(s.Code, args)
}

func (f *hfix) unitClause(ident string, args ...*term.Term) *clause.Clause {
	a := f.t("a")
	return clause.New(ident, []*clause.Literal{clause.NewEquational(a, a, true)})
}

func TestHCB_SelectRespectsCyclicSchedule(t *testing.T) {
	f := newHfix()
	ctx := NewContext(nil, 1)
	hcb := NewHCB(ctx, []QueueSpec{
		{Name: "fifo", Weight: FIFOWeight, Steps: 1},
		{Name: "weight", Weight: RefinedClauseWeight, Steps: 1},
	})

	c1 := f.unitClause("c1")
	c2 := f.unitClause("c2")
	hcb.Insert(c1)
	hcb.Insert(c2)

	var order []string
	for i := 0; i < 2; i++ {
		c, ok := hcb.Select()
		require.True(t, ok)
		order = append(order, c.Ident)
	}
	assert.ElementsMatch(t, []string{"c1", "c2"}, order)
}

func TestHCB_SelectReturnsFalseWhenExhausted(t *testing.T) {
	ctx := NewContext(nil, 1)
	hcb := NewHCB(ctx, []QueueSpec{{Name: "fifo", Weight: FIFOWeight, Steps: 1}})

	_, ok := hcb.Select()
	assert.False(t, ok)
}

func TestHCB_RemoveExcludesClauseFromFutureSelection(t *testing.T) {
	f := newHfix()
	ctx := NewContext(nil, 1)
	hcb := NewHCB(ctx, []QueueSpec{{Name: "fifo", Weight: FIFOWeight, Steps: 5}})

	c1 := f.unitClause("c1")
	hcb.Insert(c1)
	hcb.Remove(c1)

	_, ok := hcb.Select()
	assert.False(t, ok, "removed clause must never be selected")
}

func TestConjectureSymbolWeight_BoostsMatchingSymbols(t *testing.T) {
	f := newHfix()
	p := f.t("p")
	conjecture := map[symtab.Code]bool{p.Code: true}
	ctx := NewContext(conjecture, 1)

	withConjectureSym := clause.New("c1", []*clause.Literal{clause.NewEquational(p, p, true)})
	q := f.t("q")
	without := clause.New("c2", []*clause.Literal{clause.NewEquational(q, q, true)})

	assert.Less(t, ConjectureSymbolWeight(ctx, withConjectureSym), ConjectureSymbolWeight(ctx, without))
}

func TestRandomizedWeight_DeterministicGivenSeed(t *testing.T) {
	f := newHfix()
	c := f.unitClause("c1")

	ctx1 := NewContext(nil, 42)
	ctx2 := NewContext(nil, 42)
	assert.Equal(t, RandomizedWeight(ctx1, c), RandomizedWeight(ctx2, c))
}

func TestFIFOWeight_StrictlyIncreases(t *testing.T) {
	f := newHfix()
	c := f.unitClause("c1")
	ctx := NewContext(nil, 1)

	w1 := FIFOWeight(ctx, c)
	w2 := FIFOWeight(ctx, c)
	assert.Less(t, w1, w2)
}
