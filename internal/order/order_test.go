package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saturnix/eprover-core/internal/symtab"
	"github.com/saturnix/eprover-core/internal/term"
)

type fix struct {
	sig  *symtab.Bank
	bank *term.Bank
	sort *symtab.Sort
}

func newFix() *fix {
	sig := symtab.NewBank()
	return &fix{sig: sig, bank: term.NewBank(sig), sort: &symtab.Sort{Kind: symtab.SortIndividual}}
}

func (f *fix) c(name string, arity int) symtab.Code {
	s, err := f.sig.Intern(name, arity, 0)
	if err != nil {
		panic(err)
	}
	return s.Code
}

func (f *fix) t(name string, args ...*term.Term) *term.Term {
	return f.bank.MustIntern(f.c(name, len(args)), args)
}

func (f *fix) v(i int32) *term.Term { return f.bank.InternVariable(f.sort, i) }

func TestKBO_ConstantPrecedence(t *testing.T) {
	f := newFix()
	a := f.t("a")
	b := f.t("b")
	prec := NewPrecedence([]symtab.Code{f.c("a", 0), f.c("b", 0)}, 1)
	o := New(KindKBO, prec)

	require.Equal(t, Less, o.Compare(a, b))
	require.Equal(t, Greater, o.Compare(b, a))
}

func TestKBO_WeightDominates(t *testing.T) {
	f := newFix()
	a := f.t("a")
	fa := f.t("f", a)
	ffa := f.t("f", fa)
	prec := NewPrecedence([]symtab.Code{f.c("a", 0), f.c("f", 1)}, 1)
	o := New(KindKBO, prec)

	assert.Equal(t, Greater, o.Compare(ffa, fa))
	assert.Equal(t, Less, o.Compare(fa, ffa))
}

func TestKBO_VariableUncomparableToNonSubterm(t *testing.T) {
	f := newFix()
	x := f.v(0)
	a := f.t("a")
	prec := NewPrecedence([]symtab.Code{f.c("a", 0)}, 1)
	o := New(KindKBO, prec)

	assert.Equal(t, Uncomparable, o.Compare(x, a))
}

func TestKBO_VariableLessThanContainingTerm(t *testing.T) {
	f := newFix()
	x := f.v(0)
	fx := f.t("f", x)
	prec := NewPrecedence([]symtab.Code{f.c("f", 1)}, 1)
	o := New(KindKBO, prec)

	assert.Equal(t, Greater, o.Compare(fx, x))
	assert.Equal(t, Less, o.Compare(x, fx))
}

func TestOrdering_CacheStrengthensNegativeResult(t *testing.T) {
	f := newFix()
	a := f.t("a")
	b := f.t("b")
	prec := NewPrecedence([]symtab.Code{f.c("a", 0), f.c("b", 0)}, 1)
	o := New(KindKBO, prec)

	o.QuickNotGreaterEqual(a, b) // cheap pre-filter says a is not >= b
	result := o.Compare(a, b)    // full computation strengthens to Less
	assert.Equal(t, Less, result)
}

func TestLPO_HeadPrecedence(t *testing.T) {
	f := newFix()
	a := f.t("a")
	b := f.t("b")
	fa := f.t("f", a)
	gb := f.t("g", b)
	prec := NewPrecedence([]symtab.Code{f.c("a", 0), f.c("b", 0), f.c("g", 1), f.c("f", 1)}, 1)
	o := New(KindLPO, prec)

	assert.Equal(t, Greater, o.Compare(fa, gb))
}
