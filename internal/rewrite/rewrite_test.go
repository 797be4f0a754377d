package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/index"
	"github.com/saturnix/eprover-core/internal/order"
	"github.com/saturnix/eprover-core/internal/symtab"
	"github.com/saturnix/eprover-core/internal/term"
)

type rfix struct {
	sig  *symtab.Bank
	bank *term.Bank
	sort *symtab.Sort
	ord  *order.Ordering
}

func newRfix() *rfix {
	sig := symtab.NewBank()
	bank := term.NewBank(sig)
	sort := &symtab.Sort{Kind: symtab.SortIndividual}
	return &rfix{sig: sig, bank: bank, sort: sort, ord: order.New(order.KindLPO, order.NewPrecedence(nil, 1))}
}

func (f *rfix) c(name string, arity int) symtab.Code {
	s, err := f.sig.Intern(name, arity, 0)
	if err != nil {
		panic(err)
	}
	return s.Code
}

func (f *rfix) t(name string, args ...*term.Term) *term.Term {
	return f.bank.MustIntern(f.c(name, len(args)), args)
}

func (f *rfix) v(i int32) *term.Term { return f.bank.InternVariable(f.sort, i) }

func TestRewriteToNormalForm_AppliesOrientedDemodulator(t *testing.T) {
	f := newRfix()
	a := f.t("a")
	b := f.t("b")
	fa := f.t("f", a)

	eq := clause.New("eq1", []*clause.Literal{clause.NewEquational(fa, b, true)})
	f.ord = order.New(order.KindLPO, order.AutoPrecedence(f.sig, []symtab.Code{f.c("f", 1), f.c("a", 0), f.c("b", 0)}, 1))
	OrientUnitClause(f.ord, eq)

	units := index.NewUnitIndex(f.t("true_marker"))
	units.OnInsert(eq)

	rewritten := RewriteToNormalForm(f.bank, f.ord, units, f.t("f", a))
	assert.Equal(t, b, rewritten)
}

func TestRewriteToNormalForm_LeavesIrreducibleTermAlone(t *testing.T) {
	f := newRfix()
	a := f.t("a")
	units := index.NewUnitIndex(f.t("true_marker"))

	rewritten := RewriteToNormalForm(f.bank, f.ord, units, a)
	assert.Equal(t, a, rewritten)
}

func TestSubsumes_UnitLiteralAcrossRenamedVariable(t *testing.T) {
	f := newRfix()
	x := f.v(0)
	y := f.v(1)
	a := f.t("a")

	general := clause.New("general", []*clause.Literal{clause.NewEquational(x, x, false)})
	instance := clause.New("instance", []*clause.Literal{clause.NewEquational(y, y, false), clause.NewEquational(a, a, true)})

	ok, _ := Subsumes(f.bank, general, instance)
	assert.True(t, ok)
}

func TestSubsumes_SignMismatchFails(t *testing.T) {
	f := newRfix()
	x := f.v(0)
	a := f.t("a")

	c := clause.New("c", []*clause.Literal{clause.NewEquational(x, x, true)})
	d := clause.New("d", []*clause.Literal{clause.NewEquational(a, a, false)})

	ok, _ := Subsumes(f.bank, c, d)
	assert.False(t, ok)
}

func TestIsTautology_ReflexiveEquation(t *testing.T) {
	f := newRfix()
	x := f.v(0)
	c := clause.New("c", []*clause.Literal{clause.NewEquational(x, x, true)})
	assert.True(t, IsTautology(c))
}

func TestIsTautology_ComplementaryLiterals(t *testing.T) {
	f := newRfix()
	a := f.t("a")
	b := f.t("b")
	c := clause.New("c", []*clause.Literal{
		clause.NewEquational(a, b, true),
		clause.NewEquational(a, b, false),
	})
	assert.True(t, IsTautology(c))
}

func TestIsTautology_NonTautologyIsNotFlagged(t *testing.T) {
	f := newRfix()
	a := f.t("a")
	b := f.t("b")
	c := clause.New("c", []*clause.Literal{clause.NewEquational(a, b, true)})
	assert.False(t, IsTautology(c))
}

func TestContextualSimplifyReflect_RemovesReflectableLiteral(t *testing.T) {
	f := newRfix()
	a := f.t("a")
	b := f.t("b")

	base := clause.New("base", []*clause.Literal{clause.NewEquational(a, b, false)})
	target := clause.New("target", []*clause.Literal{
		clause.NewEquational(a, b, true),
		clause.NewEquational(a, a, true),
	})

	simplified, changed := ContextualSimplifyReflect(f.bank, []*clause.Clause{base}, target)
	require.True(t, changed)
	assert.Len(t, simplified.Literals, 1)
}

func TestACNormalize_CanonicalizesCommutativeArgOrder(t *testing.T) {
	f := newRfix()
	sym, err := f.sig.Intern("plus", 2, symtab.FlagAssociative|symtab.FlagCommutative)
	require.NoError(t, err)

	a := f.t("a")
	b := f.t("b")
	ab := f.bank.MustIntern(sym.Code, []*term.Term{a, b})
	ba := f.bank.MustIntern(sym.Code, []*term.Term{b, a})

	na := ACNormalize(f.bank, f.sig, ab)
	nb := ACNormalize(f.bank, f.sig, ba)
	assert.Equal(t, na, nb)
}
