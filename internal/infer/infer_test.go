package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/order"
	"github.com/saturnix/eprover-core/internal/symtab"
	"github.com/saturnix/eprover-core/internal/term"
)

type ifix struct {
	sig  *symtab.Bank
	bank *term.Bank
	sort *symtab.Sort
	ord  *order.Ordering
}

func newIfix(codesInOrder []string, arities []int) *ifix {
	sig := symtab.NewBank()
	bank := term.NewBank(sig)
	sort := &symtab.Sort{Kind: symtab.SortIndividual}
	codes := make([]symtab.Code, len(codesInOrder))
	for i, n := range codesInOrder {
		s, err := sig.Intern(n, arities[i], 0)
		if err != nil {
			panic(err)
		}
		codes[i] = s.Code
	}
	return &ifix{sig: sig, bank: bank, sort: sort, ord: order.New(order.KindLPO, order.NewPrecedence(codes, 1))}
}

func (f *ifix) code(name string, arity int) symtab.Code {
	if s, ok := f.sig.Lookup(name); ok {
		return s.Code
	}
	s, err := f.sig.Intern(name, arity, 0)
	if err != nil {
		panic(err)
	}
	return s.Code
}

func (f *ifix) t(name string, args ...*term.Term) *term.Term {
	return f.bank.MustIntern(f.code(name, len(args)), args)
}

func (f *ifix) v(i int32) *term.Term { return f.bank.InternVariable(f.sort, i) }

func TestSuperposition_RewritesIntoSubterm(t *testing.T) {
	f := newIfix([]string{"a", "b", "g", "p", "f"}, []int{0, 0, 1, 1, 1})
	a := f.t("a")
	b := f.t("b")
	x := f.v(0)

	// from: f(x) = b
	fromEq := clause.NewEquational(f.t("f", x), b, true)
	from := clause.New("from", []*clause.Literal{fromEq})

	// into: p(g(f(a)))
	into := clause.New("into", []*clause.Literal{clause.NewAtom(f.t("true_marker"), f.t("p", f.t("g", f.t("f", a))), true)})

	result, ok := Superposition(f.bank, f.ord, "r1", from, 0, 0, into, 0, 0, []int{0, 0})
	require.True(t, ok)
	assert.Len(t, result.Literals, 1)
	assert.Equal(t, clause.InferenceParamod, result.Derivation.Kind)
}

func TestSuperposition_RejectsIntoVariable(t *testing.T) {
	f := newIfix([]string{"f", "a", "b"}, []int{1, 0, 0})
	a := f.t("a")
	b := f.t("b")
	x := f.v(0)

	fromEq := clause.NewEquational(a, b, true)
	from := clause.New("from", []*clause.Literal{fromEq})
	into := clause.New("into", []*clause.Literal{clause.NewEquational(x, x, true)})

	_, ok := Superposition(f.bank, f.ord, "r1", from, 0, 0, into, 0, 0, nil)
	assert.False(t, ok, "superposition must never rewrite into a bare variable")
}

func TestEqualityResolution_RemovesUnifiableNegativeLiteral(t *testing.T) {
	f := newIfix([]string{"a"}, []int{0})
	x := f.v(0)
	a := f.t("a")

	c := clause.New("c", []*clause.Literal{
		clause.NewEquational(x, a, false),
		clause.NewEquational(a, a, true),
	})

	result, ok := EqualityResolution(f.bank, f.ord, "r1", c, 0)
	require.True(t, ok)
	assert.Len(t, result.Literals, 1)
	assert.Equal(t, clause.InferenceEqRes, result.Derivation.Kind)
}

func TestEqualityResolution_RejectsPositiveLiteral(t *testing.T) {
	f := newIfix([]string{"a"}, []int{0})
	a := f.t("a")
	c := clause.New("c", []*clause.Literal{clause.NewEquational(a, a, true)})

	_, ok := EqualityResolution(f.bank, f.ord, "r1", c, 0)
	assert.False(t, ok)
}

func TestEqualityFactoring_CombinesSharedLeftHandSide(t *testing.T) {
	f := newIfix([]string{"a", "b", "c"}, []int{0, 0, 0})
	x := f.v(0)
	b := f.t("b")
	c0 := f.t("c")

	cl := clause.New("cl", []*clause.Literal{
		clause.NewEquational(x, b, true),
		clause.NewEquational(x, c0, true),
	})

	result, ok := EqualityFactoring(f.bank, f.ord, "r1", cl, 0, 1)
	require.True(t, ok)
	assert.Len(t, result.Literals, 2)
	assert.Equal(t, clause.InferenceEqFactor, result.Derivation.Kind)
}
