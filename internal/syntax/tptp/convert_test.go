package tptp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/symtab"
	"github.com/saturnix/eprover-core/internal/term"
)

type tfix struct {
	sig  *symtab.Bank
	bank *term.Bank
	cv   *Converter
}

func newTfix() *tfix {
	sig := symtab.NewBank()
	bank := term.NewBank(sig)
	trueConst := bank.MustIntern(symtab.CodeTrue, nil)
	return &tfix{sig: sig, bank: bank, cv: NewConverter(sig, bank, trueConst)}
}

func (f *tfix) parse(t *testing.T, src string) *File {
	file, err := Parse("t.p", src)
	require.NoError(t, err)
	return file
}

func TestConvert_PlainDisjunctiveClause(t *testing.T) {
	f := newTfix()
	file := f.parse(t, "cnf(c1, axiom, p(a) | ~q(X)).")

	units, err := f.cv.Convert(file)
	require.NoError(t, err)
	require.Len(t, units, 1)
	u := units[0]
	assert.Equal(t, "c1", u.Name)
	assert.Equal(t, RoleAxiom, u.Role)
	require.Len(t, u.Clauses, 1)
	c := u.Clauses[0]
	require.Len(t, c.Literals, 2)
	assert.True(t, c.Literals[0].Positive)
	assert.False(t, c.Literals[1].Positive)
}

func TestConvert_EquationalLiteral(t *testing.T) {
	f := newTfix()
	file := f.parse(t, "cnf(eq1, axiom, f(X) = g(X, a)).")

	units, err := f.cv.Convert(file)
	require.NoError(t, err)
	c := units[0].Clauses[0]
	require.Len(t, c.Literals, 1)
	l := c.Literals[0]
	assert.True(t, l.Positive)
	assert.NotEqual(t, f.cv.TrueConst, l.RHS)
}

func TestConvert_NegatedConjectureRoleKeptAsIs(t *testing.T) {
	f := newTfix()
	file := f.parse(t, "cnf(goal, negated_conjecture, ~p(a)).")

	units, err := f.cv.Convert(file)
	require.NoError(t, err)
	u := units[0]
	assert.Equal(t, RoleNegatedConjecture, u.Role)
	require.Len(t, u.Clauses, 1)
	assert.False(t, u.Clauses[0].Literals[0].Positive)
}

// TestConvert_ConjectureRoleIsNegatedIntoUnitClauses checks that a
// conjecture clause p(a) | q(b) becomes its negation ~p(a) & ~q(b),
// expressed as two unit clauses (De Morgan over a disjunction).
func TestConvert_ConjectureRoleIsNegatedIntoUnitClauses(t *testing.T) {
	f := newTfix()
	file := f.parse(t, "cnf(conj, conjecture, p(a) | q(b)).")

	units, err := f.cv.Convert(file)
	require.NoError(t, err)
	u := units[0]
	assert.Equal(t, RoleNegatedConjecture, u.Role)
	require.Len(t, u.Clauses, 2)
	for _, c := range u.Clauses {
		require.Len(t, c.Literals, 1)
		assert.False(t, c.Literals[0].Positive)
		assert.True(t, c.Is(clause.FlagConjectureDescendant))
	}
}

// TestConvert_FOFImplicationClausifiesToDisjunction checks the standard
// "! [X] : (p(X) => q(X))" -> "~p(X) | q(X)" translation.
func TestConvert_FOFImplicationClausifiesToDisjunction(t *testing.T) {
	f := newTfix()
	file := f.parse(t, "fof(ax1, axiom, ! [X] : (p(X) => q(X))).")

	units, err := f.cv.Convert(file)
	require.NoError(t, err)
	u := units[0]
	assert.Equal(t, RoleAxiom, u.Role)
	require.Len(t, u.Clauses, 1)
	c := u.Clauses[0]
	require.Len(t, c.Literals, 2)
	assert.False(t, c.Literals[0].Positive)
	assert.True(t, c.Literals[1].Positive)
}

// TestConvert_FOFExistentialIntroducesSkolemConstant checks that a
// top-level existential (no enclosing universal) becomes a nullary
// Skolem constant.
func TestConvert_FOFExistentialIntroducesSkolemConstant(t *testing.T) {
	f := newTfix()
	file := f.parse(t, "fof(ax2, axiom, ? [X] : p(X)).")

	units, err := f.cv.Convert(file)
	require.NoError(t, err)
	c := units[0].Clauses[0]
	require.Len(t, c.Literals, 1)
	assert.True(t, c.Literals[0].Positive)
	assert.Equal(t, 0, len(c.Literals[0].LHS.Args[0].Args))
	sym := f.sig.BySymbol(c.Literals[0].LHS.Args[0].Code)
	require.NotNil(t, sym)
	assert.True(t, sym.Is(symtab.FlagSkolem))
}

// TestConvert_FOFConjectureNegatesUniversalToExistential checks that
// negating "! [X] : p(X)" produces "? [X] : ~p(X)", clausified to a single
// Skolem-constant unit clause.
func TestConvert_FOFConjectureNegatesUniversalToExistential(t *testing.T) {
	f := newTfix()
	file := f.parse(t, "fof(goal, conjecture, ! [X] : p(X)).")

	units, err := f.cv.Convert(file)
	require.NoError(t, err)
	u := units[0]
	assert.Equal(t, RoleNegatedConjecture, u.Role)
	require.Len(t, u.Clauses, 1)
	c := u.Clauses[0]
	require.Len(t, c.Literals, 1)
	assert.False(t, c.Literals[0].Positive)
}

func TestFormatClause_RoundTripsThroughPrinter(t *testing.T) {
	f := newTfix()
	file := f.parse(t, "cnf(c1, axiom, p(a) | ~q(X)).")
	units, err := f.cv.Convert(file)
	require.NoError(t, err)

	out := FormatClause(f.sig, units[0].Clauses[0], RoleAxiom)
	assert.Contains(t, out, "cnf(c1, axiom,")
	assert.Contains(t, out, "p(a)")
	assert.Contains(t, out, "~q(X")
}
