package lop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saturnix/eprover-core/internal/symtab"
	"github.com/saturnix/eprover-core/internal/term"
)

type lopfix struct {
	sig  *symtab.Bank
	bank *term.Bank
	cv   *Converter
}

func newLopfix() *lopfix {
	sig := symtab.NewBank()
	bank := term.NewBank(sig)
	trueConst := bank.MustIntern(symtab.CodeTrue, nil)
	return &lopfix{sig: sig, bank: bank, cv: NewConverter(sig, bank, trueConst)}
}

func (f *lopfix) parse(t *testing.T, src string) *File {
	file, err := Parse("t.lop", src)
	require.NoError(t, err)
	return file
}

// TestConvert_FactWithEmptyBody checks that a head-only clause (a fact)
// keeps its written sign.
func TestConvert_FactWithEmptyBody(t *testing.T) {
	f := newLopfix()
	file := f.parse(t, "p(a) <- .")

	clauses, err := f.cv.Convert(file)
	require.NoError(t, err)
	require.Len(t, clauses, 1)
	c := clauses[0]
	require.Len(t, c.Literals, 1)
	assert.True(t, c.Literals[0].Positive)
}

// TestConvert_BodyLiteralsAreNegated checks the "head if body" reading:
// `p(X) <- q(X).` becomes the clause p(X) | ~q(X).
func TestConvert_BodyLiteralsAreNegated(t *testing.T) {
	f := newLopfix()
	file := f.parse(t, "p(X) <- q(X).")

	clauses, err := f.cv.Convert(file)
	require.NoError(t, err)
	c := clauses[0]
	require.Len(t, c.Literals, 2)
	assert.True(t, c.Literals[0].Positive)
	assert.False(t, c.Literals[1].Positive)
}

// TestConvert_MultipleHeadAndBodyLiteralsSeparatedByCommaOrSemicolon
// checks both separators and multi-literal head/body lists.
func TestConvert_MultipleHeadAndBodyLiteralsSeparatedByCommaOrSemicolon(t *testing.T) {
	f := newLopfix()
	file := f.parse(t, "p(X), q(X) <- r(X); s(X).")

	clauses, err := f.cv.Convert(file)
	require.NoError(t, err)
	c := clauses[0]
	require.Len(t, c.Literals, 4)
	assert.True(t, c.Literals[0].Positive)
	assert.True(t, c.Literals[1].Positive)
	assert.False(t, c.Literals[2].Positive)
	assert.False(t, c.Literals[3].Positive)
}

// TestConvert_EmptyHeadIsPureGoalClause checks a clause with no head, only
// a body (a denial/constraint): `<- p(a).` becomes the unit clause ~p(a).
func TestConvert_EmptyHeadIsPureGoalClause(t *testing.T) {
	f := newLopfix()
	file := f.parse(t, "<- p(a).")

	clauses, err := f.cv.Convert(file)
	require.NoError(t, err)
	c := clauses[0]
	require.Len(t, c.Literals, 1)
	assert.False(t, c.Literals[0].Positive)
}
