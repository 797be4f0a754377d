package pcl2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saturnix/eprover-core/internal/pcl"
	"github.com/saturnix/eprover-core/internal/symtab"
	"github.com/saturnix/eprover-core/internal/term"
)

type pcl2fix struct {
	sig  *symtab.Bank
	bank *term.Bank
	cv   *Converter
}

func newPcl2fix() *pcl2fix {
	sig := symtab.NewBank()
	bank := term.NewBank(sig)
	trueConst := bank.MustIntern(symtab.CodeTrue, nil)
	return &pcl2fix{sig: sig, bank: bank, cv: NewConverter(sig, bank, trueConst)}
}

func (f *pcl2fix) parse(t *testing.T, src string) *File {
	file, err := Parse("t.pcl", src)
	require.NoError(t, err)
	return file
}

// TestConvert_InitialStepWithPlainID checks a single-component id and an
// argument-less "initial" justification.
func TestConvert_InitialStepWithPlainID(t *testing.T) {
	f := newPcl2fix()
	file := f.parse(t, "1 : p(a) : initial.")

	steps, err := f.cv.Convert(file)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, pcl.ID{1}, steps[0].ID)
	assert.Equal(t, "initial", steps[0].Justification.Op)
	require.Len(t, steps[0].Literals, 1)
	assert.True(t, steps[0].Literals[0].Positive)
}

// TestConvert_DottedIDAndParents checks a multi-component identifier and
// a justification with two parent references.
func TestConvert_DottedIDAndParents(t *testing.T) {
	f := newPcl2fix()
	file := f.parse(t, "1.2.3 : p(a) | ~q(b) : paramod(1.2.1, 1.2.2).")

	steps, err := f.cv.Convert(file)
	require.NoError(t, err)
	s := steps[0]
	assert.Equal(t, pcl.ID{1, 2, 3}, s.ID)
	assert.Equal(t, "paramod", s.Justification.Op)
	require.Len(t, s.Justification.Parents, 2)
	assert.Equal(t, pcl.ID{1, 2, 1}, s.Justification.Parents[0])
	assert.Equal(t, pcl.ID{1, 2, 2}, s.Justification.Parents[1])
	require.Len(t, s.Literals, 2)
	assert.True(t, s.Literals[0].Positive)
	assert.False(t, s.Literals[1].Positive)
}

// TestConvert_EmptyClauseIsFalse checks "$false" parses to a step with no
// literals.
func TestConvert_EmptyClauseIsFalse(t *testing.T) {
	f := newPcl2fix()
	file := f.parse(t, "5 : $false : eq_res(4).")

	steps, err := f.cv.Convert(file)
	require.NoError(t, err)
	assert.Empty(t, steps[0].Literals)
}

// TestConvert_ExtraField checks the optional trailing "[: extra]".
func TestConvert_ExtraField(t *testing.T) {
	f := newPcl2fix()
	file := f.parse(t, "1 : p(a) : initial : input.")

	steps, err := f.cv.Convert(file)
	require.NoError(t, err)
	assert.Equal(t, "input", steps[0].Extra)
}

// TestFormat_RoundTripsThroughConvert checks Format's output parses back
// to the same steps (modulo term-bank identity, which the assertions
// below reduce to structural fields).
func TestFormat_RoundTripsThroughConvert(t *testing.T) {
	f := newPcl2fix()
	file := f.parse(t, "1 : p(a) : initial.\n2 : q(a) : paramod(1).")
	steps, err := f.cv.Convert(file)
	require.NoError(t, err)

	out := Format(steps)

	f2 := newPcl2fix()
	file2 := f2.parse(t, out)
	steps2, err := f2.cv.Convert(file2)
	require.NoError(t, err)

	require.Len(t, steps2, 2)
	assert.Equal(t, steps[0].ID, steps2[0].ID)
	assert.Equal(t, steps[1].Justification.Op, steps2[1].Justification.Op)
	assert.Equal(t, steps[1].Justification.Parents, steps2[1].Justification.Parents)
}
