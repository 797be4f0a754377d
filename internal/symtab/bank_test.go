package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBank_InternIsIdempotent(t *testing.T) {
	b := NewBank()

	sym1, err := b.Intern("f", 2, 0)
	require.NoError(t, err)
	sym2, err := b.Intern("f", 2, 0)
	require.NoError(t, err)

	assert.Same(t, sym1, sym2)
}

func TestBank_InternArityConflict(t *testing.T) {
	b := NewBank()

	_, err := b.Intern("f", 2, 0)
	require.NoError(t, err)

	_, err = b.Intern("f", 3, 0)
	assert.ErrorIs(t, err, ErrArityConflict)
}

func TestBank_ReservedSymbols(t *testing.T) {
	b := NewBank()

	sym := b.BySymbol(CodeEquals)
	require.NotNil(t, sym)
	assert.Equal(t, "=", sym.Name)
	assert.Equal(t, 2, sym.Arity)
}

func TestBank_FreshSkolemUnique(t *testing.T) {
	b := NewBank()

	seen := map[Code]bool{}
	for i := 0; i < 10; i++ {
		sym := b.FreshSkolem(1)
		assert.False(t, seen[sym.Code])
		seen[sym.Code] = true
		assert.True(t, sym.Is(FlagSkolem))
	}
}

func TestBank_LookupMissing(t *testing.T) {
	b := NewBank()
	_, ok := b.Lookup("nonexistent")
	assert.False(t, ok)
}
