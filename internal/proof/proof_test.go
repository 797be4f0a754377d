package proof

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/symtab"
	"github.com/saturnix/eprover-core/internal/term"
)

type pfix struct {
	sig  *symtab.Bank
	bank *term.Bank
}

func newPfix() *pfix {
	sig := symtab.NewBank()
	return &pfix{sig: sig, bank: term.NewBank(sig)}
}

func (f *pfix) t(name string) *term.Term {
	s, ok := f.sig.Lookup(name)
	if !ok {
		var err error
		s, err = f.sig.Intern(name, 0, 0)
		if err != nil {
			panic(err)
		}
	}
	return f.bank.MustIntern(s.Code, nil)
}

func (f *pfix) unit(ident string) *clause.Clause {
	a := f.t("a")
	return clause.New(ident, []*clause.Literal{clause.NewEquational(a, a, true)})
}

// buildRefutation builds a small diamond-shaped derivation DAG:
//
//	ax1   ax2
//	  \   /  \
//	  c1(eq_res)  ax3
//	      \       /
//	     empty(eq_res), sharing ax2 via two paths is not needed here —
//	     instead c1 and c2 both derive from ax2, and empty derives from
//	     both c1 and c2, so ax2 is reachable via two different parents.
func (f *pfix) buildRefutation() *clause.Clause {
	ax1 := f.unit("ax1")
	ax2 := f.unit("ax2")
	ax3 := f.unit("ax3")

	c1 := f.unit("c1")
	c1.Derivation = &clause.Derivation{Kind: clause.InferenceEqRes, Parents: []*clause.Clause{ax1, ax2}}

	c2 := f.unit("c2")
	c2.Derivation = &clause.Derivation{Kind: clause.InferenceEqRes, Parents: []*clause.Clause{ax2, ax3}}

	empty := clause.New("empty", nil)
	empty.Derivation = &clause.Derivation{Kind: clause.InferenceEqRes, Parents: []*clause.Clause{c1, c2}}
	return empty
}

func TestExtract_OrdersParentsBeforeChildren(t *testing.T) {
	f := newPfix()
	empty := f.buildRefutation()

	steps := Extract(empty)

	pos := make(map[string]int, len(steps))
	for i, s := range steps {
		pos[s.Ident] = i
	}

	// every ident should appear exactly once
	assert.Len(t, steps, 6)
	assert.ElementsMatch(t, []string{"ax1", "ax2", "ax3", "c1", "c2", "empty"}, keysOf(pos))

	// parents strictly precede children
	assert.Less(t, pos["ax1"], pos["c1"])
	assert.Less(t, pos["ax2"], pos["c1"])
	assert.Less(t, pos["ax2"], pos["c2"])
	assert.Less(t, pos["ax3"], pos["c2"])
	assert.Less(t, pos["c1"], pos["empty"])
	assert.Less(t, pos["c2"], pos["empty"])

	// the final step is the empty clause itself
	last := steps[len(steps)-1]
	assert.Equal(t, "empty", last.Ident)
	assert.Equal(t, "$false", last.String()[len("empty : "):len("empty : ")+6])
}

func TestExtract_SharedAncestorVisitedOnce(t *testing.T) {
	f := newPfix()
	empty := f.buildRefutation()

	steps := Extract(empty)

	count := 0
	for _, s := range steps {
		if s.Ident == "ax2" {
			count++
		}
	}
	assert.Equal(t, 1, count, "ax2 is a shared parent of c1 and c2 but must be emitted once")
}

func TestExtract_LeafStepHasInitialInferenceAndNoParents(t *testing.T) {
	f := newPfix()
	empty := f.buildRefutation()

	steps := Extract(empty)
	for _, s := range steps {
		if s.Ident == "ax1" {
			assert.Equal(t, clause.InferenceInitial, s.Inference)
			assert.Empty(t, s.Parents)
			return
		}
	}
	t.Fatal("ax1 step not found")
}

func TestAxiomsUsed_ReturnsSortedLeavesOnly(t *testing.T) {
	f := newPfix()
	empty := f.buildRefutation()

	axioms := AxiomsUsed(empty)
	assert.Equal(t, []string{"ax1", "ax2", "ax3"}, axioms)
}

func keysOf(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
