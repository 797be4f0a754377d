package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/symtab"
	"github.com/saturnix/eprover-core/internal/term"
)

type ifix struct {
	sig  *symtab.Bank
	bank *term.Bank
	sort *symtab.Sort
}

func newIfix() *ifix {
	sig := symtab.NewBank()
	return &ifix{sig: sig, bank: term.NewBank(sig), sort: &symtab.Sort{Kind: symtab.SortIndividual}}
}

func (f *ifix) c(name string, arity int) symtab.Code {
	s, err := f.sig.Intern(name, arity, 0)
	if err != nil {
		panic(err)
	}
	return s.Code
}

func (f *ifix) t(name string, args ...*term.Term) *term.Term {
	return f.bank.MustIntern(f.c(name, len(args)), args)
}

func (f *ifix) v(i int32) *term.Term { return f.bank.InternVariable(f.sort, i) }

func TestFingerprintIndex_FindUnifiable(t *testing.T) {
	f := newIfix()
	a := f.t("a")
	fa := f.t("f", a)
	x := f.v(0)
	fx := f.t("f", x)

	idx := NewFingerprintIndex(nil)
	idx.Insert(Payload{ClauseIdent: "c1", Term: fa})

	var hits []Payload
	idx.FindUnifiable(fx, func(p Payload) { hits = append(hits, p) })
	require.Len(t, hits, 1)
	assert.Equal(t, "c1", hits[0].ClauseIdent)
}

func TestFingerprintIndex_SafetyExcludesImpossible(t *testing.T) {
	f := newIfix()
	a := f.t("a")
	b := f.t("b")
	fa := f.t("f", a)
	gb := f.t("g", b)

	idx := NewFingerprintIndex(nil)
	idx.Insert(Payload{ClauseIdent: "c1", Term: fa})

	var hits []Payload
	idx.FindUnifiable(gb, func(p Payload) { hits = append(hits, p) })
	assert.Empty(t, hits, "f(a) and g(b) are never unifiable; must not be visited")
}

func TestFeatureVectorIndex_Subsumption(t *testing.T) {
	f := newIfix()
	a := f.t("a")
	b := f.t("b")

	small := clause.New("small", []*clause.Literal{clause.NewEquational(a, a, true)})
	big := clause.New("big", []*clause.Literal{
		clause.NewEquational(a, a, true),
		clause.NewEquational(b, b, false),
	})

	fvi := NewFeatureVectorIndex()
	fvi.OnInsert(small)

	cands := fvi.CandidatesThatMaySubsume(ComputeFeatures(big))
	require.Contains(t, cands, "small")

	fvi.OnRemove(small)
	cands2 := fvi.CandidatesThatMaySubsume(ComputeFeatures(big))
	assert.Empty(t, cands2)
}

func TestUnitIndex_DemodulatorLookup(t *testing.T) {
	f := newIfix()
	trueC := f.t("true_marker")
	a := f.t("a")
	b := f.t("b")
	fa := f.t("f", a)

	c := clause.New("eq1", []*clause.Literal{clause.NewEquational(fa, b, true)})
	ui := NewUnitIndex(trueC)
	ui.OnInsert(c)

	cands := ui.CandidatesForHead(f.c("f", 1))
	require.Len(t, cands, 1)
	assert.Equal(t, "eq1", cands[0].Ident)

	ui.OnRemove(c)
	assert.Empty(t, ui.CandidatesForHead(f.c("f", 1)))
}

func TestGlobalIndices_RebuildPreservesMembers(t *testing.T) {
	f := newIfix()
	trueC := f.t("true_marker")
	a := f.t("a")

	s := clause.NewSet("processed")
	g := NewGlobalIndices(trueC)
	s.AttachIndexer(g.AsIndexer())

	c1 := clause.New("c1", []*clause.Literal{clause.NewEquational(a, a, true)})
	s.InsertIndexed(c1)

	require.NotEmpty(t, g.Symbols.ClausesContaining(f.c("a", 0)))

	g.Rebuild(s)
	assert.NotEmpty(t, g.Symbols.ClausesContaining(f.c("a", 0)))
}
