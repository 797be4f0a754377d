package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/config"
	"github.com/saturnix/eprover-core/internal/loop"
	"github.com/saturnix/eprover-core/internal/proverrors"
	"github.com/saturnix/eprover-core/internal/symtab"
	"github.com/saturnix/eprover-core/internal/term"
)

func TestSniffFormat(t *testing.T) {
	assert.Equal(t, config.InputTPTP, sniffFormat("cnf(ax, axiom, p(a)).\n"))
	assert.Equal(t, config.InputTPTP, sniffFormat("% a comment\nfof(ax, axiom, p(a)).\n"))
	assert.Equal(t, config.InputLOP, sniffFormat("p(a).\n~p(b).\n"))
	assert.Equal(t, config.InputTPTP, sniffFormat(""))
}

func TestConjectureSymbols(t *testing.T) {
	sig := symtab.NewBank()
	bank := term.NewBank(sig)
	trueConst := bank.MustIntern(symtab.CodeTrue, nil)

	p, err := sig.Intern("p", 1, 0)
	require.NoError(t, err)
	a, err := sig.Intern("a", 0, 0)
	require.NoError(t, err)

	aTerm := bank.MustIntern(a.Code, nil)
	pa := bank.MustIntern(p.Code, []*term.Term{aTerm})

	plain := clause.New("c1", []*clause.Literal{clause.NewAtom(trueConst, pa, true)})
	descendant := clause.New("c2", []*clause.Literal{clause.NewAtom(trueConst, pa, false)})
	descendant.SetFlag(clause.FlagConjectureDescendant)

	syms := conjectureSymbols([]*clause.Clause{plain, descendant})
	assert.True(t, syms[p.Code])
	assert.True(t, syms[a.Code])
	assert.Len(t, syms, 2)
}

func TestNonSpecialCodes(t *testing.T) {
	sig := symtab.NewBank()
	p, err := sig.Intern("p", 1, 0)
	require.NoError(t, err)

	codes := nonSpecialCodes(sig)
	require.Contains(t, codes, p.Code)
	for _, c := range codes {
		sym := sig.BySymbol(c)
		require.NotNil(t, sym)
		assert.False(t, sym.Is(symtab.FlagSpecial))
	}
}

func TestSineRelevance(t *testing.T) {
	sig := symtab.NewBank()
	bank := term.NewBank(sig)
	trueConst := bank.MustIntern(symtab.CodeTrue, nil)

	p, err := sig.Intern("p", 0, 0)
	require.NoError(t, err)
	pTerm := bank.MustIntern(p.Code, nil)

	c := clause.New("c1", []*clause.Literal{clause.NewAtom(trueConst, pTerm, true)})
	c.SetFlag(clause.FlagConjectureDescendant)

	rel := sineRelevance(sig, []*clause.Clause{c})
	assert.Equal(t, 1, rel[p.Code])
}

func TestExitCodeForError(t *testing.T) {
	assert.Equal(t, proverrors.ExitSyntaxError, exitCodeForError(syntaxErr{errors.New("bad")}))
	assert.Equal(t, proverrors.ExitUsageError, exitCodeForError(usageErr{errors.New("bad")}))
	assert.Equal(t, proverrors.ExitSystemError, exitCodeForError(systemErr{errors.New("bad")}))
	assert.Equal(t, proverrors.ExitUsageError, exitCodeForError(errors.New("unclassified")))
}

func TestProblemName(t *testing.T) {
	assert.Equal(t, "stdin", problemName(&config.ProverConfig{}))
	assert.Equal(t, "stdin", problemName(&config.ProverConfig{InputFiles: []string{"-"}}))
	assert.Equal(t, "a.p", problemName(&config.ProverConfig{InputFiles: []string{"a.p", "b.p"}}))
}

// TestRun_TPTPRefutationFindsEmptyClause is an end-to-end smoke test: a
// one-step propositional refutation should saturate to the empty clause.
func TestRun_TPTPRefutationFindsEmptyClause(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "problem.p")
	problem := "cnf(ax1, axiom, p(a)).\ncnf(ax2, negated_conjecture, ~p(a)).\n"
	require.NoError(t, os.WriteFile(path, []byte(problem), 0o644))

	cfg := &config.ProverConfig{
		InputFiles:    []string{path},
		HeuristicName: "fifo",
		Ordering:      config.OrderingAuto,
		InputFormat:   config.InputAuto,
		OutputFormat:  config.OutputTPTP,
	}

	res, err := run(cfg)
	require.NoError(t, err)
	assert.Equal(t, loop.StatusUnsatisfiable, res.Result.Status)
	require.NotNil(t, res.Result.Empty)
	assert.True(t, res.Result.Empty.IsEmpty())
	assert.Equal(t, proverrors.ExitSuccess, res.Ctx.ExitCode(res.Result))
}

// TestRun_LOPInputIsAcceptedAsAxiomsOnly checks the LOP branch of parseOne
// (no role/conjecture distinction) by driving it through an unsatisfiable
// pair of unit clauses.
func TestRun_LOPInputIsAcceptedAsAxiomsOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "problem.lop")
	problem := "p(a) <- .\n<- p(a).\n"
	require.NoError(t, os.WriteFile(path, []byte(problem), 0o644))

	cfg := &config.ProverConfig{
		InputFiles:    []string{path},
		HeuristicName: "fifo",
		Ordering:      config.OrderingAuto,
		InputFormat:   config.InputLOP,
		OutputFormat:  config.OutputTPTP,
	}

	res, err := run(cfg)
	require.NoError(t, err)
	assert.Equal(t, loop.StatusUnsatisfiable, res.Result.Status)
}

// TestRun_UnknownHeuristicIsAUsageError checks a misconfigured -heuristic
// name surfaces as a usageErr, not a bare error, so mainExitCode maps it
// to the usage-error exit code.
func TestRun_UnknownHeuristicIsAUsageError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "problem.p")
	require.NoError(t, os.WriteFile(path, []byte("cnf(ax1, axiom, p(a)).\n"), 0o644))

	cfg := &config.ProverConfig{
		InputFiles:    []string{path},
		HeuristicName: "does-not-exist",
		InputFormat:   config.InputAuto,
	}

	_, err := run(cfg)
	require.Error(t, err)
	assert.Equal(t, proverrors.ExitUsageError, exitCodeForError(err))
}
