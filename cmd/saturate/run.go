package main

import (
	"time"

	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/config"
	"github.com/saturnix/eprover-core/internal/heuristic"
	"github.com/saturnix/eprover-core/internal/loop"
	"github.com/saturnix/eprover-core/internal/order"
	"github.com/saturnix/eprover-core/internal/satctx"
	"github.com/saturnix/eprover-core/internal/symtab"
	"github.com/saturnix/eprover-core/internal/term"
)

// pollInterval is how often satctx.Watch re-checks the configured
// resource limits (spec §9 "a monotonic deadline checked at loop top").
const pollInterval = 50 * time.Millisecond

// runResult bundles the saturation outcome with the context used to
// produce it, so the caller can recover both the proof (if any) and
// which resource limit, if any, cut the run short (spec §7 "exit code
// distinguishes each").
type runResult struct {
	Result loop.Result
	Ctx    *satctx.Context
	Sig    *symtab.Bank
	Bank   *term.Bank
}

// run builds a fresh saturation state from cfg's input, wires a
// resource-limit monitor around it, and drives the given-clause loop to
// completion.
func run(cfg *config.ProverConfig) (*runResult, error) {
	sig := symtab.NewBank()
	bank := term.NewBank(sig)
	trueConst := bank.MustIntern(symtab.CodeTrue, nil)

	input, err := loadInputs(cfg, sig, bank, trueConst)
	if err != nil {
		return nil, err
	}

	ord := order.New(cfg.ResolveOrdering(input.HasEquality), order.AutoPrecedence(sig, nonSpecialCodes(sig), 1))

	specs, err := cfg.QueueSpecs()
	if err != nil {
		return nil, usageErr{err}
	}
	hcb := heuristic.NewHCB(heuristic.NewContext(conjectureSymbols(input.Axioms), 0), specs)

	state := loop.NewState(bank, sig, ord, hcb, trueConst)
	for _, c := range input.Axioms {
		state.AddAxiom(c)
	}

	if cfg.Preprocessing.SInERelevanceFilter {
		state.InitWithRelevance(sineRelevance(sig, input.Axioms))
	} else {
		state.Init()
	}

	ctx := satctx.New(state, cfg.Limits())
	stop := ctx.Watch(pollInterval)
	defer stop()

	result := loop.Run(state, 0)
	return &runResult{Result: result, Ctx: ctx, Sig: sig, Bank: bank}, nil
}

// nonSpecialCodes lists every user-defined symbol code in a signature, in
// ascending code (declaration) order, for order.AutoPrecedence's input.
func nonSpecialCodes(sig *symtab.Bank) []symtab.Code {
	var codes []symtab.Code
	for i := 0; i < sig.Size(); i++ {
		sym := sig.BySymbol(symtab.Code(i))
		if sym == nil || sym.Is(symtab.FlagSpecial) {
			continue
		}
		codes = append(codes, sym.Code)
	}
	return codes
}

// sineRelevance builds a one-hop SInE-style relevance vector (spec §6.3
// "SInE relevance filtering"): every symbol occurring in a
// conjecture-descendant clause gets relevance 1, everything else is left
// unscored. SortAxiomsByRelevance then gives axioms sharing no symbol
// with the conjecture relevance 0 and, sorting ascending, schedules them
// before those that share one; a single-pass approximation of the
// original's iterative symbol-distance closure.
func sineRelevance(sig *symtab.Bank, axioms []*clause.Clause) loop.RelevanceVector {
	rel := make(loop.RelevanceVector)
	for code := range conjectureSymbols(axioms) {
		rel[code] = 1
	}
	return rel
}
