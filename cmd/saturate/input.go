package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/config"
	"github.com/saturnix/eprover-core/internal/symtab"
	"github.com/saturnix/eprover-core/internal/syntax/lop"
	"github.com/saturnix/eprover-core/internal/syntax/tptp"
	"github.com/saturnix/eprover-core/internal/term"
)

// loadedInput is every clause gathered from the configured input files
// (spec §6.3 "zero or more input files"). Negated-conjecture clauses are
// kept in Axioms alongside the rest, marked FlagConjectureDescendant.
type loadedInput struct {
	Axioms      []*clause.Clause
	HasEquality bool
}

// loadInputs reads and converts every configured input file (or standard
// input, per spec §6.3's "absent / - means standard input" rule) into
// clauses sharing one signature/term bank, sniffing the syntax when
// InputFormat is "auto".
func loadInputs(cfg *config.ProverConfig, sig *symtab.Bank, bank *term.Bank, trueConst *term.Term) (*loadedInput, error) {
	files := cfg.InputFiles
	if len(files) == 0 {
		files = []string{"-"}
	}

	out := &loadedInput{}
	for _, name := range files {
		src, err := readSource(name)
		if err != nil {
			return nil, err
		}

		format := cfg.InputFormat
		if format == config.InputAuto {
			format = sniffFormat(src)
		}

		clauses, err := parseOne(name, src, format, sig, bank, trueConst)
		if err != nil {
			return nil, err
		}
		for _, c := range clauses {
			out.Axioms = append(out.Axioms, c)
			for _, l := range c.Literals {
				if l.IsEquational(trueConst) {
					out.HasEquality = true
				}
			}
		}
	}
	return out, nil
}

func readSource(name string) (string, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", systemErr{fmt.Errorf("reading standard input: %w", err)}
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", systemErr{fmt.Errorf("reading %s: %w", name, err)}
	}
	return string(data), nil
}

// sniffFormat implements spec §6.3's "input format selector (auto /
// TPTP / LOP)" auto mode: TPTP CNF/FOF inputs always open a top-level
// "cnf(" or "fof(" annotated-formula term, which LOP source (bare
// clauses of literals) never does.
func sniffFormat(src string) config.InputFormat {
	for _, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "%") {
			continue
		}
		if strings.HasPrefix(trimmed, "cnf(") || strings.HasPrefix(trimmed, "fof(") || strings.HasPrefix(trimmed, "include(") {
			return config.InputTPTP
		}
		return config.InputLOP
	}
	return config.InputTPTP
}

func parseOne(filename, src string, format config.InputFormat, sig *symtab.Bank, bank *term.Bank, trueConst *term.Term) ([]*clause.Clause, error) {
	switch format {
	case config.InputLOP:
		f, err := lop.Parse(filename, src)
		if err != nil {
			return nil, syntaxErr{fmt.Errorf("%s", lop.ReportError(src, err))}
		}
		cv := lop.NewConverter(sig, bank, trueConst)
		clauses, err := cv.Convert(f)
		if err != nil {
			return nil, usageErr{err}
		}
		return clauses, nil
	default:
		f, err := tptp.Parse(filename, src)
		if err != nil {
			return nil, syntaxErr{fmt.Errorf("%s", tptp.ReportError(src, err))}
		}
		cv := tptp.NewConverter(sig, bank, trueConst)
		units, err := cv.Convert(f)
		if err != nil {
			return nil, usageErr{err}
		}
		var out []*clause.Clause
		for _, u := range units {
			if u.Role == tptp.RoleNegatedConjecture {
				for _, c := range u.Clauses {
					c.SetFlag(clause.FlagConjectureDescendant)
				}
			}
			out = append(out, u.Clauses...)
		}
		return out, nil
	}
}

// conjectureSymbols collects every head symbol mentioned by a
// conjecture-descendant clause, for internal/heuristic.NewContext's
// goal-directed weight functions (spec §4.8 "conjecture-symbol weight").
func conjectureSymbols(clauses []*clause.Clause) map[symtab.Code]bool {
	out := map[symtab.Code]bool{}
	for _, c := range clauses {
		if !c.Is(clause.FlagConjectureDescendant) {
			continue
		}
		for _, l := range c.Literals {
			collectSymbols(l.LHS, out)
			collectSymbols(l.RHS, out)
		}
	}
	return out
}

func collectSymbols(t *term.Term, into map[symtab.Code]bool) {
	if t.IsVar || t.Code == symtab.CodeTrue {
		return
	}
	into[t.Code] = true
	for _, a := range t.Args {
		collectSymbols(a, into)
	}
}
