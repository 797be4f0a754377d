package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/config"
	"github.com/saturnix/eprover-core/internal/loop"
	"github.com/saturnix/eprover-core/internal/pcl"
	"github.com/saturnix/eprover-core/internal/proof"
	"github.com/saturnix/eprover-core/internal/symtab"
	"github.com/saturnix/eprover-core/internal/syntax/pcl2"
	"github.com/saturnix/eprover-core/internal/syntax/tptp"
)

// statusLine renders a TSTP-style "SZS status" line (spec §6.2), colored
// the way cmd/kanso-cli colors its own syntax-error/success output.
func statusLine(name string, res loop.Result) string {
	var szs string
	var colorFn func(format string, a ...any) string
	switch res.Status {
	case loop.StatusUnsatisfiable:
		szs, colorFn = "Unsatisfiable", color.GreenString
	case loop.StatusSatisfiable:
		szs, colorFn = "Satisfiable", color.GreenString
	case loop.StatusResourceOut:
		szs, colorFn = "ResourceOut", color.YellowString
	case loop.StatusInterrupted:
		szs, colorFn = "Interrupted", color.YellowString
	default:
		szs, colorFn = string(res.Status), color.RedString
	}
	return colorFn("%% SZS status %s for %s", szs, name)
}

// writeProof renders res's proof object (spec §3 "proof object") in
// cfg's selected output format, to cfg's selected output destination.
func writeProof(cfg *config.ProverConfig, sig *symtab.Bank, res loop.Result) error {
	if res.Status != loop.StatusUnsatisfiable || !cfg.ProofObject {
		return nil
	}

	steps := proof.Extract(res.Empty)

	var body string
	switch cfg.OutputFormat {
	case config.OutputPCL2:
		body = pcl2.Format(pcl.FromProofSteps(steps))
	default:
		body = formatTPTPProof(sig, steps)
	}

	axioms := proof.AxiomsUsed(res.Empty)
	body += fmt.Sprintf("\n%% axioms used: %s\n", strings.Join(axioms, ", "))

	return writeOutput(cfg, body)
}

// formatTPTPProof renders each proof step as a TPTP annotated clause,
// with its inference rule and parents as a trailing TSTP-style comment
// (spec §6.2's CNF/TSTP wire syntax).
func formatTPTPProof(sig *symtab.Bank, steps []proof.Step) string {
	var b strings.Builder
	for _, s := range steps {
		c := clause.New(s.Ident, s.Literals)
		b.WriteString(tptp.FormatClause(sig, c, tptp.RolePlain))
		b.WriteString(fmt.Sprintf(" %% %s", s.Inference))
		if len(s.Parents) > 0 {
			b.WriteString(fmt.Sprintf("(%s)", strings.Join(s.Parents, ", ")))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeOutput(cfg *config.ProverConfig, body string) error {
	if cfg.UsesStdout() {
		_, err := io.WriteString(os.Stdout, body)
		return err
	}
	return os.WriteFile(cfg.OutputPath, []byte(body), 0o644)
}
