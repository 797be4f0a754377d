// Command saturate is the saturation binary's command-line surface
// (spec §6.3): it parses input clauses, drives the given-clause loop to
// completion or to a resource limit, and reports the result as a
// TSTP-style SZS status line plus, on success, a proof object.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/saturnix/eprover-core/internal/config"
	"github.com/saturnix/eprover-core/internal/proverrors"
	"github.com/saturnix/eprover-core/internal/satlog"
)

func main() {
	os.Exit(mainExitCode())
}

// mainExitCode is main's body, factored out so the os.Exit-after-deferred
// recover ordering (os.Exit skips deferred functions) is expressed once,
// cleanly, instead of needing a nested closure inside main itself.
func mainExitCode() (code int) {
	defer func() {
		if r := recover(); r != nil {
			if iv, ok := r.(proverrors.InvariantViolation); ok {
				fmt.Fprintln(os.Stderr, iv.Error())
				code = proverrors.ExitInternalError
				return
			}
			panic(r)
		}
	}()

	cfg, err := config.Parse("saturate", os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return proverrors.ExitUsageError
	}
	satlog.Configure(cfg.Verbosity, "")

	res, err := run(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCodeForError(err)
	}

	fmt.Println(statusLine(problemName(cfg), res.Result))
	if err := writeProof(cfg, res.Sig, res.Result); err != nil {
		fmt.Fprintln(os.Stderr, proverrors.WrapSystem(err, "writing proof output"))
		return proverrors.ExitSystemError
	}

	return res.Ctx.ExitCode(res.Result)
}

// problemName is the name reported in the SZS status line: the first
// input file's base name, or "stdin" when reading from standard input
// (spec §6.3 "absent / - means standard input").
func problemName(cfg *config.ProverConfig) string {
	if len(cfg.InputFiles) == 0 {
		return "stdin"
	}
	name := cfg.InputFiles[0]
	if name == "-" {
		return "stdin"
	}
	return filepath.Base(name)
}
