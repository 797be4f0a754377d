// Package config implements the saturation binary's command-line and
// configuration surface (spec §6.3): a ProverConfig struct centralizing
// every recognised option, parsed with the standard flag package the way
// cmd/kanso-lsp parses its own server flags, plus flag.Var
// implementations for the enum-valued options (ordering selector,
// input/output format, literal selection).
package config

import (
	"flag"
	"fmt"
	"time"
)

// Preprocessing are the clausal pre-processing toggles of spec §6.3 ("
// unfolding, definition introduction, blocked-clause elimination,
// predicate elimination, SInE relevance filtering") and spec §4 step 1
// ("destructive equality resolution on pure-variable inequalities,
// definition unfolding, predicate elimination, blocked-clause
// elimination, choice-axiom recognition"). These are recognised,
// validated options; the preprocessing passes they select are a
// separate concern from parsing the surface that selects them.
type Preprocessing struct {
	Unfold              bool
	DefinitionIntro     bool
	BlockedClauseElim   bool
	PredicateElim       bool
	SInERelevanceFilter bool
}

// ProverConfig is the fully-parsed command line (spec §6.3).
type ProverConfig struct {
	InputFiles []string // empty, or containing "-", means standard input

	Verbosity  int
	OutputPath string // empty or "-" means standard output

	CPUSoft   time.Duration
	CPUHard   time.Duration
	WallClock time.Duration
	Memory    uint64 // bytes; 0 means unlimited

	HeuristicName string // name of a built-in schedule, e.g. "fifo"
	HeuristicFile string // path to a YAML inline heuristic definition; overrides HeuristicName

	Ordering         OrderingKind
	LiteralSelection LiteralSelection

	InputFormat  InputFormat
	OutputFormat OutputFormat

	ProofObject bool

	Preprocessing Preprocessing
}

// Parse builds a ProverConfig from args (typically os.Args[1:]). Remaining
// non-flag arguments become InputFiles.
func Parse(progName string, args []string) (*ProverConfig, error) {
	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	cfg := &ProverConfig{
		Ordering:         OrderingAuto,
		LiteralSelection: SelectNone,
		InputFormat:      InputAuto,
		OutputFormat:     OutputTPTP,
	}

	var cpuSoftSeconds, cpuHardSeconds, wallClockSeconds int64

	fs.IntVar(&cfg.Verbosity, "verbose", 0, "verbosity level")
	fs.StringVar(&cfg.OutputPath, "output", "-", "output destination (filename, or - for standard output)")
	fs.Int64Var(&cpuSoftSeconds, "cpu-soft-limit", 0, "CPU soft time limit in seconds (0 means unlimited)")
	fs.Int64Var(&cpuHardSeconds, "cpu-hard-limit", 0, "CPU hard time limit in seconds (0 means unlimited)")
	fs.Int64Var(&wallClockSeconds, "wall-clock-limit", 0, "wall-clock time limit in seconds (0 means unlimited)")
	fs.Uint64Var(&cfg.Memory, "memory-limit", 0, "memory limit in bytes (0 means unlimited)")
	fs.StringVar(&cfg.HeuristicName, "heuristic", "fifo", "name of a built-in heuristic schedule")
	fs.StringVar(&cfg.HeuristicFile, "heuristic-file", "", "path to a YAML inline heuristic definition, overrides -heuristic")
	fs.Var(&cfg.Ordering, "ordering", "term ordering: auto, lpo, or kbo")
	fs.Var(&cfg.LiteralSelection, "literal-selection", "literal selection strategy: none, maximal, first-negative, or smallest")
	fs.Var(&cfg.InputFormat, "input-format", "input syntax: auto, tptp, or lop")
	fs.Var(&cfg.OutputFormat, "output-format", "proof syntax: tptp or pcl2")
	fs.BoolVar(&cfg.ProofObject, "proof-object", true, "emit a proof object on success")
	fs.BoolVar(&cfg.Preprocessing.Unfold, "unfold", false, "enable definition unfolding")
	fs.BoolVar(&cfg.Preprocessing.DefinitionIntro, "definition-intro", false, "enable definition introduction")
	fs.BoolVar(&cfg.Preprocessing.BlockedClauseElim, "blocked-clause-elim", false, "enable blocked-clause elimination")
	fs.BoolVar(&cfg.Preprocessing.PredicateElim, "predicate-elim", false, "enable predicate elimination")
	fs.BoolVar(&cfg.Preprocessing.SInERelevanceFilter, "sine", false, "enable SInE relevance filtering")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.CPUSoft = time.Duration(cpuSoftSeconds) * time.Second
	cfg.CPUHard = time.Duration(cpuHardSeconds) * time.Second
	cfg.WallClock = time.Duration(wallClockSeconds) * time.Second

	cfg.InputFiles = fs.Args()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *ProverConfig) validate() error {
	if c.CPUSoft > 0 && c.CPUHard > 0 && c.CPUSoft > c.CPUHard {
		return fmt.Errorf("config: -cpu-soft-limit (%s) exceeds -cpu-hard-limit (%s)", c.CPUSoft, c.CPUHard)
	}
	return nil
}

// UsesStdin reports whether any input file names standard input, per
// spec §6.3 "zero or more input files (absent / - means standard
// input)".
func (c *ProverConfig) UsesStdin() bool {
	if len(c.InputFiles) == 0 {
		return true
	}
	for _, f := range c.InputFiles {
		if f == "-" {
			return true
		}
	}
	return false
}

// UsesStdout reports whether the proof should be written to standard
// output.
func (c *ProverConfig) UsesStdout() bool {
	return c.OutputPath == "" || c.OutputPath == "-"
}
