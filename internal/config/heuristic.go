package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/saturnix/eprover-core/internal/heuristic"
)

// heuristicFile is the YAML shape of an inline heuristic definition
// (spec §6.3 "heuristic name or inline heuristic definition"): a cyclic
// schedule of named weight functions, each run for a number of steps
// before the schedule advances (spec §4.8). Parsed the same way
// tliron/kutil loads its own YAML configuration documents.
type heuristicFile struct {
	Queues []queueSpecFile `yaml:"queues"`
}

type queueSpecFile struct {
	Name   string `yaml:"name"`
	Weight string `yaml:"weight"`
	Steps  int    `yaml:"steps"`
}

// weightByName is the registry of weight functions an inline heuristic
// definition may name: the functions internal/heuristic exports for spec
// §4.8's named weight families, except RandomizedWeight, which is not
// registered.
var weightByName = map[string]heuristic.WeightFunc{
	"RefinedClauseWeight":       heuristic.RefinedClauseWeight,
	"DiversityWeight":           heuristic.DiversityWeight,
	"FIFOWeight":                heuristic.FIFOWeight,
	"FIFOPlusWeightBlend":       heuristic.FIFOPlusWeightBlend,
	"SimilarityOfEquationSides": heuristic.SimilarityOfEquationSides,
	"ConjectureSymbolWeight":    heuristic.ConjectureSymbolWeight,
}


// builtinSchedules are the -heuristic names available without an inline
// definition file.
var builtinSchedules = map[string][]queueSpecFile{
	"fifo": {
		{Name: "fifo", Weight: "FIFOWeight", Steps: 1},
	},
	"refined": {
		{Name: "refined", Weight: "RefinedClauseWeight", Steps: 4},
		{Name: "fifo", Weight: "FIFOWeight", Steps: 1},
	},
	"goal-directed": {
		{Name: "conjecture", Weight: "ConjectureSymbolWeight", Steps: 3},
		{Name: "refined", Weight: "RefinedClauseWeight", Steps: 2},
		{Name: "fifo", Weight: "FIFOWeight", Steps: 1},
	},
}

// QueueSpecs resolves the configured heuristic — an inline YAML
// definition file if HeuristicFile is set, otherwise a named builtin
// schedule — into the []heuristic.QueueSpec internal/heuristic.NewHCB
// expects.
func (c *ProverConfig) QueueSpecs() ([]heuristic.QueueSpec, error) {
	var raw []queueSpecFile
	if c.HeuristicFile != "" {
		data, err := os.ReadFile(c.HeuristicFile)
		if err != nil {
			return nil, fmt.Errorf("config: reading heuristic file %s: %w", c.HeuristicFile, err)
		}
		var hf heuristicFile
		if err := yaml.Unmarshal(data, &hf); err != nil {
			return nil, fmt.Errorf("config: parsing heuristic file %s: %w", c.HeuristicFile, err)
		}
		raw = hf.Queues
	} else {
		var ok bool
		raw, ok = builtinSchedules[c.HeuristicName]
		if !ok {
			return nil, fmt.Errorf("config: unknown heuristic schedule %q", c.HeuristicName)
		}
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("config: heuristic schedule has no queues")
	}

	specs := make([]heuristic.QueueSpec, len(raw))
	for i, q := range raw {
		wf, ok := weightByName[q.Weight]
		if !ok {
			return nil, fmt.Errorf("config: unknown weight function %q in queue %q", q.Weight, q.Name)
		}
		steps := q.Steps
		if steps <= 0 {
			steps = 1
		}
		specs[i] = heuristic.QueueSpec{Name: q.Name, Weight: wf, Steps: steps}
	}
	return specs, nil
}
