package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saturnix/eprover-core/internal/order"
)

// TestParse_DefaultsAndInputFiles checks flag defaults and that trailing
// non-flag arguments become input files.
func TestParse_DefaultsAndInputFiles(t *testing.T) {
	cfg, err := Parse("saturate", []string{"a.p", "b.p"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.p", "b.p"}, cfg.InputFiles)
	assert.Equal(t, OrderingAuto, cfg.Ordering)
	assert.Equal(t, InputAuto, cfg.InputFormat)
	assert.Equal(t, OutputTPTP, cfg.OutputFormat)
	assert.True(t, cfg.ProofObject)
	assert.True(t, cfg.UsesStdout())
	assert.False(t, cfg.UsesStdin())
}

// TestParse_NoInputFilesMeansStdin checks the spec §6.3 "absent means
// standard input" rule.
func TestParse_NoInputFilesMeansStdin(t *testing.T) {
	cfg, err := Parse("saturate", nil)
	require.NoError(t, err)
	assert.True(t, cfg.UsesStdin())

	cfg2, err := Parse("saturate", []string{"-"})
	require.NoError(t, err)
	assert.True(t, cfg2.UsesStdin())
}

// TestParse_EnumFlagsAcceptValidValues checks flag.Var wiring for every
// enum-valued option.
func TestParse_EnumFlagsAcceptValidValues(t *testing.T) {
	cfg, err := Parse("saturate", []string{
		"-ordering", "lpo",
		"-input-format", "tptp",
		"-output-format", "pcl2",
		"-literal-selection", "maximal",
	})
	require.NoError(t, err)
	assert.Equal(t, OrderingLPO, cfg.Ordering)
	assert.Equal(t, InputTPTP, cfg.InputFormat)
	assert.Equal(t, OutputPCL2, cfg.OutputFormat)
	assert.Equal(t, SelectMaximal, cfg.LiteralSelection)
}

// TestParse_RejectsUnknownEnumValue checks an invalid ordering is
// reported rather than silently accepted.
func TestParse_RejectsUnknownEnumValue(t *testing.T) {
	_, err := Parse("saturate", []string{"-ordering", "bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ordering")
}

// TestParse_LimitsConvertedToDurations checks the integer-seconds flags
// become time.Duration fields.
func TestParse_LimitsConvertedToDurations(t *testing.T) {
	cfg, err := Parse("saturate", []string{
		"-cpu-soft-limit", "10",
		"-cpu-hard-limit", "30",
		"-wall-clock-limit", "60",
		"-memory-limit", "1048576",
	})
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.CPUSoft)
	assert.Equal(t, 30*time.Second, cfg.CPUHard)
	assert.Equal(t, 60*time.Second, cfg.WallClock)
	assert.Equal(t, uint64(1048576), cfg.Memory)

	limits := cfg.Limits()
	assert.Equal(t, 30*time.Second, limits.CPUHard)
	assert.Equal(t, 60*time.Second, limits.WallClock)
	assert.Equal(t, uint64(1048576), limits.Memory)
}

// TestParse_RejectsSoftLimitAboveHardLimit checks validate() catches an
// inconsistent CPU limit pair.
func TestParse_RejectsSoftLimitAboveHardLimit(t *testing.T) {
	_, err := Parse("saturate", []string{"-cpu-soft-limit", "100", "-cpu-hard-limit", "10"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

// TestResolveOrdering checks explicit selections pass through and "auto"
// follows the presence of equational literals.
func TestResolveOrdering(t *testing.T) {
	lpoCfg := &ProverConfig{Ordering: OrderingLPO}
	assert.Equal(t, order.KindLPO, lpoCfg.ResolveOrdering(true))

	autoCfg := &ProverConfig{Ordering: OrderingAuto}
	assert.Equal(t, order.KindKBO, autoCfg.ResolveOrdering(true))
	assert.Equal(t, order.KindLPO, autoCfg.ResolveOrdering(false))
}

// TestQueueSpecs_BuiltinSchedule checks a named builtin resolves without
// a heuristic file.
func TestQueueSpecs_BuiltinSchedule(t *testing.T) {
	cfg := &ProverConfig{HeuristicName: "fifo"}
	specs, err := cfg.QueueSpecs()
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, "fifo", specs[0].Name)
	assert.Equal(t, 1, specs[0].Steps)
}

// TestQueueSpecs_UnknownBuiltinNameErrors checks an unrecognised
// -heuristic name is rejected.
func TestQueueSpecs_UnknownBuiltinNameErrors(t *testing.T) {
	cfg := &ProverConfig{HeuristicName: "does-not-exist"}
	_, err := cfg.QueueSpecs()
	require.Error(t, err)
}

// TestQueueSpecs_InlineYAMLFile checks an inline heuristic definition
// file overrides the named schedule and resolves weight names.
func TestQueueSpecs_InlineYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "heuristic.yaml")
	doc := "queues:\n" +
		"  - name: refined\n" +
		"    weight: RefinedClauseWeight\n" +
		"    steps: 3\n" +
		"  - name: fifo\n" +
		"    weight: FIFOWeight\n" +
		"    steps: 1\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg := &ProverConfig{HeuristicName: "fifo", HeuristicFile: path}
	specs, err := cfg.QueueSpecs()
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, "refined", specs[0].Name)
	assert.Equal(t, 3, specs[0].Steps)
	assert.Equal(t, "fifo", specs[1].Name)
}

// TestQueueSpecs_UnknownWeightNameErrors checks an inline definition
// naming an unrecognised weight function is rejected rather than
// silently dropped.
func TestQueueSpecs_UnknownWeightNameErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "heuristic.yaml")
	doc := "queues:\n  - name: bad\n    weight: NoSuchWeight\n    steps: 1\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg := &ProverConfig{HeuristicFile: path}
	_, err := cfg.QueueSpecs()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoSuchWeight")
}
