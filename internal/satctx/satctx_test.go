package satctx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saturnix/eprover-core/internal/heuristic"
	"github.com/saturnix/eprover-core/internal/loop"
	"github.com/saturnix/eprover-core/internal/order"
	"github.com/saturnix/eprover-core/internal/symtab"
	"github.com/saturnix/eprover-core/internal/term"
)

func newTestState() *loop.State {
	sig := symtab.NewBank()
	bank := term.NewBank(sig)
	trueConst := bank.MustIntern(symtab.CodeTrue, nil)
	hcb := heuristic.NewHCB(heuristic.NewContext(nil, 1), []heuristic.QueueSpec{
		{Name: "fifo", Weight: heuristic.FIFOWeight, Steps: 1},
	})
	ord := order.New(order.KindKBO, order.NewPrecedence(nil, 1))
	return loop.NewState(bank, sig, ord, hcb, trueConst)
}

// TestContext_ReasonDefaultsToNone checks a fresh Context hasn't tripped
// any limit.
func TestContext_ReasonDefaultsToNone(t *testing.T) {
	c := New(newTestState(), Limits{})
	assert.Equal(t, LimitNone, c.Reason())
	assert.False(t, c.State.Interrupted())
}

// TestContext_WatchTripsWallClockLimit checks the monitor interrupts the
// state and records the wall-clock reason once the deadline passes.
func TestContext_WatchTripsWallClockLimit(t *testing.T) {
	c := New(newTestState(), Limits{WallClock: 10 * time.Millisecond})
	stop := c.Watch(2 * time.Millisecond)
	defer stop()

	require.Eventually(t, func() bool {
		return c.State.Interrupted()
	}, 200*time.Millisecond, 2*time.Millisecond)

	assert.Equal(t, LimitWallClock, c.Reason())
}

// TestContext_WatchRecordsOnlyFirstTrippedLimit checks a CPU limit that
// fires after the wall-clock limit does not overwrite the reason.
func TestContext_WatchRecordsOnlyFirstTrippedLimit(t *testing.T) {
	c := New(newTestState(), Limits{WallClock: 5 * time.Millisecond, CPUHard: 6 * time.Millisecond})
	stop := c.Watch(time.Millisecond)
	defer stop()

	require.Eventually(t, func() bool {
		return c.Reason() != LimitNone
	}, 200*time.Millisecond, time.Millisecond)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, LimitWallClock, c.Reason())
}

// TestContext_ExitCode checks the Status+Reason-to-exit-code mapping for
// every case spec §7 distinguishes.
func TestContext_ExitCode(t *testing.T) {
	cases := []struct {
		name   string
		status loop.Status
		reason LimitReason
		want   int
	}{
		{"unsatisfiable", loop.StatusUnsatisfiable, LimitNone, 0},
		{"satisfiable", loop.StatusSatisfiable, LimitNone, 0},
		{"resource out", loop.StatusResourceOut, LimitNone, 4},
		{"interrupted, no reason recorded", loop.StatusInterrupted, LimitNone, 4},
		{"interrupted by cpu", loop.StatusInterrupted, LimitCPU, 5},
		{"interrupted by memory", loop.StatusInterrupted, LimitMemory, 6},
		{"interrupted by wall clock", loop.StatusInterrupted, LimitWallClock, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := New(newTestState(), Limits{})
			c.reason.Store(tc.reason)
			got := c.ExitCode(loop.Result{Status: tc.status})
			assert.Equal(t, tc.want, got)
		})
	}
}
