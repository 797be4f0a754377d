// Package satctx implements the single "saturation context" object of
// spec §9's "Global state" design note: several process-wide counters
// (fresh clause identifier, fresh Skolem index, interrupt flag) are
// modeled as fields of one object whose lifetime is the process, shared
// by every long-lived component, rather than as free-floating globals.
// internal/loop.State already owns the identifier generator and
// interrupt flag; Context wraps a State with the one thing it does not
// own — resource-limit monitoring (spec §6.3's CPU/memory/wall-clock
// limits, spec §9's "cooperative... monotonic deadline checked at loop
// top" reimplementation of the source's signal-driven time limits).
package satctx

import (
	"runtime"
	"sync/atomic"
	"time"

	"github.com/sasha-s/go-deadlock"

	"github.com/saturnix/eprover-core/internal/loop"
	"github.com/saturnix/eprover-core/internal/proverrors"
)

// LimitReason names which resource limit tripped first (spec §7
// "Resource errors (CPU limit, memory limit, wall-clock limit) ...
// exit code distinguishes each").
type LimitReason string

const (
	LimitNone      LimitReason = ""
	LimitCPU       LimitReason = "cpu"
	LimitMemory    LimitReason = "memory"
	LimitWallClock LimitReason = "wall_clock"
)

// Limits are the resource ceilings of spec §6.3. Zero means unlimited in
// every field.
type Limits struct {
	CPUHard   time.Duration
	WallClock time.Duration
	Memory    uint64 // bytes, compared against runtime.MemStats.Alloc
}

// Context is the shared saturation context: a reference to the loop
// state every long-lived component receives, plus the resource limits
// and tripped-limit bookkeeping that decides which exit code a run ends
// with. The guarding mutex is sasha-s/go-deadlock rather than sync.Mutex
// so an accidental nested lock — which would violate spec §5's
// single-thread saturation discipline — surfaces as an immediate
// diagnostic instead of a silent hang.
type Context struct {
	mu deadlock.Mutex

	State  *loop.State
	Limits Limits

	start  time.Time
	reason atomic.Value
}

// New builds a Context around an already-initialized loop.State.
func New(state *loop.State, limits Limits) *Context {
	c := &Context{State: state, Limits: limits, start: time.Now()}
	c.reason.Store(LimitNone)
	return c
}

// Reason reports which limit (if any) has tripped so far.
func (c *Context) Reason() LimitReason {
	return c.reason.Load().(LimitReason)
}

// Watch starts a background goroutine that polls elapsed wall-clock time,
// CPU-hard deadline, and memory use against Limits every poll interval,
// interrupting State and recording the first tripped reason. It returns a
// stop function; callers should defer it so the goroutine does not
// outlive the saturation run.
func (c *Context) Watch(poll time.Duration) (stop func()) {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(poll)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				c.check()
			}
		}
	}()
	return func() { close(done) }
}

func (c *Context) check() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Reason() != LimitNone {
		return
	}

	elapsed := time.Since(c.start)
	switch {
	case c.Limits.WallClock > 0 && elapsed >= c.Limits.WallClock:
		c.trip(LimitWallClock)
	case c.Limits.CPUHard > 0 && elapsed >= c.Limits.CPUHard:
		c.trip(LimitCPU)
	case c.Limits.Memory > 0:
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		if m.Alloc >= c.Limits.Memory {
			c.trip(LimitMemory)
		}
	}
}

func (c *Context) trip(reason LimitReason) {
	c.reason.Store(reason)
	c.State.Interrupt()
}

// ExitCode maps a loop.Result and this Context's tripped-limit state to
// one of internal/proverrors' stable exit codes (spec §7 "exit code
// distinguishes each").
func (c *Context) ExitCode(res loop.Result) int {
	switch res.Status {
	case loop.StatusUnsatisfiable, loop.StatusSatisfiable:
		return proverrors.ExitSuccess
	case loop.StatusResourceOut:
		return proverrors.ExitResourceOut
	case loop.StatusInterrupted:
		switch c.Reason() {
		case LimitCPU:
			return proverrors.ExitCPULimit
		case LimitMemory:
			return proverrors.ExitMemoryLimit
		case LimitWallClock:
			return proverrors.ExitWallClockLimit
		default:
			return proverrors.ExitResourceOut
		}
	default:
		return proverrors.ExitUsageError
	}
}
