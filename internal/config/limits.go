package config

import (
	"github.com/saturnix/eprover-core/internal/order"
	"github.com/saturnix/eprover-core/internal/satctx"
)

// Limits converts the parsed CPU/memory/wall-clock options into the
// satctx.Limits a saturation run's resource monitor consults. Spec
// §6.3's "CPU soft time limit" has no separate analogue in the
// cooperative monitor of spec §9 (a soft limit is advisory in the
// original, not a kill threshold); only the hard CPU limit, wall-clock
// limit, and memory limit feed the monitor that interrupts the loop.
func (c *ProverConfig) Limits() satctx.Limits {
	return satctx.Limits{
		CPUHard:   c.CPUHard,
		WallClock: c.WallClock,
		Memory:    c.Memory,
	}
}

// ResolveOrdering picks a concrete order.Kind for the "auto" selector
// (spec §6.3 "ordering selector: LPO / KBO / auto"). hasEquality comes
// from the caller's inspection of the input's literals: KBO's weight
// function handles equational reasoning more predictably than LPO, so
// "auto" prefers KBO whenever the problem contains any equational
// literal, and falls back to LPO otherwise — a simplification of the
// original's heuristic auto-mode symbol-precedence analysis.
func (c *ProverConfig) ResolveOrdering(hasEquality bool) order.Kind {
	switch c.Ordering {
	case OrderingLPO:
		return order.KindLPO
	case OrderingKBO:
		return order.KindKBO
	default:
		if hasEquality {
			return order.KindKBO
		}
		return order.KindLPO
	}
}
