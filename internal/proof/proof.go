// Package proof reconstructs and renders the derivation DAG (spec §3
// "proof object", §4.10 "proof extraction"): given the empty clause,
// walk derivation links backward, emit the reachable sub-DAG in
// dependency order, and optionally report just its axiom leaves.
//
// Grounded on the teacher's internal/ir dead-code-elimination pass
// (internal/ir/optimizations.go), which walks a value graph backward
// from a set of roots marking reachable nodes — generalized here from
// liveness marking to proof-step topological ordering.
package proof

import (
	"sort"

	"github.com/saturnix/eprover-core/internal/clause"
)

// Step is one emitted proof step (spec §4.10 "identifier, literals,
// inference rule, immediate parents' identifiers").
type Step struct {
	Ident     string
	Literals  []*clause.Literal
	Inference clause.InferenceKind
	Parents   []string
}

// String renders a step as "ident : literals : inference(parents...)",
// a plain-text rendering independent of the PCL2 wire format
// (internal/syntax/pcl2 owns that).
func (s Step) String() string {
	lits := ""
	if len(s.Literals) == 0 {
		lits = "$false"
	}
	for i, l := range s.Literals {
		if i > 0 {
			lits += " | "
		}
		lits += l.String()
	}
	out := s.Ident + " : " + lits + " : " + string(s.Inference)
	if len(s.Parents) > 0 {
		out += "("
		for i, p := range s.Parents {
			if i > 0 {
				out += ", "
			}
			out += p
		}
		out += ")"
	}
	return out
}

// Extract walks empty's derivation links backward and returns every
// reachable clause as a Step, in dependency order: every step's parents
// appear earlier in the returned slice (spec §4.10 "emit the DAG in
// dependency order"). Shared ancestors are visited once, matching the
// DAG (not tree) shape derivation links can form.
func Extract(empty *clause.Clause) []Step {
	visited := make(map[string]bool)
	var order []Step

	var visit func(c *clause.Clause)
	visit = func(c *clause.Clause) {
		if visited[c.Ident] {
			return
		}
		visited[c.Ident] = true
		if c.Derivation != nil {
			for _, p := range c.Derivation.Parents {
				visit(p)
			}
		}
		order = append(order, stepOf(c))
	}
	visit(empty)
	return order
}

func stepOf(c *clause.Clause) Step {
	kind := clause.InferenceInitial
	var parents []string
	if c.Derivation != nil {
		kind = c.Derivation.Kind
		for _, p := range c.Derivation.Parents {
			parents = append(parents, p.Ident)
		}
	}
	return Step{Ident: c.Ident, Literals: c.Literals, Inference: kind, Parents: parents}
}

// AxiomsUsed returns the sorted idents of every leaf (derivation-less, or
// initial) clause reachable from empty — the separate "axioms used" mode
// of spec §4.10.
func AxiomsUsed(empty *clause.Clause) []string {
	visited := make(map[string]bool)
	var axioms []string

	var visit func(c *clause.Clause)
	visit = func(c *clause.Clause) {
		if visited[c.Ident] {
			return
		}
		visited[c.Ident] = true
		if c.Derivation == nil || len(c.Derivation.Parents) == 0 {
			axioms = append(axioms, c.Ident)
			return
		}
		for _, p := range c.Derivation.Parents {
			visit(p)
		}
	}
	visit(empty)
	sort.Strings(axioms)
	return axioms
}
