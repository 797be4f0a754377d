// Package index implements the indexing substrate (spec §2.7, §4.5):
// fingerprint indices, the feature-vector subsumption index, subterm and
// overlap indices, and a unit-clause fast path, all bundled the way
// original_source/CLAUSES/ccl_global_indices.c bundles them into one
// rebuildable unit (spec SPEC_FULL.md §C).
//
// Grounded on the teacher's internal/ir optimizations.go, which builds a
// position-keyed lookup structure over IR values to drive common
// subexpression elimination; generalized here from a flat value map to a
// trie over fixed-length position samples.
package index

import "github.com/saturnix/eprover-core/internal/term"

// SampleKind classifies one entry of a fingerprint vector (spec §4.5.1).
type SampleKind uint8

const (
	SampleSymbol SampleKind = iota
	SampleVariable
	SampleBelowVariable // the path was cut off by a variable higher up
	SampleNotInTerm      // the position does not exist in this term
)

// Sample is one fingerprint vector entry.
type Sample struct {
	Kind SampleKind
	Code int32 // valid iff Kind == SampleSymbol
}

// Position is a path from the term root: a sequence of argument indices.
type Position []int

// DefaultPositions is a fixed, small position set ("root, first argument,
// first-of-first, second, second-of-first, …") matching the shape spec
// §4.5.1 describes; six samples balances discriminating power against
// fingerprint-vector size.
var DefaultPositions = []Position{
	{},
	{0},
	{0, 0},
	{1},
	{1, 0},
	{0, 1},
}

// Fingerprint is the fixed-length vector of samples for a term.
type Fingerprint []Sample

// Compute builds the fingerprint of t at the given positions.
func Compute(t *term.Term, positions []Position) Fingerprint {
	fp := make(Fingerprint, len(positions))
	for i, pos := range positions {
		fp[i] = sampleAt(t, pos)
	}
	return fp
}

func sampleAt(t *term.Term, path []int) Sample {
	cur := t
	for _, idx := range path {
		if cur.IsVar {
			return Sample{Kind: SampleBelowVariable}
		}
		if idx >= len(cur.Args) {
			return Sample{Kind: SampleNotInTerm}
		}
		cur = cur.Args[idx]
	}
	if cur.IsVar {
		return Sample{Kind: SampleVariable}
	}
	return Sample{Kind: SampleSymbol, Code: int32(cur.Code)}
}

// UnifiableCompatible reports whether an indexed sample and a query
// sample could stand in a unifiable term pair at that position (spec
// §4.5.1): below-variable is compatible with every sample, since
// instantiating that variable can supply or omit the position; otherwise
// not-in-term is compatible only with not-in-term, a variable with any
// symbol or variable, and two symbols only when equal. The relation is
// symmetric, matching the "find_unifiable" contract.
func UnifiableCompatible(indexed, query Sample) bool {
	if indexed.Kind == SampleBelowVariable || query.Kind == SampleBelowVariable {
		return true
	}
	if indexed.Kind == SampleNotInTerm || query.Kind == SampleNotInTerm {
		return indexed.Kind == SampleNotInTerm && query.Kind == SampleNotInTerm
	}
	if indexed.Kind == SampleVariable || query.Kind == SampleVariable {
		return true
	}
	return indexed.Code == query.Code
}

// MatchableCompatible is the one-sided version used by find_matchable:
// query is the pattern side (its variables match anything), indexed is
// the already-stored instance side (its variables do NOT match a
// concrete query symbol, since matching treats instance variables as
// constants, spec §4.2).
func MatchableCompatible(indexed, query Sample) bool {
	if query.Kind == SampleVariable || query.Kind == SampleBelowVariable {
		return true
	}
	if query.Kind == SampleNotInTerm || indexed.Kind == SampleNotInTerm {
		return indexed.Kind == SampleNotInTerm && query.Kind == SampleNotInTerm
	}
	if indexed.Kind == SampleBelowVariable {
		return true
	}
	if indexed.Kind == SampleVariable {
		return false
	}
	return indexed.Code == query.Code
}
