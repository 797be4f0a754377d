package index

import (
	"sort"

	"github.com/saturnix/eprover-core/internal/term"
)

// Payload identifies one occurrence a fingerprint/subterm index entry
// refers back to: a clause (by ident, to keep the index decoupled from
// the clause package) and the literal/side/subterm within it.
type Payload struct {
	ClauseIdent string
	LiteralIdx  int
	Side        int   // 0 = LHS, 1 = RHS
	Path        []int // position of Term within the literal side, root = nil/empty
	Term        *term.Term
}

type fpNode struct {
	children map[Sample]*fpNode
	payloads []Payload
}

func newFPNode() *fpNode { return &fpNode{children: make(map[Sample]*fpNode)} }

// FingerprintIndex is the trie over fingerprint vectors described in spec
// §4.5.1: each leaf stores the set of clause/position pairs sharing that
// fingerprint.
type FingerprintIndex struct {
	positions []Position
	root      *fpNode
}

// NewFingerprintIndex builds an empty index over the given positions
// (DefaultPositions if nil).
func NewFingerprintIndex(positions []Position) *FingerprintIndex {
	if positions == nil {
		positions = DefaultPositions
	}
	return &FingerprintIndex{positions: positions, root: newFPNode()}
}

// Insert adds payload (whose Term is the indexed subterm) at its
// fingerprint's trie path.
func (idx *FingerprintIndex) Insert(p Payload) {
	fp := Compute(p.Term, idx.positions)
	node := idx.root
	for _, s := range fp {
		child, ok := node.children[s]
		if !ok {
			child = newFPNode()
			node.children[s] = child
		}
		node = child
	}
	node.payloads = append(node.payloads, p)
}

// Remove deletes every payload matching pred from the trie node at the
// path of t's fingerprint, if that path exists.
func (idx *FingerprintIndex) Remove(t *term.Term, pred func(Payload) bool) {
	fp := Compute(t, idx.positions)
	node := idx.root
	path := make([]*fpNode, 0, len(fp)+1)
	path = append(path, node)
	for _, s := range fp {
		child, ok := node.children[s]
		if !ok {
			return
		}
		path = append(path, child)
		node = child
	}
	kept := node.payloads[:0]
	for _, p := range node.payloads {
		if !pred(p) {
			kept = append(kept, p)
		}
	}
	node.payloads = kept
}

// FindUnifiable visits every payload whose indexed term is not ruled out
// as unifiable with query by the fingerprint compatibility tables (spec
// §4.5.1 find_unifiable). It is a sound over-approximation: every
// genuinely unifiable term is visited (spec §8 "Fingerprint safety"), but
// visitees must still be checked with a real unification attempt.
func (idx *FingerprintIndex) FindUnifiable(query *term.Term, visit func(Payload)) {
	qfp := Compute(query, idx.positions)
	idx.walk(idx.root, qfp, 0, UnifiableCompatible, visit)
}

// FindMatchable is the one-sided analogue for matching (spec §4.5.1
// find_matchable); query acts as the pattern.
func (idx *FingerprintIndex) FindMatchable(query *term.Term, visit func(Payload)) {
	qfp := Compute(query, idx.positions)
	idx.walk(idx.root, qfp, 0, MatchableCompatible, visit)
}

func (idx *FingerprintIndex) walk(node *fpNode, qfp Fingerprint, depth int, compatible func(indexed, query Sample) bool, visit func(Payload)) {
	if depth == len(qfp) {
		for _, p := range node.payloads {
			visit(p)
		}
		return
	}
	for _, label := range sortedLabels(node.children) {
		if compatible(label, qfp[depth]) {
			idx.walk(node.children[label], qfp, depth+1, compatible, visit)
		}
	}
}

// sortedLabels orders children's Sample keys by (Kind, Code) so walk's
// descent order does not depend on Go's randomized map iteration (spec
// §5: "the enumeration order of children is fixed by the iteration order
// of indices; tests rely on this determinism").
func sortedLabels(children map[Sample]*fpNode) []Sample {
	labels := make([]Sample, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if labels[i].Kind != labels[j].Kind {
			return labels[i].Kind < labels[j].Kind
		}
		return labels[i].Code < labels[j].Code
	})
	return labels
}
