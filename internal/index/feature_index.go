package index

import "github.com/saturnix/eprover-core/internal/clause"

// FeatureVectorIndex retrieves subsumption candidates (spec §4.5.2). It is
// a two-level trie keyed by (positive-literal-count, negative-literal-count)
// — the two cheapest, most discriminating features — bucketing entries
// that share them; within a bucket, candidates are narrowed by the full
// Features.LE monotonicity check. This keeps the "trie over feature
// vectors supporting downward/upward traversal" shape of spec §4.5.2
// while keeping the implementation small; a deeper trie over every
// feature component would narrow buckets further but is a pure
// performance refinement, not a correctness one (see DESIGN.md).
type FeatureVectorIndex struct {
	buckets map[[2]int]map[string]Features
}

func NewFeatureVectorIndex() *FeatureVectorIndex {
	return &FeatureVectorIndex{buckets: make(map[[2]int]map[string]Features)}
}

func bucketKey(f Features) [2]int { return [2]int{f[featPosLits], f[featNegLits]} }

// OnInsert implements clause.Indexer.
func (fvi *FeatureVectorIndex) OnInsert(c *clause.Clause) {
	f := ComputeFeatures(c)
	k := bucketKey(f)
	b, ok := fvi.buckets[k]
	if !ok {
		b = make(map[string]Features)
		fvi.buckets[k] = b
	}
	b[c.Ident] = f
}

// OnRemove implements clause.Indexer.
func (fvi *FeatureVectorIndex) OnRemove(c *clause.Clause) {
	f := ComputeFeatures(c)
	k := bucketKey(f)
	if b, ok := fvi.buckets[k]; ok {
		delete(b, c.Ident)
		if len(b) == 0 {
			delete(fvi.buckets, k)
		}
	}
}

// CandidatesThatMaySubsume returns idents of indexed clauses f such that
// f <= query, i.e. candidates that might subsume a clause with features
// query (spec §4.5.2 "downward traversal"). Empty result is a sound proof
// that nothing in the set subsumes query (spec §8 "Feature-vector
// necessity").
func (fvi *FeatureVectorIndex) CandidatesThatMaySubsume(query Features) []string {
	var out []string
	for k, bucket := range fvi.buckets {
		if k[0] > query[featPosLits] || k[1] > query[featNegLits] {
			continue
		}
		for ident, f := range bucket {
			if f.LE(query) {
				out = append(out, ident)
			}
		}
	}
	return out
}

// CandidatesThatMayBeSubsumedBy returns idents of indexed clauses g such
// that query <= g (spec §4.5.2 "upward traversal"), used by back-simplification
// to find processed clauses the given clause might subsume.
func (fvi *FeatureVectorIndex) CandidatesThatMayBeSubsumedBy(query Features) []string {
	var out []string
	for k, bucket := range fvi.buckets {
		if k[0] < query[featPosLits] || k[1] < query[featNegLits] {
			continue
		}
		for ident, f := range bucket {
			if query.LE(f) {
				out = append(out, ident)
			}
		}
	}
	return out
}
