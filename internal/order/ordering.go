package order

import (
	"fmt"
	"sync"

	"github.com/saturnix/eprover-core/internal/term"
)

// Kind selects which simplification ordering an Ordering enforces.
type Kind uint8

const (
	KindKBO Kind = iota
	KindLPO
)

// Ordering is a total simplification ordering determined by a precedence,
// a kind (LPO/KBO), and (transparently, for KBO) the precedence's weight
// function (spec §4.3).
type Ordering struct {
	Kind Kind
	Prec *Precedence

	cache   map[pairKey]Result
	cacheMu sync.Mutex
}

type pairKey struct{ s, t *term.Term }

// New creates an ordering of the given kind over prec, with an empty
// comparison cache.
func New(kind Kind, prec *Precedence) *Ordering {
	return &Ordering{Kind: kind, Prec: prec, cache: make(map[pairKey]Result)}
}

// Compare returns the ordering relation between s and t, consulting and
// updating the comparison cache (spec §4.3 "a comparison cache keyed by
// ordered term pairs"). Cached negative results (NotGreaterEqual /
// NotLessEqual) are strengthened to a definitive result in place when a
// fuller comparison determines one; a contradictory insertion is an
// internal invariant violation (spec §4.3 "contradictory insertions
// violate the invariant").
func (o *Ordering) Compare(s, t *term.Term) Result {
	key := pairKey{s, t}

	o.cacheMu.Lock()
	if cached, ok := o.cache[key]; ok && cached.definitive() {
		o.cacheMu.Unlock()
		return cached
	}
	priorNegative, hadPrior := o.cache[key]
	o.cacheMu.Unlock()

	var result Result
	switch o.Kind {
	case KindLPO:
		result = lpoCompare(o.Prec, s, t)
	default:
		result = kboCompare(o.Prec, s, t)
	}

	o.cacheMu.Lock()
	defer o.cacheMu.Unlock()
	if hadPrior {
		if err := checkConsistent(priorNegative, result); err != nil {
			panic(err)
		}
	}
	o.cache[key] = result
	// The flipped pair gets the flipped relation for free.
	o.cache[pairKey{t, s}] = result.Flip()
	return result
}

// checkConsistent verifies that strengthening prior (a cached negative
// result) to next does not contradict it.
func checkConsistent(prior, next Result) error {
	switch prior {
	case NotGreaterEqual:
		if next == Greater || next == Equal {
			return fmt.Errorf("ordering cache contradiction: cached NotGreaterEqual but recomputed %v", next)
		}
	case NotLessEqual:
		if next == Less || next == Equal {
			return fmt.Errorf("ordering cache contradiction: cached NotLessEqual but recomputed %v", next)
		}
	}
	return nil
}

// QuickNotGreaterEqual records a cheap negative result (e.g. derived from
// a weight-only pre-filter) without performing the full comparison. It is
// the "produced before completing a full comparison" cacheable refutation
// from spec §4.3. Caches nothing if a definitive result already exists
// for the pair.
func (o *Ordering) QuickNotGreaterEqual(s, t *term.Term) {
	o.cacheNegative(s, t, NotGreaterEqual)
}

func (o *Ordering) QuickNotLessEqual(s, t *term.Term) {
	o.cacheNegative(s, t, NotLessEqual)
}

func (o *Ordering) cacheNegative(s, t *term.Term, neg Result) {
	key := pairKey{s, t}
	o.cacheMu.Lock()
	defer o.cacheMu.Unlock()
	if cached, ok := o.cache[key]; ok {
		if err := checkConsistent(cached, neg); err != nil {
			panic(err)
		}
		if cached.definitive() {
			return
		}
	}
	o.cache[key] = neg
}

// Greater is a convenience boolean check used pervasively by rewriting and
// generating inferences (spec §4.6, §4.7: "lσ ≻ rσ").
func (o *Ordering) Greater(s, t *term.Term) bool {
	return o.Compare(s, t) == Greater
}

// InvalidateCache drops the whole comparison cache. Needed whenever the
// precedence or weight function changes (e.g. after "auto" precedence
// selection runs at initialization).
func (o *Ordering) InvalidateCache() {
	o.cacheMu.Lock()
	defer o.cacheMu.Unlock()
	o.cache = make(map[pairKey]Result)
}
