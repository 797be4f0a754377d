package clause

import (
	"fmt"

	"github.com/saturnix/eprover-core/internal/term"
)

// Indexer is implemented by auxiliary indices attached to a Set (spec
// §2.7, §4.4/§4.5): fingerprint, subterm, overlap, feature-vector and
// function-symbol indices. OnInsert/OnRemove are invoked atomically with
// clause-set membership changes; "insert indexed"/"remove indexed" below
// are the only mutators used once any Indexer is attached (spec §4.4).
type Indexer interface {
	OnInsert(c *Clause)
	OnRemove(c *Clause)
}

// Set is an intrusive doubly linked list of clauses with a sentinel node,
// aggregate counters, and zero or more attached Indexers (spec §2.6, §4.4).
type Set struct {
	Name string

	sentinel  Clause
	cardinality int
	literalTotal int
	weightTotal int

	indexers []Indexer
}

// NewSet creates an empty, self-linked clause set.
func NewSet(name string) *Set {
	s := &Set{Name: name}
	s.sentinel.next = &s.sentinel
	s.sentinel.prev = &s.sentinel
	return s
}

// AttachIndexer registers idx to be notified by future
// InsertIndexed/RemoveIndexed calls (plain Insert/Remove do not notify
// it). It is not retroactively applied to clauses already in the set, so
// callers attach indices before populating a set.
func (s *Set) AttachIndexer(idx Indexer) {
	s.indexers = append(s.indexers, idx)
}

// Cardinality, LiteralTotal, WeightTotal are the incrementally maintained
// aggregate counters (spec §3 "Clause set").
func (s *Set) Cardinality() int  { return s.cardinality }
func (s *Set) LiteralTotal() int { return s.literalTotal }
func (s *Set) WeightTotal() int  { return s.weightTotal }

// Insert appends c to the set without touching any attached indexer. Only
// safe on unindexed scratch sets (spec §4.4 "direct linked-list insertion
// is reserved for unindexed scratch sets").
func (s *Set) Insert(c *Clause) {
	if c.set != nil {
		panic(fmt.Sprintf("clause %s already belongs to set %q", c.Ident, c.set.Name))
	}
	last := s.sentinel.prev
	last.next = c
	c.prev = last
	c.next = &s.sentinel
	s.sentinel.prev = c
	c.set = s

	s.cardinality++
	s.literalTotal += len(c.Literals)
	s.weightTotal += c.StandardWeight
}

// Remove unlinks c from the set without touching any attached indexer.
func (s *Set) Remove(c *Clause) {
	if c.set != s {
		panic(fmt.Sprintf("clause %s does not belong to set %q", c.Ident, s.Name))
	}
	c.prev.next = c.next
	c.next.prev = c.prev
	c.prev, c.next = nil, nil
	c.set = nil

	s.cardinality--
	s.literalTotal -= len(c.Literals)
	s.weightTotal -= c.StandardWeight
}

// InsertIndexed inserts c and notifies every attached indexer (spec §4.4
// "insert indexed").
func (s *Set) InsertIndexed(c *Clause) {
	s.Insert(c)
	for _, idx := range s.indexers {
		idx.OnInsert(c)
	}
}

// RemoveIndexed removes c and notifies every attached indexer (spec §4.4
// "remove indexed").
func (s *Set) RemoveIndexed(c *Clause) {
	for _, idx := range s.indexers {
		idx.OnRemove(c)
	}
	s.Remove(c)
}

// Each iterates clauses in list order. Mutating the set during iteration
// is not supported; collect a snapshot first if needed.
func (s *Set) Each(fn func(*Clause) bool) {
	for c := s.sentinel.next; c != &s.sentinel; c = c.next {
		if !fn(c) {
			return
		}
	}
}

// Slice returns a snapshot of every member clause in list order.
func (s *Set) Slice() []*Clause {
	out := make([]*Clause, 0, s.cardinality)
	s.Each(func(c *Clause) bool {
		out = append(out, c)
		return true
	})
	return out
}

// LiveTerms implements term.Root over every member clause, for term bank
// garbage collection rooted at this set (spec §4.1 collect_garbage).
func (s *Set) LiveTerms() []*term.Term {
	var ts []*term.Term
	s.Each(func(c *Clause) bool {
		ts = append(ts, c.LiveTerms()...)
		return true
	})
	return ts
}
