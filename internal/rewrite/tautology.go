package rewrite

import "github.com/saturnix/eprover-core/internal/clause"

// IsTautology reports whether c is trivially valid (spec §4.6): it
// contains a reflexive positive equation (s = s), or a pair of
// syntactically complementary literals.
func IsTautology(c *clause.Clause) bool {
	for _, l := range c.Literals {
		if l.Positive && l.LHS == l.RHS {
			return true
		}
	}
	for i := range c.Literals {
		for j := i + 1; j < len(c.Literals); j++ {
			if c.Literals[i].Complementary(c.Literals[j]) {
				return true
			}
		}
	}
	return false
}
