// Package pcl implements the PCL2 proof-trace model (spec §6.1, §6.2):
// each step is `id : clause : justification [: extra]`, where id is a
// dotted non-empty sequence of positive integers and justification is an
// operator plus parent-id arguments (`paramod(id1, id2)`, `initial`,
// `factor(id)`).
//
// Grounded on internal/proof's dependency-ordered Step list: FromProofSteps
// is the bridge from that package's ident-keyed derivation steps to PCL2's
// own positional ID scheme.
package pcl

import (
	"fmt"
	"strings"

	"github.com/saturnix/eprover-core/internal/clause"
	"github.com/saturnix/eprover-core/internal/proof"
)

// ID is a dotted non-empty sequence of positive integers (spec §6.1).
type ID []int

func (id ID) String() string {
	parts := make([]string, len(id))
	for i, n := range id {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ".")
}

// Justification is an inference expression: an operator plus parent-id
// arguments (spec §6.1).
type Justification struct {
	Op      string
	Parents []ID
}

func (j Justification) String() string {
	if len(j.Parents) == 0 {
		return j.Op
	}
	parts := make([]string, len(j.Parents))
	for i, p := range j.Parents {
		parts[i] = p.String()
	}
	return fmt.Sprintf("%s(%s)", j.Op, strings.Join(parts, ", "))
}

// Step is one line of a PCL2 trace.
type Step struct {
	ID            ID
	Literals      []*clause.Literal
	Justification Justification
	Extra         string
}

// String renders s as "id : clause : justification", omitting Extra when
// empty (spec §6.1 "[: extra]" is optional).
func (s Step) String() string {
	lits := "$false"
	if len(s.Literals) > 0 {
		parts := make([]string, len(s.Literals))
		for i, l := range s.Literals {
			parts[i] = l.String()
		}
		lits = strings.Join(parts, " | ")
	}
	out := fmt.Sprintf("%s : %s : %s", s.ID, lits, s.Justification)
	if s.Extra != "" {
		out += " : " + s.Extra
	}
	return out + "."
}

// FromProofSteps assigns sequential single-component PCL2 idents to a
// dependency-ordered proof.Step list (internal/proof.Extract's output)
// and rewrites each step's parent references from clause idents to the
// matching PCL2 ID. Since Extract already emits parents before children,
// every parent ident is already in idOf by the time a later step needs
// it.
func FromProofSteps(steps []proof.Step) []Step {
	idOf := make(map[string]ID, len(steps))
	out := make([]Step, len(steps))
	for i, s := range steps {
		id := ID{i + 1}
		idOf[s.Ident] = id

		parents := make([]ID, 0, len(s.Parents))
		for _, p := range s.Parents {
			if pid, ok := idOf[p]; ok {
				parents = append(parents, pid)
			}
		}
		out[i] = Step{
			ID:            id,
			Literals:      s.Literals,
			Justification: Justification{Op: string(s.Inference), Parents: parents},
		}
	}
	return out
}
