// Package verify independently checks a satisfying assignment against the
// original clause set — the external collaborator spec.md §1 calls out as
// out of the CDCL core's scope, and the checker spec §8's soundness
// property is defined against.
package verify

import (
	"fmt"

	"github.com/samber/lo"
)

// Model maps a DIMACS variable (1..V) to its assigned truth value.
type Model map[int]bool

// Violation describes one clause the model fails to satisfy.
type Violation struct {
	ClauseIndex int
	Clause      []int
}

func (v Violation) String() string {
	return fmt.Sprintf("clause %d %v is not satisfied", v.ClauseIndex, v.Clause)
}

// Check evaluates every clause (each a slice of signed DIMACS literals)
// against model, independently of however the model was produced. It
// returns every unsatisfied clause rather than stopping at the first, so
// a caller can report the full extent of an unsound result.
func Check(clauses [][]int, model Model) []Violation {
	var violations []Violation
	for i, clause := range clauses {
		satisfied := lo.SomeBy(clause, func(lit int) bool {
			v := lit
			if v < 0 {
				v = -v
			}
			val, ok := model[v]
			if !ok {
				return false
			}
			if lit < 0 {
				return !val
			}
			return val
		})
		if !satisfied {
			violations = append(violations, Violation{ClauseIndex: i, Clause: clause})
		}
	}
	return violations
}

// IsModel reports whether model satisfies every clause.
func IsModel(clauses [][]int, model Model) bool {
	return len(Check(clauses, model)) == 0
}
