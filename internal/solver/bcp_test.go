package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropagateUnitImplicationChain(t *testing.T) {
	const numVars = 3
	db := NewClauseDB(numVars, 0)
	trail := NewTrail(numVars)
	heur := NewHeuristic(DeciderOrdered, numVars)
	restarter := NewRestarter(RestartNone)

	// (x1 v x2) & (-x1 v x3): deciding x1=false should force x2=true
	// through the first clause and leave x3 free.
	db.Add([]Lit{l(1, numVars), l(2, numVars)}, false)
	db.Add([]Lit{l(-1, numVars), l(3, numVars)}, false)

	trail.Push(Var(1), False, 1, AntecedentDecision)
	outcome, _ := Propagate(trail, db, heur, restarter, numVars, 1, 0)

	require.Equal(t, NoConflict, outcome)
	assert.Equal(t, True, trail.Value(Var(2)))
	assert.Equal(t, Unassigned, trail.Value(Var(3))) // -x1 v x3 is already satisfied by x1=false
}

func TestPropagateDetectsConflict(t *testing.T) {
	const numVars = 2
	db := NewClauseDB(numVars, 0)
	trail := NewTrail(numVars)
	heur := NewHeuristic(DeciderOrdered, numVars)
	restarter := NewRestarter(RestartNone)

	db.Add([]Lit{l(1, numVars), l(2, numVars)}, false)
	db.Add([]Lit{l(1, numVars), l(-2, numVars)}, false)

	trail.Push(Var(1), False, 1, AntecedentDecision)
	trail.Push(Var(2), False, 1, ClauseIDUndef) // forced true by the first clause, but set false directly

	outcome, clauseID := Propagate(trail, db, heur, restarter, numVars, 1, 0)
	require.Equal(t, Conflict, outcome)
	assert.GreaterOrEqual(t, int(clauseID), 0)
	top := trail.At(trail.Len() - 1)
	assert.True(t, top.IsConflict())
}

func TestPropagateRestartRequestedLeavesTrailUntouched(t *testing.T) {
	const numVars = 2
	db := NewClauseDB(numVars, 0)
	trail := NewTrail(numVars)
	heur := NewHeuristic(DeciderOrdered, numVars)
	restarter := NewRestarter(RestartGeometric)
	restarter.conflictLimit = 0 // force the very first conflict to trip the schedule

	db.Add([]Lit{l(1, numVars), l(2, numVars)}, false)
	db.Add([]Lit{l(1, numVars), l(-2, numVars)}, false)

	trail.Push(Var(1), False, 1, AntecedentDecision)
	trail.Push(Var(2), False, 1, ClauseIDUndef)
	lenBefore := trail.Len()

	outcome, clauseID := Propagate(trail, db, heur, restarter, numVars, 1, 0)
	assert.Equal(t, RestartRequested, outcome)
	assert.Equal(t, ClauseIDUndef, clauseID)
	assert.Equal(t, lenBefore, trail.Len())
}
