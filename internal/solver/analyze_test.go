package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildConflict wires up a small implication graph by hand: two decisions
// at levels 1 and 2 each imply a literal via their own clause, and a third
// clause conflicts once both implied literals are on the trail.
func buildConflict(t *testing.T) (*Trail, *ClauseDB, int) {
	t.Helper()
	const numVars = 5
	db := NewClauseDB(numVars, 0)
	trail := NewTrail(numVars)

	cImply3 := db.Add([]Lit{l(-1, numVars), l(3, numVars)}, false) // -x1 v x3
	cImply4 := db.Add([]Lit{l(-2, numVars), l(4, numVars)}, false) // -x2 v x4
	cConfl := db.Add([]Lit{l(-3, numVars), l(-4, numVars)}, false) // -x3 v -x4

	trail.Push(Var(1), True, 1, AntecedentDecision)
	trail.Push(Var(3), True, 1, cImply3)
	trail.Push(Var(2), True, 2, AntecedentDecision)
	trail.Push(Var(4), True, 2, cImply4)
	trail.PushConflict(cConfl, 2)

	return trail, db, numVars
}

func TestAnalyzeProducesAssertingLiteralAndBackjumpLevel(t *testing.T) {
	trail, db, numVars := buildConflict(t)
	result := Analyze(trail, db, numVars)

	require.False(t, result.UnsatAtLevel0)
	require.NotEmpty(t, result.Learnt)

	assertVar := result.Learnt[0].Var(numVars)
	assert.Equal(t, 2, trail.Level(assertVar), "the asserting literal must belong to the conflict level")
	assert.Less(t, result.BacktrackLevel, 2)
}

func TestAnalyzeUnsatAtLevel0(t *testing.T) {
	const numVars = 2
	db := NewClauseDB(numVars, 0)
	trail := NewTrail(numVars)
	c := db.Add([]Lit{l(1, numVars), l(2, numVars)}, false)
	trail.Push(Var(1), False, 0, ClauseIDUndef)
	trail.Push(Var(2), False, 0, ClauseIDUndef)
	trail.PushConflict(c, 0)

	result := Analyze(trail, db, numVars)
	assert.True(t, result.UnsatAtLevel0)
}
