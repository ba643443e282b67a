package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeuristicOrderedPicksLowestUnassigned(t *testing.T) {
	h := NewHeuristic(DeciderOrdered, 3)
	trail := NewTrail(3)
	trail.Push(Var(1), True, 1, AntecedentDecision)

	v, value, ok := h.Decide(trail)
	require.True(t, ok)
	assert.Equal(t, Var(2), v)
	assert.Equal(t, True, value)
}

func TestHeuristicVSIDSPrefersMoreFrequentLiteral(t *testing.T) {
	const numVars = 3
	h := NewHeuristic(DeciderVSIDS, numVars)
	trail := NewTrail(numVars)

	h.OnClauseAdded([]Lit{l(1, numVars), l(2, numVars)})
	h.OnClauseAdded([]Lit{l(1, numVars), l(3, numVars)})
	h.OnClauseAdded([]Lit{l(1, numVars), l(2, numVars)})
	h.BuildQueue(trail)

	v, value, ok := h.Decide(trail)
	require.True(t, ok)
	assert.Equal(t, Var(1), v)
	assert.Equal(t, True, value)
}

func TestHeuristicMiniSatPhaseSaving(t *testing.T) {
	const numVars = 2
	h := NewHeuristic(DeciderMiniSat, numVars)
	trail := NewTrail(numVars)
	h.OnClauseAdded([]Lit{l(1, numVars), l(2, numVars)})
	h.BuildQueue(trail)

	h.OnImplied(Var(1), False)
	h.OnUnassign(Var(1))

	for i := 0; i < 2; i++ {
		v, value, ok := h.Decide(trail)
		require.True(t, ok)
		if v == Var(1) {
			assert.Equal(t, False, value, "a reassigned variable should prefer its last phase")
			return
		}
	}
	t.Fatal("variable 1 was never offered as a decision")
}

func TestHeuristicBuildQueueExcludesAlreadyAssigned(t *testing.T) {
	const numVars = 2
	h := NewHeuristic(DeciderVSIDS, numVars)
	trail := NewTrail(numVars)
	trail.Push(Var(1), True, 0, ClauseIDUndef)
	h.OnClauseAdded([]Lit{l(1, numVars), l(2, numVars)})
	h.BuildQueue(trail)

	v, _, ok := h.Decide(trail)
	require.True(t, ok)
	assert.Equal(t, Var(2), v)
}
