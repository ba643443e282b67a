package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsModelAcceptsSatisfyingAssignment(t *testing.T) {
	clauses := [][]int{{1, 2}, {-1, 3}, {2, -3}}
	model := Model{1: true, 2: true, 3: true}
	assert.True(t, IsModel(clauses, model))
}

func TestCheckReportsEveryViolatedClause(t *testing.T) {
	clauses := [][]int{{1, 2}, {-1, -2}, {3}}
	model := Model{1: true, 2: true, 3: false}
	violations := Check(clauses, model)
	assert.Len(t, violations, 2)
	assert.Equal(t, 1, violations[0].ClauseIndex)
	assert.Equal(t, 2, violations[1].ClauseIndex)
}

func TestCheckTreatsMissingVariableAsUnsatisfying(t *testing.T) {
	clauses := [][]int{{1, 2}}
	model := Model{1: false}
	assert.False(t, IsModel(clauses, model))
}
