package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLitEncodingRoundTrips(t *testing.T) {
	const numVars = 10
	for v := Var(1); v <= numVars; v++ {
		pos := PosLit(v)
		neg := NegLit(v, numVars)

		assert.Equal(t, v, pos.Var(numVars))
		assert.Equal(t, v, neg.Var(numVars))
		assert.False(t, pos.IsNeg(numVars))
		assert.True(t, neg.IsNeg(numVars))
		assert.Equal(t, neg, pos.Not(numVars))
		assert.Equal(t, pos, neg.Not(numVars))
	}
}

func TestLitFromDimacs(t *testing.T) {
	const numVars = 5
	assert.Equal(t, PosLit(3), LitFromDimacs(3, numVars))
	assert.Equal(t, NegLit(3, numVars), LitFromDimacs(-3, numVars))
}

func TestAssignmentString(t *testing.T) {
	assert.Equal(t, "true", True.String())
	assert.Equal(t, "false", False.String())
	assert.Equal(t, "unassigned", Unassigned.String())
}
