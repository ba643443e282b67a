package dimacs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasicInstance(t *testing.T) {
	input := `c a comment line
p cnf 3 2
1 -2 3 0
-1 2 0
`
	p, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, p.NumVars)
	assert.Equal(t, 2, p.NumClauses)
	assert.Equal(t, [][]int{{1, -2, 3}, {-1, 2}}, p.Clauses)
}

func TestParseMultiLineClause(t *testing.T) {
	input := "p cnf 4 1\n1 2\n3 4 0\n"
	p, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3, 4}}, p.Clauses)
}

func TestParseStopsAtPercentTerminator(t *testing.T) {
	input := "p cnf 2 1\n1 2 0\n%\n0\n1 this is not dimacs\n"
	p, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}}, p.Clauses)
}

func TestParseRejectsClauseBeforeHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("1 2 0\n"))
	assert.Error(t, err)
}

func TestParseRejectsMalformedHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("p cnf 3\n1 0\n"))
	assert.Error(t, err)
}

func TestParseRejectsUnterminatedClause(t *testing.T) {
	_, err := Parse(strings.NewReader("p cnf 2 1\n1 2\n"))
	assert.Error(t, err)
}

func TestParseRejectsNonIntegerLiteral(t *testing.T) {
	_, err := Parse(strings.NewReader("p cnf 1 1\nfoo 0\n"))
	assert.Error(t, err)
}
