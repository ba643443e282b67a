package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapBuildOrdersByScore(t *testing.T) {
	h := NewHeap(4)
	h.Build([]float64{0, 3, 1, 4, 2}) // index 0 unused
	require.False(t, h.Empty())
	assert.Equal(t, Var(3), h.PopTop())
	assert.Equal(t, Var(1), h.PopTop())
	assert.Equal(t, Var(4), h.PopTop())
	assert.Equal(t, Var(2), h.PopTop())
	assert.True(t, h.Empty())
}

func TestHeapPopTopOnEmptyPanics(t *testing.T) {
	h := NewHeap(2)
	h.Build([]float64{0}) // index 0 unused, so no variables are inserted
	assert.Panics(t, func() { h.PopTop() })
}

func TestHeapIncreaseReordersUp(t *testing.T) {
	h := NewHeap(3)
	h.Build([]float64{0, 1, 1, 1})
	h.Increase(Var(3), 10)
	assert.Equal(t, Var(3), h.PopTop())
}

func TestHeapRemoveThenInsertRoundTrips(t *testing.T) {
	h := NewHeap(3)
	h.Build([]float64{0, 5, 1, 9})
	h.Remove(Var(3))
	assert.False(t, h.InHeap(Var(3)))
	assert.Equal(t, Var(1), h.PopTop())

	h.Insert(Var(3), 100)
	assert.True(t, h.InHeap(Var(3)))
	assert.Equal(t, Var(3), h.PopTop())
}

func TestHeapRemoveOfAbsentVarIsNoop(t *testing.T) {
	h := NewHeap(2)
	h.Build([]float64{0, 1, 2})
	h.Remove(Var(1))
	assert.NotPanics(t, func() { h.Remove(Var(1)) })
}
