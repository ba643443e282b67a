package solver

import "math"

// LubyGenerator produces the Luby restart sequence 1, 1, 2, 1, 1, 2, 4, 1,
// 1, 2, 1, 1, 2, 4, 8, ... one term at a time, grounded on the original
// source's LubyGenerator: each call either starts a new power-of-two run
// (when the next slot's 1-based index is one less than a power of two, i.e.
// slots 1, 3, 7, 15, ...) or copies an earlier
// term from the sequence already generated.
type LubyGenerator struct {
	seq  []int
	mult int
	minu int
}

// NewLubyGenerator returns a fresh generator positioned before the first
// term.
func NewLubyGenerator() *LubyGenerator {
	return &LubyGenerator{mult: 1}
}

// Reset returns the generator to its initial state, used when a restart
// policy is swapped or a fresh run begins.
func (g *LubyGenerator) Reset() {
	g.seq = g.seq[:0]
	g.mult = 1
	g.minu = 0
}

// Next returns the next term of the sequence.
func (g *LubyGenerator) Next() int {
	size := len(g.seq)
	toFill := size + 1
	logVal := math.Log2(float64(toFill + 1))
	if math.Abs(logVal-math.Round(logVal)) < 1e-9 {
		g.seq = append(g.seq, g.mult)
		g.mult *= 2
		g.minu = size + 1
	} else {
		g.seq = append(g.seq, g.seq[toFill-g.minu-1])
	}
	return g.seq[size]
}
