package solver

// Heap is the indexed max-heap backing variable selection (spec §4.6): a
// binary heap over (score, Var) pairs plus an index array so a variable's
// heap slot can be found in O(1) without a linear scan. It generalizes the
// teacher's Heap (heap.go), which only ever pops the max and lazily
// percolates, into the five explicit operations the spec names: Build,
// PopTop, Remove, Increase, Insert.
type Heap struct {
	data    []Var     // heap-ordered slice of variables
	score   []float64 // score[v], indexed by Var
	indices []int     // indices[v] is v's position in data, or -1 if absent
}

// NewHeap returns an empty heap sized for numVars variables.
func NewHeap(numVars int) *Heap {
	h := &Heap{
		score:   make([]float64, numVars+1),
		indices: make([]int, numVars+1),
	}
	for i := range h.indices {
		h.indices[i] = -1
	}
	return h
}

// GrowToVar extends the score/indices arrays to cover numVars, marking new
// slots absent from the heap.
func (h *Heap) GrowToVar(numVars int) {
	for len(h.indices) <= numVars {
		h.score = append(h.score, 0)
		h.indices = append(h.indices, -1)
	}
}

func (h *Heap) less(a, b Var) bool {
	return h.score[a] > h.score[b]
}

func (h *Heap) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
	h.indices[h.data[i]] = i
	h.indices[h.data[j]] = j
}

// Size returns the number of variables currently in the heap.
func (h *Heap) Size() int { return len(h.data) }

// Empty reports whether the heap has no variables.
func (h *Heap) Empty() bool { return len(h.data) == 0 }

// InHeap reports whether v currently occupies a heap slot.
func (h *Heap) InHeap(v Var) bool {
	return int(v) < len(h.indices) && h.indices[v] >= 0
}

// Score returns v's current score, whether or not v is in the heap.
func (h *Heap) Score(v Var) float64 { return h.score[v] }

// Build discards any existing contents and heapifies from the given score
// assignment, following the original's init(): every variable with a
// score entry is inserted, then the array is sifted down from the last
// internal node to the root.
func (h *Heap) Build(scores []float64) {
	h.score = append([]float64(nil), scores...)
	h.indices = make([]int, len(scores))
	h.data = make([]Var, 0, len(scores)-1)
	for v := 1; v < len(scores); v++ {
		h.data = append(h.data, Var(v))
		h.indices[v] = len(h.data) - 1
	}
	for i := len(h.data)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
}

func (h *Heap) siftDown(i int) {
	for {
		maxIdx := i
		left, right := 2*i+1, 2*i+2
		if left < len(h.data) && h.less(h.data[left], h.data[maxIdx]) {
			maxIdx = left
		}
		if right < len(h.data) && h.less(h.data[right], h.data[maxIdx]) {
			maxIdx = right
		}
		if maxIdx == i {
			return
		}
		h.swap(maxIdx, i)
		i = maxIdx
	}
}

func (h *Heap) siftUp(i int) {
	for i != 0 {
		parent := (i - 1) / 2
		if !h.less(h.data[i], h.data[parent]) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// PopTop removes and returns the highest-score variable. It panics if the
// heap is empty; callers (the decision heuristics of §4.5) must check
// Empty first — an empty heap with outstanding unassigned variables is
// itself an internal invariant violation.
func (h *Heap) PopTop() Var {
	if h.Empty() {
		panic("internal invariant violation: PopTop on an empty heap")
	}
	top := h.data[0]
	last := len(h.data) - 1
	h.swap(0, last)
	h.indices[h.data[last]] = -1
	h.data = h.data[:last]
	if len(h.data) > 0 {
		h.siftDown(0)
	}
	return top
}

// Increase adds delta to v's score (delta is typically positive, as in
// VSIDS activity bumps) and restores heap order. If v is not currently in
// the heap, only the stored score is updated; Insert will pick it up.
//
// The original's increase_update always bubbles up, which is correct only
// because every call site increases a score. §4.6 names this operation
// "increase" for that reason; a decrease would need the general Remove+add
// treatment below.
func (h *Heap) Increase(v Var, delta float64) {
	h.score[v] += delta
	if !h.InHeap(v) {
		return
	}
	h.siftUp(h.indices[v])
}

// Remove takes v out of the heap, following the original's asymmetric
// remove(): the last element is swapped into v's old slot, and whether
// that displaced element then sifts up or down depends on whether its
// score is larger or smaller than the score v had — a plain swap-and-
// sift-down would be wrong when the displaced element's score is larger
// than what it replaced.
func (h *Heap) Remove(v Var) {
	if !h.InHeap(v) {
		return
	}
	pos := h.indices[v]
	removedScore := h.score[v]
	last := len(h.data) - 1
	h.swap(pos, last)
	h.indices[v] = -1
	h.data = h.data[:last]
	if pos >= len(h.data) {
		return
	}
	displaced := h.data[pos]
	if h.score[displaced] > removedScore {
		h.siftUp(pos)
	} else {
		h.siftDown(pos)
	}
}

// Insert adds v to the heap at the given score, following the original's
// add(): append a placeholder slot, then reuse Increase's bubble-up logic
// to settle it in place.
func (h *Heap) Insert(v Var, score float64) {
	h.data = append(h.data, v)
	h.indices[v] = len(h.data) - 1
	h.score[v] = 0
	h.Increase(v, score)
}
