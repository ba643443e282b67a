package solver

// DeciderKind selects a branching heuristic (spec §4.5).
type DeciderKind int

const (
	DeciderOrdered DeciderKind = iota
	DeciderVSIDS
	DeciderMiniSat
)

// ParseDeciderKind maps the CLI's decider string onto a DeciderKind,
// matching the original's exact accepted spellings.
func ParseDeciderKind(s string) (DeciderKind, bool) {
	switch s {
	case "ORDERED":
		return DeciderOrdered, true
	case "VSIDS":
		return DeciderVSIDS, true
	case "MINISAT":
		return DeciderMiniSat, true
	default:
		return DeciderOrdered, false
	}
}

// Heuristic drives variable and polarity selection. VSIDS keeps one score
// per literal and a heap over the full 1..2*numVars literal range;
// MiniSat keeps one score per variable, a heap over variables, and a
// saved phase per variable so a variable reassigned after backtracking
// prefers the polarity it last held. Ordered needs neither: it scans the
// trail for the lowest-numbered unassigned variable.
type Heuristic struct {
	kind    DeciderKind
	numVars int

	litScores []float64 // VSIDS, indexed by Lit
	varScores []float64 // MiniSat, indexed by Var
	phase     []Assignment

	heap *Heap // over Lit for VSIDS, over Var for MiniSat

	incr  float64
	decay float64 // MiniSat only
}

// NewHeuristic builds a Heuristic of the given kind sized for numVars
// variables. incr starts at 1, matching the original's default before any
// conflict bump.
func NewHeuristic(kind DeciderKind, numVars int) *Heuristic {
	h := &Heuristic{kind: kind, numVars: numVars, incr: 1, decay: 0.85}
	switch kind {
	case DeciderVSIDS:
		h.litScores = make([]float64, 2*numVars+1)
		h.heap = NewHeap(2 * numVars)
	case DeciderMiniSat:
		h.varScores = make([]float64, numVars+1)
		h.phase = make([]Assignment, numVars+1)
		for v := range h.phase {
			h.phase[v] = False
		}
		h.heap = NewHeap(numVars)
	}
	return h
}

// GrowToVar extends score/phase/heap storage to cover a larger numVars.
func (h *Heuristic) GrowToVar(numVars int) {
	if numVars <= h.numVars {
		return
	}
	h.numVars = numVars
	switch h.kind {
	case DeciderVSIDS:
		for len(h.litScores) <= 2*numVars {
			h.litScores = append(h.litScores, 0)
		}
		h.heap.GrowToVar(2 * numVars)
	case DeciderMiniSat:
		for len(h.varScores) <= numVars {
			h.varScores = append(h.varScores, 0)
			h.phase = append(h.phase, False)
		}
		h.heap.GrowToVar(numVars)
	}
}

// OnClauseAdded bumps the initial occurrence-count scores for every
// literal of a newly ingested original clause (spec §4.1; the original
// bumps _lit_scores/_var_scores while reading each clause, before the
// priority queue is ever built).
func (h *Heuristic) OnClauseAdded(lits []Lit) {
	switch h.kind {
	case DeciderVSIDS:
		for _, l := range lits {
			h.litScores[l]++
		}
	case DeciderMiniSat:
		for _, l := range lits {
			h.varScores[l.Var(h.numVars)]++
		}
	}
}

// BuildQueue initializes the heap from accumulated scores once ingestion
// is complete, then removes any variable the ingest-time unit
// propagation already assigned (spec §4.1 step 6).
func (h *Heuristic) BuildQueue(trail *Trail) {
	switch h.kind {
	case DeciderVSIDS:
		h.heap.Build(h.litScores)
		for v := Var(1); v <= Var(h.numVars); v++ {
			if trail.Value(v) != Unassigned {
				h.heap.Remove(v)
				h.heap.Remove(Var(int(v) + h.numVars))
			}
		}
	case DeciderMiniSat:
		h.heap.Build(h.varScores)
		for v := Var(1); v <= Var(h.numVars); v++ {
			if trail.Value(v) != Unassigned {
				h.heap.Remove(v)
			}
		}
	}
}

// Decide picks the next decision variable and polarity, given the current
// trail. ok is false when every variable is already assigned (the driver
// should report SAT).
func (h *Heuristic) Decide(trail *Trail) (v Var, value Assignment, ok bool) {
	switch h.kind {
	case DeciderOrdered:
		for x := Var(1); x <= Var(h.numVars); x++ {
			if trail.Value(x) == Unassigned {
				return x, True, true
			}
		}
		return 0, Unassigned, false

	case DeciderVSIDS:
		if h.heap.Empty() {
			return 0, Unassigned, false
		}
		lit := Lit(h.heap.PopTop())
		v := lit.Var(h.numVars)
		isNeg := lit.IsNeg(h.numVars)
		if isNeg {
			h.heap.Remove(v)
		} else {
			h.heap.Remove(Var(int(v) + h.numVars))
		}
		if isNeg {
			return v, False, true
		}
		return v, True, true

	case DeciderMiniSat:
		if h.heap.Empty() {
			return 0, Unassigned, false
		}
		v := h.heap.PopTop()
		value := True
		if h.phase[v] == False {
			value = False
		}
		return v, value, true
	}
	return 0, Unassigned, false
}

// OnImplied removes a variable that BCP just assigned from the decision
// queue, recording the polarity it settled on for MiniSat's phase-saving.
func (h *Heuristic) OnImplied(v Var, value Assignment) {
	switch h.kind {
	case DeciderVSIDS:
		h.heap.Remove(v)
		h.heap.Remove(Var(int(v) + h.numVars))
	case DeciderMiniSat:
		h.heap.Remove(v)
		h.phase[v] = value
	}
}

// OnConflictBump bumps the score of every literal in a freshly learned
// clause and grows the bump increment, following the original: VSIDS
// grows its increment additively (+0.75 per conflict), MiniSat grows it
// by dividing by a fixed decay factor — the MiniSat-style equivalent of
// periodically decaying every other score instead.
func (h *Heuristic) OnConflictBump(lits []Lit) {
	switch h.kind {
	case DeciderVSIDS:
		for _, l := range lits {
			h.litScores[l] += h.incr
			h.heap.Increase(Var(l), h.incr)
		}
		h.incr += 0.75
	case DeciderMiniSat:
		for _, l := range lits {
			v := l.Var(h.numVars)
			h.varScores[v] += h.incr
			h.heap.Increase(v, h.incr)
		}
		h.incr /= h.decay
	}
}

// OnUnassign reinserts a variable that backtracking just unassigned back
// into the decision queue, at its current score.
func (h *Heuristic) OnUnassign(v Var) {
	switch h.kind {
	case DeciderVSIDS:
		h.heap.Insert(v, h.litScores[v])
		h.heap.Insert(Var(int(v)+h.numVars), h.litScores[int(v)+h.numVars])
	case DeciderMiniSat:
		h.heap.Insert(v, h.varScores[v])
	}
}
