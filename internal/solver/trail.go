package solver

// Antecedent sentinels for TrailNode.Antecedent, distinct from any real
// ClauseID (which are all >= 0).
const (
	AntecedentDecision ClauseID = -2
	AntecedentConflict ClauseID = -3
)

// VarSentinel marks a pushed conflict node — it carries no variable, only
// the offending clause id, per the "Observed quirks" note in spec.md: the
// source pushes a sentinel conflict node onto the trail before returning
// CONFLICT, and analyze pops it first.
const VarSentinel Var = -1

// TrailNode is one assignment on the trail (spec §3).
type TrailNode struct {
	Var        Var
	Value      Assignment // True or False; meaningless for a conflict node
	Level      int
	Antecedent ClauseID // clause id (the conflicting clause for a conflict node), AntecedentDecision, or ClauseIDUndef for a level-0 unit
	TrailIndex int
}

// IsConflict reports whether this node is the sentinel pushed by BCP on
// conflict rather than a real assignment.
func (n TrailNode) IsConflict() bool {
	return n.Var == VarSentinel
}

// Trail is the ordered assignment stack. Truncating it to the prefix of
// level <= k restores a valid state at level k (invariant 5 of §3).
type Trail struct {
	nodes []TrailNode
	// assigned[v] is the current assignment of variable v, kept in lockstep
	// with the trail so BCP/analysis can query a variable's value in O(1)
	// without scanning the stack.
	assigned []Assignment
	// level[v] and antecedent[v] mirror the trail node for an assigned
	// variable, again for O(1) lookup.
	level      []int
	antecedent []ClauseID
	trailIndex []int
}

// NewTrail creates an empty trail sized for numVars variables.
func NewTrail(numVars int) *Trail {
	return &Trail{
		assigned:   make([]Assignment, numVars+1),
		level:      make([]int, numVars+1),
		antecedent: make([]ClauseID, numVars+1),
		trailIndex: make([]int, numVars+1),
	}
}

// GrowToVar extends per-variable tracking arrays to cover numVars.
func (t *Trail) GrowToVar(numVars int) {
	for len(t.assigned) <= numVars {
		t.assigned = append(t.assigned, Unassigned)
		t.level = append(t.level, 0)
		t.antecedent = append(t.antecedent, ClauseIDUndef)
		t.trailIndex = append(t.trailIndex, 0)
	}
}

// Len returns the number of nodes on the trail, including any pushed
// conflict sentinel.
func (t *Trail) Len() int { return len(t.nodes) }

// At returns the node at position i.
func (t *Trail) At(i int) TrailNode { return t.nodes[i] }

// Value returns the current assignment of v.
func (t *Trail) Value(v Var) Assignment { return t.assigned[v] }

// Level returns the decision level at which v was assigned. Meaningless if
// v is unassigned.
func (t *Trail) Level(v Var) int { return t.level[v] }

// Antecedent returns the clause that forced v's assignment,
// AntecedentDecision, or ClauseIDUndef for a level-0 unit.
func (t *Trail) Antecedent(v Var) ClauseID { return t.antecedent[v] }

// TrailIndex returns v's position on the trail. Analyze does not call it;
// it walks trail positions directly to find the most recent literal.
func (t *Trail) TrailIndex(v Var) int { return t.trailIndex[v] }

// Locked reports whether id is currently the antecedent of some assigned
// variable — deleting a locked clause would leave that assignment's
// justification dangling, so the learned-clause cap (clause.go,
// trimIfOverCap) must never drop one.
func (t *Trail) Locked(id ClauseID) bool {
	for v := 1; v < len(t.assigned); v++ {
		if t.assigned[v] != Unassigned && t.antecedent[v] == id {
			return true
		}
	}
	return false
}

// LitValue reports the truth value of a literal under the current
// assignment, given the problem's variable count.
func (t *Trail) LitValue(l Lit, numVars int) Assignment {
	v := l.Var(numVars)
	a := t.assigned[v]
	if a == Unassigned {
		return Unassigned
	}
	neg := l.IsNeg(numVars)
	if (a == True && !neg) || (a == False && neg) {
		return True
	}
	return False
}

// Push assigns v to the polarity implied by value at level, with the given
// antecedent, and appends the node to the trail.
func (t *Trail) Push(v Var, value Assignment, level int, antecedent ClauseID) TrailNode {
	idx := len(t.nodes)
	node := TrailNode{Var: v, Value: value, Level: level, Antecedent: antecedent, TrailIndex: idx}
	t.nodes = append(t.nodes, node)
	t.assigned[v] = value
	t.level[v] = level
	t.antecedent[v] = antecedent
	t.trailIndex[v] = idx
	return node
}

// PushConflict appends the sentinel conflict node carrying clauseID, per
// the "Observed quirks" note: a cleaner design would return the conflict
// clause id directly, but this preserves the source's pop-then-inspect
// shape for analyze.go.
func (t *Trail) PushConflict(clauseID ClauseID, level int) {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, TrailNode{Var: VarSentinel, Level: level, Antecedent: clauseID, TrailIndex: idx})
}

// PopConflict removes and returns the most recently pushed node, which must
// be a conflict sentinel.
func (t *Trail) PopConflict() TrailNode {
	n := t.nodes[len(t.nodes)-1]
	if !n.IsConflict() {
		panic("internal invariant violation: PopConflict on a non-conflict trail node")
	}
	t.nodes = t.nodes[:len(t.nodes)-1]
	return n
}

// TruncateTo pops every node with level > target, unassigning its
// variable, and returns the popped nodes in pop order (most recent first).
// A conflict sentinel above target is popped too, without unassigning
// anything, and is included in the returned nodes.
func (t *Trail) TruncateTo(target int) []TrailNode {
	var popped []TrailNode
	for len(t.nodes) > 0 {
		n := t.nodes[len(t.nodes)-1]
		if n.Level <= target {
			break
		}
		t.nodes = t.nodes[:len(t.nodes)-1]
		if !n.IsConflict() {
			t.assigned[n.Var] = Unassigned
		}
		popped = append(popped, n)
	}
	return popped
}
