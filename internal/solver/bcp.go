package solver

// PropagateOutcome is BCP's three-valued result (spec §4.2).
type PropagateOutcome int

const (
	NoConflict PropagateOutcome = iota
	Conflict
	RestartRequested
)

// Propagate runs two-watched-literal boolean constraint propagation
// starting from trail index `from` (pass trail.Len()-1 after pushing a
// single new assignment, or 0 to re-scan the whole trail during
// ingestion). It pushes every literal BCP derives directly onto trail and
// notifies heur so the decision queue stays in sync.
//
// On conflict, Propagate consults restarter before recording the conflict:
// if the conflict trips the restart schedule, it returns RestartRequested
// without pushing a conflict sentinel, mirroring the source's
// check-before-push order. Implications pushed earlier in the same call
// stay on the trail; the driver's backtrack to level 0 removes them.
func Propagate(trail *Trail, db *ClauseDB, heur *Heuristic, restarter *Restarter, numVars, level, from int) (PropagateOutcome, ClauseID) {
	ptr := from
	if ptr < 0 {
		ptr = 0
	}
	for ptr < trail.Len() {
		node := trail.At(ptr)
		ptr++
		if node.IsConflict() {
			continue
		}

		var litFalsed Lit
		if node.Value == True {
			litFalsed = NegLit(node.Var, numVars)
		} else {
			litFalsed = PosLit(node.Var)
		}

		watched := db.WatchedBy(litFalsed)
		for i := len(watched) - 1; i >= 0; i-- {
			clauseID := watched[i]
			w1, w2 := db.Watchers(clauseID)
			otherWatch := w1
			if w1 == litFalsed {
				otherWatch = w2
			}

			if trail.LitValue(otherWatch, numVars) == True {
				continue
			}

			clause := db.Get(clauseID)
			var newWatcher Lit
			for _, lit := range clause.Lits {
				if lit == w1 || lit == w2 {
					continue
				}
				if trail.LitValue(lit, numVars) != False {
					newWatcher = lit
					break
				}
			}

			if newWatcher != LitUndef {
				db.RemoveWatchAt(litFalsed, i)
				db.AppendWatch(newWatcher, clauseID, litFalsed)
				continue
			}

			otherVar := otherWatch.Var(numVars)
			if trail.Value(otherVar) == Unassigned {
				value := True
				if otherWatch.IsNeg(numVars) {
					value = False
				}
				trail.Push(otherVar, value, level, clauseID)
				heur.OnImplied(otherVar, value)
				continue
			}

			if restarter.OnConflict() {
				return RestartRequested, ClauseIDUndef
			}
			trail.PushConflict(clauseID, level)
			return Conflict, clauseID
		}
	}
	return NoConflict, ClauseIDUndef
}
