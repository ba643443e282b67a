package solver

import "github.com/spjmurray/go-util/pkg/set"

// AnalyzeResult is the outcome of one 1-UIP conflict analysis pass (spec
// §4.3). UnsatAtLevel0 means the conflict's antecedent chain bottomed out
// at decision level 0 — the formula is unsatisfiable and the driver should
// stop rather than backjump.
type AnalyzeResult struct {
	Learnt         []Lit
	BacktrackLevel int
	UnsatAtLevel0  bool
}

// literalFor returns the literal matching the truth value node settled on.
func literalFor(node TrailNode, numVars int) Lit {
	if node.Value == True {
		return PosLit(node.Var)
	}
	return NegLit(node.Var, numVars)
}

// Analyze walks the implication graph backward from the conflict sentinel
// currently on top of trail, accumulating the 1-UIP learned clause. It
// mirrors the teacher's Analyze: a path-counting trail walk that marks
// variables in a Seen set rather than the original source's repeated
// binary-resolution-and-dedup sweep over whole clauses — the two compute
// the same 1-UIP cut, since each resolution step the original performs is
// exactly one trail-walk step here, just expressed over clause literals
// instead of over marked variables.
func Analyze(trail *Trail, db *ClauseDB, numVars int) AnalyzeResult {
	conflictNode := trail.PopConflict()
	level := conflictNode.Level
	if level == 0 {
		return AnalyzeResult{UnsatAtLevel0: true}
	}

	confl := conflictNode.Antecedent
	seen := set.New[Var]()
	pathCount := 0
	idx := trail.Len() - 1
	p := LitUndef

	learnt := []Lit{LitUndef} // slot 0 reserved for the asserting literal

	for {
		clause := db.Get(confl)
		for _, lit := range clause.Lits {
			if lit == p {
				continue
			}
			v := lit.Var(numVars)
			if seen.Contains(v) || trail.Level(v) == 0 {
				continue
			}
			seen.Add(v)
			if trail.Level(v) == level {
				pathCount++
			} else {
				learnt = append(learnt, lit)
			}
		}

		var node TrailNode
		for {
			node = trail.At(idx)
			idx--
			if !node.IsConflict() && seen.Contains(node.Var) {
				break
			}
		}
		p = literalFor(node, numVars)
		seen.Delete(node.Var)
		pathCount--
		if pathCount <= 0 {
			break
		}
		confl = trail.Antecedent(node.Var)
	}

	learnt[0] = p.Not(numVars)

	backtrackLevel := 0
	if len(learnt) > 1 {
		maxIdx := 1
		for i := 2; i < len(learnt); i++ {
			if trail.Level(learnt[i].Var(numVars)) > trail.Level(learnt[maxIdx].Var(numVars)) {
				maxIdx = i
			}
		}
		backtrackLevel = trail.Level(learnt[maxIdx].Var(numVars))
		learnt[maxIdx], learnt[1] = learnt[1], learnt[maxIdx]
	}

	return AnalyzeResult{Learnt: learnt, BacktrackLevel: backtrackLevel}
}
