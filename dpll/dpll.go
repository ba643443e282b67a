// Package dpll implements the pedagogical pure-DPLL baselines spec.md
// bundles alongside the CDCL engine for comparison (spec §1's "Alternative
// pure-DPLL solvers"). It works directly over [][]int DIMACS-style
// clauses rather than the CDCL core's dense literal encoding or watcher
// lists — these solvers are simple enough that recursive clause-copying
// unit propagation is the point, not a performance concern.
package dpll

// Stats counts the same events the original instrumentation tracked,
// threaded through the recursion explicitly rather than as a package
// global: two concurrent Solve calls must not share counters.
type Stats struct {
	Calls        int
	UnitProps    int
	PureLiterals int
	Backtracks   int
}

// Rule selects which variable heuristic dpll uses at each branch point;
// the branch polarity is always true first, then false.
type Rule int

const (
	FirstUnassigned Rule = iota
	DLIS
	DLCS
	MOM
	JeroslowWang
	Random
)

// ParseRule maps a name onto a Rule.
func ParseRule(s string) (Rule, bool) {
	switch s {
	case "FIRST":
		return FirstUnassigned, true
	case "DLIS":
		return DLIS, true
	case "DLCS":
		return DLCS, true
	case "MOM":
		return MOM, true
	case "JW":
		return JeroslowWang, true
	case "RANDOM":
		return Random, true
	default:
		return FirstUnassigned, false
	}
}

// Assignment maps a DIMACS variable to its assigned truth value.
type Assignment map[int]bool

// Solve runs DPLL with unit propagation and pure-literal elimination,
// branching per rule. ok is false if the formula is unsatisfiable.
func Solve(clauses [][]int, rule Rule, seed int64) (Assignment, bool, Stats) {
	var stats Stats
	d := &dpllRun{rule: rule, rng: newRNG(seed), stats: &stats}
	assignment, ok := d.run(clauses, Assignment{})
	return assignment, ok, stats
}

type dpllRun struct {
	rule  Rule
	rng   *rng
	stats *Stats
}

func (d *dpllRun) run(clauses [][]int, assignment Assignment) (Assignment, bool) {
	d.stats.Calls++

	clauses, assignment, conflict := d.unitPropagate(clauses, assignment)
	if conflict {
		d.stats.Backtracks++
		return nil, false
	}
	if len(clauses) == 0 {
		return assignment, true
	}

	clauses, assignment = d.pureLiteralEliminate(clauses, assignment)
	if hasEmptyClause(clauses) {
		d.stats.Backtracks++
		return nil, false
	}
	if len(clauses) == 0 {
		return assignment, true
	}

	v, ok := d.chooseBranch(clauses, assignment)
	if !ok {
		return assignment, true
	}

	// Always try true before false, matching base_solver.h's dpll(): the
	// heuristics below pick only which variable to branch on, never a
	// polarity.
	for _, val := range [2]bool{true, false} {
		next := assignment.copy()
		next[v] = val
		simplified, conflict := applyAssignment(clauses, v, val)
		if conflict {
			continue
		}
		if result, ok := d.run(simplified, next); ok {
			return result, true
		}
	}

	d.stats.Backtracks++
	return nil, false
}

// unitPropagate repeatedly resolves unit clauses to a fixpoint, mirroring
// the original's restart-the-loop-after-each-simplification shape.
func (d *dpllRun) unitPropagate(clauses [][]int, assignment Assignment) ([][]int, Assignment, bool) {
	for {
		var unit []int
		for _, c := range clauses {
			if len(c) == 1 {
				unit = c
				break
			}
		}
		if unit == nil {
			return clauses, assignment, false
		}

		lit := unit[0]
		d.stats.UnitProps++
		val := lit > 0
		v := abs(lit)

		if existing, ok := assignment[v]; ok {
			if existing != val {
				return clauses, assignment, true
			}
			continue
		}
		assignment[v] = val

		simplified, conflict := applyAssignment(clauses, v, val)
		if conflict {
			return clauses, assignment, true
		}
		clauses = simplified
	}
}

// pureLiteralEliminate assigns every literal whose negation never occurs,
// then drops the clauses it satisfies.
func (d *dpllRun) pureLiteralEliminate(clauses [][]int, assignment Assignment) ([][]int, Assignment) {
	if len(clauses) == 0 {
		return clauses, assignment
	}
	seen := map[int]bool{}
	for _, c := range clauses {
		for _, lit := range c {
			seen[lit] = true
		}
	}
	for lit := range seen {
		if seen[-lit] {
			continue
		}
		v := abs(lit)
		if _, ok := assignment[v]; ok {
			continue
		}
		d.stats.PureLiterals++
		assignment[v] = lit > 0
		var kept [][]int
		for _, c := range clauses {
			if !containsLit(c, lit) {
				kept = append(kept, c)
			}
		}
		clauses = kept
	}
	return clauses, assignment
}

func (d *dpllRun) chooseBranch(clauses [][]int, assignment Assignment) (v int, ok bool) {
	unassigned := unassignedVars(clauses, assignment)
	if len(unassigned) == 0 {
		return 0, false
	}
	switch d.rule {
	case FirstUnassigned:
		return firstUnassigned(unassigned), true
	case DLIS:
		return dlis(clauses, unassigned), true
	case DLCS:
		return dlcs(clauses, unassigned), true
	case MOM:
		return mom(clauses, unassigned), true
	case JeroslowWang:
		return jeroslowWang(clauses, unassigned), true
	case Random:
		return random(unassigned, d.rng), true
	}
	return firstUnassigned(unassigned), true
}

func applyAssignment(clauses [][]int, v int, val bool) (result [][]int, conflict bool) {
	posLit, negLit := v, -v
	if !val {
		posLit, negLit = -v, v
	}
	for _, clause := range clauses {
		if containsLit(clause, posLit) {
			continue
		}
		if containsLit(clause, negLit) {
			var reduced []int
			for _, l := range clause {
				if l != negLit {
					reduced = append(reduced, l)
				}
			}
			if len(reduced) == 0 {
				return nil, true
			}
			result = append(result, reduced)
			continue
		}
		result = append(result, clause)
	}
	return result, false
}

func hasEmptyClause(clauses [][]int) bool {
	for _, c := range clauses {
		if len(c) == 0 {
			return true
		}
	}
	return false
}

func containsLit(clause []int, lit int) bool {
	for _, l := range clause {
		if l == lit {
			return true
		}
	}
	return false
}

func unassignedVars(clauses [][]int, assignment Assignment) []int {
	seen := map[int]bool{}
	var vars []int
	for _, c := range clauses {
		for _, lit := range c {
			v := abs(lit)
			if _, assigned := assignment[v]; assigned {
				continue
			}
			if !seen[v] {
				seen[v] = true
				vars = append(vars, v)
			}
		}
	}
	return vars
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func (a Assignment) copy() Assignment {
	out := make(Assignment, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
