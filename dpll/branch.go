package dpll

import "math/rand"

// firstUnassigned picks the lowest-numbered unassigned variable, grounded
// on basic_dpll.cpp's chooseVariable: a plain ascending scan.
func firstUnassigned(unassigned []int) int {
	best := unassigned[0]
	for _, v := range unassigned[1:] {
		if v < best {
			best = v
		}
	}
	return best
}

// countOccurrences returns, for every literal appearing in clauses, the
// number of clauses containing it.
func countOccurrences(clauses [][]int) map[int]int {
	counts := map[int]int{}
	for _, c := range clauses {
		for _, lit := range c {
			counts[lit]++
		}
	}
	return counts
}

// dlis (Dynamic Largest Individual Sum) picks the variable underlying the
// single literal with the highest occurrence count, grounded on
// dlis.cpp's chooseVariable: its literal_count is keyed by signed literal,
// and it returns abs(best_lit). base_solver.h's dpll() always tries true
// before false regardless of which polarity drove the count, so there is
// no polarity signal to return here.
func dlis(clauses [][]int, unassigned []int) int {
	counts := countOccurrences(clauses)
	bestLit, bestCount := 0, -1
	for _, u := range unassigned {
		for _, lit := range [2]int{u, -u} {
			if c := counts[lit]; c > bestCount {
				bestCount, bestLit = c, lit
			}
		}
	}
	if bestLit == 0 {
		return firstUnassigned(unassigned)
	}
	return abs(bestLit)
}

// dlcs (Dynamic Largest Combined Sum) picks the variable whose two
// polarities together occur most often, grounded on dlcs.cpp's
// chooseVariable, whose var_count is keyed directly by variable.
func dlcs(clauses [][]int, unassigned []int) int {
	counts := countOccurrences(clauses)
	bestVar, bestSum := 0, -1
	for _, u := range unassigned {
		if sum := counts[u] + counts[-u]; sum > bestSum {
			bestSum, bestVar = sum, u
		}
	}
	if bestVar == 0 {
		return firstUnassigned(unassigned)
	}
	return bestVar
}

// mom (Maximum Occurrences in clauses of Minimum size) restricts the
// combined-count tally to the shortest clauses currently remaining,
// grounded on mom.cpp's chooseVariable: it clears var_count whenever a
// shorter clause size is found and tallies var_count[abs(lit)], with no
// further weighting.
func mom(clauses [][]int, unassigned []int) int {
	minLen := -1
	for _, c := range clauses {
		if minLen == -1 || len(c) < minLen {
			minLen = len(c)
		}
	}
	var shortest [][]int
	for _, c := range clauses {
		if len(c) == minLen {
			shortest = append(shortest, c)
		}
	}
	counts := countOccurrences(shortest)
	bestVar, bestCount := 0, -1
	for _, u := range unassigned {
		if c := counts[u] + counts[-u]; c > bestCount {
			bestCount, bestVar = c, u
		}
	}
	if bestVar == 0 {
		return firstUnassigned(unassigned)
	}
	return bestVar
}

// jeroslowWang weights each clause containing a literal by 2^-size and
// sums per variable, grounded on jw.cpp's chooseVariable, whose scores map
// is keyed by abs(lit) rather than by signed literal.
func jeroslowWang(clauses [][]int, unassigned []int) int {
	scores := map[int]float64{}
	for _, c := range clauses {
		weight := 1.0
		for i := 0; i < len(c); i++ {
			weight /= 2
		}
		for _, lit := range c {
			scores[abs(lit)] += weight
		}
	}
	bestVar, bestScore := 0, -1.0
	for _, u := range unassigned {
		if s := scores[u]; s > bestScore {
			bestScore, bestVar = s, u
		}
	}
	if bestVar == 0 {
		return firstUnassigned(unassigned)
	}
	return bestVar
}

// random picks a uniformly random unassigned variable, grounded on
// random.cpp's chooseVariable.
func random(unassigned []int, r *rng) int {
	return unassigned[r.Intn(len(unassigned))]
}

// rng wraps math/rand so dpll.Solve stays deterministic given a seed,
// matching spec §5's determinism requirement for the CDCL core — the
// DPLL baselines reuse the same discipline even though they sit outside
// that requirement's stated scope.
type rng struct {
	*rand.Rand
}

func newRNG(seed int64) *rng {
	return &rng{rand.New(rand.NewSource(seed))}
}
