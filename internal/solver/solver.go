// Package solver implements the CDCL core described by the rest of this
// file's siblings: dense literal encoding, a watcher-indexed clause
// database, two-watched-literal propagation, 1-UIP conflict analysis, an
// indexed max-heap decision queue, and geometric/Luby restarts.
package solver

import (
	"sort"
	"time"

	"github.com/k0kubun/pp"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Result is the solver's final verdict.
type Result int

const (
	Unknown Result = iota
	SAT
	UNSAT
	Timeout
)

func (r Result) String() string {
	switch r {
	case SAT:
		return "SAT"
	case UNSAT:
		return "UNSAT"
	case Timeout:
		return "TIMEOUT"
	default:
		return "UNKNOWN"
	}
}

// Config configures a Solver (spec §6's driver invocation contract).
type Config struct {
	Decider   DeciderKind
	Restart   RestartPolicy
	LearntCap int
	Timeout   time.Duration
	Verbose   bool
}

// Solver owns every piece of CDCL state: clause DB, trail, heuristic,
// restarter, and the running statistics. It generalizes the teacher's
// monolithic Solver (solver.go) into a struct composed of the smaller
// types in this package.
type Solver struct {
	cfg     Config
	numVars int

	DB        *ClauseDB
	Trail     *Trail
	Heuristic *Heuristic
	Restarter *Restarter
	Stats     *Statistics

	level int

	unsatAtIngest bool
	startTime     time.Time

	log *logrus.Logger
}

// NewSolver returns a solver not yet bound to a variable count; call
// SetNumVars once the DIMACS header is known.
func NewSolver(cfg Config) *Solver {
	log := logrus.New()
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return &Solver{
		cfg:   cfg,
		Stats: &Statistics{},
		log:   log,
	}
}

// SetNumVars allocates every per-variable structure for a formula with
// numVars variables. Must be called exactly once, after the DIMACS header
// line and before any clause is added.
func (s *Solver) SetNumVars(numVars int) {
	s.numVars = numVars
	s.DB = NewClauseDB(numVars, s.cfg.LearntCap)
	s.Trail = NewTrail(numVars)
	s.DB.BindTrail(s.Trail)
	s.Heuristic = NewHeuristic(s.cfg.Decider, numVars)
	s.Restarter = NewRestarter(s.cfg.Restart)
	s.Stats.NumVars = numVars
}

// Level returns the current decision level.
func (s *Solver) Level() int { return s.level }

// AddClause ingests one raw DIMACS clause (signed nonzero integers,
// already stripped of the trailing 0) per spec §4.1. It returns false
// when the clause drives the formula to UNSAT at ingest time (an empty
// clause, or a unit clause contradicting an existing level-0 assignment);
// the caller must stop feeding clauses at that point, mirroring the
// original's `if (add_clause(clause) == 0) break;`.
func (s *Solver) AddClause(dimacsLits []int) bool {
	lits := make([]Lit, len(dimacsLits))
	for i, x := range dimacsLits {
		lits[i] = LitFromDimacs(x, s.numVars)
	}
	sort.Slice(lits, func(i, j int) bool { return lits[i] < lits[j] })
	lits = lo.Uniq(lits)

	for i := 0; i < len(lits); i++ {
		for j := i + 1; j < len(lits); j++ {
			if lits[i].Var(s.numVars) == lits[j].Var(s.numVars) {
				// Tautology: both polarities of the same variable appear,
				// since Uniq already removed exact duplicates.
				return true
			}
		}
	}

	if len(lits) == 0 {
		s.unsatAtIngest = true
		s.Stats.Result = "UNSAT"
		return false
	}

	if len(lits) == 1 {
		lit := lits[0]
		v := lit.Var(s.numVars)
		value := True
		if lit.IsNeg(s.numVars) {
			value = False
		}
		if s.Trail.Value(v) == Unassigned {
			s.Trail.Push(v, value, 0, ClauseIDUndef)
			s.Stats.NumImplications++
		} else if s.Trail.Value(v) != value {
			s.unsatAtIngest = true
			s.Stats.Result = "UNSAT"
			return false
		}
		return true
	}

	s.Heuristic.OnClauseAdded(lits)
	s.DB.Add(lits, false)
	s.Stats.NumStoredClauses++
	return true
}

// FinishIngest builds the decision heap from the scores accumulated
// during AddClause and removes variables the unit clauses already bound
// at level 0, per spec §4.1's final step.
func (s *Solver) FinishIngest() {
	s.Heuristic.BuildQueue(s.Trail)
}

// backtrack pops trail nodes above targetLevel, reinserting their
// variables into the decision heap, then optionally pushes an asserting
// node at targetLevel (spec §4.4).
func (s *Solver) backtrack(targetLevel int, assertingVar Var, assertingValue Assignment, antecedent ClauseID) {
	s.level = targetLevel
	popped := s.Trail.TruncateTo(targetLevel)
	for _, node := range popped {
		s.Heuristic.OnUnassign(node.Var)
	}
	if assertingVar != 0 {
		s.Trail.Push(assertingVar, assertingValue, targetLevel, antecedent)
		s.Heuristic.OnImplied(assertingVar, assertingValue)
		s.Stats.NumImplications++
	}
}

// Solve runs the driver loop of spec §4.8: propagate to fixpoint, analyze
// and backjump on conflict, restart to level 0 when BCP asks for it,
// decide when BCP reaches fixpoint without conflict, until SAT, UNSAT, or
// timeout.
func (s *Solver) Solve() Result {
	s.startTime = time.Now()
	if s.unsatAtIngest {
		return UNSAT
	}
	s.FinishIngest()

	from := 0

	for {
		for {
			if s.cfg.Timeout > 0 && time.Since(s.startTime) > s.cfg.Timeout {
				return Timeout
			}

			t0 := time.Now()
			outcome, _ := Propagate(s.Trail, s.DB, s.Heuristic, s.Restarter, s.numVars, s.level, from)
			s.Stats.BCPDuration += time.Since(t0)

			switch outcome {
			case NoConflict:
				goto decide
			case RestartRequested:
				s.Stats.RestartCount++
				s.backtrack(0, 0, Unassigned, ClauseIDUndef)
				goto decide
			case Conflict:
				ta := time.Now()
				result := Analyze(s.Trail, s.DB, s.numVars)
				s.Stats.AnalyzeDuration += time.Since(ta)
				if result.UnsatAtLevel0 {
					return UNSAT
				}

				s.Heuristic.OnConflictBump(result.Learnt)
				assertLit := result.Learnt[0]
				assertVar := assertLit.Var(s.numVars)
				assertVal := True
				if assertLit.IsNeg(s.numVars) {
					assertVal = False
				}

				backtrackLevel := 0
				antecedent := ClauseIDUndef
				if len(result.Learnt) > 1 {
					antecedent = s.DB.Add(result.Learnt, true)
					s.Stats.NumLearntClauses++
					backtrackLevel = result.BacktrackLevel
				}

				tb := time.Now()
				s.backtrack(backtrackLevel, assertVar, assertVal, antecedent)
				s.Stats.BacktrackDuration += time.Since(tb)
				from = s.Trail.Len() - 1
			}
		}

	decide:
		td := time.Now()
		v, value, ok := s.Heuristic.Decide(s.Trail)
		s.Stats.DecideDuration += time.Since(td)
		if !ok {
			return SAT
		}
		s.level++
		s.Trail.Push(v, value, s.level, AntecedentDecision)
		s.Stats.NumDecisions++
		if s.log.IsLevelEnabled(logrus.DebugLevel) {
			s.log.WithFields(logrus.Fields{"var": v, "value": value, "level": s.level}).Debug("decision")
		}
		from = s.Trail.Len() - 1
	}
}

// InvariantViolation dumps solver state via pp (matching the teacher's
// Analyze panic-dump idiom) and aborts. Call this, rather than a bare
// panic, whenever code detects one of the §3 invariants broken.
func (s *Solver) InvariantViolation(msg string) {
	pp.Println(msg, s.level, s.Trail.Len())
	panic("internal invariant violation: " + msg)
}
