package solver

import (
	"fmt"
	"strings"
	"time"
)

// Statistics accumulates counters and phase timings across a solve, per
// spec §6's stats-file contract. Field names follow the teacher's
// Statistics (statistics.go) where they overlap; the timing and
// input/output bookkeeping fields are carried over from the original
// source's Statistics struct, which this repo's stats file format follows
// verbatim.
type Statistics struct {
	InputFile             string
	OutputStatisticsFile  string
	OutputAssignmentFile  string
	Result                string
	NumVars               int
	NumOrigClauses        int
	NumStoredClauses      int
	NumLearntClauses      int
	NumDecisions          int
	NumImplications       int64
	RestartCount          int

	StartTime    time.Time
	ReadDuration time.Duration
	TotalDuration time.Duration
	BCPDuration      time.Duration
	DecideDuration   time.Duration
	AnalyzeDuration  time.Duration
	BacktrackDuration time.Duration
}

// Report renders the stats file body, matching the original's print_stats
// field order and labels so a solver invoked against the same input
// produces a byte-comparable report modulo timing noise.
func (s *Statistics) Report() string {
	var b strings.Builder
	fmt.Fprintln(&b, "=========================== STATISTICS ===============================")
	fmt.Fprintf(&b, "Solving formula from file: %s\n", s.InputFile)
	fmt.Fprintf(&b, "Vars:%d, Clauses:%d Stored Clauses:%d\n", s.NumVars, s.NumOrigClauses, s.NumStoredClauses)
	fmt.Fprintf(&b, "Input Reading Time: %s\n", s.ReadDuration)
	fmt.Fprintln(&b, "-------------------------------")
	fmt.Fprintf(&b, "Restarts: %d\n", s.RestartCount)
	fmt.Fprintf(&b, "Learned clauses: %d\n", s.NumLearntClauses)
	fmt.Fprintf(&b, "Decisions made: %d\n", s.NumDecisions)
	fmt.Fprintf(&b, "Implications made: %d\n", s.NumImplications)
	fmt.Fprintf(&b, "Time taken: %s\n", s.TotalDuration)
	fmt.Fprintln(&b, "----------- Time breakup ----------------------")
	fmt.Fprintf(&b, "BCP Time: %s\n", s.BCPDuration)
	fmt.Fprintf(&b, "Decide Time: %s\n", s.DecideDuration)
	fmt.Fprintf(&b, "Conflict Analyze Time: %s\n", s.AnalyzeDuration)
	fmt.Fprintf(&b, "Backtrack Time: %s\n", s.BacktrackDuration)
	fmt.Fprintln(&b, "-------------------------------")
	fmt.Fprintf(&b, "RESULT: %s\n", s.Result)
	fmt.Fprintf(&b, "Statistics stored in file: %s\n", s.OutputStatisticsFile)
	if s.Result == "SAT" {
		fmt.Fprintf(&b, "Satisfying Assignment stored in file: %s\n", s.OutputAssignmentFile)
	}
	return b.String()
}
