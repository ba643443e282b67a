// Command cdcl is the reference CLI binary for the CDCL engine (spec §6):
// `cdcl <log_bool> <decider> <restarter> <input.cnf>`.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/UberCuber/AAD-Course-Project-Satisfiability-Problem/internal/dimacs"
	"github.com/UberCuber/AAD-Course-Project-Satisfiability-Problem/internal/solver"
)

func main() {
	app := cli.NewApp()
	app.Name = "cdcl"
	app.Usage = "A CDCL SAT solver"
	app.ArgsUsage = "<log_bool> <decider> <restarter> <input.cnf>"
	app.Flags = []cli.Flag{
		cli.DurationFlag{
			Name:  "timeout",
			Usage: "wall-clock solve timeout; 0 disables it",
		},
		cli.StringFlag{
			Name:  "out-dir",
			Usage: "directory the assignment and statistics files are written to",
			Value: ".",
		},
		cli.IntFlag{
			Name:  "learnt-cap",
			Usage: "maximum retained learned clauses; 0 is unbounded",
			Value: 5000,
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	args := c.Args()
	if len(args) != 4 {
		cli.ShowAppHelpAndExit(c, 2)
	}
	logBoolStr, deciderStr, restarterStr, inputFile := args[0], args[1], args[2], args[3]

	decider, ok := solver.ParseDeciderKind(deciderStr)
	if !ok {
		return fmt.Errorf("invalid decider %q: want ORDERED, VSIDS, or MINISAT", deciderStr)
	}
	restart, ok := solver.ParseRestartPolicy(restarterStr)
	if !ok {
		return fmt.Errorf("invalid restarter %q: want None, GEOMETRIC, or LUBY", restarterStr)
	}
	logEnabled := logBoolStr == "True" || logBoolStr == "true"

	cfg := solver.Config{
		Decider:   decider,
		Restart:   restart,
		LearntCap: c.Int("learnt-cap"),
		Timeout:   c.Duration("timeout"),
		Verbose:   logEnabled,
	}

	stats := &statsFiles{base: baseName(inputFile), dir: c.String("out-dir")}

	startTime := time.Now()
	fp, err := os.Open(inputFile)
	if err != nil {
		return fmt.Errorf("malformed input: %w", err)
	}
	defer fp.Close()

	problem, err := dimacs.Parse(fp)
	if err != nil {
		return fmt.Errorf("malformed input: %w", err)
	}
	readDuration := time.Since(startTime)

	s := solver.NewSolver(cfg)
	s.SetNumVars(problem.NumVars)
	s.Stats.InputFile = inputFile
	s.Stats.NumOrigClauses = problem.NumClauses
	s.Stats.ReadDuration = readDuration

	for _, clause := range problem.Clauses {
		if !s.AddClause(clause) {
			break
		}
	}

	result := s.Solve()
	s.Stats.TotalDuration = time.Since(startTime)
	s.Stats.Result = result.String()
	s.Stats.OutputStatisticsFile = stats.statsPath()

	fmt.Println(result)

	if result == solver.SAT {
		s.Stats.OutputAssignmentFile = stats.assignmentPath()
		if err := stats.writeAssignment(s); err != nil {
			return err
		}
	}
	if err := stats.writeStats(s.Stats); err != nil {
		return err
	}

	if logEnabled {
		logrus.WithField("result", result.String()).Info("solve complete")
	}

	if result == solver.Timeout {
		return nil
	}
	return nil
}

type statsFiles struct {
	base string
	dir  string
}

func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func (s *statsFiles) assignmentPath() string {
	return filepath.Join(s.dir, fmt.Sprintf("assgn_%s.txt", s.base))
}

func (s *statsFiles) statsPath() string {
	return filepath.Join(s.dir, fmt.Sprintf("stats_%s.txt", s.base))
}

// writeAssignment renders `{"1": true, "2": false, ...}`, ascending
// variable order, no trailing newline — the original's hand-built JSON
// object, not a JSON library, since the source never reaches for one and
// the format (quoted numeric-string keys) is simple enough to build
// directly.
func (s *statsFiles) writeAssignment(sv *solver.Solver) error {
	var b strings.Builder
	b.WriteByte('{')
	vars := make([]int, 0, sv.Trail.Len())
	seen := map[int]bool{}
	for i := 0; i < sv.Trail.Len(); i++ {
		node := sv.Trail.At(i)
		if node.IsConflict() || seen[int(node.Var)] {
			continue
		}
		seen[int(node.Var)] = true
		vars = append(vars, int(node.Var))
	}
	sort.Ints(vars)
	for i, v := range vars {
		val := sv.Trail.Value(solver.Var(v)) == solver.True
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "\"%d\": %t", v, val)
	}
	b.WriteByte('}')
	return os.WriteFile(s.assignmentPath(), []byte(b.String()), 0o644)
}

func (s *statsFiles) writeStats(stats *solver.Statistics) error {
	return os.WriteFile(s.statsPath(), []byte(stats.Report()), 0o644)
}
