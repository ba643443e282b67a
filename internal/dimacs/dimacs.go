// Package dimacs reads the DIMACS CNF format consumed by the solver (spec
// §6): comment lines, a `p cnf V M` header, and clause lines terminated by
// a literal `0` that may span several physical lines.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Problem is a parsed CNF instance: the declared variable/clause counts
// from the header, and every clause as a sequence of signed, nonzero
// DIMACS literals with the trailing 0 stripped.
type Problem struct {
	NumVars    int
	NumClauses int
	Clauses    [][]int
}

// Parse reads a DIMACS CNF stream. It returns an error for anything the
// format doesn't define — a clause token that isn't an integer, or a
// clause line before the header has supplied NumVars — which the caller
// surfaces as spec §7's MalformedInput.
func Parse(r io.Reader) (*Problem, error) {
	p := &Problem{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	sawHeader := false
	var pending []int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "c":
			continue
		case "%":
			goto done
		case "p":
			if len(fields) != 4 || fields[1] != "cnf" {
				return nil, fmt.Errorf("dimacs: malformed header line %q", line)
			}
			v, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("dimacs: malformed variable count: %w", err)
			}
			m, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, fmt.Errorf("dimacs: malformed clause count: %w", err)
			}
			p.NumVars, p.NumClauses = v, m
			sawHeader = true
		default:
			if !sawHeader {
				return nil, fmt.Errorf("dimacs: clause line before header: %q", line)
			}
			for _, tok := range fields {
				x, err := strconv.Atoi(tok)
				if err != nil {
					return nil, fmt.Errorf("dimacs: non-integer literal %q: %w", tok, err)
				}
				if x == 0 {
					p.Clauses = append(p.Clauses, pending)
					pending = nil
					continue
				}
				pending = append(pending, x)
			}
		}
	}
done:
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(pending) > 0 {
		return nil, fmt.Errorf("dimacs: clause not terminated by 0")
	}
	return p, nil
}
