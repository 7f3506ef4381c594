// Package day07 solves the bridge calibration puzzle.
//
// Each input line is an equation "value: op1 op2 …". An equation holds if
// some left-to-right placement of operators between the operands produces
// the value. Part 1 allows + and ×; part 2 adds digit concatenation (||).
// The answer is the sum of the values of all satisfiable equations.
//
// Lines are parsed inside the shard workers, so the whole search runs
// through shard.ShardAndSolveErr: a malformed line fails the call instead
// of silently skewing the total.
package day07

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/solvekit/solvekit/days"
	"github.com/solvekit/solvekit/shard"
)

// ErrBadEquation indicates a line that does not parse as "value: operands".
var ErrBadEquation = errors.New("day07: malformed equation")

type operator uint8

const (
	opAdd operator = iota
	opMultiply
	opConcat
)

// apply folds the next operand into the running result. Operands are
// validated positive at parse time, so every operator is non-decreasing and
// the search may prune once the running result exceeds the target.
func (op operator) apply(acc, operand uint64) uint64 {
	switch op {
	case opAdd:
		return acc + operand
	case opMultiply:
		return acc * operand
	default: // opConcat: shift acc past the decimal digits of operand
		shift := uint64(10)
		for v := operand; v >= 10; v /= 10 {
			shift *= 10
		}

		return acc*shift + operand
	}
}

type equation struct {
	value    uint64
	operands []uint64
}

// parseEquation splits "value: n1 n2 …" and validates every operand is a
// positive integer.
func parseEquation(line string) (equation, error) {
	head, tail, ok := strings.Cut(line, ": ")
	if !ok {
		return equation{}, fmt.Errorf("%w: %q: missing \": \" separator", ErrBadEquation, line)
	}
	value, err := strconv.ParseUint(head, 10, 64)
	if err != nil {
		return equation{}, fmt.Errorf("%w: %q: bad value: %v", ErrBadEquation, line, err)
	}

	fields := strings.Fields(tail)
	if len(fields) == 0 {
		return equation{}, fmt.Errorf("%w: %q: no operands", ErrBadEquation, line)
	}
	operands := make([]uint64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return equation{}, fmt.Errorf("%w: %q: bad operand %q: %v", ErrBadEquation, line, f, err)
		}
		if n == 0 {
			return equation{}, fmt.Errorf("%w: %q: operand must be positive", ErrBadEquation, line)
		}
		operands = append(operands, n)
	}

	return equation{value: value, operands: operands}, nil
}

// satisfiable reports whether some operator placement yields e.value.
func (e equation) satisfiable(ops []operator) bool {
	return e.search(e.operands[0], 1, ops)
}

// search tries every operator between operand i-1 and i, depth-first with
// monotonicity pruning.
func (e equation) search(acc uint64, i int, ops []operator) bool {
	if acc > e.value {
		return false
	}
	if i == len(e.operands) {
		return acc == e.value
	}
	for _, op := range ops {
		if e.search(op.apply(acc, e.operands[i]), i+1, ops) {
			return true
		}
	}

	return false
}

// solve shards the input lines, sums satisfiable equation values per shard,
// and combines the per-shard totals.
func solve(input string, ops []operator) (uint64, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")

	totals, err := shard.ShardAndSolveErr(lines, ops, func(lines []string, ops []operator) (uint64, error) {
		var total uint64
		for _, line := range lines {
			eq, err := parseEquation(line)
			if err != nil {
				return 0, err
			}
			if eq.satisfiable(ops) {
				total += eq.value
			}
		}

		return total, nil
	})
	if err != nil {
		return 0, err
	}

	var total uint64
	for _, t := range totals {
		total += t
	}

	return total, nil
}

type solver struct{}

func init() { days.Register(7, solver{}) }

// Part1 sums the values of equations satisfiable with + and ×.
func (solver) Part1(input string) (uint64, error) {
	return solve(input, []operator{opAdd, opMultiply})
}

// Part2 sums the values of equations satisfiable with +, × and ||.
func (solver) Part2(input string) (uint64, error) {
	return solve(input, []operator{opAdd, opMultiply, opConcat})
}
