package days

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for registry lookups.
var (
	// ErrUnknownDay indicates no solver is registered for the requested day.
	ErrUnknownDay = errors.New("days: no solver registered for day")
	// ErrUnknownPart indicates a part other than 1 or 2 was requested.
	ErrUnknownPart = errors.New("days: part must be 1 or 2")
)

// Solver computes both derived answers for one puzzle from its raw textual
// input. Implementations own their data model and algorithm entirely;
// solvers never interact with each other.
type Solver interface {
	Part1(input string) (uint64, error)
	Part2(input string) (uint64, error)
}

// registry maps day number to its registered solver. Populated from init
// functions, read-only afterwards.
var registry = map[int]Solver{}

// Register binds a solver to a day number. It panics on duplicate
// registration, which can only be caused by a programming error in an init
// function.
func Register(day int, s Solver) {
	if _, dup := registry[day]; dup {
		panic(fmt.Sprintf("days: duplicate solver registration for day %d", day))
	}
	registry[day] = s
}

// Lookup returns the solver registered for day, or ErrUnknownDay.
func Lookup(day int) (Solver, error) {
	s, ok := registry[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}

	return s, nil
}

// Solve runs the requested part of the requested day against input.
func Solve(day, part int, input string) (uint64, error) {
	s, err := Lookup(day)
	if err != nil {
		return 0, err
	}
	switch part {
	case 1:
		return s.Part1(input)
	case 2:
		return s.Part2(input)
	default:
		return 0, fmt.Errorf("%w: got %d", ErrUnknownPart, part)
	}
}

// Registered returns the registered day numbers in ascending order.
func Registered() []int {
	out := make([]int, 0, len(registry))
	for d := range registry {
		out = append(out, d)
	}
	sort.Ints(out)

	return out
}
