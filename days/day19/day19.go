// Package day19 solves the towel arrangement puzzle with the trie package.
//
// The first input line lists the available towel patterns (comma-space
// separated stripe sequences over the five-color alphabet w/u/b/r/g); after
// a blank line, each remaining line is a desired design. Part 1 counts the
// designs that can be arranged at all; part 2 sums the number of distinct
// arrangements over all designs.
package day19

import (
	"errors"
	"fmt"
	"strings"

	"github.com/solvekit/solvekit/days"
	"github.com/solvekit/solvekit/trie"
)

// Sentinel errors for input parsing.
var (
	// ErrBadStripe indicates a stripe character outside w/u/b/r/g.
	ErrBadStripe = errors.New("day19: unknown stripe color")
	// ErrBadLayout indicates input without the patterns/blank/designs layout.
	ErrBadLayout = errors.New("day19: input must be patterns, blank line, designs")
)

// stripe is one towel stripe color. The constant order fixes the dense
// alphabet index used by the trie.
type stripe uint8

const (
	white stripe = iota
	blue
	black
	red
	green

	numStripes = 5
)

// Index implements trie.Symbol.
func (s stripe) Index() int { return int(s) }

func stripeFromRune(r rune) (stripe, error) {
	switch r {
	case 'w':
		return white, nil
	case 'u':
		return blue, nil
	case 'b':
		return black, nil
	case 'r':
		return red, nil
	case 'g':
		return green, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadStripe, r)
	}
}

func parseStripes(s string) ([]stripe, error) {
	out := make([]stripe, 0, len(s))
	for _, r := range s {
		st, err := stripeFromRune(r)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}

	return out, nil
}

// towelSet is the built pattern trie plus the desired designs.
type towelSet struct {
	patterns *trie.Trie[stripe]
	designs  [][]stripe
}

func parse(input string) (*towelSet, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if len(lines) < 3 || lines[1] != "" {
		return nil, ErrBadLayout
	}

	patterns := trie.New[stripe](numStripes)
	for _, p := range strings.Split(lines[0], ", ") {
		seq, err := parseStripes(p)
		if err != nil {
			return nil, err
		}
		patterns.Insert(seq)
	}

	designs := make([][]stripe, 0, len(lines)-2)
	for _, line := range lines[2:] {
		seq, err := parseStripes(line)
		if err != nil {
			return nil, err
		}
		designs = append(designs, seq)
	}

	return &towelSet{patterns: patterns, designs: designs}, nil
}

type solver struct{}

func init() { days.Register(19, solver{}) }

// Part1 counts the designs with at least one arrangement.
func (solver) Part1(input string) (uint64, error) {
	t, err := parse(input)
	if err != nil {
		return 0, err
	}

	var possible uint64
	for _, d := range t.designs {
		if t.patterns.CanArrange(d) {
			possible++
		}
	}

	return possible, nil
}

// Part2 sums the arrangement counts of all designs.
func (solver) Part2(input string) (uint64, error) {
	t, err := parse(input)
	if err != nil {
		return 0, err
	}

	var total uint64
	for _, d := range t.designs {
		total += t.patterns.CountArrangements(d)
	}

	return total, nil
}
