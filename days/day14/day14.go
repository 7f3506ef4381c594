// Package day14 simulates robots moving with constant velocity on a
// wrapping grid.
//
// The first input line carries the grid dimensions as "width,height"; every
// following line is one robot, "p=x,y v=dx,dy". Part 1 is the safety factor
// (product of the per-quadrant robot counts) after 100 generations. Part 2
// finds the generation whose arrangement has minimal entropy — the minimum
// safety factor over generations 1..9999, ties broken by the earlier
// generation — which is where the robots draw their picture. The generation
// scan is sharded through shard.ShardAndSolve.
package day14

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/solvekit/solvekit/days"
	"github.com/solvekit/solvekit/grid"
	"github.com/solvekit/solvekit/shard"
)

// Sentinel errors for input parsing.
var (
	// ErrBadDimensions indicates a malformed "width,height" header line.
	ErrBadDimensions = errors.New("day14: malformed dimensions line")
	// ErrBadRobot indicates a line that does not match "p=x,y v=dx,dy".
	ErrBadRobot = errors.New("day14: malformed robot line")
)

// maxGenerations bounds the part-2 entropy scan; the picture shows up well
// inside ten thousand generations because positions repeat with period
// width×height.
const maxGenerations = 10000

type velocity struct {
	dRow, dCol int
}

type robot struct {
	pos grid.Pos
	vel velocity
}

// simulation is the parsed robot fleet. Read-only after parsing; at()
// computes any generation from the initial state, so the simulation is
// shared untouched across shard workers.
type simulation struct {
	robots        []robot
	width, height int
}

// parse reads the dimensions header and the robot lines. The robot pattern
// is compiled once per invocation; no package-level regex state.
func parse(input string) (*simulation, error) {
	robotRe := regexp.MustCompile(`^p=(\d+),(\d+) v=(-?\d+),(-?\d+)$`)

	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	dims := strings.Split(lines[0], ",")
	if len(dims) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrBadDimensions, lines[0])
	}
	width, errW := strconv.Atoi(dims[0])
	height, errH := strconv.Atoi(dims[1])
	if errW != nil || errH != nil || width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %q", ErrBadDimensions, lines[0])
	}

	robots := make([]robot, 0, len(lines)-1)
	for _, line := range lines[1:] {
		m := robotRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: %q", ErrBadRobot, line)
		}
		// Capture groups are all digit runs, so Atoi cannot fail here.
		col, _ := strconv.Atoi(m[1])
		row, _ := strconv.Atoi(m[2])
		dCol, _ := strconv.Atoi(m[3])
		dRow, _ := strconv.Atoi(m[4])
		robots = append(robots, robot{
			pos: grid.Pos{Row: row, Col: col},
			vel: velocity{dRow: dRow, dCol: dCol},
		})
	}

	return &simulation{robots: robots, width: width, height: height}, nil
}

// wrap reduces a to the canonical representative in [0, m).
func wrap(a, m int) int {
	a %= m
	if a < 0 {
		a += m
	}

	return a
}

// at returns every robot's position after gen generations.
func (s *simulation) at(gen int) []grid.Pos {
	positions := make([]grid.Pos, len(s.robots))
	for i, r := range s.robots {
		positions[i] = grid.Pos{
			Row: wrap(r.pos.Row+r.vel.dRow*gen, s.height),
			Col: wrap(r.pos.Col+r.vel.dCol*gen, s.width),
		}
	}

	return positions
}

// safetyFactor multiplies the robot counts of the four quadrants. Robots on
// the median row or median column belong to no quadrant.
func (s *simulation) safetyFactor(positions []grid.Pos) uint64 {
	medianRow := s.height / 2
	medianCol := s.width / 2

	var topLeft, topRight, bottomLeft, bottomRight uint64
	for _, p := range positions {
		switch {
		case p.Row < medianRow && p.Col < medianCol:
			topLeft++
		case p.Row < medianRow && p.Col > medianCol:
			topRight++
		case p.Row > medianRow && p.Col < medianCol:
			bottomLeft++
		case p.Row > medianRow && p.Col > medianCol:
			bottomRight++
		}
	}

	return topLeft * topRight * bottomLeft * bottomRight
}

// render draws the robots at gen as an ASCII picture, one 'X' per occupied
// tile. Handy for eyeballing the part-2 result.
func (s *simulation) render(gen int) string {
	rows := make([][]byte, s.height)
	for i := range rows {
		rows[i] = []byte(strings.Repeat(" ", s.width))
	}
	for _, p := range s.at(gen) {
		rows[p.Row][p.Col] = 'X'
	}

	out := make([]string, s.height)
	for i, r := range rows {
		out[i] = string(r)
	}

	return strings.Join(out, "\n")
}

// candidate pairs a generation with its safety factor for the min-entropy
// reduction. less orders by factor, then by earlier generation, so the
// fan-in combine stays commutative.
type candidate struct {
	factor     uint64
	generation int
}

func (c candidate) less(other candidate) bool {
	if c.factor != other.factor {
		return c.factor < other.factor
	}

	return c.generation < other.generation
}

type solver struct{}

func init() { days.Register(14, solver{}) }

// Part1 returns the safety factor after 100 generations.
func (solver) Part1(input string) (uint64, error) {
	s, err := parse(input)
	if err != nil {
		return 0, err
	}

	return s.safetyFactor(s.at(100)), nil
}

// Part2 returns the minimum-entropy generation in 1..9999: a minimal safety
// factor means most robots crowd one region, which is where the picture
// appears.
func (solver) Part2(input string) (uint64, error) {
	s, err := parse(input)
	if err != nil {
		return 0, err
	}

	generations := make([]int, 0, maxGenerations-1)
	for gen := 1; gen < maxGenerations; gen++ {
		generations = append(generations, gen)
	}

	best := candidate{factor: ^uint64(0)}
	results := shard.ShardAndSolve(generations, s, func(gens []int, s *simulation) candidate {
		min := candidate{factor: ^uint64(0)}
		for _, gen := range gens {
			c := candidate{factor: s.safetyFactor(s.at(gen)), generation: gen}
			if c.less(min) {
				min = c
			}
		}

		return min
	})
	for c := range results {
		if c.less(best) {
			best = c
		}
	}

	return uint64(best.generation), nil
}
