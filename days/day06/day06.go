// Package day06 simulates a guard patrolling a lab grid.
//
// Part 1 counts the unique tiles the guard visits before leaving the lab.
// Part 2 counts the positions where a single extra obstruction traps the
// guard in a loop; every candidate lies on the original patrol path, and
// the candidates are brute-forced in parallel through shard.ShardAndSolve.
//
// The lab is padded all around with "outside" tiles so the patrol loop can
// use bounds-unsafe position arithmetic: stepping onto an outside tile is
// the exit condition, never an out-of-range access.
package day06

import (
	"fmt"

	"github.com/solvekit/solvekit/days"
	"github.com/solvekit/solvekit/grid"
	"github.com/solvekit/solvekit/shard"
)

type tile uint8

const (
	tileOpen tile = iota
	tileObstructed
	tileOutside
)

// lab is the padded board plus the guard's starting position. Read-only
// after parsing, so it is shared as-is across shard workers.
type lab struct {
	tiles *grid.Grid[tile]
	start grid.Pos
}

// parse reads the unpadded lab, locates the guard ('^', facing North), and
// rebuilds the board with a one-tile outside border.
func parse(input string) (*lab, error) {
	raw, err := grid.Parse(input, func(r rune) (rune, error) {
		switch r {
		case '.', '#', '^':
			return r, nil
		default:
			return 0, fmt.Errorf("want '.', '#' or '^'")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("day06: %w", err)
	}

	guard, ok := raw.Find(func(r rune) bool { return r == '^' })
	if !ok {
		return nil, fmt.Errorf("day06: no guard start tile %q in input", '^')
	}

	padded, err := grid.New(raw.Width+2, raw.Height+2, tileOutside)
	if err != nil {
		return nil, fmt.Errorf("day06: %w", err)
	}
	for row := 0; row < raw.Height; row++ {
		for col := 0; col < raw.Width; col++ {
			t := tileOpen
			if raw.At(grid.Pos{Row: row, Col: col}) == '#' {
				t = tileObstructed
			}
			padded.Set(grid.Pos{Row: row + 1, Col: col + 1}, t)
		}
	}

	return &lab{tiles: padded, start: guard.Down(1).Right(1)}, nil
}

// walk runs the patrol protocol until the guard steps outside: advance one
// tile in the current direction, rotating right in place while the tile
// ahead is obstructed. Returns per-tile visit flags (row-major) and the
// unique visit count.
func (l *lab) walk() (seen []bool, count uint64) {
	seen = make([]bool, l.tiles.Width*l.tiles.Height)
	pos, dir := l.start, grid.North
	seen[l.tiles.Index(pos)] = true
	count = 1
	for {
		next := pos.Step(dir, 1)
		switch l.tiles.At(next) {
		case tileOutside:
			return seen, count
		case tileObstructed:
			dir = dir.TurnRight()
		default:
			pos = next
			if i := l.tiles.Index(pos); !seen[i] {
				seen[i] = true
				count++
			}
		}
	}
}

// loops reports whether adding an obstruction at extra traps the guard.
// states is a per-tile direction bitmask scratch buffer, cleared on entry
// so one allocation serves a whole shard of candidates.
func (l *lab) loops(extra grid.Pos, states []uint8) bool {
	clear(states)
	pos, dir := l.start, grid.North
	for {
		bit := uint8(1) << dir
		i := l.tiles.Index(pos)
		if states[i]&bit != 0 {
			return true // same position and heading twice: a loop
		}
		states[i] |= bit

		next := pos.Step(dir, 1)
		if next == extra {
			dir = dir.TurnRight()
			continue
		}
		switch l.tiles.At(next) {
		case tileOutside:
			return false
		case tileObstructed:
			dir = dir.TurnRight()
		default:
			pos = next
		}
	}
}

type solver struct{}

func init() { days.Register(6, solver{}) }

// Part1 counts the unique tiles visited by the guard before exiting.
func (solver) Part1(input string) (uint64, error) {
	l, err := parse(input)
	if err != nil {
		return 0, err
	}
	_, count := l.walk()

	return count, nil
}

// Part2 counts obstruction placements that trap the guard in a loop. Only
// tiles on the unobstructed patrol path (minus the start) can change the
// route, so those are the candidates, sharded across workers.
func (solver) Part2(input string) (uint64, error) {
	l, err := parse(input)
	if err != nil {
		return 0, err
	}

	seen, _ := l.walk()
	candidates := make([]grid.Pos, 0, len(seen))
	for i, visited := range seen {
		if !visited {
			continue
		}
		if p := l.tiles.PosOf(i); p != l.start {
			candidates = append(candidates, p)
		}
	}

	var total uint64
	results := shard.ShardAndSolve(candidates, l, func(cand []grid.Pos, l *lab) uint64 {
		states := make([]uint8, l.tiles.Width*l.tiles.Height)
		var n uint64
		for _, p := range cand {
			if l.loops(p, states) {
				n++
			}
		}

		return n
	})
	for n := range results {
		total += n
	}

	return total, nil
}
