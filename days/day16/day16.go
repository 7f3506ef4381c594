// Package day16 solves the reindeer maze with Dijkstra's algorithm over
// (position, direction) states.
//
// Moving one tile forward costs 1; rotating 90° in place costs 1000. The
// reindeer starts on 'S' facing East and finishes on 'E' in any direction.
// Part 1 is the minimal score. Part 2 counts the tiles lying on at least
// one minimal-score path, recovered by walking predecessor states backward
// from the cheapest end states.
//
// The search uses a container/heap min-heap with the lazy decrease-key
// discipline: duplicates are pushed and stale entries skipped on pop.
// Complexity: O(S log S) time with S = 4·W·H states, O(S) memory.
package day16

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/solvekit/solvekit/days"
	"github.com/solvekit/solvekit/grid"
)

// Sentinel errors for maze parsing and solving.
var (
	// ErrBadMaze indicates a maze without exactly one start and one end tile.
	ErrBadMaze = errors.New("day16: maze must contain 'S' and 'E'")
	// ErrNoRoute indicates the end tile is unreachable from the start.
	ErrNoRoute = errors.New("day16: no route from start to end")
)

const (
	costMove uint64 = 1
	costTurn uint64 = 1000

	unreached = math.MaxUint64
)

type maze struct {
	walls      *grid.Grid[bool]
	start, end grid.Pos
}

func parse(input string) (*maze, error) {
	raw, err := grid.Parse(input, func(r rune) (rune, error) {
		switch r {
		case '.', '#', 'S', 'E':
			return r, nil
		default:
			return 0, fmt.Errorf("want '.', '#', 'S' or 'E'")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("day16: %w", err)
	}

	start, okS := raw.Find(func(r rune) bool { return r == 'S' })
	end, okE := raw.Find(func(r rune) bool { return r == 'E' })
	if !okS || !okE {
		return nil, ErrBadMaze
	}

	walls, err := grid.New(raw.Width, raw.Height, false)
	if err != nil {
		return nil, fmt.Errorf("day16: %w", err)
	}
	for i := 0; i < raw.Width*raw.Height; i++ {
		p := raw.PosOf(i)
		walls.Set(p, raw.At(p) == '#')
	}

	return &maze{walls: walls, start: start, end: end}, nil
}

// state packs (tile, direction) into a dense index: tile index ×4 + dir.
func (m *maze) state(p grid.Pos, d grid.Dir) int32 {
	return int32(m.walls.Index(p)*4 + int(d))
}

func (m *maze) unpack(s int32) (grid.Pos, grid.Dir) {
	return m.walls.PosOf(int(s / 4)), grid.Dir(s % 4)
}

// item is one priority-queue entry under lazy decrease-key: score is the
// tentative distance at push time and may be stale by pop time.
type item struct {
	state int32
	score uint64
}

type minHeap []item

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i].score < h[j].score }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(item)) }
func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// shortestScores runs Dijkstra from (start, East) across every reachable
// state and returns the per-state minimal scores.
func (m *maze) shortestScores() []uint64 {
	numStates := m.walls.Width * m.walls.Height * 4
	dist := make([]uint64, numStates)
	for i := range dist {
		dist[i] = unreached
	}

	startState := m.state(m.start, grid.East)
	dist[startState] = 0

	pq := make(minHeap, 0, numStates/4)
	heap.Push(&pq, item{state: startState})

	relax := func(next int32, score uint64) {
		if score < dist[next] {
			dist[next] = score
			heap.Push(&pq, item{state: next, score: score})
		}
	}

	for pq.Len() > 0 {
		it := heap.Pop(&pq).(item)
		if it.score > dist[it.state] {
			continue // stale duplicate from lazy decrease-key
		}

		pos, dir := m.unpack(it.state)
		if ahead := pos.Step(dir, 1); m.walls.InBounds(ahead) && !m.walls.At(ahead) {
			relax(m.state(ahead, dir), it.score+costMove)
		}
		relax(m.state(pos, dir.TurnLeft()), it.score+costTurn)
		relax(m.state(pos, dir.TurnRight()), it.score+costTurn)
	}

	return dist
}

// bestScore extracts the minimal score over the four end-tile directions.
func (m *maze) bestScore(dist []uint64) (uint64, error) {
	best := uint64(unreached)
	for d := grid.North; d <= grid.West; d++ {
		if s := dist[m.state(m.end, d)]; s < best {
			best = s
		}
	}
	if best == unreached {
		return 0, ErrNoRoute
	}

	return best, nil
}

// bestPathTiles counts tiles on at least one minimal path by walking
// predecessor states backward from the cheapest end states: a state s' is a
// predecessor of s when dist[s'] + transition cost == dist[s].
func (m *maze) bestPathTiles(dist []uint64, best uint64) uint64 {
	onPath := make([]bool, len(dist))
	var stack []int32
	push := func(s int32) {
		if !onPath[s] {
			onPath[s] = true
			stack = append(stack, s)
		}
	}

	for d := grid.North; d <= grid.West; d++ {
		if s := m.state(m.end, d); dist[s] == best {
			push(s)
		}
	}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		pos, dir := m.unpack(s)
		d := dist[s]

		if d >= costMove {
			if back := pos.Step(dir.Opposite(), 1); m.walls.InBounds(back) && !m.walls.At(back) {
				if prev := m.state(back, dir); dist[prev] == d-costMove {
					push(prev)
				}
			}
		}
		if d >= costTurn {
			if prev := m.state(pos, dir.TurnLeft()); dist[prev] == d-costTurn {
				push(prev)
			}
			if prev := m.state(pos, dir.TurnRight()); dist[prev] == d-costTurn {
				push(prev)
			}
		}
	}

	tiles := make([]bool, m.walls.Width*m.walls.Height)
	var count uint64
	for s, on := range onPath {
		if on && !tiles[s/4] {
			tiles[s/4] = true
			count++
		}
	}

	return count
}

type solver struct{}

func init() { days.Register(16, solver{}) }

// Part1 returns the minimal maze score.
func (solver) Part1(input string) (uint64, error) {
	m, err := parse(input)
	if err != nil {
		return 0, err
	}

	return m.bestScore(m.shortestScores())
}

// Part2 returns the number of tiles on any minimal-score path.
func (solver) Part2(input string) (uint64, error) {
	m, err := parse(input)
	if err != nil {
		return 0, err
	}
	dist := m.shortestScores()
	best, err := m.bestScore(dist)
	if err != nil {
		return 0, err
	}

	return m.bestPathTiles(dist, best), nil
}
