package day06

import (
	"testing"

	"github.com/solvekit/solvekit/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

// TestPart1_Sample: the guard visits 41 unique tiles before exiting.
func TestPart1_Sample(t *testing.T) {
	got, err := solver{}.Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, uint64(41), got)
}

// TestPart2_Sample: 6 obstruction placements trap the guard in a loop.
func TestPart2_Sample(t *testing.T) {
	got, err := solver{}.Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, uint64(6), got)
}

// TestParse_Padding verifies the outside border and the translated guard
// start.
func TestParse_Padding(t *testing.T) {
	l, err := parse("^.\n.#\n")
	require.NoError(t, err)

	assert.Equal(t, 4, l.tiles.Width)
	assert.Equal(t, 4, l.tiles.Height)
	assert.Equal(t, grid.Pos{Row: 1, Col: 1}, l.start)
	assert.Equal(t, tileOutside, l.tiles.At(grid.Pos{Row: 0, Col: 2}))
	assert.Equal(t, tileObstructed, l.tiles.At(grid.Pos{Row: 2, Col: 2}))
	assert.Equal(t, tileOpen, l.tiles.At(grid.Pos{Row: 1, Col: 1}))
}

// TestParse_Errors rejects unknown tiles and a missing guard.
func TestParse_Errors(t *testing.T) {
	_, err := parse("..\n.X\n")
	require.ErrorIs(t, err, grid.ErrBadCell)

	_, err = parse("..\n.#\n")
	require.Error(t, err, "input without a guard must fail")
}

// TestLoops_MinimalBox pins loop detection: a guard boxed in by the
// candidate obstruction circles forever.
func TestLoops_MinimalBox(t *testing.T) {
	// Three walls plus the extra obstruction close a clockwise cycle.
	l, err := parse(".#..\n...#\n#^..\n.#..\n")
	require.NoError(t, err)

	states := make([]uint8, l.tiles.Width*l.tiles.Height)
	assert.True(t, l.loops(grid.Pos{Row: 4, Col: 3}, states))
	assert.False(t, l.loops(grid.Pos{Row: 4, Col: 4}, states), "an obstruction off the route must not trap")
}
