package grid_test

import (
	"testing"

	"github.com/solvekit/solvekit/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDir_Rotations verifies TurnRight/TurnLeft/Opposite cycle correctly.
func TestDir_Rotations(t *testing.T) {
	assert.Equal(t, grid.East, grid.North.TurnRight())
	assert.Equal(t, grid.South, grid.East.TurnRight())
	assert.Equal(t, grid.West, grid.South.TurnRight())
	assert.Equal(t, grid.North, grid.West.TurnRight())

	assert.Equal(t, grid.West, grid.North.TurnLeft())
	assert.Equal(t, grid.South, grid.West.TurnLeft())

	assert.Equal(t, grid.South, grid.North.Opposite())
	assert.Equal(t, grid.West, grid.East.Opposite())

	for d := grid.North; d <= grid.West; d++ {
		assert.Equal(t, d, d.TurnRight().TurnLeft(), "right then left must cancel for %s", d)
		assert.Equal(t, d, d.Opposite().Opposite(), "double opposite must cancel for %s", d)
	}
}

// TestDir_Delta checks the row/col step of each direction.
func TestDir_Delta(t *testing.T) {
	cases := []struct {
		dir        grid.Dir
		dRow, dCol int
	}{
		{grid.North, -1, 0},
		{grid.East, 0, 1},
		{grid.South, 1, 0},
		{grid.West, 0, -1},
	}
	for _, tc := range cases {
		dRow, dCol := tc.dir.Delta()
		assert.Equal(t, tc.dRow, dRow, "%s row delta", tc.dir)
		assert.Equal(t, tc.dCol, dCol, "%s col delta", tc.dir)
	}
}

// TestPos_Arithmetic exercises the bounds-unsafe neighbor helpers,
// including the documented wrap below zero.
func TestPos_Arithmetic(t *testing.T) {
	p := grid.Pos{Row: 3, Col: 5}

	assert.Equal(t, grid.Pos{Row: 1, Col: 5}, p.Up(2))
	assert.Equal(t, grid.Pos{Row: 4, Col: 5}, p.Down(1))
	assert.Equal(t, grid.Pos{Row: 3, Col: 2}, p.Left(3))
	assert.Equal(t, grid.Pos{Row: 3, Col: 6}, p.Right(1))

	assert.Equal(t, p.Up(2), p.Step(grid.North, 2))
	assert.Equal(t, p.Right(4), p.Step(grid.East, 4))

	// Bounds-unsafe by contract: arithmetic goes negative without panic.
	origin := grid.Pos{}
	assert.Equal(t, grid.Pos{Row: -1, Col: 0}, origin.Up(1))

	assert.Equal(t, [4]grid.Pos{p.Up(1), p.Right(1), p.Down(1), p.Left(1)}, p.Neighbors4())
}

// TestParse_Errors verifies the construction sentinels.
func TestParse_Errors(t *testing.T) {
	identity := func(r rune) (rune, error) { return r, nil }

	_, err := grid.Parse("", identity)
	require.ErrorIs(t, err, grid.ErrEmptyGrid, "empty input must error")

	_, err = grid.Parse("abc\nab\n", identity)
	require.ErrorIs(t, err, grid.ErrNonRectangular, "ragged rows must error")

	_, err = grid.Parse("a?\nbb\n", func(r rune) (rune, error) {
		if r == '?' {
			return 0, assert.AnError
		}

		return r, nil
	})
	require.ErrorIs(t, err, grid.ErrBadCell, "mapper rejection must wrap ErrBadCell")
}

// TestParse_RoundTrip parses a small board and checks At, Find, Index and
// PosOf agree with the textual layout.
func TestParse_RoundTrip(t *testing.T) {
	g, err := grid.Parse("ab\ncd\nef\n", func(r rune) (rune, error) { return r, nil })
	require.NoError(t, err)
	require.Equal(t, 2, g.Width)
	require.Equal(t, 3, g.Height)

	assert.Equal(t, 'a', g.At(grid.Pos{Row: 0, Col: 0}))
	assert.Equal(t, 'd', g.At(grid.Pos{Row: 1, Col: 1}))
	assert.Equal(t, 'e', g.At(grid.Pos{Row: 2, Col: 0}))

	p, ok := g.Find(func(r rune) bool { return r == 'd' })
	require.True(t, ok)
	assert.Equal(t, grid.Pos{Row: 1, Col: 1}, p)

	_, ok = g.Find(func(r rune) bool { return r == 'z' })
	assert.False(t, ok, "absent cell must not be found")

	for i := 0; i < g.Width*g.Height; i++ {
		assert.Equal(t, i, g.Index(g.PosOf(i)), "Index/PosOf must round-trip")
	}
}

// TestGrid_InBounds probes the four boundary edges.
func TestGrid_InBounds(t *testing.T) {
	g, err := grid.New(3, 2, 0)
	require.NoError(t, err)

	assert.True(t, g.InBounds(grid.Pos{Row: 0, Col: 0}))
	assert.True(t, g.InBounds(grid.Pos{Row: 1, Col: 2}))
	assert.False(t, g.InBounds(grid.Pos{Row: -1, Col: 0}))
	assert.False(t, g.InBounds(grid.Pos{Row: 0, Col: 3}))
	assert.False(t, g.InBounds(grid.Pos{Row: 2, Col: 0}))
}

// TestNew_Validation rejects degenerate dimensions and applies the fill.
func TestNew_Validation(t *testing.T) {
	_, err := grid.New(0, 4, 0)
	require.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = grid.New(4, 0, 0)
	require.ErrorIs(t, err, grid.ErrEmptyGrid)

	g, err := grid.New(2, 2, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, g.At(grid.Pos{Row: 1, Col: 1}))
}

// TestGrid_SetAndClone verifies Set mutates in place and Clone detaches.
func TestGrid_SetAndClone(t *testing.T) {
	g, err := grid.New(2, 2, 0)
	require.NoError(t, err)

	p := grid.Pos{Row: 0, Col: 1}
	g.Set(p, 9)
	require.Equal(t, 9, g.At(p))

	c := g.Clone()
	c.Set(p, 1)
	assert.Equal(t, 9, g.At(p), "mutating a clone must not touch the original")
	assert.Equal(t, 1, c.At(p))
}
