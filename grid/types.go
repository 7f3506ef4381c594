// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/solvekit/solvekit.
package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadCell indicates the cell mapper rejected an input rune.
	ErrBadCell = errors.New("grid: unrecognized cell")
)

// Dir is a cardinal direction on a row/col grid.
// North decreases the row index; East increases the column index.
type Dir uint8

const (
	// North points toward smaller row indices.
	North Dir = iota
	// East points toward larger column indices.
	East
	// South points toward larger row indices.
	South
	// West points toward smaller column indices.
	West

	numDirs = 4
)

// TurnRight returns d rotated 90° clockwise.
func (d Dir) TurnRight() Dir { return (d + 1) % numDirs }

// TurnLeft returns d rotated 90° counter-clockwise.
func (d Dir) TurnLeft() Dir { return (d + 3) % numDirs }

// Opposite returns d rotated 180°.
func (d Dir) Opposite() Dir { return (d + 2) % numDirs }

// Delta returns the (row, col) step of one move in direction d.
func (d Dir) Delta() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	default: // West
		return 0, -1
	}
}

// String implements fmt.Stringer for diagnostics and test output.
func (d Dir) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	default:
		return "West"
	}
}

// Pos is a (row, col) coordinate on a grid.
//
// All arithmetic helpers are bounds-unsafe by contract: calling Up on a
// row-0 position yields a negative row. Callers pad their boards or guard
// with Grid.InBounds before dereferencing.
type Pos struct {
	Row, Col int
}

// Up returns the position n rows above p.
func (p Pos) Up(n int) Pos { return Pos{Row: p.Row - n, Col: p.Col} }

// Down returns the position n rows below p.
func (p Pos) Down(n int) Pos { return Pos{Row: p.Row + n, Col: p.Col} }

// Left returns the position n columns left of p.
func (p Pos) Left(n int) Pos { return Pos{Row: p.Row, Col: p.Col - n} }

// Right returns the position n columns right of p.
func (p Pos) Right(n int) Pos { return Pos{Row: p.Row, Col: p.Col + n} }

// Step returns the position n moves from p in direction d.
func (p Pos) Step(d Dir, n int) Pos {
	dRow, dCol := d.Delta()

	return Pos{Row: p.Row + n*dRow, Col: p.Col + n*dCol}
}

// Neighbors4 returns the four orthogonal neighbors of p in N, E, S, W order.
func (p Pos) Neighbors4() [4]Pos {
	return [4]Pos{p.Up(1), p.Right(1), p.Down(1), p.Left(1)}
}
