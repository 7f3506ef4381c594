// Package grid provides a generic rectangular board backed by a flat,
// row-major cell slice. A Grid is mutable through Set but never resizes;
// Width and Height are fixed at construction.
package grid

import (
	"fmt"
	"strings"
)

// Grid is a rectangular board of cells of type T stored row-major.
type Grid[T any] struct {
	Width, Height int
	cells         []T
}

// New constructs a width×height grid with all cells set to fill.
// Returns ErrEmptyGrid if either dimension is < 1.
// Complexity: O(W×H).
func New[T any](width, height int, fill T) (*Grid[T], error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = fill
	}

	return &Grid[T]{Width: width, Height: height, cells: cells}, nil
}

// Parse builds a grid from newline-separated text, mapping each rune through
// cell. Trailing newlines are ignored.
// Returns ErrEmptyGrid for empty input, ErrNonRectangular if line lengths
// differ, or a wrapped ErrBadCell if the mapper rejects a rune.
// Complexity: O(W×H).
func Parse[T any](text string, cell func(r rune) (T, error)) (*Grid[T], error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	h := len(lines)
	w := len([]rune(lines[0]))
	cells := make([]T, 0, w*h)
	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, row, len(runes), w)
		}
		for col, r := range runes {
			v, err := cell(r)
			if err != nil {
				return nil, fmt.Errorf("%w: %q at row %d col %d: %v", ErrBadCell, r, row, col, err)
			}
			cells = append(cells, v)
		}
	}

	return &Grid[T]{Width: w, Height: h, cells: cells}, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// At returns the cell at p. The caller must ensure p is in bounds.
// Complexity: O(1).
func (g *Grid[T]) At(p Pos) T { return g.cells[p.Row*g.Width+p.Col] }

// Set overwrites the cell at p. The caller must ensure p is in bounds.
// Complexity: O(1).
func (g *Grid[T]) Set(p Pos, v T) { g.cells[p.Row*g.Width+p.Col] = v }

// Index maps p to its row-major index: Row*Width + Col.
// Complexity: O(1).
func (g *Grid[T]) Index(p Pos) int { return p.Row*g.Width + p.Col }

// PosOf converts a row-major index back to a position.
// Complexity: O(1).
func (g *Grid[T]) PosOf(idx int) Pos {
	return Pos{Row: idx / g.Width, Col: idx % g.Width}
}

// Find returns the first position (row-major order) whose cell satisfies
// pred, or ok=false if no cell matches.
// Complexity: O(W×H).
func (g *Grid[T]) Find(pred func(T) bool) (p Pos, ok bool) {
	for i, c := range g.cells {
		if pred(c) {
			return g.PosOf(i), true
		}
	}

	return Pos{}, false
}

// Clone returns a deep copy of the grid.
// Complexity: O(W×H).
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)

	return &Grid[T]{Width: g.Width, Height: g.Height, cells: cells}
}
