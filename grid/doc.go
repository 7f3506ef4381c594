// Package grid provides 2-D positions, cardinal directions, and a generic
// rectangular board for grid-shaped puzzle inputs.
//
// What:
//
//   - Pos is a (row, col) coordinate with neighbor arithmetic (Up, Down,
//     Left, Right, Step, Neighbors4).
//   - Dir is a cardinal direction (North, East, South, West) with rotation
//     helpers (TurnRight, TurnLeft, Opposite) and a row/col Delta.
//   - Grid[T] wraps a rectangular board of cells parsed from text lines,
//     with bounds checks and row-major index conversions.
//
// Why:
//
//   - Walk simulations: guards, robots, beams — anything stepping a grid.
//   - Searches: BFS/DFS/Dijkstra over cells or (cell, direction) states.
//   - Parsing: one-rune-per-cell puzzle boards with a custom cell mapper.
//
// Neighbor arithmetic on Pos is deliberately bounds-unsafe: Up on row 0
// wraps below zero, Step never clamps. Callers either pad their board with
// border cells or guard every move with Grid.InBounds. This keeps the hot
// path branch-free for simulations that pad.
//
// Complexity:
//
//   - All Pos/Dir helpers: O(1).
//   - Parse: O(W×H). At/Set/InBounds/Index/PosOf: O(1). Find: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: the cell mapper rejected a rune.
package grid
