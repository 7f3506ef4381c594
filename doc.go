// Package solvekit is a toolkit for writing fast, self-contained puzzle
// solvers — a small reusable core plus a set of reference solvers built on it.
//
// 🚀 What is solvekit?
//
//	A focused library that brings together:
//		• shard — fixed fan-out/fan-in parallel map-reduce for CPU-bound batches
//		• trie  — arena-backed prefix tree with DP arrangement counting
//		• grid  — 2-D positions, directions and rectangular boards
//		• days  — reference solvers exercising every core utility end to end
//
// ✨ Why choose solvekit?
//
//   - Deterministic – same input, same shard routing, same answers
//   - Allocation-aware – flat arenas and integer handles, no pointer chasing
//   - Pure Go – no cgo, no hidden global state
//   - Honest contracts – pure reducers, read-only captures, fail-fast preconditions
//
// Everything is organized under five packages:
//
//	shard/ — ShardAndSolve: round-robin sharding, one worker per shard
//	trie/  — Trie over a dense alphabet; CountArrangements / CanArrange
//	grid/  — Pos, Dir, Grid[T]: parsing, bounds checks, neighbor arithmetic
//	days/  — Solver registry plus the day06/day07/day14/day16/day19 solvers
//	cmd/   — the solvekit command-line runner
//
// Quick ASCII example:
//
//	    items ──┬── shard 0 ── reduce ──┐
//	            ├── shard 1 ── reduce ──┼──▶ combine (sum, min, …)
//	            └── shard 2 ── reduce ──┘
//
// Dive into each package's doc.go for contracts, complexity and examples.
package solvekit
