// Package shard provides a fixed fan-out/fan-in parallel map-reduce helper
// for CPU-bound batch work.
//
// Overview:
//
//   - ShardAndSolve splits a finite slice of items into P shards, runs a
//     caller-supplied pure reducer against each shard on its own worker
//     goroutine, and delivers the P per-shard outputs on a channel in
//     completion order for the caller to combine (sum, min-by-key, …).
//   - P defaults to runtime.NumCPU(), queried once per call, minimum 1.
//     WithWorkers overrides it.
//   - Routing is round-robin: item i goes to shard i mod P. This keeps the
//     load near-uniform without knowing the total count up front and makes
//     shard assignment deterministic for a fixed P and input order.
//
// Contract:
//
//   - The reducer must be a pure function of its shard and the capture
//     value: no shared mutable state across shards, so no synchronization
//     is needed inside it.
//   - The capture value is passed identically to every shard. It must be
//     cheaply shareable and treated as read-only by the reducer.
//   - Exactly P outputs are delivered, one per shard, then the channel is
//     closed. Empty shards still invoke the reducer once with an empty
//     slice; the reducer must return the reduction's identity for it.
//   - No output is dropped or duplicated. Combination must therefore be
//     order-independent (commutative/associative), since outputs arrive in
//     completion order, not shard order.
//
// Failure semantics:
//
//   - ShardAndSolve has none: a panic inside a reducer is fatal to the
//     process. Inputs are assumed pre-validated; a reducer failure is a
//     contract bug, not a recoverable condition. There is no cancellation,
//     retry, or partial-result salvage — workloads are bounded one-shot
//     batches that always run to completion.
//   - ShardAndSolveErr is the error-aware variant for reducers that parse
//     or validate inside the shard: the first reducer error fails the whole
//     call after every worker has finished its own shard.
//
// Lifecycle:
//
//   - Each call spawns P fresh workers and retains no state afterwards.
//     All workers have exited by the time the result channel closes (or
//     ShardAndSolveErr returns), so calls never leak goroutines.
//
// Complexity:
//
//   - Routing: O(len(items)). Reduction: whatever the reducer costs,
//     amortized across P cores. Memory: O(len(items)) for the shard
//     buffers plus O(P) for results.
package shard
