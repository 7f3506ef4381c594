// Package shard defines tunable options for the sharded executor.
package shard

import "runtime"

// Reducer is a pure function mapping one shard plus the shared capture
// value to a single output. It is invoked exactly once per shard, possibly
// with an empty shard, and must not touch state shared with other shards.
type Reducer[I, C, O any] func(items []I, capture C) O

// ReducerErr is a Reducer that can reject its shard, for reducers that
// parse or validate inside the worker.
type ReducerErr[I, C, O any] func(items []I, capture C) (O, error)

// Option configures a single ShardAndSolve call via functional arguments.
type Option func(*options)

// options holds per-call parameters.
type options struct {
	workers int
}

// defaultOptions returns the per-call defaults: one worker per logical CPU,
// minimum 1.
func defaultOptions() options {
	p := runtime.NumCPU()
	if p < 1 {
		p = 1
	}

	return options{workers: p}
}

// WithWorkers overrides the shard count P.
//
//	n ≥ 1: use exactly n shards
//	n < 1: keep the default (runtime.NumCPU)
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}
