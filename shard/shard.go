// Package shard implements the fixed fan-out/fan-in executor.
package shard

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// ShardAndSolve routes items round-robin into P shards (item i → shard
// i mod P), invokes reduce once per shard on its own worker goroutine, and
// returns a channel yielding the P outputs in completion order. The channel
// is closed after the last worker finishes, so callers can simply range
// over it.
//
// Exactly P values are delivered even when len(items) < P: excess shards
// are empty and still invoke reduce with an empty slice. capture is handed
// unchanged to every worker and must be treated as read-only.
//
// A panic inside reduce is fatal; see the package documentation for the
// failure model.
func ShardAndSolve[I, C, O any](items []I, capture C, reduce Reducer[I, C, O], opts ...Option) <-chan O {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	shards := route(items, o.workers)
	out := make(chan O, o.workers)

	var wg sync.WaitGroup
	wg.Add(o.workers)
	for _, s := range shards {
		go func(s []I) {
			defer wg.Done()
			out <- reduce(s, capture)
		}(s)
	}

	// Close out once every worker has reported, so consumers observe
	// exactly P values followed by channel close.
	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// ShardAndSolveErr is the error-aware form of ShardAndSolve for reducers
// that parse or validate per shard. It blocks until every worker has
// finished its own shard, then returns the P outputs in completion order,
// or the first reducer error. On error the partial outputs are discarded —
// there is no partial-result salvage.
func ShardAndSolveErr[I, C, O any](items []I, capture C, reduce ReducerErr[I, C, O], opts ...Option) ([]O, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	shards := route(items, o.workers)
	out := make(chan O, o.workers)

	var g errgroup.Group
	for _, s := range shards {
		s := s
		g.Go(func() error {
			v, err := reduce(s, capture)
			if err != nil {
				return err
			}
			out <- v

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(out)

	results := make([]O, 0, o.workers)
	for v := range out {
		results = append(results, v)
	}

	return results, nil
}

// route assigns item i to shard i mod p. Every shard buffer is allocated
// even when it stays empty, so each one still reaches a reducer exactly
// once.
func route[I any](items []I, p int) [][]I {
	shards := make([][]I, p)
	per := len(items)/p + 1
	for i := range shards {
		shards[i] = make([]I, 0, per)
	}
	for i, item := range items {
		shards[i%p] = append(shards[i%p], item)
	}

	return shards
}
