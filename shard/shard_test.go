package shard_test

import (
	"errors"
	"runtime"
	"sort"
	"sync/atomic"
	"testing"

	"github.com/solvekit/solvekit/shard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestMain guards against leaked worker goroutines: every call must join
// all P workers before its result channel closes.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// collect drains the result channel into a slice.
func collect[O any](ch <-chan O) []O {
	var out []O
	for v := range ch {
		out = append(out, v)
	}

	return out
}

// sumReducer adds its shard plus the capture offset.
func sumReducer(items []int, offset int) int {
	total := offset
	for _, v := range items {
		total += v
	}

	return total
}

// TestShardAndSolve_ExactlyPOutputs verifies exactly P outputs arrive for
// inputs larger than, equal to, and smaller than P — including empty input.
func TestShardAndSolve_ExactlyPOutputs(t *testing.T) {
	for _, tc := range []struct {
		name    string
		items   int
		workers int
	}{
		{"more items than workers", 100, 4},
		{"items equal workers", 4, 4},
		{"fewer items than workers", 3, 8},
		{"no items at all", 0, 5},
		{"single worker", 10, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			items := make([]int, tc.items)
			out := collect(shard.ShardAndSolve(items, 0, sumReducer, shard.WithWorkers(tc.workers)))
			require.Len(t, out, tc.workers, "must yield exactly P outputs")
		})
	}
}

// TestShardAndSolve_EmptyShardsStillReduce verifies the reducer runs once
// per shard even when most shards are empty.
func TestShardAndSolve_EmptyShardsStillReduce(t *testing.T) {
	var invocations atomic.Int64
	items := []int{1, 2} // 2 items, 6 workers → 4 empty shards

	out := collect(shard.ShardAndSolve(items, 0, func(items []int, _ int) int {
		invocations.Add(1)

		return len(items)
	}, shard.WithWorkers(6)))

	require.Len(t, out, 6)
	assert.Equal(t, int64(6), invocations.Load(), "every shard must invoke the reducer exactly once")
}

// TestShardAndSolve_SumRoundTrip checks the partition-invariance property:
// for every P ≥ 1 the combined sharded sum equals the sequential sum.
func TestShardAndSolve_SumRoundTrip(t *testing.T) {
	items := make([]int, 1000)
	want := 0
	for i := range items {
		items[i] = i * 3
		want += items[i]
	}

	for p := 1; p <= 16; p++ {
		got := 0
		for v := range shard.ShardAndSolve(items, 0, sumReducer, shard.WithWorkers(p)) {
			got += v
		}
		require.Equal(t, want, got, "P=%d must reproduce the sequential sum", p)
	}
}

// TestShardAndSolve_RoundRobinRouting pins the deterministic routing
// policy: item i lands in shard i mod P, in input order. The reducer
// returns its shard verbatim; shards are re-identified by their first
// element since outputs arrive in completion order.
func TestShardAndSolve_RoundRobinRouting(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	const p = 3

	shards := collect(shard.ShardAndSolve(items, 0, func(items []int, _ int) []int {
		return items
	}, shard.WithWorkers(p)))

	require.Len(t, shards, p)
	sort.Slice(shards, func(i, j int) bool { return shards[i][0] < shards[j][0] })
	assert.Equal(t, [][]int{
		{0, 3, 6, 9},
		{1, 4, 7},
		{2, 5, 8},
	}, shards)
}

// TestShardAndSolve_CaptureSharedVerbatim verifies every worker receives
// the same capture value.
func TestShardAndSolve_CaptureSharedVerbatim(t *testing.T) {
	capture := []int{10, 20}

	out := collect(shard.ShardAndSolve(make([]int, 8), capture, func(_ []int, c []int) int {
		return c[0] + c[1]
	}, shard.WithWorkers(4)))

	require.Len(t, out, 4)
	for _, v := range out {
		assert.Equal(t, 30, v)
	}
}

// TestShardAndSolve_DefaultWorkers verifies P defaults to the hardware
// parallelism, minimum 1.
func TestShardAndSolve_DefaultWorkers(t *testing.T) {
	want := runtime.NumCPU()
	if want < 1 {
		want = 1
	}

	out := collect(shard.ShardAndSolve([]int{1, 2, 3}, 0, sumReducer))
	assert.Len(t, out, want)

	// Invalid override keeps the default.
	out = collect(shard.ShardAndSolve([]int{1, 2, 3}, 0, sumReducer, shard.WithWorkers(0)))
	assert.Len(t, out, want)
}

// TestShardAndSolveErr_Success mirrors the sum round-trip through the
// error-aware variant.
func TestShardAndSolveErr_Success(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	out, err := shard.ShardAndSolveErr(items, 100, func(items []int, offset int) (int, error) {
		return sumReducer(items, offset), nil
	}, shard.WithWorkers(3))
	require.NoError(t, err)
	require.Len(t, out, 3)

	got := 0
	for _, v := range out {
		got += v
	}
	assert.Equal(t, 315, got, "3 offsets of 100 plus the item sum")
}

// TestShardAndSolveErr_Failure verifies a reducer error fails the whole
// call with no partial results.
func TestShardAndSolveErr_Failure(t *testing.T) {
	errBoom := errors.New("boom")
	items := []int{0, 1, 2, 3, 4, 5}

	out, err := shard.ShardAndSolveErr(items, 0, func(items []int, _ int) (int, error) {
		for _, v := range items {
			if v == 4 {
				return 0, errBoom
			}
		}

		return len(items), nil
	}, shard.WithWorkers(3))
	require.ErrorIs(t, err, errBoom)
	assert.Nil(t, out, "no partial-result salvage on failure")
}
