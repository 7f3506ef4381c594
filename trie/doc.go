// Package trie provides an arena-backed prefix tree over a small, dense
// alphabet, with dynamic-programming arrangement counting.
//
// Overview:
//
//   - A Trie stores a set of pattern sequences whose symbols expose a dense
//     integer index in [0, N), where N is the alphabet size fixed at
//     construction.
//   - Nodes live in a flat arena slice and reference children by integer
//     handle, never by pointer. Node 0 is the root (the empty prefix). The
//     structure is append-only during insertion and read-only afterwards.
//   - CountArrangements reports the number of distinct ways a target
//     sequence can be tiled by concatenating one or more stored patterns,
//     duplicates counted. CanArrange is the boolean form.
//
// Algorithm (CountArrangements):
//
//  1. Allocate reach[0..len(target)], reach[0] = 1 (the empty prefix has
//     one trivial tiling).
//  2. For each start index s in increasing order with reach[s] > 0, walk
//     the trie from the root consuming target[s], target[s+1], … until the
//     walk falls off the trie or off the target.
//  3. Each time the walk sits on a terminal node after consuming up to
//     index e, add reach[s] into reach[e+1].
//  4. The answer is reach[len(target)].
//
// Every trie-matching substring at every reachable start is explored exactly
// once, so the worst case is O(len(target)²) for pathological pattern sets,
// but failed walks stop early and typical inputs are far cheaper.
//
// Edge cases and conventions:
//
//   - An empty target counts 1 arrangement (the reach[0] = 1 convention).
//   - An empty pattern marks the root terminal. It is accepted but inert:
//     the DP only advances on non-empty matches, so a terminal root never
//     contributes extra arrangements.
//   - Counts are uint64. Absence of a match is a normal zero count, never
//     an error.
//
// Preconditions:
//
//   - Symbol indices must lie in [0, N). An out-of-range index is a
//     programming-contract violation and panics immediately; it is not a
//     recoverable runtime error.
//
// Concurrency:
//
//   - Insertion is single-threaded. Once built, a Trie is read-only and
//     safe for concurrent CountArrangements/CanArrange/Contains calls.
package trie
