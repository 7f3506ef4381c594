// Package trie implements the arena-backed prefix tree and its
// arrangement-counting dynamic program.
package trie

import "fmt"

// Symbol is any discrete alphabet element exposing a dense integer index.
// Index must return a value in [0, N) for the alphabet size N the Trie was
// constructed with; anything else is a contract violation and panics.
type Symbol interface {
	Index() int
}

// noChild marks an absent child handle in the node arena.
const noChild int32 = -1

// node is one trie node: one child handle per alphabet symbol plus a
// terminal flag marking "a pattern ends here".
type node struct {
	children []int32
	terminal bool
}

// Trie is a prefix tree over an alphabet of fixed size. The zero value is
// not usable; construct with New or Build.
type Trie[S Symbol] struct {
	alphabet int
	nodes    []node
}

// New returns an empty Trie over an alphabet of the given size.
// Panics if alphabetSize < 1 (contract violation, not a runtime condition).
func New[S Symbol](alphabetSize int) *Trie[S] {
	if alphabetSize < 1 {
		panic(fmt.Sprintf("trie: alphabet size must be positive, got %d", alphabetSize))
	}
	t := &Trie[S]{alphabet: alphabetSize}
	t.nodes = append(t.nodes, t.newNode()) // node 0: the root

	return t
}

// Build constructs a Trie over the given alphabet size and inserts every
// pattern. Insertion order is irrelevant; duplicate patterns collapse.
func Build[S Symbol](alphabetSize int, patterns [][]S) *Trie[S] {
	t := New[S](alphabetSize)
	for _, p := range patterns {
		t.Insert(p)
	}

	return t
}

// newNode allocates a node with no children.
func (t *Trie[S]) newNode() node {
	children := make([]int32, t.alphabet)
	for i := range children {
		children[i] = noChild
	}

	return node{children: children}
}

// index validates and returns the dense index of s.
func (t *Trie[S]) index(s S) int {
	i := s.Index()
	if i < 0 || i >= t.alphabet {
		panic(fmt.Sprintf("trie: symbol index %d out of range [0,%d)", i, t.alphabet))
	}

	return i
}

// Insert adds pattern to the trie, creating nodes as needed and marking the
// final node terminal. An empty pattern marks the root itself terminal; see
// the package documentation for why that is inert for arrangement counting.
// Complexity: O(len(pattern)).
func (t *Trie[S]) Insert(pattern []S) {
	cur := int32(0)
	for _, s := range pattern {
		i := t.index(s)
		next := t.nodes[cur].children[i]
		if next == noChild {
			next = int32(len(t.nodes))
			t.nodes = append(t.nodes, t.newNode())
			t.nodes[cur].children[i] = next
		}
		cur = next
	}
	t.nodes[cur].terminal = true
}

// Len returns the number of nodes in the arena, root included.
func (t *Trie[S]) Len() int { return len(t.nodes) }

// Contains reports whether seq is one of the stored patterns: walking from
// the root consuming its symbols must land on a terminal node.
// Complexity: O(len(seq)).
func (t *Trie[S]) Contains(seq []S) bool {
	cur := int32(0)
	for _, s := range seq {
		cur = t.nodes[cur].children[t.index(s)]
		if cur == noChild {
			return false
		}
	}

	return t.nodes[cur].terminal
}

// CountArrangements returns the number of ways target can be partitioned
// into a concatenation of one or more stored patterns, duplicates counted.
// An empty target counts 1 by the reach[0] = 1 convention. A zero count is
// a normal outcome, not an error.
// Complexity: O(len(target)²) worst case; failed trie walks stop early.
func (t *Trie[S]) CountArrangements(target []S) uint64 {
	n := len(target)
	reach := make([]uint64, n+1)
	reach[0] = 1

	for s := 0; s < n; s++ {
		if reach[s] == 0 {
			continue
		}
		cur := int32(0)
		for e := s; e < n; e++ {
			cur = t.nodes[cur].children[t.index(target[e])]
			if cur == noChild {
				break
			}
			if t.nodes[cur].terminal {
				reach[e+1] += reach[s]
			}
		}
	}

	return reach[n]
}

// CanArrange reports whether at least one arrangement of target exists.
// Equivalent to CountArrangements(target) > 0 but tracks only reachability,
// so aggregating callers can count representable targets without overflow
// concerns.
// Complexity: O(len(target)²) worst case.
func (t *Trie[S]) CanArrange(target []S) bool {
	n := len(target)
	reach := make([]bool, n+1)
	reach[0] = true

	for s := 0; s < n; s++ {
		if !reach[s] {
			continue
		}
		cur := int32(0)
		for e := s; e < n; e++ {
			cur = t.nodes[cur].children[t.index(target[e])]
			if cur == noChild {
				break
			}
			if t.nodes[cur].terminal {
				reach[e+1] = true
			}
		}
	}

	return reach[n]
}
