// Package days defines the Solver contract shared by every puzzle solver
// and a registry mapping day numbers to implementations.
//
// Each solver package (day06, day07, …) registers itself from an init
// function; importing a solver package for side effects is enough to make
// it reachable through Lookup. The solvekit command imports the full set.
//
// Solvers parse their own domain-specific textual input and return a single
// numeric answer per part. Parse failures on malformed input surface as
// wrapped sentinel errors; inputs are fixed, trusted puzzle data, so the
// caller treats any error as fatal.
package days
