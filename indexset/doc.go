// Package indexset provides the small index containers the boolean engine
// builds everything else from: a membership-only int set, an indexed int set
// that assigns each distinct value a stable 0-based rank equal to its
// insertion order, and an int→int map used for the vertex-merge chain.
//
// All three containers are deterministic: iteration order follows insertion
// order, never map iteration order, so two runs over identical input produce
// identical sequences (spec.md §8, invariant 5).
//
// Lookup is bounds-checked; a miss returns the sentinel NotFound rather than
// panicking, and duplicate inserts are idempotent (spec.md §4.1).
package indexset

// NotFound is the sentinel returned by lookups that find no match.
const NotFound = -1
