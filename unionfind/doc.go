// Package unionfind implements a disjoint-set forest over a fixed universe
// of integer elements 0..n-1.
//
// What:
//
//   - Union merges the sets holding two elements.
//   - Connected reports whether two elements share a set.
//   - Find returns the canonical representative of an element's set.
//
// Why:
//
//   - Incremental connectivity: answer "are these linked?" after every merge
//     without re-running a graph search.
//   - Percolation, Kruskal MST, image labelling, equivalence classes.
//
// Complexity:
//
//   - Union, Find, Connected: amortized O(α(n)) with union-by-size and
//     path halving (α is the inverse Ackermann function).
//   - Memory: O(n).
//
// Indices outside [0, n) are a programming error and panic, the same way a
// slice index would. The structure is not safe for concurrent mutation.
package unionfind
