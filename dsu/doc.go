// Package dsu implements a disjoint-set (union-find) over point indices with
// path compression and union by rank, tracking the live number of components.
//
// What & Why
//
//   - New(n) starts with every point in its own set; Components() == n.
//   - Find resolves a representative and re-parents every node on the visited
//     path directly to the root. It is iterative, so arbitrarily long chains
//     cannot exhaust the goroutine stack.
//   - Union merges two sets, attaching the lower-rank root under the higher-rank
//     root. On equal ranks the root of the first argument survives and its rank
//     grows by one. Components() drops by exactly one per successful Union.
//   - IsFullyConnected reports Components() == 1.
//
// Complexity:
//
//   - Find / Union: O(α(n)) amortized.
//   - Memory: O(n) for parent and rank.
//
// Errors:
//
//   - core.ErrInvalidEdgeEndpoint: Find or Union with an index outside [0, n).
//     Union(a, a) is not an error; it reports false like any already-joined pair.
package dsu
