// Package distance builds the sorted edge list of the complete graph over a
// core.PointSet.
//
// What:
//
//   - ISqrt: floor square root of a uint64, integer arithmetic only.
//   - Weight: truncated Euclidean distance floor(sqrt(dx²+dy²+dz²)).
//   - Build: enumerates every unordered pair (i, j), i < j, and sorts the
//     resulting edges ascending by weight.
//
// Determinism:
//
//	Pairs are generated in lexicographic (i, j) order and sorted with a stable
//	sort, so equal weights keep generation order. Downstream queries depend on
//	which of several equal-weight edges is processed first; the order is part of
//	the contract.
//
// Truncation:
//
//	Weights truncate; they never round. A floating-point distance with a
//	different rounding rule changes which edge closes a component and must not
//	be substituted.
//
// Complexity:
//
//   - Build: O(n² log n) time, O(n²) memory for n points. Intended for point sets
//     in the low thousands.
//
// Errors:
//
//   - ErrPrefixRange: Prefix(k) with k < 0 or k > Len().
//   - core.ErrInvalidEdgeEndpoint: Distance(i, j) with bad or identical indices.
package distance
