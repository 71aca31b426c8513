// Package components provides an insert-only undirected graph over point
// indices and extracts the sizes of its connected components by traversal.
//
// What:
//
//   - Graph: n isolated points; AddEdge marks two points mutually adjacent.
//   - ConnectedComponentSizes: one depth-first sweep over all points, each point
//     visited exactly once, returning the size of every maximal component.
//   - Components: the member indices of each component.
//
// Why:
//
//	The typical query connects the first K edges of a sorted edge list and asks
//	for the largest components. The traversal here is deliberately independent of
//	the union-find in package dsu; connectivity.CrossCheck compares the two.
//
// Complexity:
//
//   - AddEdge: O(1) amortized.
//   - ConnectedComponentSizes / Components: O(V + E).
//
// Errors:
//
//   - core.ErrInvalidEdgeEndpoint: endpoint out of range or a == b; the graph is
//     left untouched.
package components
