// Package core provides the fundamental value types of lvlink.
//
// What:
//
//   - Point: three non-negative integer coordinates (X, Y, Z).
//   - PointSet: the ordered input; a point's index is its identity for the whole run.
//   - Edge: an unordered pair of indices {A, B} with A < B and an integer Weight.
//
// Why:
//
//	Every other package (distance, components, dsu, connectivity) speaks in
//	point indices and Edges. Keeping these types and the shared sentinel errors
//	in one leaf package lets callers match failures with errors.Is regardless of
//	which structure detected them.
//
// Errors:
//
//   - ErrInvalidEdgeEndpoint: index out of range or a == b; rejected before any mutation.
//   - ErrInsufficientComponents: a top-N component query found fewer than N components.
//   - ErrNoConnectivitySolution: the edge stream ended before full connectivity.
//   - ErrCoordinateRange: a coordinate is negative or >= MaxCoordinate.
//
// PointSet and Edge values are immutable by convention once built; nothing in
// this package holds locks.
package core
