// Package lvlink connects points in 3-D integer space by ascending distance and
// answers two structural questions about the result.
//
// What is lvlink?
//
//	Given n points, lvlink enumerates all n·(n-1)/2 pairwise edges, weights
//	each with the truncated Euclidean distance, sorts them deterministically and
//	then asks:
//		• which components exist after the K shortest edges are connected, and
//		  what is the product of the three largest?
//		• which edge, in ascending order, finally joins everything into one
//		  component (the bottleneck edge of a minimum spanning tree)?
//
// Packages:
//
//	core/         — Point, PointSet, Edge and the shared sentinel errors
//	pointio/      — "x,y,z" line parser with skip/strict modes
//	distance/     — integer sqrt, pairwise weights, stable sort, prefixes
//	components/   — insert-only adjacency graph + traversal component sizes
//	dsu/          — union-find with path compression and union by rank
//	connectivity/ — ComponentProduct, BottleneckEdge, CrossCheck, Solve
//	geoexport/    — GeoJSON rendering of points and connected edges
//	cmd/lvlink/   — command-line front end
//
// Quick ASCII example:
//
//	    A───B        C
//
//	After the shortest edge A─B there are two components, {A,B} and {C}. The
//	first later edge that touches C joins everything; it is the bottleneck.
//
//	go install github.com/katalvlaran/lvlink/cmd/lvlink@latest
package lvlink
