// Package connectivity answers the two structural queries over a sorted edge
// list produced by package distance.
//
// Queries:
//
//   - ComponentProduct: connect the first k edges in a fresh components.Graph,
//     then multiply the sizes of the top N (default 3) largest components.
//   - BottleneckEdge: feed the whole list into a fresh dsu.UnionFind and stop at
//     the first edge whose Union merges the last two components. By the cut
//     property its weight is the heaviest edge of a minimum spanning tree.
//   - BottleneckValue: apply an EndpointFunc (e.g. ProductOfX) to the two
//     endpoint points of the bottleneck edge.
//   - CrossCheck: compare the component counts of both structures over the
//     same prefix; they must always agree.
//   - Solve: run both queries against one distance.Index.
//
// Every query builds its own structures; the shared inputs are never mutated.
//
// Errors:
//
//   - distance.ErrPrefixRange: k outside [0, len(edges)].
//   - core.ErrInsufficientComponents: fewer than N components for a top-N query.
//   - core.ErrNoConnectivitySolution: edges exhausted without full connectivity.
//   - core.ErrInvalidEdgeEndpoint: an edge references a bad index.
//   - ErrStructuresDisagree: CrossCheck found differing counts.
package connectivity
