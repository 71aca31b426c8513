package distance

import (
	"math/bits"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/lvlink/core"
)

// ErrPrefixRange indicates a requested edge prefix length is outside [0, Len()].
var ErrPrefixRange = errors.New("distance: prefix length out of range")

// Index is the immutable result of Build: the input points and every pairwise
// edge sorted ascending by weight.
type Index struct {
	points core.PointSet
	edges  []core.Edge
}

// ISqrt returns floor(sqrt(n)) using Newton's iteration on integers.
//
// The starting guess 2^ceil(bitlen/2) is never below the true root, and the
// iteration decreases monotonically until it reaches the floor.
//
// Complexity: O(log log n) iterations.
func ISqrt(n uint64) uint64 {
	if n < 2 {
		return n
	}
	x := uint64(1) << ((bits.Len64(n) + 1) / 2)
	for {
		y := (x + n/x) / 2
		if y >= x {
			return x
		}
		x = y
	}
}

// squared returns dx²+dy²+dz² between p and q.
// Coordinates are bounded by core.MaxCoordinate, so the sum cannot overflow.
func squared(p, q core.Point) uint64 {
	dx, dy, dz := absDiff(p.X, q.X), absDiff(p.Y, q.Y), absDiff(p.Z, q.Z)

	return dx*dx + dy*dy + dz*dz
}

func absDiff(a, b int) uint64 {
	if a > b {
		return uint64(a - b)
	}

	return uint64(b - a)
}

// Weight returns the truncated Euclidean distance between p and q.
// Weight(p, q) == Weight(q, p) for every pair.
func Weight(p, q core.Point) int64 {
	return int64(ISqrt(squared(p, q)))
}

// Build computes every pairwise edge of points and sorts them ascending by
// weight, keeping generation order for equal weights.
//
// Steps:
//  1. Validate coordinates (core.ErrCoordinateRange).
//  2. For i < j, append Edge{A: i, B: j, Weight: Weight(p[i], p[j])}.
//  3. Stable sort by Weight.
//
// Empty and singleton inputs yield an Index with zero edges.
//
// Complexity: O(n² log n) time, O(n²) memory.
func Build(points core.PointSet) (*Index, error) {
	// 1. Validate coordinates so squared sums cannot overflow.
	pts := points.Points()
	for i, p := range pts {
		if err := p.Validate(); err != nil {
			return nil, errors.Wrapf(err, "distance: index %d", i)
		}
	}

	// 2. Enumerate each unordered pair once, in lexicographic (i, j) order.
	n := len(pts)
	edges := make([]core.Edge, 0, n*(n-1)/2+1)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, core.Edge{A: i, B: j, Weight: Weight(pts[i], pts[j])})
		}
	}

	// 3. Stable sort by weight; equal weights keep generation order.
	slices.SortStableFunc(edges, func(a, b core.Edge) int {
		switch {
		case a.Weight < b.Weight:
			return -1
		case a.Weight > b.Weight:
			return 1
		default:
			return 0
		}
	})

	return &Index{points: points, edges: edges}, nil
}

// Points returns the PointSet the index was built from.
func (ix *Index) Points() core.PointSet { return ix.points }

// Edges returns the sorted edge list. The slice is shared; callers must not modify it.
func (ix *Index) Edges() []core.Edge { return ix.edges }

// Len returns the number of edges, n·(n-1)/2.
func (ix *Index) Len() int { return len(ix.edges) }

// Prefix returns the first k edges of the sorted list.
// Fails with ErrPrefixRange unless 0 <= k <= Len().
func (ix *Index) Prefix(k int) ([]core.Edge, error) {
	if err := CheckPrefix(k, len(ix.edges)); err != nil {
		return nil, err
	}

	return ix.edges[:k], nil
}

// Distance returns the weight between points i and j.
// The diagonal is undefined: i == j is rejected with core.ErrInvalidEdgeEndpoint.
func (ix *Index) Distance(i, j int) (int64, error) {
	if err := core.ValidateEndpoints(i, j, ix.points.Len()); err != nil {
		return 0, err
	}
	p, _ := ix.points.At(i)
	q, _ := ix.points.At(j)

	return Weight(p, q), nil
}

// CheckPrefix reports ErrPrefixRange unless 0 <= k <= total.
func CheckPrefix(k, total int) error {
	if k < 0 || k > total {
		return errors.Wrapf(ErrPrefixRange, "k=%d, edges=%d", k, total)
	}

	return nil
}
