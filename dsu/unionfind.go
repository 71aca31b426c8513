package dsu

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlink/core"
)

// UnionFind is a disjoint-set forest over indices [0, n).
type UnionFind struct {
	parent     []int
	rank       []uint8
	components int
}

// New returns a UnionFind with pointCount singleton sets.
// A negative pointCount is treated as zero.
func New(pointCount int) *UnionFind {
	if pointCount < 0 {
		pointCount = 0
	}
	parent := make([]int, pointCount)
	for i := range parent {
		parent[i] = i
	}

	return &UnionFind{
		parent:     parent,
		rank:       make([]uint8, pointCount),
		components: pointCount,
	}
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Components returns the number of disjoint sets.
func (uf *UnionFind) Components() int { return uf.components }

// IsFullyConnected reports whether every element belongs to one set.
func (uf *UnionFind) IsFullyConnected() bool { return uf.components == 1 }

// Find returns the root of x's set and compresses the path so every node
// visited along the way points directly at the root.
func (uf *UnionFind) Find(x int) (int, error) {
	if x < 0 || x >= len(uf.parent) {
		return 0, errors.Wrapf(core.ErrInvalidEdgeEndpoint, "dsu: index %d not in [0,%d)", x, len(uf.parent))
	}

	return uf.find(x), nil
}

// find is Find without bounds checking.
func (uf *UnionFind) find(x int) int {
	// First pass: locate the root.
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	// Second pass: point the whole path at the root.
	for uf.parent[x] != root {
		x, uf.parent[x] = uf.parent[x], root
	}

	return root
}

// Union merges the sets containing a and b.
// Returns true if two distinct sets were merged, false if they were already one.
func (uf *UnionFind) Union(a, b int) (bool, error) {
	n := len(uf.parent)
	if a < 0 || a >= n || b < 0 || b >= n {
		return false, errors.Wrapf(core.ErrInvalidEdgeEndpoint, "dsu: union %d-%d outside [0,%d)", a, b, n)
	}

	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false, nil
	}

	switch {
	case uf.rank[ra] < uf.rank[rb]:
		uf.parent[ra] = rb
	case uf.rank[rb] < uf.rank[ra]:
		uf.parent[rb] = ra
	default:
		uf.parent[rb] = ra
		uf.rank[ra]++
	}
	uf.components--

	return true, nil
}

// Parent exposes the raw parent pointer of x for diagnostics and tests.
// It does not compress paths.
func (uf *UnionFind) Parent(x int) (int, error) {
	if x < 0 || x >= len(uf.parent) {
		return 0, errors.Wrapf(core.ErrInvalidEdgeEndpoint, "dsu: index %d not in [0,%d)", x, len(uf.parent))
	}

	return uf.parent[x], nil
}
