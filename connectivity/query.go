package connectivity

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/lvlink/components"
	"github.com/katalvlaran/lvlink/core"
	"github.com/katalvlaran/lvlink/distance"
	"github.com/katalvlaran/lvlink/dsu"
)

// ErrStructuresDisagree indicates the traversal graph and the union-find
// reported different component counts for the same edge prefix.
var ErrStructuresDisagree = errors.New("connectivity: component counts disagree")

// EndpointFunc derives a value from the two endpoints of the bottleneck edge.
type EndpointFunc func(a, b core.Point) int64

// ProductOfX multiplies the X coordinates of a and b.
func ProductOfX(a, b core.Point) int64 {
	return int64(a.X) * int64(b.X)
}

// Result bundles the answers of Solve.
type Result struct {
	// Connected is the prefix length used for Product.
	Connected int
	// Product is the product of the Top largest component sizes.
	Product int
	// Bottleneck is the edge that made the point set one component.
	Bottleneck core.Edge
	// Value is the EndpointFunc applied to the bottleneck endpoints.
	Value int64
}

// graphFromPrefix inserts the first k edges into a fresh components.Graph.
func graphFromPrefix(edges []core.Edge, pointCount, k int) (*components.Graph, error) {
	if err := distance.CheckPrefix(k, len(edges)); err != nil {
		return nil, err
	}
	g := components.New(pointCount)
	for i, e := range edges[:k] {
		if err := g.AddEdge(e.A, e.B); err != nil {
			return nil, errors.Wrapf(err, "connectivity: edge #%d", i)
		}
	}

	return g, nil
}

// TopComponentSizes connects the first k edges and returns the top largest
// component sizes in descending order.
//
// Fails with core.ErrInsufficientComponents when fewer than top components exist.
func TopComponentSizes(edges []core.Edge, pointCount, k, top int) ([]int, error) {
	if top < 1 {
		return nil, errors.Wrapf(ErrOptionViolation, "top=%d", top)
	}
	g, err := graphFromPrefix(edges, pointCount, k)
	if err != nil {
		return nil, err
	}

	sizes := g.ConnectedComponentSizes()
	if len(sizes) < top {
		return nil, errors.Wrapf(core.ErrInsufficientComponents, "want %d, have %d", top, len(sizes))
	}
	slices.SortStableFunc(sizes, func(a, b int) int { return b - a })

	return sizes[:top], nil
}

// ComponentProduct connects the first k edges and returns the product of the
// Top (default 3) largest component sizes.
//
// Complexity: O(n + k) after the edge list is built.
func ComponentProduct(edges []core.Edge, pointCount, k int, opts ...Option) (int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	sizes, err := TopComponentSizes(edges, pointCount, k, o.Top)
	if err != nil {
		return 0, err
	}

	product := 1
	for _, s := range sizes {
		product *= s
	}

	return product, nil
}

// BottleneckEdge consumes edges in order and returns the first one whose Union
// merges the point set into a single component.
//
// Fails with core.ErrNoConnectivitySolution if the list ends first, which also
// covers point sets with fewer than two points.
//
// Complexity: O(E·α(n)) worst case; stops at the bottleneck.
func BottleneckEdge(edges []core.Edge, pointCount int) (core.Edge, error) {
	// 1. Fresh union-find: every point is its own component.
	uf := dsu.New(pointCount)
	for i, e := range edges {
		// 2. Reject bad endpoints before touching the structure.
		if err := core.ValidateEndpoints(e.A, e.B, pointCount); err != nil {
			return core.Edge{}, errors.Wrapf(err, "connectivity: edge #%d", i)
		}
		// 3. Merge; the first merge that leaves one component is the bottleneck.
		merged, err := uf.Union(e.A, e.B)
		if err != nil {
			return core.Edge{}, err
		}
		if merged && uf.IsFullyConnected() {
			return e, nil
		}
	}

	// 4. Edges exhausted while more than one component remains.
	return core.Edge{}, errors.Wrapf(core.ErrNoConnectivitySolution,
		"%d edges over %d points left %d components", len(edges), pointCount, uf.Components())
}

// BottleneckValue finds the bottleneck edge over points and applies fn to its endpoints.
func BottleneckValue(points core.PointSet, edges []core.Edge, fn EndpointFunc) (int64, error) {
	if fn == nil {
		return 0, errors.Wrap(ErrOptionViolation, "nil endpoint func")
	}
	e, err := BottleneckEdge(edges, points.Len())
	if err != nil {
		return 0, err
	}
	a, err := points.At(e.A)
	if err != nil {
		return 0, err
	}
	b, err := points.At(e.B)
	if err != nil {
		return 0, err
	}

	return fn(a, b), nil
}

// ComponentCounts returns the number of components after the first k edges as
// computed by traversal and by union-find, in that order.
func ComponentCounts(edges []core.Edge, pointCount, k int) (traversal, unionFind int, err error) {
	g, err := graphFromPrefix(edges, pointCount, k)
	if err != nil {
		return 0, 0, err
	}
	uf := dsu.New(pointCount)
	for _, e := range edges[:k] {
		if _, err := uf.Union(e.A, e.B); err != nil {
			return 0, 0, err
		}
	}

	return len(g.ConnectedComponentSizes()), uf.Components(), nil
}

// CrossCheck verifies both structures agree on the component count after the
// first k edges. Disagreement means one of them is broken.
func CrossCheck(edges []core.Edge, pointCount, k int) error {
	t, u, err := ComponentCounts(edges, pointCount, k)
	if err != nil {
		return err
	}
	if t != u {
		return errors.Wrapf(ErrStructuresDisagree, "prefix %d: traversal=%d union-find=%d", k, t, u)
	}

	return nil
}

// Solve runs ComponentProduct with prefix k and BottleneckValue over ix.
func Solve(ix *distance.Index, k int, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	points, edges := ix.Points(), ix.Edges()

	product, err := ComponentProduct(edges, points.Len(), k, WithTop(o.Top))
	if err != nil {
		return nil, errors.Wrap(err, "component product")
	}
	bottleneck, err := BottleneckEdge(edges, points.Len())
	if err != nil {
		return nil, errors.Wrap(err, "bottleneck")
	}
	a, _ := points.At(bottleneck.A)
	b, _ := points.At(bottleneck.B)

	return &Result{
		Connected:  k,
		Product:    product,
		Bottleneck: bottleneck,
		Value:      o.Value(a, b),
	}, nil
}
