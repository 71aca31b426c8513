// Package core defines the leaf types shared by every lvlink package:
// Point, PointSet and Edge, together with the sentinel errors that the
// query structures report.
//
// Errors:
//
//	ErrInvalidEdgeEndpoint    - edge endpoint out of range, or a == b.
//	ErrInsufficientComponents - fewer components than a top-N query requested.
//	ErrNoConnectivitySolution - edge stream exhausted before full connectivity.
//	ErrCoordinateRange        - coordinate outside [0, MaxCoordinate).
package core

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// MaxCoordinate is the exclusive upper bound of a point coordinate.
// With every coordinate below 2^31 the squared sum dx²+dy²+dz² stays below 3·2^62
// and therefore fits in a uint64.
const MaxCoordinate = 1 << 31

// Sentinel errors for lvlink operations.
var (
	// ErrInvalidEdgeEndpoint indicates an edge references an index outside
	// [0, pointCount) or joins a point to itself.
	ErrInvalidEdgeEndpoint = errors.New("core: invalid edge endpoint")

	// ErrInsufficientComponents indicates a top-N component query was issued
	// while fewer than N components exist.
	ErrInsufficientComponents = errors.New("core: insufficient components")

	// ErrNoConnectivitySolution indicates the sorted edge stream was exhausted
	// without the point set becoming one component.
	ErrNoConnectivitySolution = errors.New("core: no connectivity solution")

	// ErrCoordinateRange indicates a coordinate is negative or >= MaxCoordinate.
	ErrCoordinateRange = errors.New("core: coordinate out of range")
)

// Point is a position in 3-dimensional non-negative integer space.
// A Point has no identity of its own; it is identified by its index in a PointSet.
type Point struct {
	X, Y, Z int
}

// String renders the point as "(x,y,z)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Validate reports ErrCoordinateRange if any coordinate is outside [0, MaxCoordinate).
func (p Point) Validate() error {
	for _, c := range [3]int{p.X, p.Y, p.Z} {
		if c < 0 || c >= MaxCoordinate {
			return errors.Wrapf(ErrCoordinateRange, "point %s", p)
		}
	}

	return nil
}

// Edge is an undirected connection between two point indices.
// Edges produced by the distance package always satisfy A < B.
type Edge struct {
	// A is the smaller endpoint index.
	A int

	// B is the larger endpoint index.
	B int

	// Weight is the truncated Euclidean distance between the endpoints.
	Weight int64
}

// String renders the edge as "a-b(w)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%d)", e.A, e.B, e.Weight)
}

// PointSet is the ordered, immutable list of input points.
// Index i refers to the i-th point of the input.
type PointSet struct {
	points []Point
}

// NewPointSet copies pts into a new PointSet after validating every coordinate.
//
// Complexity: O(n).
func NewPointSet(pts []Point) (PointSet, error) {
	out := make([]Point, len(pts))
	for i, p := range pts {
		if err := p.Validate(); err != nil {
			return PointSet{}, errors.Wrapf(err, "index %d", i)
		}
		out[i] = p
	}

	return PointSet{points: out}, nil
}

// Len returns the number of points.
func (s PointSet) Len() int { return len(s.points) }

// At returns the point at index i, or ErrInvalidEdgeEndpoint when i is out of range.
func (s PointSet) At(i int) (Point, error) {
	if i < 0 || i >= len(s.points) {
		return Point{}, errors.Wrapf(ErrInvalidEdgeEndpoint, "index %d not in [0,%d)", i, len(s.points))
	}

	return s.points[i], nil
}

// Points returns a copy of the underlying points.
func (s PointSet) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)

	return out
}

// ValidateEndpoints checks that a and b are distinct indices in [0, n).
// Every mutating structure calls it before touching its state.
func ValidateEndpoints(a, b, n int) error {
	if a < 0 || a >= n || b < 0 || b >= n {
		return errors.Wrapf(ErrInvalidEdgeEndpoint, "edge %d-%d outside [0,%d)", a, b, n)
	}
	if a == b {
		return errors.Wrapf(ErrInvalidEdgeEndpoint, "self-edge %d-%d", a, b)
	}

	return nil
}
