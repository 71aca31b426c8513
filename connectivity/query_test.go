package connectivity_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlink/connectivity"
	"github.com/katalvlaran/lvlink/core"
	"github.com/katalvlaran/lvlink/distance"
	"github.com/katalvlaran/lvlink/internal/fixture"
)

type SampleSuite struct {
	suite.Suite
	ix *distance.Index
}

func (s *SampleSuite) SetupSuite() {
	ix, err := distance.Build(fixture.PointSet())
	s.Require().NoError(err)
	s.ix = ix
}

func (s *SampleSuite) n() int { return s.ix.Points().Len() }

func (s *SampleSuite) TestComponentProduct() {
	got, err := connectivity.ComponentProduct(s.ix.Edges(), s.n(), fixture.SampleConnect)
	s.Require().NoError(err)
	s.Require().Equal(fixture.SampleProduct, got)
}

func (s *SampleSuite) TestTopComponentSizes() {
	sizes, err := connectivity.TopComponentSizes(s.ix.Edges(), s.n(), fixture.SampleConnect, 4)
	s.Require().NoError(err)
	s.Require().Equal([]int{5, 4, 2, 2}, sizes)
}

func (s *SampleSuite) TestComponentProduct_WithTop() {
	got, err := connectivity.ComponentProduct(s.ix.Edges(), s.n(), fixture.SampleConnect, connectivity.WithTop(1))
	s.Require().NoError(err)
	s.Require().Equal(5, got)

	_, err = connectivity.ComponentProduct(s.ix.Edges(), s.n(), fixture.SampleConnect, connectivity.WithTop(0))
	s.Require().ErrorIs(err, connectivity.ErrOptionViolation)
}

func (s *SampleSuite) TestComponentProduct_PrefixRange() {
	_, err := connectivity.ComponentProduct(s.ix.Edges(), s.n(), -1)
	s.Require().ErrorIs(err, distance.ErrPrefixRange)
	_, err = connectivity.ComponentProduct(s.ix.Edges(), s.n(), s.ix.Len()+1)
	s.Require().ErrorIs(err, distance.ErrPrefixRange)

	// k=0: twenty singletons.
	got, err := connectivity.ComponentProduct(s.ix.Edges(), s.n(), 0)
	s.Require().NoError(err)
	s.Require().Equal(1, got)
}

func (s *SampleSuite) TestComponentProduct_Insufficient() {
	// All edges: a single component.
	_, err := connectivity.ComponentProduct(s.ix.Edges(), s.n(), s.ix.Len())
	s.Require().ErrorIs(err, core.ErrInsufficientComponents)
}

func (s *SampleSuite) TestBottleneck() {
	e, err := connectivity.BottleneckEdge(s.ix.Edges(), s.n())
	s.Require().NoError(err)
	s.Require().Equal(10, e.A)
	s.Require().Equal(12, e.B)

	v, err := connectivity.BottleneckValue(s.ix.Points(), s.ix.Edges(), connectivity.ProductOfX)
	s.Require().NoError(err)
	s.Require().Equal(int64(fixture.SampleBottleneckValue), v)
}

// TestBottleneck_IsMSTMax checks the bottleneck is the first edge after which
// traversal also sees a single component.
func (s *SampleSuite) TestBottleneck_IsMSTMax() {
	e, err := connectivity.BottleneckEdge(s.ix.Edges(), s.n())
	s.Require().NoError(err)

	edges := s.ix.Edges()
	pos := -1
	for i := range edges {
		if edges[i] == e {
			pos = i
			break
		}
	}
	s.Require().GreaterOrEqual(pos, 0)

	before, _, err := connectivity.ComponentCounts(edges, s.n(), pos)
	s.Require().NoError(err)
	s.Require().Equal(2, before)
	after, _, err := connectivity.ComponentCounts(edges, s.n(), pos+1)
	s.Require().NoError(err)
	s.Require().Equal(1, after)
}

func (s *SampleSuite) TestCrossCheckEveryPrefix() {
	for k := 0; k <= s.ix.Len(); k++ {
		s.Require().NoError(connectivity.CrossCheck(s.ix.Edges(), s.n(), k), "prefix %d", k)
	}
}

func (s *SampleSuite) TestSolve() {
	res, err := connectivity.Solve(s.ix, fixture.SampleConnect)
	s.Require().NoError(err)
	s.Require().Equal(fixture.SampleConnect, res.Connected)
	s.Require().Equal(fixture.SampleProduct, res.Product)
	s.Require().Equal(int64(fixture.SampleBottleneckValue), res.Value)

	sumX := func(a, b core.Point) int64 { return int64(a.X + b.X) }
	res, err = connectivity.Solve(s.ix, fixture.SampleConnect, connectivity.WithValue(sumX))
	s.Require().NoError(err)
	s.Require().Equal(int64(216+117), res.Value)

	_, err = connectivity.Solve(s.ix, fixture.SampleConnect, connectivity.WithValue(nil))
	s.Require().ErrorIs(err, connectivity.ErrOptionViolation)
}

func TestSampleSuite(t *testing.T) {
	suite.Run(t, new(SampleSuite))
}

func TestSinglePointBoundary(t *testing.T) {
	set, err := core.NewPointSet([]core.Point{{X: 7, Y: 7, Z: 7}})
	require.NoError(t, err)
	ix, err := distance.Build(set)
	require.NoError(t, err)
	require.Equal(t, 0, ix.Len())

	sizes, err := connectivity.TopComponentSizes(ix.Edges(), 1, 0, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1}, sizes)

	_, err = connectivity.ComponentProduct(ix.Edges(), 1, 0)
	require.ErrorIs(t, err, core.ErrInsufficientComponents)

	_, err = connectivity.BottleneckEdge(ix.Edges(), 1)
	require.ErrorIs(t, err, core.ErrNoConnectivitySolution)

	_, err = connectivity.Solve(ix, 0)
	require.ErrorIs(t, err, core.ErrInsufficientComponents)
}

func TestBottleneck_Disconnected(t *testing.T) {
	// Edges never touch point 3.
	edges := []core.Edge{{A: 0, B: 1, Weight: 1}, {A: 1, B: 2, Weight: 2}}
	_, err := connectivity.BottleneckEdge(edges, 4)
	require.ErrorIs(t, err, core.ErrNoConnectivitySolution)
}

func TestInvalidEdges(t *testing.T) {
	bad := []core.Edge{{A: 0, B: 0}}
	_, err := connectivity.BottleneckEdge(bad, 2)
	require.ErrorIs(t, err, core.ErrInvalidEdgeEndpoint)
	_, err = connectivity.ComponentProduct(bad, 5, 1)
	require.ErrorIs(t, err, core.ErrInvalidEdgeEndpoint)

	outside := []core.Edge{{A: 0, B: 9}}
	err = connectivity.CrossCheck(outside, 3, 1)
	require.ErrorIs(t, err, core.ErrInvalidEdgeEndpoint)
}

// TestCrossCheck_Random exercises union-find agreement on random clouds with
// heavy weight ties.
func TestCrossCheck_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(2025))
	for round := 0; round < 5; round++ {
		pts := make([]core.Point, 25+round*5)
		for i := range pts {
			pts[i] = core.Point{X: rng.Intn(6), Y: rng.Intn(6), Z: rng.Intn(6)}
		}
		set, err := core.NewPointSet(pts)
		require.NoError(t, err)
		ix, err := distance.Build(set)
		require.NoError(t, err)
		for k := 0; k <= ix.Len(); k += 7 {
			require.NoError(t, connectivity.CrossCheck(ix.Edges(), set.Len(), k))
		}
		_, err = connectivity.BottleneckEdge(ix.Edges(), set.Len())
		require.NoError(t, err, "complete graph must connect")
	}
}
