package dsu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlink/core"
	"github.com/katalvlaran/lvlink/dsu"
)

func TestNew(t *testing.T) {
	uf := dsu.New(4)
	require.Equal(t, 4, uf.Len())
	require.Equal(t, 4, uf.Components())
	require.False(t, uf.IsFullyConnected())
	for i := 0; i < 4; i++ {
		r, err := uf.Find(i)
		require.NoError(t, err)
		require.Equal(t, i, r)
	}

	require.True(t, dsu.New(1).IsFullyConnected())
	require.Equal(t, 0, dsu.New(-1).Len())
	require.False(t, dsu.New(0).IsFullyConnected())
}

// TestUnion_Idempotent checks the true-then-false contract and that the
// component count changes only on the first call.
func TestUnion_Idempotent(t *testing.T) {
	uf := dsu.New(3)
	merged, err := uf.Union(0, 1)
	require.NoError(t, err)
	require.True(t, merged)
	require.Equal(t, 2, uf.Components())

	merged, err = uf.Union(0, 1)
	require.NoError(t, err)
	require.False(t, merged)
	require.Equal(t, 2, uf.Components())

	merged, err = uf.Union(1, 0)
	require.NoError(t, err)
	require.False(t, merged)

	merged, err = uf.Union(2, 2)
	require.NoError(t, err)
	require.False(t, merged, "self union is a no-op")
	require.Equal(t, 2, uf.Components())
}

// TestUnion_RankTieBreak: on equal ranks the first argument's root survives.
func TestUnion_RankTieBreak(t *testing.T) {
	uf := dsu.New(4)
	_, _ = uf.Union(1, 0)
	p, err := uf.Parent(0)
	require.NoError(t, err)
	require.Equal(t, 1, p, "root of first argument survives on tie")

	// rank(1) == 1 > rank(2) == 0, so 2 goes under 1 regardless of order.
	_, _ = uf.Union(2, 1)
	p, err = uf.Parent(2)
	require.NoError(t, err)
	require.Equal(t, 1, p, "lower rank root attaches under higher rank root")
}

// TestFind_PathCompression builds 3 → 2 → 0 and checks one Find flattens it.
func TestFind_PathCompression(t *testing.T) {
	uf := dsu.New(4)
	_, _ = uf.Union(0, 1) // root 0, rank 1
	_, _ = uf.Union(2, 3) // root 2, rank 1
	_, _ = uf.Union(0, 2) // 2 under 0, rank(0) = 2

	p, _ := uf.Parent(3)
	require.Equal(t, 2, p, "3 still points to its old root before Find")

	r, err := uf.Find(3)
	require.NoError(t, err)
	require.Equal(t, 0, r)
	for _, x := range []int{1, 2, 3} {
		p, _ := uf.Parent(x)
		assert.Equal(t, 0, p, "node %d not re-parented to root", x)
	}
	require.True(t, uf.IsFullyConnected())
}

// TestManyUnions_FindAgrees joins 200k elements pairwise and checks sampled
// elements resolve to the same root.
func TestManyUnions_FindAgrees(t *testing.T) {
	const n = 200000
	uf := dsu.New(n)
	for i := 0; i+1 < n; i++ {
		merged, err := uf.Union(i+1, i)
		require.NoError(t, err)
		require.True(t, merged)
	}
	require.True(t, uf.IsFullyConnected())
	root, err := uf.Find(n - 1)
	require.NoError(t, err)
	for _, x := range []int{0, n / 2, n - 1} {
		r, _ := uf.Find(x)
		require.Equal(t, root, r)
	}
}

func TestInvalidIndices(t *testing.T) {
	uf := dsu.New(2)
	_, err := uf.Find(2)
	require.ErrorIs(t, err, core.ErrInvalidEdgeEndpoint)
	_, err = uf.Find(-1)
	require.ErrorIs(t, err, core.ErrInvalidEdgeEndpoint)
	_, err = uf.Union(0, 5)
	require.ErrorIs(t, err, core.ErrInvalidEdgeEndpoint)
	_, err = uf.Parent(7)
	require.ErrorIs(t, err, core.ErrInvalidEdgeEndpoint)
	require.Equal(t, 2, uf.Components(), "rejected union must not change the count")
}

func TestComponentsNeverNegative(t *testing.T) {
	uf := dsu.New(5)
	pairs := [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 0}, {1, 3}, {0, 4}}
	for _, p := range pairs {
		_, err := uf.Union(p[0], p[1])
		require.NoError(t, err)
		require.GreaterOrEqual(t, uf.Components(), 1)
		require.LessOrEqual(t, uf.Components(), 5)
	}
	require.True(t, uf.IsFullyConnected())
}
