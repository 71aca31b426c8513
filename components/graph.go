package components

import (
	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/lvlink/core"
)

// Graph is an undirected graph keyed by point index in [0, n).
// Edges are never removed.
type Graph struct {
	adjacency []mapset.Set[int]
	edges     int
}

// New returns a graph of pointCount isolated points.
// A negative pointCount is treated as zero.
func New(pointCount int) *Graph {
	if pointCount < 0 {
		pointCount = 0
	}
	adj := make([]mapset.Set[int], pointCount)
	for i := range adj {
		adj[i] = mapset.NewThreadUnsafeSet[int]()
	}

	return &Graph{adjacency: adj}
}

// Len returns the number of points.
func (g *Graph) Len() int { return len(g.adjacency) }

// EdgeCount returns the number of distinct undirected edges inserted.
func (g *Graph) EdgeCount() int { return g.edges }

// AddEdge marks a and b mutually adjacent. Adding an existing edge again is a no-op.
// Self-edges and out-of-range endpoints return core.ErrInvalidEdgeEndpoint.
func (g *Graph) AddEdge(a, b int) error {
	if err := core.ValidateEndpoints(a, b, len(g.adjacency)); err != nil {
		return err
	}
	if g.adjacency[a].Add(b) {
		g.adjacency[b].Add(a)
		g.edges++
	}

	return nil
}

// HasEdge reports whether a and b are adjacent. Invalid endpoints report false.
func (g *Graph) HasEdge(a, b int) bool {
	if core.ValidateEndpoints(a, b, len(g.adjacency)) != nil {
		return false
	}

	return g.adjacency[a].Contains(b)
}

// ConnectedComponentSizes returns the size of every connected component.
// The order of the result is not part of the contract; the sizes always sum to Len().
func (g *Graph) ConnectedComponentSizes() []int {
	var sizes []int
	g.walk(func(members []int) {
		sizes = append(sizes, len(members))
	})

	return sizes
}

// Components returns the member indices of every connected component, each
// sorted ascending, components ordered by their smallest member.
func (g *Graph) Components() [][]int {
	var comps [][]int
	g.walk(func(members []int) {
		comp := slices.Clone(members)
		slices.Sort(comp)
		comps = append(comps, comp)
	})

	return comps
}

// walk runs an explicit-stack DFS from every unvisited point in index order and
// calls emit once per component. The members slice is reused between calls.
func (g *Graph) walk(emit func(members []int)) {
	seen := make([]bool, len(g.adjacency))
	stack := make([]int, 0, len(g.adjacency))
	members := make([]int, 0, len(g.adjacency))

	for start := range g.adjacency {
		if seen[start] {
			continue
		}
		seen[start] = true
		stack = append(stack[:0], start)
		members = members[:0]

		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			members = append(members, u)
			g.adjacency[u].Each(func(v int) bool {
				if !seen[v] {
					seen[v] = true
					stack = append(stack, v)
				}
				return false
			})
		}
		emit(members)
	}
}
