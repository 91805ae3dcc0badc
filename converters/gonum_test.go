package converters_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/deltastep/builder"
	"github.com/katalvlaran/deltastep/converters"
	"github.com/katalvlaran/deltastep/csr"
	"github.com/katalvlaran/deltastep/deltastep"
)

// requireSameDistances compares float32 engine output with float64 gonum
// distances; unreachable vertices must be +Inf on both sides.
func requireSameDistances(t *testing.T, want []float64, got []float32) {
	t.Helper()
	require.Len(t, got, len(want))
	for v := range want {
		if math.IsInf(want[v], 1) {
			require.True(t, math.IsInf(float64(got[v]), 1), "vertex %d: want +Inf, got %v", v, got[v])
			continue
		}
		require.InDelta(t, want[v], float64(got[v]), 1e-3, "vertex %d", v)
	}
}

func TestToGonum_MatchesGonumDijkstra(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(11), builder.WithUniformWeight(0, 10)},
		builder.RandomSparse(200, 0.03),
		builder.Isolated(2),
	)
	require.NoError(t, err)

	gg := converters.ToGonum(g)
	require.Equal(t, g.NumNodes(), gg.Nodes().Len())

	sh := path.DijkstraFrom(simple.Node(0), gg)
	want := make([]float64, g.NumNodes())
	for v := range want {
		want[v] = sh.WeightTo(int64(v))
	}

	got, err := deltastep.ParallelDeltaStepping(g, 0, deltastep.SuggestDelta(g), 4)
	require.NoError(t, err)
	requireSameDistances(t, want, got)
}

func TestToGonum_DropsSelfLoopsKeepsLightestArc(t *testing.T) {
	a := csr.NewAdjacencyList(2)
	require.NoError(t, a.AddEdge(0, 0, 1))
	require.NoError(t, a.AddEdge(0, 1, 5))
	require.NoError(t, a.AddEdge(0, 1, 2))
	require.NoError(t, a.AddEdge(0, 1, 7))

	gg := converters.ToGonum(a.ToCSR())
	require.False(t, gg.HasEdgeFromTo(0, 0))
	w, ok := gg.Weight(0, 1)
	require.True(t, ok)
	require.Equal(t, 2.0, w)

	require.Zero(t, converters.ToGonum(nil).Nodes().Len())
}

func TestFromGonum_Undirected(t *testing.T) {
	ug := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for _, id := range []int64{30, 10, 20, 40} {
		ug.AddNode(simple.Node(id))
	}
	ug.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(10), T: simple.Node(20), W: 1.5})
	ug.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(20), T: simple.Node(30), W: 2})

	g, index, err := converters.FromGonum(ug)
	require.NoError(t, err)
	require.Equal(t, map[int64]int{10: 0, 20: 1, 30: 2, 40: 3}, index)
	require.Equal(t, 4, g.NumNodes())
	require.Equal(t, 4, g.NumEdges())
	require.Equal(t, []csr.Edge{{Target: 0, Weight: 1.5}, {Target: 2, Weight: 2}}, g.Neighbors(1))

	dist, err := deltastep.DeltaStepping(g, index[10], 1)
	require.NoError(t, err)
	require.Equal(t, []float32{0, 1.5, 3.5, float32(math.Inf(1))}, dist)
}

func TestFromGonum_RoundTrip(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(5), builder.WithUniformWeight(0.5, 4)},
		builder.RandomSparse(60, 0.08),
	)
	require.NoError(t, err)

	back, index, err := converters.FromGonum(converters.ToGonum(g))
	require.NoError(t, err)
	for id, v := range index {
		require.Equal(t, int(id), v)
	}

	want, err := deltastep.DeltaStepping(g, 0, 1)
	require.NoError(t, err)
	got, err := deltastep.DeltaStepping(back, 0, 1)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestFromGonum_Errors(t *testing.T) {
	_, _, err := converters.FromGonum(nil)
	require.ErrorIs(t, err, csr.ErrNilGraph)

	var nilDirected *simple.WeightedDirectedGraph
	_, _, err = converters.FromGonum(nilDirected)
	require.ErrorIs(t, err, csr.ErrNilGraph)

	var nilUndirected *simple.WeightedUndirectedGraph
	_, _, err = converters.FromGonum(nilUndirected)
	require.ErrorIs(t, err, csr.ErrNilGraph)

	dg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	dg.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(1), W: -1})
	_, _, err = converters.FromGonum(dg)
	require.ErrorIs(t, err, csr.ErrInvalidGraph)

	dg = simple.NewWeightedDirectedGraph(0, math.Inf(1))
	dg.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(1), W: 1e300})
	_, _, err = converters.FromGonum(dg)
	require.ErrorIs(t, err, csr.ErrInvalidGraph)
}
