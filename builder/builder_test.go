// Package builder_test contains functional tests for all Constructor
// implementations in the builder package, verifying topology, counts,
// composition, determinism and error wrapping.
package builder_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deltastep/builder"
	"github.com/katalvlaran/deltastep/csr"
)

// hasArc reports whether g contains u→v and returns its weight.
func hasArc(g *csr.Graph, u, v int) (float32, bool) {
	for _, e := range g.Neighbors(u) {
		if e.Target == v {
			return e.Weight, true
		}
	}
	return 0, false
}

// TestBuilders_Functional runs table-driven functional tests for each builder
// in the default (directed, constant-weight) mode.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *csr.Graph)
	}{
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *csr.Graph) {
				for i := 0; i < 3; i++ {
					w, ok := hasArc(g, i, i+1)
					require.True(t, ok, "missing %d→%d", i, i+1)
					require.Equal(t, float32(builder.DefaultEdgeWeight), w)
				}
			},
		},
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *csr.Graph) {
				_, ok := hasArc(g, 4, 0)
				require.True(t, ok, "cycle must close 4→0")
			},
		},
		{
			name:  "Star(4)",
			ctor:  builder.Star(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *csr.Graph) {
				require.Equal(t, 3, g.OutDegree(0))
				require.Equal(t, 0, g.OutDegree(3))
			},
		},
		{
			// 2×3 grid: rows*(cols-1) + (rows-1)*cols = 4+3 = 7 edges, mirrored.
			name:  "Grid(2,3)",
			ctor:  builder.Grid(2, 3),
			wantV: 6, wantE: 14,
			sampleCheck: func(t *testing.T, g *csr.Graph) {
				_, right := hasArc(g, 0, 1)
				_, down := hasArc(g, 0, 3)
				_, back := hasArc(g, 3, 0)
				require.True(t, right && down && back)
			},
		},
		{
			name:  "Complete(4)",
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 12,
		},
		{
			name:  "Isolated(3)",
			ctor:  builder.Isolated(3),
			wantV: 3, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			require.NoError(t, g.Validate())
			require.Equal(t, tc.wantV, g.NumNodes())
			require.Equal(t, tc.wantE, g.NumEdges())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuilders_Undirected(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithUndirected()}, builder.Path(3))
	require.NoError(t, err)
	require.Equal(t, 4, g.NumEdges())
	_, ok := hasArc(g, 2, 1)
	require.True(t, ok)

	g, err = builder.BuildGraph([]builder.BuilderOption{builder.WithUndirected()}, builder.Complete(4))
	require.NoError(t, err)
	require.Equal(t, 12, g.NumEdges())

	// Undirected grid does not double-mirror.
	g, err = builder.BuildGraph([]builder.BuilderOption{builder.WithUndirected()}, builder.Grid(2, 3))
	require.NoError(t, err)
	require.Equal(t, 14, g.NumEdges())
}

func TestBuildGraph_ComposesBlocks(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Isolated(2), builder.Star(3))
	require.NoError(t, err)
	require.Equal(t, 8, g.NumNodes())
	// Star center is the first vertex of its block: 5.
	_, ok := hasArc(g, 5, 7)
	require.True(t, ok)
	require.Equal(t, 0, g.OutDegree(3))
	require.Equal(t, 0, g.OutDegree(4))
}

func TestBuildGraph_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Path(1)", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), nil, builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"Isolated(0)", builder.Isolated(0), nil, builder.ErrTooFewVertices},
		{"RandomSparse(0,..)", builder.RandomSparse(0, 0.5), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"RandomSparse p<0", builder.RandomSparse(5, -0.1), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"RandomSparse p>1", builder.RandomSparse(5, 1.1), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"RandomSparse no rng", builder.RandomSparse(5, 0.5), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.opts, tc.ctor)
			require.Nil(t, g)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestBuildGraph_RejectsBadWeights(t *testing.T) {
	t.Parallel()

	neg := builder.WithWeightFn(func(*rand.Rand) float64 { return -1 })
	_, err := builder.BuildGraph([]builder.BuilderOption{neg}, builder.Path(2))
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	require.ErrorIs(t, err, csr.ErrInvalidGraph)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(0, 10)}
	g1, err := builder.BuildGraph(opts, builder.RandomSparse(40, 0.1))
	require.NoError(t, err)

	opts = []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(0, 10)}
	g2, err := builder.BuildGraph(opts, builder.RandomSparse(40, 0.1))
	require.NoError(t, err)

	require.Equal(t, g1.Offsets(), g2.Offsets())
	require.Equal(t, g1.Edges(), g2.Edges())
}

func TestRandomSparse_ProbabilityBounds(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(10, 0))
	require.NoError(t, err)
	require.Equal(t, 0, g.NumEdges())

	g, err = builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(10, 1))
	require.NoError(t, err)
	require.Equal(t, 90, g.NumEdges())
	for v := 0; v < g.NumNodes(); v++ {
		_, self := hasArc(g, v, v)
		require.False(t, self)
	}
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })
	require.Panics(t, func() { builder.WithConstantWeight(-1) })
	require.Panics(t, func() { builder.WithUniformWeight(5, 4) })
	require.Panics(t, func() { builder.WithExponentialWeight(0) })
}
