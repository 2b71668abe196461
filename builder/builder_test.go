package builder_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blossom/builder"
	"github.com/katalvlaran/blossom/core"
)

// TestCycle verifies vertex/edge counts and the closing ring edge.
func TestCycle(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(5))
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.True(t, g.HasEdge("4", "0"), "ring must close 4-0")
}

// TestCycle_TooSmall rejects n < 3.
func TestCycle_TooSmall(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

// TestPath builds P_n with n-1 edges and no ring closure.
func TestPath(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.False(t, g.HasEdge("3", "0"))
}

// TestStar checks the hub-and-leaves shape.
func TestStar(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(6))
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
	for i := 1; i < 6; i++ {
		assert.True(t, g.HasEdge("0", strconv.Itoa(i)))
	}
	assert.False(t, g.HasEdge("1", "2"))
}

// TestComplete builds K_n with n(n-1)/2 edges.
func TestComplete(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(6))
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 15, g.EdgeCount())
}

// TestCompleteBipartite uses partition prefixes and n1*n2 edges.
func TestCompleteBipartite(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithPartitionPrefix("u", "w")},
		builder.CompleteBipartite(3, 4))
	require.NoError(t, err)
	assert.Equal(t, 7, g.VertexCount())
	assert.Equal(t, 12, g.EdgeCount())
	assert.True(t, g.HasEdge("u0", "w3"))
	assert.False(t, g.HasEdge("u0", "u1"), "no edges inside a partition")
}

// TestPetersen checks the 3-regular 10/15 shape.
func TestPetersen(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Petersen())
	require.NoError(t, err)
	assert.Equal(t, 10, g.VertexCount())
	assert.Equal(t, 15, g.EdgeCount())
	for _, id := range g.Vertices() {
		_, _, und, degErr := g.Degree(id)
		require.NoError(t, degErr)
		assert.Equal(t, 3, und, "vertex %s must have degree 3", id)
	}
}

// TestRandomSparse_Deterministic: same seed, same graph.
func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(42)},
			builder.RandomSparse(30, 0.15))
		require.NoError(t, err)

		return g
	}
	g1, g2 := build(), build()
	assert.Equal(t, g1.EdgeCount(), g2.EdgeCount())
	for _, e := range g1.Edges() {
		assert.True(t, g2.HasEdge(e.From, e.To), "edge %s-%s missing in rebuild", e.From, e.To)
	}
}

// TestRandomSparse_Validation covers the sentinel taxonomy.
func TestRandomSparse_Validation(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.RandomSparse(10, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(1)},
		builder.RandomSparse(10, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(1)},
		builder.RandomSparse(0, 0.5))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithSeed(1)},
		builder.RandomSparse(10, 0.5))
	assert.ErrorIs(t, err, builder.ErrUnsupportedGraphMode)
}

// TestWithIDScheme shifts a topology onto a custom ID range.
func TestWithIDScheme(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(func(i int) string {
			return "v" + strconv.Itoa(i+10)
		})},
		builder.Cycle(3))
	require.NoError(t, err)
	assert.True(t, g.HasVertex("v10"))
	assert.True(t, g.HasEdge("v12", "v10"))
}

// TestBuildGraph_NilConstructor rejects nil constructors.
func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}
