package matching_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/blossom/builder"
	"github.com/katalvlaran/blossom/core"
	"github.com/katalvlaran/blossom/matching"
)

// BenchmarkMaxMatching_Cycle measures the graph API on a long odd cycle —
// blossom-free until the very last root.
func BenchmarkMaxMatching_Cycle(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(1001))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matching.MaxMatching(g)
	}
}

// BenchmarkMaxMatching_Complete measures a dense worst case.
func BenchmarkMaxMatching_Complete(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(120))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matching.MaxMatching(g)
	}
}

// BenchmarkMaxMatching_RandomSparse measures a realistic sparse instance.
func BenchmarkMaxMatching_RandomSparse(b *testing.B) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(42)},
		builder.RandomSparse(500, 0.01))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matching.MaxMatching(g)
	}
}

// BenchmarkMaxMatchingAdj_GreedyVsPlain compares warm-started and cold runs
// on the dense API, where no graph flattening cost is involved.
func BenchmarkMaxMatchingAdj_GreedyVsPlain(b *testing.B) {
	const n = 400
	rng := rand.New(rand.NewSource(7))
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < 0.02 {
				adj[i] = append(adj[i], j)
				adj[j] = append(adj[j], i)
			}
		}
	}

	b.Run("Plain", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _, _ = matching.MaxMatchingAdj(adj)
		}
	})
	b.Run("Greedy", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _, _ = matching.MaxMatchingAdj(adj, matching.WithGreedyInit())
		}
	})
}

// BenchmarkDenseAdjacencyFlatten isolates the core.Graph → dense conversion
// cost relative to the search itself.
func BenchmarkDenseAdjacencyFlatten(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 2000; i++ {
		_, _ = g.AddEdge(
			"v"+strconv.Itoa(i%500),
			"v"+strconv.Itoa((i*37+11)%500), 0)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matching.MaxMatching(g)
	}
}
