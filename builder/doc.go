// Package builder provides deterministic graph-topology constructors for
// assembling test fixtures, benchmarks, and examples on top of core.Graph.
//
// What
//
//   - One orchestrator, BuildGraph(gopts, bopts, cons...), creates a graph,
//     resolves the builder configuration, and applies constructors in order.
//   - Fixed topologies: Cycle, Path, Star, Complete, CompleteBipartite,
//     Petersen (the classic 3-regular blossom stress graph).
//   - Stochastic topologies: RandomSparse (Erdős–Rényi-like), reproducible
//     for a fixed seed.
//
// Determinism
//
//	Vertex IDs come from a deterministic scheme (decimal "0","1",... by
//	default, overridable via WithIDScheme), vertices are added in ascending
//	index order, and edges are emitted in a stable documented order. With
//	WithSeed fixed, stochastic constructors are reproducible too.
//
// Usage
//
//	// A 5-cycle with default decimal IDs:
//	g, err := builder.BuildGraph(nil, nil, builder.Cycle(5))
//
//	// Two triangles on disjoint ID ranges (compose constructors and shift
//	// the second range with WithIDScheme), then bridge them by hand:
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithIDScheme(func(i int) string {
//	        return strconv.Itoa(i + 3)
//	    })},
//	    builder.Cycle(3), // vertices "3","4","5"
//	)
//
//	// A reproducible sparse graph:
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(42)},
//	    builder.RandomSparse(50, 0.1),
//	)
//
// Options
//
//   - WithIDScheme(fn):             vertex ID scheme (index -> ID).
//   - WithSeed(seed):               freeze stochastic constructors.
//   - WithRand(r):                  share an RNG stream across constructors.
//   - WithPartitionPrefix(l, r):    bipartite side prefixes (default "L"/"R").
//
// Errors
//
//   - ErrTooFewVertices        parameter below the constructor's minimum.
//   - ErrInvalidProbability    p outside [0,1].
//   - ErrNeedRandSource        stochastic constructor without an RNG.
//   - ErrUnsupportedGraphMode  constructor incompatible with graph flags.
//   - ErrConstructFailed       nil constructor or unassemblable topology.
package builder
