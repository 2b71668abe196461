// Package blossom is an in-memory toolkit for maximum-cardinality matching
// in general (not necessarily bipartite) undirected graphs, built around
// Edmonds' blossom algorithm.
//
// 🚀 What is blossom?
//
//	A small, focused library organized in three subpackages:
//		• core/     — fundamental Graph, Vertex, Edge types & thread-safe primitives
//		• matching/ — Edmonds' blossom maximum matching (alternating trees,
//		              blossom contraction, augmenting paths)
//		• builder/  — deterministic topology constructors (cycles, complete
//		              graphs, bipartite graphs, Petersen, random sparse) for
//		              tests, benchmarks and examples
//
// ✨ Why blossom?
//
//   - General graphs — odd cycles are handled by blossom contraction, the
//     defining trick of Edmonds' algorithm; bipartite-only matchers break here
//   - Minimal API — one call, matching.MaxMatching(g), gives you the mates,
//     the matched pairs and the matching size
//   - Deterministic — sorted vertex enumeration and stable edge order make
//     results reproducible run after run
//   - Pure Go — no cgo, no hidden deps
//
// Quick ASCII example — the 5-cycle, smallest graph with an odd cycle:
//
//	    A───B
//	   ╱     ╲
//	  E       C
//	   ╲     ╱
//	    `D──′
//
//	A maximum matching pairs two edges (e.g. A–B and C–D) and leaves one
//	vertex unmatched; no matching of size 3 exists.
//
// Dive into matching/doc.go for the algorithm walk-through, complexity notes
// and the full option set.
//
//	go get github.com/katalvlaran/blossom
package blossom
