// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// random.go — stochastic constructors.
//
// Determinism:
//   • Stable vertex order: i asc.
//   • Stable edge-trial order: for each i asc, j in (i, n).
//   • Deterministic outcomes for a fixed seed due to the fixed trial order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/blossom/core"
)

// File-local constants (stable method tag and domains).
const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like simple
// graph over n vertices, including each unordered pair {i,j} independently
// with probability p. Requires an RNG (WithSeed or WithRand), even for
// p ∈ {0,1}, and an undirected graph.
// Complexity: O(n) vertices + O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%g not in [%g,%g]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if g.Directed() {
			return fmt.Errorf("%s: directed mode: %w", methodRandomSparse, ErrUnsupportedGraphMode)
		}

		if err := addIndexedVertices(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, methodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
