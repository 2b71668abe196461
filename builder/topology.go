// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// topology.go — deterministic fixed-topology constructors.
//
// Contract (all constructors):
//   • Vertices added via cfg.idFn in ascending index order.
//   • Edges emitted in a stable, documented order.
//   • Honor core mode flags without silent degrade.
//   • Return only sentinel errors; never panic at runtime.

package builder

import (
	"fmt"

	"github.com/katalvlaran/blossom/core"
)

// File-local constants (stable method tags, minimum sizes).
const (
	methodCycle     = "Cycle"
	methodPath      = "Path"
	methodStar      = "Star"
	methodComplete  = "Complete"
	methodBipartite = "CompleteBipartite"
	methodPetersen  = "Petersen"

	minCycleNodes    = 3
	minPathNodes     = 2
	minStarNodes     = 2
	minCompleteNodes = 1
	minPartitionSize = 1

	petersenRing = 5 // outer/inner ring size of the Petersen graph
)

// addIndexedVertices inserts vertices 0..n-1 via cfg.idFn.
func addIndexedVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge wraps core.AddEdge with method context; weight is always zero —
// the matching library is cardinality-only.
func addEdge(g *core.Graph, method, u, v string) error {
	if _, err := g.AddEdge(u, v, 0); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w", method, u, v, err)
	}

	return nil
}

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
// Edge order: i → (i+1)%n for i = 0..n-1.
// Complexity: O(n) vertices + O(n) edges.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addIndexedVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path returns a Constructor that builds a simple path P_n.
// Edge order: i → i+1 for i = 0..n-2.
// Complexity: O(n) vertices + O(n-1) edges.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addIndexedVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, methodPath, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor that builds a star: vertex 0 is the center,
// vertices 1..n-1 are leaves.
// Complexity: O(n) vertices + O(n-1) edges.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addIndexedVertices(g, cfg, methodStar, n); err != nil {
			return err
		}
		center := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodStar, center, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds the complete simple graph K_n.
// Edge order: for each i asc, j in (i, n).
// Complexity: O(n) vertices + O(n²) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addIndexedVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor that builds K_{n1,n2} using
// cfg.leftPrefix/cfg.rightPrefix vertex IDs ("L0".."L<n1-1>", "R0"..).
// Complexity: O(n1+n2) vertices + O(n1·n2) edges.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d n2=%d min=%d: %w",
				methodBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left := make([]string, n1)
		for i := 0; i < n1; i++ {
			left[i] = fmt.Sprintf("%s%d", cfg.leftPrefix, i)
			if err := g.AddVertex(left[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodBipartite, left[i], err)
			}
		}
		right := make([]string, n2)
		for j := 0; j < n2; j++ {
			right[j] = fmt.Sprintf("%s%d", cfg.rightPrefix, j)
			if err := g.AddVertex(right[j]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodBipartite, right[j], err)
			}
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := addEdge(g, methodBipartite, left[i], right[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Petersen returns a Constructor that builds the Petersen graph: an outer
// 5-cycle (indices 0..4), an inner pentagram (5..9, chords i→i+2 mod 5),
// and five spokes. A classic 3-regular blossom stress graph with a perfect
// matching of size 5.
// Complexity: O(1) — fixed 10 vertices, 15 edges.
func Petersen() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := addIndexedVertices(g, cfg, methodPetersen, 2*petersenRing); err != nil {
			return err
		}
		for i := 0; i < petersenRing; i++ {
			// outer ring
			if err := addEdge(g, methodPetersen, cfg.idFn(i), cfg.idFn((i+1)%petersenRing)); err != nil {
				return err
			}
			// inner pentagram
			inner := petersenRing + i
			innerNext := petersenRing + (i+2)%petersenRing
			if err := addEdge(g, methodPetersen, cfg.idFn(inner), cfg.idFn(innerNext)); err != nil {
				return err
			}
			// spoke
			if err := addEdge(g, methodPetersen, cfg.idFn(i), cfg.idFn(petersenRing+i)); err != nil {
				return err
			}
		}

		return nil
	}
}
