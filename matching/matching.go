// File: matching.go
// Role: the core.Graph front door: validation, vertex indexing, dense-engine
//       invocation, and result mapping back to vertex IDs.

package matching

import (
	"fmt"

	"github.com/katalvlaran/blossom/core"
)

// MaxMatching computes a maximum-cardinality matching of the undirected,
// unweighted graph g, applying any number of functional Options.
//
// Vertices are indexed in sorted ID order and neighbors are visited in
// sorted order, so the result is fully reproducible. Self-loop edges are
// dropped while building the internal adjacency — a loop can never be a
// matching edge. Parallel edges collapse to one (core.NeighborIDs is
// already duplicate-free).
//
// Returns ErrGraphNil, ErrDirectedGraph or ErrWeightedGraph for invalid
// input, ErrOptionViolation for bad options, ErrBadInitialMatching for an
// invalid warm start, or the context's error on cancellation.
func MaxMatching(g *core.Graph, opts ...Option) (*MatchResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// A matching is a set of undirected edges; cardinality ignores weights.
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	// Index vertices in sorted order for deterministic output.
	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	adj, err := denseAdjacency(g, ids, index)
	if err != nil {
		return nil, err
	}

	f := newFinder(adj, o.Ctx)
	if o.OnAugment != nil {
		fn := o.OnAugment
		f.onAugment = func(root, flipped int) { fn(ids[root], flipped) }
	}
	if o.OnBlossom != nil {
		fn := o.OnBlossom
		f.onBlossom = func(base, folded int) { fn(ids[base], folded) }
	}

	if err = seedInitial(f, &o, ids, index); err != nil {
		return nil, err
	}
	if o.Greedy {
		f.seedGreedy()
	}

	runErr := f.run()
	res := buildResult(f.match, ids)
	if runErr != nil {
		// Cancellation: surface the (valid, possibly non-maximum) partial result.
		return res, runErr
	}

	return res, nil
}

// denseAdjacency flattens g into index-based adjacency lists, skipping
// self-loops. Neighbor order follows core's sorted NeighborIDs contract.
func denseAdjacency(g *core.Graph, ids []string, index map[string]int) ([][]int, error) {
	adj := make([][]int, len(ids))
	for i, id := range ids {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("matching: neighbors of %q: %w", id, err)
		}
		row := make([]int, 0, len(nbrs))
		for _, nb := range nbrs {
			if nb == id {
				continue
			}
			row = append(row, index[nb])
		}
		adj[i] = row
	}

	return adj, nil
}

// seedInitial validates and applies a caller-supplied starting matching,
// from either the ID map (Initial) or the dense slice (InitialAdj).
func seedInitial(f *finder, o *MatchOptions, ids []string, index map[string]int) error {
	if o.Initial != nil {
		for id, mate := range o.Initial {
			v, okV := index[id]
			u, okU := index[mate]
			if !okV || !okU {
				return fmt.Errorf("%w: unknown vertex in pair %q-%q", ErrBadInitialMatching, id, mate)
			}
			f.match[v] = u
		}
	}
	if o.InitialAdj != nil {
		if err := validateInitialAdj(f.adj, o.InitialAdj); err != nil {
			return err
		}
		copy(f.match, o.InitialAdj)
	}
	// One symmetry/validity pass covers both sources.
	return validateInitialAdj(f.adj, f.match)
}

// buildResult maps the dense partner slice back to vertex IDs.
func buildResult(match []int, ids []string) *MatchResult {
	res := &MatchResult{Mate: make(map[string]string, len(ids))}
	for v, m := range match {
		if m == Unmatched {
			continue
		}
		res.Mate[ids[v]] = ids[m]
		if v < m {
			res.Pairs = append(res.Pairs, [2]string{ids[v], ids[m]})
		}
	}
	res.Size = len(res.Pairs)

	return res
}
