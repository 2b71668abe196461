// Package matching provides maximum-cardinality matching for general
// (non-bipartite) undirected graphs via Edmonds' blossom algorithm.
//
// What
//
//   - Computes a maximum matching: the largest set of edges with no shared
//     endpoint. Works on arbitrary undirected graphs, including ones with
//     odd cycles, where bipartite-only matchers fail.
//   - Two front doors:
//   - MaxMatching(g, opts...) over a core.Graph, returning a MatchResult
//     (Mate map, sorted Pairs, Size)
//   - MaxMatchingAdj(adj, opts...) over dense 0..n-1 adjacency lists,
//     returning (match []int, size int, err) with -1 as the unmatched
//     sentinel — handy when the graph already lives in index form
//   - Optional warm starts: WithGreedyInit (greedy seeding) and
//     WithInitialMatching / WithInitialMatchingAdj (caller-supplied matching,
//     validated before the search).
//   - Observability hooks in the style of the traversal packages:
//     WithOnAugment fires per augmentation, WithOnBlossom per contraction.
//
// How (the algorithm)
//
//	For every still-unmatched root the search grows an alternating tree by
//	BFS: tree edges alternate between non-matching and matching edges level
//	by level. Three things can happen to an edge v–u leaving the tree:
//
//	  1. Tree extension — u is new: record v as u's parent; if u is free, an
//	     augmenting path root→…→v→u exists, and flipping every edge along it
//	     raises the matching size by one; otherwise u's partner joins the
//	     frontier.
//	  2. Blossom — u is the root, or u's partner is already an interior tree
//	     node: v–u closes an odd cycle. Both endpoints sit at even depth, a
//	     parity contradiction plain BFS cannot represent. The cycle is
//	     contracted onto its least common ancestor (its "base"): every
//	     vertex on the cycle is rebased to the LCA and becomes reachable at
//	     even level. This contraction is the defining technique of Edmonds'
//	     algorithm and the only extra machinery a general-graph matcher
//	     needs over a bipartite one.
//	  3. Skip — same blossom, the matched edge itself, or an interior vertex
//	     with no blossom condition.
//
//	Queue exhaustion without an augmenting path is a normal outcome (the
//	matching is already maximum at that root), not an error.
//
// Determinism
//
//	Vertices are indexed in sorted ID order and core.NeighborIDs returns
//	sorted neighbors, so the produced matching is identical run after run.
//	The matching SIZE is maximum regardless of discovery order (Edmonds'
//	theorem); the specific pairing depends on that order, which is fixed.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V·E) — one O(V+E) alternating-tree search per root, with up
//     to O(V) blossom contractions of O(V) bookkeeping each; the classic
//     bound for this formulation is also written O(V³).
//   - Memory: O(V + E) — the dense adjacency plus a per-root arena
//     (parent, base, visited, blossom marks, queue) that is reset, not
//     reallocated, between roots.
//
// Usage
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B", 0)
//	g.AddEdge("B", "C", 0)
//	g.AddEdge("C", "A", 0) // triangle: odd cycle
//
//	res, err := matching.MaxMatching(g)
//	if err != nil {
//	    // ErrGraphNil, ErrDirectedGraph, ErrWeightedGraph,
//	    // ErrOptionViolation, ErrBadInitialMatching, or ctx error
//	}
//	fmt.Println(res.Size)      // 1 — a triangle cannot match all three
//	fmt.Println(res.Pairs)     // [[A B]]
//
//	// Dense form, the same triangle:
//	match, size, _ := matching.MaxMatchingAdj([][]int{{1, 2}, {0, 2}, {0, 1}})
//	// size == 1, match[2] == matching.Unmatched
//
// Options
//
//   - WithContext(ctx):             cancellation, checked once per dequeue.
//   - WithGreedyInit():             greedy pre-matching; same final size.
//   - WithInitialMatching(m):       warm start from an ID→ID matching.
//   - WithInitialMatchingAdj(m):    warm start from a dense partner slice.
//   - WithOnAugment(fn):            hook after each augmentation.
//   - WithOnBlossom(fn):            hook after each blossom contraction.
//
// Errors
//
//   - ErrGraphNil              if the graph pointer is nil.
//   - ErrDirectedGraph         if the graph defaults to directed edges.
//   - ErrWeightedGraph         if the graph permits weights.
//   - ErrOptionViolation       for an invalid or misapplied option.
//   - ErrVertexRange           (dense) neighbor index outside [0,n).
//   - ErrSelfLoop              (dense) a vertex lists itself.
//   - ErrBadInitialMatching    asymmetric / out-of-range / non-edge warm start.
//   - context.Canceled / DeadlineExceeded from the supplied context.
//
// The caller must present undirected edges in both adjacency directions for
// the dense API; core.Graph does this mirroring automatically.
package matching
