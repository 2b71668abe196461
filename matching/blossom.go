// File: blossom.go
// Role: the dense index-based Edmonds engine: alternating-tree BFS, LCA walk,
//       blossom marking/contraction, and augmenting-path application.
// Determinism:
//   - Roots are tried in ascending index order; neighbors in adjacency order.
// Invariant:
//   - base[x] is always fully resolved — contraction rewrites every affected
//     vertex directly to the new base, never leaving chains to follow.

package matching

import (
	"context"
	"fmt"
	"strconv"
)

// none marks "no parent" in the alternating forest.
const none = -1

// finder owns the per-run matching state and a small arena of per-invocation
// buffers. The buffers are reset (not reallocated) at the start of every root
// search: parent/base/used values from a previous root are meaningless for
// the next one, so stale reuse would be a correctness bug, not a slowdown.
type finder struct {
	adj   [][]int
	match []int // match[v] = partner or Unmatched; symmetric at all times
	ctx   context.Context

	// per-root-invocation arena
	parent    []int  // alternating-forest parent, none outside the tree
	base      []int  // blossom representative containing each vertex
	used      []bool // enqueued marker
	inBlossom []bool // contraction scratch: bases on the cycle being folded
	onPath    []bool // LCA scratch: bases on the rootward walk from one side
	queue     []int  // BFS frontier

	onAugment func(root, flipped int)
	onBlossom func(base, folded int)
}

func newFinder(adj [][]int, ctx context.Context) *finder {
	n := len(adj)
	f := &finder{
		adj:       adj,
		match:     make([]int, n),
		ctx:       ctx,
		parent:    make([]int, n),
		base:      make([]int, n),
		used:      make([]bool, n),
		inBlossom: make([]bool, n),
		onPath:    make([]bool, n),
		queue:     make([]int, 0, n),
	}
	for v := range f.match {
		f.match[v] = Unmatched
	}

	return f
}

// run is the driver: every vertex is tried once as a root, in index order,
// and skipped when a previous augmentation already matched it. Edmonds'
// theorem guarantees the final matching is maximum regardless of the order
// in which augmenting paths are discovered.
func (f *finder) run() error {
	for v := range f.adj {
		if f.match[v] != Unmatched {
			continue
		}
		if _, err := f.findAugmentingPath(v); err != nil {
			return err
		}
	}

	return nil
}

// size counts matched edges: non-sentinel entries over two.
func (f *finder) size() int {
	matched := 0
	for _, m := range f.match {
		if m != Unmatched {
			matched++
		}
	}

	return matched / 2
}

// findAugmentingPath grows an alternating tree from root via BFS, contracting
// blossoms as they appear. On success the matching is flipped along the
// discovered path and true is returned; on queue exhaustion the matching is
// untouched and false is returned — a normal outcome once the matching is
// already maximum at this root.
func (f *finder) findAugmentingPath(root int) (bool, error) {
	f.reset(root)

	for qi := 0; qi < len(f.queue); qi++ {
		// cancellation check (once per dequeue)
		select {
		case <-f.ctx.Done():
			return false, f.ctx.Err()
		default:
		}

		v := f.queue[qi]
		for _, u := range f.adj[v] {
			// Skip edges inside one blossom and the matched edge itself.
			if f.base[v] == f.base[u] || f.match[v] == u {
				continue
			}

			if u == root || (f.match[u] != Unmatched && f.parent[f.match[u]] != none) {
				// v–u closes an odd cycle: both endpoints sit at even depth
				// in the tree, the parity contradiction bipartite BFS cannot
				// survive. Contract the cycle onto its least common ancestor
				// and keep searching in the contracted graph.
				f.contractBlossom(v, u)
				continue
			}

			if f.parent[u] != none {
				// Interior (odd) tree vertex with no blossom condition.
				continue
			}

			// Tree extension: v discovers u.
			f.parent[u] = v
			if f.match[u] == Unmatched {
				// root → … → v → u alternates and ends free on both sides.
				flipped := f.augment(u)
				if f.onAugment != nil {
					f.onAugment(root, flipped)
				}

				return true, nil
			}
			// u is matched: its partner becomes the next even-level vertex.
			w := f.match[u]
			f.used[w] = true
			f.queue = append(f.queue, w)
		}
	}

	return false, nil
}

// reset reinitializes the per-invocation arena for a new root.
func (f *finder) reset(root int) {
	for i := range f.adj {
		f.parent[i] = none
		f.base[i] = i
		f.used[i] = false
	}
	f.queue = f.queue[:0]
	f.used[root] = true
	f.queue = append(f.queue, root)
}

// lowestCommonAncestor walks both endpoints' bases rootward — each hop goes
// through the matched partner's forest parent — until the walks meet at a
// common base. Reaching an unmatched vertex (the root) terminates that side's
// walk; the root is an ancestor of everything in its own tree.
func (f *finder) lowestCommonAncestor(a, b int) int {
	for i := range f.onPath {
		f.onPath[i] = false
	}
	for {
		a = f.base[a]
		f.onPath[a] = true
		if f.match[a] == Unmatched {
			break
		}
		a = f.parent[f.match[a]]
	}
	for {
		b = f.base[b]
		if f.onPath[b] {
			return b
		}
		b = f.parent[f.match[b]]
	}
}

// markPath flags every base on the walk from v up to the blossom base stop,
// reassigning parents along the way so the odd side of the cycle becomes
// traversable when a later augmenting path runs through the blossom.
func (f *finder) markPath(v, stop, child int) {
	for f.base[v] != stop {
		f.inBlossom[f.base[v]] = true
		f.inBlossom[f.base[f.match[v]]] = true
		f.parent[v] = child
		child = f.match[v]
		v = f.parent[child]
	}
}

// contractBlossom folds the odd cycle closed by edge v–u onto its least
// common ancestor: every vertex whose base lies on the cycle is rebased to
// the LCA, and any such vertex not yet visited is enqueued — it is now
// reachable as an even-level node of the contracted tree.
func (f *finder) contractBlossom(v, u int) {
	cur := f.lowestCommonAncestor(v, u)
	for i := range f.inBlossom {
		f.inBlossom[i] = false
	}
	f.markPath(v, cur, u)
	f.markPath(u, cur, v)

	folded := 0
	for i := range f.adj {
		if !f.inBlossom[f.base[i]] {
			continue
		}
		f.base[i] = cur
		folded++
		if !f.used[i] {
			f.used[i] = true
			f.queue = append(f.queue, i)
		}
	}
	if f.onBlossom != nil {
		f.onBlossom(cur, folded)
	}
}

// augment flips the matching along the alternating path ending at the free
// vertex u, walking backward through forest-parent links to the root.
// The walk is destructive and order-sensitive: the old partner of each parent
// is read into a local before the pair is overwritten, because overwriting in
// place would change what "the next hop" refers to.
func (f *finder) augment(u int) int {
	flipped := 0
	for cur := u; cur != none; {
		prev := f.parent[cur]
		if prev == none {
			break
		}
		next := f.match[prev]
		f.match[cur] = prev
		f.match[prev] = cur
		flipped++
		cur = next
	}

	return flipped
}

// seedGreedy pre-matches each free vertex with its first free neighbor.
// Augmentation afterwards still reaches a maximum matching; the seeding only
// reduces how many augmenting searches do real work.
func (f *finder) seedGreedy() {
	for v := range f.adj {
		if f.match[v] != Unmatched {
			continue
		}
		for _, u := range f.adj[v] {
			if u != v && f.match[u] == Unmatched {
				f.match[v], f.match[u] = u, v
				break
			}
		}
	}
}

// validateAdj rejects malformed dense input: out-of-range neighbor indices
// and self-loops. Asymmetric adjacency is the caller's contract to uphold
// (undirected edges must be listed in both directions) and is not detectable
// in O(E) without extra storage, so it is documented rather than checked.
func validateAdj(adj [][]int) error {
	n := len(adj)
	for v, nbrs := range adj {
		for _, u := range nbrs {
			if u < 0 || u >= n {
				return fmt.Errorf("%w: adj[%d] references %d (n=%d)", ErrVertexRange, v, u, n)
			}
			if u == v {
				return fmt.Errorf("%w: adj[%d] lists itself", ErrSelfLoop, v)
			}
		}
	}

	return nil
}

// validateInitialAdj checks a caller-supplied dense matching: correct length,
// in-range symmetric partners, and every pair an actual edge.
func validateInitialAdj(adj [][]int, match []int) error {
	n := len(adj)
	if len(match) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrBadInitialMatching, len(match), n)
	}
	for v, m := range match {
		if m == Unmatched {
			continue
		}
		if m < 0 || m >= n || m == v {
			return fmt.Errorf("%w: match[%d]=%d", ErrBadInitialMatching, v, m)
		}
		if match[m] != v {
			return fmt.Errorf("%w: match[%d]=%d but match[%d]=%d", ErrBadInitialMatching, v, m, m, match[m])
		}
		if !hasNeighbor(adj, v, m) {
			return fmt.Errorf("%w: %d-%d is not an edge", ErrBadInitialMatching, v, m)
		}
	}

	return nil
}

func hasNeighbor(adj [][]int, v, u int) bool {
	for _, w := range adj[v] {
		if w == u {
			return true
		}
	}

	return false
}

// MaxMatchingAdj computes a maximum-cardinality matching over a dense
// adjacency structure: adj[v] lists the neighbors of vertex v, indices in
// [0,n), undirected edges present in both directions.
//
// Returns the partner slice (Unmatched for free vertices), the number of
// matched edges, and an error for malformed input, invalid options, or
// context cancellation. On cancellation the partner slice built so far is
// returned alongside ctx.Err(); it is symmetric and valid but possibly not
// maximum.
//
// Hook labels are decimal vertex indices ("0", "1", ...).
func MaxMatchingAdj(adj [][]int, opts ...Option) ([]int, int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, 0, o.err
	}
	if o.Initial != nil {
		return nil, 0, fmt.Errorf("%w: use WithInitialMatchingAdj with the dense API", ErrOptionViolation)
	}
	if err := validateAdj(adj); err != nil {
		return nil, 0, err
	}

	f := newFinder(adj, o.Ctx)
	if o.OnAugment != nil {
		fn := o.OnAugment
		f.onAugment = func(root, flipped int) { fn(strconv.Itoa(root), flipped) }
	}
	if o.OnBlossom != nil {
		fn := o.OnBlossom
		f.onBlossom = func(base, folded int) { fn(strconv.Itoa(base), folded) }
	}

	if o.InitialAdj != nil {
		if err := validateInitialAdj(adj, o.InitialAdj); err != nil {
			return nil, 0, err
		}
		copy(f.match, o.InitialAdj)
	}
	if o.Greedy {
		f.seedGreedy()
	}

	if err := f.run(); err != nil {
		return f.match, f.size(), err
	}

	return f.match, f.size(), nil
}
