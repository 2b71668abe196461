// Package matching provides tunable options and error definitions
// for Edmonds' blossom maximum matching over a core.Graph.
package matching

import (
	"context"
	"errors"
	"fmt"
)

// Unmatched is the sentinel partner index for an unmatched vertex in the
// dense adjacency API. It is distinct from every valid vertex index.
const Unmatched = -1

// Sentinel errors for matching execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("matching: graph is nil")

	// ErrDirectedGraph is returned when matching is run on a directed graph.
	// A matching is a set of undirected edges; callers must supply an
	// undirected core.Graph.
	ErrDirectedGraph = errors.New("matching: directed graphs not supported")

	// ErrWeightedGraph is returned when matching is run on a weighted graph.
	// Only maximum-cardinality matching is implemented; weights carry no
	// meaning here and are rejected rather than silently ignored.
	ErrWeightedGraph = errors.New("matching: weighted graphs not supported")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("matching: invalid option supplied")

	// ErrVertexRange is returned by the dense API when an adjacency list
	// references an index outside [0,n).
	ErrVertexRange = errors.New("matching: neighbor index out of range")

	// ErrSelfLoop is returned by the dense API when a vertex lists itself
	// as a neighbor; a loop can never be a matching edge.
	ErrSelfLoop = errors.New("matching: self-loop not allowed")

	// ErrBadInitialMatching is returned when a caller-supplied starting
	// matching is asymmetric, out of range, or uses a non-edge pair.
	ErrBadInitialMatching = errors.New("matching: invalid initial matching")
)

// Option configures matching behavior via functional arguments.
// If an Option is invalid, it is recorded internally and surfaced as
// ErrOptionViolation when MaxMatching / MaxMatchingAdj is invoked.
type Option func(*MatchOptions)

// MatchOptions holds parameters and callbacks to customize the search.
type MatchOptions struct {
	// Ctx allows cancellation and deadlines; checked once per dequeued
	// tree vertex. On cancellation the call returns ctx.Err() and the
	// matching built so far (valid and symmetric, possibly not maximum).
	Ctx context.Context

	// Greedy seeds the matching greedily before the augmenting phase.
	// The final size never changes — every free vertex is still tried as
	// a root — but large graphs typically need far fewer augmentations.
	Greedy bool

	// Initial is a caller-supplied starting matching for the graph API,
	// mapping vertex ID to partner ID. Must be symmetric and use only
	// existing edges; validated before the search runs.
	Initial map[string]string

	// InitialAdj is the dense-API counterpart of Initial: a partner slice
	// of length n with Unmatched for free vertices.
	InitialAdj []int

	// OnAugment is called after each successful augmentation with the
	// root vertex of the alternating tree and the number of edges whose
	// matching state was flipped.
	OnAugment func(root string, flipped int)

	// OnBlossom is called after each blossom contraction with the base
	// vertex of the contracted cycle and the number of vertices folded
	// onto that base.
	OnBlossom func(base string, folded int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a MatchOptions with sane defaults:
//   - Context.Background()
//   - no greedy seeding, no initial matching
//   - no hooks.
func DefaultOptions() MatchOptions {
	return MatchOptions{
		Ctx: context.Background(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *MatchOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithGreedyInit seeds the matching greedily (first free neighbor wins)
// before the augmenting phase starts.
func WithGreedyInit() Option {
	return func(o *MatchOptions) {
		o.Greedy = true
	}
}

// WithInitialMatching starts the search from a caller-supplied matching
// instead of the empty one. The map must contain both directions of every
// pair (symmetric); a nil map is an explicit "start empty".
// Re-running MaxMatching seeded with its own previous output is the standard
// way to verify that a matching is maximum: zero further augmentations occur.
func WithInitialMatching(mate map[string]string) Option {
	return func(o *MatchOptions) {
		o.Initial = mate
	}
}

// WithInitialMatchingAdj is the dense-API variant of WithInitialMatching:
// a partner slice of length n, Unmatched (-1) for free vertices.
func WithInitialMatchingAdj(match []int) Option {
	return func(o *MatchOptions) {
		o.InitialAdj = match
	}
}

// WithOnAugment registers a callback fired after each augmentation.
// For the dense API the root label is the decimal vertex index.
func WithOnAugment(fn func(root string, flipped int)) Option {
	return func(o *MatchOptions) {
		if fn != nil {
			o.OnAugment = fn
		}
	}
}

// WithOnBlossom registers a callback fired after each blossom contraction.
// For the dense API the base label is the decimal vertex index.
func WithOnBlossom(fn func(base string, folded int)) Option {
	return func(o *MatchOptions) {
		if fn != nil {
			o.OnBlossom = fn
		}
	}
}

// MatchResult holds the outcome of a maximum matching computation:
//   - Mate: symmetric map from vertex ID to its partner's ID; unmatched
//     vertices are absent from the map.
//   - Pairs: matched edges as [2]string{lower, higher} (lexicographic),
//     sorted ascending — a deterministic, duplicate-free edge list.
//   - Size: number of matched edges (== len(Pairs)).
type MatchResult struct {
	Mate  map[string]string
	Pairs [][2]string
	Size  int
}

// MateOf returns the partner of id and whether id is matched.
func (r *MatchResult) MateOf(id string) (string, bool) {
	m, ok := r.Mate[id]

	return m, ok
}

// Unmatched returns the IDs of the graph's vertices left without a partner,
// sorted lexicographically ascending. The vertex universe is the ids slice
// the result was built from, so callers pass g.Vertices().
func (r *MatchResult) Unmatched(ids []string) []string {
	hint := len(ids) - 2*r.Size
	if hint < 0 {
		hint = 0
	}
	free := make([]string, 0, hint)
	for _, id := range ids {
		if _, ok := r.Mate[id]; !ok {
			free = append(free, id)
		}
	}

	return free
}

// String renders the matching as "size=K pairs=[a-b c-d ...]" for logs.
func (r *MatchResult) String() string {
	s := fmt.Sprintf("size=%d pairs=[", r.Size)
	for i, p := range r.Pairs {
		if i > 0 {
			s += " "
		}
		s += p[0] + "-" + p[1]
	}

	return s + "]"
}
