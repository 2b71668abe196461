// Package core provides a thread-safe in-memory Graph implementation with a
// minimal, composable API surface.
//
// The Graph G = (V,E) supports a mix of behaviors:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj) to minimize lock contention under concurrency
//
// Why use core.Graph?
//
//   - Single type, composable flags — no explosion of separate graph types.
//   - Deterministic iteration — Vertices(), Edges(), NeighborIDs() all return
//     sorted results, so algorithm output is reproducible.
//   - Clone support — CloneEmpty (vertices+flags), Clone (deep copy).
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight int64) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error    // O(1)
//	HasEdge(from, to string) bool      // O(1)
//	GetEdge(edgeID string) (*Edge, error)
//
//	// Enumeration (deterministic)
//	Vertices() []string                // lex asc
//	Edges() []*Edge                    // Edge.ID asc
//	Neighbors(id string) ([]*Edge, error)
//	NeighborIDs(id string) ([]string, error)
//	AdjacencyList() map[string][]string
//	Degree(id string) (in, out, undirected int, err error)
//
//	// Lifecycle
//	CloneEmpty() *Graph
//	Clone() *Graph
//	Clear()
//
// Undirected edges are mirrored in the adjacency structure, so neighbor
// queries and HasEdge work in both directions without extra bookkeeping.
//
// Errors are strict sentinels; branch with errors.Is:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound,
//	ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
package core
