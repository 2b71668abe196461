// File: adjacency.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList, Degree)
//       and the adjacency bucket helpers used by mutating code.
// Determinism:
//   - Neighbors() sorts by Edge.ID asc.
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Read operations take muVert then muEdgeAdj read locks (same order as mutators).
//   - Helpers are called only under the muEdgeAdj write lock.

package core

import "sort"

// Neighbors returns all edges incident to the given vertex id.
//
// Neighborhood policy:
//   - Directed edges: include only edges with e.From == id (outgoing).
//   - Undirected edges: include incident edges; self-loops appear once.
//
// Result is sorted by Edge.ID ascending; returned *Edge values are live
// catalog entries and read-only by convention.
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d) where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	// Lock order must match mutators (muVert → muEdgeAdj) so a vertex cannot
	// vanish between validation and the adjacency snapshot.
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e == nil {
				continue
			}
			// Directed policy: only outgoing edges.
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs adjacent to id,
// sorted lexicographically ascending.
// Errors propagate from Neighbors(id).
// Complexity: O(d + k log k) for d incident edges and k unique neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			seen[e.To] = struct{}{}
			continue
		}
		if !e.Directed && e.To == id {
			seen[e.From] = struct{}{}
		}
	}

	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// AdjacencyList returns a snapshot mapping each "from" vertex ID to its
// incident edge IDs, each slice sorted by Edge.ID ascending.
// Returned slices are freshly allocated and safe to retain.
// Complexity: O(V + E + Σ sort(deg(v))).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	result := make(map[string][]string, len(g.adjacencyList))
	for from, toMap := range g.adjacencyList {
		var buf []string
		for _, edgeMap := range toMap {
			for eid := range edgeMap {
				buf = append(buf, eid)
			}
		}
		sort.Strings(buf)
		result[from] = buf
	}

	return result
}

// Degree returns the in-, out-, and undirected-edge counts for the vertex.
// A self-loop contributes twice to the undirected count (academic convention).
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(E).
func (g *Graph) Degree(id string) (in, out, undirected int, err error) {
	if id == "" {
		return 0, 0, 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, 0, 0, ErrVertexNotFound
	}

	for _, e := range g.edges {
		switch {
		case e.Directed:
			if e.From == id {
				out++
			}
			if e.To == id {
				in++
			}
		case e.From == id && e.To == id:
			undirected += 2
		case e.From == id || e.To == id:
			undirected++
		}
	}

	return in, out, undirected, nil
}

// ensureAdjacency guarantees that adjacencyList[from][to] is initialized.
// Must be called only under the muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency removes e.ID from the adjacency buckets of its endpoints,
// pruning buckets that become empty. Undirected non-loop edges are unlinked
// from both directions. Must be called only under the muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacencyList[e.From][e.To]; m != nil {
		delete(m, e.ID)
		if len(m) == 0 {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	if !e.Directed && e.From != e.To {
		if m := g.adjacencyList[e.To][e.From]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacencyList[e.To], e.From)
			}
		}
	}
}

// cleanupAdjacency prunes empty nested adjacency buckets after removals.
// Idempotent. Must be called only under the muEdgeAdj write lock.
func cleanupAdjacency(g *Graph) {
	for u, toMap := range g.adjacencyList {
		for v, edgeSet := range toMap {
			if len(edgeSet) == 0 {
				delete(toMap, v)
			}
		}
		if len(toMap) == 0 {
			delete(g.adjacencyList, u)
		}
	}
}
