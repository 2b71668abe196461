// File: vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap and teardown under muEdgeAdj.

package core

import "sort"

// AddVertex inserts a vertex with the given id if it does not exist yet.
// Adding an existing vertex is a no-op (idempotent).
// Returns ErrEmptyVertexID for an empty id.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	return nil
}

// HasVertex reports whether a vertex with the given id exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes the vertex and all incident edges.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(deg(v) + E_pruned) for incident edge removal and cleanup.
func (g *Graph) RemoveVertex(id string) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	delete(g.vertices, id)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	// Drop every edge touching id, then its adjacency rows.
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}
	delete(g.adjacencyList, id)
	cleanupAdjacency(g)

	return nil
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
// The slice is freshly allocated; callers may retain and mutate it.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// VerticesMap returns a shallow snapshot of the vertex catalog.
// The map is freshly allocated; Vertex pointers are shared (read-only by convention).
// Complexity: O(V).
func (g *Graph) VerticesMap() map[string]*Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make(map[string]*Vertex, len(g.vertices))
	for id, v := range g.vertices {
		out[id] = v
	}

	return out
}
