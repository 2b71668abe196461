package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/blossom/core"
)

// TestAddVertex verifies idempotent insertion and empty-ID rejection.
func TestAddVertex(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertex("A"); err != nil {
		t.Fatalf("AddVertex(A): %v", err)
	}
	// duplicate is a no-op
	if err := g.AddVertex("A"); err != nil {
		t.Fatalf("AddVertex(A) twice: %v", err)
	}
	if got := g.VertexCount(); got != 1 {
		t.Errorf("VertexCount = %d; want 1", got)
	}
	if err := g.AddVertex(""); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Errorf("empty ID: want ErrEmptyVertexID, got %v", err)
	}
}

// TestAddEdge_AutoVertices ensures endpoints are created on demand and the
// undirected mirror is visible via HasEdge.
func TestAddEdge_AutoVertices(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge("A", "B", 0)
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if eid == "" {
		t.Fatal("AddEdge returned empty edge ID")
	}
	if !g.HasVertex("A") || !g.HasVertex("B") {
		t.Error("endpoints not auto-created")
	}
	if !g.HasEdge("A", "B") || !g.HasEdge("B", "A") {
		t.Error("undirected edge not mirrored")
	}
}

// TestAddEdge_Constraints covers weight, loop, and multi-edge sentinels.
func TestAddEdge_Constraints(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge("A", "B", 3); !errors.Is(err, core.ErrBadWeight) {
		t.Errorf("weight on unweighted graph: want ErrBadWeight, got %v", err)
	}
	if _, err := g.AddEdge("A", "A", 0); !errors.Is(err, core.ErrLoopNotAllowed) {
		t.Errorf("loop: want ErrLoopNotAllowed, got %v", err)
	}
	if _, err := g.AddEdge("A", "B", 0); err != nil {
		t.Fatalf("first edge: %v", err)
	}
	if _, err := g.AddEdge("A", "B", 0); !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Errorf("parallel edge: want ErrMultiEdgeNotAllowed, got %v", err)
	}

	// With the matching flags, both are permitted.
	gl := core.NewGraph(core.WithLoops(), core.WithMultiEdges(), core.WithWeighted())
	if _, err := gl.AddEdge("X", "X", 2); err != nil {
		t.Errorf("loop with WithLoops: %v", err)
	}
	if _, err := gl.AddEdge("X", "Y", 1); err != nil {
		t.Errorf("edge 1: %v", err)
	}
	if _, err := gl.AddEdge("X", "Y", 1); err != nil {
		t.Errorf("parallel with WithMultiEdges: %v", err)
	}
}

// TestVertices_Sorted checks the deterministic enumeration contract.
func TestVertices_Sorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"C", "A", "B"} {
		_ = g.AddVertex(id)
	}
	if got, want := g.Vertices(), []string{"A", "B", "C"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Vertices = %v; want %v", got, want)
	}
}

// TestNeighborIDs verifies uniqueness, sorting, and validation errors.
func TestNeighborIDs(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "C", 0)
	_, _ = g.AddEdge("A", "B", 0)

	ids, err := g.NeighborIDs("A")
	if err != nil {
		t.Fatalf("NeighborIDs: %v", err)
	}
	if want := []string{"B", "C"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("NeighborIDs(A) = %v; want %v", ids, want)
	}
	// mirror direction
	ids, err = g.NeighborIDs("B")
	if err != nil {
		t.Fatalf("NeighborIDs(B): %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("NeighborIDs(B) = %v; want %v", ids, want)
	}

	if _, err = g.NeighborIDs(""); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Errorf("empty id: want ErrEmptyVertexID, got %v", err)
	}
	if _, err = g.NeighborIDs("missing"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("missing vertex: want ErrVertexNotFound, got %v", err)
	}
}

// TestDirectedNeighbors ensures directed edges are followed only forward.
func TestDirectedNeighbors(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)

	out, _ := g.NeighborIDs("A")
	if want := []string{"B"}; !reflect.DeepEqual(out, want) {
		t.Errorf("NeighborIDs(A) = %v; want %v", out, want)
	}
	back, _ := g.NeighborIDs("B")
	if len(back) != 0 {
		t.Errorf("NeighborIDs(B) = %v; want empty", back)
	}
}

// TestRemoveVertex drops the vertex and every incident edge.
func TestRemoveVertex(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)

	if err := g.RemoveVertex("B"); err != nil {
		t.Fatalf("RemoveVertex: %v", err)
	}
	if g.HasVertex("B") {
		t.Error("B still present")
	}
	if g.HasEdge("A", "B") || g.HasEdge("C", "B") {
		t.Error("incident edges survived removal")
	}
	if got := g.EdgeCount(); got != 0 {
		t.Errorf("EdgeCount = %d; want 0", got)
	}
	if err := g.RemoveVertex("B"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("second removal: want ErrVertexNotFound, got %v", err)
	}
}

// TestRemoveEdge verifies mirror cleanup and missing-edge sentinel.
func TestRemoveEdge(t *testing.T) {
	g := core.NewGraph()
	eid, _ := g.AddEdge("A", "B", 0)
	if err := g.RemoveEdge(eid); err != nil {
		t.Fatalf("RemoveEdge: %v", err)
	}
	if g.HasEdge("A", "B") || g.HasEdge("B", "A") {
		t.Error("edge or mirror survived removal")
	}
	if err := g.RemoveEdge(eid); !errors.Is(err, core.ErrEdgeNotFound) {
		t.Errorf("second removal: want ErrEdgeNotFound, got %v", err)
	}
}

// TestClone checks deep-copy independence.
func TestClone(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)

	c := g.Clone()
	if !c.HasEdge("A", "B") {
		t.Fatal("clone missing edge A-B")
	}
	// Mutating the clone must not affect the original.
	_, _ = c.AddEdge("B", "C", 0)
	if g.HasVertex("C") {
		t.Error("original graph gained vertex from clone mutation")
	}
	// Edge IDs continue the sequence without collisions.
	if got := c.EdgeCount(); got != 2 {
		t.Errorf("clone EdgeCount = %d; want 2", got)
	}
}

// TestCloneEmpty keeps vertices and flags but drops edges.
func TestCloneEmpty(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 5)

	c := g.CloneEmpty()
	if !c.HasVertex("A") || !c.HasVertex("B") {
		t.Error("CloneEmpty dropped vertices")
	}
	if c.EdgeCount() != 0 {
		t.Error("CloneEmpty copied edges")
	}
	if !c.Weighted() {
		t.Error("CloneEmpty dropped weighted flag")
	}
}

// TestDegree covers the undirected and loop-counting conventions.
func TestDegree(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("A", "A", 0)

	_, _, und, err := g.Degree("A")
	if err != nil {
		t.Fatalf("Degree: %v", err)
	}
	// one plain incident edge + self-loop counted twice
	if und != 3 {
		t.Errorf("undirected degree = %d; want 3", und)
	}
}

// TestClear resets catalogs but keeps configuration.
func TestClear(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	g.Clear()
	if g.VertexCount() != 0 || g.EdgeCount() != 0 {
		t.Error("Clear left data behind")
	}
	if !g.Weighted() {
		t.Error("Clear dropped weighted flag")
	}
}
