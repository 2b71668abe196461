package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/blossom/core"
)

// TestConcurrentAddEdge hammers AddEdge from many goroutines and verifies the
// catalog stays consistent (run with -race).
func TestConcurrentAddEdge(t *testing.T) {
	const workers = 8
	const perWorker = 200

	g := core.NewGraph(core.WithMultiEdges())
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				u := fmt.Sprintf("v%d", (w*perWorker+i)%50)
				v := fmt.Sprintf("v%d", (w*perWorker+i+1)%50)
				if _, err := g.AddEdge(u, v, 0); err != nil {
					t.Errorf("AddEdge(%s,%s): %v", u, v, err)
				}
			}
		}(w)
	}
	wg.Wait()

	if got, want := g.EdgeCount(), workers*perWorker; got != want {
		t.Errorf("EdgeCount = %d; want %d", got, want)
	}
}

// TestConcurrentReaders runs queries in parallel with mutations (run with -race).
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 20; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 0)
	}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			_ = g.Vertices()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			_, _ = g.NeighborIDs("v10")
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_, _ = g.AddEdge("v0", fmt.Sprintf("x%d", i), 0)
		}
	}()
	wg.Wait()
}
