package search_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lifepath/automaton"
	"github.com/katalvlaran/lifepath/grid"
	"github.com/katalvlaran/lifepath/search"
)

// randomAutomaton builds an n×n automaton with roughly density live cells,
// source in the top-left and destination in the bottom-right corner.
func randomAutomaton(b *testing.B, n int, density float64, seed int64) *automaton.Automaton {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	g, err := grid.New(n, n)
	if err != nil {
		b.Fatal(err)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			g.Set(r, c, rng.Float64() < density)
		}
	}
	a, err := automaton.New(g, grid.Position{}, grid.Position{Row: n - 1, Col: n - 1},
		automaton.WithImmutableEndpoints())
	if err != nil {
		b.Fatal(err)
	}
	return a
}

// BenchmarkSearch_Heuristic measures the pruned search on a 64×64 board.
func BenchmarkSearch_Heuristic(b *testing.B) {
	a := randomAutomaton(b, 64, 0.3, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.FindPath(a, 2000, search.DefaultMaxPessimism)
	}
}

// BenchmarkSearch_Robust measures the bit-layer search on the same board.
func BenchmarkSearch_Robust(b *testing.B) {
	a := randomAutomaton(b, 64, 0.3, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.FindPathRobust(a, 2000)
	}
}

// BenchmarkSearchAll runs eight independent boards concurrently.
func BenchmarkSearchAll(b *testing.B) {
	cands := make([]*automaton.Automaton, 8)
	for i := range cands {
		cands[i] = randomAutomaton(b, 32, 0.3, int64(i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.SearchAll(context.Background(), cands, search.WithMaxGenerations(1000))
	}
}
