package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/gridtest"
)

func benchmarkAStar(b *testing.B, kind frontier.Kind) {
	g := gridtest.Random(rand.New(rand.NewSource(42)), gridgraph.DefaultHeight, gridgraph.DefaultWidth, 20, 20)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.AStar(g, g.Start(), g.End(), astar.WithFrontier(kind))
	}
}

// BenchmarkAStar_Scan measures A* with the linear-scan frontier.
func BenchmarkAStar_Scan(b *testing.B) { benchmarkAStar(b, frontier.Scan) }

// BenchmarkAStar_Heap measures A* with the heap frontier.
func BenchmarkAStar_Heap(b *testing.B) { benchmarkAStar(b, frontier.Heap) }
