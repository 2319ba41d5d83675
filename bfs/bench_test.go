package bfs_test

import (
	"testing"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/builder"
	"github.com/katalvlaran/wordladder/core"
)

// BenchmarkShortestPath_Chain measures an end-to-end search along a path graph.
func BenchmarkShortestPath_Chain(b *testing.B) {
	words, err := builder.Build(builder.Chain(500))
	if err != nil {
		b.Fatal(err)
	}
	g := core.NewGraph(words)
	from, to := words[0], words[len(words)-1]

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestPath(g, from, to)
	}
}

// BenchmarkBFS_Random runs a full traversal over a dense random vocabulary.
func BenchmarkBFS_Random(b *testing.B) {
	g := core.NewGraph(randomWords(11, 1500))
	start := g.Words()[0]

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.BFS(g, start); err != nil {
			b.Fatal(err)
		}
	}
}
