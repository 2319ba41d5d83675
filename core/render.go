// File: render.go
// Role: Deterministic textual dump of a Graph.

package core

import (
	"strings"

	"github.com/katalvlaran/wordladder/order"
)

const wordsPerLine = 10

// String renders the graph in two sections, both sorted:
//
//	All Vertices:
//	gain gait pain pan span wait
//	All Vertices and their connected vertices:
//	gain: gait pain
//	...
//
// The vertex list breaks after roughly ten words per line. Every rendered
// word is followed by a single space.
func (g *Graph) String() string {
	var sb strings.Builder
	words := g.Words()
	last := len(words) - 1

	sb.WriteString("All Vertices:\n")
	for i, w := range words {
		sb.WriteString(w)
		sb.WriteByte(' ')
		if i%wordsPerLine == 0 && i != 0 && i != last {
			sb.WriteByte('\n')
		}
	}

	sb.WriteString("\nAll Vertices and their connected vertices:\n")
	for _, w := range words {
		sb.WriteString(w)
		sb.WriteString(": ")
		for _, n := range order.Keys(g.vertices[w].adjacent) {
			sb.WriteString(n)
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
