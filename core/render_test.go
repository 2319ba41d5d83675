package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wordladder/core"
)

func TestString_Ladder(t *testing.T) {
	g := core.NewGraph(ladderWords)
	want := "All Vertices:\n" +
		"gain gait pain pan span wait \n" +
		"All Vertices and their connected vertices:\n" +
		"gain: gait pain \n" +
		"gait: gain wait \n" +
		"pain: gain pan \n" +
		"pan: pain span \n" +
		"span: pan \n" +
		"wait: gait \n"
	assert.Equal(t, want, g.String())
}

func TestString_LineBreaks(t *testing.T) {
	g := core.NewGraph(strings.Split("l k j i h g f e d c b a", " "))
	head := "All Vertices:\na b c d e f g h i j k \nl \nAll Vertices and their connected vertices:\n"
	assert.True(t, strings.HasPrefix(g.String(), head), g.String())
}

func TestString_Empty(t *testing.T) {
	g := core.NewGraph(nil)
	assert.Equal(t, "All Vertices:\n\nAll Vertices and their connected vertices:\n", g.String())
}

func TestString_IndependentOfInputOrder(t *testing.T) {
	a := core.NewGraph(islandWords)
	rev := make([]string, len(islandWords))
	for i, w := range islandWords {
		rev[len(rev)-1-i] = w
	}
	b := core.NewGraph(rev)
	assert.Equal(t, a.String(), b.String())
}
