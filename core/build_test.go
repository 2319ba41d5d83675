package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/ladder"
)

func TestNewGraph_Empty(t *testing.T) {
	g := core.NewGraph(nil)
	assert.Equal(t, 0, g.Order())
	assert.Equal(t, 0, g.Size())
	assert.Empty(t, g.Words())
	assert.False(t, g.HasWord(""))
}

func TestNewGraph_Adjacency(t *testing.T) {
	g := core.NewGraph(ladderWords)
	require.Equal(t, 6, g.Order())
	assert.Equal(t, 5, g.Size())

	want := map[string][]string{
		"gain": {"gait", "pain"},
		"gait": {"gain", "wait"},
		"pain": {"gain", "pan"},
		"pan":  {"pain", "span"},
		"span": {"pan"},
		"wait": {"gait"},
	}
	for w, nbrs := range want {
		got, err := g.Neighbors(w)
		require.NoError(t, err)
		assert.Equal(t, nbrs, got, "neighbors of %q", w)
	}
}

func TestNewGraph_Duplicates(t *testing.T) {
	g := core.NewGraph([]string{"pan", "pan", "span", "pan"})
	assert.Equal(t, 2, g.Order())
	assert.Equal(t, 1, g.Size())
	assert.Equal(t, []string{"pan", "span"}, g.Words())
}

func TestNewGraph_EmptyStringIsAWord(t *testing.T) {
	g := core.NewGraph([]string{"", "a", "ab"})
	assert.True(t, g.HasWord(""))
	nbrs, err := g.Neighbors("")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, nbrs)
}

func TestNeighbors_Unknown(t *testing.T) {
	g := core.NewGraph(ladderWords)
	_, err := g.Neighbors("rain")
	assert.True(t, errors.Is(err, core.ErrWordNotFound))
}

// TestNewGraph_Invariants checks every adjacency key is a vertex, and that
// adjacency is symmetric, loop-free and agrees with the predicate.
func TestNewGraph_Invariants(t *testing.T) {
	words := randomWords(1, 120)
	g := core.NewGraph(words)

	all := g.Words()
	for _, a := range all {
		va, ok := g.Vertex(a)
		require.True(t, ok)
		assert.False(t, va.Adjacent(a), "self-loop on %q", a)
		for _, n := range va.Neighbors() {
			vn, ok := g.Vertex(n)
			require.True(t, ok, "dangling neighbor %q of %q", n, a)
			assert.True(t, vn.Adjacent(a), "asymmetric %q-%q", a, n)
		}
		for _, b := range all {
			assert.Equal(t, ladder.HasEdge(a, b), va.Adjacent(b), "%q-%q", a, b)
		}
	}
}

func TestNewGraph_WorkersAgree(t *testing.T) {
	words := randomWords(2, 200)
	serial := core.NewGraph(words)
	for _, n := range []int{-3, 0, 2, 7, 64, 1000} {
		parallel := core.NewGraph(words, core.WithWorkers(n))
		assert.Equal(t, serial.String(), parallel.String(), "workers=%d", n)
		assert.Equal(t, serial.Size(), parallel.Size(), "workers=%d", n)
	}
}

func TestNewGraph_CaseFold(t *testing.T) {
	sensitive := core.NewGraph([]string{"Pain", "pain", "GAIN"})
	assert.Equal(t, 3, sensitive.Order())
	assert.False(t, sensitive.CaseFold())

	folded := core.NewGraph([]string{"Pain", "pain", "GAIN"}, core.WithCaseFold())
	assert.True(t, folded.CaseFold())
	assert.Equal(t, []string{"gain", "pain"}, folded.Words())
	assert.True(t, folded.HasWord("PAIN"))

	nbrs, err := folded.Neighbors("Gain")
	require.NoError(t, err)
	assert.Equal(t, []string{"pain"}, nbrs)
}

func TestStats(t *testing.T) {
	g := core.NewGraph(append([]string{"xyzzy"}, ladderWords...))
	s := g.Stats()
	assert.Equal(t, 7, s.Words)
	assert.Equal(t, 5, s.Edges)
	assert.Equal(t, 1, s.Isolated)
	assert.Equal(t, 2, s.MaxDegree)
	assert.False(t, s.CaseFold)
}

func TestVertex_Degree(t *testing.T) {
	g := core.NewGraph(islandWords)
	v, ok := g.Vertex("a")
	require.True(t, ok)
	assert.Equal(t, "a", v.Word)
	assert.Equal(t, 2, v.Degree())
	assert.Equal(t, []string{"b", "c"}, v.Neighbors())

	_, ok = g.Vertex("q")
	assert.False(t, ok)
}
