package wordladder_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder"
	"github.com/katalvlaran/wordladder/core"
)

var (
	ladderWords = []string{"pain", "gain", "pan", "span", "gait", "wait"}
	islandWords = []string{"a", "b", "c", "ddddddd", "dddddd", "ddddd", "zzzzz", "zzzz", "zzz"}
)

func TestWordGraph_Ladder(t *testing.T) {
	w := wordladder.New(ladderWords)

	assert.Equal(t, []string{"pain", "gain"}, w.ShortestPath("pain", "gain"))
	assert.Equal(t, []string{"pain", "gain", "gait", "wait"}, w.ShortestPath("pain", "wait"))
	assert.Equal(t, []string{"wait", "gait", "gain", "pain", "pan", "span"}, w.ShortestPath("wait", "span"))
	assert.Equal(t, []string{"span", "pan", "pain", "gain", "gait", "wait"}, w.ShortestPath("span", "wait"))
	assert.Equal(t, 1, w.NumberOfComponents())
}

func TestWordGraph_Islands(t *testing.T) {
	w := wordladder.New(islandWords)

	assert.Equal(t, []string{"a", "c"}, w.ShortestPath("a", "c"))
	assert.Equal(t, []string{}, w.ShortestPath("a", "zzz"))
	assert.Equal(t, []string{"zzz", "zzzz", "zzzzz"}, w.ShortestPath("zzz", "zzzzz"))
	assert.Equal(t, []string{}, w.ShortestPath("a", "ddddd"))
	assert.Equal(t, 3, w.NumberOfComponents())
	assert.Len(t, w.Components(), 3)
}

func TestWordGraph_EdgeCases(t *testing.T) {
	empty := wordladder.New(nil)
	assert.Equal(t, 0, empty.NumberOfComponents())
	assert.Equal(t, []string{}, empty.ShortestPath("a", "b"))
	assert.Empty(t, empty.Components())

	w := wordladder.New(ladderWords)
	assert.Equal(t, []string{"pain", "pain"}, w.ShortestPath("pain", "pain"))
	assert.Equal(t, []string{}, w.ShortestPath("rain", "pain"))
}

func TestWordGraph_Idempotent(t *testing.T) {
	w := wordladder.New(ladderWords)
	first := w.ShortestPath("wait", "span")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, w.ShortestPath("wait", "span"))
		assert.Equal(t, 1, w.NumberOfComponents())
	}
}

func TestWordGraph_CaseFold(t *testing.T) {
	w := wordladder.New([]string{"Pain", "GAIN", "Gait", "WAIT"}, core.WithCaseFold())
	assert.Equal(t, []string{"pain", "gain", "gait", "wait"}, w.ShortestPath("PAIN", "wait"))
	assert.True(t, w.Graph().CaseFold())
}

func TestWordGraph_ShortestPaths(t *testing.T) {
	w := wordladder.New(append(append([]string{}, ladderWords...), islandWords...), core.WithWorkers(4))
	pairs := []wordladder.Pair{
		{From: "pain", To: "wait"},
		{From: "a", To: "zzz"},
		{From: "zzz", To: "zzzzz"},
		{From: "wait", To: "span"},
		{From: "nope", To: "pain"},
	}

	for _, limit := range []int{0, 1, 3} {
		got, err := w.ShortestPaths(context.Background(), pairs, limit)
		require.NoError(t, err)
		require.Len(t, got, len(pairs))
		for i, p := range pairs {
			assert.Equal(t, w.ShortestPath(p.From, p.To), got[i], "limit %d pair %v", limit, p)
		}
	}
}

func TestWordGraph_ShortestPathsCanceled(t *testing.T) {
	w := wordladder.New(ladderWords)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := w.ShortestPaths(ctx, []wordladder.Pair{{From: "pain", To: "wait"}}, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWordGraph_String(t *testing.T) {
	w := wordladder.New(ladderWords)
	assert.Equal(t, w.Graph().String(), w.String())
	assert.Contains(t, w.String(), "pan: pain span \n")
}
