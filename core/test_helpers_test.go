package core_test

import (
	"fmt"

	"github.com/katalvlaran/wordladder/builder"
)

// ladderWords is the sample vocabulary: one component, five edges.
var ladderWords = []string{"pain", "gain", "pan", "span", "gait", "wait"}

// islandWords has three components: {a,b,c}, the d-run and the z-run.
var islandWords = []string{"a", "b", "c", "ddddddd", "dddddd", "ddddd", "zzzzz", "zzzz", "zzz"}

// randomWords draws n words of length 1..4 over a three-letter alphabet.
func randomWords(seed int64, n int) []string {
	words, err := builder.Build(builder.Random(n, 4), builder.WithSeed(seed), builder.WithAlphabet("abc"))
	if err != nil {
		panic(err)
	}

	return words
}

// numbered returns w0..w{n-1}.
func numbered(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("w%d", i)
	}

	return out
}
