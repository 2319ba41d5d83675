package order_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wordladder/order"
)

func TestSort_InPlace(t *testing.T) {
	words := []string{"span", "pain", "wait", "gain", "pan", "gait"}
	got := order.Sort(words)

	assert.Equal(t, []string{"gain", "gait", "pain", "pan", "span", "wait"}, got)
	// same backing array
	assert.Same(t, &words[0], &got[0])
}

func TestSort_EdgeCases(t *testing.T) {
	assert.Empty(t, order.Sort(nil))
	assert.Equal(t, []string{""}, order.Sort([]string{""}))
	// ordinal: upper case before lower case, prefix before extension
	assert.Equal(t, []string{"", "Zed", "a", "ab", "b"}, order.Sort([]string{"b", "ab", "Zed", "", "a"}))
}

// TestSort_Permutation checks that Sort yields an ordered permutation of its input.
func TestSort_Permutation(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	letters := []byte("abcz")
	for trial := 0; trial < 50; trial++ {
		n := rnd.Intn(40)
		in := make([]string, n)
		counts := make(map[string]int, n)
		for i := range in {
			b := make([]byte, rnd.Intn(4))
			for j := range b {
				b[j] = letters[rnd.Intn(len(letters))]
			}
			in[i] = string(b)
			counts[in[i]]++
		}

		out := order.Sort(in)
		assert.True(t, order.IsSorted(out), "trial %d: %v", trial, out)
		for _, w := range out {
			counts[w]--
		}
		for w, c := range counts {
			assert.Zero(t, c, "trial %d: multiplicity of %q changed", trial, w)
		}
	}
}

func TestKeys(t *testing.T) {
	set := map[string]struct{}{"zzz": {}, "a": {}, "c": {}}
	assert.Equal(t, []string{"a", "c", "zzz"}, order.Keys(set))

	empty := order.Keys(nil)
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)
}
