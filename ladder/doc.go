// Package ladder implements the word-ladder adjacency predicate.
//
// Two words are adjacent when one turns into the other by exactly one
// single-rune edit:
//
//   - Substitution: equal length, exactly one position differs ("pain" → "gain").
//   - Insertion:    the second word is one rune longer ("pan" → "span").
//   - Deletion:     the second word is one rune shorter ("span" → "pan").
//
// Words whose lengths differ by two or more are never adjacent, and a word is
// never adjacent to itself. Comparison is exact and case-sensitive; callers
// wanting case-insensitive adjacency normalise both words with Fold first.
//
// Lengths and positions are measured in runes, so multi-byte letters count
// as a single character.
//
// Complexity: O(max(len(a), len(b))) time, O(len(a)+len(b)) space for the
// rune conversion.
package ladder
