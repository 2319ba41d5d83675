package ladder

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// EditKind classifies the single edit turning one word into another.
type EditKind int

const (
	// None means the words are not one edit apart.
	None EditKind = iota
	// Substitution replaces exactly one rune.
	Substitution
	// Insertion adds exactly one rune.
	Insertion
	// Deletion removes exactly one rune.
	Deletion
)

// String returns a lower-case name for k.
func (k EditKind) String() string {
	switch k {
	case Substitution:
		return "substitution"
	case Insertion:
		return "insertion"
	case Deletion:
		return "deletion"
	default:
		return "none"
	}
}

// HasEdge reports whether a and b differ by exactly one substitution,
// insertion or deletion. It is symmetric and false for a == b.
func HasEdge(a, b string) bool {
	return Kind(a, b) != None
}

// Kind reports which single edit turns a into b, or None.
func Kind(a, b string) EditKind {
	// length gate before allocating rune slices
	d := utf8.RuneCountInString(a) - utf8.RuneCountInString(b)
	if d > 1 || d < -1 {
		return None
	}
	ra, rb := []rune(a), []rune(b)

	switch len(ra) - len(rb) {
	case 0:
		if oneSubstitution(ra, rb) {
			return Substitution
		}
	case -1:
		if oneInsertion(ra, rb) {
			return Insertion
		}
	case 1:
		if oneInsertion(rb, ra) {
			return Deletion
		}
	}

	return None
}

// oneSubstitution reports whether equal-length a and b mismatch at exactly one index.
func oneSubstitution(a, b []rune) bool {
	diff := 0
	for i := 0; i < len(a) && diff < 2; i++ {
		if a[i] != b[i] {
			diff++
		}
	}

	return diff == 1
}

// oneInsertion reports whether long is short with one extra rune.
// len(long) must equal len(short)+1.
//
// Both cursors advance while runes match. The first mismatch, seen while the
// cursors are still aligned, skips one rune of long; any mismatch after that
// rejects the pair.
func oneInsertion(short, long []rune) bool {
	i, j := 0, 0
	for i < len(short) && j < len(long) {
		if short[i] != long[j] {
			if i != j {
				return false
			}
			j++ // the extra rune sits at long[j]

			continue
		}
		i++
		j++
	}

	return i == len(short)
}

// Fold returns the Unicode case-folded form of w, suitable for
// case-insensitive comparison ("Straße" and "STRASSE" fold alike).
func Fold(w string) string {
	// a Caser keeps state between calls; build one per word so Fold is goroutine-safe.
	return cases.Fold().String(w)
}
