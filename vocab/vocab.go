// Package vocab loads vocabularies for word-ladder graphs: plain word-list
// files and a YAML configuration document that names inline words, word-list
// files, and graph construction settings.
package vocab

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sentinel errors for vocabulary loading.
var (
	// ErrInvalidConfig indicates a configuration value out of range.
	ErrInvalidConfig = errors.New("vocab: invalid config")

	// ErrNoVocabulary indicates a configuration that yields no words at all.
	ErrNoVocabulary = errors.New("vocab: no words configured")
)

// commentPrefix starts a comment line in a word-list file.
const commentPrefix = "#"

// Default returns the sample vocabulary used when nothing else is configured.
func Default() []string {
	return []string{"pain", "gain", "pan", "span", "gait", "wait"}
}

// ReadWords reads one word per line from r. Surrounding whitespace is
// trimmed; blank lines and lines starting with '#' are skipped. Order and
// duplicates are preserved.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("vocab: read words: %w", err)
	}

	return words, nil
}

// LoadFile reads a word-list file with ReadWords.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: open %q: %w", path, err)
	}
	defer f.Close()

	words, err := ReadWords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return words, nil
}
