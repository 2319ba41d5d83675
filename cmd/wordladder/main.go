// Command wordladder builds a word-ladder graph from a vocabulary and
// answers path, component and dump queries against it.
//
// Usage:
//
//	wordladder path pain span
//	wordladder --words words.txt components --list
//	wordladder --config ladder.yaml dump
//
// With no vocabulary configured the built-in sample
// (pain gain pan span gait wait) is used.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
