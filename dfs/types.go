// Package dfs defines types and options for depth-first traversal and
// component enumeration.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or Components.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start word does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a word is first visited (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(word string, depth int) error

	// OnComponent, if non-nil, is invoked by Components after each
	// component is exhausted, with its zero-based index and its members.
	OnComponent func(index int, members []string)
}

// DefaultOptions returns DFSOptions with a background context and no hooks.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx: context.Background(),
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(word string, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnComponent returns an Option that installs fn as a per-component hook.
func WithOnComponent(fn func(index int, members []string)) Option {
	return func(o *DFSOptions) {
		o.OnComponent = fn
	}
}

// DFSResult captures the outcome of a single-source depth-first traversal.
type DFSResult struct {
	// Order records words in the sequence they were visited (pre-order).
	Order []string

	// Depth maps each visited word to its tree depth from the start.
	Depth map[string]int

	// Parent maps each visited word to the word it was reached from.
	// The start word does not appear.
	Parent map[string]string
}

// ComponentsResult describes the connected components of a graph.
type ComponentsResult struct {
	// Count is the number of components.
	Count int

	// Members lists each component's words in ascending order; components
	// appear in the order their roots were chosen (ascending root word).
	Members [][]string

	// ComponentOf maps every word to its index in Members.
	ComponentOf map[string]int

	// Parent holds the DFS forest links; roots do not appear.
	Parent map[string]string
}
