// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package bintree

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"git.lukeshu.com/bintree-ng/lib/containers"
)

// Layout is the ASCII-art rendering of a subtree.
//
// Every entry in Lines is exactly Width runes long.  A nil subtree has
// the zero Layout (no lines, zero width).
type Layout struct {
	Token  string   // the textual form of the subtree's root value
	Width  int      // in runes
	Middle int      // column of the middle of Token
	Lines  []string // top-down
}

// Renderer draws trees as ASCII art, root at the top:
//
//	   1
//	  / \
//	 2  3
//	/ \
//	4 5
//
// Each node sits above the gap between its two subtrees, which are
// laid out side by side; the last line is always blank.  The layout
// assumes that every token is a single rune wide; longer tokens widen
// the diagram correctly, but the branch symbols end up visually
// off-center.  A value whose textual form is empty is drawn as a
// single space.
//
// The zero Renderer is ready to use, and formats values with
// fmt.Sprint.
type Renderer[T comparable] struct {
	// Token returns the textual form of a value.  If nil,
	// fmt.Sprint is used.  The returned string should not
	// contain newlines.
	Token func(T) string

	cache *containers.LRUCache[T, string]
}

// NewRenderer returns a Renderer that remembers the tokens of up to
// cacheSize recently-rendered values.  Only use a cache if the
// textual form of a value never changes.
func NewRenderer[T comparable](cacheSize int, token func(T) string) *Renderer[T] {
	return &Renderer[T]{
		Token: token,
		cache: containers.NewLRUCache[T, string](cacheSize),
	}
}

func (r *Renderer[T]) token(val T) string {
	return r.cache.GetOrElse(val, func() string {
		if r.Token == nil {
			return fmt.Sprint(val)
		}
		return r.Token(val)
	})
}

// Layout computes the rendering of the subtree rooted at node.
func (r *Renderer[T]) Layout(node *Node[T]) Layout {
	if node == nil {
		return Layout{}
	}

	tok := r.token(node.Value)
	tokLen := utf8.RuneCountInString(tok)
	if tokLen == 0 {
		// Branches are placed relative to the token, so it
		// must take up at least one column.
		tok, tokLen = " ", 1
	}

	left := r.Layout(node.Left)
	right := r.Layout(node.Right)

	ret := Layout{
		Token:  tok,
		Width:  left.Width + tokLen + right.Width,
		Middle: left.Width + tokLen/2,
	}

	rows := len(left.Lines)
	if len(right.Lines) > rows {
		rows = len(right.Lines)
	}
	ret.Lines = make([]string, 0, 2+rows)

	// value
	ret.Lines = append(ret.Lines,
		strings.Repeat(" ", left.Width)+tok+strings.Repeat(" ", right.Width))

	// branches
	branch := bytes.Repeat([]byte{' '}, ret.Width)
	if len(left.Lines) > 0 {
		branch[left.Width-1] = '/'
	}
	if len(right.Lines) > 0 {
		branch[left.Width+tokLen] = '\\'
	}
	ret.Lines = append(ret.Lines, string(branch))

	// children, side by side
	gap := strings.Repeat(" ", tokLen)
	for i := 0; i < rows; i++ {
		lRow := strings.Repeat(" ", left.Width)
		if i < len(left.Lines) {
			lRow = left.Lines[i]
		}
		rRow := strings.Repeat(" ", right.Width)
		if i < len(right.Lines) {
			rRow = right.Lines[i]
		}
		ret.Lines = append(ret.Lines, lRow+gap+rRow)
	}

	return ret
}

// Render returns the lines of the rendering of t; an empty tree has no
// lines.
func (r *Renderer[T]) Render(t *Tree[T]) []string {
	return r.Layout(t.root).Lines
}

// Print writes the rendering of t to w, one newline-terminated line at
// a time.  An empty tree writes nothing.
func (r *Renderer[T]) Print(w io.Writer, t *Tree[T]) error {
	for _, line := range r.Render(t) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Render returns the lines of the ASCII-art rendering of the tree,
// using the default Renderer.
func (t *Tree[T]) Render() []string {
	return new(Renderer[T]).Render(t)
}

// Print writes the ASCII-art rendering of the tree to w, using the
// default Renderer.
func (t *Tree[T]) Print(w io.Writer) error {
	return new(Renderer[T]).Print(w, t)
}

// ASCIIArt returns the ASCII-art rendering of the tree as a single
// string, with each line newline-terminated.
func (t *Tree[T]) ASCIIArt() string {
	var out strings.Builder
	_ = t.Print(&out) // strings.Builder does not fail
	return out.String()
}
