// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"git.lukeshu.com/go/lowmemjson"
	"github.com/datawire/dlib/dlog"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/pflag"
	"golang.org/x/exp/constraints"

	"git.lukeshu.com/bintree-ng/lib/bintree"
)

// treeOps is the type-erased view of a bintree.Tree that the
// subcommands operate on; values cross it in their command-line
// (string) form.
type treeOps interface {
	Insert(ctx context.Context, val string) error
	Delete(ctx context.Context, val string) error
	// Find returns the rendering of the subtree rooted at the node
	// holding val, or nil if no node holds it.
	Find(ctx context.Context, val string) ([]string, error)
	Walk(order traversalOrder) []any
	Height() int
	Len() int
	Render() []string
	Dump(w io.Writer)
	LoadJSON(ctx context.Context, r io.RuneScanner) error
}

type typedTree[T comparable] struct {
	tree     bintree.Tree[T]
	renderer *bintree.Renderer[T]
	parse    func(string) (T, error)
}

var _ treeOps = (*typedTree[string])(nil)

// tokenCacheSize is how many value tokens the renderer remembers;
// every value type that the CLI supports has an immutable textual
// form, so caching is safe.
const tokenCacheSize = 1024

func newTypedTree[T comparable](parse func(string) (T, error)) *typedTree[T] {
	return &typedTree[T]{
		renderer: bintree.NewRenderer[T](tokenCacheSize, nil),
		parse:    parse,
	}
}

func (t *typedTree[T]) Insert(ctx context.Context, str string) error {
	val, err := t.parse(str)
	if err != nil {
		return err
	}
	dlog.Tracef(ctx, "insert %v", val)
	t.tree.Insert(val)
	return nil
}

func (t *typedTree[T]) Delete(ctx context.Context, str string) error {
	val, err := t.parse(str)
	if err != nil {
		return err
	}
	ctx = dlog.WithField(ctx, "bintree.op", "delete")
	ctx = dlog.WithField(ctx, "bintree.value", val)
	if err := t.tree.Delete(val); err != nil {
		return err
	}
	dlog.Debugf(ctx, "deleted; %v nodes remain", t.tree.Len())
	return nil
}

func (t *typedTree[T]) Find(ctx context.Context, str string) ([]string, error) {
	val, err := t.parse(str)
	if err != nil {
		return nil, err
	}
	ctx = dlog.WithField(ctx, "bintree.op", "find")
	ctx = dlog.WithField(ctx, "bintree.value", val)
	node := t.tree.Find(val)
	if node == nil {
		dlog.Debug(ctx, "not found")
		return nil, nil
	}
	dlog.Debugf(ctx, "found; subtree height=%v", node.Height())
	return t.renderer.Layout(node).Lines, nil
}

func (t *typedTree[T]) Walk(order traversalOrder) []any {
	var vals []T
	switch order {
	case preOrder:
		vals = t.tree.PreOrder()
	case inOrder:
		vals = t.tree.InOrder()
	case postOrder:
		vals = t.tree.PostOrder()
	default:
		panic(fmt.Errorf("should not happen: invalid traversal order: %#v", order))
	}
	ret := make([]any, len(vals))
	for i, val := range vals {
		ret[i] = val
	}
	return ret
}

func (t *typedTree[T]) Height() int      { return t.tree.Height() }
func (t *typedTree[T]) Len() int         { return t.tree.Len() }
func (t *typedTree[T]) Render() []string { return t.renderer.Render(&t.tree) }

func (t *typedTree[T]) Dump(w io.Writer) {
	spew := spew.NewDefaultConfig()
	spew.DisablePointerAddresses = true
	spew.Fdump(w, t.tree.Root())
}

// LoadJSON inserts each member of a JSON array of values, in order.
func (t *typedTree[T]) LoadJSON(ctx context.Context, r io.RuneScanner) error {
	var vals []T
	if err := lowmemjson.NewDecoder(r).DecodeThenEOF(&vals); err != nil {
		return err
	}
	for _, val := range vals {
		dlog.Tracef(ctx, "insert %v", val)
		t.tree.Insert(val)
	}
	return nil
}

// value types /////////////////////////////////////////////////////////////////

func parseString(str string) (string, error) {
	return str, nil
}

func signedParser[T constraints.Signed](bitSize int) func(string) (T, error) {
	return func(str string) (T, error) {
		n, err := strconv.ParseInt(str, 0, bitSize)
		if err != nil {
			return 0, err
		}
		return T(n), nil
	}
}

func unsignedParser[T constraints.Unsigned](bitSize int) func(string) (T, error) {
	return func(str string) (T, error) {
		n, err := strconv.ParseUint(str, 0, bitSize)
		if err != nil {
			return 0, err
		}
		return T(n), nil
	}
}

// valueTypeFlag selects the element type of the tree.
type valueTypeFlag struct {
	name string
}

var _ pflag.Value = (*valueTypeFlag)(nil)

var valueTypes = map[string]func() treeOps{
	"string": func() treeOps { return newTypedTree(parseString) },
	"int":    func() treeOps { return newTypedTree(signedParser[int](strconv.IntSize)) },
	"uint":   func() treeOps { return newTypedTree(unsignedParser[uint](strconv.IntSize)) },
}

// Type implements pflag.Value.
func (f *valueTypeFlag) Type() string { return "type" }

// Set implements pflag.Value.
func (f *valueTypeFlag) Set(str string) error {
	if _, ok := valueTypes[str]; !ok {
		return fmt.Errorf("invalid value type: %q (must be one of string, int, uint)", str)
	}
	f.name = str
	return nil
}

// String implements pflag.Value.
func (f *valueTypeFlag) String() string {
	if f.name == "" {
		return "string"
	}
	return f.name
}

func (f *valueTypeFlag) NewTree() treeOps {
	return valueTypes[f.String()]()
}

// traversal orders ////////////////////////////////////////////////////////////

type traversalOrder int

const (
	preOrder traversalOrder = iota
	inOrder
	postOrder
)

var _ pflag.Value = (*traversalOrder)(nil)

// Type implements pflag.Value.
func (o *traversalOrder) Type() string { return "order" }

// Set implements pflag.Value.
func (o *traversalOrder) Set(str string) error {
	switch str {
	case "pre":
		*o = preOrder
	case "in":
		*o = inOrder
	case "post":
		*o = postOrder
	default:
		return fmt.Errorf("invalid traversal order: %q (must be one of pre, in, post)", str)
	}
	return nil
}

// String implements pflag.Value.
func (o *traversalOrder) String() string {
	switch *o {
	case preOrder:
		return "pre"
	case inOrder:
		return "in"
	case postOrder:
		return "post"
	default:
		return strconv.Itoa(int(*o))
	}
}
