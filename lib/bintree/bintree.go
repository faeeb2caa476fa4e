// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package bintree implements a plain (unordered, unbalanced) binary
// tree that is filled in level-order.
//
// A Tree is not a search tree: values are placed by position, not by
// comparison, so after any sequence of N insertions the tree has the
// unique complete-binary-tree shape for N nodes.  Values only need to
// be comparable, for Find and Delete.
//
// A Tree is not safe for concurrent use; callers that share a Tree
// between goroutines must serialize access themselves.
package bintree

import (
	"git.lukeshu.com/bintree-ng/lib/containers"
)

// Node is a single vertex of a Tree.  A Node exclusively owns its
// children; no Node is reachable by more than one path.
type Node[T comparable] struct {
	Left, Right *Node[T]

	Value T
}

// IsLeaf returns whether the node has no children.
func (node *Node[T]) IsLeaf() bool {
	return node.Left == nil && node.Right == nil
}

// Height returns the height of the subtree rooted at node; a nil node
// has height 0.
func (node *Node[T]) Height() int {
	if node == nil {
		return 0
	}
	l, r := node.Left.Height(), node.Right.Height()
	if l > r {
		return 1 + l
	}
	return 1 + r
}

func (node *Node[T]) size() int {
	if node == nil {
		return 0
	}
	return 1 + node.Left.size() + node.Right.size()
}

// Tree is a level-order binary tree.  The zero Tree is empty and
// ready to use.  A Tree must not be copied after first use.
type Tree[T comparable] struct {
	root *Node[T]
	len  int

	// scratch space for Insert's breadth-first search
	queue containers.Queue[*Node[T]]
}

// Len returns the number of nodes in the tree.
func (t *Tree[T]) Len() int {
	return t.len
}

// Root returns the root node, or nil if the tree is empty.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Insert adds val to the tree, in the first empty child slot found by
// a breadth-first search from the root (left before right).
func (t *Tree[T]) Insert(val T) {
	node := &Node[T]{
		Value: val,
	}
	t.len++
	if t.root == nil {
		t.root = node
		return
	}

	defer t.queue.Reset()
	t.queue.Push(t.root)
	for {
		cur, ok := t.queue.Pop()
		if !ok {
			// A finite tree always has an empty slot.
			panic("should not happen: level-order search found no empty slot")
		}
		if cur.Left == nil {
			cur.Left = node
			return
		}
		t.queue.Push(cur.Left)
		if cur.Right == nil {
			cur.Right = node
			return
		}
		t.queue.Push(cur.Right)
	}
}

// Height returns the height of the tree: 0 if empty, otherwise the
// number of nodes on the longest root-to-leaf path.
func (t *Tree[T]) Height() int {
	return t.root.Height()
}

// PreOrder returns the values of the tree, each node before its left
// then right subtrees.
func (t *Tree[T]) PreOrder() []T {
	return t.root.preOrder(make([]T, 0, t.len))
}

func (node *Node[T]) preOrder(out []T) []T {
	if node == nil {
		return out
	}
	out = append(out, node.Value)
	out = node.Left.preOrder(out)
	out = node.Right.preOrder(out)
	return out
}

// InOrder returns the values of the tree, each node between its left
// and right subtrees.
func (t *Tree[T]) InOrder() []T {
	return t.root.inOrder(make([]T, 0, t.len))
}

func (node *Node[T]) inOrder(out []T) []T {
	if node == nil {
		return out
	}
	out = node.Left.inOrder(out)
	out = append(out, node.Value)
	out = node.Right.inOrder(out)
	return out
}

// PostOrder returns the values of the tree, each node after its left
// then right subtrees.
func (t *Tree[T]) PostOrder() []T {
	return t.root.postOrder(make([]T, 0, t.len))
}

func (node *Node[T]) postOrder(out []T) []T {
	if node == nil {
		return out
	}
	out = node.Left.postOrder(out)
	out = node.Right.postOrder(out)
	out = append(out, node.Value)
	return out
}

// Find returns the first node holding val, searching depth-first
// (node, then left subtree, then right subtree).  Returns nil if no
// node holds val.
func (t *Tree[T]) Find(val T) *Node[T] {
	return t.root.find(val)
}

func (node *Node[T]) find(val T) *Node[T] {
	if node == nil {
		return nil
	}
	if node.Value == val {
		return node
	}
	if ret := node.Left.find(val); ret != nil {
		return ret
	}
	return node.Right.find(val)
}

// Delete removes the value val from the tree.
//
// The node holding val (as located by Find) is overwritten with the
// value of the right-chain terminal node (the node reached by
// following Right links from the root until there are none), and that
// terminal node is then detached from the tree.
//
//	    +---+                  +---+
//	    | 1 |  Delete(1)       | 7 |
//	    +---+                  +---+
//	   /     \       =>       /     \
//	  2       3              2       3
//	 / \     / \            / \     /
//	4   5   6   7          4   5   6
//
// The terminal node is detached along with any left subtree it has;
// for example, deleting from a 2-node tree empties it.  This matches
// the historical behavior of the container.
//
// If no node holds val, Delete returns a *NotFoundError (which
// matches ErrNotFound under errors.Is) and does not modify the tree.
func (t *Tree[T]) Delete(val T) error {
	target := t.Find(val)
	if target == nil {
		return &NotFoundError[T]{Value: val}
	}

	var parent *Node[T]
	src := t.root
	for src.Right != nil {
		parent, src = src, src.Right
	}

	target.Value = src.Value

	if parent == nil {
		t.root = nil
	} else {
		parent.Right = nil
	}
	t.len -= src.size()
	*src = Node[T]{} // don't let a stray reference pin the dropped subtree
	return nil
}
