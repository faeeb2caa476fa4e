// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package bintree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func buildTree[T comparable](vals ...T) *Tree[T] {
	tree := new(Tree[T])
	for _, val := range vals {
		tree.Insert(val)
	}
	return tree
}

func seq(n int) []int {
	ret := make([]int, n)
	for i := range ret {
		ret[i] = i + 1
	}
	return ret
}

// levelOrder returns the nodes of the tree in breadth-first order.
func levelOrder[T comparable](tree *Tree[T]) []*Node[T] {
	if tree.root == nil {
		return nil
	}
	ret := []*Node[T]{tree.root}
	for i := 0; i < len(ret); i++ {
		if ret[i].Left != nil {
			ret = append(ret, ret[i].Left)
		}
		if ret[i].Right != nil {
			ret = append(ret, ret[i].Right)
		}
	}
	return ret
}

func TestZeroTree(t *testing.T) {
	t.Parallel()
	var tree Tree[string]
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 0, tree.Height())
	assert.Nil(t, tree.Root())
	assert.Nil(t, tree.Find("x"))
	assert.Empty(t, tree.PreOrder())
	assert.Empty(t, tree.InOrder())
	assert.Empty(t, tree.PostOrder())
}

func TestIsLeaf(t *testing.T) {
	t.Parallel()
	tree := buildTree(seq(5)...)
	var leaves []int
	for _, node := range levelOrder(tree) {
		if node.IsLeaf() {
			leaves = append(leaves, node.Value)
		}
	}
	assert.Equal(t, []int{3, 4, 5}, leaves)

	require.NoError(t, tree.Delete(1))
	assert.False(t, tree.Find(2).IsLeaf())
	assert.True(t, tree.Find(5).IsLeaf())
	assert.False(t, tree.Root().IsLeaf())
}

func TestInsertShape(t *testing.T) {
	t.Parallel()
	for n := 0; n <= 40; n++ {
		// Descending values, to make sure that placement does
		// not depend on ordering.
		vals := seq(n)
		slices.SortFunc(vals, func(a, b int) bool { return a > b })
		tree := buildTree(vals...)

		nodes := levelOrder(tree)
		require.Len(t, nodes, n)
		require.Equal(t, n, tree.Len())
		for i, node := range nodes {
			// Complete-tree shape: in level-order, node i's
			// children are nodes 2i+1 and 2i+2.
			if l := 2*i + 1; l < n {
				require.Same(t, nodes[l], node.Left, "n=%d i=%d", n, i)
			} else {
				require.Nil(t, node.Left, "n=%d i=%d", n, i)
			}
			if r := 2*i + 2; r < n {
				require.Same(t, nodes[r], node.Right, "n=%d i=%d", n, i)
			} else {
				require.Nil(t, node.Right, "n=%d i=%d", n, i)
			}
			// Values land in insertion order.
			require.Equal(t, vals[i], node.Value)
		}
	}
}

func TestHeight(t *testing.T) {
	t.Parallel()
	type TestCase struct {
		N      int
		Height int
	}
	testcases := map[string]TestCase{
		"empty":     {N: 0, Height: 0},
		"single":    {N: 1, Height: 1},
		"two":       {N: 2, Height: 2},
		"three":     {N: 3, Height: 2},
		"four":      {N: 4, Height: 3},
		"seven":     {N: 7, Height: 3},
		"eight":     {N: 8, Height: 4},
		"fifteen":   {N: 15, Height: 4},
		"sixteen":   {N: 16, Height: 5},
		"hundred":   {N: 100, Height: 7},
		"1023-full": {N: 1023, Height: 10},
	}
	for tcName, tc := range testcases {
		tc := tc
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			tree := buildTree(seq(tc.N)...)
			assert.Equal(t, tc.Height, tree.Height())
			assert.Equal(t, tc.Height, tree.Root().Height())
		})
	}
}

func TestTraversals(t *testing.T) {
	t.Parallel()
	tree := buildTree(1, 2, 3, 4, 5)
	//     1
	//    / \
	//   2   3
	//  / \
	// 4   5
	assert.Equal(t, []int{1, 2, 4, 5, 3}, tree.PreOrder())
	assert.Equal(t, []int{4, 2, 5, 1, 3}, tree.InOrder())
	assert.Equal(t, []int{4, 5, 2, 3, 1}, tree.PostOrder())
}

func TestTraversalsArePermutations(t *testing.T) {
	t.Parallel()
	for n := 0; n <= 33; n++ {
		tree := buildTree(seq(n)...)
		pre, in, post := tree.PreOrder(), tree.InOrder(), tree.PostOrder()
		require.Len(t, pre, n)
		require.Len(t, in, n)
		require.Len(t, post, n)
		slices.Sort(pre)
		slices.Sort(in)
		slices.Sort(post)
		require.Equal(t, seq(n), pre)
		require.Equal(t, pre, in)
		require.Equal(t, pre, post)
	}
}

func TestTraversalsAreFresh(t *testing.T) {
	t.Parallel()
	tree := buildTree("a", "b", "c")
	first := tree.PreOrder()
	first[0] = "z"
	assert.Equal(t, []string{"a", "b", "c"}, tree.PreOrder())
	assert.Equal(t, "a", tree.Root().Value)
}

func TestFind(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, new(Tree[int]).Find(1))
	})
	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, buildTree(seq(10)...).Find(11))
	})
	t.Run("present", func(t *testing.T) {
		t.Parallel()
		tree := buildTree(seq(10)...)
		for _, val := range seq(10) {
			node := tree.Find(val)
			require.NotNil(t, node)
			assert.Equal(t, val, node.Value)
		}
	})
	t.Run("duplicates", func(t *testing.T) {
		t.Parallel()
		//     0
		//    / \
		//   1   9
		//  /
		// 9
		//
		// Depth-first, so the deeper-but-leftward 9 wins over
		// the shallower one.
		tree := buildTree(0, 1, 9, 9)
		assert.Same(t, tree.Root().Left.Left, tree.Find(9))

		tree = buildTree(5, 5, 5)
		assert.Same(t, tree.Root(), tree.Find(5))
	})
}

func TestDeleteMissing(t *testing.T) {
	t.Parallel()
	tree := buildTree(seq(7)...)
	pre, in, post := tree.PreOrder(), tree.InOrder(), tree.PostOrder()

	err := tree.Delete(8)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	var nfErr *NotFoundError[int]
	require.True(t, errors.As(err, &nfErr))
	assert.Equal(t, 8, nfErr.Value)
	assert.Equal(t, "bintree: value 8: node does not exist", err.Error())

	assert.Equal(t, pre, tree.PreOrder())
	assert.Equal(t, in, tree.InOrder())
	assert.Equal(t, post, tree.PostOrder())
	assert.Equal(t, 7, tree.Len())

	assert.ErrorIs(t, new(Tree[int]).Delete(1), ErrNotFound)
}

func TestDeleteSole(t *testing.T) {
	t.Parallel()
	tree := buildTree("x")
	require.NoError(t, tree.Delete("x"))
	assert.Nil(t, tree.Root())
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 0, tree.Height())
	assert.Empty(t, tree.PreOrder())
	assert.Empty(t, tree.InOrder())
	assert.Empty(t, tree.PostOrder())
	assert.Empty(t, tree.Render())

	// The tree is still usable afterward.
	tree.Insert("y")
	assert.Equal(t, []string{"y"}, tree.PreOrder())
}

func TestDelete(t *testing.T) {
	t.Parallel()
	type TestCase struct {
		Insert   []int
		Delete   int
		PreOrder []int
		Len      int
	}
	testcases := map[string]TestCase{
		"root": {
			// chain 1→3→7; 7 replaces 1
			Insert:   seq(7),
			Delete:   1,
			PreOrder: []int{7, 2, 4, 5, 3, 6},
			Len:      6,
		},
		"interior": {
			Insert:   seq(7),
			Delete:   2,
			PreOrder: []int{1, 7, 4, 5, 3, 6},
			Len:      6,
		},
		"leaf": {
			Insert:   seq(7),
			Delete:   4,
			PreOrder: []int{1, 2, 7, 5, 3, 6},
			Len:      6,
		},
		"chain-terminal": {
			Insert:   seq(7),
			Delete:   7,
			PreOrder: []int{1, 2, 4, 5, 3, 6},
			Len:      6,
		},
		"chain-terminal-with-left-child": {
			// chain 1→3, and 3 has a left child (6) which
			// gets dropped along with 3.
			Insert:   seq(6),
			Delete:   4,
			PreOrder: []int{1, 2, 3, 5},
			Len:      4,
		},
		"root-is-chain-terminal": {
			// The root has no right child, so it is
			// detached, taking the whole tree with it.
			Insert:   []int{1, 2},
			Delete:   2,
			PreOrder: []int{},
			Len:      0,
		},
	}
	for tcName, tc := range testcases {
		tc := tc
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			tree := buildTree(tc.Insert...)
			require.NoError(t, tree.Delete(tc.Delete))
			assert.Equal(t, tc.PreOrder, tree.PreOrder())
			assert.Equal(t, tc.Len, tree.Len())
			assert.Len(t, tree.InOrder(), tc.Len)
			assert.Len(t, tree.PostOrder(), tc.Len)
		})
	}
}

func TestDeleteThenInsert(t *testing.T) {
	t.Parallel()
	tree := buildTree(seq(7)...)
	require.NoError(t, tree.Delete(1))
	// 3's right slot is the first empty one in level-order.
	tree.Insert(8)
	assert.Same(t, tree.Root().Right.Right, tree.Find(8))
	assert.Equal(t, []int{7, 2, 4, 5, 3, 6, 8}, tree.PreOrder())
	assert.Equal(t, 7, tree.Len())
}
