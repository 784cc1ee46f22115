// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package search

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// countUpDomain is a toy domain for tests: states are integers, moves add
// 1, 2, or 3. The limit stops move enumeration so unreachable goals
// exhaust the frontier instead of looping forever.
type countUpDomain struct {
	limit int
}

func (d countUpDomain) ID(state int) string {
	return strconv.Itoa(state)
}

func (d countUpDomain) Moves(state int) []int {
	if state >= d.limit {
		return nil
	}
	return []int{1, 2, 3}
}

func (d countUpDomain) Apply(state, move int) int {
	return state + move
}

func TestNewRoot(t *testing.T) {
	root := NewRoot[int, int](countUpDomain{limit: 10}, 0)

	require.Nil(t, root.Parent())
	_, ok := root.Move()
	require.False(t, ok)
	require.Equal(t, 0, root.PathLength())
	require.Equal(t, 0, root.PathDepth())
	require.Empty(t, root.PathToRoot())
	require.Equal(t, "0", root.ID())
}

func TestExpand(t *testing.T) {
	root := NewRoot[int, int](countUpDomain{limit: 10}, 0)

	children := root.Expand()
	require.Len(t, children, 3)

	for i, child := range children {
		require.Same(t, root, child.Parent())
		move, ok := child.Move()
		require.True(t, ok)
		require.Equal(t, i+1, move)
		require.Equal(t, i+1, child.State())
		require.Equal(t, 1, child.PathLength())
		require.Equal(t, 1, child.PathDepth())
	}
}

func TestExpandAtLimit(t *testing.T) {
	root := NewRoot[int, int](countUpDomain{limit: 10}, 10)
	require.Empty(t, root.Expand())
}

func TestPathAccumulation(t *testing.T) {
	root := NewRoot[int, int](countUpDomain{limit: 100}, 0)

	// Walk a fixed chain: always take the third move (+3).
	node := root
	for i := 0; i < 4; i++ {
		node = node.Expand()[2]
	}

	require.Equal(t, 12, node.State())
	require.Equal(t, 4, node.PathLength())
	require.Equal(t, 4, node.PathDepth())
	require.Equal(t, []int{3, 3, 3, 3}, node.PathToRoot())
}

// TestPathMemoizedMidChain forces memoization partway up the chain and
// checks the remainder still resolves against the cached prefix.
func TestPathMemoizedMidChain(t *testing.T) {
	root := NewRoot[int, int](countUpDomain{limit: 100}, 0)
	mid := root.Expand()[0].Expand()[0]
	require.Equal(t, 2, mid.PathLength())

	leaf := mid.Expand()[1]
	require.Equal(t, 3, leaf.PathLength())
	require.Equal(t, 3, leaf.PathDepth())
	require.Equal(t, []int{1, 1, 2}, leaf.PathToRoot())
}

func TestEqualAndLess(t *testing.T) {
	domain := countUpDomain{limit: 10}
	root := NewRoot[int, int](domain, 0)

	// State 3 is reachable as 1+2 and as a single move of 3; the nodes
	// differ but the logical state is the same.
	viaOne := root.Expand()[0].Expand()[1]
	direct := root.Expand()[2]
	require.Equal(t, 3, viaOne.State())
	require.True(t, viaOne.Equal(direct))
	require.False(t, viaOne.Equal(root))

	// Ordering is by identity key, which is a string compare.
	a := NewRoot[int, int](domain, 2)
	b := NewRoot[int, int](domain, 10)
	require.True(t, b.Less(a)) // "10" < "2"
}
