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
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// newCountUpEngine builds an engine over countUpDomain reaching for target.
// The heuristic is admissible: at most 3 per move.
func newCountUpEngine(t *testing.T, limit, target int, opts ...Option[int, int]) *Engine[int, int] {
	t.Helper()
	goal := func(n *Node[int, int]) bool { return n.State() == target }
	heuristic := func(s int) int {
		if s >= target {
			return 0
		}
		return (target - s + 2) / 3
	}
	e, err := New[int, int](countUpDomain{limit: limit}, goal, heuristic, opts...)
	require.NoError(t, err)
	return e
}

func TestNewValidation(t *testing.T) {
	domain := countUpDomain{limit: 10}
	goal := func(n *Node[int, int]) bool { return false }
	heuristic := func(s int) int { return 0 }

	_, err := New[int, int](nil, goal, heuristic)
	require.Error(t, err)

	_, err = New[int, int](domain, nil, heuristic)
	require.Error(t, err)

	_, err = New[int, int](domain, goal, nil)
	require.Error(t, err)
}

func TestSearchFindsOptimalPath(t *testing.T) {
	e := newCountUpEngine(t, 20, 7)

	res := e.Search(context.Background(), 0)

	require.True(t, res.Found)
	require.NotEmpty(t, res.RunID)
	// 7 needs at least ceil(7/3) = 3 moves.
	require.Len(t, res.Path, 3)
	sum := 0
	for _, m := range res.Path {
		sum += m
	}
	require.Equal(t, 7, sum)
	require.Positive(t, res.Generated)
}

func TestSearchRootIsGoal(t *testing.T) {
	e := newCountUpEngine(t, 20, 0)

	res := e.Search(context.Background(), 0)

	require.True(t, res.Found)
	require.Empty(t, res.Path)
	require.Zero(t, res.Expanded)
}

func TestSearchExhaustsWithoutGoal(t *testing.T) {
	e := newCountUpEngine(t, 10, 100)

	res := e.Search(context.Background(), 0)

	require.False(t, res.Found)
	require.Nil(t, res.Path)
	require.Positive(t, res.Expanded)
}

func TestSearchDeterministic(t *testing.T) {
	first := newCountUpEngine(t, 50, 23).Search(context.Background(), 0)
	second := newCountUpEngine(t, 50, 23).Search(context.Background(), 0)

	require.True(t, first.Found)
	require.Equal(t, first.Path, second.Path)
	require.Equal(t, first.Expanded, second.Expanded)
	require.Equal(t, first.Generated, second.Generated)
}

func TestSearchDeduplicatesStates(t *testing.T) {
	// Many move sequences reach the same integer; the frontier and
	// best-known maps must keep out the duplicates.
	res := newCountUpEngine(t, 30, 25).Search(context.Background(), 0)

	require.True(t, res.Found)
	require.Positive(t, res.DiscardedWorse+res.DiscardedInFrontier)
}

func TestSearchMaxDepth(t *testing.T) {
	// Two moves allowed, three needed: the bound makes 7 unreachable.
	e := newCountUpEngine(t, 20, 7, WithMaxDepth[int, int](2))

	res := e.Search(context.Background(), 0)

	require.False(t, res.Found)
	require.Positive(t, res.DiscardedDepth)
}

func TestSearchMaxDepthExactFit(t *testing.T) {
	// Depth 4 admits nodes up to three moves deep, which is exactly enough.
	e := newCountUpEngine(t, 20, 7, WithMaxDepth[int, int](4))

	res := e.Search(context.Background(), 0)

	require.True(t, res.Found)
	require.Len(t, res.Path, 3)
}

func TestSearchZeroHeuristic(t *testing.T) {
	// A zero heuristic degrades to uniform-cost search and still finds the
	// same optimal path length.
	goal := func(n *Node[int, int]) bool { return n.State() == 9 }
	e, err := New[int, int](countUpDomain{limit: 20}, goal, func(int) int { return 0 })
	require.NoError(t, err)

	res := e.Search(context.Background(), 0)

	require.True(t, res.Found)
	require.Len(t, res.Path, 3)
}
