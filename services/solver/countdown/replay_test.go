// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package countdown

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/countdown/services/solver/expr"
)

func TestReplayRebuildsExpression(t *testing.T) {
	game, err := NewGame([]int{25, 4, 50}, 50)
	require.NoError(t, err)

	sol, err := game.replay([]Move{
		{A: 25, Op: expr.OpMul, B: 4},
		{A: 100, Op: expr.OpSub, B: 50},
	})
	require.NoError(t, err)
	require.Equal(t, 50, sol.Value)
	require.Equal(t, "25 * 4 - 50", sol.Rendered)
}

func TestReplayEmptyPathPicksClosestLiteral(t *testing.T) {
	game, err := NewGame([]int{3, 40, 90}, 42)
	require.NoError(t, err)

	sol, err := game.replay(nil)
	require.NoError(t, err)
	require.Equal(t, 40, sol.Value)
	require.Equal(t, "40", sol.Rendered)
	require.Empty(t, sol.Path)
}

func TestReplayLeftoverNumbers(t *testing.T) {
	// A move path can stop early when an intermediate result hits the
	// target; the unused numbers stay in the pool and the closest
	// expression wins.
	game, err := NewGame([]int{6, 7, 100}, 42)
	require.NoError(t, err)

	sol, err := game.replay([]Move{{A: 6, Op: expr.OpMul, B: 7}})
	require.NoError(t, err)
	require.Equal(t, 42, sol.Value)
	require.Equal(t, "6 * 7", sol.Rendered)
}

func TestReplayUnknownOperand(t *testing.T) {
	game, err := NewGame([]int{2, 3}, 6)
	require.NoError(t, err)

	_, err = game.replay([]Move{{A: 5, Op: expr.OpMul, B: 3}})
	require.Error(t, err)
}

func TestReplayDistanceTieBreaksLow(t *testing.T) {
	// 40 and 44 are both two away from 42; the smaller value wins.
	game, err := NewGame([]int{40, 44}, 42)
	require.NoError(t, err)

	sol, err := game.replay(nil)
	require.NoError(t, err)
	require.Equal(t, 40, sol.Value)
}
