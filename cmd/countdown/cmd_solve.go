// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/countdown/pkg/ux"
	"github.com/AleutianAI/countdown/services/solver/countdown"
	"github.com/AleutianAI/countdown/services/solver/search"
)

// =============================================================================
// FLAGS
// =============================================================================

var (
	solveTarget       int
	solveTolerance    int
	solveMaxTolerance int
	solveMaxDepth     int
	solveLarge        int
	solveSeed         int64
	solveJSON         bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [numbers...]",
	Short: "Solve a numbers game instance",
	Long: `Solve searches for a sequence of arithmetic operations combining the
given numbers into the target. When no exact solution exists the tolerance is
widened one step at a time until a solution is found or the maximum tolerance
is exhausted.

With no number arguments a random instance is generated: six numbers drawn
the standard way (large from 25/50/75/100, small from two copies each of
1-10) and a target in 101-999.`,
	Run: runSolve,
}

func init() {
	solveCmd.Flags().IntVarP(&solveTarget, "target", "t", -1, "target value (generated when omitted)")
	solveCmd.Flags().IntVar(&solveTolerance, "tolerance", -1, "initial tolerance (default from config)")
	solveCmd.Flags().IntVar(&solveMaxTolerance, "max-tolerance", -1, "maximum tolerance before giving up (default from config)")
	solveCmd.Flags().IntVar(&solveMaxDepth, "max-depth", -1, "maximum search depth, 0 for unbounded (default from config)")
	solveCmd.Flags().IntVar(&solveLarge, "large", -2, "count of large numbers when generating, 0-4 or -1 for random (default from config)")
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 0, "random seed for instance generation (0 uses the clock)")
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "emit the result as JSON")
}

// solveOutput is the --json payload for a solve run.
type solveOutput struct {
	Input     []int               `json:"numbers"`
	Target    int                 `json:"target"`
	Tolerance int                 `json:"tolerance"`
	Solution  *countdown.Solution `json:"solution,omitempty"`
	Distance  int                 `json:"distance"`
	Elapsed   string              `json:"elapsed"`
}

func runSolve(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		OutputError(err, solveJSON)
	}

	logger := newLogger(cfg)
	defer func() { _ = logger.Close() }()

	numbers, err := parseNumbers(args)
	if err != nil {
		OutputError(err, solveJSON)
	}

	seed := solveSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	if len(numbers) == 0 {
		large := cfg.Game.LargeCount
		if solveLarge != -2 {
			large = solveLarge
		}
		if large < 0 {
			large = countdown.RandomLargeCount(rng)
		}
		numbers, err = countdown.GenerateNumbers(rng, large)
		if err != nil {
			OutputError(err, solveJSON)
		}
	}

	target := solveTarget
	if target < 0 {
		target = countdown.GenerateTarget(rng)
	}

	tolerance := cfg.Retry.InitialTolerance
	if solveTolerance >= 0 {
		tolerance = solveTolerance
	}
	maxTolerance := cfg.Retry.MaxTolerance
	if solveMaxTolerance >= 0 {
		maxTolerance = solveMaxTolerance
	}
	maxDepth := cfg.Search.MaxDepth
	if solveMaxDepth >= 0 {
		maxDepth = solveMaxDepth
	}

	tracer := search.NewTracer(logger.Slog(), cfg.Observability.TracingEnabled)
	game, err := countdown.NewGame(numbers, target,
		countdown.WithMaxDepth(maxDepth),
		countdown.WithLogger(logger.Slog()),
		countdown.WithTracer(tracer),
	)
	if err != nil {
		OutputError(err, solveJSON)
	}

	if !solveJSON {
		fmt.Printf("reaching %s from %s\n",
			ux.Target(strconv.Itoa(target)), ux.Number(fmt.Sprint(numbers)))
	}

	start := time.Now()
	ctx := context.Background()
	for {
		sol, err := game.Solve(ctx, tolerance)
		if err == nil {
			reportSolution(numbers, target, tolerance, sol, time.Since(start))
			os.Exit(CLIExitSuccess)
		}
		if !errors.Is(err, countdown.ErrNoSolution) {
			OutputError(err, solveJSON)
		}
		if tolerance >= maxTolerance {
			reportFailure(numbers, target, maxTolerance, time.Since(start))
			os.Exit(CLIExitNoSolution)
		}
		if !solveJSON {
			ux.Muted(fmt.Sprintf("no solution within %d, widening tolerance", tolerance))
		}
		tolerance++
	}
}

// parseNumbers converts positional args to the starting numbers.
func parseNumbers(args []string) ([]int, error) {
	numbers := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", a, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("numbers must be positive, got %d", n)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

func reportSolution(numbers []int, target, tolerance int, sol *countdown.Solution, elapsed time.Duration) {
	if solveJSON {
		distance := sol.Value - target
		if distance < 0 {
			distance = -distance
		}
		_ = OutputJSON(CommandResult{Success: true, Data: solveOutput{
			Input:     numbers,
			Target:    target,
			Tolerance: tolerance,
			Solution:  sol,
			Distance:  distance,
			Elapsed:   elapsed.String(),
		}})
		return
	}

	for _, m := range sol.Path {
		fmt.Printf("  %s\n", ux.Number(m.String()))
	}
	if sol.Value == target {
		ux.Success(fmt.Sprintf("%s = %d  (%s)",
			sol.Rendered, sol.Value, elapsed.Round(time.Millisecond)))
	} else {
		ux.Warning(fmt.Sprintf("%s = %d, off by %d  (%s)",
			sol.Rendered, sol.Value, absInt(sol.Value-target), elapsed.Round(time.Millisecond)))
	}
}

func reportFailure(numbers []int, target, maxTolerance int, elapsed time.Duration) {
	if solveJSON {
		_ = OutputJSON(CommandResult{
			Success: false,
			Data: solveOutput{
				Input:     numbers,
				Target:    target,
				Tolerance: maxTolerance,
				Distance:  -1,
				Elapsed:   elapsed.String(),
			},
			Error: fmt.Sprintf("no solution for %v within tolerance %d of %d", numbers, maxTolerance, target),
		})
		return
	}
	ux.Error(fmt.Sprintf("no solution for %v within tolerance %d of %d (%s)",
		numbers, maxTolerance, target, elapsed.Round(time.Millisecond)))
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
