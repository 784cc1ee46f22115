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
	"runtime"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/countdown/pkg/ux"
	"github.com/AleutianAI/countdown/services/solver/countdown"
)

// =============================================================================
// FLAGS
// =============================================================================

var (
	benchCount       int
	benchConcurrency int
	benchSeed        int64
	benchJSON        bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Solve a batch of random instances and report statistics",
	Long: `Bench generates random instances the standard way and solves them
concurrently, one engine per instance. Useful for gauging solver throughput
and how often instances need a widened tolerance.`,
	Run: runBench,
}

func init() {
	benchCmd.Flags().IntVarP(&benchCount, "count", "n", 20, "number of instances to solve")
	benchCmd.Flags().IntVarP(&benchConcurrency, "concurrency", "c", runtime.NumCPU(), "maximum instances solved in parallel")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 1, "random seed for instance generation")
	benchCmd.Flags().BoolVar(&benchJSON, "json", false, "emit the results as JSON")
}

// benchInstance is one generated problem plus its outcome.
type benchInstance struct {
	Numbers   []int  `json:"numbers"`
	Target    int    `json:"target"`
	Solved    bool   `json:"solved"`
	Value     int    `json:"value,omitempty"`
	Tolerance int    `json:"tolerance"`
	Elapsed   string `json:"elapsed"`

	elapsed time.Duration
}

// benchOutput is the --json payload for a bench run.
type benchOutput struct {
	Count     int             `json:"count"`
	Exact     int             `json:"exact"`
	Close     int             `json:"close"`
	Failed    int             `json:"failed"`
	Wall      string          `json:"wall"`
	Instances []benchInstance `json:"instances"`
}

func runBench(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		OutputError(err, benchJSON)
	}
	if benchCount <= 0 {
		OutputError(fmt.Errorf("count must be positive, got %d", benchCount), benchJSON)
	}
	if benchConcurrency <= 0 {
		benchConcurrency = 1
	}

	logger := newLogger(cfg)
	defer func() { _ = logger.Close() }()

	// Generate up front so instances depend only on the seed, not on
	// goroutine scheduling.
	rng := rand.New(rand.NewSource(benchSeed))
	instances := make([]benchInstance, benchCount)
	for i := range instances {
		large := cfg.Game.LargeCount
		if large < 0 {
			large = countdown.RandomLargeCount(rng)
		}
		numbers, genErr := countdown.GenerateNumbers(rng, large)
		if genErr != nil {
			OutputError(genErr, benchJSON)
		}
		instances[i] = benchInstance{
			Numbers: numbers,
			Target:  countdown.GenerateTarget(rng),
		}
	}

	var progress *ux.ProgressSpinner
	if !benchJSON {
		progress = ux.NewProgressSpinner("solving", benchCount)
		progress.Start()
	}

	wallStart := time.Now()
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(benchConcurrency)
	for i := range instances {
		g.Go(func() error {
			inst := &instances[i]
			game, gameErr := countdown.NewGame(inst.Numbers, inst.Target,
				countdown.WithMaxDepth(cfg.Search.MaxDepth),
				countdown.WithLogger(logger.Slog()),
			)
			if gameErr != nil {
				return gameErr
			}
			start := time.Now()
			for tolerance := cfg.Retry.InitialTolerance; ; tolerance++ {
				sol, solveErr := game.Solve(ctx, tolerance)
				if solveErr == nil {
					inst.Solved = true
					inst.Value = sol.Value
					inst.Tolerance = tolerance
					break
				}
				if !errors.Is(solveErr, countdown.ErrNoSolution) {
					return solveErr
				}
				if tolerance >= cfg.Retry.MaxTolerance {
					inst.Tolerance = tolerance
					break
				}
			}
			inst.elapsed = time.Since(start)
			inst.Elapsed = inst.elapsed.String()
			if progress != nil {
				progress.Increment()
			}
			return nil
		})
	}
	err = g.Wait()
	if progress != nil {
		progress.Stop()
	}
	if err != nil {
		OutputError(err, benchJSON)
	}
	wall := time.Since(wallStart)

	exact, near, failed := 0, 0, 0
	for _, inst := range instances {
		switch {
		case inst.Solved && inst.Value == inst.Target:
			exact++
		case inst.Solved:
			near++
		default:
			failed++
		}
	}

	if benchJSON {
		_ = OutputJSON(CommandResult{Success: failed == 0, Data: benchOutput{
			Count:     benchCount,
			Exact:     exact,
			Close:     near,
			Failed:    failed,
			Wall:      wall.String(),
			Instances: instances,
		}})
	} else {
		ux.Title(fmt.Sprintf("%d instances in %s (%d workers)",
			benchCount, wall.Round(time.Millisecond), benchConcurrency))
		fmt.Printf("  exact %s   close %s   failed %s\n",
			ux.Number(strconv.Itoa(exact)), ux.Number(strconv.Itoa(near)), ux.Target(strconv.Itoa(failed)))
	}
	if failed > 0 {
		os.Exit(CLIExitNoSolution)
	}
}
