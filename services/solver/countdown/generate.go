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
	"fmt"
	"math/rand"
)

// largePool holds the four classic "large" numbers. The small pool is two
// copies of 1 through 10.
var largePool = []int{25, 50, 75, 100}

// GenerateNumbers draws a six-number puzzle instance.
//
// Inputs:
//   - rng: Randomness source. Seed it for reproducible instances.
//   - nLarge: How many large numbers to include, in [0, 4]. The remaining
//     slots are drawn from two copies of 1..10 without replacement.
//
// Outputs:
//   - []int: The six numbers, large first.
//   - error: Non-nil if nLarge is out of range.
func GenerateNumbers(rng *rand.Rand, nLarge int) ([]int, error) {
	if nLarge < 0 || nLarge > len(largePool) {
		return nil, fmt.Errorf("countdown: large count must be in [0, %d], got %d", len(largePool), nLarge)
	}
	nSmall := 6 - nLarge

	numbers := make([]int, 0, 6)
	for _, idx := range rng.Perm(len(largePool))[:nLarge] {
		numbers = append(numbers, largePool[idx])
	}
	// Two copies of 1..10: index i maps to value i%10 + 1.
	for _, idx := range rng.Perm(20)[:nSmall] {
		numbers = append(numbers, idx%10+1)
	}
	return numbers, nil
}

// GenerateTarget draws a target uniformly from [101, 999].
func GenerateTarget(rng *rand.Rand) int {
	return 101 + rng.Intn(899)
}

// RandomLargeCount draws a large-number count uniformly from [0, 4].
func RandomLargeCount(rng *rand.Rand) int {
	return rng.Intn(len(largePool) + 1)
}
