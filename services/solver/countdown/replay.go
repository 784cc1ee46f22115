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

	"github.com/AleutianAI/countdown/services/solver/expr"
)

// replay rebuilds the expression tree that mirrors a move path.
//
// A live pool of expressions starts as one literal per original number.
// Each move consumes the two pool entries whose values match its operands
// and inserts the composed expression, tracking the numeric state
// transitions exactly. The result is the remaining expression closest to
// the target, which covers both the depleted-to-one case and residual
// unused numbers when a non-strict tolerance ended the search early.
//
// An empty path means a starting number was already within tolerance; the
// closest original literal is then the whole solution.
func (g *Game) replay(path []Move) (*Solution, error) {
	pool := make([]*expr.Expr, 0, len(g.numbers))
	for _, n := range g.numbers {
		pool = append(pool, expr.Literal(n))
	}

	for _, move := range path {
		e1, err := extract(&pool, move.A)
		if err != nil {
			return nil, fmt.Errorf("countdown: replay %q: %w", move, err)
		}
		e2, err := extract(&pool, move.B)
		if err != nil {
			return nil, fmt.Errorf("countdown: replay %q: %w", move, err)
		}

		combined, err := expr.Compose(e1, e2, move.Op)
		if err != nil {
			// Unreachable for moves the domain generated, but the replay
			// does not assume its input came from this process.
			return nil, fmt.Errorf("countdown: replay %q: %w", move, err)
		}
		pool = append(pool, combined)
	}

	best := closest(pool, g.target)
	return &Solution{
		Path:     path,
		Expr:     best,
		Rendered: best.String(),
		Value:    best.Value(),
	}, nil
}

// extract removes and returns the first pool expression evaluating to val.
func extract(pool *[]*expr.Expr, val int) (*expr.Expr, error) {
	for i, e := range *pool {
		if e.Value() == val {
			*pool = append((*pool)[:i], (*pool)[i+1:]...)
			return e, nil
		}
	}
	return nil, fmt.Errorf("no available expression with value %d", val)
}

// closest returns the expression whose value is nearest the target.
// Distance ties resolve to the smaller value; remaining ties keep the
// earliest entry.
func closest(exprs []*expr.Expr, target int) *expr.Expr {
	best := exprs[0]
	bestDiff := abs(best.Value() - target)
	for _, e := range exprs[1:] {
		diff := abs(e.Value() - target)
		if diff < bestDiff || (diff == bestDiff && e.Compare(best) < 0) {
			best = e
			bestDiff = diff
		}
	}
	return best
}
