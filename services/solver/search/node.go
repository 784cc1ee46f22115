// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package search implements a generic best-first (A*) search over an
// abstract state space.
//
// The engine knows nothing about the states it explores. A Domain supplies
// the three capabilities it needs: a stable identity key (used for
// deduplication and deterministic tie-breaking), move enumeration, and move
// application. Goal test and heuristic are supplied per engine.
//
// # Thread Safety
//
// An Engine call owns its frontier, best-known map, and frontier-membership
// set exclusively; nothing is shared across calls and there is no
// process-wide state. Concurrent searches are safe as long as each uses its
// own Engine. Node is NOT safe for concurrent use (lazy memoization).
package search

// Domain supplies the capabilities that make an opaque state searchable.
//
// Implementations must guarantee termination of the search by shrinking the
// state with every move (the reachable identity-key set must be finite).
type Domain[S, M any] interface {
	// ID returns a canonical, comparable key for the state. Two states with
	// equal keys are the same logical state and are interchangeable for
	// deduplication, even if their payloads differ superficially (e.g.
	// different orderings of an unordered multiset).
	ID(state S) string

	// Moves enumerates every legal move from the state.
	Moves(state S) []M

	// Apply returns the state that results from making the move. The input
	// state must not be mutated.
	Apply(state S, move M) S
}

// moveCost is the uniform cost of a single move. No domain currently
// supplies a custom per-move cost.
const moveCost = 1

// Node wraps a domain state together with the bookkeeping the engine needs:
// parent linkage, the generating move, and memoized path length, depth, and
// heuristic. Nodes are immutable once built apart from the memo fields.
type Node[S, M any] struct {
	domain Domain[S, M]
	state  S

	parent  *Node[S, M]
	move    M
	hasMove bool

	id     string
	idDone bool

	pathLength     int
	pathLengthDone bool

	pathDepth     int
	pathDepthDone bool

	h     int
	hDone bool
}

// NewRoot builds the root node for a search. It has no parent, no move,
// and path length and depth of zero.
func NewRoot[S, M any](domain Domain[S, M], state S) *Node[S, M] {
	return &Node[S, M]{domain: domain, state: state}
}

// State returns the wrapped domain state.
func (n *Node[S, M]) State() S {
	return n.state
}

// Parent returns the parent node, or nil for the root.
func (n *Node[S, M]) Parent() *Node[S, M] {
	return n.parent
}

// Move returns the move that produced this node, and false for the root.
func (n *Node[S, M]) Move() (M, bool) {
	return n.move, n.hasMove
}

// ID returns the memoized identity key of the underlying state.
func (n *Node[S, M]) ID() string {
	if !n.idDone {
		n.id = n.domain.ID(n.state)
		n.idDone = true
	}
	return n.id
}

// Equal reports whether two nodes represent the same logical state.
func (n *Node[S, M]) Equal(other *Node[S, M]) bool {
	return n.ID() == other.ID()
}

// Less orders nodes by identity key. The engine uses it only to break ties
// between equal priorities, which keeps the expansion order reproducible
// for identical inputs.
func (n *Node[S, M]) Less(other *Node[S, M]) bool {
	return n.ID() < other.ID()
}

// Expand applies every legal move to produce the child nodes, each stamped
// with this node as parent and the move that generated it. The result is
// finite because domains shrink their state with every move.
func (n *Node[S, M]) Expand() []*Node[S, M] {
	moves := n.domain.Moves(n.state)
	children := make([]*Node[S, M], 0, len(moves))
	for _, move := range moves {
		children = append(children, &Node[S, M]{
			domain:  n.domain,
			state:   n.domain.Apply(n.state, move),
			parent:  n,
			move:    move,
			hasMove: true,
		})
	}
	return children
}

// PathLength returns the accumulated cost from the root, memoized. The
// walk up the parent chain is iterative; chains are short (bounded by the
// move count) but recursion depth should not be a design assumption.
func (n *Node[S, M]) PathLength() int {
	if n.pathLengthDone {
		return n.pathLength
	}

	var chain []*Node[S, M]
	cur := n
	for cur != nil && !cur.pathLengthDone {
		chain = append(chain, cur)
		cur = cur.parent
	}

	base := 0
	if cur != nil {
		base = cur.pathLength
	}
	for i := len(chain) - 1; i >= 0; i-- {
		node := chain[i]
		if node.parent == nil {
			node.pathLength = 0
		} else {
			node.pathLength = base + moveCost
		}
		node.pathLengthDone = true
		base = node.pathLength
	}
	return n.pathLength
}

// PathDepth returns the number of edges from the root, memoized.
func (n *Node[S, M]) PathDepth() int {
	if n.pathDepthDone {
		return n.pathDepth
	}

	var chain []*Node[S, M]
	cur := n
	for cur != nil && !cur.pathDepthDone {
		chain = append(chain, cur)
		cur = cur.parent
	}

	base := 0
	if cur != nil {
		base = cur.pathDepth
	}
	for i := len(chain) - 1; i >= 0; i-- {
		node := chain[i]
		if node.parent == nil {
			node.pathDepth = 0
		} else {
			node.pathDepth = base + 1
		}
		node.pathDepthDone = true
		base = node.pathDepth
	}
	return n.pathDepth
}

// PathToRoot returns the moves from the root to this node, oldest first.
// The root yields an empty path.
func (n *Node[S, M]) PathToRoot() []M {
	var moves []M
	for cur := n; cur.parent != nil; cur = cur.parent {
		moves = append(moves, cur.move)
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}

// heuristicFor returns the memoized heuristic estimate, computing it with h
// on first call.
func (n *Node[S, M]) heuristicFor(h func(S) int) int {
	if !n.hDone {
		n.h = h(n.state)
		n.hDone = true
	}
	return n.h
}
