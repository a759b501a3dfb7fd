// This file implements Sort (Kahn's algorithm) and the IsAcyclic
// convenience predicate.

package toposort

import (
	"github.com/tampopo/tampopo/core"
)

// Sort computes a topological ordering of g's nodes: a sequence in which
// every edge's From appears strictly before its To.
//
// If g is nil, returns ErrNilGraph.
// If an edge references a node absent from g.Nodes, returns *UnknownNodeError.
// If the graph contains a cycle, returns *CycleError listing the nodes
// that could not be ordered.
//
// The output is deterministic: ties are broken by declaration order in
// g.Nodes, and an acyclic graph with no edges sorts to exactly g.Nodes.
// Sort never mutates g.
func Sort[T comparable](g *core.Graph[T]) ([]T, error) {
	// 1. Validate graph pointer.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2. Seed the indegree map with every declared node at zero,
	//    deduplicating by equality. The order slice records the distinct
	//    nodes in declaration order and is the tie-break authority below.
	indegree := make(map[T]int, len(g.Nodes))
	order := make([]T, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		if _, seen := indegree[n]; seen {
			continue
		}
		indegree[n] = 0
		order = append(order, n)
	}

	// 3. Build the adjacency map (edge declaration order preserved) and
	//    count indegrees. Endpoints missing from the indegree map were
	//    never declared; reject the graph rather than invent a node.
	adjacency := make(map[T][]T, len(order))
	for _, e := range g.Edges {
		if _, ok := indegree[e.From]; !ok {
			return nil, &UnknownNodeError[T]{Node: e.From, Edge: e}
		}
		if _, ok := indegree[e.To]; !ok {
			return nil, &UnknownNodeError[T]{Node: e.To, Edge: e}
		}
		adjacency[e.From] = append(adjacency[e.From], e.To)
		indegree[e.To]++
	}

	// 4. Seed the FIFO ready queue with all zero-indegree nodes, in
	//    declaration order. A slice with a moving head is enough: nodes
	//    are enqueued at most once each.
	queue := make([]T, 0, len(order))
	for _, n := range order {
		if indegree[n] == 0 {
			queue = append(queue, n)
		}
	}

	// 5. Drain the queue: emit each ready node, release its targets, and
	//    enqueue any target whose last incoming edge was just released.
	//    A self-loop keeps its own indegree above zero here, so the node
	//    is never enqueued and surfaces in the cycle report.
	sorted := make([]T, 0, len(order))
	for head := 0; head < len(queue); head++ {
		n := queue[head]
		sorted = append(sorted, n)
		for _, m := range adjacency[n] {
			indegree[m]--
			if indegree[m] == 0 {
				queue = append(queue, m)
			}
		}
	}

	// 6. Every distinct node emitted means a complete order. Anything
	//    left with a positive indegree sits on, or behind, a cycle.
	if len(sorted) == len(order) {
		return sorted, nil
	}

	remaining := make([]T, 0, len(order)-len(sorted))
	for _, n := range order {
		if indegree[n] > 0 {
			remaining = append(remaining, n)
		}
	}

	return nil, &CycleError[T]{Remaining: remaining}
}

// IsAcyclic reports whether g admits a topological order, i.e. whether
// Sort(g) would succeed. Note that a nil graph or a graph with a dangling
// edge endpoint also reports false.
func IsAcyclic[T comparable](g *core.Graph[T]) bool {
	_, err := Sort(g)

	return err == nil
}
