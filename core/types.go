// This file declares the Edge and Graph value types and the NewGraph
// constructor.

package core

// Edge represents a directed precedence constraint between two nodes.
//
// The pair is ordered: From must appear before To in any valid
// topological ordering of the enclosing graph.
type Edge[T comparable] struct {
	// From is the node that must precede To.
	From T

	// To is the node that depends on From.
	To T
}

// Graph is a directed graph over nodes of any comparable type T.
//
// Nodes holds every declared node in insertion order; Edges holds the
// precedence pairs in declaration order. Both orders are significant:
// algorithms that consume a Graph use them as deterministic tie-breakers.
//
// Every node referenced by an edge should also appear in Nodes; the
// consuming algorithm defines what happens when one does not (toposort
// rejects such graphs with a distinct error). Duplicate entries in Nodes
// are a caller mistake but are tolerated — consumers deduplicate by
// equality, and the first occurrence fixes the node's position.
type Graph[T comparable] struct {
	// Nodes lists all declared nodes, insertion order preserved.
	Nodes []T

	// Edges lists all directed edges, declaration order preserved.
	Edges []Edge[T]
}

// NewGraph returns a Graph holding copies of the given node and edge
// sequences. Copying keeps the graph insulated from later mutation of the
// caller's slices. Construction never fails; nil slices yield a valid
// empty graph.
func NewGraph[T comparable](nodes []T, edges []Edge[T]) *Graph[T] {
	g := &Graph[T]{
		Nodes: make([]T, len(nodes)),
		Edges: make([]Edge[T], len(edges)),
	}
	copy(g.Nodes, nodes)
	copy(g.Edges, edges)

	return g
}
