// This file provides the read-only convenience methods on Graph:
// cloning and size accessors.

package core

// Clone returns a deep copy of g: the node and edge slices are freshly
// allocated, so mutating the clone never affects the original.
// Cloning a nil graph returns nil.
//
// Complexity: O(V + E).
func (g *Graph[T]) Clone() *Graph[T] {
	if g == nil {
		return nil
	}

	return NewGraph(g.Nodes, g.Edges)
}

// NodeCount returns the number of declared node entries, duplicates
// included.
func (g *Graph[T]) NodeCount() int {
	return len(g.Nodes)
}

// EdgeCount returns the number of declared edges, duplicates included.
func (g *Graph[T]) EdgeCount() int {
	return len(g.Edges)
}
