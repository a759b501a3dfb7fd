// Package toposort computes a topological ordering of a directed graph
// using Kahn's algorithm, reporting a cycle when no such ordering exists.
//
// What:
//
//   - Sort: returns a total order of the graph's nodes in which every
//     edge's From appears strictly before its To, or fails with
//     ErrCycleDetected / ErrUnknownNode.
//   - IsAcyclic: convenience predicate, true iff Sort would succeed.
//
// Why:
//
//   - Order dependency-declared work: template-generation steps, task
//     schedulers, build stages, package installation.
//   - Reject circular declarations early — a cyclic graph has no valid
//     total order, and guessing one would be incorrect.
//
// Determinism:
//
// The ready queue is a FIFO seeded with the zero-indegree nodes in the
// order they appear in Graph.Nodes, and each node's targets are visited
// in edge declaration order. Ties are therefore broken by declaration
// order, never by map iteration, so identical inputs always produce
// identical output across runs and platforms.
//
// Fixed policies (see the individual tests for each):
//
//   - A self-loop (x, x) is a one-node cycle.
//   - An edge endpoint absent from Graph.Nodes rejects the graph with
//     ErrUnknownNode — never silently dropped, never reported as a cycle.
//   - Duplicate entries in Graph.Nodes are deduplicated by equality; the
//     first occurrence fixes the node's tie-break position.
//   - Duplicate edges are tolerated: each occurrence increments and later
//     decrements the target's indegree, so they cancel out.
//
// Complexity:
//
//   - Time:   O(V + E) (each node and edge processed once)
//   - Memory: O(V + E) (indegree map, adjacency map, queue)
//
// Errors:
//
//   - ErrNilGraph       graph pointer is nil
//   - ErrCycleDetected  the graph contains at least one cycle; the
//     returned *CycleError lists every node left unordered
//   - ErrUnknownNode    an edge references a node not declared in Nodes;
//     the returned *UnknownNodeError names the endpoint and its edge
//
// Sort is a pure function: it never mutates its input, keeps no state
// between calls, and may be invoked concurrently on independent graphs
// without coordination.
package toposort
