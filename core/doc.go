// Package core provides the graph model shared by the tampopo algorithm
// packages: a minimal, generic, in-memory representation of a directed
// graph as an ordered node sequence plus an ordered edge sequence.
//
// What:
//
//   - Edge[T]:  an ordered pair From→To meaning "From must precede To"
//   - Graph[T]: the node slice (insertion order preserved) and the edge
//     slice (declaration order preserved)
//   - NewGraph: copying constructor, so later mutation of the caller's
//     slices cannot alias into the graph
//   - Clone:    deep copy of an existing graph
//
// Why:
//
//   - Declaration order is significant — consumers such as toposort break
//     ties by it, which is what makes their output reproducible across
//     runs and platforms. An unordered set representation would lose that.
//   - Node identity is plain Go equality: T is constrained to comparable,
//     so any label type (string, int, small struct) works in maps and
//     sets without an interface hierarchy.
//
// Construction never fails and performs no validation; structural checks
// (dangling edge endpoints, cycles) belong to the consuming algorithm,
// which can report them with full context. The zero value Graph[T]{} is a
// valid empty graph.
//
// Graph values are not synchronized. Build a graph fully, then share it
// read-only; every tampopo algorithm treats its input as immutable.
package core
