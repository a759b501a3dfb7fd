package toposort

import (
	"errors"
	"fmt"

	"github.com/tampopo/tampopo/core"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed to Sort.
	ErrNilGraph = errors.New("toposort: graph is nil")

	// ErrCycleDetected indicates the graph contains at least one cycle and
	// therefore has no topological order. Match with errors.Is; retrieve
	// the unordered node set via errors.As with *CycleError.
	ErrCycleDetected = errors.New("toposort: cycle detected")

	// ErrUnknownNode indicates an edge references a node that is not
	// declared in Graph.Nodes. Match with errors.Is; retrieve the
	// offending endpoint via errors.As with *UnknownNodeError.
	ErrUnknownNode = errors.New("toposort: edge references unknown node")
)

// CycleError reports a failed sort caused by one or more cycles.
//
// Remaining holds every distinct node whose indegree never reached zero,
// in declaration order: the cycle members themselves plus any nodes that
// can only be ordered after them.
type CycleError[T comparable] struct {
	// Remaining is the set of nodes left unordered, in Graph.Nodes order.
	Remaining []T
}

// Error implements the error interface.
func (e *CycleError[T]) Error() string {
	return fmt.Sprintf("toposort: cycle detected: unresolved nodes %v", e.Remaining)
}

// Unwrap makes errors.Is(err, ErrCycleDetected) hold for CycleError values.
func (e *CycleError[T]) Unwrap() error { return ErrCycleDetected }

// UnknownNodeError reports an edge whose endpoint is not declared in
// Graph.Nodes. The first offending edge in declaration order is reported.
type UnknownNodeError[T comparable] struct {
	// Node is the undeclared endpoint.
	Node T

	// Edge is the edge that references it.
	Edge core.Edge[T]
}

// Error implements the error interface.
func (e *UnknownNodeError[T]) Error() string {
	return fmt.Sprintf("toposort: edge (%v -> %v) references unknown node %v",
		e.Edge.From, e.Edge.To, e.Node)
}

// Unwrap makes errors.Is(err, ErrUnknownNode) hold for UnknownNodeError values.
func (e *UnknownNodeError[T]) Unwrap() error { return ErrUnknownNode }
