// Package tampopo is a small library for ordering the nodes of a directed
// graph so that every edge's source precedes its target — the classic
// topological sort.
//
// It exists to order dependent work items (template-generation steps, task
// pipelines, build stages) declared as "A must run before B" pairs, and to
// reject cyclic declarations with a precise report instead of guessing an
// order.
//
// The module is organized as two subpackages:
//
//	core/     — the Graph value type: an ordered node sequence plus an
//	            ordered sequence of directed edges, generic over any
//	            comparable node type
//	toposort/ — Kahn's algorithm over a core.Graph, producing either a
//	            deterministic topological order or a typed cycle error
//	            naming the nodes that could not be ordered
//
// Why choose tampopo?
//
//   - Deterministic — ties are broken by node declaration order, so the
//     same input always yields the same output, across runs and platforms
//   - Generic — nodes are any comparable Go type; no string coercion
//   - Pure — sorting never mutates the input graph and keeps no state,
//     so concurrent callers need no coordination
//   - Precise failures — cycles and dangling edge endpoints are distinct,
//     errors.Is-matchable error kinds
//
// Quick ASCII example:
//
//	shirt      underwear    socks
//	  │            │          │
//	hoodie       pants        │
//	  │            └──► shoes ┘
//	  └──► school ◄──────┘
//
// declares a dressing order; toposort.Sort returns every garment before
// anything that depends on it.
//
//	go get github.com/tampopo/tampopo
package tampopo
