package toposort_test

import (
	"fmt"
	"testing"

	"github.com/tampopo/tampopo/core"
	"github.com/tampopo/tampopo/toposort"
)

// BenchmarkSort_Chain10000 measures Sort on a linear chain of 10,000 nodes.
// Graph structure: N0 → N1 → N2 → ... → N9999
// The graph is built once; each iteration re-sorts the same value, which is
// the intended usage pattern (Sort never mutates its input).
//
// Complexity: each Sort call is O(V + E) ≈ O(2V) ≈ O(V).
func BenchmarkSort_Chain10000(b *testing.B) {
	const n = 10000

	// 1. Build the node list N0..N9999 in order.
	nodes := make([]string, n)
	for i := 0; i < n; i++ {
		nodes[i] = fmt.Sprintf("N%d", i)
	}

	// 2. Chain each node to its successor.
	edges := make([]core.Edge[string], 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, core.Edge[string]{From: nodes[i], To: nodes[i+1]})
	}
	g := core.NewGraph(nodes, edges)

	// 3. Exclude construction time from the measurement.
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = toposort.Sort(g)
	}
}

// BenchmarkSort_Fanout measures Sort on a wide two-level graph: one root
// with 10,000 direct dependents, stressing the adjacency walk rather than
// queue churn.
func BenchmarkSort_Fanout(b *testing.B) {
	const n = 10000

	nodes := make([]string, 0, n+1)
	nodes = append(nodes, "root")
	edges := make([]core.Edge[string], 0, n)
	for i := 0; i < n; i++ {
		leaf := fmt.Sprintf("L%d", i)
		nodes = append(nodes, leaf)
		edges = append(edges, core.Edge[string]{From: "root", To: leaf})
	}
	g := core.NewGraph(nodes, edges)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = toposort.Sort(g)
	}
}
