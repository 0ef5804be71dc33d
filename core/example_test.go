package core_test

import (
	"fmt"

	"github.com/katalvlaran/bimatch/core"
)

// ExampleGraph demonstrates building a small bipartite graph.
func ExampleGraph() {
	g := core.NewGraph()

	// The first endpoint of a fresh pair becomes Left, the second Right.
	_, _ = g.AddEdge("L0", "R0")
	_, _ = g.AddEdge("L0", "R1")
	_, _ = g.AddEdge("R1", "L1") // L1 inferred as Left from R1

	fmt.Println("Left:", g.LeftVertices())
	fmt.Println("Right:", g.RightVertices())

	// Same-side edges are rejected.
	_, err := g.AddEdge("L0", "L1")
	fmt.Println(err != nil)

	// Output:
	// Left: [L0 L1]
	// Right: [R0 R1]
	// true
}

// ExampleMatching shows the canonical key of a matching.
func ExampleMatching() {
	m := core.NewMatching(
		core.Pair{Left: "L1", Right: "R0"},
		core.Pair{Left: "L0", Right: "R1"},
	)
	fmt.Println(m)
	fmt.Println(m.Key())

	// Output:
	// [L0-R1 L1-R0]
	// "L0":"R1","L1":"R0"
}
