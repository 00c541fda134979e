// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/forcepath/builder"
)

// ExampleBuildGraph places a 4-cycle on a ring inside a 100×100 area.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]builder.Option{builder.WithIDScheme(builder.SymbolIDFn), builder.WithArea(100, 100)},
		builder.Cycle(4),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, n := range g.Nodes() {
		fmt.Printf("%s (%.0f,%.0f)\n", n.Name, n.Body.Position.X, n.Body.Position.Y)
	}
	fmt.Println(g.EdgeCount(), "edges")
	// Output:
	// A (50,10)
	// B (90,50)
	// C (50,90)
	// D (10,50)
	// 4 edges
}
