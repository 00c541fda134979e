// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/forcepath/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle builds C_n (n ≥ 3): edges i–(i+1)%n, nodes on a ring.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		nodes := addNodes(g, cfg, ringPositions(cfg, n))
		for i := 0; i < n; i++ {
			if err := connect(methodCycle, g, cfg, nodes[i], nodes[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
