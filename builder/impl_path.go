// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/forcepath/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds P_n (n ≥ 2): edges i–(i+1), nodes on a horizontal line.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		nodes := addNodes(g, cfg, linePositions(cfg, n))
		for i := 1; i < n; i++ {
			if err := connect(methodPath, g, cfg, nodes[i-1], nodes[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
