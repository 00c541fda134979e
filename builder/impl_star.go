// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/forcepath/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// CenterID is the fixed name of the hub added by Star.
const CenterID = "Center"

// Star builds a hub named CenterID in the middle of the area with n-1
// leaves on a ring around it (n ≥ 2). Leaves are named cfg.idFn(1..n-1).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		hub := addNode(g, CenterID, cfg.center())
		ring := ringPositions(cfg, n-1)
		for i := 1; i < n; i++ {
			leaf := addNode(g, cfg.idFn(i), ring[i-1])
			if err := connect(methodStar, g, cfg, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
