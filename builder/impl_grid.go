// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/forcepath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "r,c"
)

// GridID returns the name Grid gives to cell (r,c).
func GridID(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Grid builds a rows×cols 4-neighbourhood lattice named "r,c". For each cell
// in row-major order the right edge is added before the bottom edge.
// Grid ignores the ID scheme.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		cells := make([][]*core.Node, rows)
		for r := range cells {
			cells[r] = make([]*core.Node, cols)
			for c := range cells[r] {
				cells[r][c] = addNode(g, GridID(r, c), gridPosition(cfg, rows, cols, r, c))
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := connect(methodGrid, g, cfg, cells[r][c], cells[r][c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(methodGrid, g, cfg, cells[r][c], cells[r+1][c]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
