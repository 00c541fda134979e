// SPDX-License-Identifier: MIT

package builder

import "math"

type point struct{ x, y float64 }

// inner returns the usable rectangle of the area after the margin.
func (c builderConfig) inner() (x0, y0, w, h float64) {
	mx, my := c.width*areaMargin, c.height*areaMargin

	return mx, my, c.width - 2*mx, c.height - 2*my
}

// center of the area.
func (c builderConfig) center() point {
	return point{c.width / 2, c.height / 2}
}

// linePositions spreads n points evenly along the horizontal midline.
func linePositions(cfg builderConfig, n int) []point {
	x0, _, w, _ := cfg.inner()
	y := cfg.height / 2
	pos := make([]point, n)
	for i := range pos {
		pos[i] = point{x0 + w*float64(i)/float64(n-1), y}
	}

	return pos
}

// ringPositions places n points on a circle, starting at twelve o'clock
// and going clockwise in screen coordinates. A single point sits at twelve
// o'clock too, never on the centre where Star puts its hub.
func ringPositions(cfg builderConfig, n int) []point {
	_, _, w, h := cfg.inner()
	r := math.Min(w, h) / 2
	c := cfg.center()
	pos := make([]point, n)
	for i := range pos {
		theta := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		pos[i] = point{c.x + r*math.Cos(theta), c.y + r*math.Sin(theta)}
	}

	return pos
}

// gridPosition returns the cell centre of (r,c) in a rows×cols grid.
func gridPosition(cfg builderConfig, rows, cols, r, c int) point {
	x0, y0, w, h := cfg.inner()

	return point{
		x0 + w*(float64(c)+0.5)/float64(cols),
		y0 + h*(float64(r)+0.5)/float64(rows),
	}
}
