// Package raster provides integer scan conversion of line segments.
package raster

// Plotter receives the pixels produced by the rasterizer
// (interface avoids an import cycle with the canvas).
type Plotter interface {
	Plot(x, y int)
}

// PlotFunc adapts an ordinary function to the Plotter interface.
type PlotFunc func(x, y int)

// Plot calls f(x, y).
func (f PlotFunc) Plot(x, y int) { f(x, y) }

// Line rasterizes the segment from (x0, y0) to (x1, y1) inclusive using
// Bresenham's midpoint algorithm. No floating point is involved.
//
// Segments with |dy| < |dx| iterate over x, all others over y. Within each
// routine the endpoints are ordered so iteration runs towards the larger
// coordinate, so Line(a, b) and Line(b, a) plot the same pixels.
// A zero-length segment plots its single point.
func Line(x0, y0, x1, y1 int, p Plotter) {
	if abs(y1-y0) < abs(x1-x0) {
		if x0 > x1 {
			lineLow(x1, y1, x0, y0, p)
		} else {
			lineLow(x0, y0, x1, y1, p)
		}
		return
	}
	if y0 > y1 {
		lineHigh(x1, y1, x0, y0, p)
	} else {
		lineHigh(x0, y0, x1, y1, p)
	}
}

// lineLow handles shallow slopes; requires x0 <= x1.
func lineLow(x0, y0, x1, y1 int, p Plotter) {
	dx := x1 - x0
	dy := y1 - y0
	yi := 1
	if dy < 0 {
		yi = -1
		dy = -dy
	}
	d := 2*dy - dx
	y := y0

	for x := x0; x <= x1; x++ {
		p.Plot(x, y)
		if d > 0 {
			y += yi
			d += 2 * (dy - dx)
		} else {
			d += 2 * dy
		}
	}
}

// lineHigh handles steep slopes; requires y0 <= y1.
func lineHigh(x0, y0, x1, y1 int, p Plotter) {
	dx := x1 - x0
	dy := y1 - y0
	xi := 1
	if dx < 0 {
		xi = -1
		dx = -dx
	}
	d := 2*dx - dy
	x := x0

	for y := y0; y <= y1; y++ {
		p.Plot(x, y)
		if d > 0 {
			x += xi
			d += 2 * (dx - dy)
		} else {
			d += 2 * dx
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
