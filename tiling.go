package hexcanvas

import (
	"iter"
	"math"
	"slices"
)

// PointyCanvasTiles yields the hexagons that cover a width×height canvas
// for a pointy-top layout.
//
// The row count is ceil(height/Size.X) and the column count
// ceil(width/Size.Y), matching the canvas convention where Pixel.X is the
// row. Rows r = 0..rows are emitted in order; row r holds every q in
// [-r/2, cols-r/2]. The result is a parallelogram that overshoots the
// canvas; pixels drawn outside it are dropped by the canvas.
//
// A layout with a zero size component yields nothing.
func PointyCanvasTiles(width, height uint32, layout Layout) iter.Seq[Hex] {
	return func(yield func(Hex) bool) {
		if layout.Size.X == 0 || layout.Size.Y == 0 {
			return
		}
		rows := int(math.Ceil(float64(height) / float64(layout.Size.X)))
		cols := int(math.Ceil(float64(width) / float64(layout.Size.Y)))

		log := Logger()
		for r := 0; r <= rows; r++ {
			offset := r / 2
			for q := -offset; q <= cols-offset; q++ {
				h := NewHexAxial(q, r)
				log.Debug("tiling hex", "q", h.q, "r", h.r, "s", h.s)
				if !yield(h) {
					return
				}
			}
		}
	}
}

// PointyCanvasTiling collects PointyCanvasTiles into a slice.
func PointyCanvasTiling(width, height uint32, layout Layout) []Hex {
	return slices.Collect(PointyCanvasTiles(width, height, layout))
}

// Hexes is shorthand for PointyCanvasTiles(width, height, l).
func (l Layout) Hexes(width, height uint32) iter.Seq[Hex] {
	return PointyCanvasTiles(width, height, l)
}
