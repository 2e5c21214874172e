// Package hexcanvas renders hexagon grids and line segments onto an
// in-memory RGBA pixel buffer.
//
// # Overview
//
// The package is built from a few small pieces:
//
//   - [Hex]: cube/axial hexagon coordinates (q + r + s == 0)
//   - [Layout]: projection between hex space and pixel space for one of
//     the two [Orientation] presets, [PointyTop] and [FlatTop]
//   - [PointyCanvasTiling]: the hexagons whose centers cover a canvas
//   - [Canvas]: the pixel buffer with bounds-checked pixel writes and
//     integer Bresenham line drawing
//   - [DrawHex] and [DrawHexGrid]: hexagon outlines drawn onto a Canvas
//
// A canvas can be read back as raw bytes with [Canvas.Pixels] or turned
// into emoji glyph art with [Canvas.Render] (see package glyph).
//
// # Quick Start
//
//	layout := hexcanvas.NewLayout(hexcanvas.PointyTop, hexcanvas.Pt(10, 10), hexcanvas.Pt(0, 0))
//	c := hexcanvas.NewCanvas(20, 20)
//	hexcanvas.DrawHexGrid(c, layout, color.NRGBA{A: 255})
//	fmt.Print(c.Render())
//
// # Coordinate System
//
// The canvas addresses pixels with [Pixel] values whose X selects the
// row and Y selects the column:
//
//   - X is bounded by the canvas height
//   - Y is bounded by the canvas width
//   - the byte offset of a pixel is (X*width + Y) * 4
//
// Hex centers and corners produced by [Layout] feed into the same
// convention, so a pointy-top layout appears transposed on screen. The
// [image.Image] methods of Canvas (At, Set, Bounds) use the usual
// x = column, y = row ordering over the same buffer.
//
// # Logging
//
// Diagnostics are written to a [log/slog] logger that discards everything
// by default. See [SetLogger].
package hexcanvas
