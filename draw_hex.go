package hexcanvas

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawHex draws the six edges of h onto c. Corners are snapped with
// RoundToPixel and joined with DrawLine, corner 5 wrapping back to corner 0.
func DrawHex(c *Canvas, l Layout, h Hex, col color.NRGBA) {
	corners := l.PolygonCorners(h)
	log := Logger()
	for i := range corners {
		start := RoundToPixel(corners[i])
		end := RoundToPixel(corners[(i+1)%len(corners)])
		log.Debug("hex edge", "hex", h, "from", start, "to", end)
		c.DrawLine(start, end, col)
	}
}

// DrawHexGrid tiles c with PointyCanvasTiles and draws every hexagon.
// It returns the number of hexagons drawn.
func DrawHexGrid(c *Canvas, l Layout, col color.NRGBA) int {
	n := 0
	for h := range PointyCanvasTiles(c.Width(), c.Height(), l) {
		DrawHex(c, l, h, col)
		n++
	}
	return n
}

// labelFace is a fixed 7×13 bitmap font, small enough for tiny canvases.
var labelFace font.Face = basicfont.Face7x13

// LabelHex writes the axial coordinates "q,r" of h centered on its
// hexagon. Glyph pixels are composited over the canvas.
func LabelHex(c *Canvas, l Layout, h Hex, col color.NRGBA) {
	label := fmt.Sprintf("%d,%d", h.q, h.r)
	center := RoundToPixel(l.HexToPixel(h))

	// center.X is a row and center.Y a column; the font drawer works in
	// image coordinates.
	advance := font.MeasureString(labelFace, label).Round()
	ascent := labelFace.Metrics().Ascent.Round()
	dot := fixed.P(center.Y-advance/2, center.X+ascent/2)

	d := &font.Drawer{
		Dst:  c,
		Src:  image.NewUniform(col),
		Face: labelFace,
		Dot:  dot,
	}
	d.DrawString(label)
}
