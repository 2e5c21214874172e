package hexcanvas

import (
	"image"
	"image/color"

	"github.com/gogpu/hexcanvas/glyph"
	"github.com/gogpu/hexcanvas/internal/raster"
	xdraw "golang.org/x/image/draw"
)

// Canvas is an RGBA pixel buffer, 4 bytes per pixel in row-major order.
// len(Pixels()) is always 4*width*height.
//
// Drawing never fails: writes outside the canvas are silently dropped.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width  uint32
	height uint32
	pixels []uint8
}

// NewCanvas creates a canvas with the given dimensions. The buffer is
// initialised with FillStripes unless WithFill says otherwise. Zero
// dimensions are allowed and give an empty buffer.
func NewCanvas(width, height uint32, opts ...CanvasOption) *Canvas {
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{
		width:  width,
		height: height,
		pixels: make([]uint8, 4*int(width)*int(height)),
	}
	o.fill.paint(c.pixels)

	Logger().Debug("canvas created", "width", width, "height", height, "fill", o.fill)
	return c
}

// Width returns the width of the canvas.
func (c *Canvas) Width() uint32 {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() uint32 {
	return c.height
}

// Pixels returns the raw pixel data (RGBA, row-major, top to bottom).
// The slice aliases the canvas buffer.
func (c *Canvas) Pixels() []uint8 {
	return c.pixels
}

// DrawPixel overwrites one pixel with col (no blending).
// p.X selects the row and must lie in [0, height); p.Y selects the column
// and must lie in [0, width). Anything else is a no-op.
func (c *Canvas) DrawPixel(p Pixel, col color.NRGBA) {
	if p.X < 0 || p.X >= int(c.height) || p.Y < 0 || p.Y >= int(c.width) {
		return
	}
	i := (p.X*int(c.width) + p.Y) * 4
	c.pixels[i+0] = col.R
	c.pixels[i+1] = col.G
	c.pixels[i+2] = col.B
	c.pixels[i+3] = col.A
}

// DrawLine draws the segment from start to end inclusive with Bresenham's
// algorithm. Points falling outside the canvas are dropped individually.
func (c *Canvas) DrawLine(start, end Pixel, col color.NRGBA) {
	raster.Line(start.X, start.Y, end.X, end.Y, raster.PlotFunc(func(x, y int) {
		c.DrawPixel(Pixel{X: x, Y: y}, col)
	}))
}

// Clear fills the entire canvas with a color.
func (c *Canvas) Clear(col color.NRGBA) {
	for i := 0; i < len(c.pixels); i += 4 {
		c.pixels[i+0] = col.R
		c.pixels[i+1] = col.G
		c.pixels[i+2] = col.B
		c.pixels[i+3] = col.A
	}
}

// Render returns the canvas as emoji glyph art: one heart per pixel and
// a '\n' after every row.
func (c *Canvas) Render() string {
	return glyph.String(c)
}

// String implements fmt.Stringer; it is the same as Render.
func (c *Canvas) String() string {
	return c.Render()
}

// ToImage copies the canvas into an image.NRGBA.
func (c *Canvas) ToImage() *image.NRGBA {
	img := image.NewNRGBA(c.Bounds())
	copy(img.Pix, c.pixels)
	return img
}

// Resample returns a new width×height canvas holding a nearest-neighbour
// scaled copy of c.
func (c *Canvas) Resample(width, height uint32) *Canvas {
	dst := NewCanvas(width, height, WithFill(FillTransparent))
	if len(c.pixels) == 0 || len(dst.pixels) == 0 {
		return dst
	}
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), c.ToImage(), c.Bounds(), xdraw.Src, nil)
	return dst
}

// At implements the image.Image interface (x = column, y = row).
func (c *Canvas) At(x, y int) color.Color {
	if x < 0 || x >= int(c.width) || y < 0 || y >= int(c.height) {
		return color.NRGBA{}
	}
	i := (y*int(c.width) + x) * 4
	return color.NRGBA{
		R: c.pixels[i+0],
		G: c.pixels[i+1],
		B: c.pixels[i+2],
		A: c.pixels[i+3],
	}
}

// Set implements the draw.Image interface (x = column, y = row).
func (c *Canvas) Set(x, y int, col color.Color) {
	c.DrawPixel(Pixel{X: y, Y: x}, color.NRGBAModel.Convert(col).(color.NRGBA))
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(c.width), int(c.height))
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}
