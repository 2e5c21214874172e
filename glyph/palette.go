// Package glyph converts images into emoji glyph art.
//
// Every pixel is composited against a background (white by default) and
// replaced by the symbol of the nearest palette color. Rows are separated
// by '\n'.
//
//	fmt.Print(glyph.String(img))
package glyph

import "image/color"

// Entry pairs a symbol with the color it stands for. Alpha is ignored.
type Entry struct {
	Symbol string
	Color  color.NRGBA
}

// Palette is an ordered list of entries. Order breaks distance ties:
// the earliest entry wins.
type Palette []Entry

func rgb(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// Hearts is the default palette.
var Hearts = Palette{
	{"\u2764\ufe0f", rgb(255, 0, 0)},     // red heart
	{"\U0001f49b", rgb(255, 255, 0)},     // yellow heart
	{"\U0001f49a", rgb(0, 255, 0)},       // green heart
	{"\U0001f499", rgb(0, 0, 255)},       // blue heart
	{"\U0001f49c", rgb(128, 0, 128)},     // purple heart
	{"\U0001f5a4", rgb(0, 0, 0)},         // black heart
	{"\U0001f90d", rgb(255, 255, 255)},   // white heart
	{"\U0001f494", rgb(255, 105, 180)},   // broken heart
	{"\u2763\ufe0f", rgb(255, 192, 203)}, // heart exclamation
	{"\U0001f495", rgb(255, 20, 147)},    // two hearts
	{"\U0001f49d", rgb(255, 182, 193)},   // heart with ribbon
	{"\U0001f493", rgb(255, 160, 122)},   // beating heart
	{"\U0001f497", rgb(255, 192, 203)},   // growing heart
	{"\U0001f496", rgb(255, 182, 193)},   // sparkling heart
	{"\U0001f498", rgb(255, 105, 180)},   // heart with arrow
	{"\U0001f9e1", rgb(255, 165, 0)},     // orange heart
	{"\U0001f90e", rgb(139, 69, 19)},     // brown heart
	{"\U0001f496", rgb(255, 192, 203)},   // sparkling heart
}

// Nearest returns the entry closest to c in RGB space (Euclidean distance).
// The alpha channel of c is ignored; see Composite.
// An empty palette yields the zero Entry.
func (p Palette) Nearest(c color.NRGBA) Entry {
	var best Entry
	bestDist := -1
	for _, e := range p {
		dr := int(e.Color.R) - int(c.R)
		dg := int(e.Color.G) - int(c.G)
		db := int(e.Color.B) - int(c.B)
		// squared distance orders the same as the distance itself
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

// Composite blends c over an opaque background with straight alpha:
// out = channel*a + bg*(1-a), a = A/255. Results are truncated to 8 bits.
func Composite(c, bg color.NRGBA) color.NRGBA {
	a := uint32(c.A)
	blend := func(ch, b uint8) uint8 {
		return uint8((uint32(ch)*a + uint32(b)*(255-a)) / 255)
	}
	return color.NRGBA{
		R: blend(c.R, bg.R),
		G: blend(c.G, bg.G),
		B: blend(c.B, bg.B),
		A: 0xff,
	}
}
