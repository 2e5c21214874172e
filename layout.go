package hexcanvas

import "math"

// cornerCount is the number of corners (and edges) of a hexagon.
const cornerCount = 6

// Layout maps between hex coordinates and pixel space.
// Size scales hex units to pixels independently per axis and Origin
// translates the result.
type Layout struct {
	Orientation Orientation
	Size        Pixel
	Origin      Pixel
}

// NewLayout creates a Layout.
func NewLayout(o Orientation, size, origin Pixel) Layout {
	return Layout{Orientation: o, Size: size, Origin: origin}
}

// HexToPixel returns the pixel-space center of h.
func (l Layout) HexToPixel(h Hex) PointF {
	x, y := l.Orientation.Forward.Apply(float64(h.q), float64(h.r))
	return PointF{
		X: x*float64(l.Size.X) + float64(l.Origin.X),
		Y: y*float64(l.Size.Y) + float64(l.Origin.Y),
	}
}

// PixelToHex returns the hexagon containing p.
//
// The fractional q and r are rounded independently and s is derived from
// them. Rounding error is not redistributed across the three axes, so near
// hexagon edges the result may be a neighbour of the true nearest hex.
func (l Layout) PixelToHex(p Pixel) Hex {
	ptx := float64(p.X-l.Origin.X) / float64(l.Size.X)
	pty := float64(p.Y-l.Origin.Y) / float64(l.Size.Y)

	q, r := l.Orientation.Backward.Apply(ptx, pty)
	return NewHexAxial(int(math.Round(q)), int(math.Round(r)))
}

// CornerOffset returns the offset of corner i (0..5) from a hex center.
func (l Layout) CornerOffset(i int) PointF {
	angle := math.Pi * (l.Orientation.StartAngle + float64(i)) / 3
	return PointF{
		X: float64(l.Size.X) * math.Cos(angle),
		Y: float64(l.Size.Y) * math.Sin(angle),
	}
}

// PolygonCorners returns the six corners of h in rotational order,
// starting at the orientation's start angle.
func (l Layout) PolygonCorners(h Hex) [cornerCount]PointF {
	var corners [cornerCount]PointF
	center := l.HexToPixel(h)
	for i := range corners {
		corners[i] = center.Add(l.CornerOffset(i))
	}
	return corners
}
