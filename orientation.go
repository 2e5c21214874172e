package hexcanvas

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownOrientation is returned by ParseOrientation for unrecognised names.
var ErrUnknownOrientation = errors.New("hexcanvas: unknown orientation")

// Matrix2 is a 2×2 row-major matrix.
//
//	| M00 M01 |
//	| M10 M11 |
type Matrix2 struct {
	M00, M01 float64
	M10, M11 float64
}

// Apply multiplies the column vector (x, y) by m.
func (m Matrix2) Apply(x, y float64) (float64, float64) {
	return m.M00*x + m.M01*y, m.M10*x + m.M11*y
}

// Orientation describes how hexagons sit on the pixel grid.
type Orientation struct {
	// Forward maps axial (q, r) to unit pixel space.
	Forward Matrix2

	// Backward is the inverse of Forward.
	Backward Matrix2

	// StartAngle is the angle of corner 0, in multiples of 60°.
	StartAngle float64

	name string
}

var sqrt3 = math.Sqrt(3)

// The two supported orientations. Their matrix constants are part of the
// rendering contract and must not be modified.
var (
	PointyTop = Orientation{
		Forward:    Matrix2{M00: sqrt3, M01: sqrt3 / 2, M10: 0, M11: 3.0 / 2},
		Backward:   Matrix2{M00: sqrt3 / 3, M01: -1.0 / 3, M10: 0, M11: 2.0 / 3},
		StartAngle: 0.5,
		name:       "pointy-top",
	}

	FlatTop = Orientation{
		Forward:    Matrix2{M00: 3.0 / 2, M01: 0, M10: sqrt3 / 2, M11: sqrt3},
		Backward:   Matrix2{M00: 2.0 / 3, M01: 0, M10: -1.0 / 3, M11: sqrt3 / 3},
		StartAngle: 0,
		name:       "flat-top",
	}
)

// String returns "pointy-top", "flat-top" or "custom".
func (o Orientation) String() string {
	if o.name == "" {
		return "custom"
	}
	return o.name
}

// ParseOrientation returns the preset named by s.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "pointy-top", "pointy":
		return PointyTop, nil
	case "flat-top", "flat":
		return FlatTop, nil
	}
	return Orientation{}, fmt.Errorf("%w: %q", ErrUnknownOrientation, s)
}
