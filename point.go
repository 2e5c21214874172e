package hexcanvas

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of numeric types a Point can be built on.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Point is a 2D coordinate over an integer or floating-point scalar.
type Point[T Scalar] struct {
	X, Y T
}

// Pixel is an integer pixel address.
type Pixel = Point[int]

// PointF is a sub-pixel position, used for hex centers and corners.
type PointF = Point[float64]

// Pt is a convenience function to create a Point.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// ToPointF converts any point to its floating-point form.
func ToPointF[T Scalar](p Point[T]) PointF {
	return PointF{X: float64(p.X), Y: float64(p.Y)}
}

// RoundToPixel snaps a sub-pixel position to the pixel grid.
// Each coordinate is rounded independently as floor(v + 0.5).
func RoundToPixel(p PointF) Pixel {
	return Pixel{
		X: int(math.Floor(p.X + 0.5)),
		Y: int(math.Floor(p.Y + 0.5)),
	}
}
