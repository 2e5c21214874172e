package hexcanvas

import (
	"errors"
	"fmt"
)

// ErrInvalidCoordinate is returned by NewHex when q + r + s != 0.
var ErrInvalidCoordinate = errors.New("hexcanvas: invalid cube coordinate")

// Hex is a hexagon in cube coordinates. The invariant q + r + s == 0 holds
// for every value produced by this package, including the zero value.
type Hex struct {
	q, r, s int
}

// NewHex returns the hexagon with cube coordinates (q, r, s).
func NewHex(q, r, s int) (Hex, error) {
	if q+r+s != 0 {
		return Hex{}, fmt.Errorf("%w: q=%d r=%d s=%d sum to %d", ErrInvalidCoordinate, q, r, s, q+r+s)
	}
	return Hex{q: q, r: r, s: s}, nil
}

// NewHexAxial returns the hexagon with axial coordinates (q, r).
// The third cube coordinate is derived as s = -q - r.
func NewHexAxial(q, r int) Hex {
	return Hex{q: q, r: r, s: -q - r}
}

// Q returns the q cube coordinate.
func (h Hex) Q() int { return h.q }

// R returns the r cube coordinate.
func (h Hex) R() int { return h.r }

// S returns the s cube coordinate.
func (h Hex) S() int { return h.s }

func (h Hex) String() string {
	return fmt.Sprintf("Hex{q: %d, r: %d, s: %d}", h.q, h.r, h.s)
}
