package hexcanvas

import (
	"errors"
	"fmt"
)

// ErrUnknownFill is returned by ParseFill for unrecognised names.
var ErrUnknownFill = errors.New("hexcanvas: unknown fill")

// Fill selects the initial contents of a new Canvas.
type Fill int

const (
	// FillStripes sets byte i of the buffer to 255 when i%7 == 0 or
	// i%3 == 0 and to 0 otherwise, giving a deterministic diagonal pattern.
	FillStripes Fill = iota

	// FillWhite paints every pixel opaque white.
	FillWhite

	// FillTransparent leaves every byte zero.
	FillTransparent
)

var fillNames = [...]string{
	FillStripes:     "stripes",
	FillWhite:       "white",
	FillTransparent: "transparent",
}

func (f Fill) String() string {
	if f >= 0 && int(f) < len(fillNames) {
		return fillNames[f]
	}
	return fmt.Sprintf("Fill(%d)", int(f))
}

// ParseFill returns the fill named by s.
func ParseFill(s string) (Fill, error) {
	for i, name := range fillNames {
		if name == s {
			return Fill(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFill, s)
}

// paint writes the fill pattern into buf.
func (f Fill) paint(buf []byte) {
	switch f {
	case FillWhite:
		for i := range buf {
			buf[i] = 0xff
		}
	case FillTransparent:
		clear(buf)
	default:
		for i := range buf {
			if i%7 == 0 || i%3 == 0 {
				buf[i] = 0xff
			} else {
				buf[i] = 0
			}
		}
	}
}

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	// Default stripes fill
//	c := hexcanvas.NewCanvas(20, 20)
//
//	// Start from a blank sheet
//	c := hexcanvas.NewCanvas(20, 20, hexcanvas.WithFill(hexcanvas.FillWhite))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	fill Fill
}

// defaultCanvasOptions returns the default canvas options.
func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		fill: FillStripes,
	}
}

// WithFill sets the initial buffer pattern.
func WithFill(f Fill) CanvasOption {
	return func(o *canvasOptions) {
		o.fill = f
	}
}
