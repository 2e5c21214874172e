package hexcanvas

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want color.NRGBA
	}{
		{name: "RRGGBB", in: "#ff0000", want: Red},
		{name: "RRGGBB no hash", in: "00ff00", want: color.NRGBA{G: 255, A: 255}},
		{name: "RRGGBBAA", in: "#0000ff80", want: color.NRGBA{B: 255, A: 128}},
		{name: "RGB", in: "#fff", want: White},
		{name: "RGBA", in: "#0008", want: color.NRGBA{A: 136}},
		{name: "upper case", in: "#A0B0C0", want: color.NRGBA{R: 160, G: 176, B: 192, A: 255}},
		{name: "black", in: "000000", want: Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#1234567", "#gg0000", "red", "#+f0000"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
}
