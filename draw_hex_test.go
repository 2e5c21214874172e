package hexcanvas

import (
	"slices"
	"testing"
)

func countColor(c *Canvas, want [4]byte) int {
	n := 0
	px := c.Pixels()
	for i := 0; i < len(px); i += 4 {
		if [4]byte(px[i:i+4]) == want {
			n++
		}
	}
	return n
}

func TestDrawHex_Corners(t *testing.T) {
	c := NewCanvas(40, 40, WithFill(FillTransparent))
	l := NewLayout(PointyTop, Pt(10, 10), Pt(20, 20))
	DrawHex(c, l, NewHexAxial(0, 0), Red)

	// corners of a pointy-top hex of radius 10 centered on (20, 20),
	// snapped with RoundToPixel
	corners := []Pixel{{29, 25}, {20, 30}, {11, 25}, {11, 15}, {20, 10}, {29, 15}}
	for i, p := range corners {
		if got := pixelAt(c, p); got != Red {
			t.Errorf("corner %d at %v = %v, want red", i, p, got)
		}
	}

	if got := pixelAt(c, Pt(20, 20)); got != Transparent {
		t.Errorf("center = %v, want untouched", got)
	}

	// Every drawn pixel lies inside the corner bounding box.
	for row := range 40 {
		for col := range 40 {
			if pixelAt(c, Pt(row, col)) != Red {
				continue
			}
			if row < 11 || row > 29 || col < 10 || col > 30 {
				t.Errorf("pixel (%d, %d) drawn outside the hexagon bounds", row, col)
			}
		}
	}
}

func TestDrawHex_MatchesEdges(t *testing.T) {
	l := NewLayout(FlatTop, Pt(8, 12), Pt(15, 17))
	h := NewHexAxial(1, -1)

	got := NewCanvas(40, 40, WithFill(FillTransparent))
	DrawHex(got, l, h, Red)

	want := NewCanvas(40, 40, WithFill(FillTransparent))
	corners := l.PolygonCorners(h)
	for i := range corners {
		want.DrawLine(RoundToPixel(corners[i]), RoundToPixel(corners[(i+1)%6]), Red)
	}

	if diff := touched(got.Pixels(), want.Pixels()); len(diff) != 0 {
		t.Errorf("DrawHex differs from drawing its six edges at %d bytes", len(diff))
	}
}

func TestDrawHex_OffCanvas(t *testing.T) {
	c := NewCanvas(10, 10)
	before := slices.Clone(c.Pixels())
	l := NewLayout(PointyTop, Pt(5, 5), Pt(0, 0))
	DrawHex(c, l, NewHexAxial(100, 100), Red)
	if got := touched(before, c.Pixels()); len(got) != 0 {
		t.Errorf("off-canvas hex modified %d bytes", len(got))
	}
}

func TestDrawHexGrid(t *testing.T) {
	c := NewCanvas(20, 20, WithFill(FillWhite))
	l := NewLayout(PointyTop, Pt(10, 10), Pt(0, 0))

	if n := DrawHexGrid(c, l, Black); n != 9 {
		t.Errorf("DrawHexGrid() drew %d hexagons, want 9", n)
	}
	if countColor(c, [4]byte{0, 0, 0, 255}) == 0 {
		t.Error("DrawHexGrid() drew nothing")
	}
	// (0, 0) is the center of hex (0, 0); no edge passes through it.
	if got := pixelAt(c, Pt(0, 0)); got != White {
		t.Errorf("pixel (0, 0) = %v, want white", got)
	}
}

func TestLabelHex(t *testing.T) {
	c := NewCanvas(60, 60, WithFill(FillTransparent))
	l := NewLayout(PointyTop, Pt(20, 20), Pt(30, 30))
	LabelHex(c, l, NewHexAxial(0, 0), Red)

	n := 0
	minRow, maxRow, minCol, maxCol := 60, -1, 60, -1
	for row := range 60 {
		for col := range 60 {
			if pixelAt(c, Pt(row, col)).A == 0 {
				continue
			}
			n++
			minRow, maxRow = min(minRow, row), max(maxRow, row)
			minCol, maxCol = min(minCol, col), max(maxCol, col)
		}
	}
	if n == 0 {
		t.Fatal("LabelHex drew nothing")
	}
	// "0,0" in a 7x13 font is 21 pixels wide, centered on column 30.
	if minCol < 19 || maxCol > 41 {
		t.Errorf("label spans columns %d..%d, want within 19..41", minCol, maxCol)
	}
	if minRow < 20 || maxRow > 40 {
		t.Errorf("label spans rows %d..%d, want within 20..40", minRow, maxRow)
	}
}

func TestLabelHex_SnapsCenter(t *testing.T) {
	h := NewHexAxial(1, 0)

	// Hex (1, 0) sits at row sqrt(3)*20 = 34.64, which snaps to row 35.
	got := NewCanvas(60, 60, WithFill(FillTransparent))
	LabelHex(got, NewLayout(PointyTop, Pt(20, 20), Pt(0, 30)), h, Red)

	// A custom orientation that places the same hex exactly on row 35.
	exact := Orientation{Forward: Matrix2{M00: 1.75}}
	want := NewCanvas(60, 60, WithFill(FillTransparent))
	LabelHex(want, NewLayout(exact, Pt(20, 20), Pt(0, 30)), h, Red)

	if countColor(want, [4]byte{255, 0, 0, 255}) == 0 {
		t.Fatal("LabelHex drew nothing")
	}
	if diff := touched(got.Pixels(), want.Pixels()); len(diff) != 0 {
		t.Errorf("label at row 34.64 differs from label at row 35 in %d bytes", len(diff))
	}
}
