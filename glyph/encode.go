package glyph

import (
	"bufio"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/gogpu/hexcanvas/internal/cache"
)

// memoSize bounds the per-Encoder color memo. Canvases rarely hold more
// distinct colors than this.
const memoSize = 1024

var white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Option configures an Encoder.
type Option func(*Encoder)

// WithPalette replaces the default Hearts palette.
func WithPalette(p Palette) Option {
	return func(e *Encoder) {
		e.palette = p
	}
}

// WithBackground sets the color pixels are composited against.
// Its alpha is ignored.
func WithBackground(c color.Color) Option {
	return func(e *Encoder) {
		e.background = color.NRGBAModel.Convert(c).(color.NRGBA)
	}
}

// Encoder turns images into glyph art. It is safe for concurrent use.
type Encoder struct {
	palette    Palette
	background color.NRGBA
	memo       *cache.Memo[color.NRGBA, string]
}

// NewEncoder creates an Encoder using the Hearts palette over white.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{
		palette:    Hearts,
		background: white,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.memo = cache.New[color.NRGBA, string](memoSize)
	return e
}

// Match returns the symbol for a single color.
func (e *Encoder) Match(c color.Color) string {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return e.memo.GetOrCreate(nc, func() string {
		return e.palette.Nearest(Composite(nc, e.background)).Symbol
	})
}

// CacheStats reports how many distinct colors the Encoder has matched and
// how many Match calls were answered from its memo.
func (e *Encoder) CacheStats() (colors int, hits, misses uint64) {
	st := e.memo.Stats()
	return st.Len, st.Hits, st.Misses
}

// Encode writes the glyph art of img to w, one symbol per pixel and a
// '\n' after every row. An empty image writes nothing.
func (e *Encoder) Encode(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	e.encode(bw, img)
	return bw.Flush()
}

// String returns the glyph art of img.
func (e *Encoder) String(img image.Image) string {
	var sb strings.Builder
	e.encode(&sb, img)
	return sb.String()
}

func (e *Encoder) encode(w io.StringWriter, img image.Image) {
	b := img.Bounds()
	if b.Empty() {
		return
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _ = w.WriteString(e.Match(img.At(x, y)))
		}
		_, _ = w.WriteString("\n")
	}
}

// Encode writes the glyph art of img to w using the default Encoder.
func Encode(w io.Writer, img image.Image) error {
	return NewEncoder().Encode(w, img)
}

// String returns the glyph art of img using the default Encoder.
func String(img image.Image) string {
	return NewEncoder().String(img)
}
