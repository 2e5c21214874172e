package glyph

import (
	"github.com/go-text/typesetting/segmenter"
	"golang.org/x/text/width"
)

// variationSelector16 requests emoji presentation of the preceding rune.
const variationSelector16 = '\ufe0f'

// Count returns the number of user-perceived characters (grapheme
// clusters) in s. A heart such as U+2764 U+FE0F counts once.
func Count(s string) int {
	return len(graphemes(s))
}

// Columns returns the number of terminal cells s occupies.
// East Asian wide and fullwidth clusters, and clusters forced to emoji
// presentation, take two cells; everything else takes one.
func Columns(s string) int {
	cols := 0
	for _, g := range graphemes(s) {
		cols += clusterColumns(g)
	}
	return cols
}

func clusterColumns(g []rune) int {
	for _, r := range g[1:] {
		if r == variationSelector16 {
			return 2
		}
	}
	switch width.LookupRune(g[0]).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// graphemes splits s into grapheme clusters.
func graphemes(s string) [][]rune {
	if s == "" {
		return nil
	}
	var seg segmenter.Segmenter
	seg.Init([]rune(s))

	var out [][]rune
	it := seg.GraphemeIterator()
	for it.Next() {
		out = append(out, it.Grapheme().Text)
	}
	return out
}
