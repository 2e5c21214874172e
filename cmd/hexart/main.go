// Command hexart draws a hexagon grid onto a pixel canvas and prints it
// as emoji glyph art.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/hexcanvas"
	"github.com/gogpu/hexcanvas/glyph"
)

func main() {
	os.Exit(exitCode(run(os.Args[1:], os.Stdout, os.Stderr), os.Stderr))
}

// exitCode reports err on stderr and maps it to a process status.
// A -h request has already printed usage and is not a failure.
func exitCode(err error, stderr io.Writer) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return 0
	}
	_, _ = fmt.Fprintf(stderr, "hexart: %v\n", err)
	return 1
}

// dimension is a flag.Value holding a canvas or glyph-grid extent.
type dimension uint32

func (d *dimension) String() string { return strconv.FormatUint(uint64(*d), 10) }

func (d *dimension) Set(s string) error {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return err
	}
	*d = dimension(v)
	return nil
}

type config struct {
	width, height    dimension
	sizeX, sizeY     int
	originX, originY int
	orientation      string
	color            string
	fill             string
	cols, rows       dimension
	labels           bool
	frame            bool
	verbose          bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	cfg := config{width: 20, height: 20}
	fs := flag.NewFlagSet("hexart", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var(&cfg.width, "width", "canvas width in pixels")
	fs.Var(&cfg.height, "height", "canvas height in pixels")
	fs.IntVar(&cfg.sizeX, "size-x", 10, "hex size along the row axis")
	fs.IntVar(&cfg.sizeY, "size-y", 10, "hex size along the column axis")
	fs.IntVar(&cfg.originX, "origin-x", 0, "layout origin row")
	fs.IntVar(&cfg.originY, "origin-y", 0, "layout origin column")
	fs.StringVar(&cfg.orientation, "orientation", "pointy-top", "pointy-top or flat-top")
	fs.StringVar(&cfg.color, "color", "#000000", "edge color (#RGB, #RRGGBB, #RRGGBBAA)")
	fs.StringVar(&cfg.fill, "fill", "white", "initial canvas fill: stripes, white or transparent")
	fs.Var(&cfg.cols, "cols", "resample to this many glyph columns (0 keeps canvas width)")
	fs.Var(&cfg.rows, "rows", "resample to this many glyph rows (0 keeps canvas height)")
	fs.BoolVar(&cfg.labels, "labels", false, "write q,r labels at hex centers")
	fs.BoolVar(&cfg.frame, "frame", false, "draw a border around the output")
	fs.BoolVar(&cfg.verbose, "v", false, "log per-hexagon diagnostics to stderr")
	err := fs.Parse(args)
	return cfg, err
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	hexcanvas.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	orientation, err := hexcanvas.ParseOrientation(cfg.orientation)
	if err != nil {
		return err
	}
	col, err := hexcanvas.ParseColor(cfg.color)
	if err != nil {
		return err
	}
	fill, err := hexcanvas.ParseFill(cfg.fill)
	if err != nil {
		return err
	}

	c := hexcanvas.NewCanvas(uint32(cfg.width), uint32(cfg.height), hexcanvas.WithFill(fill))
	layout := hexcanvas.NewLayout(orientation,
		hexcanvas.Pt(cfg.sizeX, cfg.sizeY),
		hexcanvas.Pt(cfg.originX, cfg.originY))

	n := hexcanvas.DrawHexGrid(c, layout, col)
	if cfg.labels {
		for h := range layout.Hexes(c.Width(), c.Height()) {
			hexcanvas.LabelHex(c, layout, h, col)
		}
	}
	hexcanvas.Logger().Info("grid drawn", "hexagons", n, "orientation", orientation)

	if cfg.cols > 0 || cfg.rows > 0 {
		w, h := c.Width(), c.Height()
		if cfg.cols > 0 {
			w = uint32(cfg.cols)
		}
		if cfg.rows > 0 {
			h = uint32(cfg.rows)
		}
		c = c.Resample(w, h)
	}

	enc := glyph.NewEncoder()
	bw := bufio.NewWriter(stdout)
	if cfg.frame {
		writeFramed(bw, enc.String(c))
	} else {
		if err := enc.Encode(bw, c); err != nil {
			return err
		}
	}
	colors, hits, misses := enc.CacheStats()
	hexcanvas.Logger().Debug("glyph memo", "colors", colors, "hits", hits, "misses", misses)
	return bw.Flush()
}

// writeFramed surrounds the glyph art with an ASCII border sized to the
// widest line in terminal cells.
func writeFramed(w *bufio.Writer, art string) {
	lines := strings.Split(strings.TrimSuffix(art, "\n"), "\n")
	width := 0
	for _, line := range lines {
		width = max(width, glyph.Columns(line))
	}

	border := "+" + strings.Repeat("-", width) + "+\n"
	_, _ = w.WriteString(border)
	for _, line := range lines {
		pad := strings.Repeat(" ", width-glyph.Columns(line))
		_, _ = fmt.Fprintf(w, "|%s%s|\n", line, pad)
	}
	_, _ = w.WriteString(border)
}
