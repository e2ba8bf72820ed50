// Package render draws the page-view charts as PNG files using go-chart.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/sartorproj/pageviews/logger"
)

// Output file names.
const (
	LinePlotFile = "line_plot.png"
	BarPlotFile  = "bar_plot.png"
	BoxPlotFile  = "box_plot.png"
)

// Size is an image size in pixels.
type Size struct {
	Width  int
	Height int
}

// Config holds output settings shared by the renderers.
type Config struct {
	OutputDir string
	LineSize  Size
	BarSize   Size
	// BoxSize is the size of the composed image; each panel gets half the width.
	BoxSize Size
}

// DefaultConfig returns the default output settings: the working directory
// and figure sizes at 100 px per inch of the reference figures.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: ".",
		LineSize:  Size{Width: 1200, Height: 500},
		BarSize:   Size{Width: 800, Height: 600},
		BoxSize:   Size{Width: 1400, Height: 500},
	}
}

func (c *Config) path(name string) string {
	dir := c.OutputDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, name)
}

// Figure describes a written chart image.
type Figure struct {
	Path   string
	Title  string
	Width  int
	Height int
}

// colours shared by the renderers
var (
	firebrick = drawing.ColorFromHex("b22222")
	flierFill = drawing.ColorBlack

	axisTextColor = drawing.ColorFromHex("333333")

	// monthColors is the categorical palette, one colour per calendar month.
	monthColors = []drawing.Color{
		drawing.ColorFromHex("1f77b4"),
		drawing.ColorFromHex("ff7f0e"),
		drawing.ColorFromHex("2ca02c"),
		drawing.ColorFromHex("d62728"),
		drawing.ColorFromHex("9467bd"),
		drawing.ColorFromHex("8c564b"),
		drawing.ColorFromHex("e377c2"),
		drawing.ColorFromHex("7f7f7f"),
		drawing.ColorFromHex("bcbd22"),
		drawing.ColorFromHex("17becf"),
		drawing.ColorFromHex("aec7e8"),
		drawing.ColorFromHex("ffbb78"),
	}
)

func paletteColor(i int) drawing.Color {
	return monthColors[i%len(monthColors)]
}

// renderPNG renders ch into memory so a failed render never leaves a partial
// file behind.
func renderPNG(ch chart.Chart) ([]byte, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %q: %w", ch.Title, err)
	}
	return buf.Bytes(), nil
}

func renderImage(ch chart.Chart) (image.Image, error) {
	data, err := renderPNG(ch)
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", ch.Title, err)
	}
	return img, nil
}

// hstack places images side by side on a white canvas.
func hstack(imgs ...image.Image) *image.RGBA {
	width, height := 0, 0
	for _, img := range imgs {
		b := img.Bounds()
		width += b.Dx()
		height = max(height, b.Dy())
	}
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(out, out.Bounds(), image.White, image.Point{}, draw.Src)

	x := 0
	for _, img := range imgs {
		b := img.Bounds()
		draw.Draw(out, image.Rect(x, 0, x+b.Dx(), b.Dy()), img, b.Min, draw.Over)
		x += b.Dx()
	}
	return out
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logger.Debug("wrote chart", "path", path, "bytes", len(data))
	return nil
}

func encodeFile(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return writeFile(path, buf.Bytes())
}

// niceAxisBounds pads [min, max] by 5% and rounds outwards to the order of
// magnitude of the span.
func niceAxisBounds(min, max float64) (float64, float64) {
	if max <= min {
		max = min + 1
	}
	span := max - min
	pad := span * 0.05
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// intValueFormatter prints axis values without decimals.
func intValueFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return fmt.Sprintf("%v", v)
}

// categoryTicks labels positions 0..n-1 and adds unlabelled ticks at lo and
// hi, which go-chart uses as the axis range.
func categoryTicks(labels []string, lo, hi float64) []chart.Tick {
	ticks := make([]chart.Tick, 0, len(labels)+2)
	ticks = append(ticks, chart.Tick{Value: lo})
	for i, l := range labels {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: l})
	}
	return append(ticks, chart.Tick{Value: hi})
}
