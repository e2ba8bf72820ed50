package render

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/sartorproj/pageviews/stats"
)

// The series below implement chart.Series directly. They are not value
// providers, so every chart using them sets explicit axis ranges or ticks.

// emptySeries draws nothing; it lets go-chart lay out axes and title when
// there is no data.
type emptySeries struct{}

func (emptySeries) GetName() string { return "" }
func (emptySeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (emptySeries) GetStyle() chart.Style { return chart.Style{} }
func (emptySeries) Validate() error { return nil }
func (emptySeries) Render(chart.Renderer, chart.Box, chart.Range, chart.Range, chart.Style) {}

// barSeries draws one bar per category position, shifted by Offset.
type barSeries struct {
	Name   string
	Color  drawing.Color
	Offset float64
	Width  float64
	Values []float64
}

func (bs barSeries) GetName() string { return bs.Name }
func (bs barSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (bs barSeries) GetStyle() chart.Style {
	return chart.Style{FillColor: bs.Color, StrokeColor: bs.Color}
}
func (bs barSeries) Validate() error { return nil }

func (bs barSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	r.ResetStyle()
	r.SetFillColor(bs.Color)
	r.SetStrokeColor(bs.Color)
	r.SetStrokeWidth(0.5)

	base := canvasBox.Bottom - yrange.Translate(clamp(0, yrange))
	for i, v := range bs.Values {
		if v == 0 {
			continue
		}
		left := float64(i) + bs.Offset
		x0 := canvasBox.Left + xrange.Translate(left)
		x1 := canvasBox.Left + xrange.Translate(left+bs.Width)
		if x1 <= x0 {
			x1 = x0 + 1
		}
		top := canvasBox.Bottom - yrange.Translate(clamp(v, yrange))
		fillRect(r, x0, top, x1, base)
	}
}

// boxSeries draws one box-and-whisker glyph per group at positions 0..n-1.
// Glyphs are clipped to the y range; fliers outside it are skipped.
type boxSeries struct {
	Groups []stats.Group
	Colors []drawing.Color
	Width  float64
}

func (bs boxSeries) GetName() string { return "" }
func (bs boxSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (bs boxSeries) GetStyle() chart.Style { return chart.Style{} }
func (bs boxSeries) Validate() error { return nil }

func (bs boxSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	y := func(v float64) int {
		return canvasBox.Bottom - yrange.Translate(clamp(v, yrange))
	}
	half := bs.Width / 2

	for i, g := range bs.Groups {
		if g.Box.N == 0 {
			continue
		}
		b := g.Box
		center := float64(i)
		xl := canvasBox.Left + xrange.Translate(center-half)
		xr := canvasBox.Left + xrange.Translate(center+half)
		xc := canvasBox.Left + xrange.Translate(center)
		capL := canvasBox.Left + xrange.Translate(center-half/2)
		capR := canvasBox.Left + xrange.Translate(center+half/2)

		r.ResetStyle()
		r.SetFillColor(bs.Colors[i%len(bs.Colors)])
		r.SetStrokeColor(drawing.ColorFromHex("3f3f3f"))
		r.SetStrokeWidth(1)
		fillRect(r, xl, y(b.Q3), xr, y(b.Q1))

		line(r, xl, y(b.Median), xr, y(b.Median))
		line(r, xc, y(b.Q3), xc, y(b.UpperWhisker))
		line(r, xc, y(b.Q1), xc, y(b.LowerWhisker))
		line(r, capL, y(b.UpperWhisker), capR, y(b.UpperWhisker))
		line(r, capL, y(b.LowerWhisker), capR, y(b.LowerWhisker))

		r.SetFillColor(flierFill)
		r.SetStrokeColor(flierFill)
		for _, f := range b.Fliers {
			if f < yrange.GetMin() || f > yrange.GetMax() {
				continue
			}
			diamond(r, xc, y(f), 3)
		}
	}
}

func clamp(v float64, rng chart.Range) float64 {
	return min(max(v, rng.GetMin()), rng.GetMax())
}

func fillRect(r chart.Renderer, x0, y0, x1, y1 int) {
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.Close()
	r.FillStroke()
}

func line(r chart.Renderer, x0, y0, x1, y1 int) {
	r.MoveTo(x0, y0)
	r.LineTo(x1, y1)
	r.Stroke()
}

func diamond(r chart.Renderer, x, y, size int) {
	r.MoveTo(x, y-size)
	r.LineTo(x+size, y)
	r.LineTo(x, y+size)
	r.LineTo(x-size, y)
	r.Close()
	r.FillStroke()
}
