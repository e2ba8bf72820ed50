package render

import (
	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type legendEntry struct {
	Label string
	Color drawing.Color
}

// titledLegend returns an element drawing a framed legend with a title in the
// upper-left corner of the plot area.
func titledLegend(title string, entries []legendEntry) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		font, err := elementFont(defaults)
		if err != nil {
			return
		}

		const (
			fontSize = 8.0
			pad      = 5
			swatch   = 10
			gap      = 4
		)

		r.ResetStyle()
		r.SetFont(font)
		r.SetFontSize(fontSize)

		titleBox := r.MeasureText(title)
		width := titleBox.Width()
		lineHeight := max(titleBox.Height(), swatch)
		for _, e := range entries {
			tb := r.MeasureText(e.Label)
			width = max(width, swatch+gap+tb.Width())
			lineHeight = max(lineHeight, tb.Height())
		}

		left := canvasBox.Left + pad
		top := canvasBox.Top + pad
		right := left + width + 2*pad
		bottom := top + pad + (len(entries)+1)*(lineHeight+gap) + pad

		r.SetFillColor(drawing.ColorWhite.WithAlpha(220))
		r.SetStrokeColor(drawing.ColorFromHex("cccccc"))
		r.SetStrokeWidth(1)
		fillRect(r, left, top, right, bottom)

		r.SetFontColor(drawing.ColorBlack)
		y := top + pad + lineHeight
		r.Text(title, left+pad+(width-titleBox.Width())/2, y)

		for _, e := range entries {
			y += lineHeight + gap
			r.SetFillColor(e.Color)
			r.SetStrokeColor(e.Color)
			fillRect(r, left+pad, y-swatch, left+pad+swatch, y)

			r.SetFontColor(drawing.ColorBlack)
			r.Text(e.Label, left+pad+swatch+gap, y)
		}
	}
}

// rotatedTickLabels draws labels at category positions 0..n-1 below the plot
// area, reading bottom to top, with the axis name underneath. The x axis of
// the chart carries blank tick labels so go-chart never lays out rotated text.
func rotatedTickLabels(labels []string, lo, hi float64, name string) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		if hi <= lo {
			return
		}
		font, err := elementFont(defaults)
		if err != nil {
			return
		}

		const (
			fontSize = 10.0
			pad      = 6
		)

		r.ResetStyle()
		r.SetFont(font)
		r.SetFontSize(fontSize)
		r.SetFontColor(axisTextColor)

		// Measure first: rotation applies to measurement as well.
		boxes := make([]chart.Box, len(labels))
		longest := 0
		for i, l := range labels {
			boxes[i] = r.MeasureText(l)
			longest = max(longest, boxes[i].Width())
		}

		r.SetTextRotation(chart.DegreesToRadians(270))
		for i, l := range labels {
			x := canvasBox.Left + int(float64(canvasBox.Width())*(float64(i)-lo)/(hi-lo))
			r.Text(l, x+boxes[i].Height()/2, canvasBox.Bottom+pad+boxes[i].Width())
		}
		r.ClearTextRotation()

		if name != "" {
			nb := r.MeasureText(name)
			x := canvasBox.Left + (canvasBox.Width()-nb.Width())/2
			r.Text(name, x, canvasBox.Bottom+2*pad+longest+nb.Height())
		}
	}
}

func elementFont(defaults chart.Style) (*truetype.Font, error) {
	if defaults.Font != nil {
		return defaults.Font, nil
	}
	return chart.GetDefaultFont()
}
