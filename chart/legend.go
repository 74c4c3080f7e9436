package chart

import (
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Legend placement inside the plot area.
type legendCorner int

const (
	upperLeft legendCorner = iota
	upperRight
)

// legendEntries returns the named, visible series in draw order.
// Annotation series carry no legend entry.
func legendEntries(series []gochart.Series) (labels []string, styles []gochart.Style) {
	for _, s := range series {
		if _, ok := s.(gochart.AnnotationSeries); ok {
			continue
		}
		st := s.GetStyle()
		if st.Hidden || s.GetName() == "" {
			continue
		}
		labels = append(labels, s.GetName())
		styles = append(styles, st)
	}
	return labels, styles
}

// legend draws a boxed key of the chart's series in the given corner of the
// plot area. Spacing scales with the configured DPI; filled series are
// shown as a swatch, stroked series as a line.
func legend(c *gochart.Chart, corner legendCorner, opts Options) gochart.Renderable {
	return func(r gochart.Renderer, cb gochart.Box, chartDefaults gochart.Style) {
		style := legendStyle().InheritFrom(chartDefaults.InheritFrom(gochart.Style{
			FillColor:   drawing.ColorWhite,
			FontColor:   gochart.DefaultTextColor,
			StrokeColor: gochart.DefaultAxisColor,
			StrokeWidth: gochart.DefaultAxisLineWidth,
		}))

		labels, styles := legendEntries(c.Series)
		if len(labels) == 0 {
			return
		}

		pad := int(opts.scale(4))
		gap := int(opts.scale(4))
		lineLen := int(opts.scale(18))
		rowGap := int(opts.scale(3))
		margin := int(opts.scale(6))

		style.GetTextOptions().WriteToRenderer(r)
		textW, textH := 0, 0
		heights := make([]int, len(labels))
		for i, l := range labels {
			tb := r.MeasureText(l)
			heights[i] = tb.Height()
			textW = max(textW, tb.Width())
			textH += tb.Height()
		}
		width := 2*pad + lineLen + gap + textW
		height := 2*pad + textH + rowGap*(len(labels)-1)

		box := gochart.Box{Top: cb.Top + margin, Left: cb.Left + margin}
		if corner == upperRight {
			box.Left = cb.Right - margin - width
		}
		box.Right = box.Left + width
		box.Bottom = box.Top + height
		gochart.Draw.Box(r, box, style)

		y := box.Top + pad
		for i, l := range labels {
			h := heights[i]
			mid := y + h/2
			lx := box.Left + pad
			st := styles[i]

			if st.FillColor.IsZero() {
				r.SetStrokeColor(st.GetStrokeColor())
				r.SetStrokeWidth(st.GetStrokeWidth())
				r.SetStrokeDashArray(nil)
				r.MoveTo(lx, mid)
				r.LineTo(lx+lineLen, mid)
				r.Stroke()
			} else {
				gochart.Draw.Box(r, gochart.Box{
					Top: y + h/4, Left: lx, Right: lx + lineLen, Bottom: y + h - h/4,
				}, gochart.Style{FillColor: st.FillColor, StrokeColor: st.FillColor, StrokeWidth: 1})
			}

			style.GetTextOptions().WriteToRenderer(r)
			r.Text(l, lx+lineLen+gap, y+h)
			y += h + rowGap
		}
	}
}

func legendStyle() gochart.Style {
	return gochart.Style{FontSize: 9}
}
