package chart

import (
	"fmt"
	"math"
	"unicode"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/cwbudde/cinderella-arcs/narrative"
)

// Figure sizes in inches.
const (
	variantWidthIn     = 12
	compareWidthIn     = 14
	figureHeightIn     = 6
	variantYLimit      = 6
	compareYLimit      = 5
	comparativeFile    = "figure5_comparative"
	comparativeTitle   = "Figure 5. Comparative Sentiment Analysis: Four Cinderella Variants"
	labelFontSizePt    = 8
	axisNameFontSizePt = 11
	titleFontSizePt    = 12
)

// glossGap is the vertical distance of a gloss below its caption, in
// sentiment units.
const glossGap = 0.6

var (
	rawColor   = drawing.ColorFromHex("808080").WithAlpha(102)
	gridColor  = drawing.ColorFromHex("b0b0b0").WithAlpha(77)
	zoneColor  = drawing.ColorFromHex("FFD700").WithAlpha(38)
	glossColor = drawing.ColorFromHex("404040")
)

// Figure is a chart ready to render.
type Figure struct {
	// Name is the output file stem, e.g. "figure1_ye_xian".
	Name   string
	Title  string
	Width  int
	Height int
	// Series lists the legend names of the plotted curves in draw order.
	Series []string

	chart gochart.Chart
}

// VariantFigure plots one variant: raw scores, medium and heavy smoothing,
// a zero line and its annotations.
func VariantFigure(v *narrative.Variant, opts Options) *Figure {
	opts = opts.withDefaults()

	n := v.Len()
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i + 1)
	}

	raw := gochart.ContinuousSeries{
		Name:    "Raw clauses",
		XValues: x,
		YValues: v.Values(),
		Style: gochart.Style{
			StrokeColor: rawColor,
			StrokeWidth: opts.scale(0.8),
		},
	}
	medium := gochart.ContinuousSeries{
		Name:    fmt.Sprintf("Medium smooth (w=%d)", opts.MediumWindow),
		XValues: x,
		YValues: v.Smoothed(opts.MediumWindow, opts.smoothing()),
		Style: gochart.Style{
			StrokeColor: drawing.ColorFromHex(v.MediumColor),
			StrokeWidth: opts.scale(2),
		},
	}
	heavy := gochart.ContinuousSeries{
		Name:    fmt.Sprintf("Heavy smooth (w=%d)", opts.HeavyWindow),
		XValues: x,
		YValues: v.Smoothed(opts.HeavyWindow, opts.smoothing()),
		Style: gochart.Style{
			StrokeColor: drawing.ColorFromHex(v.HeavyColor),
			StrokeWidth: opts.scale(2.5),
		},
	}

	labels := gochart.AnnotationSeries{
		Style: gochart.Style{
			FontSize:    labelFontSizePt,
			StrokeColor: rawColor,
		},
		Annotations: annotationValues(v, variantYLimit),
	}
	series := []gochart.Series{raw, medium, heavy, labels}
	if gl := glossValues(v, variantYLimit); len(gl) > 0 {
		series = append(series, gochart.AnnotationSeries{
			Style: gochart.Style{
				FontSize:    labelFontSizePt,
				FontColor:   glossColor,
				StrokeColor: rawColor,
			},
			Annotations: gl,
		})
	}

	xmax := float64(n + 1)
	c := baseChart(v.Title, opts, variantWidthIn)
	c.XAxis = xAxis("Narrative Units", 0, xmax, niceTicks(0, xmax, 7), opts)
	c.YAxis = yAxis(variantYLimit, opts)
	c.Series = series
	c.Elements = []gochart.Renderable{legend(&c, upperRight, opts)}

	return &Figure{
		Name:   v.FileName,
		Title:  v.Title,
		Width:  c.Width,
		Height: c.Height,
		Series: []string{raw.Name, medium.Name, heavy.Name},
		chart:  c,
	}
}

// ComparativeFigure overlays the variants on a 0-100 % progression axis.
func ComparativeFigure(vs []*narrative.Variant, opts Options) *Figure {
	opts = opts.withDefaults()

	points := opts.ComparePoints
	x := make([]float64, points)
	for i := range x {
		x[i] = 100 * float64(i) / float64(points-1)
	}

	zone := gochart.ContinuousSeries{
		Name:    fmt.Sprintf("Transformation zone (%s-%s%%)", formatTick(opts.ZoneStart), formatTick(opts.ZoneEnd)),
		XValues: []float64{opts.ZoneStart, opts.ZoneEnd},
		YValues: []float64{compareYLimit, compareYLimit},
		Style: gochart.Style{
			StrokeColor: zoneColor,
			StrokeWidth: 1,
			FillColor:   zoneColor,
		},
	}

	// The zone fills down to the canvas edge, so it is drawn first and the
	// curves stay on top.
	series := []gochart.Series{zone}
	names := []string{zone.Name}
	for _, v := range vs {
		s := gochart.ContinuousSeries{
			Name:    v.Label(),
			XValues: x,
			YValues: v.Progression(points, opts.CompareWindow, opts.smoothing()),
			Style: gochart.Style{
				StrokeColor: drawing.ColorFromHex(v.CompareColor),
				StrokeWidth: opts.scale(2),
			},
		}
		series = append(series, s)
		names = append(names, s.Name)
	}

	c := baseChart(comparativeTitle, opts, compareWidthIn)
	c.XAxis = xAxis("Narrative Progression (%)", 0, 100, stepTicks(0, 100, 20), opts)
	c.YAxis = yAxis(compareYLimit, opts)
	c.Series = series
	c.Elements = []gochart.Renderable{legend(&c, upperLeft, opts)}

	return &Figure{
		Name:   comparativeFile,
		Title:  comparativeTitle,
		Width:  c.Width,
		Height: c.Height,
		Series: names,
		chart:  c,
	}
}

// Figures returns the four variant figures followed by the comparative one.
func Figures(vs []*narrative.Variant, opts Options) []*Figure {
	figs := make([]*Figure, 0, len(vs)+1)
	for _, v := range vs {
		figs = append(figs, VariantFigure(v, opts))
	}
	return append(figs, ComparativeFigure(vs, opts))
}

// annotationValues places each caption above positive and below negative
// points, offset by the variant's annotation distance and kept half a unit
// inside ±limit. A caption with a drawable gloss keeps room for it below.
func annotationValues(v *narrative.Variant, limit float64) []gochart.Value2 {
	anns := v.Annotations()
	out := make([]gochart.Value2, 0, len(anns))
	for _, a := range anns {
		out = append(out, gochart.Value2{
			XValue: float64(a.Clause),
			YValue: captionY(v, a, limit),
			Label:  a.Label,
		})
	}
	return out
}

// glossValues places each Latin-script gloss one line below its caption.
// Glosses in other scripts are skipped; the chart font has no glyphs for
// them.
func glossValues(v *narrative.Variant, limit float64) []gochart.Value2 {
	var out []gochart.Value2
	for _, a := range v.Annotations() {
		if !drawableGloss(a.Gloss) {
			continue
		}
		out = append(out, gochart.Value2{
			XValue: float64(a.Clause),
			YValue: captionY(v, a, limit) - glossGap,
			Label:  a.Gloss,
		})
	}
	return out
}

func captionY(v *narrative.Variant, a narrative.Annotation, limit float64) float64 {
	y := float64(a.Sentiment)
	if a.Sentiment > 0 {
		y += v.AnnotationOffset
	} else {
		y -= v.AnnotationOffset
	}
	lo := -limit + 0.5
	if drawableGloss(a.Gloss) {
		lo += glossGap
	}
	return math.Max(lo, math.Min(limit-0.5, y))
}

func drawableGloss(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.In(r, unicode.Latin, unicode.Common) {
			return false
		}
	}
	return true
}

func baseChart(title string, opts Options, widthIn float64) gochart.Chart {
	pad := int(opts.scale(10))
	return gochart.Chart{
		Title:      title,
		TitleStyle: gochart.Style{FontSize: titleFontSizePt},
		Width:      int(widthIn * opts.DPI),
		Height:     int(figureHeightIn * opts.DPI),
		DPI:        opts.DPI,
		Background: gochart.Style{
			Padding: gochart.Box{Top: pad * 4, Left: pad, Right: pad, Bottom: pad},
		},
	}
}

func xAxis(name string, lo, hi float64, ticks []gochart.Tick, opts Options) gochart.XAxis {
	return gochart.XAxis{
		Name:           name,
		NameStyle:      gochart.Style{FontSize: axisNameFontSizePt},
		Range:          &gochart.ContinuousRange{Min: lo, Max: hi},
		Ticks:          ticks,
		GridMajorStyle: gridStyle(opts),
	}
}

func yAxis(limit float64, opts Options) gochart.YAxis {
	step := 2.0
	if limit <= 5 {
		step = 1
	}
	return gochart.YAxis{
		Name:           "Sentiment",
		NameStyle:      gochart.Style{FontSize: axisNameFontSizePt},
		Range:          &gochart.ContinuousRange{Min: -limit, Max: limit},
		Ticks:          stepTicks(-limit, limit, step),
		GridMajorStyle: gridStyle(opts),
		Zero: gochart.GridLine{
			Value: 0,
			Style: gochart.Style{
				StrokeColor: drawing.ColorBlack,
				StrokeWidth: opts.scale(0.5),
			},
		},
	}
}

func gridStyle(opts Options) gochart.Style {
	return gochart.Style{
		StrokeColor: gridColor,
		StrokeWidth: opts.scale(0.8),
	}
}
