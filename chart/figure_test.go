package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/cwbudde/cinderella-arcs/narrative"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// lowRes keeps render tests fast.
func lowRes() Options {
	o := DefaultOptions()
	o.DPI = 72
	return o
}

func TestVariantFigureMetadata(t *testing.T) {
	f := VariantFigure(narrative.YeXian(), DefaultOptions())
	assert.Equal(t, "figure1_ye_xian", f.Name)
	assert.Equal(t, 3600, f.Width)
	assert.Equal(t, 1800, f.Height)
	assert.Equal(t, []string{"Raw clauses", "Medium smooth (w=7)", "Heavy smooth (w=15)"}, f.Series)
	assert.Contains(t, f.Title, "Ye Xian")
}

func TestVariantFigureUsesConfiguredWindows(t *testing.T) {
	o := lowRes()
	o.MediumWindow = 5
	o.HeavyWindow = 21
	f := VariantFigure(narrative.Perrault(), o)
	assert.Equal(t, []string{"Raw clauses", "Medium smooth (w=5)", "Heavy smooth (w=21)"}, f.Series)
}

func TestComparativeFigureMetadata(t *testing.T) {
	f := ComparativeFigure(narrative.All(), DefaultOptions())
	assert.Equal(t, "figure5_comparative", f.Name)
	assert.Equal(t, 4200, f.Width)
	assert.Equal(t, []string{
		"Transformation zone (41-54%)",
		"Ye Xian (c. 850 CE)",
		"Perrault (1697)",
		"Grimm (1812)",
		"Grimm (1857)",
	}, f.Series)

	// The legend lists series in draw order.
	labels, _ := legendEntries(f.chart.Series)
	assert.Equal(t, f.Series, labels)
}

func TestVariantFigureXAxisCoversAllClauses(t *testing.T) {
	for _, v := range narrative.All() {
		f := VariantFigure(v, lowRes())
		ticks := f.chart.XAxis.Ticks
		require.NotEmpty(t, ticks, v.Key)
		assert.Equal(t, 0.0, ticks[0].Value, v.Key)
		assert.Equal(t, float64(v.Len()+1), ticks[len(ticks)-1].Value, v.Key)

		labels, _ := legendEntries(f.chart.Series)
		assert.Equal(t, f.Series, labels, v.Key)
	}
}

func TestGlossValues(t *testing.T) {
	// Chinese glosses have no glyphs in the chart font.
	assert.Empty(t, glossValues(narrative.YeXian(), variantYLimit))
	assert.Empty(t, glossValues(narrative.Perrault(), variantYLimit))

	v := narrative.Grimm1812()
	captions := annotationValues(v, variantYLimit)
	glosses := glossValues(v, variantYLimit)
	require.NotEmpty(t, glosses)
	require.Less(t, len(glosses), len(captions), "some captions carry no gloss")
	captionAt := make(map[float64]float64, len(captions))
	for _, c := range captions {
		captionAt[c.XValue] = c.YValue
	}
	for _, g := range glosses {
		y, ok := captionAt[g.XValue]
		require.True(t, ok, "gloss at %v has no caption", g.XValue)
		assert.InDelta(t, y-glossGap, g.YValue, 1e-12)
		assert.GreaterOrEqual(t, g.YValue, -variantYLimit+0.5-1e-12)
		assert.LessOrEqual(t, y, variantYLimit-0.5)
	}
	// (14, -5) "Mother dies" drops to -7 and is lifted to leave room for
	// "verschied" below it.
	assert.Equal(t, "Mother dies", captions[0].Label)
	assert.Equal(t, "verschied", glosses[0].Label)
	assert.InDelta(t, -5.5, glosses[0].YValue, 1e-12)

	g := glossValues(narrative.Grimm1857(), variantYLimit)
	assert.Contains(t, labelsOf(g), "schöner Baum")
}

func TestDrawableGloss(t *testing.T) {
	assert.True(t, drawableGloss("Blut im Schuck"))
	assert.True(t, drawableGloss("schöner Baum"))
	assert.False(t, drawableGloss("父卒"))
	assert.False(t, drawableGloss(""))
}

func labelsOf(vals []gochart.Value2) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.Label
	}
	return out
}

func TestFiguresOrder(t *testing.T) {
	figs := Figures(narrative.All(), lowRes())
	var names []string
	for _, f := range figs {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		"figure1_ye_xian",
		"figure2_perrault",
		"figure3_grimm_1812",
		"figure4_grimm_1857",
		"figure5_comparative",
	}, names)
}

func TestAnnotationValuesOffsetAndClamp(t *testing.T) {
	vals := annotationValues(narrative.Perrault(), variantYLimit)
	require.Len(t, vals, 7)
	// (27, -4) drops by 2 to -6, then is pulled inside the axis.
	assert.Equal(t, 27.0, vals[0].XValue)
	assert.Equal(t, -5.5, vals[0].YValue)
	assert.Equal(t, "Culcendron", vals[0].Label)
	// (82, 4) rises by 2 to 6, clamped to 5.5.
	assert.Equal(t, 5.5, vals[2].YValue)

	vals = annotationValues(narrative.Grimm1857(), variantYLimit)
	// (5, 3) rises by 2 to 5.
	assert.Equal(t, 5.0, vals[0].YValue)
}

func TestRenderPNG(t *testing.T) {
	var buf bytes.Buffer
	f := VariantFigure(narrative.YeXian(), lowRes())
	require.NoError(t, f.Render(&buf, FormatPNG))
	require.True(t, bytes.HasPrefix(buf.Bytes(), pngSignature), "missing PNG signature")
}

func TestRenderComparativeSVG(t *testing.T) {
	var buf bytes.Buffer
	f := ComparativeFigure(narrative.All(), lowRes())
	require.NoError(t, f.Render(&buf, FormatSVG))
	assert.True(t, strings.Contains(buf.String(), "<svg"), "missing svg root")
}

func TestOptionsWithDefaults(t *testing.T) {
	o := Options{ZoneStart: 60, ZoneEnd: 50}.withDefaults()
	assert.Equal(t, DefaultOptions(), o)
}
