// Package chart renders sentiment-arc figures with go-chart.
//
// [VariantFigure] draws one retelling: the raw clause scores, a medium and
// a heavy Savitzky-Golay curve, a zero line and captions for key events.
// [ComparativeFigure] overlays all variants on a common 0-100 % progression
// axis and shades the transformation zone. Figures render to PNG or SVG;
// [RenderAll] writes a set of figures concurrently.
package chart
