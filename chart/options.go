package chart

import "github.com/cwbudde/cinderella-arcs/dsp/filter/savgol"

// Options controls figure geometry and smoothing.
type Options struct {
	// DPI sets the pixel density; figure sizes are given in inches.
	DPI float64

	MediumWindow int
	HeavyWindow  int
	// Order is the polynomial order of every smoothing fit; 0 selects
	// savgol.DefaultOrder.
	Order int

	// ComparePoints is the number of progression samples per variant on
	// the comparative figure, CompareWindow the smoothing window applied
	// after resampling.
	ComparePoints int
	CompareWindow int

	// ZoneStart and ZoneEnd bound the shaded transformation zone in percent.
	ZoneStart float64
	ZoneEnd   float64
}

// DefaultOptions returns the settings of the published figures.
func DefaultOptions() Options {
	return Options{
		DPI:           300,
		MediumWindow:  savgol.DefaultWindow,
		HeavyWindow:   15,
		Order:         savgol.DefaultOrder,
		ComparePoints: 100,
		CompareWindow: savgol.DefaultWindow,
		ZoneStart:     41,
		ZoneEnd:       54,
	}
}

// withDefaults fills unset fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.DPI <= 0 {
		o.DPI = d.DPI
	}
	if o.MediumWindow <= 0 {
		o.MediumWindow = d.MediumWindow
	}
	if o.HeavyWindow <= 0 {
		o.HeavyWindow = d.HeavyWindow
	}
	if o.Order <= 0 {
		o.Order = d.Order
	}
	if o.ComparePoints <= 1 {
		o.ComparePoints = d.ComparePoints
	}
	if o.CompareWindow <= 0 {
		o.CompareWindow = d.CompareWindow
	}
	if o.ZoneEnd <= o.ZoneStart {
		o.ZoneStart, o.ZoneEnd = d.ZoneStart, d.ZoneEnd
	}
	return o
}

func (o Options) smoothing() savgol.Option {
	return savgol.WithOrder(o.Order)
}

// scale converts a size in points to pixels at the configured DPI.
func (o Options) scale(pt float64) float64 {
	return pt * o.DPI / 72
}
