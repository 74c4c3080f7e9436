package chart

import (
	"math"
	"strconv"

	gochart "github.com/wcharczuk/go-chart/v2"
)

// niceTicks returns about n ticks on a 1-2-2.5-5 step grid within
// [lo, hi]. The first and last ticks are always lo and hi.
func niceTicks(lo, hi float64, n int) []gochart.Tick {
	if n < 2 || hi <= lo {
		return nil
	}
	span := hi - lo
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))

	step := mag
	best := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		s := c * mag
		count := math.Ceil(span / s)
		if score := math.Abs(count - float64(n)); score < best {
			best = score
			step = s
		}
	}

	var ticks []gochart.Tick
	for v := math.Ceil(lo/step) * step; v <= hi+step*1e-9; v += step {
		ticks = append(ticks, gochart.Tick{Value: v, Label: formatTick(v)})
	}
	return boundTicks(ticks, lo, hi, step)
}

// boundTicks adds unlabelled ticks at lo and hi when the grid stops short
// of them. go-chart derives the axis range from the outermost ticks.
func boundTicks(ticks []gochart.Tick, lo, hi, step float64) []gochart.Tick {
	eps := step * 1e-9
	if len(ticks) == 0 || ticks[0].Value > lo+eps {
		ticks = append([]gochart.Tick{{Value: lo}}, ticks...)
	}
	if ticks[len(ticks)-1].Value < hi-eps {
		ticks = append(ticks, gochart.Tick{Value: hi})
	}
	return ticks
}

// stepTicks returns ticks at lo, lo+step, ... up to hi.
func stepTicks(lo, hi, step float64) []gochart.Tick {
	var ticks []gochart.Tick
	for v := lo; v <= hi+step*1e-9; v += step {
		ticks = append(ticks, gochart.Tick{Value: v, Label: formatTick(v)})
	}
	return ticks
}

func formatTick(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
