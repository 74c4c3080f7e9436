package interp

// Mode selects the interpolation kernel used by Resample.
type Mode int

const (
	// ModeLinear joins neighbouring samples with straight lines.
	ModeLinear Mode = iota
	// ModeHermite uses 4-point cubic Hermite interpolation. Outer neighbours
	// past the ends are extrapolated linearly.
	ModeHermite
)

// Linear2 interpolates from x0 to x1 at fraction t in [0, 1].
func Linear2(t, x0, x1 float64) float64 {
	return x0 + t*(x1-x0)
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}

// Resample evaluates data, taken as evenly spaced samples over [0, 1], at n
// evenly spaced points over the same interval. The first and last output
// samples equal the first and last input samples.
//
// An empty input or n <= 0 yields an empty slice; a single input sample is
// repeated n times.
func Resample(data []float64, n int, mode Mode) []float64 {
	if n <= 0 || len(data) == 0 {
		return []float64{}
	}
	out := make([]float64, n)
	if len(data) == 1 {
		for i := range out {
			out[i] = data[0]
		}
		return out
	}
	if n == 1 {
		out[0] = data[0]
		return out
	}

	last := len(data) - 1
	step := float64(last) / float64(n-1)
	for i := range out {
		pos := float64(i) * step
		idx := int(pos)
		if idx >= last {
			out[i] = data[last]
			continue
		}
		frac := pos - float64(idx)
		switch mode {
		case ModeHermite:
			out[i] = Hermite4(frac, at(data, idx-1), data[idx], data[idx+1], at(data, idx+2))
		default:
			out[i] = Linear2(frac, data[idx], data[idx+1])
		}
	}
	out[n-1] = data[last]
	return out
}

// at returns data[i], extending the series linearly one sample past either
// end. Callers guarantee len(data) >= 2.
func at(data []float64, i int) float64 {
	last := len(data) - 1
	if i < 0 {
		return 2*data[0] - data[1]
	}
	if i > last {
		return 2*data[last] - data[last-1]
	}
	return data[i]
}
