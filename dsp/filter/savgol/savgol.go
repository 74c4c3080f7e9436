package savgol

import (
	"github.com/cwbudde/algo-vecmath"
)

// Smoother applies a fixed Savitzky-Golay design to whole series.
// A Smoother holds no per-call state and is safe for concurrent use.
type Smoother struct {
	window int
	order  int
	pad    PadMode
	coeffs []float64
}

// New creates a smoother for the given window size. An even window is
// increased by one. The window must exceed the polynomial order (default 2).
func New(window int, opts ...Option) (*Smoother, error) {
	cfg := applyOptions(opts)
	window = oddWindow(window)

	coeffs, err := Coefficients(window, cfg.order)
	if err != nil {
		return nil, err
	}

	return &Smoother{
		window: window,
		order:  cfg.order,
		pad:    cfg.pad,
		coeffs: coeffs,
	}, nil
}

// Window returns the (odd) window size.
func (s *Smoother) Window() int { return s.window }

// Order returns the polynomial order.
func (s *Smoother) Order() int { return s.order }

// PadMode returns the boundary extension mode.
func (s *Smoother) PadMode() PadMode { return s.pad }

// Coefficients returns a copy of the smoothing coefficients.
func (s *Smoother) Coefficients() []float64 { return cloneSlice(s.coeffs) }

// Process returns the smoothed series. The output has the same length as
// data. Series shorter than the window are returned as an unchanged copy.
func (s *Smoother) Process(data []float64) []float64 {
	if len(data) < s.window {
		return cloneSlice(data)
	}

	half := s.window / 2
	padded := Pad(data, half, s.pad)
	return correlate(padded, s.coeffs, len(data))
}

// correlate computes out[i] = Σ_k c[k]·x[i+k] for i in [0, n), one scaled
// block per tap.
func correlate(x, c []float64, n int) []float64 {
	out := make([]float64, n)
	tmp := make([]float64, n)
	for k, ck := range c {
		if ck == 0 {
			continue
		}
		vecmath.ScaleBlock(tmp, x[k:k+n], ck)
		vecmath.AddBlockInPlace(out, tmp)
	}
	return out
}

// Smooth returns a locally smoothed copy of data using a reflect-padded
// Savitzky-Golay filter of order 2 (see WithOrder).
//
// An even window is increased by one. When data is shorter than the window,
// or the window cannot hold a fit of the requested order, data is returned
// unchanged (as a copy). Smooth never fails.
func Smooth(data []float64, window int, opts ...Option) []float64 {
	window = oddWindow(window)
	if len(data) < window {
		return cloneSlice(data)
	}

	s, err := New(window, opts...)
	if err != nil {
		return cloneSlice(data)
	}
	return s.Process(data)
}
