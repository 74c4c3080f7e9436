package savgol

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// analysisFFTSize is the minimum FFT grid used to locate response features.
const analysisFFTSize = 1024

// Analysis holds frequency-domain properties of a smoothing kernel.
// Frequencies are normalised to cycles per sample (Nyquist = 0.5).
type Analysis struct {
	// Taps is the kernel length.
	Taps int
	// DCGain is Σc, 1 for a smoother that preserves constants.
	DCGain float64
	// NoiseGain is Σc², the output variance for unit-variance white noise.
	NoiseGain float64
	// Cutoff3dB is the first frequency where |H| falls to 1/√2 of DC.
	Cutoff3dB float64
	// FirstNull is the first local minimum of |H| above DC.
	FirstNull float64
	// StopbandPeakdB is the largest |H| in dB relative to DC above FirstNull.
	StopbandPeakdB float64
}

// Response evaluates the zero-phase frequency response of a centred kernel
// at a normalised frequency:
//
//	H(f) = Σ_k c[k]·exp(-j2πf(k-half))
func Response(coeffs []float64, freq float64) complex128 {
	half := len(coeffs) / 2
	w := 2 * math.Pi * freq
	var h complex128
	for k, c := range coeffs {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k-half)))
	}
	return h
}

// MagnitudeDB returns 20·log10|H(f)|.
func MagnitudeDB(coeffs []float64, freq float64) float64 {
	return 20 * math.Log10(cmplx.Abs(Response(coeffs, freq)))
}

// Analyze evaluates the kernel on an FFT grid and refines the -3 dB point
// by bisection on the exact response.
func Analyze(coeffs []float64) (Analysis, error) {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}, ErrEmptyKernel
	}

	var dc, noise float64
	for _, c := range coeffs {
		dc += c
		noise += c * c
	}

	mag, err := magnitudeGrid(coeffs)
	if err != nil {
		return Analysis{}, err
	}

	a := Analysis{
		Taps:           n,
		DCGain:         dc,
		NoiseGain:      noise,
		Cutoff3dB:      0.5,
		FirstNull:      0.5,
		StopbandPeakdB: math.Inf(-1),
	}
	if dc == 0 {
		return a, nil
	}

	size := len(mag)
	bins := size/2 + 1
	ref := math.Abs(dc)
	target := ref / math.Sqrt2

	for i := 1; i < bins; i++ {
		if mag[i] < target {
			a.Cutoff3dB = refineCutoff(coeffs, target, float64(i-1)/float64(size), float64(i)/float64(size))
			break
		}
	}

	null := -1
	for i := 1; i < bins-1; i++ {
		if mag[i] <= mag[i-1] && mag[i] < mag[i+1] {
			null = i
			break
		}
	}
	if null < 0 {
		return a, nil
	}
	a.FirstNull = float64(null) / float64(size)

	peak := 0.0
	for i := null; i < bins; i++ {
		peak = math.Max(peak, mag[i])
	}
	if peak > 0 {
		a.StopbandPeakdB = 20 * math.Log10(peak/ref)
	}
	return a, nil
}

// magnitudeGrid returns |H| on a zero-padded FFT grid of at least
// analysisFFTSize points. The linear phase of the causal layout does not
// affect the magnitude.
func magnitudeGrid(coeffs []float64) ([]float64, error) {
	size := analysisFFTSize
	for size < 4*len(coeffs) {
		size *= 2
	}

	in := make([]complex128, size)
	for i, c := range coeffs {
		in[i] = complex(c, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("savgol: fft plan: %w", err)
	}
	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("savgol: fft: %w", err)
	}

	re := make([]float64, size)
	im := make([]float64, size)
	for i, v := range out {
		re[i] = real(v)
		im[i] = imag(v)
	}
	mag := make([]float64, size)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}

func refineCutoff(coeffs []float64, target, lo, hi float64) float64 {
	for range 60 {
		mid := 0.5 * (lo + hi)
		if cmplx.Abs(Response(coeffs, mid)) > target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}
