package testutil

import (
	"math/rand"
)

// Constant returns a series of length n holding value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Polynomial returns p(i) = Σ_j coeffs[j]·i^j for i in [0, n).
func Polynomial(n int, coeffs ...float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		x := float64(i)
		v := 0.0
		for j := len(coeffs) - 1; j >= 0; j-- {
			v = v*x + coeffs[j]
		}
		out[i] = v
	}
	return out
}

// Scores returns a deterministic series of integers in [lo, hi], shaped like
// hand-coded clause sentiment.
func Scores(seed int64, lo, hi, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float64(lo + rng.Intn(hi-lo+1))
	}
	return out
}

// Reversed returns a reversed copy of data.
func Reversed(data []float64) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[len(data)-1-i] = v
	}
	return out
}
