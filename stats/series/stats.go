// Package series computes summary statistics of sentiment series.
package series

import "math"

// Stats holds summary statistics of a series.
type Stats struct {
	Length   int
	Mean     float64
	Variance float64 // population variance
	StdDev   float64
	Skewness float64
	Kurtosis float64 // excess kurtosis
	Max      float64
	MaxPos   int
	Min      float64
	MinPos   int
	Range    float64 // max - min
	// SignChanges counts transitions between strictly positive and strictly
	// negative values. Zeros neither start nor end a crossing.
	SignChanges int
	Positive    float64 // share of samples > 0
	Negative    float64 // share of samples < 0
	Neutral     float64 // share of samples == 0
}

// Calculate computes all statistics in a single pass using Welford's online
// algorithm for the higher-order moments.
func Calculate(data []float64) Stats {
	n := len(data)
	if n == 0 {
		return Stats{}
	}

	var (
		mean float64
		m2   float64
		m3   float64
		m4   float64
	)

	var (
		maxVal   = data[0]
		maxPos   int
		minVal   = data[0]
		minPos   int
		changes  int
		lastSign int
		pos, neg int
	)

	for i, x := range data {
		ni := float64(i + 1)
		delta := x - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i)

		// M4 must be updated before M3, and M3 before M2.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN

		if x > maxVal {
			maxVal = x
			maxPos = i
		}
		if x < minVal {
			minVal = x
			minPos = i
		}

		sign := 0
		switch {
		case x > 0:
			sign = 1
			pos++
		case x < 0:
			sign = -1
			neg++
		}
		if sign != 0 {
			if lastSign != 0 && sign != lastSign {
				changes++
			}
			lastSign = sign
		}
	}

	nf := float64(n)
	variance := m2 / nf

	var skewness, kurtosis float64
	if variance > 0 {
		skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m4/nf)/(variance*variance) - 3
	}

	return Stats{
		Length:      n,
		Mean:        mean,
		Variance:    variance,
		StdDev:      math.Sqrt(variance),
		Skewness:    skewness,
		Kurtosis:    kurtosis,
		Max:         maxVal,
		MaxPos:      maxPos,
		Min:         minVal,
		MinPos:      minPos,
		Range:       maxVal - minVal,
		SignChanges: changes,
		Positive:    float64(pos) / nf,
		Negative:    float64(neg) / nf,
		Neutral:     float64(n-pos-neg) / nf,
	}
}

// Mean returns the arithmetic mean of data using Kahan summation, or 0 for
// an empty slice.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	var sum, c float64
	for _, x := range data {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	return sum / float64(len(data))
}

// Ints converts integer scores to float64 samples.
func Ints(scores []int) []float64 {
	out := make([]float64, len(scores))
	for i, s := range scores {
		out[i] = float64(s)
	}
	return out
}
