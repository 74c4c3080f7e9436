package savgol

// PadMode selects how a series is extended beyond its boundaries.
type PadMode int

const (
	// PadReflect mirrors the samples next to each boundary without repeating
	// the boundary sample itself: [a b c d] -> [c b | a b c d | c b].
	PadReflect PadMode = iota
	// PadEdge repeats the boundary sample: [a b c d] -> [a a | a b c d | d d].
	PadEdge
	// PadZero extends with zeros.
	PadZero
)

// String returns the lower-case mode name.
func (m PadMode) String() string {
	switch m {
	case PadReflect:
		return "reflect"
	case PadEdge:
		return "edge"
	case PadZero:
		return "zero"
	default:
		return "unknown"
	}
}

// Pad returns a new slice holding data extended by n samples on both sides.
// Reflection folds repeatedly when n exceeds len(data)-1, so any n >= 0 is
// accepted. A negative n is treated as zero.
func Pad(data []float64, n int, mode PadMode) []float64 {
	if n < 0 {
		n = 0
	}
	size := len(data)
	out := make([]float64, size+2*n)
	copy(out[n:], data)
	if size == 0 || n == 0 {
		return out
	}

	for i := range n {
		left := -n + i
		right := size + i
		switch mode {
		case PadEdge:
			out[i] = data[0]
			out[n+size+i] = data[size-1]
		case PadZero:
			// already zero
		default:
			out[i] = data[reflectIndex(left, size)]
			out[n+size+i] = data[reflectIndex(right, size)]
		}
	}
	return out
}

// reflectIndex maps an out-of-range index onto [0, size) by mirroring about
// the first and last sample.
func reflectIndex(i, size int) int {
	if size == 1 {
		return 0
	}
	period := 2 * (size - 1)
	i %= period
	if i < 0 {
		i += period
	}
	if i >= size {
		i = period - i
	}
	return i
}
