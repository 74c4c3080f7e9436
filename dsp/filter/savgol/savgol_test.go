package savgol

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/cwbudde/cinderella-arcs/internal/testutil"
)

const eps = 1e-12

func TestSmooth_PreservesLength(t *testing.T) {
	for _, n := range []int{7, 8, 15, 16, 112, 257, 275, 315} {
		for _, w := range []int{3, 5, 6, 7, 15} {
			data := testutil.Scores(int64(n*w), -5, 5, n)
			got := Smooth(data, w)
			if len(got) != n {
				t.Fatalf("n=%d w=%d: len = %d", n, w, len(got))
			}
			testutil.RequireFinite(t, got)
		}
	}
}

func TestSmooth_ShortInputIsIdentity(t *testing.T) {
	data := []float64{3, -1, 4, 1, -5, 9}
	got := Smooth(data, 7)
	if diff := cmp.Diff(data, got); diff != "" {
		t.Fatalf("short input changed (-want +got):\n%s", diff)
	}

	got[0] = 100
	if data[0] != 3 {
		t.Fatal("Smooth returned an alias of its input")
	}
}

func TestSmooth_EmptyInput(t *testing.T) {
	got := Smooth(nil, DefaultWindow)
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestSmooth_EvenWindowMatchesNextOdd(t *testing.T) {
	data := testutil.Scores(3, -5, 5, 40)
	for _, w := range []int{2, 4, 6, 14} {
		even := Smooth(data, w)
		odd := Smooth(data, w+1)
		if diff := cmp.Diff(odd, even); diff != "" {
			t.Fatalf("w=%d differs from w=%d (-odd +even):\n%s", w, w+1, diff)
		}
	}
}

func TestSmooth_EvenWindowShortInput(t *testing.T) {
	// Six samples with window 6 becomes window 7: identity.
	data := []float64{1, 2, 3, 4, 5, 6}
	testutil.RequireSliceNearlyEqual(t, Smooth(data, 6), data, 0)
}

func TestSmooth_ConstantSeries(t *testing.T) {
	for _, v := range []float64{0, 1, -3, 4.5} {
		data := testutil.Constant(v, 50)
		for _, w := range []int{3, 7, 15, 31} {
			testutil.RequireSliceNearlyEqual(t, Smooth(data, w), data, eps)
		}
	}
}

func TestSmooth_QuadraticInterior(t *testing.T) {
	// An order-2 fit reproduces a quadratic exactly wherever the window
	// lies inside the data.
	data := testutil.Polynomial(40, 2, -0.5, 0.03)
	w := 9
	got := Smooth(data, w)
	half := w / 2
	testutil.RequireSliceNearlyEqual(t, got[half:len(got)-half], data[half:len(data)-half], 1e-9)
}

func TestSmooth_LinearRampIncludingEdges(t *testing.T) {
	// Reflect padding of a ramp is not a ramp, so only the interior is exact.
	// The edges must stay finite and close.
	data := testutil.Polynomial(30, 1, 0.25)
	got := Smooth(data, 7)
	testutil.RequireSliceNearlyEqual(t, got[3:27], data[3:27], 1e-9)
	testutil.RequireFinite(t, got)
}

func TestSmooth_MirrorSymmetry(t *testing.T) {
	data := testutil.Scores(11, -5, 5, 97)
	for _, w := range []int{5, 7, 15} {
		forward := Smooth(data, w)
		backward := Smooth(testutil.Reversed(data), w)
		testutil.RequireMirrored(t, forward, backward, 1e-12)
	}
}

func TestSmooth_Deterministic(t *testing.T) {
	data := testutil.Scores(5, -5, 5, 64)
	a := Smooth(data, 7)
	b := Smooth(data, 7)
	if !cmp.Equal(a, b) {
		t.Fatal("Smooth is not deterministic")
	}
}

func TestSmooth_DoesNotMutateInput(t *testing.T) {
	data := testutil.Scores(9, -5, 5, 32)
	orig := append([]float64(nil), data...)
	_ = Smooth(data, 7)
	if !cmp.Equal(orig, data) {
		t.Fatal("input mutated")
	}
}

func TestSmooth_DegenerateWindows(t *testing.T) {
	data := testutil.Scores(2, -5, 5, 20)
	// Windows that cannot hold an order-2 fit fall back to identity.
	for _, w := range []int{-8, -3, 0, 1} {
		got := Smooth(data, w)
		testutil.RequireSliceNearlyEqual(t, got, data, 0)
	}
}

func TestSmooth_ImpulseResponseEqualsCoefficients(t *testing.T) {
	data := testutil.Constant(0, 21)
	data[10] = 1
	got := Smooth(data, 7)

	want, err := Coefficients(7, 2)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got[7:14], want, eps)
	for i := range 7 {
		if math.Abs(got[i]) > eps || math.Abs(got[20-i]) > eps {
			t.Fatalf("index %d: leakage outside the kernel support", i)
		}
	}
}

func TestSmooth_ReducesNoise(t *testing.T) {
	data := testutil.Scores(13, -5, 5, 500)
	got := Smooth(data, 15)
	if variance(got) >= variance(data) {
		t.Fatalf("variance not reduced: %v >= %v", variance(got), variance(data))
	}
}

func TestSmooth_WithOrderZeroIsMovingAverage(t *testing.T) {
	data := []float64{0, 3, 6, 3, 0, 3, 6, 3, 0}
	got := Smooth(data, 3, WithOrder(0))
	want := []float64{2, 3, 4, 3, 2, 3, 4, 3, 2}
	opt := cmpopts.EquateApprox(0, eps)
	if diff := cmp.Diff(want, got, opt); diff != "" {
		t.Fatalf("moving average mismatch (-want +got):\n%s", diff)
	}
}

func TestNew(t *testing.T) {
	s, err := New(14)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Window() != 15 {
		t.Fatalf("Window = %d, want 15", s.Window())
	}
	if s.Order() != DefaultOrder {
		t.Fatalf("Order = %d, want %d", s.Order(), DefaultOrder)
	}
	if s.PadMode() != PadReflect {
		t.Fatalf("PadMode = %v, want reflect", s.PadMode())
	}

	c := s.Coefficients()
	c[0] = 42
	if s.Coefficients()[0] == 42 {
		t.Fatal("Coefficients returned internal storage")
	}
}

func TestNew_InvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		window int
		opts   []Option
		want   error
	}{
		{"negative window", -5, nil, ErrInvalidWindow},
		{"window one with order two", 1, nil, ErrInvalidOrder},
		{"order equals window", 5, []Option{WithOrder(5)}, ErrInvalidOrder},
		{"negative order", 7, []Option{WithOrder(-1)}, ErrInvalidOrder},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.window, tc.opts...)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestSmooth_NegativeOrderIsIdentity(t *testing.T) {
	data := testutil.Scores(5, -5, 5, 40)
	got := Smooth(data, 7, WithOrder(-1))
	testutil.RequireSliceNearlyEqual(t, got, data, 0)
}

func TestSmoother_ProcessMatchesSmooth(t *testing.T) {
	data := testutil.Scores(21, -5, 5, 120)
	s, err := New(15)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, s.Process(data), Smooth(data, 15), 0)
}

func TestSmoother_EdgePadMode(t *testing.T) {
	data := testutil.Constant(2, 12)
	data[0] = 5
	reflect := Smooth(data, 5)
	edge := Smooth(data, 5, WithPadMode(PadEdge))
	if reflect[0] == edge[0] {
		t.Fatal("pad mode had no effect on the first sample")
	}
	testutil.RequireSliceNearlyEqual(t, reflect[4:], edge[4:], eps)
}

func variance(x []float64) float64 {
	var mean float64
	for _, v := range x {
		mean += v
	}
	mean /= float64(len(x))
	var ss float64
	for _, v := range x {
		ss += (v - mean) * (v - mean)
	}
	return ss / float64(len(x))
}
