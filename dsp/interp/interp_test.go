package interp

import (
	"testing"

	"github.com/cwbudde/cinderella-arcs/internal/testutil"
)

func TestHermite4IdentityOnLinearRamp(t *testing.T) {
	xm1, x0, x1, x2 := -1.0, 0.0, 1.0, 2.0
	for _, tc := range []struct {
		t float64
		w float64
	}{
		{t: 0.0, w: 0.0},
		{t: 0.25, w: 0.25},
		{t: 0.5, w: 0.5},
		{t: 1.0, w: 1.0},
	} {
		got := Hermite4(tc.t, xm1, x0, x1, x2)
		if diff := got - tc.w; diff < -1e-12 || diff > 1e-12 {
			t.Fatalf("t=%v: got %v want %v", tc.t, got, tc.w)
		}
	}
}

func TestLinear2(t *testing.T) {
	if got := Linear2(0.25, 2, 4); got != 2.5 {
		t.Fatalf("got %v want 2.5", got)
	}
}

func TestResample_PreservesEndpoints(t *testing.T) {
	data := testutil.Scores(4, -5, 5, 257)
	for _, mode := range []Mode{ModeLinear, ModeHermite} {
		got := Resample(data, 100, mode)
		if len(got) != 100 {
			t.Fatalf("len = %d, want 100", len(got))
		}
		if got[0] != data[0] || got[99] != data[256] {
			t.Fatalf("mode %d: endpoints %v,%v want %v,%v", mode, got[0], got[99], data[0], data[256])
		}
	}
}

func TestResample_LinearRampIsExact(t *testing.T) {
	// A ramp over 11 samples from 0 to 100 resampled to 101 points is 0..100.
	data := testutil.Polynomial(11, 0, 10)
	got := Resample(data, 101, ModeLinear)
	testutil.RequireSliceNearlyEqual(t, got, testutil.Polynomial(101, 0, 1), 1e-9)

	got = Resample(data, 101, ModeHermite)
	testutil.RequireSliceNearlyEqual(t, got, testutil.Polynomial(101, 0, 1), 1e-9)
}

func TestResample_Midpoints(t *testing.T) {
	got := Resample([]float64{0, 4, 2}, 5, ModeLinear)
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 2, 4, 3, 2}, 1e-12)
}

func TestResample_Downsample(t *testing.T) {
	got := Resample([]float64{1, 2, 3, 4, 5}, 3, ModeLinear)
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 3, 5}, 1e-12)
}

func TestResample_LinearStaysWithinRange(t *testing.T) {
	data := testutil.Scores(8, -5, 5, 112)
	testutil.RequireWithin(t, Resample(data, 100, ModeLinear), -5, 5)
}

func TestResample_Degenerate(t *testing.T) {
	if got := Resample(nil, 10, ModeLinear); len(got) != 0 {
		t.Fatalf("empty input: len = %d", len(got))
	}
	if got := Resample([]float64{1, 2}, 0, ModeLinear); len(got) != 0 {
		t.Fatalf("n=0: len = %d", len(got))
	}
	testutil.RequireSliceNearlyEqual(t, Resample([]float64{3}, 4, ModeLinear), []float64{3, 3, 3, 3}, 0)
	testutil.RequireSliceNearlyEqual(t, Resample([]float64{3, 9}, 1, ModeLinear), []float64{3}, 0)
}
