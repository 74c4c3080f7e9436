package savgol

import (
	"testing"

	"github.com/cwbudde/cinderella-arcs/internal/testutil"
)

func TestPad_Reflect(t *testing.T) {
	got := Pad([]float64{1, 2, 3, 4}, 2, PadReflect)
	testutil.RequireSliceNearlyEqual(t, got, []float64{3, 2, 1, 2, 3, 4, 3, 2}, 0)
}

func TestPad_ReflectFoldsRepeatedly(t *testing.T) {
	// Wider than the data: the mirror bounces between both ends.
	got := Pad([]float64{1, 2, 3}, 5, PadReflect)
	want := []float64{2, 1, 2, 3, 2, 1, 2, 3, 2, 1, 2, 3, 2}
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestPad_SingleSample(t *testing.T) {
	got := Pad([]float64{7}, 2, PadReflect)
	testutil.RequireSliceNearlyEqual(t, got, []float64{7, 7, 7, 7, 7}, 0)
}

func TestPad_Edge(t *testing.T) {
	got := Pad([]float64{1, 2, 3}, 2, PadEdge)
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 1, 1, 2, 3, 3, 3}, 0)
}

func TestPad_Zero(t *testing.T) {
	got := Pad([]float64{1, 2, 3}, 1, PadZero)
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 1, 2, 3, 0}, 0)
}

func TestPad_NoPadding(t *testing.T) {
	data := []float64{1, 2}
	got := Pad(data, -3, PadReflect)
	testutil.RequireSliceNearlyEqual(t, got, data, 0)
	got[0] = 9
	if data[0] != 1 {
		t.Fatal("Pad returned an alias of its input")
	}
}

func TestPad_Empty(t *testing.T) {
	if got := Pad(nil, 3, PadReflect); len(got) != 6 {
		t.Fatalf("len = %d, want 6", len(got))
	}
}

func TestPadModeString(t *testing.T) {
	for mode, want := range map[PadMode]string{
		PadReflect: "reflect",
		PadEdge:    "edge",
		PadZero:    "zero",
		PadMode(9): "unknown",
	} {
		if got := mode.String(); got != want {
			t.Fatalf("%d: got %q, want %q", mode, got, want)
		}
	}
}
