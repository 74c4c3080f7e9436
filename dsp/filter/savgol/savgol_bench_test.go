package savgol

import (
	"fmt"
	"testing"

	"github.com/cwbudde/cinderella-arcs/internal/testutil"
)

func BenchmarkSmooth(b *testing.B) {
	for _, n := range []int{112, 315, 4096} {
		for _, w := range []int{7, 15} {
			b.Run(fmt.Sprintf("n=%d/w=%d", n, w), func(b *testing.B) {
				data := testutil.Scores(1, -5, 5, n)
				for b.Loop() {
					_ = Smooth(data, w)
				}
			})
		}
	}
}

func BenchmarkCoefficientsUncached(b *testing.B) {
	for b.Loop() {
		if _, err := design(31, 4); err != nil {
			b.Fatal(err)
		}
	}
}
