package savgol

import (
	"fmt"
	"math"
	"strconv"

	"github.com/patrickmn/go-cache"
)

// Designs depend only on (window, order) and are reused by every figure, so
// they are memoised for the life of the process.
var designCache = cache.New(cache.NoExpiration, 0)

// Coefficients returns the smoothing coefficients for a centred
// least-squares polynomial fit of the given order over an odd window.
//
// The result has length window, is symmetric and sums to one. Applying it as
// a correlation over window samples yields the fitted polynomial evaluated at
// the window centre. The returned slice is a copy and may be modified.
func Coefficients(window, order int) ([]float64, error) {
	if err := validate(window, order); err != nil {
		return nil, err
	}

	key := strconv.Itoa(window) + "/" + strconv.Itoa(order)
	if v, ok := designCache.Get(key); ok {
		return cloneSlice(v.([]float64)), nil
	}

	c, err := design(window, order)
	if err != nil {
		return nil, err
	}
	designCache.Set(key, c, cache.NoExpiration)
	return cloneSlice(c), nil
}

func cloneSlice(c []float64) []float64 {
	out := make([]float64, len(c))
	copy(out, c)
	return out
}

// design solves the normal equations of the local fit.
//
// With half = window/2 and abscissae u_k = k/half for k in [-half, half],
// the fit value at u = 0 is the first component of (AᵀA)⁻¹Aᵀy where
// A[k][j] = u_k^j. Solving (AᵀA)x = e0 once gives c_k = Σ_j x_j u_k^j.
// Scaling the abscissae to [-1, 1] keeps AᵀA well conditioned and does not
// change the fitted value at the centre.
func design(window, order int) ([]float64, error) {
	half := window / 2
	if half == 0 {
		return []float64{1}, nil
	}

	m := order + 1
	u := make([]float64, window)
	for k := range window {
		u[k] = float64(k-half) / float64(half)
	}

	// Gram matrix entries depend only on i+j: g[i][j] = Σ_k u_k^(i+j).
	moments := make([]float64, 2*order+1)
	for _, uk := range u {
		p := 1.0
		for e := range moments {
			moments[e] += p
			p *= uk
		}
	}

	gram := make([][]float64, m)
	for i := range gram {
		gram[i] = make([]float64, m)
		for j := range gram[i] {
			gram[i][j] = moments[i+j]
		}
	}
	rhs := make([]float64, m)
	rhs[0] = 1

	x, err := solve(gram, rhs)
	if err != nil {
		return nil, fmt.Errorf("savgol: design window=%d order=%d: %w", window, order, err)
	}

	c := make([]float64, window)
	for k, uk := range u {
		// Horner evaluation of Σ_j x_j u^j.
		v := 0.0
		for j := m - 1; j >= 0; j-- {
			v = v*uk + x[j]
		}
		c[k] = v
	}

	// Enforce exact symmetry; the two halves differ only by rounding.
	for k := range half {
		avg := 0.5 * (c[k] + c[window-1-k])
		c[k] = avg
		c[window-1-k] = avg
	}
	return c, nil
}

// solve performs Gaussian elimination with partial pivoting on a copy of a.
func solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	mat := make([][]float64, n)
	for i := range mat {
		mat[i] = make([]float64, n+1)
		copy(mat[i], a[i])
		mat[i][n] = b[i]
	}

	for col := range n {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(mat[row][col]) > math.Abs(mat[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(mat[pivot][col]) < 1e-300 {
			return nil, fmt.Errorf("singular normal equations at column %d", col)
		}
		mat[col], mat[pivot] = mat[pivot], mat[col]

		for row := col + 1; row < n; row++ {
			f := mat[row][col] / mat[col][col]
			if f == 0 {
				continue
			}
			for k := col; k <= n; k++ {
				mat[row][k] -= f * mat[col][k]
			}
		}
	}

	x := make([]float64, n)
	for row := n - 1; row >= 0; row-- {
		sum := mat[row][n]
		for k := row + 1; k < n; k++ {
			sum -= mat[row][k] * x[k]
		}
		x[row] = sum / mat[row][row]
	}
	return x, nil
}
