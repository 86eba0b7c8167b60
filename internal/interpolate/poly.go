package interpolate

import (
	"fmt"
	"math"
)

// Poly fits a single polynomial to a set of pinned constraints: values at
// given positions, optionally first and second derivatives at further
// positions. The polynomial degree is one less than the total number of
// constraints.
type Poly struct {
	xs     [][]float64
	ncoeff int
}

// NewPoly takes up to three position lists: positions where function values
// are pinned, positions where first derivatives are pinned, and positions
// where second derivatives are pinned.
func NewPoly(points ...[]float64) *Poly {
	if len(points) == 0 || len(points) > 3 {
		panic(fmt.Sprintf("interpolate: need 1..3 constraint lists, got %d", len(points)))
	}
	n := 0
	for _, p := range points {
		n += len(p)
	}
	if n < 1 {
		panic("interpolate: no constraints given")
	}
	return &Poly{xs: points, ncoeff: n}
}

// Coefficients solves for the polynomial coefficients given the constraint
// values, ordered as the positions were given to NewPoly. The returned slice
// is indexed by power of x.
func (p *Poly) Coefficients(values ...float64) []float64 {
	if len(values) != p.ncoeff {
		panic(fmt.Sprintf("interpolate: got %d values for %d constraints", len(values), p.ncoeff))
	}

	a := make([][]float64, p.ncoeff)
	row := 0
	for order, positions := range p.xs {
		for _, x := range positions {
			a[row] = constraintRow(x, order, p.ncoeff)
			row++
		}
	}

	b := make([]float64, p.ncoeff)
	copy(b, values)
	return solve(a, b)
}

// Eval evaluates the polynomial with the given coefficients at x.
func Eval(x float64, coeffs []float64) float64 {
	v := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		v = v*x + coeffs[i]
	}
	return v
}

func constraintRow(x float64, order, n int) []float64 {
	row := make([]float64, n)
	for j := order; j < n; j++ {
		c := 1.0
		for k := 0; k < order; k++ {
			c *= float64(j - k)
		}
		row[j] = c * math.Pow(x, float64(j-order))
	}
	return row
}

// solve performs Gaussian elimination with partial pivoting. The systems
// here are tiny (at most 5x5), dense and well conditioned.
func solve(a [][]float64, b []float64) []float64 {
	n := len(b)

	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		if a[col][col] == 0 {
			panic("interpolate: singular constraint system")
		}

		for r := col + 1; r < n; r++ {
			f := a[r][col] / a[col][col]
			for c := col; c < n; c++ {
				a[r][c] -= f * a[col][c]
			}
			b[r] -= f * b[col]
		}
	}

	x := make([]float64, n)
	for r := n - 1; r >= 0; r-- {
		sum := b[r]
		for c := r + 1; c < n; c++ {
			sum -= a[r][c] * x[c]
		}
		x[r] = sum / a[r][r]
	}
	return x
}
