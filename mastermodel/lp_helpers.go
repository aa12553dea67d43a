package mastermodel

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// solveLE solves min c'x s.t. Ale x <= ble, x >= 0 by introducing one
// slack variable per row and calling gonum's lp.Simplex, which solves the
// equality-constrained standard form min c'x s.t. Ax = b, x >= 0. Returns
// the objective and the original (non-slack) variables.
func solveLE(c []float64, Ale [][]float64, ble []float64, tol float64) (float64, []float64, error) {
	m := len(Ale)
	n := len(c)

	cExt := make([]float64, n+m)
	copy(cExt, c)

	flat := make([]float64, 0, m*(n+m))
	for i, row := range Ale {
		ext := make([]float64, n+m)
		copy(ext, row)
		ext[n+i] = 1 // slack
		flat = append(flat, ext...)
	}
	A := mat.NewDense(m, n+m, flat)

	obj, x, err := lp.Simplex(cExt, A, ble, tol, nil)
	if err != nil {
		return 0, nil, err
	}

	return obj, x[:n], nil
}
