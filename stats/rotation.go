package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"gorain/internal/errors"
)

// Varimax rotates a loadings matrix toward the varimax criterion, returning
// the rotated loadings and the orthogonal rotation matrix. Gamma 1 is
// varimax, gamma 0 quartimax. Non-positive maxIter and tol fall back to
// 20 iterations and 1e-6.
func Varimax(phi mat.Matrix, gamma float64, maxIter int, tol float64) (*mat.Dense, *mat.Dense, error) {
	rows, cols := phi.Dims()
	if rows == 0 || cols == 0 {
		return nil, nil, errors.DegenerateInput("empty loadings matrix")
	}
	if maxIter <= 0 {
		maxIter = 20
	}
	if tol <= 0 {
		tol = 1e-6
	}

	rotation := eye(cols)
	d := 0.0
	for i := 0; i < maxIter; i++ {
		dOld := d

		var lambda mat.Dense
		lambda.Mul(phi, rotation)

		u, s, v, err := thinSVD(svdTarget(phi, &lambda, gamma))
		if err != nil {
			return nil, nil, err
		}
		rotation.Mul(u, v.T())
		d = floats.Sum(s)
		if dOld != 0 && d/dOld < 1+tol {
			break
		}
	}

	var rotated mat.Dense
	rotated.Mul(phi, rotation)
	return &rotated, rotation, nil
}

// OrthoRotation returns the orthogonal rotation matrix for a loadings
// matrix under the "varimax" or "quartimax" criterion. Non-positive eps
// and maxIter fall back to 1e-6 and 100.
func OrthoRotation(lam mat.Matrix, method string, eps float64, maxIter int) (*mat.Dense, error) {
	var gamma float64
	switch method {
	case "", "varimax":
		gamma = 1.0
	case "quartimax":
		gamma = 0.0
	default:
		return nil, errors.Newf(errors.CodeInvalidInput, "unknown rotation method %q", method)
	}
	rows, cols := lam.Dims()
	if rows == 0 || cols == 0 {
		return nil, errors.DegenerateInput("empty loadings matrix")
	}
	if eps <= 0 {
		eps = 1e-6
	}
	if maxIter <= 0 {
		maxIter = 100
	}

	rotation := eye(cols)
	variance := 0.0
	for i := 0; i < maxIter; i++ {
		var lamRot mat.Dense
		lamRot.Mul(lam, rotation)

		u, s, v, err := thinSVD(svdTarget(lam, &lamRot, gamma))
		if err != nil {
			return nil, err
		}
		rotation.Mul(u, v.T())
		varianceNew := floats.Sum(s)
		if varianceNew < variance*(1+eps) {
			break
		}
		variance = varianceNew
	}
	return rotation, nil
}

// svdTarget builds the matrix whose singular vectors give the next
// rotation update: phiT * (lambda^3 - (gamma/rows)*lambda*diag(colSS)).
func svdTarget(phi mat.Matrix, lambda *mat.Dense, gamma float64) *mat.Dense {
	rows, cols := lambda.Dims()

	cube := mat.NewDense(rows, cols, nil)
	cube.Apply(func(_, _ int, v float64) float64 { return v * v * v }, lambda)

	colSS := make([]float64, cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			v := lambda.At(i, j)
			colSS[j] += v * v
		}
	}

	scaled := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			scaled.Set(i, j, lambda.At(i, j)*colSS[j]*gamma/float64(rows))
		}
	}

	var inner mat.Dense
	inner.Sub(cube, scaled)
	var target mat.Dense
	target.Mul(phi.T(), &inner)
	return &target
}

func thinSVD(m mat.Matrix) (*mat.Dense, []float64, *mat.Dense, error) {
	var svd mat.SVD
	if !svd.Factorize(m, mat.SVDThin) {
		return nil, nil, nil, errors.InternalError("svd failed to converge")
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	return &u, svd.Values(nil), &v, nil
}

func eye(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}
