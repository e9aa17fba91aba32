package fft

import (
	"gonum.org/v1/gonum/dsp/fourier"
)

// GonumBackend computes DFTs with gonum's dsp/fourier package. A transform
// plan is built per call, so the backend is safe for concurrent use by
// sweep workers.
type GonumBackend struct{}

// NewGonum creates the default Fourier backend
func NewGonum() *GonumBackend {
	return &GonumBackend{}
}

func (*GonumBackend) Name() string { return "gonum" }

// Forward computes the unnormalized DFT
func (*GonumBackend) Forward(x []complex128) []complex128 {
	plan := fourier.NewCmplxFFT(len(x))
	return plan.Coefficients(nil, x)
}

// Inverse computes the inverse DFT scaled by 1/N
func (*GonumBackend) Inverse(x []complex128) []complex128 {
	n := len(x)
	plan := fourier.NewCmplxFFT(n)
	out := plan.Sequence(nil, x)
	scale := complex(1/float64(n), 0)
	for i := range out {
		out[i] *= scale
	}
	return out
}

// Forward2D transforms rows first, then columns
func (g *GonumBackend) Forward2D(x [][]complex128) [][]complex128 {
	return transform2D(x, g.Forward)
}

// Inverse2D applies the per-axis inverse, yielding the 1/(rows*cols) factor
func (g *GonumBackend) Inverse2D(x [][]complex128) [][]complex128 {
	return transform2D(x, g.Inverse)
}

func transform2D(x [][]complex128, transform func([]complex128) []complex128) [][]complex128 {
	rows := len(x)
	if rows == 0 {
		return nil
	}
	cols := len(x[0])

	out := make([][]complex128, rows)
	for i, row := range x {
		out[i] = transform(row)
	}

	col := make([]complex128, rows)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			col[i] = out[i][j]
		}
		colT := transform(col)
		for i := 0; i < rows; i++ {
			out[i][j] = colT[i]
		}
	}
	return out
}
