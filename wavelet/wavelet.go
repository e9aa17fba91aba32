// Package wavelet implements orthogonal 2D wavelet transforms for
// precipitation fields: the halved-approximation pyramid used for scale
// analysis, a multi-level decomposition with exact reconstruction, and the
// stochastic noise ensemble built on top of it.
package wavelet

import (
	"math"

	"gorain/internal/errors"
)

// Wavelet is an orthonormal two-channel filter bank. The highpass filter is
// the quadrature mirror of the lowpass, so analysis followed by synthesis
// reconstructs exactly on even-length signals.
type Wavelet struct {
	Name string
	lo   []float64
	hi   []float64
}

// Haar returns the 2-tap Haar bank.
func Haar() Wavelet {
	h := math.Sqrt2 / 2
	return newWavelet("haar", []float64{h, h})
}

// Daubechies2 returns the 4-tap Daubechies bank.
func Daubechies2() Wavelet {
	s := math.Sqrt(3)
	d := 4 * math.Sqrt2
	return newWavelet("db2", []float64{(1 + s) / d, (3 + s) / d, (3 - s) / d, (1 - s) / d})
}

// Daubechies4 returns the 8-tap Daubechies bank.
func Daubechies4() Wavelet {
	return newWavelet("db4", []float64{
		0.23037781330885523, 0.7148465705525415, 0.6308807679295904,
		-0.02798376941698385, -0.18703481171888114, 0.030841381835986965,
		0.032883011666982945, -0.010597401784997278,
	})
}

// ByName resolves a wavelet by its conventional short name.
func ByName(name string) (Wavelet, error) {
	switch name {
	case "haar", "db1":
		return Haar(), nil
	case "db2":
		return Daubechies2(), nil
	case "db4":
		return Daubechies4(), nil
	}
	return Wavelet{}, errors.Newf(errors.CodeConfigInvalid, "unknown wavelet %q", name)
}

// newWavelet derives the highpass filter from the scaling coefficients via
// the quadrature mirror relation g[m] = (-1)^m lo[L-1-m].
func newWavelet(name string, lo []float64) Wavelet {
	n := len(lo)
	hi := make([]float64, n)
	for m := range hi {
		hi[m] = lo[n-1-m]
		if m%2 == 1 {
			hi[m] = -hi[m]
		}
	}
	return Wavelet{Name: name, lo: lo, hi: hi}
}

// analyze splits an even-length signal into approximation and detail halves
// by circular correlation with the filter pair.
func (w Wavelet) analyze(x []float64) (lo, hi []float64) {
	n := len(x)
	half := n / 2
	lo = make([]float64, half)
	hi = make([]float64, half)
	for k := 0; k < half; k++ {
		var a, d float64
		for m := range w.lo {
			v := x[(2*k+m)%n]
			a += w.lo[m] * v
			d += w.hi[m] * v
		}
		lo[k], hi[k] = a, d
	}
	return lo, hi
}

// synthesize is the adjoint of analyze; for the orthonormal banks it is the
// exact inverse.
func (w Wavelet) synthesize(lo, hi []float64) []float64 {
	half := len(lo)
	n := 2 * half
	x := make([]float64, n)
	for k := 0; k < half; k++ {
		for m := range w.lo {
			idx := (2*k + m) % n
			x[idx] += lo[k]*w.lo[m] + hi[k]*w.hi[m]
		}
	}
	return x
}
