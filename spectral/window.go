// Package spectral estimates 2D power spectra of precipitation fields and
// derives their radially averaged spectrum, spectral slopes, autocorrelation
// functions and anisotropy descriptors.
package spectral

import (
	"math"

	"gorain/internal/errors"
)

// Window function names accepted by SpectrumConfig and Window2D.
const (
	WindowNone     = "none"
	WindowHanning  = "hanning"
	WindowBlackman = "blackman"
)

// Hanning returns the symmetric n-point Hann window
func Hanning(n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{1}
	}
	w := make([]float64, n)
	for k := 0; k < n; k++ {
		w[k] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(k)/float64(n-1))
	}
	return w
}

// Blackman returns the symmetric n-point Blackman window
func Blackman(n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{1}
	}
	w := make([]float64, n)
	for k := 0; k < n; k++ {
		phase := 2 * math.Pi * float64(k) / float64(n-1)
		w[k] = 0.42 - 0.5*math.Cos(phase) + 0.08*math.Cos(2*phase)
	}
	return w
}

// Window2D builds a 2D taper as the outer product of per-axis 1D windows.
// Building each axis at its own length keeps the taper usable on
// non-square fields.
func Window2D(rows, cols int, kind string) ([][]float64, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Newf(errors.CodeInvalidInput, "window size %dx%d not positive", rows, cols)
	}

	var wr, wc []float64
	switch kind {
	case "", WindowNone:
		wr = ones(rows)
		wc = ones(cols)
	case WindowHanning:
		wr = Hanning(rows)
		wc = Hanning(cols)
	case WindowBlackman:
		wr = Blackman(rows)
		wc = Blackman(cols)
	default:
		return nil, errors.Newf(errors.CodeConfigInvalid, "unknown window %q", kind)
	}

	w := make([][]float64, rows)
	for i := range w {
		w[i] = make([]float64, cols)
		for j := range w[i] {
			w[i][j] = wr[i] * wc[j]
		}
	}
	return w, nil
}

func ones(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}
