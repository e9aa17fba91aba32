package spectral

import (
	"gorain/internal/errors"
	"gorain/ports"
)

// SpectrumConfig controls windowing and the transform backend.
type SpectrumConfig struct {
	// ResolutionKM is the grid spacing used for the frequency axis;
	// zero falls back to 1.
	ResolutionKM float64
	// Window is one of "", "none", "hanning", "blackman".
	Window string
	// Backend computes the transforms. Required.
	Backend ports.FourierBackend
}

// Spectrum2D is a centered power spectrum with its frequency axis. Power
// has the field's dimensions with the DC component in the middle; Freq
// spans the shorter axis in cycles per km.
type Spectrum2D struct {
	Power [][]float64 `json:"power"`
	Freq  []float64   `json:"freq"`
}

// PowerSpectrum2D computes the windowed 2D FFT power spectrum
// |F|^2/(rows*cols), shifted so zero frequency sits at the center.
func PowerSpectrum2D(data [][]float64, cfg SpectrumConfig) (*Spectrum2D, error) {
	rows, cols, err := gridDims(data)
	if err != nil {
		return nil, err
	}
	if cfg.Backend == nil {
		return nil, errors.ConfigInvalid("fourier backend is required")
	}
	resolution := cfg.ResolutionKM
	if resolution == 0 {
		resolution = 1
	}
	if resolution < 0 {
		return nil, errors.Newf(errors.CodeConfigInvalid, "resolution %v not positive", resolution)
	}

	window, err := Window2D(rows, cols, cfg.Window)
	if err != nil {
		return nil, err
	}

	input := make([][]complex128, rows)
	for i := range input {
		input[i] = make([]complex128, cols)
		for j := range input[i] {
			input[i][j] = complex(data[i][j]*window[i][j], 0)
		}
	}
	coeffs := cfg.Backend.Forward2D(input)

	norm := float64(rows * cols)
	power := make([][]float64, rows)
	for i := range power {
		power[i] = make([]float64, cols)
		for j := range power[i] {
			re := real(coeffs[i][j])
			im := imag(coeffs[i][j])
			power[i][j] = (re*re + im*im) / norm
		}
	}

	minDim := rows
	if cols < minDim {
		minDim = cols
	}
	return &Spectrum2D{
		Power: FFTShift2D(power),
		Freq:  FFTShift(FFTFreq(minDim, resolution)),
	}, nil
}

// FFTFreq returns the DFT sample frequencies for n samples spaced d apart,
// in numpy's order: non-negative frequencies first, then the negative ones.
func FFTFreq(n int, d float64) []float64 {
	out := make([]float64, n)
	scale := 1 / (float64(n) * d)
	half := (n - 1) / 2
	for i := 0; i <= half; i++ {
		out[i] = float64(i) * scale
	}
	for i := half + 1; i < n; i++ {
		out[i] = float64(i-n) * scale
	}
	return out
}

// FFTShift rolls the zero-frequency component to the center
func FFTShift(x []float64) []float64 {
	n := len(x)
	split := n - n/2
	out := make([]float64, 0, n)
	out = append(out, x[split:]...)
	out = append(out, x[:split]...)
	return out
}

// IFFTShift undoes FFTShift, for odd lengths included
func IFFTShift(x []float64) []float64 {
	n := len(x)
	split := n / 2
	out := make([]float64, 0, n)
	out = append(out, x[split:]...)
	out = append(out, x[:split]...)
	return out
}

// FFTShift2D rolls both axes so zero frequency sits at the center
func FFTShift2D(grid [][]float64) [][]float64 {
	rows := len(grid)
	shifted := make([][]float64, 0, rows)
	for _, row := range grid {
		shifted = append(shifted, FFTShift(row))
	}
	split := rows - rows/2
	out := make([][]float64, 0, rows)
	out = append(out, shifted[split:]...)
	out = append(out, shifted[:split]...)
	return out
}

// IFFTShift2D undoes FFTShift2D
func IFFTShift2D(grid [][]float64) [][]float64 {
	rows := len(grid)
	shifted := make([][]float64, 0, rows)
	for _, row := range grid {
		shifted = append(shifted, IFFTShift(row))
	}
	split := rows / 2
	out := make([][]float64, 0, rows)
	out = append(out, shifted[split:]...)
	out = append(out, shifted[:split]...)
	return out
}

// gridDims validates a rectangular non-empty grid and returns its shape
func gridDims(data [][]float64) (rows, cols int, err error) {
	rows = len(data)
	if rows == 0 || len(data[0]) == 0 {
		return 0, 0, errors.EmptyDomain("input grid")
	}
	cols = len(data[0])
	for i, row := range data {
		if len(row) != cols {
			return 0, 0, errors.Newf(errors.CodeInvalidField, "row %d has %d columns, expected %d", i, len(row), cols)
		}
	}
	return rows, cols, nil
}
