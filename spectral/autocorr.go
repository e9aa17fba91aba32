package spectral

import (
	"gorain/internal/errors"
	"gorain/ports"
)

// ACF holds the one-sided autocorrelation of a series and the matching
// one-sided power spectrum.
type ACF struct {
	Correlation []float64 `json:"correlation"`
	Power       []float64 `json:"power"`
}

// Autocorrelation computes the autocorrelation of a series through the
// Wiener-Khinchin theorem: the inverse transform of the power spectrum of
// the mean-centered signal, normalized by the variance. Both the
// autocorrelation and the spectrum are symmetric, so only the first half of
// each is returned. The zero-lag correlation is 1 by Parseval's theorem.
func Autocorrelation(series []float64, backend ports.FourierBackend) (*ACF, error) {
	n := len(series)
	if n == 0 {
		return nil, errors.EmptyDomain("autocorrelation input")
	}
	if backend == nil {
		return nil, errors.ConfigInvalid("fourier backend is required")
	}

	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(n)
	variance := 0.0
	for _, v := range series {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(n)
	if variance == 0 {
		return nil, errors.DegenerateInput("series has zero variance")
	}

	centered := make([]complex128, n)
	for i, v := range series {
		centered[i] = complex(v-mean, 0)
	}
	coeffs := backend.Forward(centered)

	power := make([]float64, n)
	spectrum := make([]complex128, n)
	for i, c := range coeffs {
		p := (real(c)*real(c) + imag(c)*imag(c)) / float64(n)
		power[i] = p
		spectrum[i] = complex(p, 0)
	}

	autocov := backend.Inverse(spectrum)
	correlation := make([]float64, n)
	for i, c := range autocov {
		correlation[i] = real(c) / variance
	}

	half := n / 2
	return &ACF{
		Correlation: correlation[:half],
		Power:       power[:half],
	}, nil
}

// ACF2D holds a centered 2D autocorrelation field and the matching centered
// power spectrum.
type ACF2D struct {
	Correlation [][]float64 `json:"correlation"`
	Power       [][]float64 `json:"power"`
}

// Autocorrelation2D is the two-dimensional Wiener-Khinchin autocorrelation.
// Both outputs are shifted so zero lag and zero frequency sit at the
// center, ready for the anisotropy decomposition.
func Autocorrelation2D(data [][]float64, backend ports.FourierBackend) (*ACF2D, error) {
	rows, cols, err := gridDims(data)
	if err != nil {
		return nil, err
	}
	if backend == nil {
		return nil, errors.ConfigInvalid("fourier backend is required")
	}

	n := float64(rows * cols)
	mean := 0.0
	for _, row := range data {
		for _, v := range row {
			mean += v
		}
	}
	mean /= n
	variance := 0.0
	for _, row := range data {
		for _, v := range row {
			variance += (v - mean) * (v - mean)
		}
	}
	variance /= n
	if variance == 0 {
		return nil, errors.DegenerateInput("field has zero variance")
	}

	centered := make([][]complex128, rows)
	for i := range centered {
		centered[i] = make([]complex128, cols)
		for j := range centered[i] {
			centered[i][j] = complex(data[i][j]-mean, 0)
		}
	}
	coeffs := backend.Forward2D(centered)

	power := make([][]float64, rows)
	spectrum := make([][]complex128, rows)
	for i := range coeffs {
		power[i] = make([]float64, cols)
		spectrum[i] = make([]complex128, cols)
		for j, c := range coeffs[i] {
			p := (real(c)*real(c) + imag(c)*imag(c)) / n
			power[i][j] = p
			spectrum[i][j] = complex(p, 0)
		}
	}

	autocov := backend.Inverse2D(spectrum)
	correlation := make([][]float64, rows)
	for i := range autocov {
		correlation[i] = make([]float64, cols)
		for j, c := range autocov[i] {
			correlation[i][j] = real(c) / variance
		}
	}

	return &ACF2D{
		Correlation: FFTShift2D(correlation),
		Power:       FFTShift2D(power),
	}, nil
}
