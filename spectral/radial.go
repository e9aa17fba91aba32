package spectral

import (
	"math"

	"gorain/internal/errors"
	"gorain/stats"
)

// RadialProfile is a radially averaged power spectrum. Power holds the mean
// spectral density per unit-width annulus around the image center; Freq is
// the matching positive frequency axis with NaN at the zero-frequency slot
// and Wavelength its inverse in km (+Inf at zero frequency). Counts records
// how many pixels fed each annulus.
type RadialProfile struct {
	Power      []float64 `json:"power"`
	Freq       []float64 `json:"freq"`
	Wavelength []float64 `json:"wavelength"`
	Counts     []int     `json:"counts"`
}

// RadialSpectrum averages a centered 2D power spectrum azimuthally into
// unit-width radial bins, keeping the bins inside the largest inscribed
// half-circle (bin centers below half the shorter dimension).
func RadialSpectrum(psd [][]float64, resolution float64) (*RadialProfile, error) {
	rows, cols, err := gridDims(psd)
	if err != nil {
		return nil, err
	}
	if resolution <= 0 {
		return nil, errors.Newf(errors.CodeInvalidInput, "resolution %v not positive", resolution)
	}

	centerX := float64(cols-1) / 2
	centerY := float64(rows-1) / 2
	rmax := math.Hypot(centerX, centerY)
	nbins := int(math.RoundToEven(rmax)) + 1

	sums := make([]float64, nbins)
	counts := make([]int, nbins)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			r := math.Hypot(float64(j)-centerX, float64(i)-centerY)
			bin := int(r)
			sums[bin] += psd[i][j]
			counts[bin]++
		}
	}

	minDim := rows
	if cols < minDim {
		minDim = cols
	}
	m := minDim / 2
	if m > nbins {
		m = nbins
	}

	power := make([]float64, m)
	for k := 0; k < m; k++ {
		if counts[k] == 0 {
			power[k] = math.NaN()
			continue
		}
		power[k] = sums[k] / float64(counts[k])
	}

	// Positive half of the shifted frequency axis; identical to slicing
	// the shifted axis at the profile length for even dimensions.
	freqAll := FFTShift(FFTFreq(minDim, resolution))
	freq := append([]float64(nil), freqAll[minDim-m:]...)

	wavelength := make([]float64, m)
	for i, f := range freq {
		wavelength[i] = resolution / f
	}
	for i, f := range freq {
		if f == 0 {
			freq[i] = math.NaN()
		}
	}

	return &RadialProfile{
		Power:      power,
		Freq:       freq,
		Wavelength: wavelength,
		Counts:     counts[:m],
	}, nil
}

// SpectralSlope fits log10 power against log10 wavelength over a wavelength
// band, returning the spectral slope beta with its intercept and
// correlation. Bins with non-positive or missing power are skipped.
func SpectralSlope(rp *RadialProfile, minWavelength, maxWavelength float64) (stats.FitResult, error) {
	if rp == nil || len(rp.Power) == 0 {
		return stats.FitResult{}, errors.EmptyDomain("radial profile")
	}
	if maxWavelength <= minWavelength {
		return stats.FitResult{}, errors.Newf(errors.CodeInvalidInput,
			"wavelength band [%v, %v] is empty", minWavelength, maxWavelength)
	}

	var logScale, logPower []float64
	for i := range rp.Power {
		wl := rp.Wavelength[i]
		p := rp.Power[i]
		if math.IsInf(wl, 0) || math.IsNaN(wl) || math.IsNaN(p) || p <= 0 {
			continue
		}
		if wl < minWavelength || wl > maxWavelength {
			continue
		}
		logScale = append(logScale, math.Log10(wl))
		logPower = append(logPower, math.Log10(p))
	}
	if len(logScale) < 2 {
		return stats.FitResult{}, errors.DegenerateInput("fewer than two spectral bins in the wavelength band")
	}
	return stats.FitOLS(logScale, logPower)
}
