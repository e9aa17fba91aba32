package spectral

import (
	"math"
	"testing"

	"gorain/internal/errors"
)

func TestRadialSpectrumCentralPeak(t *testing.T) {
	psd := make([][]float64, 4)
	for i := range psd {
		psd[i] = make([]float64, 4)
	}
	psd[2][2] = 8 // shifted DC bin

	rp, err := RadialSpectrum(psd, 1)
	if err != nil {
		t.Fatalf("RadialSpectrum returned error: %v", err)
	}

	if len(rp.Power) != 2 {
		t.Fatalf("Expected 2 radial bins, got %d", len(rp.Power))
	}
	// The four central pixels share the innermost annulus
	if rp.Counts[0] != 4 || rp.Counts[1] != 8 {
		t.Errorf("Counts = %v, want [4 8]", rp.Counts)
	}
	if !almostEqual(rp.Power[0], 2, 1e-12) {
		t.Errorf("Power[0] = %v, want 2", rp.Power[0])
	}
	if !almostEqual(rp.Power[1], 0, 1e-12) {
		t.Errorf("Power[1] = %v, want 0", rp.Power[1])
	}

	if !math.IsNaN(rp.Freq[0]) {
		t.Errorf("Freq[0] = %v, want NaN at the zero-frequency slot", rp.Freq[0])
	}
	if !almostEqual(rp.Freq[1], 0.25, 1e-12) {
		t.Errorf("Freq[1] = %v, want 0.25", rp.Freq[1])
	}
	if !math.IsInf(rp.Wavelength[0], 1) {
		t.Errorf("Wavelength[0] = %v, want +Inf", rp.Wavelength[0])
	}
	if !almostEqual(rp.Wavelength[1], 4, 1e-12) {
		t.Errorf("Wavelength[1] = %v, want 4", rp.Wavelength[1])
	}
}

func TestRadialSpectrumFlatField(t *testing.T) {
	psd := make([][]float64, 8)
	for i := range psd {
		psd[i] = make([]float64, 8)
		for j := range psd[i] {
			psd[i][j] = 3
		}
	}

	rp, err := RadialSpectrum(psd, 2)
	if err != nil {
		t.Fatalf("RadialSpectrum returned error: %v", err)
	}
	if len(rp.Power) != 4 {
		t.Fatalf("Expected 4 radial bins, got %d", len(rp.Power))
	}
	for k, p := range rp.Power {
		if !almostEqual(p, 3, 1e-12) {
			t.Errorf("Power[%d] = %v, want 3", k, p)
		}
	}
	// Resolution 2 halves the frequency axis and doubles the wavelengths
	if !almostEqual(rp.Freq[1], 0.0625, 1e-12) {
		t.Errorf("Freq[1] = %v, want 0.0625", rp.Freq[1])
	}
	if !almostEqual(rp.Wavelength[1], 32, 1e-12) {
		t.Errorf("Wavelength[1] = %v, want 32", rp.Wavelength[1])
	}
}

func TestRadialSpectrumNonSquare(t *testing.T) {
	psd := make([][]float64, 6)
	for i := range psd {
		psd[i] = make([]float64, 10)
		for j := range psd[i] {
			psd[i][j] = 1
		}
	}

	rp, err := RadialSpectrum(psd, 1)
	if err != nil {
		t.Fatalf("RadialSpectrum returned error: %v", err)
	}
	// The shorter axis bounds the usable annuli
	if len(rp.Power) != 3 {
		t.Errorf("Expected 3 bins from the 6-pixel axis, got %d", len(rp.Power))
	}
	if len(rp.Freq) != len(rp.Power) || len(rp.Wavelength) != len(rp.Power) {
		t.Errorf("Axis lengths diverge: %d power, %d freq, %d wavelength",
			len(rp.Power), len(rp.Freq), len(rp.Wavelength))
	}
}

func TestRadialSpectrumErrors(t *testing.T) {
	if _, err := RadialSpectrum(nil, 1); errors.GetCode(err) != errors.CodeEmptyDomain {
		t.Errorf("Expected EMPTY_DOMAIN, got %v", err)
	}
	if _, err := RadialSpectrum([][]float64{{1, 2}, {3, 4}}, 0); errors.GetCode(err) != errors.CodeInvalidInput {
		t.Errorf("Expected INVALID_INPUT for zero resolution, got %v", err)
	}
}

func TestSpectralSlopePowerLaw(t *testing.T) {
	// Power grows as wavelength squared: log-log slope exactly 2
	wavelength := []float64{math.Inf(1), 16, 8, 16.0 / 3, 4}
	freq := []float64{math.NaN(), 1.0 / 16, 2.0 / 16, 3.0 / 16, 4.0 / 16}
	power := make([]float64, len(wavelength))
	power[0] = 1e6 // Inf-wavelength bin must be skipped
	for i := 1; i < len(power); i++ {
		power[i] = wavelength[i] * wavelength[i]
	}
	rp := &RadialProfile{Power: power, Freq: freq, Wavelength: wavelength}

	fit, err := SpectralSlope(rp, 2, 20)
	if err != nil {
		t.Fatalf("SpectralSlope returned error: %v", err)
	}
	if !almostEqual(fit.Slope, 2, 1e-9) {
		t.Errorf("Slope = %v, want 2", fit.Slope)
	}
	if !almostEqual(fit.Intercept, 0, 1e-9) {
		t.Errorf("Intercept = %v, want 0", fit.Intercept)
	}
	if !almostEqual(fit.Correlation, 1, 1e-9) {
		t.Errorf("Correlation = %v, want 1", fit.Correlation)
	}
}

func TestSpectralSlopeBand(t *testing.T) {
	wavelength := []float64{math.Inf(1), 16, 8, 4, 2}
	freq := []float64{math.NaN(), 1, 2, 4, 8}
	power := []float64{0, 100, 10, 1, 0.1}
	rp := &RadialProfile{Power: power, Freq: freq, Wavelength: wavelength}

	// Only the 8 km and 16 km bins fall inside the band
	fit, err := SpectralSlope(rp, 5, 20)
	if err != nil {
		t.Fatalf("SpectralSlope returned error: %v", err)
	}
	wantSlope := (math.Log10(100) - math.Log10(10)) / (math.Log10(16) - math.Log10(8))
	if !almostEqual(fit.Slope, wantSlope, 1e-9) {
		t.Errorf("Slope = %v, want %v", fit.Slope, wantSlope)
	}

	if _, err := SpectralSlope(rp, 20, 5); errors.GetCode(err) != errors.CodeInvalidInput {
		t.Errorf("Expected INVALID_INPUT for inverted band, got %v", err)
	}
	if _, err := SpectralSlope(rp, 15, 17); errors.GetCode(err) != errors.CodeDegenerateInput {
		t.Errorf("Expected DEGENERATE_INPUT for a one-bin band, got %v", err)
	}
	if _, err := SpectralSlope(nil, 2, 20); errors.GetCode(err) != errors.CodeEmptyDomain {
		t.Errorf("Expected EMPTY_DOMAIN for nil profile, got %v", err)
	}
}
