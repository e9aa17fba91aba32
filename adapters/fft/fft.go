// Package fft provides the Fourier transform backends used by the spectral
// analysis pipeline. Both backends follow the same normalization convention:
// Forward is the plain DFT, Inverse carries the 1/N factor.
package fft

import (
	"gorain/internal/errors"
	"gorain/ports"
)

// New builds a backend by name ("gonum" or "godsp")
func New(kind string) (ports.FourierBackend, error) {
	switch kind {
	case "", "gonum":
		return NewGonum(), nil
	case "godsp":
		return NewGoDSP(), nil
	default:
		return nil, errors.Newf(errors.CodeConfigInvalid, "unknown FFT backend %q", kind)
	}
}
