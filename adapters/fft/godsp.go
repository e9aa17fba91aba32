package fft

import (
	godsp "github.com/mjibson/go-dsp/fft"
)

// GoDSPBackend computes DFTs with the go-dsp library. It is the alternate
// backend of the spectral pipeline; results match GonumBackend to round-off.
type GoDSPBackend struct{}

// NewGoDSP creates the go-dsp Fourier backend
func NewGoDSP() *GoDSPBackend {
	return &GoDSPBackend{}
}

func (*GoDSPBackend) Name() string { return "godsp" }

func (*GoDSPBackend) Forward(x []complex128) []complex128 {
	return godsp.FFT(x)
}

func (*GoDSPBackend) Inverse(x []complex128) []complex128 {
	return godsp.IFFT(x)
}

func (*GoDSPBackend) Forward2D(x [][]complex128) [][]complex128 {
	return godsp.FFT2(x)
}

func (*GoDSPBackend) Inverse2D(x [][]complex128) [][]complex128 {
	return godsp.IFFT2(x)
}
