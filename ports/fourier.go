package ports

// FourierBackend computes discrete Fourier transforms with numpy-style
// normalization: Forward is the plain unnormalized DFT and Inverse carries
// the 1/N factor, so Inverse(Forward(x)) round-trips.
//
// 2D transforms expect rectangular input and transform rows first, then
// columns. Implementations must not modify their input.
type FourierBackend interface {
	Name() string

	Forward(x []complex128) []complex128
	Inverse(x []complex128) []complex128

	Forward2D(x [][]complex128) [][]complex128
	Inverse2D(x [][]complex128) [][]complex128
}
