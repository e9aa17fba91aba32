package spectral

import "math"

// GaussianSmooth applies a separable Gaussian kernel of the given bandwidth
// along both axes of a rectangular grid, reflecting the field at the
// boundaries. The kernel extends to floor(4*sigma + 0.5) pixels each side.
// Sigma <= 0 returns an untouched copy.
func GaussianSmooth(data [][]float64, sigma float64) [][]float64 {
	rows := len(data)
	if rows == 0 {
		return nil
	}
	cols := len(data[0])

	out := make([][]float64, rows)
	for i := range data {
		out[i] = append([]float64(nil), data[i]...)
	}
	if sigma <= 0 {
		return out
	}

	kernel := gaussianKernel(sigma)
	radius := len(kernel) / 2

	horizontal := make([][]float64, rows)
	for i := range data {
		horizontal[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			acc := 0.0
			for k := -radius; k <= radius; k++ {
				acc += kernel[k+radius] * data[i][reflectIndex(j+k, cols)]
			}
			horizontal[i][j] = acc
		}
	}

	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			acc := 0.0
			for k := -radius; k <= radius; k++ {
				acc += kernel[k+radius] * horizontal[reflectIndex(i+k, rows)][j]
			}
			out[i][j] = acc
		}
	}
	return out
}

func gaussianKernel(sigma float64) []float64 {
	radius := int(4*sigma + 0.5)
	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for k := -radius; k <= radius; k++ {
		w := math.Exp(-float64(k*k) / (2 * sigma * sigma))
		kernel[k+radius] = w
		sum += w
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// reflectIndex maps an out-of-range index back into [0, n) by mirroring at
// the array edges (half-sample symmetric)
func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * n
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i - 1
	}
	return i
}
