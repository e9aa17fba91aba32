// Package stats provides the regression, quantile and transform utilities
// shared by the spectral and fractal analyses: numpy-convention percentiles,
// z-score standardization, variogram models, Box-Cox transforms and factor
// rotation.
package stats

import (
	"math"
	"sort"

	"gorain/internal/errors"
)

// Default quantile pair of the Germann scatter score.
const (
	DefaultScatterMinQ = 16.0
	DefaultScatterMaxQ = 84.0
)

// Quantile computes the q-th percentile (0-100) by linear interpolation
// between order statistics. Data containing NaN should go through
// NaNQuantile instead.
func Quantile(data []float64, q float64) (float64, error) {
	if len(data) == 0 {
		return math.NaN(), errors.EmptyDomain("quantile input")
	}
	if q < 0 || q > 100 {
		return math.NaN(), errors.Newf(errors.CodeInvalidInput, "percentile %v outside [0,100]", q)
	}

	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)

	h := q / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1], nil
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo]), nil
}

// NaNQuantile computes the q-th percentile of the non-NaN values
func NaNQuantile(data []float64, q float64) (float64, error) {
	finite := make([]float64, 0, len(data))
	for _, v := range data {
		if !math.IsNaN(v) {
			finite = append(finite, v)
		}
	}
	return Quantile(finite, q)
}

// Percentiles evaluates several percentiles of the same data at once
func Percentiles(data []float64, qs []float64) ([]float64, error) {
	out := make([]float64, len(qs))
	for i, q := range qs {
		p, err := Quantile(data, q)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// NaNMean averages the non-NaN values; NaN when none remain
func NaNMean(data []float64) float64 {
	sum := 0.0
	n := 0
	for _, v := range data {
		if !math.IsNaN(v) {
			sum += v
			n++
		}
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// NaNStd computes the population standard deviation of the non-NaN values
func NaNStd(data []float64) float64 {
	mean := NaNMean(data)
	if math.IsNaN(mean) {
		return math.NaN()
	}
	sum := 0.0
	n := 0
	for _, v := range data {
		if !math.IsNaN(v) {
			d := v - mean
			sum += d * d
			n++
		}
	}
	return math.Sqrt(sum / float64(n))
}

// ZScores standardizes data against its NaN-aware mean and population
// standard deviation. NaN entries stay NaN.
func ZScores(data []float64) (z []float64, mean, std float64) {
	mean = NaNMean(data)
	std = NaNStd(data)
	z = make([]float64, len(data))
	for i, v := range data {
		z[i] = (v - mean) / std
	}
	return z, mean, std
}

// FromZScores maps standardized scores back to the original units
func FromZScores(z []float64, mean, std float64) []float64 {
	out := make([]float64, len(z))
	for i, v := range z {
		out[i] = v*std + mean
	}
	return out
}

// ZScoresGrid standardizes a grid against its global moments
func ZScoresGrid(data [][]float64) (z [][]float64, mean, std float64) {
	flat := Flatten(data)
	mean = NaNMean(flat)
	std = NaNStd(flat)

	z = make([][]float64, len(data))
	for y, row := range data {
		z[y] = make([]float64, len(row))
		for x, v := range row {
			z[y][x] = (v - mean) / std
		}
	}
	return z, mean, std
}

// Flatten concatenates grid rows into a single slice
func Flatten(data [][]float64) []float64 {
	size := 0
	for _, row := range data {
		size += len(row)
	}
	flat := make([]float64, 0, size)
	for _, row := range data {
		flat = append(flat, row...)
	}
	return flat
}

// NaNScatter computes the Germann scatter score: the spread between two
// percentiles of the non-NaN values. With the default 16-84 pair the score
// spans plus/minus one standard deviation of a Gaussian distribution.
func NaNScatter(data []float64, minQ, maxQ float64) (float64, error) {
	lo, err := NaNQuantile(data, minQ)
	if err != nil {
		return math.NaN(), err
	}
	hi, err := NaNQuantile(data, maxQ)
	if err != nil {
		return math.NaN(), err
	}
	return hi - lo, nil
}

// Skewness computes the population skewness m3/m2^1.5 without bias
// correction
func Skewness(data []float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	m2 := 0.0
	m3 := 0.0
	for _, v := range data {
		d := v - mean
		m2 += d * d
		m3 += d * d * d
	}
	m2 /= float64(len(data))
	m3 /= float64(len(data))
	return m3 / math.Pow(m2, 1.5)
}

// Welford accumulates running mean and variance in a single pass
type Welford struct {
	count int64
	mean  float64
	m2    float64
}

// Add incorporates a new data point into the running statistics
func (w *Welford) Add(x float64) {
	w.count++
	delta := x - w.mean
	w.mean += delta / float64(w.count)
	delta2 := x - w.mean
	w.m2 += delta * delta2
}

// Count returns the number of values that have been added
func (w *Welford) Count() int64 {
	return w.count
}

// Mean returns the current running mean; 0 before any value is added
func (w *Welford) Mean() float64 {
	return w.mean
}

// Variance returns the population variance (M2/n)
func (w *Welford) Variance() float64 {
	if w.count < 1 {
		return 0
	}
	return w.m2 / float64(w.count)
}

// SampleVariance returns the sample variance (M2/(n-1)); 0 with fewer than
// two values
func (w *Welford) SampleVariance() float64 {
	if w.count < 2 {
		return 0
	}
	return w.m2 / float64(w.count-1)
}

// StandardDeviation returns the population standard deviation
func (w *Welford) StandardDeviation() float64 {
	return math.Sqrt(w.Variance())
}
