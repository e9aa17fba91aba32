// Package fractal estimates attractor geometry from scalar observables:
// delay-coordinate embedding and the Grassberger-Procaccia correlation
// dimension.
package fractal

import (
	"math"

	"gorain/internal/errors"
	"gorain/stats"
)

const (
	defaultRadiusSteps = 100
	defaultFitWindow   = 20
	defaultFitStride   = 2
	// Lower radius bound sits at this percentile of the nonzero distances,
	// clear of isolated near-duplicate points.
	radiusFloorPercentile = 0.01
)

// CorrDimConfig tunes the correlation-sum estimate. Zero values select the
// defaults.
type CorrDimConfig struct {
	// Steps is the number of log-spaced radii; default 100.
	Steps int `json:"steps"`
	// FitWindow is the number of curve points per sliding fit; default 20.
	FitWindow int `json:"fit_window"`
	// FitStride advances the sliding window; default 2.
	FitStride int `json:"fit_stride"`
}

// CorrDimResult carries the correlation-sum curve and the fitted dimension.
type CorrDimResult struct {
	Radii     []float64 `json:"radii"`
	CorrSum   []float64 `json:"corr_sum"`
	Dimension float64   `json:"dimension"`
	Intercept float64   `json:"intercept"`
}

// CorrelationDimension estimates the fractal dimension of a point cloud as
// the steepest log-log slope of the correlation sum C(r), the fraction of
// point pairs closer than r in the L1 norm. The full pairwise matrix enters
// the counts, so C can exceed 1 at large radii; the slope is what matters.
func CorrelationDimension(points [][]float64, cfg CorrDimConfig) (*CorrDimResult, error) {
	n := len(points)
	if n < 2 {
		return nil, errors.Newf(errors.CodeInvalidInput,
			"correlation dimension needs at least two points, got %d", n)
	}
	dims := len(points[0])
	if dims == 0 {
		return nil, errors.EmptyDomain("point matrix")
	}
	for i, p := range points {
		if len(p) != dims {
			return nil, errors.Newf(errors.CodeInvalidField,
				"point %d has %d coordinates, expected %d", i, len(p), dims)
		}
	}

	steps := cfg.Steps
	if steps == 0 {
		steps = defaultRadiusSteps
	}
	if steps < 2 {
		return nil, errors.Newf(errors.CodeInvalidInput,
			"radius count must be at least 2, got %d", steps)
	}
	window := cfg.FitWindow
	if window == 0 {
		window = defaultFitWindow
	}
	stride := cfg.FitStride
	if stride == 0 {
		stride = defaultFitStride
	}
	if window < 2 || stride < 1 {
		return nil, errors.Newf(errors.CodeInvalidInput,
			"fit window %d and stride %d must be positive", window, stride)
	}

	dist := pairwiseL1(points)

	rMin, rMax, err := radiusBounds(dist)
	if err != nil {
		return nil, err
	}

	logMin := math.Log10(rMin)
	logMax := math.Log10(rMax)
	denom := float64(n) * float64(n-1)
	radii := make([]float64, 0, steps)
	corr := make([]float64, 0, steps)
	for i := 0; i < steps; i++ {
		r := math.Pow(10, logMin+(logMax-logMin)*float64(i)/float64(steps-1))
		count := 0
		for _, row := range dist {
			for _, d := range row {
				if d < r {
					count++
				}
			}
		}
		if count == 0 {
			continue
		}
		radii = append(radii, r)
		corr = append(corr, float64(count)/denom)
	}

	logR := make([]float64, len(radii))
	logC := make([]float64, len(radii))
	for i := range radii {
		logR[i] = math.Log10(radii[i])
		logC[i] = math.Log10(corr[i])
	}

	dimension, intercept, err := maxSlopeFit(logR, logC, window, stride)
	if err != nil {
		return nil, err
	}

	return &CorrDimResult{
		Radii:     radii,
		CorrSum:   corr,
		Dimension: dimension,
		Intercept: intercept,
	}, nil
}

// LogarithmicRadii lists min, min*factor, min*factor^2, ... while staying at
// or below max.
func LogarithmicRadii(min, max, factor float64) ([]float64, error) {
	if min <= 0 {
		return nil, errors.Newf(errors.CodeInvalidInput,
			"minimum radius must be positive, got %g", min)
	}
	if max <= min {
		return nil, errors.Newf(errors.CodeInvalidInput,
			"maximum radius %g must exceed the minimum %g", max, min)
	}
	if factor <= 1 {
		return nil, errors.Newf(errors.CodeInvalidInput,
			"radius factor must exceed 1, got %g", factor)
	}

	count := int(math.Floor(math.Log(max/min)/math.Log(factor))) + 1
	out := make([]float64, count)
	for i := range out {
		out[i] = min * math.Pow(factor, float64(i))
	}
	return out, nil
}

// pairwiseL1 computes the full symmetric distance matrix, diagonal included.
func pairwiseL1(points [][]float64) [][]float64 {
	n := len(points)
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var d float64
			for k, v := range points[i] {
				d += math.Abs(v - points[j][k])
			}
			dist[i][j] = d
			dist[j][i] = d
		}
	}
	return dist
}

// radiusBounds picks the log-range endpoints from the nonzero finite
// distances. Pairs with undefined coordinates are ignored here and never
// count below any radius.
func radiusBounds(dist [][]float64) (rMin, rMax float64, err error) {
	var nonzero []float64
	rMax = math.Inf(-1)
	for _, row := range dist {
		for _, d := range row {
			if math.IsNaN(d) || d == 0 {
				continue
			}
			nonzero = append(nonzero, d)
			if d > rMax {
				rMax = d
			}
		}
	}
	if len(nonzero) == 0 {
		return 0, 0, errors.DegenerateInput("all points coincide")
	}
	rMin, err = stats.Quantile(nonzero, radiusFloorPercentile)
	if err != nil {
		return 0, 0, err
	}
	if rMax <= rMin {
		return 0, 0, errors.DegenerateInput("pairwise distances have no spread")
	}
	return rMin, rMax, nil
}

// maxSlopeFit slides a fixed window over the log-log curve and keeps the
// steepest positive slope. Curves shorter than the window, or with no rising
// window, fall back to a single fit across the whole range.
func maxSlopeFit(x, y []float64, window, stride int) (slope, intercept float64, err error) {
	if len(x) > window {
		var best stats.FitResult
		found := false
		for start := 0; start < len(x)-window; start += stride {
			fit, ferr := stats.FitOLS(x[start:start+window], y[start:start+window])
			if ferr != nil {
				return 0, 0, ferr
			}
			if fit.Slope > best.Slope {
				best = fit
				found = true
			}
		}
		if found {
			return best.Slope, best.Intercept, nil
		}
	}

	fit, ferr := stats.FitOLS(x, y)
	if ferr != nil {
		return 0, 0, ferr
	}
	return fit.Slope, fit.Intercept, nil
}
