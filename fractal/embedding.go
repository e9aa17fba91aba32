package fractal

import "gorain/internal/errors"

// TimeDelayEmbedding builds the delay-coordinate matrix of a series: column
// c holds the series advanced by c*stepSize, padded with noData past the
// end. The result has one row per sample and steps+1 columns.
func TimeDelayEmbedding(series []float64, steps, stepSize int, noData float64) ([][]float64, error) {
	if len(series) == 0 {
		return nil, errors.EmptyDomain("time series")
	}
	if steps < 0 {
		return nil, errors.Newf(errors.CodeInvalidInput,
			"delay steps must be non-negative, got %d", steps)
	}
	if stepSize < 1 {
		return nil, errors.Newf(errors.CodeInvalidInput,
			"step size must be positive, got %d", stepSize)
	}

	out := make([][]float64, len(series))
	for j := range out {
		row := make([]float64, steps+1)
		for c := 0; c <= steps; c++ {
			if idx := j + c*stepSize; idx < len(series) {
				row[c] = series[idx]
			} else {
				row[c] = noData
			}
		}
		out[j] = row
	}
	return out, nil
}
