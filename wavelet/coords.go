package wavelet

import (
	"math"

	"gorain/internal/errors"
)

// ScaleGrid holds the physical center coordinates of the coefficients at one
// pyramid scale. X ascends; Y descends, following image row order.
type ScaleGrid struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// Coordinates places the coefficient centers of a (rows, cols) scale cut
// from an original (rows0, cols0) image spanning [xmin,xmax] x [ymin,ymax]
// at the given grid spacing.
func Coordinates(rows, cols, rows0, cols0 int, xmin, xmax, ymin, ymax, spacing float64) (ScaleGrid, error) {
	if rows <= 0 || cols <= 0 || rows0 <= 0 || cols0 <= 0 {
		return ScaleGrid{}, errors.Newf(errors.CodeInvalidInput,
			"coordinate shapes must be positive, got %dx%d of %dx%d", rows, cols, rows0, cols0)
	}
	if spacing <= 0 {
		return ScaleGrid{}, errors.Newf(errors.CodeInvalidInput,
			"grid spacing must be positive, got %g", spacing)
	}
	if xmax <= xmin || ymax <= ymin {
		return ScaleGrid{}, errors.Newf(errors.CodeInvalidInput,
			"coordinate extent [%g,%g]x[%g,%g] is empty", xmin, xmax, ymin, ymax)
	}

	boxX := float64(cols0) / float64(cols) * spacing
	boxY := float64(rows0) / float64(rows) * spacing
	grid := ScaleGrid{
		X: arange(xmin+boxX/2, xmax, boxX),
		Y: arange(ymin+boxY/2, ymax, boxY),
	}
	for i, j := 0, len(grid.Y)-1; i < j; i, j = i+1, j-1 {
		grid.Y[i], grid.Y[j] = grid.Y[j], grid.Y[i]
	}
	return grid, nil
}

// PyramidCoordinates maps Coordinates over every scale of a pyramid.
func PyramidCoordinates(pyramid [][][]float64, rows0, cols0 int, xmin, xmax, ymin, ymax, spacing float64) ([]ScaleGrid, error) {
	grids := make([]ScaleGrid, len(pyramid))
	for i, scale := range pyramid {
		rows, cols, err := gridDims(scale)
		if err != nil {
			return nil, err
		}
		grids[i], err = Coordinates(rows, cols, rows0, cols0, xmin, xmax, ymin, ymax, spacing)
		if err != nil {
			return nil, err
		}
	}
	return grids, nil
}

// LevelForScale converts a physical scale to the detail level index used by
// NoiseConfig.PerturbLevels: level t corresponds to resolution * 2^(t+1), so
// t = 0 is the finest band. The scale must be a power-of-two multiple of the
// resolution.
func LevelForScale(resolutionKM, scaleKM float64) (int, error) {
	if resolutionKM <= 0 {
		return 0, errors.Newf(errors.CodeInvalidInput,
			"resolution must be positive, got %g km", resolutionKM)
	}
	if scaleKM <= resolutionKM {
		return 0, errors.Newf(errors.CodeInvalidInput,
			"scale %g km must exceed the %g km resolution", scaleKM, resolutionKM)
	}

	// Doubling a float is exact, so the comparison below is too.
	cur := resolutionKM * 2
	for level := 0; level < 50; level++ {
		if cur == scaleKM {
			return level, nil
		}
		cur *= 2
	}
	return 0, errors.Newf(errors.CodeInvalidInput,
		"scale %g km is not a power-of-two multiple of the %g km resolution", scaleKM, resolutionKM)
}

// arange mirrors numpy's half-open float range.
func arange(start, stop, step float64) []float64 {
	n := int(math.Ceil((stop - start) / step))
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}
