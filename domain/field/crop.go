package field

import (
	"gorain/domain/core"
)

// Extent describes a centered sub-window as left, upper, right, lower
// pixel bounds.
type Extent struct {
	Left  int
	Upper int
	Right int
	Lower int
}

// ReducedExtent computes the border geometry of a centered domain
func ReducedExtent(width, height, domainSizeX, domainSizeY int) Extent {
	borderSizeX := (width - domainSizeX) / 2
	borderSizeY := (height - domainSizeY) / 2
	return Extent{
		Left:  borderSizeX,
		Upper: borderSizeY,
		Right: width - borderSizeX,
		Lower: height - borderSizeY,
	}
}

// ExtractMiddleDomain crops the centered domainSizeX x domainSizeY window
// out of a grid
func ExtractMiddleDomain(data [][]float64, domainSizeX, domainSizeY int) ([][]float64, error) {
	if err := ValidateGrid(data); err != nil {
		return nil, err
	}
	rows := len(data)
	cols := len(data[0])
	if domainSizeX <= 0 || domainSizeY <= 0 {
		return nil, core.NewValidationError("domain", "domain size must be positive")
	}
	if domainSizeX > cols || domainSizeY > rows {
		return nil, core.NewFieldShapeError(domainSizeY, domainSizeX, core.ErrDomainTooLarge)
	}

	borderX := (cols - domainSizeX) / 2
	borderY := (rows - domainSizeY) / 2
	out := make([][]float64, domainSizeY)
	for y := 0; y < domainSizeY; y++ {
		out[y] = append([]float64(nil), data[borderY+y][borderX:borderX+domainSizeX]...)
	}
	return out, nil
}

// SparseGrid returns the column and row indices of a regularly subsampled
// grid, both in row-major visit order
func SparseGrid(gridSpacing, nrRows, nrCols int) (xSub, ySub []int) {
	if gridSpacing <= 0 {
		return nil, nil
	}
	for i := 0; i < nrRows; i++ {
		for j := 0; j < nrCols; j++ {
			if i%gridSpacing == 0 && j%gridSpacing == 0 {
				xSub = append(xSub, j)
				ySub = append(ySub, i)
			}
		}
	}
	return xSub, ySub
}
